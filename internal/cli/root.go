// Package cli contains the summarize CLI commands.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rosette-api-community/document-summarization/internal/config"
	"github.com/rosette-api-community/document-summarization/internal/rosette"
	"github.com/rosette-api-community/document-summarization/internal/summarizer"
	"github.com/rosette-api-community/document-summarization/internal/utils"
)

var (
	input      string
	contentURI bool
	apiKey     string
	apiURL     string
	language   string
	percent    float64
	topN       int
	verbose    bool

	cfg     *config.Config
	logger  *utils.Logger
	version = "dev"
)

// rootCmd summarizes a document: annotate via the Rosette API, then score and
// select the most contentful sentences.
var rootCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Summarize a document based on content extracted via the Rosette API",
	Long: `summarize produces an extractive summary of a document.

The document is annotated for sentences, tokens, and named entities by the
Rosette API; sentences are then scored by the frequency of their contentful
words and entities, and the highest-scoring sentences are kept in reading
order.

Example usage:
  summarize -i article.txt                 # Summarize a file, keep 15% of sentences
  summarize -i article.txt -p 0.3          # Keep 30% of sentences
  summarize -i article.txt -n 3            # Keep the top 3 sentences
  summarize -u -i https://example.com/doc  # Summarize the content behind a URI
  cat article.txt | summarize              # Read from stdin`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
	RunE: runSummarize,
}

// Execute runs the root command tree.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string for the CLI.
func SetVersion(v string) {
	version = v
}

func init() {
	rootCmd.Flags().StringVarP(&input, "input", "i", "", "path to a plain-text file or a URI (default: read from stdin)")
	rootCmd.Flags().BoolVarP(&contentURI, "content-uri", "u", false, "treat the input as a URI and extract the content behind it")
	rootCmd.Flags().StringVarP(&apiKey, "key", "k", "", "Rosette API key (default: ROSETTE_API_KEY)")
	rootCmd.Flags().StringVarP(&apiURL, "api-url", "a", "", "alternative Rosette API URL")
	rootCmd.Flags().StringVarP(&language, "language", "l", "", "ISO 639-2 T language code overriding automatic language detection")
	rootCmd.Flags().Float64VarP(&percent, "percent", "p", summarizer.DefaultPercent, "fraction of the original sentences to keep")
	rootCmd.Flags().IntVarP(&topN, "top-n", "n", 0, "how many sentences to keep (overrides --percent)")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "print the full annotated document with summarization info as JSON")
}

func initConfig() error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if apiKey != "" {
		cfg.Rosette.Key = apiKey
	}
	if apiURL != "" {
		cfg.Rosette.URL = apiURL
	}

	logger = utils.NewLogger(cfg.App.LogLevel, cfg.App.RawBodyLog)

	return nil
}

func runSummarize(cmd *cobra.Command, args []string) error {
	if !cmd.Flags().Changed("percent") {
		percent = cfg.Summary.Percent
	}
	if !cmd.Flags().Changed("top-n") {
		topN = cfg.Summary.TopN
	}

	if percent <= 0 || percent > 1 {
		return fmt.Errorf("percent must be in (0, 1], got %v", percent)
	}
	if topN < 0 {
		return fmt.Errorf("top-n must be positive, got %d", topN)
	}

	client, err := rosette.NewClient(cfg, logger)
	if err != nil {
		return err
	}

	content, err := utils.LoadContent(input, cmd.InOrStdin())
	if err != nil {
		return err
	}

	document, err := client.GetADM(content, language, contentURI, "")
	if err != nil {
		return err
	}

	summary, err := summarizer.Summarize(document, percent, topN)
	if err != nil {
		return err
	}

	if verbose {
		document.Attributes.Summary = summary
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetEscapeHTML(false)
		return enc.Encode(document)
	}

	fmt.Fprintln(cmd.OutOrStdout(), summary.Summary)
	return nil
}
