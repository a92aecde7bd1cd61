package cli

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/rosette-api-community/document-summarization/internal/api"
	"github.com/rosette-api-community/document-summarization/internal/rosette"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the summarization HTTP service",
	Long: `serve starts an HTTP service exposing summarization.

Endpoints:
  GET  /health
  POST /summarize`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return err
		}

		client, err := rosette.NewClient(cfg, logger)
		if err != nil {
			return err
		}

		handler := api.NewHandler(logger, client, cfg)

		mux := http.NewServeMux()
		api.RegisterRoutes(mux, handler)

		logger.Info(nil, "Starting Document Summarization Service")
		logger.Info(nil, "Environment: %s", cfg.App.Env)
		logger.Info(nil, "Log level: %s", cfg.App.LogLevel)
		logger.Info(nil, "Listening on port %s", cfg.App.ServerPort)
		logger.Info(nil, "Endpoints:")
		logger.Info(nil, "  GET  /health")
		logger.Info(nil, "  POST /summarize")

		return http.ListenAndServe("0.0.0.0:"+cfg.App.ServerPort, api.RequestID(mux))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
