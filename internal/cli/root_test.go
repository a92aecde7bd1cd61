package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/rosette-api-community/document-summarization/internal/config"
	"github.com/rosette-api-community/document-summarization/internal/utils"
)

func setupRootTest(t *testing.T) {
	t.Helper()
	cfg = &config.Config{
		App:     config.AppConfig{LogLevel: "error", HttpTimeoutSeconds: 5},
		Rosette: config.RosetteConfig{URL: config.DefaultRosetteURL, Key: "test-key"},
		Summary: config.SummaryConfig{Percent: 0.15},
	}
	logger = utils.NewDiscardLogger()
	t.Cleanup(resetFlags)
}

func resetFlags() {
	input = ""
	contentURI = false
	apiKey = ""
	apiURL = ""
	language = ""
	percent = 0.15
	topN = 0
	verbose = false
	rootCmd.SetArgs(nil)
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

func TestRootCmd_Help(t *testing.T) {
	setupRootTest(t)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"--help"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("root --help failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "summarize") {
		t.Errorf("expected help output to contain 'summarize', got:\n%s", out)
	}
	for _, flag := range []string{"--input", "--percent", "--top-n", "--content-uri", "--verbose"} {
		if !strings.Contains(out, flag) {
			t.Errorf("expected help output to list %q flag, got:\n%s", flag, out)
		}
	}
}

func TestRootCmd_SubcommandsList(t *testing.T) {
	setupRootTest(t)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"--help"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("root --help failed: %v", err)
	}

	out := buf.String()
	for _, cmd := range []string{"serve", "version"} {
		if !strings.Contains(out, cmd) {
			t.Errorf("expected help output to list %q command, got:\n%s", cmd, out)
		}
	}
}

func TestRootCmd_InvalidPercent(t *testing.T) {
	setupRootTest(t)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"--percent", "1.5"})
	rootCmd.SetIn(strings.NewReader("some text"))

	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("expected error for percent > 1, got nil")
	}
	if !strings.Contains(err.Error(), "percent") {
		t.Errorf("expected percent error, got: %v", err)
	}
}

func TestRootCmd_NegativeTopN(t *testing.T) {
	setupRootTest(t)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"--top-n", "-2"})
	rootCmd.SetIn(strings.NewReader("some text"))

	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("expected error for negative top-n, got nil")
	}
}

func TestVersionCmd(t *testing.T) {
	setupRootTest(t)
	SetVersion("1.2.3")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"version", "--short"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("version --short failed: %v", err)
	}

	if got := strings.TrimSpace(buf.String()); got != "1.2.3" {
		t.Errorf("expected version output '1.2.3', got %q", got)
	}
}
