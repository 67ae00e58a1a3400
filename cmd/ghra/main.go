package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/h0rv/ghra/internal/analysis"
	"github.com/h0rv/ghra/internal/auth"
	"github.com/h0rv/ghra/internal/config"
	"github.com/h0rv/ghra/internal/gh"
	"github.com/h0rv/ghra/internal/logger"
	"github.com/h0rv/ghra/internal/store"
	"github.com/h0rv/ghra/internal/timewindow"
	"github.com/h0rv/ghra/internal/tui"
	"github.com/h0rv/ghra/internal/view"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// CLI flags
	repoFlag    string
	sinceFlag   string
	jsonFlag    bool
	probeFlag   string
	timeoutFlag time.Duration
	logFileFlag string
	tokenFlag   string
	debugFlag   bool
)

// errAnalysisFailed is returned after a failed headless analysis has been reported.
var errAnalysisFailed = errors.New("analysis failed")

func main() {
	rootCmd := &cobra.Command{
		Use:   "ghra",
		Short: "Terminal dashboard for GitHub repository health",
		Long: `ghra analyzes a public GitHub repository: metadata, README and
CONTRIBUTING presence, recent activity, and open "good first issue"
issues updated within a chosen time window.

Authentication (optional, raises rate limits):
  1. --token flag
  2. GITHUB_TOKEN environment variable or .env file

Time windows: "24 hours", "7 days", "30 days", "6 months".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	// Define CLI flags
	rootCmd.Flags().StringVar(&repoFlag, "repo", "", fmt.Sprintf("Repository to analyze, e.g. %s. Skips the repository prompt.", config.DefaultRepo))
	rootCmd.Flags().StringVar(&sinceFlag, "since", "", `Issue time window. Skips the window picker. Defaults to "7 days" with --json.`)
	rootCmd.Flags().BoolVar(&jsonFlag, "json", false, "Print one analysis as JSON instead of starting the dashboard. Requires --repo.")
	rootCmd.Flags().StringVar(&probeFlag, "probe", "", "File probe backend: auto, rest or graphql. Overrides GHRA_PROBE.")
	rootCmd.Flags().DurationVar(&timeoutFlag, "timeout", 0, "Per-request timeout. Overrides GHRA_TIMEOUT.")
	rootCmd.Flags().StringVar(&logFileFlag, "log-file", "", "Write structured logs to this file. Overrides GHRA_LOG_FILE.")
	rootCmd.Flags().StringVar(&tokenFlag, "token", "", "GitHub token. Overrides GITHUB_TOKEN.")
	rootCmd.Flags().BoolVar(&debugFlag, "debug", false, "Enable debug logging.")

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errAnalysisFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	// Validate flags
	if jsonFlag && repoFlag == "" {
		return fmt.Errorf("--json requires --repo to be specified")
	}

	var filter timewindow.FilterOption
	if sinceFlag != "" {
		f, err := timewindow.ParseFilterOption(sinceFlag)
		if err != nil {
			return fmt.Errorf("--since: %w", err)
		}
		filter = f
	} else if jsonFlag {
		filter = timewindow.Last7Days
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	applyFlags(cmd, cfg)

	token, err := auth.Resolve(&auth.StaticProvider{Token: tokenFlag}, &auth.StaticProvider{Token: cfg.GitHubToken})
	if err != nil {
		return err
	}

	probe, err := gh.ParseProbeMode(cfg.Probe)
	if err != nil {
		return err
	}

	// Console logging would draw over the dashboard.
	log := logger.New(cfg.LogFile, debugFlag && (jsonFlag || cfg.LogFile != ""))
	defer func() { _ = log.Sync() }()

	client, err := gh.New(gh.Options{
		Token:   token,
		Timeout: cfg.Timeout,
		Probe:   probe,
	})
	if err != nil {
		return fmt.Errorf("failed to create GitHub client: %w", err)
	}

	log.Debug("client ready",
		zap.Bool("authenticated", token != ""),
		zap.String("probe", string(client.ProbeMode())),
		zap.Duration("timeout", cfg.Timeout),
	)

	analyzer := analysis.New(client, analysis.WithLogger(log))
	ctx := context.Background()

	if jsonFlag {
		return runHeadless(ctx, analyzer, view.Request{Repo: repoFlag, Filter: filter})
	}

	// Create app model
	app := tui.NewAppModel(analyzer, store.New(), ctx, repoFlag, filter)

	// Run Bubble Tea program
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}

	return nil
}

// applyFlags lets explicitly set flags override file and environment values.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("probe") {
		cfg.Probe = probeFlag
	}
	if flags.Changed("timeout") && timeoutFlag > 0 {
		cfg.Timeout = timeoutFlag
	}
	if flags.Changed("log-file") {
		cfg.LogFile = logFileFlag
	}
}

// runHeadless analyzes one repository and prints the result as JSON.
func runHeadless(ctx context.Context, analyzer *analysis.Analyzer, req view.Request) error {
	cutoff, err := timewindow.ResolveCutoff(req.Filter, analyzer.Now())
	if err != nil {
		return err
	}

	result, err := analyzer.AnalyzeString(ctx, req.Repo, cutoff)
	if err != nil {
		fmt.Fprintln(os.Stderr, view.FailureMessage(err))
		return errAnalysisFailed
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
