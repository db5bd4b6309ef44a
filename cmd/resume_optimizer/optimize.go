package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-optimizer/internal/config"
	"github.com/jonathan/resume-optimizer/internal/pipeline"
	"github.com/spf13/cobra"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Run the full resume optimization pipeline end-to-end",
	Long: `Orchestrates the entire optimization process: resume parsing -> job ingestion -> gap analysis -> rewrite -> repair -> validation.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runOptimizeCmd,
}

var (
	optConfigPath    string
	optResume        string
	optJob           string
	optJobURL        string
	optTargetRole    string
	optAPIKey        string
	optModel         string
	optUseBrowser    bool
	optVerbose       bool
	optDatabaseURL   string
	optMaxInputChars int
	optOutput        string
)

func init() {
	// Config file flag (processed first)
	optimizeCmd.Flags().StringVar(&optConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	optimizeCmd.Flags().StringVarP(&optResume, "resume", "r", "", "Path to resume file (JSON or plain text)")
	optimizeCmd.Flags().StringVarP(&optJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	optimizeCmd.Flags().StringVar(&optJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	optimizeCmd.Flags().StringVarP(&optTargetRole, "target-role", "t", "", "Target role (extracted from the posting if omitted)")
	optimizeCmd.Flags().StringVar(&optModel, "model", "", "Rewrite model name")
	optimizeCmd.Flags().IntVar(&optMaxInputChars, "max-input-chars", 0, "Combined resume + posting size ceiling")
	optimizeCmd.Flags().BoolVar(&optUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	optimizeCmd.Flags().BoolVarP(&optVerbose, "verbose", "v", false, "Print detailed debug information")
	optimizeCmd.Flags().StringVarP(&optOutput, "output", "o", "", "Directory to write result files (optional)")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	optimizeCmd.Flags().StringVar(&optAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	// Database URL for artifact persistence
	optimizeCmd.Flags().StringVar(&optDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(optimizeCmd)
}

func runOptimizeCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if optConfigPath != "" {
		loadedCfg, err := config.LoadConfig(optConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if optVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", optConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("resume") {
		cfg.Resume = optResume
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = optJob
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = optJobURL
	}
	if cmd.Flags().Changed("target-role") {
		cfg.TargetRole = optTargetRole
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = optAPIKey
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = optModel
	}
	if cmd.Flags().Changed("max-input-chars") {
		cfg.MaxInputChars = optMaxInputChars
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = optUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = optVerbose
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = optDatabaseURL
	}

	// Step 3: Validate required fields
	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required (via flag or config)")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided (via flag or config)")
	}
	if cfg.Job != "" && cfg.JobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	// Step 4: API key handling; no key means the deterministic path only
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	opts := pipeline.RunOptions{
		ResumePath:  cfg.Resume,
		JobPath:     cfg.Job,
		JobURL:      cfg.JobURL,
		TargetRole:  cfg.TargetRole,
		APIKey:      cfg.APIKey,
		Model:       cfg.Model,
		UseBrowser:  cfg.UseBrowser,
		Verbose:     cfg.Verbose,
		DatabaseURL: cfg.DatabaseURL,
		Config:      pipeline.Config{MaxInputChars: cfg.MaxInputChars},
	}

	result, err := pipeline.Run(ctx, opts)
	if err != nil {
		return err
	}

	if optOutput != "" {
		if err := writeResultFiles(optOutput, result); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		fmt.Printf("Results written to %s\n", optOutput)
	}
	return nil
}

// writeResultFiles writes the optimized resume and the full result to the
// output directory as JSON.
func writeResultFiles(dir string, result any) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "optimization_result.json"), data, 0644)
}
