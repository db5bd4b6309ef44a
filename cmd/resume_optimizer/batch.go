package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-optimizer/internal/ingestion"
	"github.com/jonathan/resume-optimizer/internal/oracle"
	"github.com/jonathan/resume-optimizer/internal/pipeline"
	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch [resumes...]",
	Short: "Optimize several resumes against one job posting",
	Long:  `Runs the optimization pipeline concurrently over multiple resume files against a single job posting. Per-resume failures are reported without aborting the batch.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBatchCmd,
}

var (
	batchJob         string
	batchJobURL      string
	batchTargetRole  string
	batchConcurrency int
	batchAPIKey      string
	batchModel       string
	batchUseBrowser  bool
	batchVerbose     bool
)

func init() {
	batchCmd.Flags().StringVarP(&batchJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	batchCmd.Flags().StringVar(&batchJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	batchCmd.Flags().StringVarP(&batchTargetRole, "target-role", "t", "", "Target role (extracted from the posting if omitted)")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "Maximum resumes optimized in parallel (default 4)")
	batchCmd.Flags().StringVar(&batchAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	batchCmd.Flags().StringVar(&batchModel, "model", "", "Rewrite model name")
	batchCmd.Flags().BoolVar(&batchUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	batchCmd.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(batchCmd)
}

func runBatchCmd(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	if batchJob == "" && batchJobURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided")
	}
	if batchJob != "" && batchJobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	var jd string
	var err error
	if batchJobURL != "" {
		jd, _, err = ingestion.IngestFromURL(ctx, batchJobURL, batchUseBrowser, batchVerbose)
	} else {
		jd, _, err = ingestion.IngestFromFile(batchJob)
	}
	if err != nil {
		return fmt.Errorf("job ingestion failed: %w", err)
	}

	apiKey := batchAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	var rewriter oracle.Oracle
	if apiKey != "" {
		gemini, oracleErr := oracle.NewGemini(ctx, apiKey, batchModel)
		if oracleErr != nil {
			fmt.Printf("Warning: Failed to create rewrite client: %v\n", oracleErr)
			fmt.Printf("Continuing with deterministic optimization only...\n")
		} else {
			defer func() { _ = gemini.Close() }()
			rewriter = gemini
		}
	}

	results, err := pipeline.RunBatch(ctx, rewriter, jd, pipeline.BatchOptions{
		ResumePaths: args,
		TargetRole:  batchTargetRole,
		Concurrency: batchConcurrency,
	})
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Printf("FAIL  %s: %v\n", r.Path, r.Err)
			continue
		}
		status := "ok"
		if r.Result.Degraded {
			status = "degraded"
		}
		fmt.Printf("OK    %s: compliance %d -> %d (%s)\n",
			r.Path, r.Result.BeforeScore.Overall, r.Result.AfterScore.Overall, status)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d resumes failed", failed, len(results))
	}
	return nil
}
