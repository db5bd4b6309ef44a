package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-optimizer/internal/ingestion"
	"github.com/jonathan/resume-optimizer/internal/keywords"
	"github.com/jonathan/resume-optimizer/internal/observability"
	"github.com/jonathan/resume-optimizer/internal/parsing"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute the keyword gap between a resume and a job posting",
	Long:  `Extracts keywords from the job posting, matches them against the resume, and prints a gap report with a fitness score. No rewriting happens.`,
	RunE:  runAnalyzeCmd,
}

var (
	analyzeResume     string
	analyzeJob        string
	analyzeJobURL     string
	analyzeUseBrowser bool
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume file (JSON or plain text)")
	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	analyzeCmd.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed debug information")

	_ = analyzeCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyzeCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	if analyzeJob == "" && analyzeJobURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided")
	}
	if analyzeJob != "" && analyzeJobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	doc, err := parsing.LoadResumeFile(analyzeResume)
	if err != nil {
		return fmt.Errorf("loading resume failed: %w", err)
	}

	var jd string
	if analyzeJobURL != "" {
		jd, _, err = ingestion.IngestFromURL(ctx, analyzeJobURL, analyzeUseBrowser, analyzeVerbose)
	} else {
		jd, _, err = ingestion.IngestFromFile(analyzeJob)
	}
	if err != nil {
		return fmt.Errorf("job ingestion failed: %w", err)
	}

	analyzer := keywords.NewAnalyzer(keywords.NewExtractor(nil))
	report := analyzer.AnalyzeGaps(doc, jd)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintGapReport(report)
	return nil
}
