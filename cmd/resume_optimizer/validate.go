package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-optimizer/internal/ingestion"
	"github.com/jonathan/resume-optimizer/internal/keywords"
	"github.com/jonathan/resume-optimizer/internal/observability"
	"github.com/jonathan/resume-optimizer/internal/parsing"
	"github.com/jonathan/resume-optimizer/internal/validation"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a resume against compliance rules for a job posting",
	Long:  `Scores section order, word count, bullet structure, title placement, and keyword usage, and prints a compliance report with recommendations.`,
	RunE:  runValidateCmd,
}

var (
	validateResume     string
	validateJob        string
	validateJobURL     string
	validateUseBrowser bool
	validateVerbose    bool
	validateStrict     bool
)

func init() {
	validateCmd.Flags().StringVarP(&validateResume, "resume", "r", "", "Path to resume file (JSON or plain text)")
	validateCmd.Flags().StringVarP(&validateJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	validateCmd.Flags().StringVar(&validateJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	validateCmd.Flags().BoolVar(&validateUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	validateCmd.Flags().BoolVarP(&validateVerbose, "verbose", "v", false, "Print detailed debug information")
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "Exit with a non-zero status when the resume is not compliant")

	_ = validateCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(validateCmd)
}

func runValidateCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	if validateJob == "" && validateJobURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided")
	}
	if validateJob != "" && validateJobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	doc, err := parsing.LoadResumeFile(validateResume)
	if err != nil {
		return fmt.Errorf("loading resume failed: %w", err)
	}

	var jd string
	if validateJobURL != "" {
		jd, _, err = ingestion.IngestFromURL(ctx, validateJobURL, validateUseBrowser, validateVerbose)
	} else {
		jd, _, err = ingestion.IngestFromFile(validateJob)
	}
	if err != nil {
		return fmt.Errorf("job ingestion failed: %w", err)
	}

	validator := validation.NewValidator(keywords.NewExtractor(nil), validation.Rules{})
	report := validator.Validate(doc, jd)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintComplianceReport(report)

	if validateStrict && !report.IsCompliant {
		return fmt.Errorf("resume is not compliant (score %d/100)", report.OverallScore)
	}
	return nil
}
