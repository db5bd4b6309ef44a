package main

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-optimizer/internal/ingestion"
	"github.com/spf13/cobra"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Fetch and clean a job posting without optimizing",
	Long:  `Fetches a job posting from a URL or file, strips boilerplate, and writes the cleaned text plus provenance metadata to the output directory.`,
	RunE:  runIngestCmd,
}

var (
	ingestJob        string
	ingestJobURL     string
	ingestOut        string
	ingestUseBrowser bool
	ingestVerbose    bool
)

func init() {
	ingestCmd.Flags().StringVarP(&ingestJob, "job", "j", "", "Path to job posting file (mutually exclusive with --job-url)")
	ingestCmd.Flags().StringVar(&ingestJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	ingestCmd.Flags().StringVarP(&ingestOut, "out", "o", "out", "Directory for the cleaned text and metadata")
	ingestCmd.Flags().BoolVar(&ingestUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	ingestCmd.Flags().BoolVarP(&ingestVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(ingestCmd)
}

func runIngestCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	if ingestJob == "" && ingestJobURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided")
	}
	if ingestJob != "" && ingestJobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	var cleaned string
	var meta *ingestion.Metadata
	var err error
	if ingestJobURL != "" {
		cleaned, meta, err = ingestion.IngestFromURL(ctx, ingestJobURL, ingestUseBrowser, ingestVerbose)
	} else {
		cleaned, meta, err = ingestion.IngestFromFile(ingestJob)
	}
	if err != nil {
		return fmt.Errorf("job ingestion failed: %w", err)
	}

	if err := ingestion.WriteOutput(ingestOut, cleaned, meta); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Printf("Ingested %d chars (mode: %s) into %s\n", meta.Chars, meta.Mode, ingestOut)
	return nil
}
