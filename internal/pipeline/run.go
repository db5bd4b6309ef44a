package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/jonathan/resume-optimizer/internal/db"
	"github.com/jonathan/resume-optimizer/internal/ingestion"
	"github.com/jonathan/resume-optimizer/internal/observability"
	"github.com/jonathan/resume-optimizer/internal/oracle"
	"github.com/jonathan/resume-optimizer/internal/parsing"
	"github.com/jonathan/resume-optimizer/internal/types"
	"github.com/jonathan/resume-optimizer/internal/validation"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	RunID    string `json:"run_id,omitempty"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	ResumePath  string
	JobPath     string
	JobURL      string
	TargetRole  string
	APIKey      string
	Model       string
	UseBrowser  bool
	Verbose     bool
	DatabaseURL string
	Config      Config
	OnProgress  ProgressCallback
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, step, category, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:     step,
			Category: category,
			Message:  message,
			Content:  content,
		})
	}
}

// Run orchestrates the full optimization pipeline: load the resume, ingest
// the job description, optimize, and persist artifacts when a database is
// configured. Database failures downgrade to warnings; the run proceeds.
func Run(ctx context.Context, opts RunOptions) (*types.OptimizationResult, error) {
	printer := observability.NewPrinter(os.Stdout)

	fmt.Printf("Step 1/5: Loading resume from %s...\n", opts.ResumePath)
	doc, err := parsing.LoadResumeFile(opts.ResumePath)
	if err != nil {
		return nil, fmt.Errorf("loading resume failed: %w", err)
	}

	var jd string
	var jobMetadata *ingestion.Metadata
	jobSource := opts.JobURL
	if opts.JobURL != "" {
		fmt.Printf("Step 2/5: Ingesting job posting from URL: %s...\n", opts.JobURL)
		jd, jobMetadata, err = ingestion.IngestFromURL(ctx, opts.JobURL, opts.UseBrowser, opts.Verbose)
		if err != nil {
			return nil, fmt.Errorf("job ingestion from URL failed: %w", err)
		}
	} else {
		fmt.Printf("Step 2/5: Ingesting job posting from file: %s...\n", opts.JobPath)
		jd, jobMetadata, err = ingestion.IngestFromFile(opts.JobPath)
		if err != nil {
			return nil, fmt.Errorf("job ingestion from file failed: %w", err)
		}
		jobSource = "file:" + opts.JobPath
	}
	emitProgress(&opts, db.StepJobDescription, db.CategoryIngestion,
		fmt.Sprintf("Ingested job posting (%d chars)", len(jd)), nil)

	targetRole := opts.TargetRole
	if targetRole == "" {
		targetRole = validation.ExtractJobTitle(jd, doc.Header.TargetRole)
		if opts.Verbose {
			fmt.Printf("[VERBOSE] Extracted target role: %s\n", targetRole)
		}
	}

	// Initialize database connection if configured
	var database *db.DB
	var runID uuid.UUID
	if opts.DatabaseURL != "" {
		database, err = db.Connect(ctx, opts.DatabaseURL)
		if err != nil {
			fmt.Printf("Warning: Failed to connect to database: %v\n", err)
			fmt.Printf("Continuing without database persistence...\n")
			database = nil
		} else {
			defer database.Close()
			if schemaErr := database.EnsureSchema(ctx); schemaErr != nil {
				fmt.Printf("Warning: Failed to ensure database schema: %v\n", schemaErr)
				database = nil
			}
		}
	}
	if database != nil {
		runID, err = database.CreateRun(ctx, targetRole, jobSource)
		if err != nil {
			fmt.Printf("Warning: Failed to create database run: %v\n", err)
			database = nil
		} else {
			if opts.Verbose {
				fmt.Printf("[VERBOSE] Created database run: %s\n", runID)
			}
			_ = database.SaveTextArtifact(ctx, runID, db.StepJobDescription, db.CategoryIngestion, jd)
			_ = database.SaveArtifact(ctx, runID, db.StepOriginalResume, db.CategoryIngestion, doc)
			if jobMetadata != nil {
				_ = database.SaveArtifact(ctx, runID, db.StepJobMetadata, db.CategoryIngestion, jobMetadata)
			}
		}
	}

	// Initialize the rewrite oracle; no API key means the deterministic
	// degraded path from the start.
	var rewriter oracle.Oracle
	if opts.APIKey != "" {
		fmt.Printf("Step 3/5: Connecting to rewrite model...\n")
		gemini, oracleErr := oracle.NewGemini(ctx, opts.APIKey, opts.Model)
		if oracleErr != nil {
			fmt.Printf("Warning: Failed to create rewrite client: %v\n", oracleErr)
			fmt.Printf("Continuing with deterministic optimization only...\n")
		} else {
			defer func() { _ = gemini.Close() }()
			rewriter = gemini
		}
	} else {
		fmt.Printf("Step 3/5: No API key configured, using deterministic optimization only.\n")
	}

	fmt.Printf("Step 4/5: Optimizing resume for %q...\n", targetRole)
	optimizer := NewOptimizer(rewriter, opts.Config)
	result, err := optimizer.Optimize(ctx, doc, jd, targetRole)
	if err != nil {
		if database != nil && runID != uuid.Nil {
			_ = database.CompleteRun(ctx, runID, db.StatusFailed)
		}
		return nil, fmt.Errorf("optimization failed: %w", err)
	}
	emitProgress(&opts, db.StepOptimizedResume, db.CategoryOptimization,
		fmt.Sprintf("Optimized resume: compliance %d → %d", result.BeforeScore.Overall, result.AfterScore.Overall), nil)

	if opts.Verbose {
		printer.PrintGapReport(result.Gap)
		printer.PrintComplianceReport(result.Compliance)
		printer.PrintChangeLog(result.Changes)
		printer.PrintScoreDelta(result.BeforeScore, result.AfterScore)
	}

	fmt.Printf("Step 5/5: Saving results...\n")
	if database != nil && runID != uuid.Nil {
		_ = database.SaveArtifact(ctx, runID, db.StepGapReport, db.CategoryAnalysis, result.Gap)
		_ = database.SaveArtifact(ctx, runID, db.StepCompliance, db.CategoryAnalysis, result.Compliance)
		_ = database.SaveArtifact(ctx, runID, db.StepOptimizedResume, db.CategoryOptimization, result.Resume)
		_ = database.SaveArtifact(ctx, runID, db.StepChangeLog, db.CategoryOptimization, result.Changes)
		_ = database.SaveArtifact(ctx, runID, db.StepResult, db.CategoryOptimization, result)

		status := db.StatusCompleted
		if result.Degraded {
			status = db.StatusDegraded
		}
		_ = database.CompleteRun(ctx, runID, status)
	}

	if result.Degraded {
		fmt.Printf("Done (degraded: rewrite oracle unavailable, deterministic path only).\n")
	} else {
		fmt.Printf("Done.\n")
	}
	return result, nil
}
