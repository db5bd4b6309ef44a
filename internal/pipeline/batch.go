package pipeline

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-optimizer/internal/oracle"
	"github.com/jonathan/resume-optimizer/internal/parsing"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// defaultBatchConcurrency bounds how many resumes optimize at once
const defaultBatchConcurrency = 4

// BatchOptions configures a batch optimization over multiple resumes
// against one job description.
type BatchOptions struct {
	ResumePaths []string
	TargetRole  string
	Concurrency int
	Config      Config
}

// BatchResult pairs one resume path with its outcome. Err is set when that
// resume failed; the rest of the batch still completes.
type BatchResult struct {
	Path   string
	Result *types.OptimizationResult
	Err    error
}

// RunBatch optimizes every resume in opts.ResumePaths against the same job
// description, bounded-parallel. The optimizer holds no per-request state,
// so one instance serves all goroutines. Results come back in input order;
// per-resume failures land in their BatchResult, and only a canceled context
// fails the batch as a whole.
func RunBatch(ctx context.Context, rewriter oracle.Oracle, jd string, opts BatchOptions) ([]BatchResult, error) {
	if len(opts.ResumePaths) == 0 {
		return nil, fmt.Errorf("no resume paths given")
	}

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = defaultBatchConcurrency
	}

	optimizer := NewOptimizer(rewriter, opts.Config)
	results := make([]BatchResult, len(opts.ResumePaths))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, path := range opts.ResumePaths {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			results[i] = BatchResult{Path: path}

			doc, err := parsing.LoadResumeFile(path)
			if err != nil {
				results[i].Err = fmt.Errorf("loading resume failed: %w", err)
				return nil
			}

			result, err := optimizer.Optimize(gCtx, doc, jd, opts.TargetRole)
			if err != nil {
				results[i].Err = err
				return nil
			}
			results[i].Result = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
