// Package oracle calls the external rewrite service and hardens whatever it
// returns. Oracle output is untrusted: it is sanitized, schema-checked, and
// merged back toward the original document before the repair pipeline ever
// sees it.
package oracle

import (
	"context"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// Oracle is the external rewrite collaborator. Implementations must treat
// their own output as untrusted and run it through ParseRewriteOutput.
type Oracle interface {
	// Rewrite asks the oracle for a keyword-aligned rewrite of the resume.
	// The returned document has already been hardened against the original.
	Rewrite(ctx context.Context, req Request) (*types.ResumeDocument, error)
	// Close releases any resources held by the oracle client
	Close() error
}

// Request carries everything the oracle needs for one rewrite
type Request struct {
	Resume          *types.ResumeDocument
	JobDescription  string
	TargetRole      string
	MissingKeywords []string
}
