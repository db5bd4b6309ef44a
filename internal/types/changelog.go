//nolint:revive // types is a standard Go package name pattern
package types

// ChangeType categorizes a single change-log entry
type ChangeType string

// Change types recorded by the orchestrator
const (
	ChangeAdded     ChangeType = "added"
	ChangeRemoved   ChangeType = "removed"
	ChangeModified  ChangeType = "modified"
	ChangeRewritten ChangeType = "rewritten"
	ChangeCleaned   ChangeType = "cleaned"
)

// ChangeEntry describes one change applied during optimization
type ChangeEntry struct {
	Section     string     `json:"section"`
	Type        ChangeType `json:"type"`
	Before      string     `json:"before,omitempty"`
	After       string     `json:"after,omitempty"`
	Description string     `json:"description"`
}

// ScoreCard pairs the structural compliance score with the gap-analysis fitness
type ScoreCard struct {
	Overall int     `json:"overall"`
	Fitness float64 `json:"fitness"`
}

// OptimizationResult is what the orchestrator returns to the consuming layer
type OptimizationResult struct {
	Resume      *ResumeDocument   `json:"resume"`
	BeforeScore ScoreCard         `json:"before_score"`
	AfterScore  ScoreCard         `json:"after_score"`
	Changes     []ChangeEntry     `json:"changes"`
	Compliance  *ComplianceReport `json:"compliance"`
	Gap         *GapReport        `json:"gap"`
	Degraded    bool              `json:"degraded,omitempty"`
}

// ExtractionMode tags how the upstream extractor produced the resume text.
// Optical recognition is treated as a lower-quality signal downstream.
type ExtractionMode string

// Extraction modes supplied by the document-extraction collaborator
const (
	ExtractionDirectText ExtractionMode = "direct_text"
	ExtractionOptical    ExtractionMode = "optical_recognition"
	ExtractionHybrid     ExtractionMode = "hybrid"
)

// QualityFactor returns the fitness multiplier for the extraction mode.
// Optical recognition carries the largest penalty; an empty mode counts as
// direct text.
func (m ExtractionMode) QualityFactor() float64 {
	switch m {
	case ExtractionOptical:
		return 0.75
	case ExtractionHybrid:
		return 0.9
	default:
		return 1.0
	}
}
