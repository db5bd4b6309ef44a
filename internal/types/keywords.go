//nolint:revive // types is a standard Go package name pattern
package types

// Tier is the coarse importance bucket assigned to a JD keyword
type Tier string

// Keyword tiers, highest importance first
const (
	TierCritical  Tier = "critical"
	TierImportant Tier = "important"
	TierNice      Tier = "nice"
)

// Weight returns the gap-analysis weight for the tier (critical 3x, important 2x, nice 1x)
func (t Tier) Weight() int {
	switch t {
	case TierCritical:
		return 3
	case TierImportant:
		return 2
	case TierNice:
		return 1
	default:
		return 0
	}
}

// KeywordRecord describes one JD keyword's presence in a resume
type KeywordRecord struct {
	Keyword     string   `json:"keyword"`
	Tier        Tier     `json:"tier"`
	Present     bool     `json:"present"`
	Occurrences int      `json:"occurrences"`
	Locations   []string `json:"locations,omitempty"`
}

// MissingKeyword is a JD keyword absent from the resume, with its first
// position in the JD for stable ordering
type MissingKeyword struct {
	Keyword  string `json:"keyword"`
	Tier     Tier   `json:"tier"`
	Position int    `json:"position"`
}

// GapReport is the output of gap analysis between a resume and a job description
type GapReport struct {
	Fitness        float64          `json:"fitness"`
	Matched        []KeywordRecord  `json:"matched"`
	Missing        []MissingKeyword `json:"missing"`
	ResumeKeywords []string         `json:"resume_keywords"`
	JDKeywords     []string         `json:"jd_keywords"`
}

// TopMissing returns up to n missing keywords, already ordered by tier then JD position
func (r *GapReport) TopMissing(n int) []string {
	if n > len(r.Missing) {
		n = len(r.Missing)
	}
	out := make([]string, 0, n)
	for _, m := range r.Missing[:n] {
		out = append(out, m.Keyword)
	}
	return out
}
