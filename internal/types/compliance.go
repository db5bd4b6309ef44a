//nolint:revive // types is a standard Go package name pattern
package types

// SectionOrderResult reports which canonical sections are present and whether
// the present subset is order-consistent with the canonical sequence
type SectionOrderResult struct {
	Present    []string `json:"present"`
	IsValid    bool     `json:"is_valid"`
	Violations []string `json:"violations,omitempty"`
}

// WordCountResult reports document and summary word counts against their envelopes
type WordCountResult struct {
	TotalWords   int      `json:"total_words"`
	SummaryWords int      `json:"summary_words"`
	IsValid      bool     `json:"is_valid"`
	Violations   []string `json:"violations,omitempty"`
}

// BulletCheck records the per-bullet predicates used for pattern scoring
type BulletCheck struct {
	Text          string `json:"text"`
	HasActionVerb bool   `json:"has_action_verb"`
	HasMetric     bool   `json:"has_metric"`
	HasTechnology bool   `json:"has_technology"`
}

// BulletPatternResult reports the fraction of bullets satisfying the metric predicate
type BulletPatternResult struct {
	Checks        []BulletCheck `json:"checks,omitempty"`
	MetricPercent float64       `json:"metric_percent"`
	IsCompliant   bool          `json:"is_compliant"`
}

// TitlePlacementResult reports where the JD target title appears in the resume.
// IsValid requires presence in both header and summary plus at least two
// total location hits; experience presence alone is informational.
type TitlePlacementResult struct {
	Title         string `json:"title"`
	InHeader      bool   `json:"in_header"`
	InSummary     bool   `json:"in_summary"`
	InExperience  bool   `json:"in_experience"`
	TotalMentions int    `json:"total_mentions"`
	IsValid       bool   `json:"is_valid"`
}

// KeywordFrequency classifies one top keyword's document-wide occurrence count
// against the configured frequency band
type KeywordFrequency struct {
	Keyword   string   `json:"keyword"`
	Count     int      `json:"count"`
	IsOptimal bool     `json:"is_optimal"`
	Locations []string `json:"locations,omitempty"`
}

// ComplianceReport is the immutable result of structural compliance validation
type ComplianceReport struct {
	SectionOrder    SectionOrderResult   `json:"section_order"`
	WordCount       WordCountResult      `json:"word_count"`
	BulletPattern   BulletPatternResult  `json:"bullet_pattern"`
	TitlePlacement  TitlePlacementResult `json:"title_placement"`
	KeywordUsage    []KeywordFrequency   `json:"keyword_usage"`
	OverallScore    int                  `json:"overall_score"`
	IsCompliant     bool                 `json:"is_compliant"`
	Recommendations []string             `json:"recommendations,omitempty"`
}
