// Package validation provides the stateless compliance rulebook: section
// order, word counts, bullet patterns, job-title placement, and keyword
// frequency, rolled up into a weighted 0-100 score.
package validation

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/keywords"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// Score weights for the five sub-checks; they sum to 1.0
const (
	sectionOrderWeight   = 0.20
	wordCountWeight      = 0.15
	bulletPatternWeight  = 0.25
	titlePlacementWeight = 0.20
	keywordUsageWeight   = 0.20
)

// compliantThreshold is the overall score at or above which a resume is
// considered compliant
const compliantThreshold = 80

// Rules holds the configurable envelopes and thresholds for every check
type Rules struct {
	TotalWordsMin   int
	TotalWordsMax   int
	SummaryWordsMin int
	SummaryWordsMax int
	BulletWordsMin  int
	BulletWordsMax  int

	// MetricThreshold is the minimum fraction of bullets that must carry
	// a quantified metric, expressed as a percentage
	MetricThreshold float64

	KeywordMin  int
	KeywordMax  int
	TopKeywords int

	// DefaultTitle is used when no target title can be extracted from the
	// job description
	DefaultTitle string
}

// DefaultRules returns the standard envelopes: 400-650 total words, 40-60
// summary words, 5-10 words per bullet, 75% metric coverage, keyword band
// 4-6.
func DefaultRules() Rules {
	return Rules{
		TotalWordsMin:   400,
		TotalWordsMax:   650,
		SummaryWordsMin: 40,
		SummaryWordsMax: 60,
		BulletWordsMin:  5,
		BulletWordsMax:  10,
		MetricThreshold: 75,
		KeywordMin:      4,
		KeywordMax:      6,
		TopKeywords:     10,
		DefaultTitle:    "Software Engineer",
	}
}

// Validator runs the compliance rulebook. It holds no per-document state
// and is safe for concurrent use.
type Validator struct {
	rules     Rules
	extractor *keywords.Extractor
}

// NewValidator creates a validator. A nil extractor uses the default skill
// whitelist; zero-valued rules use DefaultRules.
func NewValidator(extractor *keywords.Extractor, rules Rules) *Validator {
	if extractor == nil {
		extractor = keywords.NewExtractor(nil)
	}
	if rules.TotalWordsMax == 0 {
		rules = DefaultRules()
	}
	return &Validator{rules: rules, extractor: extractor}
}

// Validate runs every check against the resume and job description and
// aggregates the weighted compliance score. Identical inputs always produce
// an identical report.
func (v *Validator) Validate(doc *types.ResumeDocument, jd string) *types.ComplianceReport {
	title := ExtractJobTitle(jd, v.rules.DefaultTitle)

	report := &types.ComplianceReport{
		SectionOrder:   CheckSectionOrder(presentSections(doc)),
		WordCount:      v.CheckWordCounts(doc),
		BulletPattern:  v.CheckBulletPattern(doc),
		TitlePlacement: CheckTitlePlacement(doc, title),
		KeywordUsage:   v.CheckKeywordFrequency(doc, v.topJDKeywords(jd)),
	}

	sectionScore := violationScore(report.SectionOrder.IsValid, len(report.SectionOrder.Violations))
	wordScore := violationScore(report.WordCount.IsValid, len(report.WordCount.Violations))
	bulletScore := report.BulletPattern.MetricPercent
	titleScore := titlePlacementScore(report.TitlePlacement)
	keywordScore := keywordUsageScore(report.KeywordUsage)

	weighted := sectionOrderWeight*sectionScore +
		wordCountWeight*wordScore +
		bulletPatternWeight*bulletScore +
		titlePlacementWeight*titleScore +
		keywordUsageWeight*keywordScore
	report.OverallScore = int(math.Round(weighted))
	report.IsCompliant = report.OverallScore >= compliantThreshold
	report.Recommendations = v.recommendations(report, title)

	return report
}

// violationScore maps a pass/fail check with a violation count onto 0-100
func violationScore(valid bool, violations int) float64 {
	if valid {
		return 100
	}
	score := 100 - 25*float64(violations)
	if score < 0 {
		return 0
	}
	return score
}

func titlePlacementScore(r types.TitlePlacementResult) float64 {
	switch {
	case r.IsValid:
		return 100
	case r.TotalMentions >= 1:
		return 50
	default:
		return 0
	}
}

// keywordUsageScore is the percentage of tracked keywords inside the
// frequency band. No tracked keywords means nothing to satisfy.
func keywordUsageScore(usage []types.KeywordFrequency) float64 {
	if len(usage) == 0 {
		return 100
	}
	optimal := 0
	for _, u := range usage {
		if u.IsOptimal {
			optimal++
		}
	}
	return 100 * float64(optimal) / float64(len(usage))
}

// recommendations emits one actionable item per failing sub-check
func (v *Validator) recommendations(report *types.ComplianceReport, title string) []string {
	var recs []string

	if !report.SectionOrder.IsValid {
		recs = append(recs, "Reorder sections: "+strings.Join(report.SectionOrder.Violations, "; "))
	}
	if !report.WordCount.IsValid {
		recs = append(recs, "Adjust word counts: "+strings.Join(report.WordCount.Violations, "; "))
	}
	if !report.BulletPattern.IsCompliant {
		recs = append(recs, fmt.Sprintf(
			"Quantify more bullets: %.0f%% carry a metric, target is at least %.0f%%",
			report.BulletPattern.MetricPercent, v.rules.MetricThreshold))
	}
	if !report.TitlePlacement.IsValid {
		recs = append(recs, fmt.Sprintf(
			"Mention the target title %q in both the header and the summary", title))
	}

	var offBand []string
	for _, u := range report.KeywordUsage {
		if !u.IsOptimal {
			offBand = append(offBand, fmt.Sprintf("%s (%d)", u.Keyword, u.Count))
		}
	}
	if len(offBand) > 0 {
		recs = append(recs, fmt.Sprintf(
			"Bring keyword usage into the %d-%d band: %s",
			v.rules.KeywordMin, v.rules.KeywordMax, strings.Join(offBand, ", ")))
	}

	return recs
}
