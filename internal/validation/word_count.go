package validation

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// CheckWordCounts verifies the document and summary word counts against
// their envelopes and flags every bullet outside the per-bullet envelope
func (v *Validator) CheckWordCounts(doc *types.ResumeDocument) types.WordCountResult {
	result := types.WordCountResult{
		TotalWords:   len(strings.Fields(doc.PlainText())),
		SummaryWords: len(strings.Fields(doc.Summary)),
		IsValid:      true,
	}

	if result.TotalWords < v.rules.TotalWordsMin || result.TotalWords > v.rules.TotalWordsMax {
		result.Violations = append(result.Violations, fmt.Sprintf(
			"total word count %d outside %d-%d",
			result.TotalWords, v.rules.TotalWordsMin, v.rules.TotalWordsMax))
	}
	if result.SummaryWords < v.rules.SummaryWordsMin || result.SummaryWords > v.rules.SummaryWordsMax {
		result.Violations = append(result.Violations, fmt.Sprintf(
			"summary word count %d outside %d-%d",
			result.SummaryWords, v.rules.SummaryWordsMin, v.rules.SummaryWordsMax))
	}
	for _, bullet := range doc.AllBullets() {
		words := len(strings.Fields(bullet))
		if words < v.rules.BulletWordsMin || words > v.rules.BulletWordsMax {
			result.Violations = append(result.Violations, fmt.Sprintf(
				"bullet %q has %d words, expected %d-%d",
				truncate(bullet, 40), words, v.rules.BulletWordsMin, v.rules.BulletWordsMax))
		}
	}

	result.IsValid = len(result.Violations) == 0
	return result
}

// truncate shortens s to max runes so multi-byte characters are never split
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
