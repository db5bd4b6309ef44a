package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-optimizer/internal/types"
)

func TestPrintGapReport_ShowsFitnessAndMissing(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintGapReport(&types.GapReport{
		Fitness: 57.1,
		Matched: []types.KeywordRecord{{Keyword: "go"}},
		Missing: []types.MissingKeyword{
			{Keyword: "kubernetes", Tier: types.TierCritical},
			{Keyword: "terraform", Tier: types.TierImportant},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "KEYWORD GAP REPORT")
	assert.Contains(t, out, "57.1%")
	assert.Contains(t, out, "kubernetes")
}

func TestPrintGapReport_NilIsSilent(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintGapReport(nil)
	assert.Empty(t, buf.String())
}

func TestPrintComplianceReport_ShowsScoreAndRecommendations(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintComplianceReport(&types.ComplianceReport{
		OverallScore:    62,
		IsCompliant:     false,
		BulletPattern:   types.BulletPatternResult{MetricPercent: 50},
		Recommendations: []string{"Quantify more bullets"},
	})

	out := buf.String()
	assert.Contains(t, out, "62/100")
	assert.Contains(t, out, "not compliant")
	assert.Contains(t, out, "Quantify more bullets")
}

func TestPrintChangeLog_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	changes := make([]types.ChangeEntry, 8)
	for i := range changes {
		changes[i] = types.ChangeEntry{Section: "experience", Type: types.ChangeModified, Description: "repaired bullet"}
	}
	p.PrintChangeLog(changes)

	assert.Contains(t, buf.String(), "and 3 more changes")
}

func TestPrintScoreDelta_ShowsBothScores(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScoreDelta(types.ScoreCard{Overall: 60, Fitness: 50}, types.ScoreCard{Overall: 85, Fitness: 80})

	out := buf.String()
	assert.Contains(t, out, "60 → 85")
	assert.Contains(t, out, "+25")
}
