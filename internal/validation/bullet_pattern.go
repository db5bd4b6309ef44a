package validation

import (
	"math"

	"github.com/jonathan/resume-optimizer/internal/repair"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// CheckBulletPattern evaluates every experience and project bullet against
// the three achievement predicates and computes the fraction satisfying the
// metric predicate. A document with no bullets is not compliant.
func (v *Validator) CheckBulletPattern(doc *types.ResumeDocument) types.BulletPatternResult {
	bullets := doc.AllBullets()
	result := types.BulletPatternResult{
		Checks: make([]types.BulletCheck, 0, len(bullets)),
	}
	if len(bullets) == 0 {
		return result
	}

	withMetric := 0
	for _, bullet := range bullets {
		check := types.BulletCheck{
			Text:          bullet,
			HasActionVerb: leadingVerbRecognized(bullet),
			HasMetric:     repair.HasMetric(bullet),
			HasTechnology: len(v.extractor.ExtractValidSkills(bullet)) > 0,
		}
		if check.HasMetric {
			withMetric++
		}
		result.Checks = append(result.Checks, check)
	}

	percent := 100 * float64(withMetric) / float64(len(bullets))
	result.MetricPercent = math.Round(percent*10) / 10
	result.IsCompliant = result.MetricPercent >= v.rules.MetricThreshold
	return result
}

func leadingVerbRecognized(bullet string) bool {
	first, _ := splitFirstWord(bullet)
	return repair.IsStrongVerb(first)
}
