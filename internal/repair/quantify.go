package repair

import "regexp"

// metricRe detects quantified impact: percentages, currency, digits, or
// scale words
var metricRe = regexp.MustCompile(`(?i)[%$€£]|\d|\b(million|billion|thousand|hundreds|dozens)\b`)

// HasMetric reports whether text already carries a numeric, percentage,
// currency, or scale pattern
func HasMetric(text string) bool {
	return metricRe.MatchString(text)
}

// metricTemplates holds appendable metric phrases keyed by bullet category.
// Repair picks one round-robin by bullet index so consecutive bullets do not
// repeat phrasing.
var metricTemplates = map[BulletCategory][]string{
	CategoryDevelopment: {
		"serving 10,000+ daily users",
		"reducing deployment time by 40%",
		"across 15+ production services",
		"cutting release cycles from 2 weeks to 2 days",
	},
	CategoryLeadership: {
		"for a team of 8 engineers",
		"delivering 20% ahead of schedule",
		"across 3 concurrent workstreams",
		"raising team velocity by 25%",
	},
	CategoryImprovement: {
		"improving performance by 35%",
		"cutting infrastructure costs by $50K annually",
		"reducing error rates by 60%",
		"lifting uptime to 99.9%",
	},
	CategoryAnalysis: {
		"across 2M+ data points",
		"surfacing 15% in untapped revenue",
		"informing 10+ product decisions",
		"shortening reporting turnaround by 50%",
	},
	CategoryCollaboration: {
		"across 4 departments",
		"aligning 12+ stakeholders",
		"shortening feedback cycles by 30%",
		"unblocking 5 dependent teams",
	},
}

// metricPhrase returns the metric template for a category, rotated by the
// bullet's index within the document
func metricPhrase(category BulletCategory, bulletIndex int) string {
	templates := metricTemplates[category]
	if len(templates) == 0 {
		templates = metricTemplates[CategoryDevelopment]
	}
	return templates[bulletIndex%len(templates)]
}
