// Package repair transforms achievement bullets until they satisfy the
// structural invariants the compliance rules check: strong leading verbs,
// quantified impact, job-description keywords, and entry bullet counts.
package repair

import "strings"

// BulletCategory buckets a bullet by the kind of work it describes; each
// category has its own verb bank and metric templates
type BulletCategory string

// Bullet categories recognized by the classifier
const (
	CategoryDevelopment   BulletCategory = "development"
	CategoryLeadership    BulletCategory = "leadership"
	CategoryImprovement   BulletCategory = "improvement"
	CategoryAnalysis      BulletCategory = "analysis"
	CategoryCollaboration BulletCategory = "collaboration"
)

// weakVerbReplacements maps weak leading words and two-word phrases to strong
// substitutes. Two-word phrases are checked first so "responsible for" is
// caught before "responsible" alone would fall through.
var weakVerbReplacements = map[string]string{
	"responsible for": "led",
	"worked on":       "developed",
	"worked with":     "partnered with",
	"helped with":     "supported",
	"in charge of":    "managed",
	"helped":          "facilitated",
	"worked":          "delivered",
	"did":             "executed",
	"made":            "created",
	"used":            "leveraged",
	"handled":         "managed",
	"assisted":        "supported",
	"participated in": "contributed to",
	"involved in":     "drove",
	"tasked with":     "owned",
}

// categoryVerbs is the per-category verb bank. The first entry is the
// default choice; the rest double as the anti-repetition synonym table.
var categoryVerbs = map[BulletCategory][]string{
	CategoryDevelopment:   {"developed", "built", "engineered", "implemented", "architected", "created", "designed", "launched"},
	CategoryLeadership:    {"led", "directed", "managed", "coordinated", "spearheaded", "oversaw", "mentored"},
	CategoryImprovement:   {"improved", "optimized", "streamlined", "accelerated", "reduced", "enhanced", "modernized"},
	CategoryAnalysis:      {"analyzed", "evaluated", "investigated", "assessed", "quantified", "researched"},
	CategoryCollaboration: {"collaborated", "partnered", "facilitated", "aligned", "championed"},
}

// extraStrongVerbs are recognized as strong leading verbs without belonging
// to a category verb bank
var extraStrongVerbs = []string{
	"delivered", "shipped", "automated", "migrated", "scaled", "increased",
	"achieved", "established", "transformed", "deployed", "integrated",
	"refactored", "standardized", "owned", "drove", "executed", "leveraged",
	"supported", "contributed", "maintained", "secured", "consolidated",
}

// strongVerbs is the full recognition set for leading verbs
var strongVerbs = buildStrongVerbSet()

func buildStrongVerbSet() map[string]bool {
	set := make(map[string]bool)
	for _, verbs := range categoryVerbs {
		for _, v := range verbs {
			set[v] = true
		}
	}
	for _, v := range extraStrongVerbs {
		set[v] = true
	}
	for _, v := range weakVerbReplacements {
		// Replacement targets may be phrases ("partnered with"); only the
		// verb itself belongs in the recognition set.
		set[strings.Fields(v)[0]] = true
	}
	return set
}

// verbSynonyms supplies anti-repetition alternatives for strong verbs that
// sit outside the category banks
var verbSynonyms = map[string][]string{
	"delivered":   {"shipped", "launched", "released"},
	"shipped":     {"delivered", "launched", "released"},
	"automated":   {"streamlined", "systematized"},
	"migrated":    {"transitioned", "ported"},
	"scaled":      {"expanded", "grew"},
	"increased":   {"grew", "boosted", "raised"},
	"achieved":    {"attained", "reached"},
	"established": {"founded", "instituted", "created"},
	"transformed": {"overhauled", "modernized"},
	"deployed":    {"released", "rolled out"},
	"leveraged":   {"utilized", "applied"},
	"owned":       {"drove", "championed"},
	"drove":       {"owned", "spearheaded"},
	"maintained":  {"sustained", "operated"},
}

// categoryKeywords classify a bullet's remaining text into a category by
// keyword match; first category with a hit wins, development is the default
var categoryKeywords = []struct {
	category BulletCategory
	terms    []string
}{
	{CategoryLeadership, []string{"team", "mentored", "hiring", "stakeholder", "roadmap", "initiative", "direct reports", "onboarded"}},
	{CategoryImprovement, []string{"performance", "latency", "cost", "efficiency", "reliability", "uptime", "speed", "faster", "slow", "bottleneck"}},
	{CategoryAnalysis, []string{"data", "metrics", "analysis", "report", "insight", "dashboard", "trends", "experiment", "a/b"}},
	{CategoryCollaboration, []string{"cross-functional", "partner", "client", "customer", "designers", "product manager", "departments", "vendors"}},
	{CategoryDevelopment, []string{"api", "service", "feature", "application", "system", "pipeline", "code", "module", "platform", "app"}},
}

// ClassifyBullet assigns a bullet's text to a category by keyword match
func ClassifyBullet(text string) BulletCategory {
	lower := strings.ToLower(text)
	for _, ck := range categoryKeywords {
		for _, term := range ck.terms {
			if strings.Contains(lower, term) {
				return ck.category
			}
		}
	}
	return CategoryDevelopment
}

// IsStrongVerb reports whether word is a recognized strong action verb
func IsStrongVerb(word string) bool {
	return strongVerbs[strings.ToLower(strings.TrimRight(word, ".,!?;:"))]
}

// synonymsFor returns the anti-repetition alternatives for a verb, preferring
// its category bank, then the standalone synonym table
func synonymsFor(verb string, category BulletCategory) []string {
	var syns []string
	for _, v := range categoryVerbs[category] {
		if v != verb {
			syns = append(syns, v)
		}
	}
	syns = append(syns, verbSynonyms[verb]...)
	return syns
}
