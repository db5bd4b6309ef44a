package taxonomy

import "github.com/jonathan/resume-optimizer/internal/types"

// categoryOrder fixes the section ordering of aggregated skill groups
var categoryOrder = []Category{
	CategoryLanguage,
	CategoryFrontend,
	CategoryBackend,
	CategoryDataScience,
	CategoryDatabase,
	CategoryCloud,
	CategoryTesting,
	CategoryTools,
	CategorySoft,
}

// Categorize groups raw skill tokens into display-ready skill groups.
// Each token lands in exactly one category; duplicate normalized tokens are
// dropped so no skill appears twice across categories. Tokens matching no
// rule are silently omitted.
func (c *Classifier) Categorize(tokens []string) []types.SkillGroup {
	grouped := make(map[Category][]string)
	seen := make(map[string]bool)

	for _, token := range tokens {
		normalized := Normalize(StripVersion(token))
		if normalized == "" || seen[normalized] {
			continue
		}

		category, ok := c.Classify(token)
		if !ok {
			continue
		}
		seen[normalized] = true
		grouped[category] = append(grouped[category], c.FormatDisplayName(token))
	}

	var groups []types.SkillGroup
	for _, category := range categoryOrder {
		if skills, ok := grouped[category]; ok {
			groups = append(groups, types.SkillGroup{
				Category: category.DisplayName(),
				Skills:   skills,
			})
		}
	}
	return groups
}
