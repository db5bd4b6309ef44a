package validation

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// CheckKeywordFrequency counts whole-word occurrences of each tracked
// keyword across the document, classifies each count against the frequency
// band, and records which sections mention the keyword
func (v *Validator) CheckKeywordFrequency(doc *types.ResumeDocument, tracked []string) []types.KeywordFrequency {
	text := strings.ToLower(doc.PlainText())

	usage := make([]types.KeywordFrequency, 0, len(tracked))
	for _, keyword := range tracked {
		count := countWholeWord(text, strings.ToLower(keyword))
		usage = append(usage, types.KeywordFrequency{
			Keyword:   keyword,
			Count:     count,
			IsOptimal: count >= v.rules.KeywordMin && count <= v.rules.KeywordMax,
			Locations: keywordLocations(doc, strings.ToLower(keyword)),
		})
	}
	return usage
}

// topJDKeywords returns the job description's most frequent valid skill
// tokens, limited to the configured tracking budget
func (v *Validator) topJDKeywords(jd string) []string {
	lower := strings.ToLower(jd)
	set := v.extractor.ExtractValidSkills(jd)

	type ranked struct {
		token string
		count int
		pos   int
	}
	all := make([]ranked, 0, len(set))
	for token := range set {
		pos := strings.Index(lower, token)
		if pos < 0 {
			pos = len(lower)
		}
		all = append(all, ranked{token: token, count: countWholeWord(lower, token), pos: pos})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].count != all[j].count {
			return all[i].count > all[j].count
		}
		if all[i].pos != all[j].pos {
			return all[i].pos < all[j].pos
		}
		return all[i].token < all[j].token
	})

	limit := v.rules.TopKeywords
	if limit <= 0 || limit > len(all) {
		limit = len(all)
	}
	tokens := make([]string, 0, limit)
	for _, r := range all[:limit] {
		tokens = append(tokens, r.token)
	}
	return tokens
}

// keywordLocations reports which resume sections mention the keyword
func keywordLocations(doc *types.ResumeDocument, keyword string) []string {
	var locations []string

	if containsWholeWord(strings.ToLower(doc.Summary), keyword) {
		locations = append(locations, "summary")
	}

	var skills strings.Builder
	for _, g := range doc.Skills {
		skills.WriteString(strings.Join(g.Skills, "\n"))
		skills.WriteString("\n")
	}
	if containsWholeWord(strings.ToLower(skills.String()), keyword) {
		locations = append(locations, "skills")
	}

	var experience strings.Builder
	for _, e := range doc.Experience {
		experience.WriteString(e.Title)
		experience.WriteString("\n")
		experience.WriteString(strings.Join(e.Bullets, "\n"))
		experience.WriteString("\n")
	}
	if containsWholeWord(strings.ToLower(experience.String()), keyword) {
		locations = append(locations, "experience")
	}

	var projects strings.Builder
	for _, p := range doc.Projects {
		projects.WriteString(p.Name)
		projects.WriteString("\n")
		projects.WriteString(p.Description)
		projects.WriteString("\n")
		projects.WriteString(strings.Join(p.Technologies, "\n"))
		projects.WriteString("\n")
		projects.WriteString(strings.Join(p.Bullets, "\n"))
		projects.WriteString("\n")
	}
	if containsWholeWord(strings.ToLower(projects.String()), keyword) {
		locations = append(locations, "projects")
	}

	return locations
}
