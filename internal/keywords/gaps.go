package keywords

import (
	"math"
	"sort"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// leadParagraphLimit caps how far into the JD the "lead" region extends when
// no paragraph break is found
const leadParagraphLimit = 400

// Analyzer diffs resume keywords against job-description keywords
type Analyzer struct {
	extractor *Extractor
}

// NewAnalyzer creates a gap analyzer over the given extractor.
// A nil extractor uses the default taxonomy whitelist.
func NewAnalyzer(extractor *Extractor) *Analyzer {
	if extractor == nil {
		extractor = NewExtractor(nil)
	}
	return &Analyzer{extractor: extractor}
}

// AnalyzeGaps computes the fitness of a resume against a job description and
// the ranked list of missing keywords. JD tokens are tiered critical,
// important, or nice by in-JD frequency and position: anything in the title
// or lead paragraph is critical. Fitness is the matched share of tier
// weights, critical counting 3x, important 2x, nice 1x.
func (a *Analyzer) AnalyzeGaps(resume *types.ResumeDocument, jd string) *types.GapReport {
	jdStats := a.extractor.occurrences(jd)
	resumeText := resume.PlainText()
	resumeStats := a.extractor.occurrences(resumeText)

	leadEnd := leadRegionEnd(jd)

	report := &types.GapReport{}
	for token := range resumeStats {
		report.ResumeKeywords = append(report.ResumeKeywords, token)
	}
	sort.Strings(report.ResumeKeywords)

	totalWeight := 0
	matchedWeight := 0

	type tieredToken struct {
		token string
		tier  types.Tier
		pos   int
	}
	tiered := make([]tieredToken, 0, len(jdStats))
	for token, stats := range jdStats {
		tier := tierFor(stats, leadEnd)
		tiered = append(tiered, tieredToken{token: token, tier: tier, pos: stats.firstPos})
		report.JDKeywords = append(report.JDKeywords, token)
	}
	sort.Strings(report.JDKeywords)

	for _, tt := range tiered {
		weight := tt.tier.Weight()
		totalWeight += weight

		if rs, present := resumeStats[tt.token]; present {
			matchedWeight += weight
			report.Matched = append(report.Matched, types.KeywordRecord{
				Keyword:     tt.token,
				Tier:        tt.tier,
				Present:     true,
				Occurrences: rs.count,
				Locations:   keywordLocations(resume, tt.token),
			})
		} else {
			report.Missing = append(report.Missing, types.MissingKeyword{
				Keyword:  tt.token,
				Tier:     tt.tier,
				Position: tt.pos,
			})
		}
	}

	// Matched records in tier order then keyword order, for stable reports
	sort.Slice(report.Matched, func(i, j int) bool {
		if report.Matched[i].Tier.Weight() != report.Matched[j].Tier.Weight() {
			return report.Matched[i].Tier.Weight() > report.Matched[j].Tier.Weight()
		}
		return report.Matched[i].Keyword < report.Matched[j].Keyword
	})

	// Missing keywords ordered by tier, then by first position in the JD,
	// so downstream rewriting effort concentrates where it matters
	sort.Slice(report.Missing, func(i, j int) bool {
		if report.Missing[i].Tier.Weight() != report.Missing[j].Tier.Weight() {
			return report.Missing[i].Tier.Weight() > report.Missing[j].Tier.Weight()
		}
		return report.Missing[i].Position < report.Missing[j].Position
	})

	if totalWeight > 0 {
		report.Fitness = math.Round(float64(matchedWeight)/float64(totalWeight)*1000) / 10
	}
	return report
}

// tierFor assigns a JD token's tier: title/lead tokens and high-frequency
// tokens are critical, twice-mentioned tokens important, the rest nice
func tierFor(stats tokenStats, leadEnd int) types.Tier {
	if stats.firstPos < leadEnd {
		return types.TierCritical
	}
	switch {
	case stats.count >= 3:
		return types.TierCritical
	case stats.count == 2:
		return types.TierImportant
	default:
		return types.TierNice
	}
}

// leadRegionEnd returns the byte offset where the JD title plus lead
// paragraph ends: the first blank line after content, capped at
// leadParagraphLimit when the JD has no early paragraph break.
func leadRegionEnd(jd string) int {
	seenContent := false
	offset := 0
	for _, line := range strings.SplitAfter(jd, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" && seenContent {
			return offset
		}
		if trimmed != "" {
			seenContent = true
		}
		offset += len(line)
		if offset >= leadParagraphLimit {
			return leadParagraphLimit
		}
	}
	return min(offset, leadParagraphLimit)
}

// keywordLocations reports which resume regions contain the keyword
func keywordLocations(resume *types.ResumeDocument, keyword string) []string {
	var locs []string

	if containsKeyword(resume.Summary, keyword) {
		locs = append(locs, "summary")
	}

	var skillsText strings.Builder
	for _, g := range resume.Skills {
		skillsText.WriteString(strings.Join(g.Skills, " "))
		skillsText.WriteString(" ")
	}
	if containsKeyword(skillsText.String(), keyword) {
		locs = append(locs, "skills")
	}

	var expText strings.Builder
	for _, e := range resume.Experience {
		expText.WriteString(e.Title + " " + e.Company + " ")
		expText.WriteString(strings.Join(e.Bullets, " "))
		expText.WriteString(" ")
	}
	if containsKeyword(expText.String(), keyword) {
		locs = append(locs, "experience")
	}

	var projText strings.Builder
	for _, p := range resume.Projects {
		projText.WriteString(p.Name + " " + p.Description + " ")
		projText.WriteString(strings.Join(p.Technologies, " "))
		projText.WriteString(" ")
		projText.WriteString(strings.Join(p.Bullets, " "))
		projText.WriteString(" ")
	}
	if containsKeyword(projText.String(), keyword) {
		locs = append(locs, "projects")
	}

	return locs
}

// containsKeyword reports a whole-word, case-insensitive keyword hit
func containsKeyword(text, keyword string) bool {
	return len(wordBoundaryIndexes(strings.ToLower(text), strings.ToLower(keyword))) > 0
}
