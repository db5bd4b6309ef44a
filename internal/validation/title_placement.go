package validation

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// titlePatternRe matches explicit title declarations inside a JD body
var titlePatternRe = regexp.MustCompile(`(?i)\b(?:seeking|position|title|role)\s*:?\s+([^\n.,;]+)`)

// titleSeparators cut trailing qualifiers off a JD headline
var titleSeparators = []string{" - ", " – ", " | ", " ("}

// insignificantTitleWords are ignored when matching a title by significant
// words: articles, connectives, and seniority qualifiers
var insignificantTitleWords = map[string]bool{
	"a": true, "an": true, "the": true, "of": true, "and": true, "for": true,
	"senior": true, "junior": true, "staff": true, "principal": true,
	"lead": true, "sr": true, "jr": true, "mid": true, "entry": true,
	"level": true, "i": true, "ii": true, "iii": true,
}

// ExtractJobTitle pulls the target title from a job description: the first
// short line wins, then an explicit "seeking/position/title/role" pattern,
// then the fallback.
func ExtractJobTitle(jd, fallback string) string {
	for _, line := range strings.Split(jd, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line) <= 70 && len(strings.Fields(line)) <= 8 {
			if m := labeledTitleRe.FindStringSubmatch(line); m != nil {
				line = m[1]
			}
			for _, sep := range titleSeparators {
				if idx := strings.Index(line, sep); idx > 0 {
					line = line[:idx]
				}
			}
			return strings.TrimSpace(line)
		}
		break
	}

	if m := titlePatternRe.FindStringSubmatch(jd); m != nil {
		return cleanExtractedTitle(m[1])
	}

	return fallback
}

// labeledTitleRe strips an explicit label off a JD headline
var labeledTitleRe = regexp.MustCompile(`(?i)^(?:position|title|role)\s*:\s*(.+)$`)

// titleCutWords end a captured title when the sentence keeps going
var titleCutWords = []string{" to ", " who ", " that ", " with "}

func cleanExtractedTitle(raw string) string {
	title := strings.TrimSpace(raw)
	lower := strings.ToLower(title)
	for _, article := range []string{"a ", "an ", "the "} {
		if strings.HasPrefix(lower, article) {
			title = title[len(article):]
			break
		}
	}
	lower = strings.ToLower(title)
	for _, cut := range titleCutWords {
		if idx := strings.Index(lower, cut); idx > 0 {
			title = title[:idx]
			lower = strings.ToLower(title)
		}
	}
	return strings.TrimSpace(title)
}

// CheckTitlePlacement reports where the target title appears. Validity
// requires a header hit and a summary hit and at least two location hits in
// total; an experience hit alone never makes the placement valid.
func CheckTitlePlacement(doc *types.ResumeDocument, title string) types.TitlePlacementResult {
	result := types.TitlePlacementResult{
		Title:        title,
		InHeader:     titleMatches(doc.Header.TargetRole, title),
		InSummary:    titleMatches(doc.Summary, title),
		InExperience: titleMatches(experienceText(doc), title),
	}

	for _, hit := range []bool{result.InHeader, result.InSummary, result.InExperience} {
		if hit {
			result.TotalMentions++
		}
	}
	result.IsValid = result.InHeader && result.InSummary && result.TotalMentions >= 2
	return result
}

// titleMatches reports presence by exact substring, or by at least 70% of
// the title's significant words appearing as whole words
func titleMatches(text, title string) bool {
	if text == "" || title == "" {
		return false
	}
	lowerText := strings.ToLower(text)
	lowerTitle := strings.ToLower(title)
	if strings.Contains(lowerText, lowerTitle) {
		return true
	}

	significant := significantTitleWords(lowerTitle)
	if len(significant) == 0 {
		return false
	}
	hits := 0
	for _, word := range significant {
		if containsWholeWord(lowerText, word) {
			hits++
		}
	}
	return float64(hits)/float64(len(significant)) >= 0.7
}

func significantTitleWords(lowerTitle string) []string {
	var words []string
	for _, w := range strings.Fields(lowerTitle) {
		w = strings.Trim(w, ".,;:()")
		if w == "" || insignificantTitleWords[w] {
			continue
		}
		words = append(words, w)
	}
	return words
}

func experienceText(doc *types.ResumeDocument) string {
	var sb strings.Builder
	for _, e := range doc.Experience {
		sb.WriteString(e.Title)
		sb.WriteString("\n")
		for _, b := range e.Bullets {
			sb.WriteString(b)
			sb.WriteString("\n")
		}
	}
	for _, p := range doc.Projects {
		sb.WriteString(p.Name)
		sb.WriteString("\n")
		sb.WriteString(p.Description)
		sb.WriteString("\n")
		for _, b := range p.Bullets {
			sb.WriteString(b)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
