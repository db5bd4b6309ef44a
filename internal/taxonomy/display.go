package taxonomy

import (
	"regexp"
	"strings"
)

var (
	// trailing version numbers: "python 3.9", "java 11", "angular v14"
	trailingVersionRe = regexp.MustCompile(`\s+v?\d+(\.\d+)*\+?$`)
	// parenthetical version annotations: "react (v18)", "spring (5.x)"
	parenVersionRe = regexp.MustCompile(`\s*\([^)]*\d[^)]*\)$`)
)

// FormatDisplayName returns the canonical display form of a skill token:
// version annotations are stripped, known tokens get canonical
// capitalization, and anything else is title-cased word by word.
// The display form classifies to the same category as the raw token.
func (c *Classifier) FormatDisplayName(token string) string {
	stripped := StripVersion(token)
	normalized := Normalize(stripped)
	if normalized == "" {
		return ""
	}

	if display, ok := c.cfg.DisplayOverrides[normalized]; ok {
		return display
	}
	return titleCase(normalized)
}

// StripVersion removes trailing version numbers and parenthetical version
// annotations from a skill token
func StripVersion(token string) string {
	out := strings.TrimSpace(token)
	out = parenVersionRe.ReplaceAllString(out, "")
	out = trailingVersionRe.ReplaceAllString(out, "")
	return strings.TrimSpace(out)
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if len(w) == 0 {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
