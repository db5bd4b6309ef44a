package repair

import "strings"

// connectors attach an injected keyword to a bullet; rotated by bullet index
// so consecutive injections read differently
var connectors = []string{"using", "leveraging"}

// injectKeyword appends one JD keyword to a bullet that mentions none.
// jdKeywords are normalized lowercase tokens in priority order; allowed is
// the verbatim-technology gate (original resume + JD); display maps a token
// to its canonical display form. At most one keyword is injected per bullet
// and an existing trailing clause is never duplicated.
func injectKeyword(bullet string, bulletIndex int, jdKeywords []string, allowed map[string]bool, display func(string) string) (string, bool) {
	if len(jdKeywords) == 0 {
		return bullet, false
	}

	lower := strings.ToLower(bullet)
	for _, kw := range jdKeywords {
		if containsToken(lower, kw) {
			return bullet, false
		}
	}

	// Rotate the starting point by bullet index so one keyword is not
	// injected into every bullet
	for i := 0; i < len(jdKeywords); i++ {
		kw := jdKeywords[(bulletIndex+i)%len(jdKeywords)]
		if !allowed[kw] {
			continue
		}
		connector := connectors[bulletIndex%len(connectors)]
		clause := " " + connector + " " + display(kw)
		if strings.HasSuffix(strings.TrimRight(lower, ".!? "), strings.ToLower(strings.TrimSpace(clause))) {
			return bullet, false
		}
		return strings.TrimRight(bullet, " ") + clause, true
	}
	return bullet, false
}

// containsToken reports a whole-word occurrence of token in lowercase text
func containsToken(lowerText, token string) bool {
	idx := 0
	for {
		pos := strings.Index(lowerText[idx:], token)
		if pos < 0 {
			return false
		}
		start := idx + pos
		end := start + len(token)
		beforeOK := start == 0 || !isAlnum(lowerText[start-1])
		afterOK := end == len(lowerText) || !isAlnum(lowerText[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
		if idx >= len(lowerText) {
			return false
		}
	}
}

func isAlnum(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9'
}
