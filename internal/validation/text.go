package validation

import "strings"

// splitFirstWord returns a bullet's first word, trimmed of punctuation, and
// the remainder
func splitFirstWord(text string) (string, string) {
	fields := strings.SplitN(strings.TrimSpace(text), " ", 2)
	first := strings.Trim(fields[0], ".,!?;:")
	if len(fields) == 1 {
		return first, ""
	}
	return first, fields[1]
}

// containsWholeWord reports a word-boundary occurrence of token in
// lowercase text
func containsWholeWord(lowerText, token string) bool {
	return indexWholeWord(lowerText, token, 0) >= 0
}

// countWholeWord counts word-boundary occurrences of token in lowercase text
func countWholeWord(lowerText, token string) int {
	count := 0
	idx := 0
	for {
		pos := indexWholeWord(lowerText, token, idx)
		if pos < 0 {
			return count
		}
		count++
		idx = pos + len(token)
	}
}

// indexWholeWord finds the first word-boundary occurrence of token at or
// after start, or -1. Boundaries treat letters, digits, '+', and '#' as
// word characters so "c++" and "c#" match exactly.
func indexWholeWord(lowerText, token string, start int) int {
	if token == "" {
		return -1
	}
	for start < len(lowerText) {
		pos := strings.Index(lowerText[start:], token)
		if pos < 0 {
			return -1
		}
		begin := start + pos
		end := begin + len(token)
		beforeOK := begin == 0 || !isWordByte(lowerText[begin-1])
		afterOK := end == len(lowerText) || !isWordByte(lowerText[end])
		if beforeOK && afterOK {
			return begin
		}
		start = begin + 1
	}
	return -1
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '+' || b == '#'
}
