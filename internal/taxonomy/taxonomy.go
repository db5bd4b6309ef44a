// Package taxonomy classifies free-text skill tokens into canonical categories
// using an ordered rule cascade. Rule order is data, not control flow: the
// cascade is an ordered list of (matcher, category) pairs and the first match
// wins. A token that matches no rule is uncategorized, which is not an error.
package taxonomy

import "strings"

// Category is one of the nine canonical skill categories
type Category string

// Canonical categories, in cascade priority order. Programming languages are
// deliberately matched after frameworks so a language substring ("java")
// cannot falsely match a superstring framework name ("javascript").
const (
	CategoryDataScience Category = "data_science"
	CategoryFrontend    Category = "frontend"
	CategoryBackend     Category = "backend"
	CategoryDatabase    Category = "database"
	CategoryTesting     Category = "testing"
	CategoryLanguage    Category = "language"
	CategoryCloud       Category = "cloud_devops"
	CategoryTools       Category = "tools"
	CategorySoft        Category = "soft_skills"
)

// DisplayName returns the human-readable section heading for a category
func (c Category) DisplayName() string {
	switch c {
	case CategoryDataScience:
		return "Data Science & ML"
	case CategoryFrontend:
		return "Frontend"
	case CategoryBackend:
		return "Backend"
	case CategoryDatabase:
		return "Databases"
	case CategoryTesting:
		return "Testing & QA"
	case CategoryLanguage:
		return "Programming Languages"
	case CategoryCloud:
		return "Cloud & DevOps"
	case CategoryTools:
		return "Tools & Platforms"
	case CategorySoft:
		return "Soft Skills"
	default:
		return "Other"
	}
}

// MatchKind selects how a rule's terms are compared against a token
type MatchKind int

// Match kinds for cascade rules
const (
	// MatchContains matches when the token contains a term as a substring
	MatchContains MatchKind = iota
	// MatchWord matches when a term appears as a whole word in the token.
	// Used for language names so "java" does not match "javascript".
	MatchWord
)

// Rule is one entry in the classification cascade
type Rule struct {
	Category Category
	Kind     MatchKind
	Terms    []string
}

// Config holds the immutable classification tables. Build one with
// DefaultConfig and inject it; the classifier never mutates it.
type Config struct {
	Rules            []Rule
	DisplayOverrides map[string]string
}

// Classifier categorizes skill tokens against an injected Config
type Classifier struct {
	cfg *Config
}

// NewClassifier creates a classifier over the given configuration.
// A nil config uses DefaultConfig.
func NewClassifier(cfg *Config) *Classifier {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Classifier{cfg: cfg}
}

// Classify assigns a token to exactly one category. The token is trimmed and
// lowercased, then matched through the cascade most-specific-first; the first
// matching rule wins. ok is false when no rule matches.
func (c *Classifier) Classify(token string) (Category, bool) {
	normalized := Normalize(token)
	if normalized == "" {
		return "", false
	}

	for _, rule := range c.cfg.Rules {
		if ruleMatches(rule, normalized) {
			return rule.Category, true
		}
	}
	return "", false
}

// Normalize returns the canonical lowercase comparison form of a token
func Normalize(token string) string {
	return strings.ToLower(strings.TrimSpace(token))
}

func ruleMatches(rule Rule, normalized string) bool {
	for _, term := range rule.Terms {
		switch rule.Kind {
		case MatchWord:
			if containsWord(normalized, term) {
				return true
			}
		default:
			if strings.Contains(normalized, term) {
				return true
			}
		}
	}
	return false
}

// containsWord reports whether term occurs in s bounded by non-alphanumeric
// characters. "java" matches "java 11" and "core java" but not "javascript".
func containsWord(s, term string) bool {
	idx := 0
	for {
		pos := strings.Index(s[idx:], term)
		if pos < 0 {
			return false
		}
		start := idx + pos
		end := start + len(term)
		beforeOK := start == 0 || !isWordChar(s[start-1])
		afterOK := end == len(s) || !isWordChar(s[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
		if idx >= len(s) {
			return false
		}
	}
}

func isWordChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9' || b == '+' || b == '#'
}
