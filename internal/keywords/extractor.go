// Package keywords extracts technology tokens from free text and diffs
// resume keywords against job-description keywords to produce gap reports.
package keywords

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/taxonomy"
)

// candidateRe matches technology-shaped single tokens: starts with a letter,
// may carry digits and the punctuation common in tool names (c++, node.js).
var candidateRe = regexp.MustCompile(`[A-Za-z][A-Za-z0-9+#./-]*`)

// productiveSuffixes admit tokens that look like ecosystem package names
// even when absent from the whitelist ("fastify.js", "socket.io").
var productiveSuffixes = []string{".js", "js", ".io"}

// commonVerbs rejects verb tokens that naive matching over a JD would
// otherwise surface as skills
var commonVerbs = map[string]bool{
	"developed": true, "develop": true, "developing": true, "built": true,
	"build": true, "building": true, "created": true, "create": true,
	"designed": true, "design": true, "managed": true, "manage": true,
	"led": true, "lead": true, "leading": true, "worked": true, "work": true,
	"working": true, "implemented": true, "implement": true, "delivered": true,
	"deliver": true, "maintained": true, "maintain": true, "improved": true,
	"improve": true, "collaborate": true, "collaborated": true, "support": true,
	"supported": true, "required": true, "require": true, "preferred": true,
	"seeking": true, "looking": true, "using": true, "used": true, "use": true,
	"writing": true, "write": true, "ensure": true, "ensuring": true,
}

// locations rejects place names that show up in JD headers and footers
var locations = map[string]bool{
	"remote": true, "hybrid": true, "onsite": true, "london": true,
	"berlin": true, "paris": true, "amsterdam": true, "dublin": true,
	"toronto": true, "vancouver": true, "austin": true, "seattle": true,
	"boston": true, "chicago": true, "denver": true, "atlanta": true,
	"francisco": true, "york": true, "angeles": true, "bangalore": true,
	"singapore": true, "sydney": true, "tokyo": true, "usa": true, "uk": true,
	"europe": true, "america": true,
}

// spokenLanguages rejects human languages listed in JD requirement blocks
var spokenLanguages = map[string]bool{
	"english": true, "spanish": true, "french": true, "german": true,
	"mandarin": true, "japanese": true, "portuguese": true, "italian": true,
	"dutch": true, "hindi": true, "korean": true, "arabic": true,
}

// genericNouns rejects generic business and section-header noise.
// "Agile" and friends read like technologies to a naive matcher but carry no
// signal for keyword alignment.
var genericNouns = map[string]bool{
	"agile": true, "scrum": true, "kanban": true, "waterfall": true,
	"team": true, "teams": true, "experience": true, "experiences": true,
	"years": true, "year": true, "skills": true, "skill": true,
	"requirements": true, "requirement": true, "responsibilities": true,
	"responsibility": true, "qualifications": true, "qualification": true,
	"benefits": true, "benefit": true, "salary": true, "equity": true,
	"degree": true, "bachelor": true, "bachelors": true, "master": true,
	"masters": true, "phd": true, "education": true, "summary": true,
	"objective": true, "about": true, "company": true, "role": true,
	"position": true, "job": true, "description": true, "location": true,
	"engineer": true, "engineers": true, "engineering": true,
	"developer": true, "developers": true, "development": true,
	"software": true, "senior": true, "junior": true, "staff": true,
	"principal": true, "candidate": true, "candidates": true,
	"application": true, "applications": true, "product": true,
	"products": true, "business": true, "customer": true, "customers": true,
	"solution": true, "solutions": true, "environment": true, "tools": true,
	"technologies": true, "technology": true, "stack": true, "plus": true,
	"bonus": true, "strong": true, "knowledge": true, "understanding": true,
	"ability": true, "projects": true, "project": true, "certifications": true,
}

// Extractor pulls valid technology tokens from free text. The whitelist is
// derived from an injected taxonomy configuration; soft-skill phrases are not
// technologies and are excluded.
type Extractor struct {
	whitelist map[string]bool
}

// NewExtractor builds an extractor over the technical terms of the given
// taxonomy configuration. A nil config uses taxonomy.DefaultConfig.
func NewExtractor(cfg *taxonomy.Config) *Extractor {
	if cfg == nil {
		cfg = taxonomy.DefaultConfig()
	}

	whitelist := make(map[string]bool)
	for _, rule := range cfg.Rules {
		if rule.Category == taxonomy.CategorySoft {
			continue
		}
		for _, term := range rule.Terms {
			whitelist[term] = true
		}
	}
	return &Extractor{whitelist: whitelist}
}

// ExtractValidSkills returns the set of valid technology tokens found in
// text, in normalized lowercase form. Only whitelisted tokens, or tokens
// matching the productive suffix set, pass the gate.
func (e *Extractor) ExtractValidSkills(text string) map[string]bool {
	found := make(map[string]bool)
	for token := range e.occurrences(text) {
		found[token] = true
	}
	return found
}

// tokenStats tracks per-token occurrence data in one text
type tokenStats struct {
	count    int
	firstPos int
}

// occurrences scans text for valid skill tokens and records occurrence
// counts and the byte offset of the first hit.
func (e *Extractor) occurrences(text string) map[string]tokenStats {
	lower := strings.ToLower(text)
	stats := make(map[string]tokenStats)

	record := func(token string, pos int) {
		s, ok := stats[token]
		if !ok {
			s.firstPos = pos
		}
		s.count++
		stats[token] = s
	}

	// Multi-word whitelist phrases first ("machine learning", "github actions")
	for term := range e.whitelist {
		if !strings.Contains(term, " ") {
			continue
		}
		for _, pos := range wordBoundaryIndexes(lower, term) {
			record(term, pos)
		}
	}

	// Single-token candidates through the whitelist/blacklist gate
	for _, loc := range candidateRe.FindAllStringIndex(lower, -1) {
		token := strings.Trim(lower[loc[0]:loc[1]], "./-")
		if token == "" || isBlacklisted(token) {
			continue
		}
		if e.whitelist[token] || hasProductiveSuffix(token) {
			record(token, loc[0])
		}
	}

	return stats
}

// isBlacklisted rejects verbs, locations, spoken languages, and generic nouns
func isBlacklisted(token string) bool {
	return commonVerbs[token] || locations[token] || spokenLanguages[token] || genericNouns[token]
}

// hasProductiveSuffix accepts ecosystem-shaped names: *.js, *js, *.io
func hasProductiveSuffix(token string) bool {
	for _, suffix := range productiveSuffixes {
		if strings.HasSuffix(token, suffix) && len(token) > len(suffix)+1 {
			return true
		}
	}
	return false
}

// wordBoundaryIndexes returns the byte offsets of whole-word occurrences of
// term within s. Both are expected to be lowercase.
func wordBoundaryIndexes(s, term string) []int {
	var indexes []int
	idx := 0
	for {
		pos := strings.Index(s[idx:], term)
		if pos < 0 {
			return indexes
		}
		start := idx + pos
		end := start + len(term)
		beforeOK := start == 0 || !isTokenChar(s[start-1])
		afterOK := end == len(s) || !isTokenChar(s[end])
		if beforeOK && afterOK {
			indexes = append(indexes, start)
		}
		idx = start + 1
		if idx >= len(s) {
			return indexes
		}
	}
}

func isTokenChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9' || b == '+' || b == '#'
}
