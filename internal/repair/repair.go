package repair

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/jonathan/resume-optimizer/internal/keywords"
	"github.com/jonathan/resume-optimizer/internal/taxonomy"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// Options configures the repair pipeline's count and repetition invariants
type Options struct {
	VerbCeiling       int
	WorkEntryBullets  int
	ProjectMinBullets int
	ProjectMaxBullets int
}

// DefaultOptions returns the standard invariants: work entries pinned at
// exactly 3 bullets, projects at 2-3, verb ceiling 2.
func DefaultOptions() Options {
	return Options{
		VerbCeiling:       DefaultVerbCeiling,
		WorkEntryBullets:  3,
		ProjectMinBullets: 2,
		ProjectMaxBullets: 3,
	}
}

// Pipeline is the stateful multi-pass bullet transformer. The pipeline
// itself is reusable and safe for concurrent documents; all per-document
// state lives in the VerbLedger allocated inside each Repair call.
type Pipeline struct {
	opts       Options
	extractor  *keywords.Extractor
	classifier *taxonomy.Classifier
}

// NewPipeline creates a repair pipeline. Nil collaborators use defaults.
func NewPipeline(classifier *taxonomy.Classifier, extractor *keywords.Extractor, opts Options) *Pipeline {
	if classifier == nil {
		classifier = taxonomy.NewClassifier(nil)
	}
	if extractor == nil {
		extractor = keywords.NewExtractor(nil)
	}
	if opts.WorkEntryBullets == 0 {
		opts = DefaultOptions()
	}
	return &Pipeline{opts: opts, extractor: extractor, classifier: classifier}
}

// Repair runs every pass over the document's experience and project bullets
// and enforces entry bullet counts. The input document is not mutated; the
// repaired copy and the change log are returned.
//
// No technology name is ever injected unless it appears verbatim in the
// original resume or the job description.
func (p *Pipeline) Repair(doc *types.ResumeDocument, jd string) (*types.ResumeDocument, []types.ChangeEntry) {
	out := doc.Clone()

	allowed := p.extractor.ExtractValidSkills(doc.PlainText())
	for token := range p.extractor.ExtractValidSkills(jd) {
		allowed[token] = true
	}
	jdKeys := p.orderedJDKeywords(jd)

	ledger := NewVerbLedger(p.opts.VerbCeiling)
	var changes []types.ChangeEntry
	bulletIndex := 0

	for i := range out.Experience {
		entry := &out.Experience[i]
		entry.Bullets, changes = p.repairEntry(
			entry.Bullets, entry.Title, "experience",
			p.opts.WorkEntryBullets, p.opts.WorkEntryBullets,
			ledger, jdKeys, allowed, &bulletIndex, changes,
		)
	}
	for i := range out.Projects {
		project := &out.Projects[i]
		project.Bullets, changes = p.repairEntry(
			project.Bullets, project.Name, "projects",
			p.opts.ProjectMinBullets, p.opts.ProjectMaxBullets,
			ledger, jdKeys, allowed, &bulletIndex, changes,
		)
	}

	return out, changes
}

// orderedJDKeywords returns the JD's valid skill tokens in order of first
// appearance, so injection priority follows the JD's own emphasis
func (p *Pipeline) orderedJDKeywords(jd string) []string {
	set := p.extractor.ExtractValidSkills(jd)
	type positioned struct {
		token string
		pos   int
	}
	lower := strings.ToLower(jd)
	ordered := make([]positioned, 0, len(set))
	for token := range set {
		pos := strings.Index(lower, token)
		if pos < 0 {
			pos = len(lower)
		}
		ordered = append(ordered, positioned{token: token, pos: pos})
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].pos != ordered[j].pos {
			return ordered[i].pos < ordered[j].pos
		}
		return ordered[i].token < ordered[j].token
	})

	tokens := make([]string, len(ordered))
	for i, o := range ordered {
		tokens[i] = o.token
	}
	return tokens
}

// repairEntry repairs each bullet in order, then enforces the entry's
// minimum and maximum bullet counts
func (p *Pipeline) repairEntry(bullets []string, title, section string, minBullets, maxBullets int, ledger *VerbLedger, jdKeys []string, allowed map[string]bool, bulletIndex *int, changes []types.ChangeEntry) ([]string, []types.ChangeEntry) {
	repaired := make([]string, 0, len(bullets))
	for _, b := range bullets {
		if strings.TrimSpace(b) == "" {
			continue
		}
		nb, applied := p.repairBullet(b, *bulletIndex, ledger, jdKeys, allowed)
		*bulletIndex++
		repaired = append(repaired, nb)
		if nb != b {
			changes = append(changes, types.ChangeEntry{
				Section:     section,
				Type:        types.ChangeModified,
				Before:      b,
				After:       nb,
				Description: strings.Join(applied, "; "),
			})
		}
	}

	// Pad to the minimum from the role-keyed fallback bank, deduplicated
	// against what is already there. Padded bullets run through the same
	// passes so the verb ledger stays accurate.
	if len(repaired) < minBullets {
		for _, fb := range fallbackFor(title, repaired) {
			if len(repaired) >= minBullets {
				break
			}
			nb, _ := p.repairBullet(fb, *bulletIndex, ledger, jdKeys, allowed)
			*bulletIndex++
			repaired = append(repaired, nb)
			changes = append(changes, types.ChangeEntry{
				Section:     section,
				Type:        types.ChangeAdded,
				After:       nb,
				Description: fmt.Sprintf("padded %q to its minimum bullet count", title),
			})
		}
	}

	// Truncate to the maximum
	if len(repaired) > maxBullets {
		for _, removed := range repaired[maxBullets:] {
			changes = append(changes, types.ChangeEntry{
				Section:     section,
				Type:        types.ChangeRemoved,
				Before:      removed,
				Description: fmt.Sprintf("truncated %q to its maximum bullet count", title),
			})
		}
		repaired = repaired[:maxBullets]
	}

	return repaired, changes
}

// repairBullet applies the per-bullet passes in order: weak-verb
// substitution, strong-verb enforcement, anti-repetition, quantification,
// keyword injection, and formatting. It returns the repaired bullet and the
// names of the passes that changed it.
func (p *Pipeline) repairBullet(bullet string, bulletIndex int, ledger *VerbLedger, jdKeys []string, allowed map[string]bool) (string, []string) {
	var applied []string
	b := strings.TrimSpace(bullet)

	// 1. Weak-verb substitution (two-word phrases before single words)
	if nb, ok := substituteWeakVerb(b); ok {
		b = nb
		applied = append(applied, "replaced weak verb")
	}

	category := ClassifyBullet(b)

	// 2. Strong-verb enforcement
	first, rest := splitLeading(b)
	if !IsStrongVerb(first) {
		displaced := first
		if displaced != strings.ToUpper(displaced) {
			displaced = strings.ToLower(displaced)
		}
		verb := categoryVerbs[category][0]
		b = strings.TrimSpace(verb + " " + strings.TrimSpace(displaced+" "+rest))
		applied = append(applied, "prepended action verb")
	}

	// 3. Anti-repetition through the ledger
	first, rest = splitLeading(b)
	verb := strings.ToLower(first)
	resolved := ledger.Resolve(verb, synonymsFor(verb, category))
	if resolved != verb {
		b = strings.TrimSpace(resolved + " " + rest)
		applied = append(applied, "swapped repeated verb")
	}

	// 4. Quantification
	if !HasMetric(b) {
		b = strings.TrimRight(b, ".!? ") + ", " + metricPhrase(category, bulletIndex)
		applied = append(applied, "added quantified impact")
	}

	// 5. Keyword injection
	if nb, ok := injectKeyword(strings.TrimRight(b, ".!? "), bulletIndex, jdKeys, allowed, p.classifier.FormatDisplayName); ok {
		b = nb
		applied = append(applied, "injected job keyword")
	}

	// 6. Formatting
	if nb := formatBullet(b); nb != b {
		b = nb
		if len(applied) == 0 {
			applied = append(applied, "normalized formatting")
		}
	}

	return b, applied
}

// substituteWeakVerb replaces a weak leading word or two-word phrase
func substituteWeakVerb(b string) (string, bool) {
	fields := strings.Fields(b)
	if len(fields) == 0 {
		return b, false
	}

	if len(fields) >= 2 {
		phrase := strings.ToLower(fields[0] + " " + fields[1])
		if replacement, ok := weakVerbReplacements[phrase]; ok {
			return strings.TrimSpace(replacement + " " + strings.Join(fields[2:], " ")), true
		}
	}

	word := strings.ToLower(fields[0])
	if replacement, ok := weakVerbReplacements[word]; ok {
		return strings.TrimSpace(replacement + " " + strings.Join(fields[1:], " ")), true
	}
	return b, false
}

// splitLeading splits a bullet into its first word and the remainder
func splitLeading(b string) (string, string) {
	fields := strings.SplitN(strings.TrimSpace(b), " ", 2)
	if len(fields) == 1 {
		return fields[0], ""
	}
	return fields[0], fields[1]
}

// formatBullet capitalizes the leading letter and ensures terminal punctuation
func formatBullet(b string) string {
	b = strings.TrimSpace(b)
	if b == "" {
		return b
	}

	runes := []rune(b)
	runes[0] = unicode.ToUpper(runes[0])
	b = string(runes)

	last := b[len(b)-1]
	if last != '.' && last != '!' && last != '?' {
		b += "."
	}
	return b
}
