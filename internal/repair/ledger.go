package repair

// DefaultVerbCeiling is the soft per-document usage target for any one
// leading verb
const DefaultVerbCeiling = 2

// VerbLedger tracks leading-verb usage across one repair pass over one
// document. It is allocated fresh per Repair call and passed explicitly
// through the call chain; it must never outlive a single document.
type VerbLedger struct {
	ceiling int
	counts  map[string]int
}

// NewVerbLedger creates a ledger with the given usage ceiling.
// A non-positive ceiling uses DefaultVerbCeiling.
func NewVerbLedger(ceiling int) *VerbLedger {
	if ceiling <= 0 {
		ceiling = DefaultVerbCeiling
	}
	return &VerbLedger{
		ceiling: ceiling,
		counts:  make(map[string]int),
	}
}

// Resolve charges one use of verb against the ledger. If the verb already
// hit its ceiling, the first synonym still under the ceiling is charged and
// returned instead. When every synonym is exhausted the original verb is
// reused anyway and its counter still increments: the ceiling is a soft
// target, not a hard constraint.
func (l *VerbLedger) Resolve(verb string, synonyms []string) string {
	if l.counts[verb] < l.ceiling {
		l.counts[verb]++
		return verb
	}
	for _, syn := range synonyms {
		if l.counts[syn] < l.ceiling {
			l.counts[syn]++
			return syn
		}
	}
	l.counts[verb]++
	return verb
}

// Count returns how many times verb has been charged
func (l *VerbLedger) Count(verb string) int {
	return l.counts[verb]
}
