// Package pipeline provides the high-level orchestration for resume
// optimization: gap analysis, the oracle rewrite, repair, reclassification,
// and compliance scoring.
package pipeline

import (
	"context"
	"errors"
	"reflect"
	"sort"

	"github.com/jonathan/resume-optimizer/internal/keywords"
	"github.com/jonathan/resume-optimizer/internal/oracle"
	"github.com/jonathan/resume-optimizer/internal/repair"
	"github.com/jonathan/resume-optimizer/internal/taxonomy"
	"github.com/jonathan/resume-optimizer/internal/types"
	"github.com/jonathan/resume-optimizer/internal/validation"
)

// DefaultMaxInputChars is the combined resume plus job-description ceiling
const DefaultMaxInputChars = 200_000

// missingKeywordBudget caps how many missing keywords are handed to the
// oracle per rewrite
const missingKeywordBudget = 10

// Config tunes an Optimizer; the zero value uses defaults everywhere
type Config struct {
	MaxInputChars   int
	RepairOptions   repair.Options
	ComplianceRules validation.Rules
}

// Optimizer sequences one resume through the full optimization pipeline.
// It holds no per-request state; different resumes may run fully in
// parallel on the same Optimizer.
type Optimizer struct {
	classifier    *taxonomy.Classifier
	extractor     *keywords.Extractor
	analyzer      *keywords.Analyzer
	repairer      *repair.Pipeline
	validator     *validation.Validator
	rewriter      oracle.Oracle
	maxInputChars int
}

// NewOptimizer creates an optimizer. A nil rewriter skips the oracle stage
// entirely and always takes the deterministic degraded path.
func NewOptimizer(rewriter oracle.Oracle, cfg Config) *Optimizer {
	if cfg.MaxInputChars <= 0 {
		cfg.MaxInputChars = DefaultMaxInputChars
	}

	classifier := taxonomy.NewClassifier(nil)
	extractor := keywords.NewExtractor(nil)
	return &Optimizer{
		classifier:    classifier,
		extractor:     extractor,
		analyzer:      keywords.NewAnalyzer(extractor),
		repairer:      repair.NewPipeline(classifier, extractor, cfg.RepairOptions),
		validator:     validation.NewValidator(extractor, cfg.ComplianceRules),
		rewriter:      rewriter,
		maxInputChars: cfg.MaxInputChars,
	}
}

// Optimize runs the full sequence and returns the optimized document with
// its before/after scores, change log, and reports. The input document is
// never mutated. The only error it returns is the fatal size gate; every
// oracle failure degrades to the deterministic path instead.
func (o *Optimizer) Optimize(ctx context.Context, doc *types.ResumeDocument, jd, targetRole string) (*types.OptimizationResult, error) {
	plain := doc.PlainText()
	if chars := len(plain) + len(jd); chars > o.maxInputChars {
		return nil, &InputTooLargeError{Chars: chars, Limit: o.maxInputChars}
	}

	// Lower-quality extraction (optical recognition) discounts the fitness
	// signal on both score cards.
	quality := doc.ExtractionMode.QualityFactor()

	gapBefore := o.analyzer.AnalyzeGaps(doc, jd)
	complianceBefore := o.validator.Validate(doc, jd)
	beforeScore := types.ScoreCard{
		Overall: complianceBefore.OverallScore,
		Fitness: gapBefore.Fitness * quality,
	}

	working, changes, degraded := o.rewriteStage(ctx, doc, jd, targetRole, gapBefore)

	repaired, repairChanges := o.repairer.Repair(working, jd)
	changes = append(changes, repairChanges...)

	if o.reclassifySkills(repaired) {
		changes = append(changes, types.ChangeEntry{
			Section:     "skills",
			Type:        types.ChangeModified,
			Description: "regrouped skills by taxonomy category",
		})
	}

	compliance := o.validator.Validate(repaired, jd)
	gapAfter := o.analyzer.AnalyzeGaps(repaired, jd)

	return &types.OptimizationResult{
		Resume:      repaired,
		BeforeScore: beforeScore,
		AfterScore: types.ScoreCard{
			Overall: compliance.OverallScore,
			Fitness: gapAfter.Fitness * quality,
		},
		Changes:    changes,
		Compliance: compliance,
		Gap:        gapAfter,
		Degraded:   degraded,
	}, nil
}

// rewriteStage calls the oracle and hardens the outcome. Oracle
// unavailability or malformed output degrades to a clone of the original;
// the request always proceeds.
func (o *Optimizer) rewriteStage(ctx context.Context, doc *types.ResumeDocument, jd, targetRole string, gap *types.GapReport) (*types.ResumeDocument, []types.ChangeEntry, bool) {
	if o.rewriter == nil {
		return doc.Clone(), nil, true
	}

	rewritten, err := o.rewriter.Rewrite(ctx, oracle.Request{
		Resume:          doc,
		JobDescription:  jd,
		TargetRole:      targetRole,
		MissingKeywords: gap.TopMissing(missingKeywordBudget),
	})
	if err != nil {
		var unavailable *oracle.UnavailableError
		if errors.As(err, &unavailable) {
			return doc.Clone(), nil, true
		}

		var malformed *oracle.MalformedOutputError
		if errors.As(err, &malformed) {
			return doc.Clone(), []types.ChangeEntry{{
				Section:     "document",
				Type:        types.ChangeCleaned,
				Description: "discarded undecodable rewrite and kept the original sections",
			}}, false
		}
		// anything else is treated as unavailability
		return doc.Clone(), nil, true
	}

	merged := oracle.MergeSections(rewritten, nil, doc)

	var changes []types.ChangeEntry
	if merged.Summary != doc.Summary {
		changes = append(changes, types.ChangeEntry{
			Section:     "summary",
			Type:        types.ChangeRewritten,
			Before:      doc.Summary,
			After:       merged.Summary,
			Description: "rewrote summary toward the target role",
		})
	}
	return merged, changes, false
}

// reclassifySkills rebuilds the document's skill groups from its listed
// skills plus every valid skill mentioned anywhere in its text. Reports
// whether the grouping changed.
func (o *Optimizer) reclassifySkills(doc *types.ResumeDocument) bool {
	var tokens []string
	listed := make(map[string]bool)
	for _, group := range doc.Skills {
		for _, skill := range group.Skills {
			tokens = append(tokens, skill)
			listed[taxonomy.Normalize(taxonomy.StripVersion(skill))] = true
		}
	}

	mentioned := o.extractor.ExtractValidSkills(doc.PlainText())
	extra := make([]string, 0, len(mentioned))
	for token := range mentioned {
		if !listed[token] {
			extra = append(extra, token)
		}
	}
	sort.Strings(extra)
	tokens = append(tokens, extra...)

	groups := o.classifier.Categorize(tokens)
	if reflect.DeepEqual(groups, doc.Skills) {
		return false
	}
	doc.Skills = groups
	return true
}
