package validation

import (
	"fmt"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// canonicalSections is the expected top-to-bottom resume layout
var canonicalSections = []string{
	"header", "summary", "skills", "experience", "projects", "education", "certifications",
}

var canonicalIndex = buildCanonicalIndex()

func buildCanonicalIndex() map[string]int {
	idx := make(map[string]int, len(canonicalSections))
	for i, s := range canonicalSections {
		idx[s] = i
	}
	return idx
}

// CheckSectionOrder verifies that the present sections form a subsequence of
// the canonical order. Missing sections are fine; each section appearing
// earlier than one already seen is a violation.
func CheckSectionOrder(present []string) types.SectionOrderResult {
	result := types.SectionOrderResult{Present: present, IsValid: true}

	last := -1
	for _, section := range present {
		idx, known := canonicalIndex[section]
		if !known {
			result.Violations = append(result.Violations,
				fmt.Sprintf("unrecognized section %q", section))
			result.IsValid = false
			continue
		}
		if idx < last {
			result.Violations = append(result.Violations,
				fmt.Sprintf("section %q appears out of canonical order", section))
			result.IsValid = false
			continue
		}
		last = idx
	}

	return result
}

// presentSections returns the document's observed section sequence, falling
// back to canonical order derived from which sections are populated
func presentSections(doc *types.ResumeDocument) []string {
	if len(doc.SectionSequence) > 0 {
		return append([]string(nil), doc.SectionSequence...)
	}

	var present []string
	if doc.Header.Name != "" || doc.Header.TargetRole != "" {
		present = append(present, "header")
	}
	if doc.Summary != "" {
		present = append(present, "summary")
	}
	if len(doc.Skills) > 0 {
		present = append(present, "skills")
	}
	if len(doc.Experience) > 0 {
		present = append(present, "experience")
	}
	if len(doc.Projects) > 0 {
		present = append(present, "projects")
	}
	if len(doc.Education) > 0 {
		present = append(present, "education")
	}
	if len(doc.Certifications) > 0 {
		present = append(present, "certifications")
	}
	return present
}
