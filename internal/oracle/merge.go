package oracle

import "github.com/jonathan/resume-optimizer/internal/types"

// MergeSections merges two oracle responses against the original with one
// precedence rule per section: most-recent non-empty wins, falling back
// from primary to secondary to the original. Nil documents count as empty.
func MergeSections(primary, secondary, original *types.ResumeDocument) *types.ResumeDocument {
	if original == nil {
		original = &types.ResumeDocument{}
	}
	if primary == nil {
		primary = &types.ResumeDocument{}
	}
	if secondary == nil {
		secondary = &types.ResumeDocument{}
	}

	merged := original.Clone()

	merged.Header = pickHeader(primary.Header, secondary.Header, original.Header)
	merged.Summary = pickString(primary.Summary, secondary.Summary, original.Summary)
	merged.Experience = pickExperience(primary, secondary, original)
	merged.Projects = pickProjects(primary, secondary, original)
	merged.Education = pickEducation(primary, secondary, original)
	merged.Skills = pickSkills(primary, secondary, original)
	merged.Certifications = pickCertifications(primary, secondary, original)

	return merged
}

func pickHeader(primary, secondary, original types.Header) types.Header {
	if primary.Name != "" {
		return primary
	}
	if secondary.Name != "" {
		return secondary
	}
	return original
}

func pickString(primary, secondary, original string) string {
	if primary != "" {
		return primary
	}
	if secondary != "" {
		return secondary
	}
	return original
}

func pickExperience(primary, secondary, original *types.ResumeDocument) []types.ExperienceEntry {
	switch {
	case len(primary.Experience) > 0:
		return primary.Clone().Experience
	case len(secondary.Experience) > 0:
		return secondary.Clone().Experience
	default:
		return original.Clone().Experience
	}
}

func pickProjects(primary, secondary, original *types.ResumeDocument) []types.ProjectEntry {
	switch {
	case len(primary.Projects) > 0:
		return primary.Clone().Projects
	case len(secondary.Projects) > 0:
		return secondary.Clone().Projects
	default:
		return original.Clone().Projects
	}
}

func pickEducation(primary, secondary, original *types.ResumeDocument) []types.EducationEntry {
	switch {
	case len(primary.Education) > 0:
		return append([]types.EducationEntry(nil), primary.Education...)
	case len(secondary.Education) > 0:
		return append([]types.EducationEntry(nil), secondary.Education...)
	default:
		return append([]types.EducationEntry(nil), original.Education...)
	}
}

func pickSkills(primary, secondary, original *types.ResumeDocument) []types.SkillGroup {
	switch {
	case len(primary.Skills) > 0:
		return primary.Clone().Skills
	case len(secondary.Skills) > 0:
		return secondary.Clone().Skills
	default:
		return original.Clone().Skills
	}
}

func pickCertifications(primary, secondary, original *types.ResumeDocument) []types.Certification {
	switch {
	case len(primary.Certifications) > 0:
		return append([]types.Certification(nil), primary.Certifications...)
	case len(secondary.Certifications) > 0:
		return append([]types.Certification(nil), secondary.Certifications...)
	default:
		return append([]types.Certification(nil), original.Certifications...)
	}
}
