// Package parsing turns resume source files into structured documents. JSON
// files decode directly; plain-text resumes go through a deterministic
// sectionizer that records the order sections appeared in the source.
package parsing

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// Canonical section names recorded in SectionSequence.
const (
	SectionSummary        = "summary"
	SectionExperience     = "experience"
	SectionProjects       = "projects"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionCertifications = "certifications"
)

// sectionHeadings maps normalized heading text to canonical section names.
var sectionHeadings = map[string]string{
	"summary":                     SectionSummary,
	"professional summary":        SectionSummary,
	"profile":                     SectionSummary,
	"about":                       SectionSummary,
	"objective":                   SectionSummary,
	"experience":                  SectionExperience,
	"work experience":             SectionExperience,
	"professional experience":     SectionExperience,
	"employment":                  SectionExperience,
	"employment history":          SectionExperience,
	"projects":                    SectionProjects,
	"personal projects":           SectionProjects,
	"selected projects":           SectionProjects,
	"education":                   SectionEducation,
	"skills":                      SectionSkills,
	"technical skills":            SectionSkills,
	"core skills":                 SectionSkills,
	"technologies":                SectionSkills,
	"certifications":              SectionCertifications,
	"certificates":                SectionCertifications,
	"licenses and certifications": SectionCertifications,
}

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phoneRe = regexp.MustCompile(`\+?\d[\d\s().\-]{7,}\d`)
	// "Senior Engineer at Acme" or "Senior Engineer | Acme" or "Senior Engineer - Acme"
	titleCompanyRe = regexp.MustCompile(`^(.{2,60}?)\s+(?:at|@)\s+(.{2,60})$`)
	dateRangeRe    = regexp.MustCompile(`(?i)\b((?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{4}|\d{4})\s*[-–—]\s*((?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{4}|\d{4}|Present|Current)`)
)

// LoadResumeFile reads a resume from disk. Files with a .json extension are
// decoded as structured documents; everything else is parsed as plain text.
func LoadResumeFile(path string) (*types.ResumeDocument, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Message: fmt.Sprintf("reading %s", path), Cause: err}
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		var doc types.ResumeDocument
		if err := json.Unmarshal(content, &doc); err != nil {
			return nil, &ParseError{Message: "decoding resume JSON", Cause: err}
		}
		return &doc, nil
	}

	return ParseResumeText(string(content))
}

// ParseResumeText parses a plain-text resume into a structured document.
// Section headings are matched case-insensitively against common names; text
// before the first recognized heading is treated as the header block. The
// observed heading order is recorded in SectionSequence.
func ParseResumeText(text string) (*types.ResumeDocument, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")

	doc := &types.ResumeDocument{ExtractionMode: types.ExtractionDirectText}

	var headerLines []string
	current := ""
	var sectionLines []string

	flush := func() {
		if current != "" {
			parseSection(doc, current, sectionLines)
		}
		sectionLines = nil
	}

	for _, raw := range lines {
		line := strings.TrimRight(raw, " \t")
		if section, ok := matchHeading(line); ok {
			flush()
			current = section
			doc.SectionSequence = append(doc.SectionSequence, section)
			continue
		}
		if current == "" {
			headerLines = append(headerLines, line)
		} else {
			sectionLines = append(sectionLines, line)
		}
	}
	flush()

	parseHeader(doc, headerLines)

	if doc.Header.Name == "" && len(doc.SectionSequence) == 0 {
		return nil, &ParseError{Message: "no recognizable resume structure"}
	}
	return doc, nil
}

// matchHeading reports whether a line is a section heading. Headings are
// short lines matching a known section name, with optional markdown markers
// or trailing colons.
func matchHeading(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.TrimLeft(trimmed, "#")
	trimmed = strings.TrimSpace(trimmed)
	trimmed = strings.TrimSuffix(trimmed, ":")
	if trimmed == "" || len(trimmed) > 40 {
		return "", false
	}
	section, ok := sectionHeadings[strings.ToLower(trimmed)]
	return section, ok
}

// parseHeader fills contact fields from the pre-section block. The first
// non-empty line is the candidate name; a line that is neither contact info
// nor too long is taken as the target role.
func parseHeader(doc *types.ResumeDocument, lines []string) {
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if email := emailRe.FindString(trimmed); email != "" && doc.Header.Email == "" {
			doc.Header.Email = email
		}
		if phone := phoneRe.FindString(trimmed); phone != "" && doc.Header.Phone == "" {
			doc.Header.Phone = strings.TrimSpace(phone)
		}
		if strings.Contains(strings.ToLower(trimmed), "linkedin.com") && doc.Header.LinkedIn == "" {
			doc.Header.LinkedIn = trimmed
		}

		isContact := emailRe.MatchString(trimmed) || phoneRe.MatchString(trimmed) ||
			strings.Contains(trimmed, "linkedin.com") || strings.Contains(trimmed, "github.com")
		if isContact {
			continue
		}

		if doc.Header.Name == "" {
			doc.Header.Name = trimmed
			continue
		}
		if doc.Header.TargetRole == "" && len(strings.Fields(trimmed)) <= 8 {
			doc.Header.TargetRole = trimmed
		}
	}
}

// parseSection dispatches the lines under a heading to the matching parser.
func parseSection(doc *types.ResumeDocument, section string, lines []string) {
	switch section {
	case SectionSummary:
		doc.Summary = joinParagraph(lines)
	case SectionExperience:
		doc.Experience = append(doc.Experience, parseExperience(lines)...)
	case SectionProjects:
		doc.Projects = append(doc.Projects, parseProjects(lines)...)
	case SectionEducation:
		doc.Education = append(doc.Education, parseEducation(lines)...)
	case SectionSkills:
		doc.Skills = append(doc.Skills, parseSkills(lines)...)
	case SectionCertifications:
		doc.Certifications = append(doc.Certifications, parseCertifications(lines)...)
	}
}

// parseExperience splits lines into entries. A non-bullet line starts a new
// entry; its title and company come from "Title at Company" patterns, with a
// bare line falling back to title-only. Date ranges on the entry line or the
// following line populate the dates.
func parseExperience(lines []string) []types.ExperienceEntry {
	var entries []types.ExperienceEntry

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if bullet, ok := bulletText(trimmed); ok {
			if len(entries) > 0 {
				entries[len(entries)-1].Bullets = append(entries[len(entries)-1].Bullets, bullet)
			}
			continue
		}

		if len(entries) > 0 && entries[len(entries)-1].StartDate == "" && len(entries[len(entries)-1].Bullets) == 0 {
			if m := dateRangeRe.FindStringSubmatch(trimmed); m != nil && dateOnly(trimmed) {
				entries[len(entries)-1].StartDate = m[1]
				entries[len(entries)-1].EndDate = m[2]
				continue
			}
		}

		entries = append(entries, parseEntryLine(trimmed))
	}
	return entries
}

// parseEntryLine extracts title, company, and dates from an entry line.
func parseEntryLine(line string) types.ExperienceEntry {
	entry := types.ExperienceEntry{}

	if m := dateRangeRe.FindStringSubmatch(line); m != nil {
		entry.StartDate = m[1]
		entry.EndDate = m[2]
		line = strings.TrimSpace(dateRangeRe.ReplaceAllString(line, ""))
		line = strings.Trim(line, " |,-–—()")
	}

	if m := titleCompanyRe.FindStringSubmatch(line); m != nil {
		entry.Title = strings.TrimSpace(m[1])
		entry.Company = strings.TrimSpace(m[2])
		return entry
	}

	for _, sep := range []string{" | ", " — ", " – ", ", "} {
		if idx := strings.Index(line, sep); idx > 0 {
			entry.Title = strings.TrimSpace(line[:idx])
			entry.Company = strings.TrimSpace(line[idx+len(sep):])
			return entry
		}
	}

	entry.Title = line
	return entry
}

// parseProjects splits lines into project entries. A non-bullet line starts a
// new project; "Name - description" and "Name: description" both work.
func parseProjects(lines []string) []types.ProjectEntry {
	var projects []types.ProjectEntry

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if bullet, ok := bulletText(trimmed); ok {
			if len(projects) > 0 {
				projects[len(projects)-1].Bullets = append(projects[len(projects)-1].Bullets, bullet)
			}
			continue
		}

		project := types.ProjectEntry{Name: trimmed}
		for _, sep := range []string{" - ", " — ", " – ", ": "} {
			if idx := strings.Index(trimmed, sep); idx > 0 {
				project.Name = strings.TrimSpace(trimmed[:idx])
				project.Description = strings.TrimSpace(trimmed[idx+len(sep):])
				break
			}
		}
		projects = append(projects, project)
	}
	return projects
}

// parseEducation reads one credential per non-empty line.
func parseEducation(lines []string) []types.EducationEntry {
	var entries []types.EducationEntry

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if bullet, ok := bulletText(trimmed); ok {
			trimmed = bullet
		}

		entry := types.EducationEntry{Institution: trimmed}
		for _, sep := range []string{" - ", " — ", " – ", ", "} {
			if idx := strings.Index(trimmed, sep); idx > 0 {
				entry.Degree = strings.TrimSpace(trimmed[:idx])
				entry.Institution = strings.TrimSpace(trimmed[idx+len(sep):])
				break
			}
		}
		entries = append(entries, entry)
	}
	return entries
}

// parseSkills reads skill groups. "Category: a, b, c" lines keep their
// category; bare comma-separated lines fall into a General group.
func parseSkills(lines []string) []types.SkillGroup {
	var groups []types.SkillGroup
	var general []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if bullet, ok := bulletText(trimmed); ok {
			trimmed = bullet
		}

		if idx := strings.Index(trimmed, ":"); idx > 0 && idx < 40 {
			groups = append(groups, types.SkillGroup{
				Category: strings.TrimSpace(trimmed[:idx]),
				Skills:   splitSkillList(trimmed[idx+1:]),
			})
			continue
		}
		general = append(general, splitSkillList(trimmed)...)
	}

	if len(general) > 0 {
		groups = append(groups, types.SkillGroup{Category: "General", Skills: general})
	}
	return groups
}

// parseCertifications reads one certification per non-empty line, with an
// optional ", Issuer" suffix.
func parseCertifications(lines []string) []types.Certification {
	var certs []types.Certification

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if bullet, ok := bulletText(trimmed); ok {
			trimmed = bullet
		}

		cert := types.Certification{Name: trimmed}
		if idx := strings.LastIndex(trimmed, ", "); idx > 0 {
			cert.Name = strings.TrimSpace(trimmed[:idx])
			cert.Issuer = strings.TrimSpace(trimmed[idx+2:])
		}
		certs = append(certs, cert)
	}
	return certs
}

// bulletText strips a leading bullet marker, reporting whether one was found.
func bulletText(line string) (string, bool) {
	for _, marker := range []string{"- ", "* ", "• ", "· "} {
		if strings.HasPrefix(line, marker) {
			return strings.TrimSpace(line[len(marker):]), true
		}
	}
	return line, false
}

// dateOnly reports whether a line contains nothing but a date range.
func dateOnly(line string) bool {
	rest := dateRangeRe.ReplaceAllString(line, "")
	return strings.Trim(rest, " |,-–—()") == ""
}

// joinParagraph joins non-empty lines into a single paragraph.
func joinParagraph(lines []string) string {
	var parts []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, " ")
}

// splitSkillList splits a comma- or slash-separated skill list.
func splitSkillList(s string) []string {
	var skills []string
	for _, part := range strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';'
	}) {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}
