// Package types provides type definitions for structured data used throughout the resume-optimizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// Header holds the contact and targeting fields at the top of a resume
type Header struct {
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Location   string `json:"location,omitempty"`
	LinkedIn   string `json:"linkedin,omitempty"`
	TargetRole string `json:"target_role,omitempty"`
}

// ExperienceEntry represents one position in the work history.
// After repair, every experience entry carries exactly three bullets.
type ExperienceEntry struct {
	Company   string   `json:"company"`
	Title     string   `json:"title"`
	Location  string   `json:"location,omitempty"`
	StartDate string   `json:"start_date,omitempty"`
	EndDate   string   `json:"end_date,omitempty"`
	Bullets   []string `json:"bullets"`
}

// ProjectEntry represents one project. After repair, projects carry two or three bullets.
type ProjectEntry struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Bullets      []string `json:"bullets"`
}

// EducationEntry represents one education credential
type EducationEntry struct {
	Institution    string `json:"institution"`
	Degree         string `json:"degree,omitempty"`
	Field          string `json:"field,omitempty"`
	GraduationDate string `json:"graduation_date,omitempty"`
}

// Certification represents one professional certification
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Year   string `json:"year,omitempty"`
}

// SkillGroup pairs a taxonomy category display name with its skill tokens
type SkillGroup struct {
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
}

// ResumeDocument is the structured resume flowing through the pipeline
type ResumeDocument struct {
	Header         Header            `json:"header"`
	Summary        string            `json:"summary,omitempty"`
	Experience     []ExperienceEntry `json:"experience"`
	Projects       []ProjectEntry    `json:"projects,omitempty"`
	Education      []EducationEntry  `json:"education,omitempty"`
	Skills         []SkillGroup      `json:"skills,omitempty"`
	Certifications []Certification   `json:"certifications,omitempty"`

	// SectionSequence records the order sections appeared in the source
	// text, as seen by the parser. Empty means canonical order.
	SectionSequence []string `json:"section_sequence,omitempty"`

	// ExtractionMode tags how the upstream extractor produced the source
	// text. Empty means direct text.
	ExtractionMode ExtractionMode `json:"extraction_mode,omitempty"`
}

// Clone returns a deep copy of the document. The repair pipeline mutates
// bullets in place, so callers that need the original keep a clone.
func (d *ResumeDocument) Clone() *ResumeDocument {
	if d == nil {
		return nil
	}
	out := *d

	if d.Experience != nil {
		out.Experience = make([]ExperienceEntry, len(d.Experience))
		for i, e := range d.Experience {
			e.Bullets = append([]string(nil), e.Bullets...)
			out.Experience[i] = e
		}
	}
	if d.Projects != nil {
		out.Projects = make([]ProjectEntry, len(d.Projects))
		for i, p := range d.Projects {
			p.Bullets = append([]string(nil), p.Bullets...)
			p.Technologies = append([]string(nil), p.Technologies...)
			out.Projects[i] = p
		}
	}
	out.Education = append([]EducationEntry(nil), d.Education...)
	out.Certifications = append([]Certification(nil), d.Certifications...)
	out.SectionSequence = append([]string(nil), d.SectionSequence...)
	if d.Skills != nil {
		out.Skills = make([]SkillGroup, len(d.Skills))
		for i, g := range d.Skills {
			g.Skills = append([]string(nil), g.Skills...)
			out.Skills[i] = g
		}
	}
	return &out
}

// AllBullets returns every experience and project bullet in document order
func (d *ResumeDocument) AllBullets() []string {
	var bullets []string
	for _, e := range d.Experience {
		bullets = append(bullets, e.Bullets...)
	}
	for _, p := range d.Projects {
		bullets = append(bullets, p.Bullets...)
	}
	return bullets
}

// PlainText renders the document as plain text for keyword and word-count scans
func (d *ResumeDocument) PlainText() string {
	var sb strings.Builder

	writeLine := func(s string) {
		if s != "" {
			sb.WriteString(s)
			sb.WriteString("\n")
		}
	}

	writeLine(d.Header.Name)
	writeLine(d.Header.TargetRole)
	writeLine(d.Summary)
	for _, e := range d.Experience {
		writeLine(e.Title + " at " + e.Company)
		for _, b := range e.Bullets {
			writeLine(b)
		}
	}
	for _, p := range d.Projects {
		writeLine(p.Name)
		writeLine(p.Description)
		for _, b := range p.Bullets {
			writeLine(b)
		}
	}
	for _, g := range d.Skills {
		writeLine(g.Category + ": " + strings.Join(g.Skills, ", "))
	}
	for _, e := range d.Education {
		writeLine(e.Degree + " " + e.Institution)
	}
	for _, c := range d.Certifications {
		writeLine(c.Name)
	}
	return sb.String()
}
