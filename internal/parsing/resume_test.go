package parsing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Smith
Senior Backend Engineer
jane.smith@example.com | (555) 123-4567
linkedin.com/in/janesmith

Summary
Backend engineer with eight years of experience building
distributed systems in Go and Python.

Experience

Senior Backend Engineer at Acme Corp
Jan 2020 - Present
- Led migration of the billing platform to Kubernetes
- Reduced API latency by 40% through caching

Software Engineer | Initech
2016 - 2019
- Built internal tooling for deployment automation

Projects

LogPipe - Streaming log aggregator
- Designed a high-throughput ingestion pipeline

Skills
Languages: Go, Python, SQL
Infrastructure: Docker, Kubernetes, Terraform

Education
B.S. Computer Science, State University

Certifications
AWS Certified Solutions Architect, Amazon
`

func TestParseResumeText_FullDocument(t *testing.T) {
	doc, err := ParseResumeText(sampleResume)
	require.NoError(t, err)

	assert.Equal(t, "Jane Smith", doc.Header.Name)
	assert.Equal(t, "Senior Backend Engineer", doc.Header.TargetRole)
	assert.Equal(t, "jane.smith@example.com", doc.Header.Email)
	assert.NotEmpty(t, doc.Header.Phone)
	assert.Contains(t, doc.Header.LinkedIn, "linkedin.com")

	assert.Contains(t, doc.Summary, "distributed systems")

	require.Len(t, doc.Experience, 2)
	assert.Equal(t, "Senior Backend Engineer", doc.Experience[0].Title)
	assert.Equal(t, "Acme Corp", doc.Experience[0].Company)
	assert.Equal(t, "Jan 2020", doc.Experience[0].StartDate)
	assert.Equal(t, "Present", doc.Experience[0].EndDate)
	assert.Len(t, doc.Experience[0].Bullets, 2)
	assert.Equal(t, "Software Engineer", doc.Experience[1].Title)
	assert.Equal(t, "Initech", doc.Experience[1].Company)

	require.Len(t, doc.Projects, 1)
	assert.Equal(t, "LogPipe", doc.Projects[0].Name)
	assert.Equal(t, "Streaming log aggregator", doc.Projects[0].Description)
	assert.Len(t, doc.Projects[0].Bullets, 1)

	require.Len(t, doc.Skills, 2)
	assert.Equal(t, "Languages", doc.Skills[0].Category)
	assert.Equal(t, []string{"Go", "Python", "SQL"}, doc.Skills[0].Skills)

	require.Len(t, doc.Education, 1)
	assert.Equal(t, "B.S. Computer Science", doc.Education[0].Degree)
	assert.Equal(t, "State University", doc.Education[0].Institution)

	require.Len(t, doc.Certifications, 1)
	assert.Equal(t, "AWS Certified Solutions Architect", doc.Certifications[0].Name)
	assert.Equal(t, "Amazon", doc.Certifications[0].Issuer)
}

func TestParseResumeText_RecordsSectionSequence(t *testing.T) {
	doc, err := ParseResumeText(sampleResume)
	require.NoError(t, err)

	assert.Equal(t, []string{
		SectionSummary,
		SectionExperience,
		SectionProjects,
		SectionSkills,
		SectionEducation,
		SectionCertifications,
	}, doc.SectionSequence)
}

func TestParseResumeText_NonCanonicalOrder(t *testing.T) {
	text := `Jane Smith

Skills
Go, Python

Summary
Engineer.

Experience
Engineer at Acme
- Did things
`
	doc, err := ParseResumeText(text)
	require.NoError(t, err)

	assert.Equal(t, []string{SectionSkills, SectionSummary, SectionExperience}, doc.SectionSequence)
}

func TestParseResumeText_MarkdownHeadings(t *testing.T) {
	text := `Jane Smith

## Summary
Engineer with Go experience.

## Work Experience
Engineer at Acme
- Shipped a service
`
	doc, err := ParseResumeText(text)
	require.NoError(t, err)

	assert.Contains(t, doc.Summary, "Go experience")
	require.Len(t, doc.Experience, 1)
	assert.Equal(t, "Acme", doc.Experience[0].Company)
}

func TestParseResumeText_BareSkillLines(t *testing.T) {
	text := `Jane Smith

Skills
Go, Python, Redis
`
	doc, err := ParseResumeText(text)
	require.NoError(t, err)

	require.Len(t, doc.Skills, 1)
	assert.Equal(t, "General", doc.Skills[0].Category)
	assert.Equal(t, []string{"Go", "Python", "Redis"}, doc.Skills[0].Skills)
}

func TestParseResumeText_NoStructure(t *testing.T) {
	_, err := ParseResumeText("")
	require.Error(t, err)

	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestLoadResumeFile_JSON(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "resume.json")
	content := `{
  "header": {"name": "Jane Smith", "target_role": "Backend Engineer"},
  "summary": "Engineer.",
  "experience": [{"company": "Acme", "title": "Engineer", "bullets": ["Did things"]}]
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	doc, err := LoadResumeFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Jane Smith", doc.Header.Name)
	require.Len(t, doc.Experience, 1)
	assert.Equal(t, "Acme", doc.Experience[0].Company)
}

func TestLoadResumeFile_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "resume.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := LoadResumeFile(path)
	require.Error(t, err)

	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestLoadResumeFile_Text(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleResume), 0644))

	doc, err := LoadResumeFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", doc.Header.Name)
}

func TestLoadResumeFile_Missing(t *testing.T) {
	_, err := LoadResumeFile("/nonexistent/resume.json")
	require.Error(t, err)
}
