package oracle

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/schemas"
	"github.com/jonathan/resume-optimizer/internal/types"
)

var (
	// blockCommentRe strips /* ... */ and <!-- ... --> markup the oracle
	// sometimes wraps around or inside its JSON
	blockCommentRe = regexp.MustCompile(`(?s)/\*.*?\*/|<!--.*?-->`)
	// lineCommentRe strips whole lines that are only a // comment
	lineCommentRe = regexp.MustCompile(`(?m)^\s*//.*$`)
)

// SanitizeOutput strips markdown fences and comment-like markup from a raw
// oracle response, leaving what should be a bare JSON object
func SanitizeOutput(raw string) string {
	text := strings.TrimSpace(raw)

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
	}

	text = blockCommentRe.ReplaceAllString(text, "")
	text = lineCommentRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// rawSections is the tolerant intermediate decoding of an oracle response
type rawSections struct {
	Header         json.RawMessage `json:"header"`
	Summary        json.RawMessage `json:"summary"`
	Experience     json.RawMessage `json:"experience"`
	Projects       json.RawMessage `json:"projects"`
	Education      json.RawMessage `json:"education"`
	Skills         json.RawMessage `json:"skills"`
	Certifications json.RawMessage `json:"certifications"`
}

// ParseRewriteOutput turns a raw oracle response into a resume document.
// The response is sanitized and schema-checked; a schema-valid response
// decodes directly, anything else decodes section by section with every
// missing or mistyped section substituted verbatim from the original.
// A response that is not a JSON object at all is a MalformedOutputError.
func ParseRewriteOutput(raw string, original *types.ResumeDocument) (*types.ResumeDocument, error) {
	cleaned := SanitizeOutput(raw)
	if cleaned == "" {
		return nil, &MalformedOutputError{Reason: "empty response"}
	}

	if err := schemas.ValidateRewriteOutput(cleaned); err == nil {
		var doc types.ResumeDocument
		if err := json.Unmarshal([]byte(cleaned), &doc); err == nil {
			fillMissingSections(&doc, original)
			return &doc, nil
		}
	}

	var sections rawSections
	if err := json.Unmarshal([]byte(cleaned), &sections); err != nil {
		return nil, &MalformedOutputError{Reason: "response is not a JSON object", Cause: err}
	}

	doc := original.Clone()
	decodeSection(sections.Header, &doc.Header)
	decodeSection(sections.Summary, &doc.Summary)
	decodeSection(sections.Experience, &doc.Experience)
	decodeSection(sections.Projects, &doc.Projects)
	decodeSection(sections.Education, &doc.Education)
	decodeSection(sections.Skills, &doc.Skills)
	decodeSection(sections.Certifications, &doc.Certifications)
	fillMissingSections(doc, original)
	return doc, nil
}

// decodeSection overwrites dst only when raw decodes cleanly; mistyped or
// absent sections keep the value already in dst
func decodeSection[T any](raw json.RawMessage, dst *T) {
	if len(raw) == 0 {
		return
	}
	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		return
	}
	*dst = value
}

// fillMissingSections substitutes empty required sections from the original
func fillMissingSections(doc, original *types.ResumeDocument) {
	if doc.Header.Name == "" {
		doc.Header = original.Header
	}
	if doc.Summary == "" {
		doc.Summary = original.Summary
	}
	if len(doc.Experience) == 0 {
		doc.Experience = original.Clone().Experience
	}
	if len(doc.Projects) == 0 {
		doc.Projects = original.Clone().Projects
	}
	if len(doc.Education) == 0 {
		doc.Education = append([]types.EducationEntry(nil), original.Education...)
	}
	if len(doc.Skills) == 0 {
		doc.Skills = original.Clone().Skills
	}
	if len(doc.Certifications) == 0 {
		doc.Certifications = append([]types.Certification(nil), original.Certifications...)
	}
}
