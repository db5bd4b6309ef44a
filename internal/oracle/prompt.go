package oracle

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/prompts"
)

// buildRewritePrompt assembles the oracle prompt from the externalized
// templates in the prompts package
func buildRewritePrompt(req Request) (string, error) {
	if req.Resume == nil {
		return "", fmt.Errorf("rewrite request has no resume")
	}
	resumeJSON, err := json.MarshalIndent(req.Resume, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode resume for prompt: %w", err)
	}

	targetRole := req.TargetRole
	if targetRole == "" {
		targetRole = req.Resume.Header.TargetRole
	}

	var sb strings.Builder
	intro := prompts.MustGet("rewrite.json", "rewrite-intro")
	sb.WriteString(prompts.Format(intro, map[string]string{
		"TargetRole":     targetRole,
		"ResumeJSON":     string(resumeJSON),
		"JobDescription": req.JobDescription,
	}))

	if len(req.MissingKeywords) > 0 {
		keywords := prompts.MustGet("rewrite.json", "rewrite-keywords")
		sb.WriteString(prompts.Format(keywords, map[string]string{
			"Keywords": "- " + strings.Join(req.MissingKeywords, "\n- "),
		}))
	}

	sb.WriteString(prompts.MustGet("rewrite.json", "rewrite-requirements"))
	return sb.String(), nil
}
