package oracle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRewritePrompt_IncludesResumeAndKeywords(t *testing.T) {
	prompt, err := buildRewritePrompt(Request{
		Resume:          originalDoc(),
		JobDescription:  "Backend Engineer role using Kubernetes.",
		TargetRole:      "Backend Engineer",
		MissingKeywords: []string{"kubernetes", "terraform"},
	})

	require.NoError(t, err)
	assert.Contains(t, prompt, "Jordan Smith")
	assert.Contains(t, prompt, "Backend Engineer role using Kubernetes.")
	assert.Contains(t, prompt, "- kubernetes")
	assert.Contains(t, prompt, "Return ONLY a JSON object")
}

func TestBuildRewritePrompt_NilResumeRejected(t *testing.T) {
	_, err := buildRewritePrompt(Request{})
	assert.Error(t, err)
}
