package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-optimizer/internal/types"
)

const testResume = `Jane Smith
jane.smith@example.com | (555) 123-4567

Summary
Backend engineer with six years building distributed services in Go.

Experience
Backend Engineer at Acme Corp
Jan 2020 - Present
- Built payment processing services in Go handling 2M requests per day
- Responsible for the billing service

Skills
Languages: Go, Python
`

const testJD = `Backend Engineer

Requirements:
- Go and PostgreSQL experience
- Kubernetes in production
- Docker
`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	s, err := New(context.Background(), Config{Port: 0})
	require.NoError(t, err)
	return s
}

func postJSON(t *testing.T, s *Server, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth_OK(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestHandleAnalyze_ReturnsGapReport(t *testing.T) {
	s := newTestServer(t)

	rec := postJSON(t, s, "/api/v1/analyze", AnalyzeRequest{
		Resume:         testResume,
		JobDescription: testJD,
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var report types.GapReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))

	assert.NotEmpty(t, report.Matched)
	assert.NotEmpty(t, report.Missing)
	assert.Greater(t, report.Fitness, 0.0)

	missing := make([]string, 0, len(report.Missing))
	for _, m := range report.Missing {
		missing = append(missing, m.Keyword)
	}
	assert.Contains(t, missing, "kubernetes")
}

func TestHandleAnalyze_MissingField(t *testing.T) {
	s := newTestServer(t)

	rec := postJSON(t, s, "/api/v1/analyze", AnalyzeRequest{
		JobDescription: testJD,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Validation failed")
}

func TestHandleAnalyze_MalformedJSON(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", bytes.NewBufferString("{ not json"))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON body")
}

func TestHandleOptimize_DegradedWithoutOracle(t *testing.T) {
	s := newTestServer(t)

	rec := postJSON(t, s, "/api/v1/optimize", OptimizeRequest{
		Resume:         testResume,
		JobDescription: testJD,
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var result types.OptimizationResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))

	// No API key configured, so rewriting degrades to the deterministic path
	assert.True(t, result.Degraded)
	require.NotNil(t, result.Resume)
	require.NotNil(t, result.Compliance)
	require.NotNil(t, result.Gap)

	// Repair still runs: every experience entry carries exactly three bullets
	for _, entry := range result.Resume.Experience {
		assert.Len(t, entry.Bullets, 3)
	}
}

func TestHandleOptimize_StructuredResumeJSON(t *testing.T) {
	s := newTestServer(t)

	doc := types.ResumeDocument{
		Header: types.Header{Name: "Jane Smith", Email: "jane@example.com"},
		Experience: []types.ExperienceEntry{
			{
				Title:   "Backend Engineer",
				Company: "Acme Corp",
				Bullets: []string{"Built payment services in Go handling 2M requests per day"},
			},
		},
	}
	raw, err := json.Marshal(&doc)
	require.NoError(t, err)

	rec := postJSON(t, s, "/api/v1/optimize", OptimizeRequest{
		Resume:         string(raw),
		JobDescription: testJD,
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var result types.OptimizationResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "Jane Smith", result.Resume.Header.Name)
}

func TestHandleValidate_ReturnsComplianceReport(t *testing.T) {
	s := newTestServer(t)

	rec := postJSON(t, s, "/api/v1/validate", ValidateRequest{
		Resume:         testResume,
		JobDescription: testJD,
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var report types.ComplianceReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))

	assert.GreaterOrEqual(t, report.OverallScore, 0)
	assert.LessOrEqual(t, report.OverallScore, 100)
	assert.True(t, report.TitlePlacement.InHeader || report.TitlePlacement.TotalMentions >= 0)
}

func TestHandleValidate_UnparsableResume(t *testing.T) {
	s := newTestServer(t)

	rec := postJSON(t, s, "/api/v1/validate", ValidateRequest{
		Resume:         "{ broken json",
		JobDescription: testJD,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to parse resume")
}

func TestHTTPStatus_Mapping(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ErrValidation{Field: "resume", Message: "required"}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(assert.AnError))
}

func TestResolveTargetRole_ExplicitRoleWins(t *testing.T) {
	doc := &types.ResumeDocument{Header: types.Header{TargetRole: "Backend Engineer"}}

	role := resolveTargetRole("Staff Platform Architect", "Senior Backend Engineer\n\nRequirements:\n- Go", doc)
	assert.Equal(t, "Staff Platform Architect", role)
}

func TestResolveTargetRole_ExtractedFromJobDescription(t *testing.T) {
	doc := &types.ResumeDocument{Header: types.Header{TargetRole: "Backend Engineer"}}

	role := resolveTargetRole("", "Senior Backend Engineer\n\nRequirements:\n- Go", doc)
	assert.Equal(t, "Senior Backend Engineer", role)
}

func TestResolveTargetRole_FallsBackToResumeHeader(t *testing.T) {
	doc := &types.ResumeDocument{Header: types.Header{TargetRole: "Backend Engineer"}}

	role := resolveTargetRole("", "", doc)
	assert.Equal(t, "Backend Engineer", role)
}
