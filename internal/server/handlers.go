package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/db"
	"github.com/jonathan/resume-optimizer/internal/parsing"
	"github.com/jonathan/resume-optimizer/internal/types"
	"github.com/jonathan/resume-optimizer/internal/validation"
)

// AnalyzeRequest is the request body for POST /api/v1/analyze
type AnalyzeRequest struct {
	Resume         string `json:"resume" validate:"required"`
	JobDescription string `json:"job_description" validate:"required,min=1"`
}

// OptimizeRequest is the request body for POST /api/v1/optimize
type OptimizeRequest struct {
	Resume         string `json:"resume" validate:"required"`
	JobDescription string `json:"job_description" validate:"required,min=1"`
	TargetRole     string `json:"target_role"`
}

// ValidateRequest is the request body for POST /api/v1/validate
type ValidateRequest struct {
	Resume         string `json:"resume" validate:"required"`
	JobDescription string `json:"job_description" validate:"required,min=1"`
}

// decodeAndValidate decodes the request body into dst and runs struct validation
func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return false
	}
	return true
}

// parseResume accepts either a structured JSON resume document or plain
// resume text and returns the parsed document.
func parseResume(raw string) (*types.ResumeDocument, error) {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "{") {
		var doc types.ResumeDocument
		if err := json.Unmarshal([]byte(trimmed), &doc); err != nil {
			return nil, &parsing.ParseError{Message: "invalid resume JSON", Cause: err}
		}
		return &doc, nil
	}
	return parsing.ParseResumeText(raw)
}

// handleAnalyze computes a keyword gap report for a resume against a job description
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	doc, err := parseResume(req.Resume)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to parse resume: "+err.Error())
		return
	}

	report := s.analyzer.AnalyzeGaps(doc, req.JobDescription)
	s.jsonResponse(w, http.StatusOK, report)
}

// handleOptimize runs the full optimization pipeline for a resume against a
// job description. When a database is configured the run and its artifacts
// are persisted; persistence failures are logged, never surfaced.
func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	var req OptimizeRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	doc, err := parseResume(req.Resume)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to parse resume: "+err.Error())
		return
	}

	targetRole := resolveTargetRole(req.TargetRole, req.JobDescription, doc)

	result, err := s.optimizer.Optimize(r.Context(), doc, req.JobDescription, targetRole)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Optimization failed: "+err.Error())
		return
	}

	if s.db != nil {
		s.persistRun(r, targetRole, req.JobDescription, doc, result)
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// resolveTargetRole prefers the client's explicit role; only without one is
// the role extracted from the job description, falling back to the resume's
// own target role.
func resolveTargetRole(explicit, jd string, doc *types.ResumeDocument) string {
	if explicit != "" {
		return explicit
	}
	return validation.ExtractJobTitle(jd, doc.Header.TargetRole)
}

// handleValidate computes a compliance report for a resume against a job description
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	doc, err := parseResume(req.Resume)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to parse resume: "+err.Error())
		return
	}

	report := s.validator.Validate(doc, req.JobDescription)
	s.jsonResponse(w, http.StatusOK, report)
}

// persistRun records a completed optimization run and its artifacts
func (s *Server) persistRun(r *http.Request, targetRole, jd string, doc *types.ResumeDocument, result *types.OptimizationResult) {
	ctx := r.Context()

	runID, err := s.db.CreateRun(ctx, targetRole, "api:"+s.extractClientID(r))
	if err != nil {
		log.Printf("Warning: failed to record run: %v", err)
		return
	}

	artifacts := []struct {
		step     string
		category string
		content  any
	}{
		{db.StepOriginalResume, db.CategoryIngestion, doc},
		{db.StepGapReport, db.CategoryAnalysis, result.Gap},
		{db.StepOptimizedResume, db.CategoryOptimization, result.Resume},
		{db.StepChangeLog, db.CategoryOptimization, result.Changes},
		{db.StepCompliance, db.CategoryAnalysis, result.Compliance},
		{db.StepResult, db.CategoryOptimization, result},
	}

	if err := s.db.SaveTextArtifact(ctx, runID, db.StepJobDescription, db.CategoryIngestion, jd); err != nil {
		log.Printf("Warning: failed to save job description artifact: %v", err)
	}
	for _, a := range artifacts {
		if err := s.db.SaveArtifact(ctx, runID, a.step, a.category, a.content); err != nil {
			log.Printf("Warning: failed to save %s artifact: %v", a.step, err)
		}
	}

	status := db.StatusCompleted
	if result.Degraded {
		status = db.StatusDegraded
	}
	if err := s.db.CompleteRun(ctx, runID, status); err != nil {
		log.Printf("Warning: failed to complete run: %v", err)
	}
}
