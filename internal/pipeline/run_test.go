package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-optimizer/internal/db"
)

func TestRun_FileInputsWithoutOracleOrDatabase(t *testing.T) {
	tmpDir := t.TempDir()
	resumePath := writeResumeFixture(t, tmpDir, "resume.json")

	jobPath := filepath.Join(tmpDir, "job.txt")
	require.NoError(t, os.WriteFile(jobPath, []byte(optimizeJD), 0644))

	var events []ProgressEvent
	result, err := Run(context.Background(), RunOptions{
		ResumePath: resumePath,
		JobPath:    jobPath,
		TargetRole: "Backend Engineer",
		OnProgress: func(event ProgressEvent) {
			events = append(events, event)
		},
	})
	require.NoError(t, err)

	assert.True(t, result.Degraded, "no API key means the deterministic path")
	assert.NotNil(t, result.Resume)
	assert.NotNil(t, result.Compliance)

	require.NotEmpty(t, events)
	assert.Equal(t, db.StepJobDescription, events[0].Step)
}

func TestRun_ExtractsTargetRoleFromJobDescription(t *testing.T) {
	tmpDir := t.TempDir()
	resumePath := writeResumeFixture(t, tmpDir, "resume.json")

	jobPath := filepath.Join(tmpDir, "job.txt")
	require.NoError(t, os.WriteFile(jobPath, []byte(optimizeJD), 0644))

	// No TargetRole: the title comes from the job description's first line.
	result, err := Run(context.Background(), RunOptions{
		ResumePath: resumePath,
		JobPath:    jobPath,
	})
	require.NoError(t, err)
	assert.True(t, result.Compliance.TitlePlacement.InHeader)
}

func TestRun_MissingResumeFails(t *testing.T) {
	tmpDir := t.TempDir()
	jobPath := filepath.Join(tmpDir, "job.txt")
	require.NoError(t, os.WriteFile(jobPath, []byte(optimizeJD), 0644))

	_, err := Run(context.Background(), RunOptions{
		ResumePath: filepath.Join(tmpDir, "missing.json"),
		JobPath:    jobPath,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading resume failed")
}

func TestRun_MissingJobFileFails(t *testing.T) {
	tmpDir := t.TempDir()
	resumePath := writeResumeFixture(t, tmpDir, "resume.json")

	_, err := Run(context.Background(), RunOptions{
		ResumePath: resumePath,
		JobPath:    filepath.Join(tmpDir, "missing.txt"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "job ingestion")
}
