package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates the scheduled jobs of the authority server.
type JobManager struct {
	projectionAuditJob *ProjectionAuditJob
}

// NewJobManager creates a job manager with every job of the server.
func NewJobManager(auditor ProjectionAuditor, auditSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		projectionAuditJob: NewProjectionAuditJob(auditor, auditSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.projectionAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start projection audit job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.projectionAuditJob.Stop()
}
