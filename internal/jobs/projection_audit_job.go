package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/services"
)

// DefaultAuditSchedule runs the audit every minute.
const DefaultAuditSchedule = "0 * * * * *"

// ProjectionAuditor is satisfied by queries.AuditProjectionsQueryHandler.
type ProjectionAuditor interface {
	Handle(ctx context.Context, query queries.AuditProjectionsQuery) ([]services.Discrepancy, error)
}

// ProjectionAuditJob periodically compares every package's cached status and
// location with its latest track and logs each discrepancy. It never repairs data.
type ProjectionAuditJob struct {
	auditor  ProjectionAuditor
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewProjectionAuditJob creates the audit job. schedule is a six field cron
// expression (with seconds); empty means DefaultAuditSchedule.
func NewProjectionAuditJob(auditor ProjectionAuditor, schedule string, logger *slog.Logger) *ProjectionAuditJob {
	if schedule == "" {
		schedule = DefaultAuditSchedule
	}
	return &ProjectionAuditJob{
		auditor:  auditor,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "projection_audit_job"),
	}
}

// Start schedules the audit.
func (j *ProjectionAuditJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Projection audit job started", "schedule", j.schedule)
	return nil
}

// Run performs one audit and returns the number of discrepancies found, or -1
// when the audit itself failed.
func (j *ProjectionAuditJob) Run(ctx context.Context) int {
	found, err := j.auditor.Handle(ctx, queries.NewAuditProjectionsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Projection audit failed", "error", err)
		return -1
	}

	for _, d := range found {
		j.logger.WarnContext(ctx, "Projection drift", "package_id", d.PackageID.Int64(), "reason", d.Reason)
	}
	if len(found) > 0 {
		j.logger.WarnContext(ctx, "Projection audit found discrepancies", "count", len(found))
	}
	return len(found)
}

// Stop waits for a running audit to finish.
func (j *ProjectionAuditJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Projection audit job stopped")
}
