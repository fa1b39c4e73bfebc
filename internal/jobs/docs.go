// Package jobs provides scheduled background tasks for the authority server.
//
// Jobs are cron-based, using github.com/robfig/cron/v3 with a seconds field.
//
// # Available Jobs
//
// ProjectionAuditJob compares the cached status and current location of every
// package with its latest track and logs one warning per discrepancy. The ledger
// is the source of truth, so drift is reported and never silently repaired.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(auditHandler, cfg.ProjectionAuditSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
package jobs
