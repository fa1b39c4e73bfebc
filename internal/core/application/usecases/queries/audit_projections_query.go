package queries

import (
	"context"
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/shipment"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrAuditProjectionsQueryIsNotConstructed = errors.New(
	"AuditProjectionsQuery must be created via NewAuditProjectionsQuery constructor",
)

// AuditProjectionsQuery compares every package's cached status and location with
// its latest track.
type AuditProjectionsQuery struct {
	guard guard.ConstructorGuard
}

func NewAuditProjectionsQuery() AuditProjectionsQuery {
	return AuditProjectionsQuery{guard: guard.NewConstructorGuard()}
}

func (q AuditProjectionsQuery) Validate() error {
	return q.guard.Validate(ErrAuditProjectionsQueryIsNotConstructed)
}

// AuditProjectionsQueryHandler reads the raw columns, without restoring
// aggregates, so that drifted rows are reported instead of failing the read.
type AuditProjectionsQueryHandler struct {
	db      *gorm.DB
	auditor services.ProjectionAuditor
}

func NewAuditProjectionsQueryHandler(db *gorm.DB, auditor services.ProjectionAuditor) AuditProjectionsQueryHandler {
	return AuditProjectionsQueryHandler{db: db, auditor: auditor}
}

// Handle loads every package with its ledger and returns the packages whose
// projection disagrees with their latest track.
func (h AuditProjectionsQueryHandler) Handle(ctx context.Context, query AuditProjectionsQuery) ([]services.Discrepancy, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, status, current_location_id
		FROM packages
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []services.ProjectionRecord
	var ids []int64
	for rows.Next() {
		var id, locationID int64
		var status int
		if err = rows.Scan(&id, &status, &locationID); err != nil {
			return nil, err
		}
		ids = append(ids, id)
		records = append(records, services.ProjectionRecord{
			PackageID:         kernel.ID(id),
			Status:            shipment.Status(status),
			CurrentLocationID: kernel.ID(locationID),
		})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	ledgers, err := loadTracks(ctx, h.db, ids)
	if err != nil {
		return nil, err
	}
	for i := range records {
		records[i].Tracks = ledgers[records[i].PackageID.Int64()]
	}

	return h.auditor.Audit(records), nil
}
