package queries

import (
	"context"

	"parceltrack/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

// GetPackagesQueryHandler lists packages ordered by id. A stored package that no
// longer satisfies the ledger invariants fails the whole listing.
type GetPackagesQueryHandler struct {
	db *gorm.DB
}

// NewGetPackagesQueryHandler creates a handler reading through db.
func NewGetPackagesQueryHandler(db *gorm.DB) GetPackagesQueryHandler {
	return GetPackagesQueryHandler{db: db}
}

// Handle returns every package with its full ledger, in id order.
func (h GetPackagesQueryHandler) Handle(ctx context.Context, query GetPackagesQuery) ([]*shipment.Package, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT` + packageColumns + `
		FROM packages p
		ORDER BY p.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []packageRow
	for rows.Next() {
		var r packageRow
		if err = rows.Scan(r.targets()...); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.id)
	}

	ledgers, err := loadTracks(ctx, h.db, ids)
	if err != nil {
		return nil, err
	}

	packages := make([]*shipment.Package, 0, len(records))
	for _, r := range records {
		p, restoreErr := r.restore(ledgers[r.id])
		if restoreErr != nil {
			return nil, restoreErr
		}
		packages = append(packages, p)
	}

	return packages, nil
}
