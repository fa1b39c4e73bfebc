package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/shipment"
	"parceltrack/internal/core/domain/services"
)

// PackageRepository defines the persistence contract for package aggregates and
// their ledgers.
type PackageRepository interface {
	// Add persists a new package with its initial track and returns the assigned id.
	Add(ctx context.Context, aggregate *shipment.Package) (kernel.ID, error)

	// AppendTrack persists track, the latest entry appended by aggregate.Advance, and
	// the moved projection. The ledger is never rewritten.
	AppendTrack(ctx context.Context, aggregate *shipment.Package, track shipment.Track) error

	// Get retrieves a package with its full ledger.
	Get(ctx context.Context, id kernel.ID) (*shipment.Package, error)

	// GetForUpdate retrieves a package and locks it until the transaction ends, so
	// that concurrent appends to one ledger are serialized.
	GetForUpdate(ctx context.Context, id kernel.ID) (*shipment.Package, error)

	// List retrieves every package ordered by id.
	List(ctx context.Context) ([]*shipment.Package, error)

	// ProjectionRecords loads the raw projection columns and ledgers without
	// enforcing aggregate invariants, for auditing.
	ProjectionRecords(ctx context.Context) ([]services.ProjectionRecord, error)
}
