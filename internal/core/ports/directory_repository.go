package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/directory"
	"parceltrack/internal/core/domain/model/kernel"
)

// CustomerRepository reads the customer directory.
type CustomerRepository interface {
	Get(ctx context.Context, id kernel.ID) (directory.Customer, error)
	List(ctx context.Context) ([]directory.Customer, error)
}

// LocationRepository manages locations.
type LocationRepository interface {
	Add(ctx context.Context, draft directory.LocationDraft) (directory.Location, error)
	Get(ctx context.Context, id kernel.ID) (directory.Location, error)
	List(ctx context.Context) ([]directory.Location, error)

	// IsReferenced reports whether a package's current location or any track points
	// at the location.
	IsReferenced(ctx context.Context, id kernel.ID) (bool, error)

	// Delete removes the location. A location still referenced fails with a
	// ConflictError even when IsReferenced was not consulted.
	Delete(ctx context.Context, id kernel.ID) error
}

// CenterRepository manages centers.
type CenterRepository interface {
	Add(ctx context.Context, draft directory.CenterDraft) (directory.Center, error)
	Get(ctx context.Context, id kernel.ID) (directory.Center, error)
	List(ctx context.Context) ([]directory.Center, error)
}

// TransportationRepository reads scheduled transportations.
type TransportationRepository interface {
	Get(ctx context.Context, id kernel.ID) (directory.Transportation, error)
}
