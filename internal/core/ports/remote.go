package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/directory"
	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/shipment"
)

// AuthGateway performs the two authentication round trips. Tokens are passed
// explicitly: the Session Store decides when a token becomes current.
type AuthGateway interface {
	// Login exchanges credentials for a token; bad credentials fail with an
	// AuthenticationError.
	Login(ctx context.Context, credentials identity.Credentials) (string, error)

	// Me hydrates the identity the token was issued for.
	Me(ctx context.Context, token string) (identity.Identity, error)
}

// PermissionGateway asks the remote authority whether the current session holds a
// capability.
type PermissionGateway interface {
	CheckPermission(ctx context.Context, capability identity.Capability) (bool, error)
}

// PackageGateway reaches the remote package endpoints. Errors belong to the
// errs taxonomy.
type PackageGateway interface {
	ListPackages(ctx context.Context) ([]*shipment.Package, error)
	CreatePackage(ctx context.Context, draft shipment.Draft) (*shipment.Package, error)
	AppendTrack(ctx context.Context, id kernel.ID, status shipment.Status, locationID kernel.ID) (*shipment.Package, error)
	TrackingDetails(ctx context.Context, id kernel.ID) (shipment.Details, error)
}

// DirectoryGateway reaches the remote directory endpoints.
type DirectoryGateway interface {
	ListCustomers(ctx context.Context) ([]directory.Customer, error)
	ListLocations(ctx context.Context) ([]directory.Location, error)
	CreateLocation(ctx context.Context, draft directory.LocationDraft) (directory.Location, error)
	DeleteLocation(ctx context.Context, id kernel.ID) error
	ListCenters(ctx context.Context) ([]directory.Center, error)
	CreateCenter(ctx context.Context, draft directory.CenterDraft) (directory.Center, error)
}
