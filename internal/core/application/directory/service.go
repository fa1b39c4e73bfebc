// Package directory implements the Directory Services: read-mostly access to the
// customer, location and center registries of the remote authority.
//
// Referential integrity is not checked here. Deleting a location that a package or
// a track still refers to is attempted, and the remote authority's ConflictError is
// returned to the caller.
package directory

import (
	"context"
	"log/slog"

	"parceltrack/internal/core/domain/model/directory"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/ports"
)

// Service fronts the DirectoryGateway.
type Service struct {
	gateway ports.DirectoryGateway
	logger  *slog.Logger
}

// NewService creates the directory service.
func NewService(gateway ports.DirectoryGateway, logger *slog.Logger) *Service {
	return &Service{gateway: gateway, logger: logger.With("component", "DirectoryServices")}
}

// Customers fetches the customer directory.
func (s *Service) Customers(ctx context.Context) ([]directory.Customer, error) {
	return s.gateway.ListCustomers(ctx)
}

// Locations fetches every location.
func (s *Service) Locations(ctx context.Context) ([]directory.Location, error) {
	return s.gateway.ListLocations(ctx)
}

// Centers fetches every center.
func (s *Service) Centers(ctx context.Context) ([]directory.Center, error) {
	return s.gateway.ListCenters(ctx)
}

// CreateLocation checks required fields locally; whether the center exists is
// decided remotely.
func (s *Service) CreateLocation(ctx context.Context, draft directory.LocationDraft) (directory.Location, error) {
	if err := draft.Validate(); err != nil {
		return directory.Location{}, err
	}
	loc, err := s.gateway.CreateLocation(ctx, draft)
	if err != nil {
		return directory.Location{}, err
	}
	s.logger.InfoContext(ctx, "location created", "location_id", loc.ID().Int64())
	return loc, nil
}

// CreateCenter checks required fields locally and returns the center as stored
// by the remote authority.
func (s *Service) CreateCenter(ctx context.Context, draft directory.CenterDraft) (directory.Center, error) {
	if err := draft.Validate(); err != nil {
		return directory.Center{}, err
	}
	center, err := s.gateway.CreateCenter(ctx, draft)
	if err != nil {
		return directory.Center{}, err
	}
	s.logger.InfoContext(ctx, "center created", "center_id", center.ID().Int64())
	return center, nil
}

// DeleteLocation removes a location. A location still in use fails with the remote
// ConflictError.
func (s *Service) DeleteLocation(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := s.gateway.DeleteLocation(ctx, id); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "location deleted", "location_id", id.Int64())
	return nil
}
