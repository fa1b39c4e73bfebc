package lifecycle

import (
	"context"
	"fmt"
	"log/slog"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/shipment"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
)

// Controller creates packages and drives their status forward.
type Controller struct {
	gateway ports.PackageGateway
	ledger  *Ledger
	logger  *slog.Logger
}

// NewController creates a controller that writes through gateway and reads the
// latest ledger entry through ledger before every advance.
func NewController(gateway ports.PackageGateway, ledger *Ledger, logger *slog.Logger) *Controller {
	return &Controller{
		gateway: gateway,
		ledger:  ledger,
		logger:  logger.With("component", "LifecycleController"),
	}
}

// ListPackages fetches the current package list. A stale list is corrected by
// calling again.
func (c *Controller) ListPackages(ctx context.Context) ([]*shipment.Package, error) {
	return c.gateway.ListPackages(ctx)
}

// CreatePackage asks the remote authority to create a package and returns the
// package it created, with its initial CREATED track.
//
// The draft is pre-validated locally (positive weight, dimensions, well-formed ids)
// only to skip doomed requests. Whether sender, receiver and location exist is
// decided remotely.
func (c *Controller) CreatePackage(ctx context.Context, draft shipment.Draft) (*shipment.Package, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	created, err := c.gateway.CreatePackage(ctx, draft)
	if err != nil {
		return nil, err
	}

	if tracks := created.Tracks(); len(tracks) != 1 || created.Status() != shipment.Created {
		return nil, errs.NewRemoteFailureError(0, fmt.Sprintf(
			"created package %s has %d tracks and status %s", created.ID(), len(tracks), created.Status()))
	}

	c.logger.InfoContext(ctx, "package created", "package_id", created.ID().Int64())
	return created, nil
}

// AdvanceStatus records that package id was observed in status at locationID.
//
// It reads the latest ledger entry first, over the public tracking route, and fails
// with a ConflictError without sending anything when that entry is terminal. An
// unknown or terminal package is therefore reported before any authorization
// failure of the gated write. It does not judge which transitions
// are legal otherwise; the remote authority does, and its rejection is returned
// as is. Two identical calls record two events.
func (c *Controller) AdvanceStatus(
	ctx context.Context,
	id kernel.ID,
	status shipment.Status,
	locationID kernel.ID,
) (*shipment.Package, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := locationID.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("locationId", err)
	}

	latest, err := c.ledger.Latest(ctx, id)
	if err != nil {
		return nil, err
	}
	if latest != nil {
		if err = latest.Status().ValidateAdvance(); err != nil {
			return nil, err
		}
	}

	advanced, err := c.gateway.AppendTrack(ctx, id, status, locationID)
	if err != nil {
		return nil, err
	}

	if advanced.Status() != status || advanced.CurrentLocationID() != locationID {
		return nil, errs.NewRemoteFailureError(0, fmt.Sprintf(
			"package %s reports %s at %s after recording %s at %s",
			id, advanced.Status(), advanced.CurrentLocationID(), status, locationID))
	}

	c.logger.InfoContext(ctx, "package advanced",
		"package_id", id.Int64(), "status", status.String(), "location_id", locationID.Int64())
	return advanced, nil
}
