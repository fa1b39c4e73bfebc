package commands

import (
	"errors"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/shipment"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrAppendTrackCommandIsNotConstructed = errors.New(
	"AppendTrackCommand must be created via NewAppendTrackCommand constructor",
)

// AppendTrackCommand represents a status change of a package at a location.
type AppendTrackCommand struct { //nolint:recvcheck //using for validation
	packageID  kernel.ID
	status     shipment.Status
	locationID kernel.ID

	guard guard.ConstructorGuard
}

// NewAppendTrackCommand creates a command to record status for package packageID
// at location locationID. Any known status is accepted here.
func NewAppendTrackCommand(packageID kernel.ID, status shipment.Status, locationID kernel.ID) (AppendTrackCommand, error) {
	cmd := AppendTrackCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPackageID(packageID),
		cmd.setStatus(status),
		cmd.setLocationID(locationID),
	); err != nil {
		return AppendTrackCommand{}, err
	}

	return cmd, nil
}

func (c AppendTrackCommand) Validate() error {
	return c.guard.Validate(ErrAppendTrackCommandIsNotConstructed)
}

func (c AppendTrackCommand) PackageID() kernel.ID {
	return c.packageID
}

func (c AppendTrackCommand) Status() shipment.Status {
	return c.status
}

func (c AppendTrackCommand) LocationID() kernel.ID {
	return c.locationID
}

func (c *AppendTrackCommand) setPackageID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("packageId", err)
	}

	c.packageID = id
	return nil
}

// setStatus accepts any known status. Whether it may be recorded depends on the
// package, so the handler decides after the terminal check.
func (c *AppendTrackCommand) setStatus(status shipment.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *AppendTrackCommand) setLocationID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("locationId", err)
	}

	c.locationID = id
	return nil
}
