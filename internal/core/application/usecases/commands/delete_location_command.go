package commands

import (
	"errors"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrDeleteLocationCommandIsNotConstructed = errors.New(
	"DeleteLocationCommand must be created via NewDeleteLocationCommand constructor",
)

type DeleteLocationCommand struct { //nolint:recvcheck //using for validation
	locationID kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteLocationCommand(locationID kernel.ID) (DeleteLocationCommand, error) {
	if err := locationID.Validate(); err != nil {
		return DeleteLocationCommand{}, errs.NewValueIsInvalidErrorWithCause("locationId", err)
	}

	return DeleteLocationCommand{
		locationID: locationID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteLocationCommand) Validate() error {
	return c.guard.Validate(ErrDeleteLocationCommandIsNotConstructed)
}

func (c DeleteLocationCommand) LocationID() kernel.ID {
	return c.locationID
}
