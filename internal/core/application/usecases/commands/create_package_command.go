package commands

import (
	"errors"
	"parceltrack/internal/core/domain/model/shipment"
	"parceltrack/internal/pkg/guard"
)

var ErrCreatePackageCommandIsNotConstructed = errors.New(
	"CreatePackageCommand must be created via NewCreatePackageCommand constructor",
)

// CreatePackageCommand represents a request to register a new package at its
// first location.
//
// Example:
//
//	cmd, err := NewCreatePackageCommand(shipment.Draft{
//	    Weight: 2.5, Dimensions: "30x20x15",
//	    SenderID: 1, ReceiverID: 2, CurrentLocationID: 1,
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid package data: %w", err)
//	}
//
//	pkg, err := handler.Handle(ctx, cmd)
type CreatePackageCommand struct { //nolint:recvcheck //using for validation
	draft shipment.Draft

	guard guard.ConstructorGuard
}

// NewCreatePackageCommand validates every field of draft and reports all
// violations at once.
func NewCreatePackageCommand(draft shipment.Draft) (CreatePackageCommand, error) {
	cmd := CreatePackageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setDraft(draft); err != nil {
		return CreatePackageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePackageCommand) Validate() error {
	return c.guard.Validate(ErrCreatePackageCommandIsNotConstructed)
}

func (c CreatePackageCommand) Draft() shipment.Draft {
	return c.draft
}

func (c *CreatePackageCommand) setDraft(draft shipment.Draft) error {
	if err := draft.Validate(); err != nil {
		return err
	}

	c.draft = draft
	return nil
}
