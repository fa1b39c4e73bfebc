package commands

import (
	"context"
	"parceltrack/internal/pkg/errs"
)

// DeleteLocationCommandHandler removes a location nothing refers to. An unknown
// location is NotFound; a location still used by a package, track or
// transportation is a ConflictError and stays in place.
type DeleteLocationCommandHandler struct {
	uowFactory DirectoryUoWFactory
}

// NewDeleteLocationCommandHandler creates a handler for location removal.
func NewDeleteLocationCommandHandler(uowFactory DirectoryUoWFactory) DeleteLocationCommandHandler {
	return DeleteLocationCommandHandler{uowFactory: uowFactory}
}

// Handle removes the location. It fails with NotFound for an unknown id and with
// a ConflictError while a package, a track or a transportation refers to it.
func (h *DeleteLocationCommandHandler) Handle(ctx context.Context, cmd DeleteLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	locationRepo := uow.LocationRepository()
	if _, err := locationRepo.Get(ctx, cmd.LocationID()); err != nil {
		return err
	}

	referenced, err := locationRepo.IsReferenced(ctx, cmd.LocationID())
	if err != nil {
		return err
	}
	if referenced {
		return errs.NewConflictError("location "+cmd.LocationID().String(), "location is referenced")
	}

	if err = locationRepo.Delete(ctx, cmd.LocationID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
