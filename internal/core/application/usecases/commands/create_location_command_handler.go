package commands

import (
	"context"
	"parceltrack/internal/core/domain/model/directory"
)

// CreateLocationCommandHandler adds a location to an existing center.
type CreateLocationCommandHandler struct {
	uowFactory DirectoryUoWFactory
}

// NewCreateLocationCommandHandler creates a handler for location creation.
func NewCreateLocationCommandHandler(uowFactory DirectoryUoWFactory) CreateLocationCommandHandler {
	return CreateLocationCommandHandler{uowFactory: uowFactory}
}

// Handle stores the location. An unknown center is a ValidationError.
func (h *CreateLocationCommandHandler) Handle(ctx context.Context, cmd CreateLocationCommand) (directory.Location, error) {
	if err := cmd.Validate(); err != nil {
		return directory.Location{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return directory.Location{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	draft := cmd.Draft()
	if _, err := uow.CenterRepository().Get(ctx, draft.CenterID); err != nil {
		return directory.Location{}, missing("center", draft.CenterID, err)
	}

	location, err := uow.LocationRepository().Add(ctx, draft)
	if err != nil {
		return directory.Location{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return directory.Location{}, err
	}

	return location, nil
}
