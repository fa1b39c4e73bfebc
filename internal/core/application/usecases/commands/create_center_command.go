package commands

import (
	"context"
	"errors"
	"parceltrack/internal/core/domain/model/directory"
	"parceltrack/internal/pkg/guard"
)

var ErrCreateCenterCommandIsNotConstructed = errors.New(
	"CreateCenterCommand must be created via NewCreateCenterCommand constructor",
)

type CreateCenterCommand struct { //nolint:recvcheck //using for validation
	draft directory.CenterDraft

	guard guard.ConstructorGuard
}

func NewCreateCenterCommand(draft directory.CenterDraft) (CreateCenterCommand, error) {
	if err := draft.Validate(); err != nil {
		return CreateCenterCommand{}, err
	}

	return CreateCenterCommand{
		draft: draft,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c CreateCenterCommand) Validate() error {
	return c.guard.Validate(ErrCreateCenterCommandIsNotConstructed)
}

func (c CreateCenterCommand) Draft() directory.CenterDraft {
	return c.draft
}

type CreateCenterCommandHandler struct {
	uowFactory DirectoryUoWFactory
}

// NewCreateCenterCommandHandler creates a handler for center creation.
func NewCreateCenterCommandHandler(uowFactory DirectoryUoWFactory) CreateCenterCommandHandler {
	return CreateCenterCommandHandler{uowFactory: uowFactory}
}

func (h *CreateCenterCommandHandler) Handle(ctx context.Context, cmd CreateCenterCommand) (directory.Center, error) {
	if err := cmd.Validate(); err != nil {
		return directory.Center{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return directory.Center{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	center, err := uow.CenterRepository().Add(ctx, cmd.Draft())
	if err != nil {
		return directory.Center{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return directory.Center{}, err
	}

	return center, nil
}
