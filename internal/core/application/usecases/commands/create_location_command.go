package commands

import (
	"errors"
	"parceltrack/internal/core/domain/model/directory"
	"parceltrack/internal/pkg/guard"
)

var ErrCreateLocationCommandIsNotConstructed = errors.New(
	"CreateLocationCommand must be created via NewCreateLocationCommand constructor",
)

type CreateLocationCommand struct { //nolint:recvcheck //using for validation
	draft directory.LocationDraft

	guard guard.ConstructorGuard
}

// NewCreateLocationCommand validates draft and wraps it in a command.
func NewCreateLocationCommand(draft directory.LocationDraft) (CreateLocationCommand, error) {
	if err := draft.Validate(); err != nil {
		return CreateLocationCommand{}, err
	}

	return CreateLocationCommand{
		draft: draft,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c CreateLocationCommand) Validate() error {
	return c.guard.Validate(ErrCreateLocationCommandIsNotConstructed)
}

func (c CreateLocationCommand) Draft() directory.LocationDraft {
	return c.draft
}
