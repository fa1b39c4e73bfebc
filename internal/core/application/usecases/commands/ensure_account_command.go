package commands

import (
	"context"
	"errors"
	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
	"strings"
)

var ErrEnsureAccountCommandIsNotConstructed = errors.New(
	"EnsureAccountCommand must be created via NewEnsureAccountCommand constructor",
)

// EnsureAccountCommand provisions an account at startup, such as the bootstrap
// administrator. It never changes an account that already exists.
type EnsureAccountCommand struct { //nolint:recvcheck //using for validation
	username string
	email    string
	password string
	role     identity.Role

	guard guard.ConstructorGuard
}

func NewEnsureAccountCommand(username, email, password string, role identity.Role) (EnsureAccountCommand, error) {
	var usernameErr, passwordErr error
	if strings.TrimSpace(username) == "" {
		usernameErr = errs.NewValueIsRequiredError("username")
	}
	if password == "" {
		passwordErr = errs.NewValueIsRequiredError("password")
	}
	if err := errors.Join(usernameErr, passwordErr, role.Validate()); err != nil {
		return EnsureAccountCommand{}, err
	}

	return EnsureAccountCommand{
		username: strings.TrimSpace(username),
		email:    email,
		password: password,
		role:     role,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c EnsureAccountCommand) Validate() error {
	return c.guard.Validate(ErrEnsureAccountCommandIsNotConstructed)
}

type EnsureAccountCommandHandler struct {
	uowFactory AccountUoWFactory
	hasher     ports.PasswordHasher
}

// NewEnsureAccountCommandHandler creates a handler that hashes new passwords with
// hasher.
func NewEnsureAccountCommandHandler(uowFactory AccountUoWFactory, hasher ports.PasswordHasher) EnsureAccountCommandHandler {
	return EnsureAccountCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle returns the id of the existing or newly created account and whether it
// was created.
func (h *EnsureAccountCommandHandler) Handle(ctx context.Context, cmd EnsureAccountCommand) (kernel.ID, bool, error) {
	if err := cmd.Validate(); err != nil {
		return 0, false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()
	existing, err := accountRepo.GetByUsername(ctx, cmd.username)
	if err == nil {
		return existing.ID(), false, nil
	}
	if !errs.IsNotFound(err) {
		return 0, false, err
	}

	hash, err := h.hasher.Hash(cmd.password)
	if err != nil {
		return 0, false, err
	}

	account, err := identity.NewAccount(cmd.username, cmd.email, hash, cmd.role)
	if err != nil {
		return 0, false, err
	}

	id, err := accountRepo.Add(ctx, account)
	if err != nil {
		return 0, false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, false, err
	}

	return id, true, nil
}
