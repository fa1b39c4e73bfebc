package commands

import (
	"context"
	"errors"
	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrLoginCommandIsNotConstructed = errors.New(
	"LoginCommand must be created via NewLoginCommand constructor",
)

// LoginCommand exchanges credentials for a bearer token.
type LoginCommand struct { //nolint:recvcheck //using for validation
	credentials identity.Credentials

	guard guard.ConstructorGuard
}

func NewLoginCommand(credentials identity.Credentials) (LoginCommand, error) {
	if err := credentials.Validate(); err != nil {
		return LoginCommand{}, err
	}

	return LoginCommand{
		credentials: credentials,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

func (c LoginCommand) Credentials() identity.Credentials {
	return c.credentials
}

// LoginCommandHandler checks the password against the stored hash and issues a
// token. Unknown usernames and wrong passwords fail the same way.
type LoginCommandHandler struct {
	uowFactory AccountUoWFactory
	hasher     ports.PasswordHasher
	issuer     ports.TokenIssuer
}

// NewLoginCommandHandler creates a handler that checks passwords with hasher and
// signs tokens with issuer.
func NewLoginCommandHandler(
	uowFactory AccountUoWFactory,
	hasher ports.PasswordHasher,
	issuer ports.TokenIssuer,
) LoginCommandHandler {
	return LoginCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		issuer:     issuer,
	}
}

// Handle returns a signed token. An unknown username and a wrong password fail
// with the same AuthenticationError.
func (h *LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	credentials := cmd.Credentials()
	account, err := uow.AccountRepository().GetByUsername(ctx, credentials.Username)
	if err != nil {
		if errs.IsNotFound(err) {
			return "", errs.NewAuthenticationError("invalid credentials")
		}
		return "", err
	}

	if err = h.hasher.Compare(account.PasswordHash(), credentials.Password); err != nil {
		return "", err
	}

	return h.issuer.Issue(account)
}
