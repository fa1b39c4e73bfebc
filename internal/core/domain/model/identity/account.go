package identity

import (
	"errors"
	"strings"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

var ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount or RestoreAccount")

// Account is the remote authority's record of a user: the stored password hash and
// the role its policy is evaluated against.
type Account struct {
	id            kernel.ID
	username      string
	email         string
	passwordHash  string
	role          Role
	isConstructed bool
}

// NewAccount creates an unsaved account from an already hashed password.
func NewAccount(username, email, passwordHash string, role Role) (*Account, error) {
	var usernameErr, hashErr error
	if strings.TrimSpace(username) == "" {
		usernameErr = errs.NewValueIsRequiredError("username")
	}
	if passwordHash == "" {
		hashErr = errs.NewValueIsRequiredError("passwordHash")
	}
	if err := errors.Join(usernameErr, hashErr, role.Validate()); err != nil {
		return nil, err
	}
	return &Account{
		username:      strings.TrimSpace(username),
		email:         email,
		passwordHash:  passwordHash,
		role:          role,
		isConstructed: true,
	}, nil
}

// RestoreAccount rebuilds a persisted account. passwordHash is taken as is.
func RestoreAccount(id kernel.ID, username, email, passwordHash string, role Role) (*Account, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	a, err := NewAccount(username, email, passwordHash, role)
	if err != nil {
		return nil, err
	}
	a.id = id
	return a, nil
}

func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

func (a *Account) ID() kernel.ID {
	return a.id
}

func (a *Account) Username() string {
	return a.username
}

func (a *Account) Email() string {
	return a.email
}

func (a *Account) PasswordHash() string {
	return a.passwordHash
}

func (a *Account) Role() Role {
	return a.role
}
