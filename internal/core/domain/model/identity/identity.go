package identity

import (
	"errors"
	"slices"
	"strings"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

// Credentials are exchanged for a token at login.
type Credentials struct {
	Username string
	Password string
}

func (c Credentials) Validate() error {
	var usernameErr, passwordErr error
	if strings.TrimSpace(c.Username) == "" {
		usernameErr = errs.NewValueIsRequiredError("username")
	}
	if c.Password == "" {
		passwordErr = errs.NewValueIsRequiredError("password")
	}
	return errors.Join(usernameErr, passwordErr)
}

// Identity is the account a token was issued for, as reported by the remote authority.
type Identity struct {
	id              kernel.ID
	username        string
	email           string
	role            Role
	permissionHints []string
}

// NewIdentity builds an identity from a hydration response. id and email are
// optional display attributes.
func NewIdentity(id kernel.ID, username, email string, role Role, permissionHints []string) (Identity, error) {
	if err := role.Validate(); err != nil {
		return Identity{}, err
	}
	return Identity{
		id:              id,
		username:        username,
		email:           email,
		role:            role,
		permissionHints: slices.Clone(permissionHints),
	}, nil
}

func (i Identity) ID() kernel.ID {
	return i.id
}

func (i Identity) Username() string {
	return i.username
}

func (i Identity) Email() string {
	return i.email
}

func (i Identity) Role() Role {
	return i.role
}

// PermissionHints returns the permission names reported at hydration. They may be
// shown to the user but never decide whether an action is allowed.
func (i Identity) PermissionHints() []string {
	return slices.Clone(i.permissionHints)
}

// Session pairs a token with the identity the remote authority confirmed for it.
type Session struct {
	Token    string
	Identity Identity
}
