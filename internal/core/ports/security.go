package ports

import (
	"time"

	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/core/domain/model/kernel"
)

// Claims is what a verified token says about its bearer.
type Claims struct {
	AccountID kernel.ID
	Username  string
	Role      identity.Role
	TokenID   string
	ExpiresAt time.Time
}

// TokenIssuer issues and verifies bearer tokens. Verify fails with an
// AuthenticationError for malformed, tampered or expired tokens.
type TokenIssuer interface {
	Issue(account *identity.Account) (string, error)
	Verify(token string) (Claims, error)
}

// PasswordHasher hashes passwords for storage and checks them at login.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
