package queries

import (
	"context"
	"database/sql"
	"errors"

	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetIdentityQueryIsNotConstructed = errors.New(
	"GetIdentityQuery must be created via NewGetIdentityQuery constructor",
)

// GetIdentityQuery hydrates the identity behind a verified token.
type GetIdentityQuery struct {
	accountID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetIdentityQuery(accountID kernel.ID) (GetIdentityQuery, error) {
	if err := accountID.Validate(); err != nil {
		return GetIdentityQuery{}, errs.NewValueIsInvalidErrorWithCause("accountId", err)
	}
	return GetIdentityQuery{accountID: accountID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetIdentityQuery) Validate() error {
	return q.guard.Validate(ErrGetIdentityQueryIsNotConstructed)
}

// GetIdentityQueryHandler reads the account and attaches the role's capabilities
// as permission hints.
type GetIdentityQueryHandler struct {
	db     *gorm.DB
	policy services.CapabilityPolicy
}

// NewGetIdentityQueryHandler creates a handler that reads the account through db and
// lists its capabilities from policy.
func NewGetIdentityQueryHandler(db *gorm.DB, policy services.CapabilityPolicy) GetIdentityQueryHandler {
	return GetIdentityQueryHandler{db: db, policy: policy}
}

// Handle fails with an AuthenticationError when the account behind a valid token
// has been removed.
func (h GetIdentityQueryHandler) Handle(ctx context.Context, query GetIdentityQuery) (identity.Identity, error) {
	if err := query.Validate(); err != nil {
		return identity.Identity{}, err
	}

	var id int64
	var username, email, rawRole string
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, username, COALESCE(email, ''), role
		FROM accounts
		WHERE id = ?
	`, query.accountID.Int64()).Row().Scan(&id, &username, &email, &rawRole)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return identity.Identity{}, errs.NewAuthenticationError("account no longer exists")
		}
		return identity.Identity{}, err
	}

	role, err := identity.ParseRole(rawRole)
	if err != nil {
		return identity.Identity{}, err
	}

	capabilities := h.policy.Capabilities(role)
	hints := make([]string, 0, len(capabilities))
	for _, c := range capabilities {
		hints = append(hints, c.String())
	}

	return identity.NewIdentity(kernel.ID(id), username, email, role, hints)
}
