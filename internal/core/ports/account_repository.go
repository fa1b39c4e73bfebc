package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/core/domain/model/kernel"
)

// AccountRepository stores the accounts the remote authority authenticates.
type AccountRepository interface {
	Add(ctx context.Context, account *identity.Account) (kernel.ID, error)
	Get(ctx context.Context, id kernel.ID) (*identity.Account, error)
	GetByUsername(ctx context.Context, username string) (*identity.Account, error)
}
