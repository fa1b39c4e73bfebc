// Package accountrepo persists the accounts the authority authenticates.
package accountrepo

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
)

type AccountDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"not null;uniqueIndex"`
	Email        string
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"not null"`
	CreatedAt    time.Time
}

func (AccountDTO) TableName() string {
	return "accounts"
}

type GormAccountRepository struct {
	db *gorm.DB
}

var _ ports.AccountRepository = (*GormAccountRepository)(nil)

// NewGormAccountRepository creates a repository on db.
func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// Add inserts the account. A taken username is a ConflictError.
func (r *GormAccountRepository) Add(ctx context.Context, account *identity.Account) (kernel.ID, error) {
	if err := account.Validate(); err != nil {
		return 0, err
	}

	dto := AccountDTO{
		Username:     account.Username(),
		Email:        account.Email(),
		PasswordHash: account.PasswordHash(),
		Role:         account.Role().String(),
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, errs.NewConflictErrorWithCause("account "+account.Username(), "username is taken", err)
		}
		return 0, err
	}
	return kernel.ID(dto.ID), nil
}

func (r *GormAccountRepository) Get(ctx context.Context, id kernel.ID) (*identity.Account, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "account", id.String(), "id = ?", id.Int64())
}

func (r *GormAccountRepository) GetByUsername(ctx context.Context, username string) (*identity.Account, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errs.NewValueIsRequiredError("username")
	}
	return r.first(ctx, "account", username, "username = ?", username)
}

func (r *GormAccountRepository) first(ctx context.Context, name, key string, query string, args ...any) (*identity.Account, error) {
	var dto AccountDTO
	if err := r.db.WithContext(ctx).Where(query, args...).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(name, key)
		}
		return nil, err
	}

	role, err := identity.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}
	return identity.RestoreAccount(kernel.ID(dto.ID), dto.Username, dto.Email, dto.PasswordHash, role)
}
