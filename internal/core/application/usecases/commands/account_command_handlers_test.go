package commands_test

import (
	"testing"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testAccount(t *testing.T) *identity.Account {
	t.Helper()
	a, err := identity.RestoreAccount(4, "clerk", "clerk@example.com", "$2a$hash", identity.RoleStaff)
	require.NoError(t, err)
	return a
}

func accountUoW(t *testing.T, accounts *MockAccountRepository) (*MockUoW, *MockAccountUoWFactory) {
	t.Helper()
	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("AccountRepository").Return(accounts).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()
	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()
	return uow, factory
}

func TestLoginCommandHandler_Handle(t *testing.T) {
	credentials := identity.Credentials{Username: "clerk", Password: "secret"}

	t.Run("issues a token", func(t *testing.T) {
		account := testAccount(t)
		accounts := new(MockAccountRepository)
		accounts.On("GetByUsername", mock.Anything, "clerk").Return(account, nil).Once()
		_, factory := accountUoW(t, accounts)
		hasher := new(MockPasswordHasher)
		hasher.On("Compare", "$2a$hash", "secret").Return(nil).Once()
		issuer := new(MockTokenIssuer)
		issuer.On("Issue", account).Return("token-1", nil).Once()

		cmd, err := commands.NewLoginCommand(credentials)
		require.NoError(t, err)
		h := commands.NewLoginCommandHandler(factory, hasher, issuer)
		token, err := h.Handle(t.Context(), cmd)
		require.NoError(t, err)
		assert.Equal(t, "token-1", token)
		hasher.AssertExpectations(t)
		issuer.AssertExpectations(t)
	})

	t.Run("unknown username is an authentication error", func(t *testing.T) {
		accounts := new(MockAccountRepository)
		accounts.On("GetByUsername", mock.Anything, "clerk").
			Return(nil, errs.NewObjectNotFoundError("username", "clerk")).Once()
		_, factory := accountUoW(t, accounts)
		hasher := new(MockPasswordHasher)
		issuer := new(MockTokenIssuer)

		cmd, err := commands.NewLoginCommand(credentials)
		require.NoError(t, err)
		h := commands.NewLoginCommandHandler(factory, hasher, issuer)
		_, err = h.Handle(t.Context(), cmd)
		require.ErrorIs(t, err, errs.ErrAuthentication)
		hasher.AssertNotCalled(t, "Compare", mock.Anything, mock.Anything)
	})

	t.Run("wrong password issues nothing", func(t *testing.T) {
		accounts := new(MockAccountRepository)
		accounts.On("GetByUsername", mock.Anything, "clerk").Return(testAccount(t), nil).Once()
		_, factory := accountUoW(t, accounts)
		hasher := new(MockPasswordHasher)
		hasher.On("Compare", "$2a$hash", "secret").
			Return(errs.NewAuthenticationError("invalid credentials")).Once()
		issuer := new(MockTokenIssuer)

		cmd, err := commands.NewLoginCommand(credentials)
		require.NoError(t, err)
		h := commands.NewLoginCommandHandler(factory, hasher, issuer)
		_, err = h.Handle(t.Context(), cmd)
		require.ErrorIs(t, err, errs.ErrAuthentication)
		issuer.AssertNotCalled(t, "Issue", mock.Anything)
	})
}

func TestNewLoginCommand_RequiresCredentials(t *testing.T) {
	_, err := commands.NewLoginCommand(identity.Credentials{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "username")
	assert.Contains(t, err.Error(), "password")
}

func TestEnsureAccountCommandHandler_Handle(t *testing.T) {
	t.Run("existing account is left alone", func(t *testing.T) {
		accounts := new(MockAccountRepository)
		accounts.On("GetByUsername", mock.Anything, "clerk").Return(testAccount(t), nil).Once()
		uow, factory := accountUoW(t, accounts)
		hasher := new(MockPasswordHasher)

		cmd, err := commands.NewEnsureAccountCommand("clerk", "", "secret", identity.RoleStaff)
		require.NoError(t, err)
		h := commands.NewEnsureAccountCommandHandler(factory, hasher)
		id, created, err := h.Handle(t.Context(), cmd)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, kernel.ID(4), id)
		hasher.AssertNotCalled(t, "Hash", mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("missing account is created", func(t *testing.T) {
		accounts := new(MockAccountRepository)
		accounts.On("GetByUsername", mock.Anything, "admin").
			Return(nil, errs.NewObjectNotFoundError("username", "admin")).Once()
		accounts.On("Add", mock.Anything, mock.MatchedBy(func(a *identity.Account) bool {
			return a.Username() == "admin" && a.PasswordHash() == "hashed" && a.Role() == identity.RoleAdmin
		})).Return(kernel.ID(1), nil).Once()
		uow, factory := accountUoW(t, accounts)
		uow.On("Commit", mock.Anything).Return(nil).Once()
		hasher := new(MockPasswordHasher)
		hasher.On("Hash", "changeme").Return("hashed", nil).Once()

		cmd, err := commands.NewEnsureAccountCommand(" admin ", "admin@example.com", "changeme", identity.RoleAdmin)
		require.NoError(t, err)
		h := commands.NewEnsureAccountCommandHandler(factory, hasher)
		id, created, err := h.Handle(t.Context(), cmd)
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, kernel.ID(1), id)
		accounts.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("invalid role is rejected", func(t *testing.T) {
		_, err := commands.NewEnsureAccountCommand("admin", "", "pw", identity.Role("ROOT"))
		require.True(t, errs.IsValidation(err))
	})
}
