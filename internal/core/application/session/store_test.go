package session_test

import (
	"errors"
	"testing"

	"parceltrack/internal/core/application/session"
	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/logs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var creds = identity.Credentials{Username: "ops", Password: "secret"}

func staff(t *testing.T) identity.Identity {
	t.Helper()
	id, err := identity.NewIdentity(2, "ops", "", identity.RoleStaff, []string{"VIEW_PACKAGES"})
	require.NoError(t, err)
	return id
}

type fixture struct {
	gateway  *MockAuthGateway
	storage  *MockTokenStorage
	prompter *MockPrompter
	store    *session.Store
}

func newFixture() fixture {
	f := fixture{
		gateway:  new(MockAuthGateway),
		storage:  new(MockTokenStorage),
		prompter: new(MockPrompter),
	}
	f.store = session.NewStore(f.gateway, f.storage, f.prompter, logs.Discard())
	return f
}

func (f fixture) assertExpectations(t *testing.T) {
	f.gateway.AssertExpectations(t)
	f.storage.AssertExpectations(t)
	f.prompter.AssertExpectations(t)
}

func TestStore_Login_Success(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	ident := staff(t)

	mock.InOrder(
		f.gateway.On("Login", ctx, creds).Return("tok-1", nil).Once(),
		f.gateway.On("Me", ctx, "tok-1").Return(ident, nil).Once(),
		f.storage.On("Save", ctx, "tok-1").Return(nil).Once(),
	)

	sess, err := f.store.Login(ctx, creds)

	require.NoError(t, err)
	assert.Equal(t, "tok-1", sess.Token)
	assert.Equal(t, identity.RoleStaff, sess.Identity.Role())
	assert.Equal(t, "tok-1", f.store.Token())
	current, ok := f.store.Current()
	require.True(t, ok)
	assert.Equal(t, sess, current)
	f.assertExpectations(t)
}

func TestStore_Login_BadCredentials(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	f.gateway.On("Login", ctx, creds).Return("", errs.NewAuthenticationError("bad credentials")).Once()

	_, err := f.store.Login(ctx, creds)

	require.ErrorIs(t, err, errs.ErrAuthentication)
	assert.Empty(t, f.store.Token())
	f.assertExpectations(t)
}

func TestStore_Login_HydrationFailureKeepsNoIdentity(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	mock.InOrder(
		f.gateway.On("Login", ctx, creds).Return("tok-1", nil).Once(),
		f.gateway.On("Me", ctx, "tok-1").Return(identity.Identity{}, errs.NewNetworkError("GET /auth/me", errors.New("reset"))).Once(),
	)

	_, err := f.store.Login(ctx, creds)

	require.ErrorIs(t, err, errs.ErrNetwork)
	_, ok := f.store.Current()
	assert.False(t, ok)
	f.assertExpectations(t)
}

func TestStore_Login_InvalidCredentialsSkipRoundTrip(t *testing.T) {
	f := newFixture()

	_, err := f.store.Login(t.Context(), identity.Credentials{})

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	f.assertExpectations(t)
}

func TestStore_Restore(t *testing.T) {
	t.Run("no stored token", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		f.storage.On("Load", ctx).Return("", nil).Once()

		sess, err := f.store.Restore(ctx)

		require.NoError(t, err)
		assert.Nil(t, sess)
		f.assertExpectations(t)
	})

	t.Run("valid stored token", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		mock.InOrder(
			f.storage.On("Load", ctx).Return("tok-9", nil).Once(),
			f.gateway.On("Me", ctx, "tok-9").Return(staff(t), nil).Once(),
		)

		sess, err := f.store.Restore(ctx)

		require.NoError(t, err)
		require.NotNil(t, sess)
		assert.Equal(t, "tok-9", f.store.Token())
		f.assertExpectations(t)
	})

	t.Run("expired token is purged", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		mock.InOrder(
			f.storage.On("Load", ctx).Return("tok-old", nil).Once(),
			f.gateway.On("Me", ctx, "tok-old").Return(identity.Identity{}, errs.NewAuthenticationError("expired")).Once(),
			f.storage.On("Clear", ctx).Return(nil).Once(),
		)

		sess, err := f.store.Restore(ctx)

		require.NoError(t, err)
		assert.Nil(t, sess)
		assert.Empty(t, f.store.Token())
		f.assertExpectations(t)
	})

	t.Run("network failure keeps stored token", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		mock.InOrder(
			f.storage.On("Load", ctx).Return("tok-9", nil).Once(),
			f.gateway.On("Me", ctx, "tok-9").Return(identity.Identity{}, errs.NewNetworkError("GET /auth/me", errors.New("timeout"))).Once(),
		)

		sess, err := f.store.Restore(ctx)

		require.ErrorIs(t, err, errs.ErrNetwork)
		assert.Nil(t, sess)
		assert.Empty(t, f.store.Token())
		f.assertExpectations(t)
	})

	t.Run("logout during hydration wins", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		f.storage.On("Load", ctx).Return("tok-9", nil).Once()
		f.storage.On("Clear", ctx).Return(nil).Once()
		f.gateway.On("Me", ctx, "tok-9").Return(staff(t), nil).Once().Run(func(mock.Arguments) {
			require.NoError(t, f.store.Logout(ctx))
		})

		sess, err := f.store.Restore(ctx)

		require.NoError(t, err)
		assert.Nil(t, sess)
		assert.Empty(t, f.store.Token(), "a purged token is never resurrected")
		f.assertExpectations(t)
	})

	t.Run("stale rejection leaves storage to the newer session", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		f.storage.On("Load", ctx).Return("tok-old", nil).Once()
		f.storage.On("Clear", ctx).Return(nil).Once()
		f.gateway.On("Me", ctx, "tok-old").
			Return(identity.Identity{}, errs.NewAuthenticationError("token expired")).
			Once().
			Run(func(mock.Arguments) {
				require.NoError(t, f.store.Logout(ctx))
			})

		sess, err := f.store.Restore(ctx)

		require.NoError(t, err)
		assert.Nil(t, sess)
		f.assertExpectations(t)
	})
}

func TestStore_Logout_Idempotent(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	f.storage.On("Clear", ctx).Return(nil).Twice()

	require.NoError(t, f.store.Logout(ctx))
	require.NoError(t, f.store.Logout(ctx))

	_, ok := f.store.Current()
	assert.False(t, ok)
	f.assertExpectations(t)
}

func loggedIn(t *testing.T, f fixture, token string) {
	t.Helper()
	ctx := t.Context()
	f.gateway.On("Login", ctx, creds).Return(token, nil).Once()
	f.gateway.On("Me", ctx, token).Return(staff(t), nil).Once()
	f.storage.On("Save", ctx, token).Return(nil).Once()
	_, err := f.store.Login(ctx, creds)
	require.NoError(t, err)
}

func TestStore_Invalidate(t *testing.T) {
	t.Run("current token is purged and user prompted", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		loggedIn(t, f, "tok-1")
		cause := errs.NewAuthenticationError("expired")
		f.storage.On("Clear", ctx).Return(nil).Once()
		f.prompter.On("PromptReauthentication", ctx, cause).Once()

		f.store.Invalidate(ctx, "tok-1", cause)

		assert.Empty(t, f.store.Token())
		f.assertExpectations(t)
	})

	t.Run("stale token does not end newer session", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		loggedIn(t, f, "tok-2")

		f.store.Invalidate(ctx, "tok-1", errs.NewAuthenticationError("expired"))

		assert.Equal(t, "tok-2", f.store.Token())
		f.assertExpectations(t)
	})

	t.Run("anonymous session is a no-op", func(t *testing.T) {
		f := newFixture()

		f.store.Invalidate(t.Context(), "", errs.NewAuthenticationError(""))

		f.assertExpectations(t)
	})
}
