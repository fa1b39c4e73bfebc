package ports

import (
	"context"
)

// TokenStorage keeps the token across process restarts. Load returns "" when
// nothing is stored.
type TokenStorage interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// TokenSource supplies the token for outgoing calls and is told when the remote
// authority rejected one with 401.
type TokenSource interface {
	// Token returns the current token, or "" when the session is not authenticated.
	Token() string

	// Invalidate purges the session if token is still the current one.
	Invalidate(ctx context.Context, token string, cause error)
}

// ReauthPrompter tells the user the session was lost and a new login is needed.
type ReauthPrompter interface {
	PromptReauthentication(ctx context.Context, cause error)
}
