package authority

import (
	"context"
	"net/http"

	"parceltrack/internal/adapters/wire"
	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
)

// AuthGateway runs login and identity hydration with explicit tokens. Its 401s
// are returned to the Session Store as is; they never go through the interceptor.
type AuthGateway struct {
	transport *Transport
}

var _ ports.AuthGateway = (*AuthGateway)(nil)

// NewAuthGateway creates the gateway for login and identity hydration. It passes
// tokens explicitly and never touches the session.
func NewAuthGateway(transport *Transport) *AuthGateway {
	return &AuthGateway{transport: transport}
}

func (g *AuthGateway) Login(ctx context.Context, credentials identity.Credentials) (string, error) {
	var resp wire.LoginResponse
	req := wire.LoginRequest{Username: credentials.Username, Password: credentials.Password}
	if err := g.transport.call(ctx, http.MethodPost, "/auth/login", "", req, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", errs.NewRemoteFailureError(http.StatusOK, "login answered without a token")
	}
	return resp.Token, nil
}

func (g *AuthGateway) Me(ctx context.Context, token string) (identity.Identity, error) {
	if token == "" {
		return identity.Identity{}, errs.NewAuthenticationError("no token")
	}
	var resp wire.MeResponse
	if err := g.transport.call(ctx, http.MethodGet, "/auth/me", token, nil, &resp); err != nil {
		return identity.Identity{}, err
	}
	id, err := resp.ToIdentity()
	if err != nil {
		return identity.Identity{}, errs.NewRemoteFailureErrorWithCause(http.StatusOK, "malformed identity", err)
	}
	return id, nil
}
