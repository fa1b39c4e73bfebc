package http_test

import (
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "parceltrack/internal/adapters/in/http"
	"parceltrack/internal/adapters/out/security"
	"parceltrack/internal/adapters/wire"
	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/pkg/logs"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newIssuer(t *testing.T) *security.JWTIssuer {
	t.Helper()
	issuer, err := security.NewJWTIssuer(testSecret, time.Hour)
	require.NoError(t, err)
	return issuer
}

func tokenFor(t *testing.T, issuer *security.JWTIssuer, id int64, role identity.Role) string {
	t.Helper()
	account, err := identity.RestoreAccount(kernel.ID(id), strings.ToLower(role.String()), "", "hash", role)
	require.NoError(t, err)
	token, err := issuer.Issue(account)
	require.NoError(t, err)
	return token
}

// guardedEcho serves GET /packages behind Authenticate and Require(VIEW_PACKAGES).
func guardedEcho(issuer *security.JWTIssuer) *echo.Echo {
	auth := httpadapter.NewAuthenticator(issuer, services.NewCapabilityPolicy())

	e := echo.New()
	e.HTTPErrorHandler = httpadapter.NewErrorHandler(logs.Discard()).Handle
	e.GET("/packages", func(c echo.Context) error {
		claims, err := httpadapter.ClaimsFrom(c)
		if err != nil {
			return err
		}
		return c.String(nethttp.StatusOK, claims.Username)
	}, auth.Authenticate, auth.Require(identity.ViewPackages))
	return e
}

func serve(e *echo.Echo, req *nethttp.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) wire.ErrorResponse {
	t.Helper()
	var body wire.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAuthenticator(t *testing.T) {
	issuer := newIssuer(t)
	e := guardedEcho(issuer)

	t.Run("missing token is unauthenticated", func(t *testing.T) {
		rec := serve(e, httptest.NewRequest(nethttp.MethodGet, "/packages", nil))

		assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)
		assert.Equal(t, "missing bearer token", errorBody(t, rec).Message)
	})

	t.Run("non bearer scheme is unauthenticated", func(t *testing.T) {
		req := httptest.NewRequest(nethttp.MethodGet, "/packages", nil)
		req.Header.Set(echo.HeaderAuthorization, "Basic abc")

		assert.Equal(t, nethttp.StatusUnauthorized, serve(e, req).Code)
	})

	t.Run("token signed with another secret is unauthenticated", func(t *testing.T) {
		other, err := security.NewJWTIssuer("fedcba9876543210fedcba9876543210", time.Hour)
		require.NoError(t, err)
		req := httptest.NewRequest(nethttp.MethodGet, "/packages", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+tokenFor(t, other, 1, identity.RoleStaff))

		assert.Equal(t, nethttp.StatusUnauthorized, serve(e, req).Code)
	})

	t.Run("expired token is unauthenticated", func(t *testing.T) {
		stale := issuer.WithClock(func() time.Time { return time.Now().Add(-2 * time.Hour) })
		req := httptest.NewRequest(nethttp.MethodGet, "/packages", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+tokenFor(t, stale, 1, identity.RoleStaff))

		assert.Equal(t, nethttp.StatusUnauthorized, serve(e, req).Code)
	})

	t.Run("role without the capability is forbidden", func(t *testing.T) {
		req := httptest.NewRequest(nethttp.MethodGet, "/packages", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+tokenFor(t, issuer, 3, identity.RoleCustomer))

		rec := serve(e, req)
		assert.Equal(t, nethttp.StatusForbidden, rec.Code)
		assert.Equal(t, "not permitted: GET /packages", errorBody(t, rec).Message)
	})

	t.Run("role with the capability passes", func(t *testing.T) {
		req := httptest.NewRequest(nethttp.MethodGet, "/packages", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+tokenFor(t, issuer, 2, identity.RoleStaff))

		rec := serve(e, req)
		assert.Equal(t, nethttp.StatusOK, rec.Code)
		assert.Equal(t, "staff", rec.Body.String())
	})
}

func TestRequestID(t *testing.T) {
	e := echo.New()
	e.Use(httpadapter.RequestID(logs.Discard()))
	e.GET("/", func(c echo.Context) error { return c.NoContent(nethttp.StatusOK) })

	t.Run("echoes the caller's id", func(t *testing.T) {
		req := httptest.NewRequest(nethttp.MethodGet, "/", nil)
		req.Header.Set(httpadapter.HeaderXRequestID, "req-42")

		assert.Equal(t, "req-42", serve(e, req).Header().Get(httpadapter.HeaderXRequestID))
	})

	t.Run("generates one when missing", func(t *testing.T) {
		rec := serve(e, httptest.NewRequest(nethttp.MethodGet, "/", nil))

		assert.NotEmpty(t, rec.Header().Get(httpadapter.HeaderXRequestID))
	})
}
