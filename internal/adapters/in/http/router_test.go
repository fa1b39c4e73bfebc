package http_test

import (
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "parceltrack/internal/adapters/in/http"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/pkg/logs"
)

// Apart from check-permission, the requests below are all rejected before any use
// case runs, so the server carries no other handlers.
func newContractRouter(t *testing.T) (*echo.Echo, string) {
	t.Helper()
	issuer := newIssuer(t)
	auth := httpadapter.NewAuthenticator(issuer, services.NewCapabilityPolicy())

	e, err := httpadapter.NewRouter(t.Context(), httpadapter.NewServer(httpadapter.Handlers{
		CheckPermission: queries.NewCheckPermissionQueryHandler(services.NewCapabilityPolicy()),
	}), auth, logs.Discard())
	require.NoError(t, err)
	return e, tokenFor(t, issuer, 2, identity.RoleStaff)
}

func jsonRequest(method, target, token, body string) *nethttp.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	return req
}

func TestLoadContract(t *testing.T) {
	doc, err := httpadapter.LoadContract(t.Context())
	require.NoError(t, err)

	for _, path := range []string{
		"/auth/login", "/auth/me", "/auth/check-permission",
		"/packages", "/packages/{id}/track", "/tracking/{id}",
		"/customers", "/locations", "/locations/{id}", "/locations/centers", "/transportations",
	} {
		assert.NotNil(t, doc.Paths.Value(path), path)
	}
}

func TestRouter(t *testing.T) {
	e, staff := newContractRouter(t)

	t.Run("health is public", func(t *testing.T) {
		rec := serve(e, httptest.NewRequest(nethttp.MethodGet, "/health", nil))

		assert.Equal(t, nethttp.StatusOK, rec.Code)
		assert.Equal(t, "Healthy", rec.Body.String())
	})

	t.Run("unknown route", func(t *testing.T) {
		rec := serve(e, httptest.NewRequest(nethttp.MethodGet, "/invoices", nil))

		assert.Equal(t, nethttp.StatusNotFound, rec.Code)
	})

	t.Run("authentication is checked before the contract", func(t *testing.T) {
		rec := serve(e, jsonRequest(nethttp.MethodPost, "/packages", "", `{"weight":-1}`))

		assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)
	})

	t.Run("body breaking the contract", func(t *testing.T) {
		rec := serve(e, jsonRequest(nethttp.MethodPost, "/packages", staff, `{"weight":2.5}`))

		assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
		assert.Equal(t, nethttp.StatusBadRequest, errorBody(t, rec).Code)
	})

	t.Run("unknown status in a track request", func(t *testing.T) {
		rec := serve(e, jsonRequest(nethttp.MethodPost, "/packages/1/track", staff, `{"status":"LOST","locationId":1}`))

		assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	})

	t.Run("non numeric id on the public tracking route", func(t *testing.T) {
		rec := serve(e, httptest.NewRequest(nethttp.MethodGet, "/tracking/abc", nil))

		assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	})

	t.Run("staff cannot manage locations", func(t *testing.T) {
		rec := serve(e, jsonRequest(nethttp.MethodDelete, "/locations/1", staff, ""))

		assert.Equal(t, nethttp.StatusForbidden, rec.Code)
	})

	t.Run("check-permission requires the query parameter", func(t *testing.T) {
		rec := serve(e, jsonRequest(nethttp.MethodGet, "/auth/check-permission", staff, ""))

		assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	})

	t.Run("check-permission answers from the policy", func(t *testing.T) {
		rec := serve(e, jsonRequest(nethttp.MethodGet, "/auth/check-permission?permission=CREATE_PACKAGE", staff, ""))
		assert.Equal(t, nethttp.StatusOK, rec.Code)
		assert.JSONEq(t, `{"allowed":true}`, rec.Body.String())

		rec = serve(e, jsonRequest(nethttp.MethodGet, "/auth/check-permission?permission=MANAGE_CENTERS", staff, ""))
		assert.Equal(t, nethttp.StatusOK, rec.Code)
		assert.JSONEq(t, `{"allowed":false}`, rec.Body.String())
	})
}
