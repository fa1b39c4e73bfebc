package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"parceltrack/internal/core/domain/model/identity"
)

// NewRouter builds the echo instance serving the remote authority API.
//
// Public routes: /health, /swagger/*, POST /auth/login and GET /tracking/:id.
// Every other route requires a bearer token, and all but /auth/* also require one
// capability.
func NewRouter(ctx context.Context, server *Server, auth *Authenticator, logger *slog.Logger) (*echo.Echo, error) {
	contract, err := LoadContract(ctx)
	if err != nil {
		return nil, err
	}
	validator, err := NewContractValidator(contract)
	if err != nil {
		return nil, err
	}
	if err = RegisterSwagger(contract); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = JSONSerializer{}
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = NewErrorHandler(logger).Handle

	e.Use(middleware.Recover())
	e.Use(RequestID(logger))
	e.Use(RequestLogger(logger))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	checked := validator.Middleware
	e.POST("/auth/login", server.Login, checked)
	e.GET("/tracking/:id", server.TrackPackage, checked)

	authed := auth.Authenticate
	guarded := func(capability identity.Capability) []echo.MiddlewareFunc {
		return []echo.MiddlewareFunc{authed, auth.Require(capability), checked}
	}

	e.GET("/auth/me", server.Me, authed)
	e.GET("/auth/check-permission", server.CheckPermission, authed, checked)

	e.GET("/packages", server.ListPackages, guarded(identity.ViewPackages)...)
	e.POST("/packages", server.CreatePackage, guarded(identity.CreatePackage)...)
	e.POST("/packages/:id/track", server.AppendTrack, guarded(identity.UpdatePackageStatus)...)

	e.GET("/customers", server.ListCustomers, guarded(identity.ViewCustomers)...)

	e.GET("/locations", server.ListLocations, guarded(identity.ViewLocations)...)
	e.POST("/locations", server.CreateLocation, guarded(identity.ManageLocations)...)
	e.DELETE("/locations/:id", server.DeleteLocation, guarded(identity.ManageLocations)...)

	e.GET("/locations/centers", server.ListCenters, guarded(identity.ViewCenters)...)
	e.POST("/locations/centers", server.CreateCenter, guarded(identity.ManageCenters)...)

	e.GET("/transportations", server.ListTransportations, guarded(identity.ViewLocations)...)

	return e, nil
}
