package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"

	"parceltrack/internal/adapters/wire"
	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/shipment"
	"parceltrack/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	login          commands.LoginCommandHandler
	createPackage  commands.CreatePackageCommandHandler
	appendTrack    commands.AppendTrackCommandHandler
	createLocation commands.CreateLocationCommandHandler
	deleteLocation commands.DeleteLocationCommandHandler
	createCenter   commands.CreateCenterCommandHandler

	// Query handlers
	identity        queries.GetIdentityQueryHandler
	checkPermission queries.CheckPermissionQueryHandler
	packages        queries.GetPackagesQueryHandler
	tracking        queries.GetTrackingDetailsQueryHandler
	directory       queries.GetDirectoryQueryHandler
}

// Handlers groups the use cases a Server exposes.
type Handlers struct {
	Login          commands.LoginCommandHandler
	CreatePackage  commands.CreatePackageCommandHandler
	AppendTrack    commands.AppendTrackCommandHandler
	CreateLocation commands.CreateLocationCommandHandler
	DeleteLocation commands.DeleteLocationCommandHandler
	CreateCenter   commands.CreateCenterCommandHandler

	Identity        queries.GetIdentityQueryHandler
	CheckPermission queries.CheckPermissionQueryHandler
	Packages        queries.GetPackagesQueryHandler
	Tracking        queries.GetTrackingDetailsQueryHandler
	Directory       queries.GetDirectoryQueryHandler
}

// NewServer creates the API handlers from the use cases in h.
func NewServer(h Handlers) *Server {
	return &Server{
		login:           h.Login,
		createPackage:   h.CreatePackage,
		appendTrack:     h.AppendTrack,
		createLocation:  h.CreateLocation,
		deleteLocation:  h.DeleteLocation,
		createCenter:    h.CreateCenter,
		identity:        h.Identity,
		checkPermission: h.CheckPermission,
		packages:        h.Packages,
		tracking:        h.Tracking,
		directory:       h.Directory,
	}
}

// Login handles POST /auth/login.
func (s *Server) Login(c echo.Context) error {
	var req wire.LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewLoginCommand(identity.Credentials{Username: req.Username, Password: req.Password})
	if err != nil {
		return err
	}

	token, err := s.login.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, wire.LoginResponse{Token: token})
}

// Me handles GET /auth/me.
func (s *Server) Me(c echo.Context) error {
	claims, err := ClaimsFrom(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetIdentityQuery(claims.AccountID)
	if err != nil {
		return errs.NewAuthenticationErrorWithCause("token carries no account", err)
	}

	who, err := s.identity.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, wire.MeResponse{
		ID:          who.ID().Int64(),
		Username:    who.Username(),
		Email:       who.Email(),
		Role:        who.Role().String(),
		Permissions: who.PermissionHints(),
	})
}

// CheckPermission handles GET /auth/check-permission?permission=X.
func (s *Server) CheckPermission(c echo.Context) error {
	claims, err := ClaimsFrom(c)
	if err != nil {
		return err
	}

	var permission string
	if err = runtime.BindQueryParameter("form", true, true, "permission", c.QueryParams(), &permission); err != nil {
		return errs.NewValidationErrorWithCause("invalid permission parameter", err)
	}

	query, err := queries.NewCheckPermissionQuery(claims.Role, identity.Capability(permission))
	if err != nil {
		return err
	}

	allowed, err := s.checkPermission.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, wire.PermissionResponse{Allowed: allowed})
}

// ListPackages handles GET /packages.
func (s *Server) ListPackages(c echo.Context) error {
	packages, err := s.packages.Handle(c.Request().Context(), queries.NewGetPackagesQuery())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, wire.MapAll(packages, wire.FromPackage))
}

// CreatePackage handles POST /packages.
func (s *Server) CreatePackage(c echo.Context) error {
	var req wire.CreatePackageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreatePackageCommand(req.ToDraft())
	if err != nil {
		return err
	}

	pkg, err := s.createPackage.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, wire.FromPackage(pkg))
}

// AppendTrack handles POST /packages/:id/track.
func (s *Server) AppendTrack(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req wire.AppendTrackRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	status, err := shipment.ParseStatus(req.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAppendTrackCommand(id, status, kernel.ID(req.LocationID))
	if err != nil {
		return err
	}

	pkg, err := s.appendTrack.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, wire.FromPackage(pkg))
}

// TrackPackage handles GET /tracking/:id. It is public.
func (s *Server) TrackPackage(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetTrackingDetailsQuery(id)
	if err != nil {
		return err
	}

	details, err := s.tracking.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, wire.FromDetails(details))
}

// ListCustomers handles GET /customers.
func (s *Server) ListCustomers(c echo.Context) error {
	customers, err := s.directory.Customers(c.Request().Context(), queries.NewGetCustomersQuery())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, wire.MapAll(customers, wire.FromCustomer))
}

// ListLocations handles GET /locations.
func (s *Server) ListLocations(c echo.Context) error {
	locations, err := s.directory.Locations(c.Request().Context(), queries.NewGetLocationsQuery())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, wire.MapAll(locations, wire.FromLocation))
}

// CreateLocation handles POST /locations.
func (s *Server) CreateLocation(c echo.Context) error {
	var req wire.CreateLocationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateLocationCommand(req.ToDraft())
	if err != nil {
		return err
	}

	location, err := s.createLocation.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, wire.FromLocation(location))
}

// DeleteLocation handles DELETE /locations/:id.
func (s *Server) DeleteLocation(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteLocationCommand(id)
	if err != nil {
		return err
	}

	if err = s.deleteLocation.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// ListCenters handles GET /locations/centers.
func (s *Server) ListCenters(c echo.Context) error {
	centers, err := s.directory.Centers(c.Request().Context(), queries.NewGetCentersQuery())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, wire.MapAll(centers, wire.FromCenter))
}

// CreateCenter handles POST /locations/centers.
func (s *Server) CreateCenter(c echo.Context) error {
	var req wire.CreateCenterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateCenterCommand(req.ToDraft())
	if err != nil {
		return err
	}

	center, err := s.createCenter.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, wire.FromCenter(center))
}

// ListTransportations handles GET /transportations.
func (s *Server) ListTransportations(c echo.Context) error {
	transportations, err := s.directory.Transportations(c.Request().Context(), queries.NewGetTransportationsQuery())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, wire.MapAll(transportations, wire.FromTransportation))
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errs.NewValidationErrorWithCause("malformed request body", err)
	}
	return c.Validate(req)
}

// pathID binds the :id path parameter.
func pathID(c echo.Context) (kernel.ID, error) {
	var raw int64
	err := runtime.BindStyledParameterWithOptions("simple", "id", c.Param("id"), &raw,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, errs.NewValidationErrorWithCause("invalid id parameter", err)
	}

	id, err := kernel.NewID(raw)
	if err != nil {
		return 0, errs.NewValidationErrorWithCause("invalid id parameter", err)
	}
	return id, nil
}
