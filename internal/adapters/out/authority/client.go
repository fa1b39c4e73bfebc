package authority

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"parceltrack/internal/adapters/wire"
	"parceltrack/internal/core/domain/model/directory"
	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/shipment"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
)

// Client performs calls on behalf of the current session. All of them pass through
// send, which attaches the token and hands any 401 to the TokenSource.
type Client struct {
	transport *Transport
	tokens    ports.TokenSource
}

var (
	_ ports.PermissionGateway = (*Client)(nil)
	_ ports.PackageGateway    = (*Client)(nil)
	_ ports.DirectoryGateway  = (*Client)(nil)
)

// NewClient creates the session-bound client. Every call carries the current token
// of tokens, and a 401 answer is reported back through tokens.Invalidate.
func NewClient(transport *Transport, tokens ports.TokenSource) *Client {
	return &Client{transport: transport, tokens: tokens}
}

// send is the response interceptor. A call that needs a session and has none
// fails locally; a 401 on a call that carried a token invalidates that token.
func (c *Client) send(ctx context.Context, method, path string, public bool, in, out any) error {
	token := c.tokens.Token()
	if token == "" && !public {
		return errs.NewAuthenticationError("not logged in")
	}

	err := c.transport.call(ctx, method, path, token, in, out)
	if token != "" && errors.Is(err, errs.ErrAuthentication) {
		c.tokens.Invalidate(ctx, token, err)
	}
	return err
}

// CheckPermission asks whether the current session holds capability. The caller
// decides how 401 and 403 answers read.
func (c *Client) CheckPermission(ctx context.Context, capability identity.Capability) (bool, error) {
	var resp wire.PermissionResponse
	path := "/auth/check-permission?permission=" + url.QueryEscape(capability.String())
	if err := c.send(ctx, http.MethodGet, path, false, nil, &resp); err != nil {
		return false, err
	}
	return resp.Allowed, nil
}

func (c *Client) ListPackages(ctx context.Context) ([]*shipment.Package, error) {
	var resp []wire.PackageDTO
	if err := c.send(ctx, http.MethodGet, "/packages", false, nil, &resp); err != nil {
		return nil, err
	}
	return decode(resp, wire.PackageDTO.ToPackage)
}

func (c *Client) CreatePackage(ctx context.Context, draft shipment.Draft) (*shipment.Package, error) {
	var resp wire.PackageDTO
	if err := c.send(ctx, http.MethodPost, "/packages", false, wire.NewCreatePackageRequest(draft), &resp); err != nil {
		return nil, err
	}
	return decodeOne(resp, wire.PackageDTO.ToPackage)
}

func (c *Client) AppendTrack(
	ctx context.Context,
	id kernel.ID,
	status shipment.Status,
	locationID kernel.ID,
) (*shipment.Package, error) {
	var resp wire.PackageDTO
	req := wire.AppendTrackRequest{Status: status.String(), LocationID: locationID.Int64()}
	if err := c.send(ctx, http.MethodPost, fmt.Sprintf("/packages/%d/track", id), false, req, &resp); err != nil {
		return nil, err
	}
	return decodeOne(resp, wire.PackageDTO.ToPackage)
}

// TrackingDetails is public: it works without a session.
func (c *Client) TrackingDetails(ctx context.Context, id kernel.ID) (shipment.Details, error) {
	var resp wire.PackageDTO
	if err := c.send(ctx, http.MethodGet, fmt.Sprintf("/tracking/%d", id), true, nil, &resp); err != nil {
		return shipment.Details{}, err
	}
	return decodeOne(resp, wire.PackageDTO.ToDetails)
}

func (c *Client) ListCustomers(ctx context.Context) ([]directory.Customer, error) {
	var resp []wire.CustomerDTO
	if err := c.send(ctx, http.MethodGet, "/customers", false, nil, &resp); err != nil {
		return nil, err
	}
	return decode(resp, wire.CustomerDTO.ToDomain)
}

func (c *Client) ListLocations(ctx context.Context) ([]directory.Location, error) {
	var resp []wire.LocationDTO
	if err := c.send(ctx, http.MethodGet, "/locations", false, nil, &resp); err != nil {
		return nil, err
	}
	return decode(resp, wire.LocationDTO.ToDomain)
}

func (c *Client) CreateLocation(ctx context.Context, draft directory.LocationDraft) (directory.Location, error) {
	var resp wire.LocationDTO
	if err := c.send(ctx, http.MethodPost, "/locations", false, wire.NewCreateLocationRequest(draft), &resp); err != nil {
		return directory.Location{}, err
	}
	return decodeOne(resp, wire.LocationDTO.ToDomain)
}

func (c *Client) DeleteLocation(ctx context.Context, id kernel.ID) error {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/locations/%d", id), false, nil, nil)
}

func (c *Client) ListCenters(ctx context.Context) ([]directory.Center, error) {
	var resp []wire.CenterDTO
	if err := c.send(ctx, http.MethodGet, "/locations/centers", false, nil, &resp); err != nil {
		return nil, err
	}
	return decode(resp, wire.CenterDTO.ToDomain)
}

func (c *Client) CreateCenter(ctx context.Context, draft directory.CenterDraft) (directory.Center, error) {
	var resp wire.CenterDTO
	if err := c.send(ctx, http.MethodPost, "/locations/centers", false, wire.NewCreateCenterRequest(draft), &resp); err != nil {
		return directory.Center{}, err
	}
	return decodeOne(resp, wire.CenterDTO.ToDomain)
}

// decode converts a list answer; a document that breaks a domain rule makes the
// whole answer a remote failure.
func decode[D any, T any](docs []D, conv func(D) (T, error)) ([]T, error) {
	out, err := wire.ConvertAll(docs, conv)
	if err != nil {
		return nil, errs.NewRemoteFailureErrorWithCause(http.StatusOK, "malformed document", err)
	}
	return out, nil
}

func decodeOne[D any, T any](doc D, conv func(D) (T, error)) (T, error) {
	v, err := conv(doc)
	if err != nil {
		var zero T
		return zero, errs.NewRemoteFailureErrorWithCause(http.StatusOK, "malformed document", err)
	}
	return v, nil
}
