package http

import (
	"context"
	_ "embed"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/swaggo/swag"

	"parceltrack/internal/pkg/errs"
)

//go:embed openapi.yaml
var openAPIDocument []byte

// LoadContract parses and validates the embedded OpenAPI document.
func LoadContract(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openAPIDocument)
	if err != nil {
		return nil, errors.Wrap(err, "load openapi document")
	}
	if err = doc.Validate(ctx); err != nil {
		return nil, errors.Wrap(err, "invalid openapi document")
	}
	return doc, nil
}

// ContractValidator checks requests against the OpenAPI document. Requests for
// paths the document does not describe are passed through to echo's routing.
type ContractValidator struct {
	router routers.Router
}

func NewContractValidator(doc *openapi3.T) (*ContractValidator, error) {
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, errors.Wrap(err, "build openapi router")
	}
	return &ContractValidator{router: router}, nil
}

// Middleware rejects a request that breaks the contract with a ValidationError.
// Authentication is left to Authenticator.
func (v *ContractValidator) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		route, pathParams, err := v.router.FindRoute(req)
		if err != nil {
			return next(c)
		}

		input := &openapi3filter.RequestValidationInput{
			Request:    req,
			PathParams: pathParams,
			Route:      route,
			Options: &openapi3filter.Options{
				AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
			},
		}
		if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
			return errs.NewValidationErrorWithCause(contractMessage(err), err)
		}
		return next(c)
	}
}

func contractMessage(err error) string {
	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Error()
	}
	return "request does not match the API contract"
}

// swaggerDoc serves the contract to echo-swagger as JSON.
type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string {
	return d.json
}

var registerSwagger sync.Once

// RegisterSwagger publishes doc under swag's default instance name, once per
// process.
func RegisterSwagger(doc *openapi3.T) error {
	raw, err := doc.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "encode openapi document")
	}
	registerSwagger.Do(func() {
		swag.Register(swag.Name, swaggerDoc{json: string(raw)})
	})
	return nil
}
