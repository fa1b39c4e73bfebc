package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"parceltrack/internal/adapters/wire"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/logs"
)

// ErrorHandler renders handler errors as error documents.
type ErrorHandler struct {
	logger *slog.Logger
}

// NewErrorHandler creates the echo error handler. Server-side failures are logged
// with logger and answered with the bare status text.
func NewErrorHandler(logger *slog.Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// Handle is installed as echo's HTTPErrorHandler.
func (h *ErrorHandler) Handle(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, message := Classify(err)
	if status >= http.StatusInternalServerError {
		logs.FromContext(c.Request().Context(), h.logger).ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
		message = http.StatusText(status)
	}

	var respErr error
	if c.Request().Method == http.MethodHead {
		respErr = c.NoContent(status)
	} else {
		respErr = c.JSON(status, wire.ErrorResponse{Code: status, Message: message})
	}
	if respErr != nil {
		h.logger.Warn("failed to write error response", "error", respErr)
	}
}

// Classify returns the status code and client-facing message for err.
func Classify(err error) (int, string) {
	var (
		authn    *errs.AuthenticationError
		authz    *errs.AuthorizationError
		conflict *errs.ConflictError
		httpErr  *echo.HTTPError
	)

	switch {
	case errors.As(err, &authn):
		return http.StatusUnauthorized, orDefault(authn.Reason, "authentication required")
	case errors.As(err, &authz):
		return http.StatusForbidden, err.Error()
	case errs.IsNotFound(err):
		return http.StatusNotFound, err.Error()
	case errors.As(err, &conflict):
		return http.StatusConflict, orDefault(conflict.Reason, err.Error())
	case errs.IsValidation(err):
		return http.StatusBadRequest, err.Error()
	case errors.As(err, &httpErr):
		return httpErr.Code, fmt.Sprint(httpErr.Message)
	default:
		return http.StatusInternalServerError, err.Error()
	}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
