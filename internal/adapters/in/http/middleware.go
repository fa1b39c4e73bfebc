package http

import (
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/logs"
)

const (
	HeaderXRequestID = "X-Request-ID"

	claimsKey = "claims"
)

// RequestID reuses the caller's X-Request-ID or generates one, echoes it back and
// stores a logger carrying it in the request context.
func RequestID(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			c.Response().Header().Set(HeaderXRequestID, requestID)

			ctx := logs.WithLogger(c.Request().Context(), logger.With(slog.String("request_id", requestID)))
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// RequestLogger logs one line per request, at warn for 4xx and error for 5xx.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			status := c.Response().Status
			level := slog.LevelInfo
			switch {
			case status >= 500:
				level = slog.LevelError
			case status >= 400:
				level = slog.LevelWarn
			}

			logs.FromContext(req.Context(), logger).LogAttrs(req.Context(), level, "http request",
				slog.String("method", req.Method),
				slog.String("path", req.URL.Path),
				slog.Int("status", status),
				slog.Duration("latency", time.Since(start)),
				slog.String("remote_ip", c.RealIP()),
			)
			return nil
		}
	}
}

// Authenticator verifies bearer tokens and applies the capability policy.
type Authenticator struct {
	issuer ports.TokenIssuer
	policy services.CapabilityPolicy
}

// NewAuthenticator creates the bearer-token middleware factory. issuer verifies
// tokens and policy answers capability checks for Require.
func NewAuthenticator(issuer ports.TokenIssuer, policy services.CapabilityPolicy) *Authenticator {
	return &Authenticator{issuer: issuer, policy: policy}
}

// Authenticate rejects requests without a valid bearer token and stores the
// verified claims for the handlers.
func (a *Authenticator) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return errs.NewAuthenticationError("missing bearer token")
		}
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			return errs.NewAuthenticationError("authorization header must be a bearer token")
		}

		claims, err := a.issuer.Verify(strings.TrimSpace(token))
		if err != nil {
			return err
		}

		c.Set(claimsKey, claims)
		return next(c)
	}
}

// Require lets the request through only when the bearer's role holds capability.
// It must run after Authenticate.
func (a *Authenticator) Require(capability identity.Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := ClaimsFrom(c)
			if err != nil {
				return err
			}
			if !a.policy.Allows(claims.Role, capability) {
				return errs.NewAuthorizationError(c.Request().Method + " " + c.Path())
			}
			return next(c)
		}
	}
}

// ClaimsFrom returns the claims stored by Authenticate.
func ClaimsFrom(c echo.Context) (ports.Claims, error) {
	claims, ok := c.Get(claimsKey).(ports.Claims)
	if !ok {
		return ports.Claims{}, errs.NewAuthenticationError("request is not authenticated")
	}
	return claims, nil
}
