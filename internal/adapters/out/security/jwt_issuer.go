// Package security provides the token and password primitives of the reference
// authority server.
package security

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
)

const (
	DefaultTokenTTL = 12 * time.Hour
	issuer          = "parceltrack-authority"
	minSecretLength = 16
)

type tokenClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// JWTIssuer signs HS256 access tokens carrying the account id, username and role.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

var _ ports.TokenIssuer = (*JWTIssuer)(nil)

// NewJWTIssuer creates an HS256 issuer. secret must be at least 32 bytes long.
func NewJWTIssuer(secret string, ttl time.Duration) (*JWTIssuer, error) {
	if len(secret) < minSecretLength {
		return nil, errs.NewValueIsOutOfRangeError("jwt secret length", len(secret), minSecretLength, "unbounded")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &JWTIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// WithClock replaces the time source, for tests.
func (s *JWTIssuer) WithClock(now func() time.Time) *JWTIssuer {
	cloned := *s
	cloned.now = now
	return &cloned
}

func (s *JWTIssuer) Issue(account *identity.Account) (string, error) {
	if account == nil {
		return "", errs.NewValueIsRequiredError("account")
	}
	if err := account.Validate(); err != nil {
		return "", err
	}

	now := s.now()
	claims := tokenClaims{
		Username: account.Username(),
		Role:     account.Role().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   account.ID().String(),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *JWTIssuer) Verify(token string) (ports.Claims, error) {
	if token == "" {
		return ports.Claims{}, errs.NewAuthenticationError("missing token")
	}

	var claims tokenClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		reason := "invalid token"
		if errors.Is(err, jwt.ErrTokenExpired) {
			reason = "token expired"
		}
		return ports.Claims{}, errs.NewAuthenticationErrorWithCause(reason, err)
	}

	raw, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return ports.Claims{}, errs.NewAuthenticationErrorWithCause("invalid subject", err)
	}
	accountID, err := kernel.NewID(raw)
	if err != nil {
		return ports.Claims{}, errs.NewAuthenticationErrorWithCause("invalid subject", err)
	}
	role, err := identity.ParseRole(claims.Role)
	if err != nil {
		return ports.Claims{}, errs.NewAuthenticationErrorWithCause("invalid role", err)
	}

	return ports.Claims{
		AccountID: accountID,
		Username:  claims.Username,
		Role:      role,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
