package errs_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProtocolErrors_Messages(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			name:     "authentication",
			err:      errs.NewAuthenticationError("token expired"),
			sentinel: errs.ErrAuthentication,
			message:  "authentication required: token expired",
		},
		{
			name:     "authorization",
			err:      errs.NewAuthorizationError("POST /packages"),
			sentinel: errs.ErrAuthorization,
			message:  "not permitted: POST /packages",
		},
		{
			name:     "validation",
			err:      errs.NewValidationError("sender does not exist"),
			sentinel: errs.ErrValidation,
			message:  "validation failed: sender does not exist",
		},
		{
			name:     "conflict with reason",
			err:      errs.NewConflictError("package 7", "status DELIVERED is terminal"),
			sentinel: errs.ErrConflict,
			message:  "state conflict: package 7: status DELIVERED is terminal",
		},
		{
			name:     "network",
			err:      errs.NewNetworkError("GET /packages", context.DeadlineExceeded),
			sentinel: errs.ErrNetwork,
			message:  "network failure: GET /packages (cause: context deadline exceeded)",
		},
		{
			name:     "remote failure",
			err:      errs.NewRemoteFailureError(502, "bad gateway"),
			sentinel: errs.ErrRemoteFailure,
			message:  "remote authority failure: status 502: bad gateway",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.message, tc.err.Error())
			require.ErrorIs(t, tc.err, tc.sentinel)
			require.ErrorIs(t, fmt.Errorf("wrapped: %w", tc.err), tc.sentinel)
		})
	}
}

func TestProtocolErrors_KindsAreDisjoint(t *testing.T) {
	authn := errs.NewAuthenticationError("")
	authz := errs.NewAuthorizationError("")

	assert.False(t, errors.Is(authn, errs.ErrAuthorization))
	assert.False(t, errors.Is(authz, errs.ErrAuthentication))
	assert.Equal(t, "authentication required", authn.Error())
}

func TestIsValidation(t *testing.T) {
	assert.True(t, errs.IsValidation(errs.NewValidationError("bad")))
	assert.True(t, errs.IsValidation(errs.NewValueIsRequiredError("dimensions")))
	assert.True(t, errs.IsValidation(errs.NewValueIsInvalidError("weight")))
	assert.True(t, errs.IsValidation(errs.NewValueIsOutOfRangeError("weight", 0, 0, 1)))
	assert.True(t, errs.IsValidation(errors.Join(errs.NewValueIsRequiredError("dimensions"))))

	assert.False(t, errs.IsValidation(errs.NewConflictError("package", "")))
	assert.False(t, errs.IsValidation(nil))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, errs.IsNotFound(errs.NewObjectNotFoundError("package", 3)))
	assert.False(t, errs.IsNotFound(errs.NewAuthorizationError("x")))
}
