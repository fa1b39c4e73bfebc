package errs_test

import (
	"errors"
	"testing"

	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueErrors(t *testing.T) {
	cause := errors.New("row scan failed")

	testCases := []struct {
		name     string
		err      error
		sentinel error
		message  string
		unwraps  []error
	}{
		{
			name:     "not found",
			err:      errs.NewObjectNotFoundError("packageId", "123"),
			sentinel: errs.ErrObjectNotFound,
			message:  "object not found: 123",
			unwraps:  []error{errs.ErrObjectNotFound},
		},
		{
			name:     "not found with cause",
			err:      errs.NewObjectNotFoundErrorWithCause("packageId", "123", cause),
			sentinel: errs.ErrObjectNotFound,
			message:  "object not found: param is: packageId, ID is: 123 (cause: row scan failed)",
			unwraps:  []error{errs.ErrObjectNotFound, cause},
		},
		{
			name:     "invalid",
			err:      errs.NewValueIsInvalidError("dimensions"),
			sentinel: errs.ErrValueIsInvalid,
			message:  "value is invalid: dimensions",
			unwraps:  []error{errs.ErrValueIsInvalid},
		},
		{
			name:     "invalid with cause",
			err:      errs.NewValueIsInvalidErrorWithCause("dimensions", cause),
			sentinel: errs.ErrValueIsInvalid,
			message:  "value is invalid: dimensions (cause: row scan failed)",
			unwraps:  []error{errs.ErrValueIsInvalid, cause},
		},
		{
			name:     "out of range",
			err:      errs.NewValueIsOutOfRangeError("weight", 150, 0, 120),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is invalid: 150 is weight, min value is 0, max value is 120",
			unwraps:  []error{errs.ErrValueIsOutOfRange},
		},
		{
			name:     "out of range with cause",
			err:      errs.NewValueIsOutOfRangeErrorWithCause("weight", -5, 0, 100, cause),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is invalid: -5 is weight, min value is 0, max value is 100 (cause: row scan failed)",
			unwraps:  []error{errs.ErrValueIsOutOfRange, cause},
		},
		{
			name:     "required",
			err:      errs.NewValueIsRequiredError("username"),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: username",
			unwraps:  []error{errs.ErrValueIsRequired},
		},
		{
			name:     "required with cause",
			err:      errs.NewValueIsRequiredErrorWithCause("username", cause),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: username (cause: row scan failed)",
			unwraps:  []error{errs.ErrValueIsRequired, cause},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.message, tc.err.Error())
			require.ErrorIs(t, tc.err, tc.sentinel)

			multi, ok := tc.err.(interface{ Unwrap() []error })
			require.True(t, ok)
			assert.Equal(t, tc.unwraps, multi.Unwrap())
		})
	}
}

func TestValueErrors_Fields(t *testing.T) {
	notFound := errs.NewObjectNotFoundError("locationId", 456)
	assert.Equal(t, "locationId", notFound.ParamName)
	assert.Equal(t, 456, notFound.ID)
	require.NoError(t, notFound.Cause)
	assert.Equal(t, "object not found: %!s(int=456)", notFound.Error())

	outOfRange := errs.NewValueIsOutOfRangeError("weight", 150, 0, 120)
	assert.Equal(t, 150, outOfRange.Value)
	assert.Equal(t, 0, outOfRange.Min)
	assert.Equal(t, 120, outOfRange.Max)
}

func TestValueErrors_SingleLine(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("description", "fragile\nglass", 0, 10)

	assert.Contains(t, err.Error(), "fragile glass")
	assert.NotContains(t, err.Error(), "\n")
}

func TestValueErrors_SurviveJoin(t *testing.T) {
	err := errors.Join(errors.New("other"), errs.NewValueIsRequiredError("weight"))

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
}
