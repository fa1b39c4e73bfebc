package directory_test

import (
	"testing"
	"time"

	"parceltrack/internal/core/domain/model/directory"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestoreCustomer(t *testing.T) {
	t.Run("should restore customer", func(t *testing.T) {
		c, err := directory.RestoreCustomer(3, " Ada ", "ada@example.com", "+100")

		require.NoError(t, err)
		assert.Equal(t, "Ada", c.Name())
		assert.Equal(t, "ada@example.com", c.Email())
		assert.Equal(t, "+100", c.Phone())
	})

	t.Run("should require id and name", func(t *testing.T) {
		_, err := directory.RestoreCustomer(0, "", "", "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestLocationDraft_Validate(t *testing.T) {
	t.Run("should accept complete draft", func(t *testing.T) {
		draft := directory.LocationDraft{Name: "Dock 4", Address: "1 Pier Rd", City: "Lisbon", CenterID: 2}
		require.NoError(t, draft.Validate())

		loc, err := directory.RestoreLocation(9, draft)
		require.NoError(t, err)
		assert.Equal(t, "Dock 4", loc.Name())
		assert.EqualValues(t, 2, loc.CenterID())
	})

	t.Run("should report every missing field", func(t *testing.T) {
		err := directory.LocationDraft{}.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "address")
		assert.Contains(t, err.Error(), "city")
		assert.Contains(t, err.Error(), "id")
	})
}

func TestCenterDraft_Validate(t *testing.T) {
	c, err := directory.RestoreCenter(1, directory.CenterDraft{Name: "North hub", City: "Porto", Type: "HUB"})
	require.NoError(t, err)
	assert.Equal(t, "HUB", c.Type())

	_, err = directory.RestoreCenter(1, directory.CenterDraft{Name: "North hub"})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestRestoreTransportation(t *testing.T) {
	departure := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	t.Run("should accept arrival after departure", func(t *testing.T) {
		tr, err := directory.RestoreTransportation(1, "TRUCK", departure, departure.Add(2*time.Hour), 1, 2)

		require.NoError(t, err)
		assert.Equal(t, "TRUCK", tr.Type())
		assert.Equal(t, departure, tr.DepartureTime())
	})

	t.Run("should accept equal times", func(t *testing.T) {
		_, err := directory.RestoreTransportation(1, "TRUCK", departure, departure, 1, 2)
		require.NoError(t, err)
	})

	t.Run("should reject arrival before departure", func(t *testing.T) {
		_, err := directory.RestoreTransportation(1, "TRUCK", departure, departure.Add(-time.Minute), 1, 2)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "arrivalTime")
	})
}
