package services_test

import (
	"testing"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/shipment"
	"parceltrack/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func track(t *testing.T, id kernel.ID, status shipment.Status, location kernel.ID, offset time.Duration) shipment.Track {
	t.Helper()
	tr, err := shipment.RestoreTrack(id, 1, status, location, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(offset))
	require.NoError(t, err)
	return tr
}

func TestProjectionAuditor_Audit(t *testing.T) {
	auditor := services.NewProjectionAuditor()

	t.Run("should accept consistent package", func(t *testing.T) {
		records := []services.ProjectionRecord{{
			PackageID:         1,
			Status:            shipment.InTransit,
			CurrentLocationID: 2,
			Tracks: []shipment.Track{
				track(t, 2, shipment.InTransit, 2, time.Hour),
				track(t, 1, shipment.Created, 1, 0),
			},
		}}

		assert.Empty(t, auditor.Audit(records))
	})

	t.Run("should report stale projection", func(t *testing.T) {
		records := []services.ProjectionRecord{{
			PackageID:         1,
			Status:            shipment.Created,
			CurrentLocationID: 1,
			Tracks: []shipment.Track{
				track(t, 1, shipment.Created, 1, 0),
				track(t, 2, shipment.AtCenter, 3, time.Hour),
			},
		}}

		found := auditor.Audit(records)

		require.Len(t, found, 2)
		assert.Contains(t, found[0].String(), "status is CREATED, latest track says AT_CENTER")
		assert.Contains(t, found[1].Reason, "current location is 1")
	})

	t.Run("should report broken ledger", func(t *testing.T) {
		records := []services.ProjectionRecord{
			{PackageID: 1},
			{
				PackageID:         2,
				Status:            shipment.InTransit,
				CurrentLocationID: 2,
				Tracks: []shipment.Track{
					track(t, 1, shipment.Cancelled, 1, 0),
					track(t, 2, shipment.InTransit, 2, time.Minute),
				},
			},
		}

		found := auditor.Audit(records)

		require.Len(t, found, 3)
		assert.Equal(t, "ledger is empty", found[0].Reason)
		assert.Contains(t, found[1].Reason, "first track 1 is CANCELLED")
		assert.Contains(t, found[2].Reason, "follows terminal track 1")
	})
}
