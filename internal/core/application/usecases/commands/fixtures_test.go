package commands_test

import (
	"testing"
	"time"

	"parceltrack/internal/core/domain/model/directory"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func fixedNow() time.Time {
	return createdAt.Add(time.Hour)
}

func testDraft() shipment.Draft {
	return shipment.Draft{
		Weight:            2.5,
		Dimensions:        "30x20x15",
		SenderID:          1,
		ReceiverID:        2,
		CurrentLocationID: 1,
	}
}

func testCustomer(t *testing.T, id kernel.ID) directory.Customer {
	t.Helper()
	c, err := directory.RestoreCustomer(id, "Customer", "c@example.com", "")
	require.NoError(t, err)
	return c
}

func testLocation(t *testing.T, id kernel.ID) directory.Location {
	t.Helper()
	l, err := directory.RestoreLocation(id, directory.LocationDraft{
		Name: "Dock", Address: "1 Harbour Rd", City: "Porto", CenterID: 1,
	})
	require.NoError(t, err)
	return l
}

func testCenter(t *testing.T, id kernel.ID) directory.Center {
	t.Helper()
	c, err := directory.RestoreCenter(id, directory.CenterDraft{Name: "North Hub", City: "Porto", Type: "HUB"})
	require.NoError(t, err)
	return c
}

// storedPackage restores package id with a ledger ending in the given statuses,
// all recorded at location 1.
func storedPackage(t *testing.T, id kernel.ID, statuses ...shipment.Status) *shipment.Package {
	t.Helper()
	ledger := append([]shipment.Status{shipment.Created}, statuses...)
	tracks := make([]shipment.Track, 0, len(ledger))
	for i, status := range ledger {
		track, err := shipment.RestoreTrack(kernel.ID(i+1), id, status, 1, createdAt.Add(time.Duration(i)*time.Minute))
		require.NoError(t, err)
		tracks = append(tracks, track)
	}
	p, err := shipment.RestorePackage(id, testDraft(), createdAt, ledger[len(ledger)-1], 1, tracks)
	require.NoError(t, err)
	return p
}
