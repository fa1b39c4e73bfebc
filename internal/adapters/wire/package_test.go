package wire_test

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parceltrack/internal/adapters/wire"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/shipment"
	"parceltrack/internal/pkg/errs"
)

const nestedDetails = `{
  "id": 5,
  "weight": 1.2,
  "dimensions": "10x10x10",
  "status": "IN_TRANSIT",
  "createdAt": "2025-03-01T09:00:00Z",
  "sender": {"id": 1, "name": "Ann", "email": "ann@example.com", "phone": "1"},
  "receiver": {"id": 2, "name": "Bob", "email": "bob@example.com", "phone": "2"},
  "currentLocation": {"id": 3, "name": "Hub", "address": "Main 1", "city": "Oslo", "centerId": 1},
  "transportation": {
    "id": 8, "type": "TRUCK",
    "departureTime": "2025-03-01T10:00:00Z", "arrivalTime": "2025-03-01T14:00:00Z",
    "fromLocationId": 1, "toLocationId": 3
  },
  "tracks": [
    {"id": 2, "status": "IN_TRANSIT", "timestamp": "2025-03-01T10:00:00Z", "location": {"id": 3, "name": "Hub", "address": "Main 1", "city": "Oslo", "centerId": 1}},
    {"id": 1, "status": "CREATED", "timestamp": "2025-03-01T09:00:00Z", "locationId": 1}
  ]
}`

func TestPackageDTO_ToDetails_Nested(t *testing.T) {
	var doc wire.PackageDTO
	require.NoError(t, json.Unmarshal([]byte(nestedDetails), &doc))

	details, err := doc.ToDetails()

	require.NoError(t, err)
	p := details.Package
	assert.Equal(t, kernel.ID(1), p.SenderID())
	assert.Equal(t, kernel.ID(2), p.ReceiverID())
	assert.Equal(t, kernel.ID(3), p.CurrentLocationID())
	require.NotNil(t, p.TransportationID())
	assert.Equal(t, kernel.ID(8), *p.TransportationID())
	require.NotNil(t, details.Transportation)
	assert.Equal(t, "TRUCK", details.Transportation.Type())

	history := details.History()
	require.Len(t, history, 2)
	assert.Equal(t, shipment.Created, history[0].Status())
	assert.Equal(t, kernel.ID(5), history[1].PackageID())
	assert.Equal(t, kernel.ID(3), history[1].LocationID())
}

func TestPackageDTO_ToDetails_RequiresNestedObjects(t *testing.T) {
	doc := wire.PackageDTO{ID: 5, Status: "CREATED"}

	_, err := doc.ToDetails()

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestPackageDTO_ToPackage_RejectsProjectionMismatch(t *testing.T) {
	var doc wire.PackageDTO
	require.NoError(t, json.Unmarshal([]byte(nestedDetails), &doc))
	doc.Status = "DELIVERED"

	_, err := doc.ToPackage()

	require.ErrorIs(t, err, shipment.ErrProjectionMismatch)
}

func TestFromPackage_RoundTrip(t *testing.T) {
	at := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	transport := kernel.ID(4)
	track, err := shipment.RestoreTrack(1, 9, shipment.Created, 1, at)
	require.NoError(t, err)
	restored, err := shipment.RestorePackage(9, shipment.Draft{
		Weight:            2.5,
		Dimensions:        "30x20x15",
		SenderID:          1,
		ReceiverID:        2,
		CurrentLocationID: 1,
		TransportationID:  &transport,
	}, at, shipment.Created, 1, []shipment.Track{track})
	require.NoError(t, err)

	doc := wire.FromPackage(restored)
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"status":"CREATED"`)
	assert.NotContains(t, string(raw), `"sender"`)

	var decoded wire.PackageDTO
	require.NoError(t, json.Unmarshal(raw, &decoded))
	back, err := decoded.ToPackage()
	require.NoError(t, err)
	assert.Equal(t, kernel.ID(9), back.ID())
	assert.Equal(t, transport, *back.TransportationID())
	assert.Len(t, back.Tracks(), 1)
}

func TestCreatePackageRequest_Draft(t *testing.T) {
	transport := kernel.ID(3)
	draft := shipment.Draft{
		Weight: 1, Dimensions: "1x1x1", SenderID: 1, ReceiverID: 2, CurrentLocationID: 5, TransportationID: &transport,
	}

	req := wire.NewCreatePackageRequest(draft)

	require.NotNil(t, req.TransportationID)
	assert.Equal(t, int64(3), *req.TransportationID)
	assert.Equal(t, draft, req.ToDraft())
}
