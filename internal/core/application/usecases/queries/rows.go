package queries

import (
	"context"
	"database/sql"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

const packageColumns = `
	p.id,
	p.weight,
	p.dimensions,
	p.sender_id,
	p.receiver_id,
	p.transportation_id,
	p.status,
	p.current_location_id,
	p.created_at`

// packageRow is one row of the packages table as selected by packageColumns.
type packageRow struct {
	id                int64
	weight            float64
	dimensions        string
	senderID          int64
	receiverID        int64
	transportationID  sql.NullInt64
	status            int
	currentLocationID int64
	createdAt         time.Time
}

func (r *packageRow) targets() []any {
	return []any{
		&r.id,
		&r.weight,
		&r.dimensions,
		&r.senderID,
		&r.receiverID,
		&r.transportationID,
		&r.status,
		&r.currentLocationID,
		&r.createdAt,
	}
}

func (r packageRow) restore(tracks []shipment.Track) (*shipment.Package, error) {
	draft := shipment.Draft{
		Weight:            r.weight,
		Dimensions:        r.dimensions,
		SenderID:          kernel.ID(r.senderID),
		ReceiverID:        kernel.ID(r.receiverID),
		CurrentLocationID: kernel.ID(r.currentLocationID),
	}
	if r.transportationID.Valid {
		draft.TransportationID = kernel.OptionalID(kernel.ID(r.transportationID.Int64))
	}

	return shipment.RestorePackage(
		kernel.ID(r.id),
		draft,
		r.createdAt,
		shipment.Status(r.status),
		kernel.ID(r.currentLocationID),
		tracks,
	)
}

// loadTracks reads the ledgers of the given packages in one round trip, grouped
// by package and in ledger order.
func loadTracks(ctx context.Context, db *gorm.DB, packageIDs []int64) (map[int64][]shipment.Track, error) {
	ledgers := make(map[int64][]shipment.Track, len(packageIDs))
	if len(packageIDs) == 0 {
		return ledgers, nil
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			package_id,
			status,
			location_id,
			timestamp
		FROM tracks
		WHERE package_id IN ?
		ORDER BY package_id, timestamp, id
	`, packageIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, packageID, locationID int64
		var status int
		var at time.Time

		if err = rows.Scan(&id, &packageID, &status, &locationID, &at); err != nil {
			return nil, err
		}

		track, trackErr := shipment.RestoreTrack(
			kernel.ID(id),
			kernel.ID(packageID),
			shipment.Status(status),
			kernel.ID(locationID),
			at,
		)
		if trackErr != nil {
			return nil, trackErr
		}
		ledgers[packageID] = append(ledgers[packageID], track)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ledgers, nil
}
