package postgres

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"parceltrack/internal/adapters/out/postgres/directoryrepo"
)

// SeedDirectory fills an empty directory with a small demo network: two customers,
// two centers with one location each and a truck run between them. It does nothing
// when any customer exists.
func SeedDirectory(ctx context.Context, db *gorm.DB, now time.Time) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var customers int64
		if err := tx.Model(&directoryrepo.CustomerDTO{}).Count(&customers).Error; err != nil {
			return errors.Wrap(err, "count customers")
		}
		if customers > 0 {
			return nil
		}

		people := []directoryrepo.CustomerDTO{
			{Name: "Alice Sender", Email: "alice@example.com", Phone: "+1-555-0100"},
			{Name: "Bob Receiver", Email: "bob@example.com", Phone: "+1-555-0101"},
		}
		if err := tx.Create(&people).Error; err != nil {
			return errors.Wrap(err, "seed customers")
		}

		centers := []directoryrepo.CenterDTO{
			{Name: "North Hub", City: "Springfield", Type: "HUB"},
			{Name: "South Depot", City: "Shelbyville", Type: "DEPOT"},
		}
		if err := tx.Create(&centers).Error; err != nil {
			return errors.Wrap(err, "seed centers")
		}

		locations := []directoryrepo.LocationDTO{
			{Name: "North Dock", Address: "1 Harbor Rd", City: "Springfield", CenterID: centers[0].ID},
			{Name: "South Gate", Address: "9 Depot Ave", City: "Shelbyville", CenterID: centers[1].ID},
		}
		if err := tx.Omit("Center").Create(&locations).Error; err != nil {
			return errors.Wrap(err, "seed locations")
		}

		departure := now.UTC().Truncate(time.Hour).Add(time.Hour)
		run := directoryrepo.TransportationDTO{
			Type:           "TRUCK",
			DepartureTime:  departure,
			ArrivalTime:    departure.Add(4 * time.Hour),
			FromLocationID: locations[0].ID,
			ToLocationID:   locations[1].ID,
		}
		if err := tx.Omit("FromLocation", "ToLocation").Create(&run).Error; err != nil {
			return errors.Wrap(err, "seed transportation")
		}
		return nil
	})
}
