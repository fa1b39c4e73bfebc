package postgres

import (
	"gorm.io/gorm"

	"parceltrack/internal/adapters/out/postgres/accountrepo"
	"parceltrack/internal/adapters/out/postgres/directoryrepo"
	"parceltrack/internal/adapters/out/postgres/packagerepo"
)

// Models lists the persisted DTOs in dependency order.
func Models() []any {
	return []any{
		&directoryrepo.CustomerDTO{},
		&directoryrepo.CenterDTO{},
		&directoryrepo.LocationDTO{},
		&directoryrepo.TransportationDTO{},
		&packagerepo.PackageDTO{},
		&packagerepo.TrackDTO{},
		&accountrepo.AccountDTO{},
	}
}

// Migrate creates or updates the schema, foreign keys included.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

// Tables lists the table names, dependents first, for TRUNCATE in tests.
const Tables = "tracks, packages, transportations, locations, centers, customers, accounts"
