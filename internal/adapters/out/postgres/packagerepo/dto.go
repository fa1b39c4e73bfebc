// Package packagerepo persists package aggregates: one row per package holding the
// projection and one row per ledger entry.
package packagerepo

import (
	"time"

	"parceltrack/internal/adapters/out/postgres/directoryrepo"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/shipment"
)

// PackageDTO stores the package and its projection columns. The associations only
// declare foreign keys; they are never loaded or written through this DTO.
type PackageDTO struct {
	ID                int64   `gorm:"primaryKey;autoIncrement"`
	Weight            float64 `gorm:"not null"`
	Dimensions        string  `gorm:"not null"`
	SenderID          int64   `gorm:"not null;index"`
	ReceiverID        int64   `gorm:"not null;index"`
	TransportationID  *int64  `gorm:"index"`
	Status            int     `gorm:"not null;index"`
	CurrentLocationID int64   `gorm:"not null;index"`
	CreatedAt         time.Time
	Tracks            []TrackDTO `gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE"`

	Sender          *directoryrepo.CustomerDTO       `gorm:"foreignKey:SenderID;constraint:OnDelete:RESTRICT"`
	Receiver        *directoryrepo.CustomerDTO       `gorm:"foreignKey:ReceiverID;constraint:OnDelete:RESTRICT"`
	CurrentLocation *directoryrepo.LocationDTO       `gorm:"foreignKey:CurrentLocationID;constraint:OnDelete:RESTRICT"`
	Transportation  *directoryrepo.TransportationDTO `gorm:"foreignKey:TransportationID;constraint:OnDelete:RESTRICT"`
}

func (PackageDTO) TableName() string {
	return "packages"
}

// TrackDTO is one ledger entry. Rows are inserted, never updated.
type TrackDTO struct {
	ID         int64                      `gorm:"primaryKey;autoIncrement"`
	PackageID  int64                      `gorm:"not null;index:idx_tracks_package_time,priority:1"`
	Status     int                        `gorm:"not null"`
	LocationID int64                      `gorm:"not null;index"`
	Timestamp  time.Time                  `gorm:"not null;index:idx_tracks_package_time,priority:2"`
	Location   *directoryrepo.LocationDTO `gorm:"foreignKey:LocationID;constraint:OnDelete:RESTRICT"`
}

func (TrackDTO) TableName() string {
	return "tracks"
}

func fromDomain(p *shipment.Package) PackageDTO {
	var transportationID *int64
	if id := p.TransportationID(); id != nil {
		raw := id.Int64()
		transportationID = &raw
	}

	tracks := make([]TrackDTO, 0, len(p.Tracks()))
	for _, t := range p.Tracks() {
		tracks = append(tracks, trackFromDomain(p.ID(), t))
	}

	return PackageDTO{
		ID:                p.ID().Int64(),
		Weight:            p.Weight(),
		Dimensions:        p.Dimensions(),
		SenderID:          p.SenderID().Int64(),
		ReceiverID:        p.ReceiverID().Int64(),
		TransportationID:  transportationID,
		Status:            int(p.Status()),
		CurrentLocationID: p.CurrentLocationID().Int64(),
		CreatedAt:         p.CreatedAt(),
		Tracks:            tracks,
	}
}

func trackFromDomain(packageID kernel.ID, t shipment.Track) TrackDTO {
	return TrackDTO{
		ID:         t.ID().Int64(),
		PackageID:  packageID.Int64(),
		Status:     int(t.Status()),
		LocationID: t.LocationID().Int64(),
		Timestamp:  t.Timestamp(),
	}
}

func toDomain(dto PackageDTO) (*shipment.Package, error) {
	tracks := make([]shipment.Track, 0, len(dto.Tracks))
	for _, t := range dto.Tracks {
		track, err := trackToDomain(t)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, track)
	}

	draft := shipment.Draft{
		Weight:            dto.Weight,
		Dimensions:        dto.Dimensions,
		SenderID:          kernel.ID(dto.SenderID),
		ReceiverID:        kernel.ID(dto.ReceiverID),
		CurrentLocationID: kernel.ID(dto.CurrentLocationID),
	}
	if dto.TransportationID != nil {
		id := kernel.ID(*dto.TransportationID)
		draft.TransportationID = &id
	}

	return shipment.RestorePackage(
		kernel.ID(dto.ID),
		draft,
		dto.CreatedAt,
		shipment.Status(dto.Status),
		kernel.ID(dto.CurrentLocationID),
		tracks,
	)
}

func trackToDomain(dto TrackDTO) (shipment.Track, error) {
	return shipment.RestoreTrack(
		kernel.ID(dto.ID),
		kernel.ID(dto.PackageID),
		shipment.Status(dto.Status),
		kernel.ID(dto.LocationID),
		dto.Timestamp,
	)
}
