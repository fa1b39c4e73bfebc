// Package directoryrepo persists the directory entries the packages refer to:
// customers, centers, locations and transportations.
package directoryrepo

import (
	"time"

	"parceltrack/internal/core/domain/model/directory"
	"parceltrack/internal/core/domain/model/kernel"
)

type CustomerDTO struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Name  string `gorm:"not null"`
	Email string `gorm:"not null;uniqueIndex"`
	Phone string `gorm:"not null"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

type CenterDTO struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"not null"`
	City string `gorm:"not null"`
	Type string `gorm:"not null"`
}

func (CenterDTO) TableName() string {
	return "centers"
}

// LocationDTO belongs to a center; the center cannot be removed while locations
// point at it.
type LocationDTO struct {
	ID       int64      `gorm:"primaryKey;autoIncrement"`
	Name     string     `gorm:"not null"`
	Address  string     `gorm:"not null"`
	City     string     `gorm:"not null"`
	CenterID int64      `gorm:"not null;index"`
	Center   *CenterDTO `gorm:"foreignKey:CenterID;constraint:OnDelete:RESTRICT"`
}

func (LocationDTO) TableName() string {
	return "locations"
}

type TransportationDTO struct {
	ID             int64        `gorm:"primaryKey;autoIncrement"`
	Type           string       `gorm:"not null"`
	DepartureTime  time.Time    `gorm:"not null"`
	ArrivalTime    time.Time    `gorm:"not null"`
	FromLocationID int64        `gorm:"not null;index"`
	ToLocationID   int64        `gorm:"not null;index"`
	FromLocation   *LocationDTO `gorm:"foreignKey:FromLocationID;constraint:OnDelete:RESTRICT"`
	ToLocation     *LocationDTO `gorm:"foreignKey:ToLocationID;constraint:OnDelete:RESTRICT"`
}

func (TransportationDTO) TableName() string {
	return "transportations"
}

func customerToDomain(dto CustomerDTO) (directory.Customer, error) {
	return directory.RestoreCustomer(kernel.ID(dto.ID), dto.Name, dto.Email, dto.Phone)
}

func centerFromDraft(draft directory.CenterDraft) CenterDTO {
	return CenterDTO{Name: draft.Name, City: draft.City, Type: draft.Type}
}

func centerToDomain(dto CenterDTO) (directory.Center, error) {
	return directory.RestoreCenter(kernel.ID(dto.ID), directory.CenterDraft{
		Name: dto.Name,
		City: dto.City,
		Type: dto.Type,
	})
}

func locationFromDraft(draft directory.LocationDraft) LocationDTO {
	return LocationDTO{
		Name:     draft.Name,
		Address:  draft.Address,
		City:     draft.City,
		CenterID: draft.CenterID.Int64(),
	}
}

func locationToDomain(dto LocationDTO) (directory.Location, error) {
	return directory.RestoreLocation(kernel.ID(dto.ID), directory.LocationDraft{
		Name:     dto.Name,
		Address:  dto.Address,
		City:     dto.City,
		CenterID: kernel.ID(dto.CenterID),
	})
}

func transportationToDomain(dto TransportationDTO) (directory.Transportation, error) {
	return directory.RestoreTransportation(
		kernel.ID(dto.ID),
		dto.Type,
		dto.DepartureTime,
		dto.ArrivalTime,
		kernel.ID(dto.FromLocationID),
		kernel.ID(dto.ToLocationID),
	)
}

func mapAll[D any, T any](dtos []D, conv func(D) (T, error)) ([]T, error) {
	out := make([]T, 0, len(dtos))
	for _, dto := range dtos {
		v, err := conv(dto)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
