package wire

import (
	"time"

	"parceltrack/internal/core/domain/model/directory"
	"parceltrack/internal/core/domain/model/kernel"
)

type CustomerDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type LocationDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	CenterID int64  `json:"centerId"`
}

type CenterDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
	Type string `json:"type"`
}

type TransportationDTO struct {
	ID             int64     `json:"id"`
	Type           string    `json:"type"`
	DepartureTime  time.Time `json:"departureTime"`
	ArrivalTime    time.Time `json:"arrivalTime"`
	FromLocationID int64     `json:"fromLocationId"`
	ToLocationID   int64     `json:"toLocationId"`
}

type CreateLocationRequest struct {
	Name     string `json:"name" validate:"required"`
	Address  string `json:"address" validate:"required"`
	City     string `json:"city" validate:"required"`
	CenterID int64  `json:"centerId" validate:"gt=0"`
}

type CreateCenterRequest struct {
	Name string `json:"name" validate:"required"`
	City string `json:"city" validate:"required"`
	Type string `json:"type" validate:"required"`
}

func FromCustomer(c directory.Customer) CustomerDTO {
	return CustomerDTO{ID: c.ID().Int64(), Name: c.Name(), Email: c.Email(), Phone: c.Phone()}
}

func (d CustomerDTO) ToDomain() (directory.Customer, error) {
	return directory.RestoreCustomer(kernel.ID(d.ID), d.Name, d.Email, d.Phone)
}

func FromLocation(l directory.Location) LocationDTO {
	return LocationDTO{
		ID:       l.ID().Int64(),
		Name:     l.Name(),
		Address:  l.Address(),
		City:     l.City(),
		CenterID: l.CenterID().Int64(),
	}
}

func (d LocationDTO) ToDomain() (directory.Location, error) {
	return directory.RestoreLocation(kernel.ID(d.ID), directory.LocationDraft{
		Name:     d.Name,
		Address:  d.Address,
		City:     d.City,
		CenterID: kernel.ID(d.CenterID),
	})
}

func FromCenter(c directory.Center) CenterDTO {
	return CenterDTO{ID: c.ID().Int64(), Name: c.Name(), City: c.City(), Type: c.Type()}
}

func (d CenterDTO) ToDomain() (directory.Center, error) {
	return directory.RestoreCenter(kernel.ID(d.ID), directory.CenterDraft{Name: d.Name, City: d.City, Type: d.Type})
}

func FromTransportation(t directory.Transportation) TransportationDTO {
	return TransportationDTO{
		ID:             t.ID().Int64(),
		Type:           t.Type(),
		DepartureTime:  t.DepartureTime(),
		ArrivalTime:    t.ArrivalTime(),
		FromLocationID: t.FromLocationID().Int64(),
		ToLocationID:   t.ToLocationID().Int64(),
	}
}

func (d TransportationDTO) ToDomain() (directory.Transportation, error) {
	return directory.RestoreTransportation(
		kernel.ID(d.ID),
		d.Type,
		d.DepartureTime,
		d.ArrivalTime,
		kernel.ID(d.FromLocationID),
		kernel.ID(d.ToLocationID),
	)
}

func (r CreateLocationRequest) ToDraft() directory.LocationDraft {
	return directory.LocationDraft{Name: r.Name, Address: r.Address, City: r.City, CenterID: kernel.ID(r.CenterID)}
}

func NewCreateLocationRequest(d directory.LocationDraft) CreateLocationRequest {
	return CreateLocationRequest{Name: d.Name, Address: d.Address, City: d.City, CenterID: d.CenterID.Int64()}
}

func (r CreateCenterRequest) ToDraft() directory.CenterDraft {
	return directory.CenterDraft{Name: r.Name, City: r.City, Type: r.Type}
}

func NewCreateCenterRequest(d directory.CenterDraft) CreateCenterRequest {
	return CreateCenterRequest{Name: d.Name, City: d.City, Type: d.Type}
}

// ConvertAll maps a slice of documents with conv, stopping at the first error.
func ConvertAll[D any, T any](docs []D, conv func(D) (T, error)) ([]T, error) {
	out := make([]T, 0, len(docs))
	for _, d := range docs {
		v, err := conv(d)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// MapAll maps a slice of domain values to documents.
func MapAll[T any, D any](values []T, conv func(T) D) []D {
	out := make([]D, 0, len(values))
	for _, v := range values {
		out = append(out, conv(v))
	}
	return out
}
