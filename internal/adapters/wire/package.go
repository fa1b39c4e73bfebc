package wire

import (
	"time"

	"parceltrack/internal/core/domain/model/directory"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/shipment"
	"parceltrack/internal/pkg/errs"
)

type TrackDTO struct {
	ID         int64        `json:"id"`
	Status     string       `json:"status"`
	Timestamp  time.Time    `json:"timestamp"`
	PackageID  int64        `json:"packageId"`
	LocationID int64        `json:"locationId"`
	Location   *LocationDTO `json:"location,omitempty"`
}

// PackageDTO is a package document. Lists and writes return flat ids; the tracking
// lookup also fills the nested objects.
type PackageDTO struct {
	ID                int64              `json:"id"`
	Weight            float64            `json:"weight"`
	Dimensions        string             `json:"dimensions"`
	Status            string             `json:"status"`
	CreatedAt         time.Time          `json:"createdAt"`
	SenderID          int64              `json:"senderId,omitempty"`
	ReceiverID        int64              `json:"receiverId,omitempty"`
	CurrentLocationID int64              `json:"currentLocationId,omitempty"`
	TransportationID  *int64             `json:"transportationId,omitempty"`
	Sender            *CustomerDTO       `json:"sender,omitempty"`
	Receiver          *CustomerDTO       `json:"receiver,omitempty"`
	CurrentLocation   *LocationDTO       `json:"currentLocation,omitempty"`
	Transportation    *TransportationDTO `json:"transportation,omitempty"`
	Tracks            []TrackDTO         `json:"tracks"`
}

type CreatePackageRequest struct {
	Weight            float64 `json:"weight" validate:"gt=0"`
	Dimensions        string  `json:"dimensions" validate:"required"`
	SenderID          int64   `json:"senderId" validate:"gt=0"`
	ReceiverID        int64   `json:"receiverId" validate:"gt=0"`
	CurrentLocationID int64   `json:"currentLocationId" validate:"gt=0"`
	TransportationID  *int64  `json:"transportationId,omitempty" validate:"omitempty,gt=0"`
}

type AppendTrackRequest struct {
	Status     string `json:"status" validate:"required"`
	LocationID int64  `json:"locationId" validate:"gt=0"`
}

func NewCreatePackageRequest(d shipment.Draft) CreatePackageRequest {
	req := CreatePackageRequest{
		Weight:            d.Weight,
		Dimensions:        d.Dimensions,
		SenderID:          d.SenderID.Int64(),
		ReceiverID:        d.ReceiverID.Int64(),
		CurrentLocationID: d.CurrentLocationID.Int64(),
	}
	if d.TransportationID != nil {
		id := d.TransportationID.Int64()
		req.TransportationID = &id
	}
	return req
}

func (r CreatePackageRequest) ToDraft() shipment.Draft {
	d := shipment.Draft{
		Weight:            r.Weight,
		Dimensions:        r.Dimensions,
		SenderID:          kernel.ID(r.SenderID),
		ReceiverID:        kernel.ID(r.ReceiverID),
		CurrentLocationID: kernel.ID(r.CurrentLocationID),
	}
	if r.TransportationID != nil {
		id := kernel.ID(*r.TransportationID)
		d.TransportationID = &id
	}
	return d
}

func FromTrack(t shipment.Track) TrackDTO {
	return TrackDTO{
		ID:         t.ID().Int64(),
		Status:     t.Status().String(),
		Timestamp:  t.Timestamp(),
		PackageID:  t.PackageID().Int64(),
		LocationID: t.LocationID().Int64(),
	}
}

// FromPackage encodes a package with flat ids.
func FromPackage(p *shipment.Package) PackageDTO {
	dto := PackageDTO{
		ID:                p.ID().Int64(),
		Weight:            p.Weight(),
		Dimensions:        p.Dimensions(),
		Status:            p.Status().String(),
		CreatedAt:         p.CreatedAt(),
		SenderID:          p.SenderID().Int64(),
		ReceiverID:        p.ReceiverID().Int64(),
		CurrentLocationID: p.CurrentLocationID().Int64(),
		Tracks:            MapAll(p.Tracks(), FromTrack),
	}
	if id := p.TransportationID(); id != nil {
		raw := id.Int64()
		dto.TransportationID = &raw
	}
	return dto
}

// FromDetails encodes a tracking lookup with nested objects and flat ids.
func FromDetails(d shipment.Details) PackageDTO {
	dto := FromPackage(d.Package)
	sender := FromCustomer(d.Sender)
	receiver := FromCustomer(d.Receiver)
	location := FromLocation(d.CurrentLocation)
	dto.Sender = &sender
	dto.Receiver = &receiver
	dto.CurrentLocation = &location
	if d.Transportation != nil {
		tr := FromTransportation(*d.Transportation)
		dto.Transportation = &tr
	}
	return dto
}

// ToPackage decodes a package document and checks it against the ledger rules.
func (d PackageDTO) ToPackage() (*shipment.Package, error) {
	status, err := shipment.ParseStatus(d.Status)
	if err != nil {
		return nil, err
	}

	tracks := make([]shipment.Track, 0, len(d.Tracks))
	for _, t := range d.Tracks {
		track, trackErr := t.toDomain(d.ID)
		if trackErr != nil {
			return nil, trackErr
		}
		tracks = append(tracks, track)
	}

	draft := shipment.Draft{
		Weight:            d.Weight,
		Dimensions:        d.Dimensions,
		SenderID:          kernel.ID(pick(d.SenderID, d.Sender, func(c *CustomerDTO) int64 { return c.ID })),
		ReceiverID:        kernel.ID(pick(d.ReceiverID, d.Receiver, func(c *CustomerDTO) int64 { return c.ID })),
		CurrentLocationID: kernel.ID(pick(d.CurrentLocationID, d.CurrentLocation, func(l *LocationDTO) int64 { return l.ID })),
	}
	if tid := transportationID(d); tid != 0 {
		draft.TransportationID = &tid
	}

	return shipment.RestorePackage(kernel.ID(d.ID), draft, d.CreatedAt, status, draft.CurrentLocationID, tracks)
}

// ToDetails decodes a tracking lookup. Sender, receiver and current location must
// be present; transportation is optional.
func (d PackageDTO) ToDetails() (shipment.Details, error) {
	if d.Sender == nil || d.Receiver == nil || d.CurrentLocation == nil {
		return shipment.Details{}, errs.NewValueIsRequiredError("sender, receiver and currentLocation")
	}

	p, err := d.ToPackage()
	if err != nil {
		return shipment.Details{}, err
	}
	sender, err := d.Sender.ToDomain()
	if err != nil {
		return shipment.Details{}, err
	}
	receiver, err := d.Receiver.ToDomain()
	if err != nil {
		return shipment.Details{}, err
	}
	location, err := d.CurrentLocation.ToDomain()
	if err != nil {
		return shipment.Details{}, err
	}

	details := shipment.Details{Package: p, Sender: sender, Receiver: receiver, CurrentLocation: location}
	if d.Transportation != nil {
		var tr directory.Transportation
		if tr, err = d.Transportation.ToDomain(); err != nil {
			return shipment.Details{}, err
		}
		details.Transportation = &tr
	}
	return details, nil
}

func (t TrackDTO) toDomain(packageID int64) (shipment.Track, error) {
	status, err := shipment.ParseStatus(t.Status)
	if err != nil {
		return shipment.Track{}, err
	}
	owner := t.PackageID
	if owner == 0 {
		owner = packageID
	}
	locationID := t.LocationID
	if locationID == 0 && t.Location != nil {
		locationID = t.Location.ID
	}
	return shipment.RestoreTrack(kernel.ID(t.ID), kernel.ID(owner), status, kernel.ID(locationID), t.Timestamp)
}

func pick[T any](flat int64, nested *T, id func(*T) int64) int64 {
	if flat != 0 || nested == nil {
		return flat
	}
	return id(nested)
}

func transportationID(d PackageDTO) kernel.ID {
	if d.TransportationID != nil {
		return kernel.ID(*d.TransportationID)
	}
	if d.Transportation != nil {
		return kernel.ID(d.Transportation.ID)
	}
	return 0
}
