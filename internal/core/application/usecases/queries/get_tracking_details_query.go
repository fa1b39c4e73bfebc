package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/directory"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/shipment"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrGetTrackingDetailsQueryIsNotConstructed = errors.New(
		"GetTrackingDetailsQuery must be created via NewGetTrackingDetailsQuery constructor",
	)
)

// GetTrackingDetailsQuery looks up one package with its sender, receiver, current
// location and transportation resolved. It backs the public tracking endpoint.
type GetTrackingDetailsQuery struct {
	packageID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetTrackingDetailsQuery(packageID kernel.ID) (GetTrackingDetailsQuery, error) {
	if err := packageID.Validate(); err != nil {
		return GetTrackingDetailsQuery{}, errs.NewValueIsInvalidErrorWithCause("packageId", err)
	}
	return GetTrackingDetailsQuery{
		packageID: packageID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetTrackingDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackingDetailsQueryIsNotConstructed)
}

func (q GetTrackingDetailsQuery) PackageID() kernel.ID {
	return q.packageID
}

type GetTrackingDetailsQueryHandler struct {
	db *gorm.DB
}

// NewGetTrackingDetailsQueryHandler creates a handler reading through db.
func NewGetTrackingDetailsQueryHandler(db *gorm.DB) GetTrackingDetailsQueryHandler {
	return GetTrackingDetailsQueryHandler{db: db}
}

// Handle returns NotFound for an unknown package id.
func (h GetTrackingDetailsQueryHandler) Handle(ctx context.Context, query GetTrackingDetailsQuery) (shipment.Details, error) {
	if err := query.Validate(); err != nil {
		return shipment.Details{}, err
	}

	var (
		pkg                                      packageRow
		senderName, senderEmail, senderPhone     string
		receiverName, receiverEmail, receiverTel string
		locationName, locationAddress            string
		locationCity                             string
		locationCenterID                         int64
		transportType                            sql.NullString
		departure, arrival                       sql.NullTime
		fromLocationID, toLocationID             sql.NullInt64
	)

	targets := append(pkg.targets(),
		&senderName, &senderEmail, &senderPhone,
		&receiverName, &receiverEmail, &receiverTel,
		&locationName, &locationAddress, &locationCity, &locationCenterID,
		&transportType, &departure, &arrival, &fromLocationID, &toLocationID,
	)

	err := h.db.WithContext(ctx).Raw(`
		SELECT`+packageColumns+`,
			s.name, s.email, s.phone,
			r.name, r.email, r.phone,
			l.name, l.address, l.city, l.center_id,
			t.type, t.departure_time, t.arrival_time, t.from_location_id, t.to_location_id
		FROM packages p
		JOIN customers s ON s.id = p.sender_id
		JOIN customers r ON r.id = p.receiver_id
		JOIN locations l ON l.id = p.current_location_id
		LEFT JOIN transportations t ON t.id = p.transportation_id
		WHERE p.id = ?
	`, query.PackageID().Int64()).Row().Scan(targets...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return shipment.Details{}, errs.NewObjectNotFoundError("package", query.PackageID())
		}
		return shipment.Details{}, err
	}

	ledgers, err := loadTracks(ctx, h.db, []int64{pkg.id})
	if err != nil {
		return shipment.Details{}, err
	}

	p, err := pkg.restore(ledgers[pkg.id])
	if err != nil {
		return shipment.Details{}, err
	}

	sender, senderErr := directory.RestoreCustomer(kernel.ID(pkg.senderID), senderName, senderEmail, senderPhone)
	receiver, receiverErr := directory.RestoreCustomer(kernel.ID(pkg.receiverID), receiverName, receiverEmail, receiverTel)
	location, locationErr := directory.RestoreLocation(kernel.ID(pkg.currentLocationID), directory.LocationDraft{
		Name:     locationName,
		Address:  locationAddress,
		City:     locationCity,
		CenterID: kernel.ID(locationCenterID),
	})
	if err = errors.Join(senderErr, receiverErr, locationErr); err != nil {
		return shipment.Details{}, err
	}

	details := shipment.Details{
		Package:         p,
		Sender:          sender,
		Receiver:        receiver,
		CurrentLocation: location,
	}

	if pkg.transportationID.Valid {
		transportation, transportErr := directory.RestoreTransportation(
			kernel.ID(pkg.transportationID.Int64),
			transportType.String,
			nullTime(departure),
			nullTime(arrival),
			kernel.ID(fromLocationID.Int64),
			kernel.ID(toLocationID.Int64),
		)
		if transportErr != nil {
			return shipment.Details{}, transportErr
		}
		details.Transportation = &transportation
	}

	return details, nil
}

func nullTime(t sql.NullTime) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}
