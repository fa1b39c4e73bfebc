package queries

import (
	"context"
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/directory"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrGetCustomersQueryIsNotConstructed = errors.New(
		"GetCustomersQuery must be created via NewGetCustomersQuery constructor",
	)
	ErrGetLocationsQueryIsNotConstructed = errors.New(
		"GetLocationsQuery must be created via NewGetLocationsQuery constructor",
	)
	ErrGetCentersQueryIsNotConstructed = errors.New(
		"GetCentersQuery must be created via NewGetCentersQuery constructor",
	)
	ErrGetTransportationsQueryIsNotConstructed = errors.New(
		"GetTransportationsQuery must be created via NewGetTransportationsQuery constructor",
	)
)

type GetCustomersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetCustomersQuery() GetCustomersQuery {
	return GetCustomersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomersQueryIsNotConstructed)
}

type GetLocationsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetLocationsQuery() GetLocationsQuery {
	return GetLocationsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetLocationsQuery) Validate() error {
	return q.guard.Validate(ErrGetLocationsQueryIsNotConstructed)
}

type GetCentersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetCentersQuery() GetCentersQuery {
	return GetCentersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetCentersQuery) Validate() error {
	return q.guard.Validate(ErrGetCentersQueryIsNotConstructed)
}

type GetTransportationsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetTransportationsQuery() GetTransportationsQuery {
	return GetTransportationsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetTransportationsQuery) Validate() error {
	return q.guard.Validate(ErrGetTransportationsQueryIsNotConstructed)
}

// GetDirectoryQueryHandler serves the directory listings. Every listing is ordered
// by id.
type GetDirectoryQueryHandler struct {
	db *gorm.DB
}

func NewGetDirectoryQueryHandler(db *gorm.DB) GetDirectoryQueryHandler {
	return GetDirectoryQueryHandler{db: db}
}

func (h GetDirectoryQueryHandler) Customers(ctx context.Context, query GetCustomersQuery) ([]directory.Customer, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return scanAll(ctx, h.db, `
		SELECT id, name, email, phone
		FROM customers
		ORDER BY id
	`, func(scan func(...any) error) (directory.Customer, error) {
		var id int64
		var name, email, phone string
		if err := scan(&id, &name, &email, &phone); err != nil {
			return directory.Customer{}, err
		}
		return directory.RestoreCustomer(kernel.ID(id), name, email, phone)
	})
}

func (h GetDirectoryQueryHandler) Locations(ctx context.Context, query GetLocationsQuery) ([]directory.Location, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return scanAll(ctx, h.db, `
		SELECT id, name, address, city, center_id
		FROM locations
		ORDER BY id
	`, func(scan func(...any) error) (directory.Location, error) {
		var id, centerID int64
		var draft directory.LocationDraft
		if err := scan(&id, &draft.Name, &draft.Address, &draft.City, &centerID); err != nil {
			return directory.Location{}, err
		}
		draft.CenterID = kernel.ID(centerID)
		return directory.RestoreLocation(kernel.ID(id), draft)
	})
}

func (h GetDirectoryQueryHandler) Centers(ctx context.Context, query GetCentersQuery) ([]directory.Center, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return scanAll(ctx, h.db, `
		SELECT id, name, city, type
		FROM centers
		ORDER BY id
	`, func(scan func(...any) error) (directory.Center, error) {
		var id int64
		var draft directory.CenterDraft
		if err := scan(&id, &draft.Name, &draft.City, &draft.Type); err != nil {
			return directory.Center{}, err
		}
		return directory.RestoreCenter(kernel.ID(id), draft)
	})
}

func (h GetDirectoryQueryHandler) Transportations(
	ctx context.Context,
	query GetTransportationsQuery,
) ([]directory.Transportation, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return scanAll(ctx, h.db, `
		SELECT id, type, departure_time, arrival_time, from_location_id, to_location_id
		FROM transportations
		ORDER BY id
	`, func(scan func(...any) error) (directory.Transportation, error) {
		var id, fromID, toID int64
		var kind string
		var departure, arrival time.Time
		if err := scan(&id, &kind, &departure, &arrival, &fromID, &toID); err != nil {
			return directory.Transportation{}, err
		}
		return directory.RestoreTransportation(kernel.ID(id), kind, departure, arrival, kernel.ID(fromID), kernel.ID(toID))
	})
}

// scanAll runs a raw listing and converts every row with conv. The result is
// never nil.
func scanAll[T any](
	ctx context.Context,
	db *gorm.DB,
	statement string,
	conv func(scan func(...any) error) (T, error),
) ([]T, error) {
	rows, err := db.WithContext(ctx).Raw(statement).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]T, 0)
	for rows.Next() {
		item, convErr := conv(rows.Scan)
		if convErr != nil {
			return nil, convErr
		}
		result = append(result, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
