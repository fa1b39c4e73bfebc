package directoryrepo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"parceltrack/internal/core/domain/model/directory"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
)

// GormCustomerRepository reads customers.
type GormCustomerRepository struct {
	db *gorm.DB
}

var _ ports.CustomerRepository = (*GormCustomerRepository)(nil)

// NewGormCustomerRepository creates a repository on db.
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

func (r *GormCustomerRepository) Get(ctx context.Context, id kernel.ID) (directory.Customer, error) {
	var dto CustomerDTO
	if err := first(ctx, r.db, &dto, id, "customer"); err != nil {
		return directory.Customer{}, err
	}
	return customerToDomain(dto)
}

func (r *GormCustomerRepository) List(ctx context.Context) ([]directory.Customer, error) {
	var dtos []CustomerDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}
	return mapAll(dtos, customerToDomain)
}

// GormCenterRepository manages centers.
type GormCenterRepository struct {
	db *gorm.DB
}

var _ ports.CenterRepository = (*GormCenterRepository)(nil)

func NewGormCenterRepository(db *gorm.DB) *GormCenterRepository {
	return &GormCenterRepository{db: db}
}

func (r *GormCenterRepository) Add(ctx context.Context, draft directory.CenterDraft) (directory.Center, error) {
	if err := draft.Validate(); err != nil {
		return directory.Center{}, err
	}
	dto := centerFromDraft(draft)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return directory.Center{}, err
	}
	return centerToDomain(dto)
}

func (r *GormCenterRepository) Get(ctx context.Context, id kernel.ID) (directory.Center, error) {
	var dto CenterDTO
	if err := first(ctx, r.db, &dto, id, "center"); err != nil {
		return directory.Center{}, err
	}
	return centerToDomain(dto)
}

func (r *GormCenterRepository) List(ctx context.Context) ([]directory.Center, error) {
	var dtos []CenterDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}
	return mapAll(dtos, centerToDomain)
}

// GormLocationRepository manages locations.
type GormLocationRepository struct {
	db *gorm.DB
}

var _ ports.LocationRepository = (*GormLocationRepository)(nil)

// NewGormLocationRepository creates a repository on db. Deleting a location that is
// still referenced fails with a ConflictError.
func NewGormLocationRepository(db *gorm.DB) *GormLocationRepository {
	return &GormLocationRepository{db: db}
}

func (r *GormLocationRepository) Add(ctx context.Context, draft directory.LocationDraft) (directory.Location, error) {
	if err := draft.Validate(); err != nil {
		return directory.Location{}, err
	}
	dto := locationFromDraft(draft)
	if err := r.db.WithContext(ctx).Omit("Center").Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return directory.Location{}, errs.NewValidationErrorWithCause(
				fmt.Sprintf("center %s does not exist", draft.CenterID), err)
		}
		return directory.Location{}, err
	}
	return locationToDomain(dto)
}

func (r *GormLocationRepository) Get(ctx context.Context, id kernel.ID) (directory.Location, error) {
	var dto LocationDTO
	if err := first(ctx, r.db, &dto, id, "location"); err != nil {
		return directory.Location{}, err
	}
	return locationToDomain(dto)
}

func (r *GormLocationRepository) List(ctx context.Context) ([]directory.Location, error) {
	var dtos []LocationDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}
	return mapAll(dtos, locationToDomain)
}

const referencedSQL = `
SELECT EXISTS (SELECT 1 FROM packages WHERE current_location_id = @id)
    OR EXISTS (SELECT 1 FROM tracks WHERE location_id = @id)
    OR EXISTS (SELECT 1 FROM transportations WHERE from_location_id = @id OR to_location_id = @id)`

func (r *GormLocationRepository) IsReferenced(ctx context.Context, id kernel.ID) (bool, error) {
	var referenced bool
	err := r.db.WithContext(ctx).Raw(referencedSQL, map[string]any{"id": id.Int64()}).Scan(&referenced).Error
	return referenced, err
}

func (r *GormLocationRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&LocationDTO{}, id.Int64())
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return errs.NewConflictErrorWithCause("location "+id.String(), "location is referenced", result.Error)
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("location", id.String())
	}
	return nil
}

// GormTransportationRepository reads scheduled transportations.
type GormTransportationRepository struct {
	db *gorm.DB
}

var _ ports.TransportationRepository = (*GormTransportationRepository)(nil)

func NewGormTransportationRepository(db *gorm.DB) *GormTransportationRepository {
	return &GormTransportationRepository{db: db}
}

func (r *GormTransportationRepository) Get(ctx context.Context, id kernel.ID) (directory.Transportation, error) {
	var dto TransportationDTO
	if err := first(ctx, r.db, &dto, id, "transportation"); err != nil {
		return directory.Transportation{}, err
	}
	return transportationToDomain(dto)
}

func first(ctx context.Context, db *gorm.DB, dest any, id kernel.ID, name string) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := db.WithContext(ctx).First(dest, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError(name, id.String())
		}
		return err
	}
	return nil
}
