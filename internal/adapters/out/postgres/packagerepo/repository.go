package packagerepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/shipment"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
)

// GormPackageRepository implements PackageRepository using GORM.
type GormPackageRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

var _ ports.PackageRepository = (*GormPackageRepository)(nil)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormPackageRepository creates a repository on db. Every write is reported to
// tracker so the unit of work knows which aggregates changed.
func NewGormPackageRepository(db *gorm.DB, tracker aggregateTracker) *GormPackageRepository {
	return &GormPackageRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the package and its initial track.
func (r *GormPackageRepository) Add(ctx context.Context, aggregate *shipment.Package) (kernel.ID, error) {
	if err := aggregate.Validate(); err != nil {
		return 0, err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	for i := range dto.Tracks {
		dto.Tracks[i].ID = 0
		dto.Tracks[i].PackageID = 0
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return 0, err
	}
	for i := range dto.Tracks {
		dto.Tracks[i].PackageID = dto.ID
	}
	if err := r.db.WithContext(ctx).Omit("Location").Create(&dto.Tracks).Error; err != nil {
		return 0, err
	}

	id := kernel.ID(dto.ID)
	r.tracker.TrackAggregate(id, aggregate)
	return id, nil
}

// AppendTrack inserts track and moves the projection columns to it.
func (r *GormPackageRepository) AppendTrack(ctx context.Context, aggregate *shipment.Package, track shipment.Track) error {
	if err := errors.Join(aggregate.Validate(), track.Validate()); err != nil {
		return err
	}
	if aggregate.Latest().Status() != track.Status() || aggregate.CurrentLocationID() != track.LocationID() {
		return errs.NewValueIsInvalidErrorWithCause("track", shipment.ErrProjectionMismatch)
	}

	row := trackFromDomain(aggregate.ID(), track)
	row.ID = 0
	if err := r.db.WithContext(ctx).Omit("Location").Create(&row).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&PackageDTO{}).
		Where("id = ?", aggregate.ID().Int64()).
		Updates(map[string]any{
			"status":              int(aggregate.Status()),
			"current_location_id": aggregate.CurrentLocationID().Int64(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("package", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormPackageRepository) Get(ctx context.Context, id kernel.ID) (*shipment.Package, error) {
	return r.get(ctx, r.db.WithContext(ctx), id)
}

// GetForUpdate takes a row lock on the package; it only serializes inside a
// transaction.
func (r *GormPackageRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*shipment.Package, error) {
	return r.get(ctx, r.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

func (r *GormPackageRepository) get(ctx context.Context, db *gorm.DB, id kernel.ID) (*shipment.Package, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PackageDTO
	if err := db.First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("package", id.String())
		}
		return nil, err
	}
	if err := r.loadTracks(ctx, []*PackageDTO{&dto}); err != nil {
		return nil, err
	}
	return toDomain(dto)
}

func (r *GormPackageRepository) List(ctx context.Context) ([]*shipment.Package, error) {
	dtos, err := r.all(ctx)
	if err != nil {
		return nil, err
	}

	packages := make([]*shipment.Package, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(*dto)
		if err != nil {
			return nil, err
		}
		packages = append(packages, p)
	}
	return packages, nil
}

// ProjectionRecords returns raw rows so the auditor can see inconsistent data that
// toDomain would refuse to load.
func (r *GormPackageRepository) ProjectionRecords(ctx context.Context) ([]services.ProjectionRecord, error) {
	dtos, err := r.all(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]services.ProjectionRecord, 0, len(dtos))
	for _, dto := range dtos {
		record := services.ProjectionRecord{
			PackageID:         kernel.ID(dto.ID),
			Status:            shipment.Status(dto.Status),
			CurrentLocationID: kernel.ID(dto.CurrentLocationID),
			Tracks:            make([]shipment.Track, 0, len(dto.Tracks)),
		}
		for _, t := range dto.Tracks {
			track, trackErr := trackToDomain(t)
			if trackErr != nil {
				return nil, trackErr
			}
			record.Tracks = append(record.Tracks, track)
		}
		records = append(records, record)
	}
	return records, nil
}

func (r *GormPackageRepository) all(ctx context.Context) ([]*PackageDTO, error) {
	var dtos []*PackageDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}
	if err := r.loadTracks(ctx, dtos); err != nil {
		return nil, err
	}
	return dtos, nil
}

// loadTracks fills the ledgers of dtos with a single query.
func (r *GormPackageRepository) loadTracks(ctx context.Context, dtos []*PackageDTO) error {
	if len(dtos) == 0 {
		return nil
	}

	byID := make(map[int64]*PackageDTO, len(dtos))
	ids := make([]int64, 0, len(dtos))
	for _, dto := range dtos {
		byID[dto.ID] = dto
		ids = append(ids, dto.ID)
	}

	var tracks []TrackDTO
	if err := r.db.WithContext(ctx).
		Where("package_id IN ?", ids).
		Order("package_id, timestamp, id").
		Find(&tracks).Error; err != nil {
		return err
	}
	for _, t := range tracks {
		owner := byID[t.PackageID]
		owner.Tracks = append(owner.Tracks, t)
	}
	return nil
}
