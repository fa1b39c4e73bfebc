package shipment

import (
	"cmp"
	"errors"
	"slices"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrTrackIsNotConstructed = errors.New("Track must be created via NewTrack or RestoreTrack")

// Track is one ledger entry: the package was observed in status at location at timestamp.
type Track struct {
	id         kernel.ID
	packageID  kernel.ID
	status     Status
	locationID kernel.ID
	timestamp  time.Time
	guard      guard.ConstructorGuard
}

// NewTrack creates an entry that has not been persisted yet; its id and package id
// are assigned on save.
func NewTrack(status Status, locationID kernel.ID, at time.Time) (Track, error) {
	if err := errors.Join(status.Validate(), locationID.Validate()); err != nil {
		return Track{}, err
	}
	return Track{
		status:     status,
		locationID: locationID,
		timestamp:  at.UTC(),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreTrack rebuilds a persisted entry.
func RestoreTrack(id, packageID kernel.ID, status Status, locationID kernel.ID, at time.Time) (Track, error) {
	if err := errors.Join(
		id.Validate(),
		status.Validate(),
		locationID.Validate(),
	); err != nil {
		return Track{}, err
	}
	return Track{
		id:         id,
		packageID:  packageID,
		status:     status,
		locationID: locationID,
		timestamp:  at.UTC(),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (t Track) Validate() error {
	return t.guard.Validate(ErrTrackIsNotConstructed)
}

func (t Track) ID() kernel.ID {
	return t.id
}

func (t Track) PackageID() kernel.ID {
	return t.packageID
}

func (t Track) Status() Status {
	return t.status
}

func (t Track) LocationID() kernel.ID {
	return t.locationID
}

func (t Track) Timestamp() time.Time {
	return t.timestamp
}

// CompareTracks orders ledger entries by timestamp, then by id. Unsaved entries
// (zero id) sort after saved ones with the same timestamp.
func CompareTracks(a, b Track) int {
	if c := a.timestamp.Compare(b.timestamp); c != 0 {
		return c
	}
	switch {
	case a.id == b.id:
		return 0
	case a.id.IsZero():
		return 1
	case b.id.IsZero():
		return -1
	}
	return cmp.Compare(a.id, b.id)
}

// SortTracks returns a copy of tracks in ledger order. Equal keys keep their
// relative order.
func SortTracks(tracks []Track) []Track {
	sorted := slices.Clone(tracks)
	slices.SortStableFunc(sorted, CompareTracks)
	return sorted
}
