package shipment

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

var (
	// ErrPackageIsNotConstructed is returned when a Package was not created through
	// NewPackage or RestorePackage.
	ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage or RestorePackage")

	// ErrProjectionMismatch reports a package whose cached status or location differs
	// from its latest track.
	ErrProjectionMismatch = errors.New("package projection does not match its latest track")
)

// Draft holds the caller-supplied attributes of a package to be created.
type Draft struct {
	Weight            float64
	Dimensions        string
	SenderID          kernel.ID
	ReceiverID        kernel.ID
	CurrentLocationID kernel.ID
	TransportationID  *kernel.ID
}

// Validate performs the checks that can be made without the system of record:
// positive weight, non-empty dimensions and well-formed identifiers. Whether the
// referenced entities exist is decided by the remote authority.
func (d Draft) Validate() error {
	var weightErr error
	if d.Weight <= 0 {
		weightErr = errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%g is not greater than 0", d.Weight))
	}

	var dimensionsErr error
	if strings.TrimSpace(d.Dimensions) == "" {
		dimensionsErr = errs.NewValueIsRequiredError("dimensions")
	}

	var transportationErr error
	if d.TransportationID != nil {
		transportationErr = field("transportationId", d.TransportationID.Validate())
	}

	return errors.Join(
		weightErr,
		dimensionsErr,
		field("senderId", d.SenderID.Validate()),
		field("receiverId", d.ReceiverID.Validate()),
		field("currentLocationId", d.CurrentLocationID.Validate()),
		transportationErr,
	)
}

// Package is the aggregate root of a shipment. Status and current location are a
// projection of the latest entry of the ledger.
//
// Invariants:
//   - the ledger holds at least one track and the first one is CREATED;
//   - the ledger is ordered by timestamp, then by track id;
//   - Status() and CurrentLocationID() equal the latest track's status and location;
//   - no track follows a terminal one.
type Package struct {
	id                kernel.ID
	weight            float64
	dimensions        string
	createdAt         time.Time
	senderID          kernel.ID
	receiverID        kernel.ID
	transportationID  *kernel.ID
	status            Status
	currentLocationID kernel.ID
	tracks            []Track
	isConstructed     bool
}

// NewPackage creates an unsaved package with its synthetic initial CREATED track at
// the draft's current location.
func NewPackage(draft Draft, now time.Time) (*Package, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	initial, err := NewTrack(Created, draft.CurrentLocationID, now)
	if err != nil {
		return nil, err
	}

	p := &Package{
		weight:           draft.Weight,
		dimensions:       strings.TrimSpace(draft.Dimensions),
		createdAt:        now.UTC(),
		senderID:         draft.SenderID,
		receiverID:       draft.ReceiverID,
		transportationID: draft.TransportationID,
		tracks:           []Track{initial},
		isConstructed:    true,
	}
	p.project()
	return p, nil
}

// RestorePackage rebuilds a persisted package. The tracks are put in ledger order
// and the stored projection is checked against the latest one; any payload that
// breaks an invariant is rejected.
func RestorePackage(
	id kernel.ID,
	draft Draft,
	createdAt time.Time,
	status Status,
	currentLocationID kernel.ID,
	tracks []Track,
) (*Package, error) {
	if err := errors.Join(field("id", id.Validate()), draft.Validate()); err != nil {
		return nil, err
	}
	if len(tracks) == 0 {
		return nil, errs.NewValueIsRequiredError("tracks")
	}

	ledger := SortTracks(tracks)
	for i, t := range ledger {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if !t.packageID.IsZero() && t.packageID != id {
			return nil, errs.NewValueIsInvalidErrorWithCause("tracks",
				fmt.Errorf("track %s belongs to package %s", t.id, t.packageID))
		}
		if i == 0 && t.status != Created {
			return nil, errs.NewValueIsInvalidErrorWithCause("tracks",
				fmt.Errorf("first track is %s, not %s", t.status, Created))
		}
		if i > 0 && ledger[i-1].status.IsTerminal() {
			return nil, errs.NewValueIsInvalidErrorWithCause("tracks",
				fmt.Errorf("track %s follows terminal status %s", t.id, ledger[i-1].status))
		}
	}

	p := &Package{
		id:               id,
		weight:           draft.Weight,
		dimensions:       strings.TrimSpace(draft.Dimensions),
		createdAt:        createdAt.UTC(),
		senderID:         draft.SenderID,
		receiverID:       draft.ReceiverID,
		transportationID: draft.TransportationID,
		tracks:           ledger,
		isConstructed:    true,
	}
	p.project()

	if p.status != status || p.currentLocationID != currentLocationID {
		return nil, errs.NewValueIsInvalidErrorWithCause("package", fmt.Errorf(
			"%w: cached %s at %s, latest track %s at %s",
			ErrProjectionMismatch, status, currentLocationID, p.status, p.currentLocationID))
	}
	return p, nil
}

// Validate ensures the package was created through a constructor.
func (p *Package) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPackageIsNotConstructed
	}
	return nil
}

// IsEqual compares packages by identifier.
func (p *Package) IsEqual(other *Package) bool {
	return other != nil && p.id == other.id
}

func (p *Package) ID() kernel.ID {
	return p.id
}

func (p *Package) Weight() float64 {
	return p.weight
}

func (p *Package) Dimensions() string {
	return p.dimensions
}

func (p *Package) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Package) SenderID() kernel.ID {
	return p.senderID
}

func (p *Package) ReceiverID() kernel.ID {
	return p.receiverID
}

// TransportationID returns nil when the package has no transportation.
func (p *Package) TransportationID() *kernel.ID {
	return p.transportationID
}

// Status returns the projected status: the status of the latest track.
func (p *Package) Status() Status {
	return p.status
}

// CurrentLocationID returns the projected location: the location of the latest track.
func (p *Package) CurrentLocationID() kernel.ID {
	return p.currentLocationID
}

// Tracks returns a copy of the ledger in order.
func (p *Package) Tracks() []Track {
	return slices.Clone(p.tracks)
}

// Latest returns the most recent ledger entry.
func (p *Package) Latest() Track {
	return p.tracks[len(p.tracks)-1]
}

// Advance appends one track recording status at locationID and moves the projection.
//
// Business rules:
//   - a package whose latest status is terminal refuses every append (ConflictError);
//   - CREATED cannot be recorded again;
//   - a timestamp earlier than the latest track is raised to it, keeping the ledger ordered.
//
// Repeated calls with the same arguments append repeated entries: each call is an
// observed event.
func (p *Package) Advance(status Status, locationID kernel.ID, at time.Time) (Track, error) {
	if p.status.IsTerminal() {
		return Track{}, errs.NewConflictError(fmt.Sprintf("package %s", p.id), fmt.Sprintf("status %s is terminal", p.status))
	}
	if err := errors.Join(status.ValidateTarget(), field("locationId", locationID.Validate())); err != nil {
		return Track{}, err
	}

	if latest := p.Latest().timestamp; at.Before(latest) {
		at = latest
	}

	track, err := NewTrack(status, locationID, at)
	if err != nil {
		return Track{}, err
	}
	track.packageID = p.id

	p.tracks = append(p.tracks, track)
	p.project()
	return track, nil
}

func (p *Package) project() {
	latest := p.Latest()
	p.status = latest.status
	p.currentLocationID = latest.locationID
}

func field(name string, err error) error {
	if err == nil {
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause(name, err)
}
