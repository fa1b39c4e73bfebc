package directory

import (
	"errors"
	"strings"

	"parceltrack/internal/core/domain/model/kernel"
)

// LocationDraft holds the attributes of a location to be created.
type LocationDraft struct {
	Name     string
	Address  string
	City     string
	CenterID kernel.ID
}

func (d LocationDraft) Validate() error {
	return errors.Join(
		required("name", d.Name),
		required("address", d.Address),
		required("city", d.City),
		d.CenterID.Validate(),
	)
}

// Location is a place a package can be observed at. It belongs to exactly one Center.
type Location struct {
	id       kernel.ID
	name     string
	address  string
	city     string
	centerID kernel.ID
}

// RestoreLocation rebuilds a persisted location.
func RestoreLocation(id kernel.ID, draft LocationDraft) (Location, error) {
	if err := errors.Join(id.Validate(), draft.Validate()); err != nil {
		return Location{}, err
	}
	return Location{
		id:       id,
		name:     strings.TrimSpace(draft.Name),
		address:  strings.TrimSpace(draft.Address),
		city:     strings.TrimSpace(draft.City),
		centerID: draft.CenterID,
	}, nil
}

func (l Location) ID() kernel.ID {
	return l.id
}

func (l Location) Name() string {
	return l.name
}

func (l Location) Address() string {
	return l.address
}

func (l Location) City() string {
	return l.city
}

func (l Location) CenterID() kernel.ID {
	return l.centerID
}
