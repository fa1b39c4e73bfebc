package directory

import (
	"errors"
	"strings"

	"parceltrack/internal/core/domain/model/kernel"
)

// CenterDraft holds the attributes of a center to be created.
type CenterDraft struct {
	Name string
	City string
	Type string
}

func (d CenterDraft) Validate() error {
	return errors.Join(
		required("name", d.Name),
		required("city", d.City),
		required("type", d.Type),
	)
}

// Center is a sorting or distribution facility; it groups zero or more locations.
type Center struct {
	id         kernel.ID
	name       string
	city       string
	centerType string
}

func RestoreCenter(id kernel.ID, draft CenterDraft) (Center, error) {
	if err := errors.Join(id.Validate(), draft.Validate()); err != nil {
		return Center{}, err
	}
	return Center{
		id:         id,
		name:       strings.TrimSpace(draft.Name),
		city:       strings.TrimSpace(draft.City),
		centerType: strings.TrimSpace(draft.Type),
	}, nil
}

func (c Center) ID() kernel.ID {
	return c.id
}

func (c Center) Name() string {
	return c.name
}

func (c Center) City() string {
	return c.city
}

func (c Center) Type() string {
	return c.centerType
}
