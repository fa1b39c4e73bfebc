package directory

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

// Transportation is a scheduled leg between two locations that a package may ride on.
// Departure never comes after arrival.
type Transportation struct {
	id             kernel.ID
	kind           string
	departureTime  time.Time
	arrivalTime    time.Time
	fromLocationID kernel.ID
	toLocationID   kernel.ID
}

func RestoreTransportation(
	id kernel.ID,
	kind string,
	departure, arrival time.Time,
	fromLocationID, toLocationID kernel.ID,
) (Transportation, error) {
	var scheduleErr error
	if departure.After(arrival) {
		scheduleErr = errs.NewValueIsInvalidErrorWithCause("arrivalTime",
			fmt.Errorf("arrival %s is before departure %s", arrival.Format(time.RFC3339), departure.Format(time.RFC3339)))
	}
	if err := errors.Join(
		id.Validate(),
		required("type", kind),
		fromLocationID.Validate(),
		toLocationID.Validate(),
		scheduleErr,
	); err != nil {
		return Transportation{}, err
	}
	return Transportation{
		id:             id,
		kind:           strings.TrimSpace(kind),
		departureTime:  departure.UTC(),
		arrivalTime:    arrival.UTC(),
		fromLocationID: fromLocationID,
		toLocationID:   toLocationID,
	}, nil
}

func (t Transportation) ID() kernel.ID {
	return t.id
}

func (t Transportation) Type() string {
	return t.kind
}

func (t Transportation) DepartureTime() time.Time {
	return t.departureTime
}

func (t Transportation) ArrivalTime() time.Time {
	return t.arrivalTime
}

func (t Transportation) FromLocationID() kernel.ID {
	return t.fromLocationID
}

func (t Transportation) ToLocationID() kernel.ID {
	return t.toLocationID
}
