package shipment

import (
	"fmt"
	"strings"

	"parceltrack/internal/pkg/errs"
)

// Status is the delivery state recorded by a Track.
//
// Typical progression (not enforced):
//
//	CREATED ──> IN_TRANSIT ──> AT_CENTER ──> OUT_FOR_DELIVERY ──> DELIVERED
//	   │             │              │                 │
//	   └─────────────┴──────────────┴─────────────────┴──> CANCELLED
//
// DELIVERED and CANCELLED are terminal.
type Status int

const (
	// Unknown catches uninitialized values; it is never valid.
	Unknown Status = iota
	Created
	InTransit
	AtCenter
	OutForDelivery
	Delivered
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		Created:        "CREATED",
		InTransit:      "IN_TRANSIT",
		AtCenter:       "AT_CENTER",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Cancelled:      "CANCELLED",
	}
}

// Statuses lists the valid statuses in their typical order.
func Statuses() []Status {
	return []Status{Created, InTransit, AtCenter, OutForDelivery, Delivered, Cancelled}
}

// ParseStatus converts the wire name of a status. Matching ignores case and
// surrounding spaces.
func ParseStatus(s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for _, status := range Statuses() {
		if status.String() == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known status", s))
}

// Validate checks that s is one of the declared statuses.
func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", int(s)))
	}
	return nil
}

// String returns the wire name, or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no track may follow a track with this status.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// ValidateAdvance checks that a package whose latest status is s can accept another
// track. It fails with a ConflictError for terminal statuses, whatever the target.
func (s Status) ValidateAdvance() error {
	if s.IsTerminal() {
		return errs.NewConflictError("package", fmt.Sprintf("status %s is terminal", s))
	}
	return nil
}

// ValidateTarget checks that s can be recorded by a new track. CREATED belongs to the
// synthetic first track only.
func (s Status) ValidateTarget() error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s == Created {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%s is only recorded at creation", s))
	}
	return nil
}

func (s Status) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
