package shipment

import (
	"parceltrack/internal/core/domain/model/directory"
)

// Details is the read model returned by a tracking lookup: the package with the
// entities it references resolved. Transportation is nil when the package has none.
type Details struct {
	Package         *Package
	Sender          directory.Customer
	Receiver        directory.Customer
	CurrentLocation directory.Location
	Transportation  *directory.Transportation
}

// History returns the package ledger in order.
func (d Details) History() []Track {
	return d.Package.Tracks()
}
