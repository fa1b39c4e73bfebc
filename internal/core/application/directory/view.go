package directory

import (
	"context"

	"parceltrack/internal/core/domain/model/directory"
	"parceltrack/internal/core/domain/model/kernel"
)

// View is a snapshot of the three registries fetched for one screen. It is never
// refreshed in place; build a new one to see remote changes.
type View struct {
	Customers []directory.Customer
	Locations []directory.Location
	Centers   []directory.Center
}

// Snapshot fetches all three registries.
func (s *Service) Snapshot(ctx context.Context) (View, error) {
	customers, err := s.Customers(ctx)
	if err != nil {
		return View{}, err
	}
	locations, err := s.Locations(ctx)
	if err != nil {
		return View{}, err
	}
	centers, err := s.Centers(ctx)
	if err != nil {
		return View{}, err
	}
	return View{Customers: customers, Locations: locations, Centers: centers}, nil
}

func (v View) Customer(id kernel.ID) (directory.Customer, bool) {
	for _, c := range v.Customers {
		if c.ID() == id {
			return c, true
		}
	}
	return directory.Customer{}, false
}

func (v View) Location(id kernel.ID) (directory.Location, bool) {
	for _, l := range v.Locations {
		if l.ID() == id {
			return l, true
		}
	}
	return directory.Location{}, false
}

// LocationsOf lists the locations that belong to a center.
func (v View) LocationsOf(centerID kernel.ID) []directory.Location {
	var out []directory.Location
	for _, l := range v.Locations {
		if l.CenterID() == centerID {
			out = append(out, l)
		}
	}
	return out
}
