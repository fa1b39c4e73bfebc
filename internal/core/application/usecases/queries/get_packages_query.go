package queries

import (
	"errors"

	"parceltrack/internal/pkg/guard"
)

var (
	ErrGetPackagesQueryIsNotConstructed = errors.New(
		"GetPackagesQuery must be created via NewGetPackagesQuery constructor",
	)
)

// GetPackagesQuery retrieves every package with its full ledger.
//
// Example:
//
//	query := NewGetPackagesQuery()
//	handler := NewGetPackagesQueryHandler(db)
//
//	packages, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list packages: %w", err)
//	}
//
//	for _, p := range packages {
//	    fmt.Printf("Package %s is %s at location %s\n", p.ID(), p.Status(), p.CurrentLocationID())
//	}
type GetPackagesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPackagesQuery creates a parameterless listing query.
func NewGetPackagesQuery() GetPackagesQuery {
	return GetPackagesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPackagesQuery) Validate() error {
	return q.guard.Validate(ErrGetPackagesQueryIsNotConstructed)
}
