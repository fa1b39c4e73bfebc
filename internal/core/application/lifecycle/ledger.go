package lifecycle

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/shipment"
	"parceltrack/internal/core/ports"
)

// Ledger reads tracking history. Every call fetches the full ledger again; there
// are no deltas and no cache.
type Ledger struct {
	gateway ports.PackageGateway
}

// NewLedger creates a ledger reader over the public tracking lookup.
func NewLedger(gateway ports.PackageGateway) *Ledger {
	return &Ledger{gateway: gateway}
}

// Lookup returns the package with its resolved sender, receiver, location,
// transportation and ledger. Unknown ids fail with an ObjectNotFoundError.
func (l *Ledger) Lookup(ctx context.Context, id kernel.ID) (shipment.Details, error) {
	if err := id.Validate(); err != nil {
		return shipment.Details{}, err
	}
	return l.gateway.TrackingDetails(ctx, id)
}

// History returns the ledger ordered by timestamp, then by track id.
func (l *Ledger) History(ctx context.Context, id kernel.ID) ([]shipment.Track, error) {
	details, err := l.Lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	return details.History(), nil
}

// Latest returns the last ledger entry, or nil for an empty ledger.
func (l *Ledger) Latest(ctx context.Context, id kernel.ID) (*shipment.Track, error) {
	history, err := l.History(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return nil, nil
	}
	latest := history[len(history)-1]
	return &latest, nil
}
