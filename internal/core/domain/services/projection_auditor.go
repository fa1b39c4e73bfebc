package services

import (
	"fmt"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/shipment"
)

// ProjectionRecord is the raw persisted state of one package: the cached projection
// columns and its ledger, unchecked.
type ProjectionRecord struct {
	PackageID         kernel.ID
	Status            shipment.Status
	CurrentLocationID kernel.ID
	Tracks            []shipment.Track
}

// Discrepancy describes a package whose persisted state breaks a ledger invariant.
type Discrepancy struct {
	PackageID kernel.ID
	Reason    string
}

func (d Discrepancy) String() string {
	return fmt.Sprintf("package %s: %s", d.PackageID, d.Reason)
}

// ProjectionAuditor checks persisted packages against the ledger rules that
// shipment.RestorePackage enforces on load, reporting every violation instead of
// failing on the first one.
type ProjectionAuditor struct{}

func NewProjectionAuditor() ProjectionAuditor {
	return ProjectionAuditor{}
}

// Audit returns one Discrepancy per broken rule; an empty result means every
// record is consistent.
func (a ProjectionAuditor) Audit(records []ProjectionRecord) []Discrepancy {
	var found []Discrepancy
	for _, r := range records {
		found = append(found, a.auditOne(r)...)
	}
	return found
}

func (a ProjectionAuditor) auditOne(r ProjectionRecord) []Discrepancy {
	report := func(format string, args ...any) Discrepancy {
		return Discrepancy{PackageID: r.PackageID, Reason: fmt.Sprintf(format, args...)}
	}

	if len(r.Tracks) == 0 {
		return []Discrepancy{report("ledger is empty")}
	}

	var found []Discrepancy
	ledger := shipment.SortTracks(r.Tracks)

	if first := ledger[0]; first.Status() != shipment.Created {
		found = append(found, report("first track %s is %s", first.ID(), first.Status()))
	}
	for i := 1; i < len(ledger); i++ {
		if prev := ledger[i-1]; prev.Status().IsTerminal() {
			found = append(found, report("track %s follows terminal track %s", ledger[i].ID(), prev.ID()))
		}
	}

	latest := ledger[len(ledger)-1]
	if latest.Status() != r.Status {
		found = append(found, report("status is %s, latest track says %s", r.Status, latest.Status()))
	}
	if latest.LocationID() != r.CurrentLocationID {
		found = append(found, report("current location is %s, latest track says %s",
			r.CurrentLocationID, latest.LocationID()))
	}
	return found
}
