package commands

import (
	"context"
	"parceltrack/internal/core/domain/model/shipment"
	"time"
)

// AppendTrackCommandHandler appends one track to a package's ledger and moves its
// projection, holding the package row lock for the whole transaction.
//
// Checks run in this order: the package must exist (NotFound), must not be in a
// terminal status (ConflictError), the location must exist (ValidationError) and
// the target must be recordable by a new track (ValidationError for CREATED).
// A terminal package is a conflict whatever the requested target.
//
// Example:
//
//	handler := NewAppendTrackCommandHandler(uowFactory, nil)
//	cmd, err := NewAppendTrackCommand(packageID, shipment.AtCenter, locationID)
//	if err != nil {
//	    return err
//	}
//	pkg, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrConflict):
//	    log.Println("package already delivered or cancelled")
//	case errs.IsValidation(err):
//	    log.Printf("rejected: %v", err)
//	case err == nil:
//	    log.Printf("package %s is now %s", pkg.ID(), pkg.Status())
//	}
type AppendTrackCommandHandler struct {
	uowFactory PackageUoWFactory
	now        func() time.Time
}

// NewAppendTrackCommandHandler creates a handler that stamps tracks with now.
// A nil now falls back to time.Now.
func NewAppendTrackCommandHandler(uowFactory PackageUoWFactory, now func() time.Time) AppendTrackCommandHandler {
	if now == nil {
		now = time.Now
	}
	return AppendTrackCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle returns the package as stored after the append.
func (h *AppendTrackCommandHandler) Handle(ctx context.Context, cmd AppendTrackCommand) (*shipment.Package, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	packageRepo := uow.PackageRepository()
	pkg, err := packageRepo.GetForUpdate(ctx, cmd.PackageID())
	if err != nil {
		return nil, err
	}

	if err = pkg.Status().ValidateAdvance(); err != nil {
		return nil, err
	}

	if _, err = uow.LocationRepository().Get(ctx, cmd.LocationID()); err != nil {
		return nil, missing("location", cmd.LocationID(), err)
	}

	track, err := pkg.Advance(cmd.Status(), cmd.LocationID(), h.now())
	if err != nil {
		return nil, err
	}

	if err = packageRepo.AppendTrack(ctx, pkg, track); err != nil {
		return nil, err
	}

	stored, err := packageRepo.Get(ctx, pkg.ID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return stored, nil
}
