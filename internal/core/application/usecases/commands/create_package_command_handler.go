package commands

import (
	"context"
	"fmt"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/shipment"
	"parceltrack/internal/pkg/errs"
	"time"
)

// CreatePackageCommandHandler creates a package with its initial CREATED track.
// Sender, receiver, location and transportation must exist; a missing one is a
// ValidationError, not a NotFound, because the request body is at fault.
type CreatePackageCommandHandler struct {
	uowFactory PackageUoWFactory
	now        func() time.Time
}

// NewCreatePackageCommandHandler creates a handler that stamps new packages with now.
// A nil now falls back to time.Now.
func NewCreatePackageCommandHandler(uowFactory PackageUoWFactory, now func() time.Time) CreatePackageCommandHandler {
	if now == nil {
		now = time.Now
	}
	return CreatePackageCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle persists the package and returns it as stored, with assigned ids.
func (h *CreatePackageCommandHandler) Handle(ctx context.Context, cmd CreatePackageCommand) (*shipment.Package, error) {
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

	draft := cmd.Draft()
	if err := ensureReferences(ctx, uow, draft); err != nil {
		return nil, err
	}

	pkg, err := shipment.NewPackage(draft, h.now())
	if err != nil {
		return nil, err
	}

	packageRepo := uow.PackageRepository()
	id, err := packageRepo.Add(ctx, pkg)
	if err != nil {
		return nil, err
	}

	stored, err := packageRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return stored, nil
}

func ensureReferences(ctx context.Context, uow DirectoryRepoFactory, draft shipment.Draft) error {
	if _, err := uow.CustomerRepository().Get(ctx, draft.SenderID); err != nil {
		return missing("sender", draft.SenderID, err)
	}
	if _, err := uow.CustomerRepository().Get(ctx, draft.ReceiverID); err != nil {
		return missing("receiver", draft.ReceiverID, err)
	}
	if _, err := uow.LocationRepository().Get(ctx, draft.CurrentLocationID); err != nil {
		return missing("location", draft.CurrentLocationID, err)
	}
	if draft.TransportationID != nil {
		if _, err := uow.TransportationRepository().Get(ctx, *draft.TransportationID); err != nil {
			return missing("transportation", *draft.TransportationID, err)
		}
	}
	return nil
}

// missing turns a NotFound of a referenced entry into a ValidationError and passes
// any other failure through.
func missing(name string, id kernel.ID, err error) error {
	if errs.IsNotFound(err) {
		return errs.NewValidationErrorWithCause(fmt.Sprintf("%s %s does not exist", name, id), err)
	}
	return err
}
