package queries

import (
	"context"
	"errors"

	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/pkg/guard"
)

var ErrCheckPermissionQueryIsNotConstructed = errors.New(
	"CheckPermissionQuery must be created via NewCheckPermissionQuery constructor",
)

// CheckPermissionQuery asks whether role holds capability. Unknown capability
// names are valid questions and are answered with false.
type CheckPermissionQuery struct {
	role       identity.Role
	capability identity.Capability

	guard guard.ConstructorGuard
}

func NewCheckPermissionQuery(role identity.Role, capability identity.Capability) (CheckPermissionQuery, error) {
	if err := errors.Join(role.Validate(), capability.Validate()); err != nil {
		return CheckPermissionQuery{}, err
	}
	return CheckPermissionQuery{
		role:       role,
		capability: capability,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q CheckPermissionQuery) Validate() error {
	return q.guard.Validate(ErrCheckPermissionQueryIsNotConstructed)
}

type CheckPermissionQueryHandler struct {
	policy services.CapabilityPolicy
}

// NewCheckPermissionQueryHandler creates a handler answering from policy.
func NewCheckPermissionQueryHandler(policy services.CapabilityPolicy) CheckPermissionQueryHandler {
	return CheckPermissionQueryHandler{policy: policy}
}

// Handle reports whether the role may use the capability. Unknown capabilities
// are never allowed.
func (h CheckPermissionQueryHandler) Handle(_ context.Context, query CheckPermissionQuery) (bool, error) {
	if err := query.Validate(); err != nil {
		return false, err
	}
	return h.policy.Allows(query.role, query.capability), nil
}
