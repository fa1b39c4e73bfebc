package services

import (
	"slices"

	"parceltrack/internal/core/domain/model/identity"
)

// CapabilityPolicy decides which capabilities a role holds.
//
// Business rules:
//   - ADMIN holds every known capability
//   - STAFF handles packages and reads the directories
//   - CUSTOMER may only track packages
//   - unknown capability names are never granted
//
// Example usage:
//
//	policy := services.NewCapabilityPolicy()
//	if !policy.Allows(identity.RoleCustomer, identity.CreatePackage) {
//	    // respond 403
//	}
type CapabilityPolicy struct {
	grants map[identity.Role][]identity.Capability
}

// NewCapabilityPolicy returns the built-in policy of the three roles.
func NewCapabilityPolicy() CapabilityPolicy {
	return CapabilityPolicy{
		grants: map[identity.Role][]identity.Capability{
			identity.RoleAdmin: identity.KnownCapabilities(),
			identity.RoleStaff: {
				identity.ViewPackages,
				identity.CreatePackage,
				identity.UpdatePackageStatus,
				identity.ViewCustomers,
				identity.ViewLocations,
				identity.ViewCenters,
			},
			identity.RoleCustomer: {
				identity.TrackPackage,
			},
		},
	}
}

// Allows reports whether role holds capability.
func (p CapabilityPolicy) Allows(role identity.Role, capability identity.Capability) bool {
	return slices.Contains(p.grants[role], capability)
}

// Capabilities lists the capabilities of role, for the display hints returned at
// identity hydration.
func (p CapabilityPolicy) Capabilities(role identity.Role) []identity.Capability {
	return slices.Clone(p.grants[role])
}
