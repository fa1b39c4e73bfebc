package services_test

import (
	"testing"

	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestCapabilityPolicy_Allows(t *testing.T) {
	policy := services.NewCapabilityPolicy()

	testCases := []struct {
		role       identity.Role
		capability identity.Capability
		expected   bool
	}{
		{identity.RoleAdmin, identity.ManageLocations, true},
		{identity.RoleAdmin, identity.CreatePackage, true},
		{identity.RoleStaff, identity.CreatePackage, true},
		{identity.RoleStaff, identity.UpdatePackageStatus, true},
		{identity.RoleStaff, identity.ManageLocations, false},
		{identity.RoleStaff, identity.ManageCenters, false},
		{identity.RoleCustomer, identity.CreatePackage, false},
		{identity.RoleCustomer, identity.ViewPackages, false},
		{identity.RoleCustomer, identity.TrackPackage, true},
		{identity.RoleAdmin, identity.Capability("LAUNCH_ROCKETS"), false},
		{identity.Role("GUEST"), identity.TrackPackage, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.role)+"/"+string(tc.capability), func(t *testing.T) {
			assert.Equal(t, tc.expected, policy.Allows(tc.role, tc.capability))
		})
	}
}

func TestCapabilityPolicy_Capabilities(t *testing.T) {
	policy := services.NewCapabilityPolicy()

	assert.ElementsMatch(t, identity.KnownCapabilities(), policy.Capabilities(identity.RoleAdmin))
	assert.Equal(t, []identity.Capability{identity.TrackPackage}, policy.Capabilities(identity.RoleCustomer))
	assert.Empty(t, policy.Capabilities(identity.Role("GUEST")))

	caps := policy.Capabilities(identity.RoleCustomer)
	caps[0] = identity.ManageCenters
	assert.False(t, policy.Allows(identity.RoleCustomer, identity.ManageCenters), "callers cannot widen the policy")
}
