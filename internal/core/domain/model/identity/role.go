package identity

import (
	"fmt"
	"strings"

	"parceltrack/internal/pkg/errs"
)

// Role is the coarse account category assigned by the remote authority.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleStaff    Role = "STAFF"
	RoleCustomer Role = "CUSTOMER"
)

func ParseRole(s string) (Role, error) {
	role := Role(strings.ToUpper(strings.TrimSpace(s)))
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}

func (r Role) Validate() error {
	switch r {
	case RoleAdmin, RoleStaff, RoleCustomer:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", string(r)))
}

func (r Role) String() string {
	return string(r)
}

// Capability names an action whose permission is decided by the remote authority.
type Capability string

const (
	ViewPackages        Capability = "VIEW_PACKAGES"
	CreatePackage       Capability = "CREATE_PACKAGE"
	UpdatePackageStatus Capability = "UPDATE_PACKAGE_STATUS"
	ViewCustomers       Capability = "VIEW_CUSTOMERS"
	ViewLocations       Capability = "VIEW_LOCATIONS"
	ManageLocations     Capability = "MANAGE_LOCATIONS"
	ViewCenters         Capability = "VIEW_CENTERS"
	ManageCenters       Capability = "MANAGE_CENTERS"
	TrackPackage        Capability = "TRACK_PACKAGE"
)

// KnownCapabilities lists the capability names used by this code base. The remote
// authority may know others; an unknown name is still a valid question to ask.
func KnownCapabilities() []Capability {
	return []Capability{
		ViewPackages,
		CreatePackage,
		UpdatePackageStatus,
		ViewCustomers,
		ViewLocations,
		ManageLocations,
		ViewCenters,
		ManageCenters,
		TrackPackage,
	}
}

// Validate only checks that the name is not blank.
func (c Capability) Validate() error {
	if strings.TrimSpace(string(c)) == "" {
		return errs.NewValueIsRequiredError("capability")
	}
	return nil
}

func (c Capability) String() string {
	return string(c)
}
