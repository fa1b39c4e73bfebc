package identity_test

import (
	"testing"

	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for _, raw := range []string{"ADMIN", "staff", " Customer "} {
		t.Run(raw, func(t *testing.T) {
			role, err := identity.ParseRole(raw)
			require.NoError(t, err)
			require.NoError(t, role.Validate())
		})
	}

	_, err := identity.ParseRole("ROOT")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCapability_Validate(t *testing.T) {
	require.NoError(t, identity.CreatePackage.Validate())
	require.NoError(t, identity.Capability("SOMETHING_NEW").Validate())
	require.ErrorIs(t, identity.Capability(" ").Validate(), errs.ErrValueIsRequired)
}

func TestCredentials_Validate(t *testing.T) {
	require.NoError(t, identity.Credentials{Username: "ops", Password: "secret"}.Validate())

	err := identity.Credentials{}.Validate()
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "username")
	assert.Contains(t, err.Error(), "password")
}

func TestNewIdentity(t *testing.T) {
	t.Run("should copy permission hints", func(t *testing.T) {
		hints := []string{"VIEW_PACKAGES"}

		id, err := identity.NewIdentity(4, "ops", "ops@example.com", identity.RoleStaff, hints)
		require.NoError(t, err)
		hints[0] = "CHANGED"

		assert.Equal(t, []string{"VIEW_PACKAGES"}, id.PermissionHints())
		assert.Equal(t, identity.RoleStaff, id.Role())
		assert.Equal(t, "ops", id.Username())
	})

	t.Run("should reject unknown role", func(t *testing.T) {
		_, err := identity.NewIdentity(1, "x", "", identity.Role("GUEST"), nil)
		require.Error(t, err)
	})
}
