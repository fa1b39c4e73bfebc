package directory_test

import (
	"context"
	"testing"

	appdirectory "parceltrack/internal/core/application/directory"
	"parceltrack/internal/core/domain/model/directory"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/logs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDirectoryGateway struct{ mock.Mock }

func (m *MockDirectoryGateway) ListCustomers(ctx context.Context) ([]directory.Customer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]directory.Customer), args.Error(1)
}

func (m *MockDirectoryGateway) ListLocations(ctx context.Context) ([]directory.Location, error) {
	args := m.Called(ctx)
	return args.Get(0).([]directory.Location), args.Error(1)
}

func (m *MockDirectoryGateway) CreateLocation(ctx context.Context, d directory.LocationDraft) (directory.Location, error) {
	args := m.Called(ctx, d)
	return args.Get(0).(directory.Location), args.Error(1)
}

func (m *MockDirectoryGateway) DeleteLocation(ctx context.Context, id kernel.ID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockDirectoryGateway) ListCenters(ctx context.Context) ([]directory.Center, error) {
	args := m.Called(ctx)
	return args.Get(0).([]directory.Center), args.Error(1)
}

func (m *MockDirectoryGateway) CreateCenter(ctx context.Context, d directory.CenterDraft) (directory.Center, error) {
	args := m.Called(ctx, d)
	return args.Get(0).(directory.Center), args.Error(1)
}

func location(t *testing.T, id, centerID kernel.ID) directory.Location {
	t.Helper()
	l, err := directory.RestoreLocation(id, directory.LocationDraft{Name: "Dock", Address: "1 Pier", City: "Porto", CenterID: centerID})
	require.NoError(t, err)
	return l
}

func TestService_DeleteLocation(t *testing.T) {
	t.Run("referenced location surfaces the remote conflict", func(t *testing.T) {
		ctx := t.Context()
		gateway := new(MockDirectoryGateway)
		gateway.On("DeleteLocation", ctx, kernel.ID(1)).
			Return(errs.NewConflictError("location 1", "referenced by packages")).Once()
		gateway.On("ListLocations", ctx).Return([]directory.Location{location(t, 1, 1)}, nil).Once()
		svc := appdirectory.NewService(gateway, logs.Discard())

		err := svc.DeleteLocation(ctx, 1)
		require.ErrorIs(t, err, errs.ErrConflict)

		locations, err := svc.Locations(ctx)
		require.NoError(t, err)
		assert.Len(t, locations, 1, "location remains in the directory")
		gateway.AssertExpectations(t)
	})

	t.Run("unreferenced location is deleted", func(t *testing.T) {
		ctx := t.Context()
		gateway := new(MockDirectoryGateway)
		gateway.On("DeleteLocation", ctx, kernel.ID(5)).Return(nil).Once()

		require.NoError(t, appdirectory.NewService(gateway, logs.Discard()).DeleteLocation(ctx, 5))
		gateway.AssertExpectations(t)
	})

	t.Run("malformed id is rejected locally", func(t *testing.T) {
		gateway := new(MockDirectoryGateway)

		err := appdirectory.NewService(gateway, logs.Discard()).DeleteLocation(t.Context(), 0)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		gateway.AssertExpectations(t)
	})
}

func TestService_CreateLocation(t *testing.T) {
	t.Run("incomplete draft never leaves the client", func(t *testing.T) {
		gateway := new(MockDirectoryGateway)

		_, err := appdirectory.NewService(gateway, logs.Discard()).CreateLocation(t.Context(), directory.LocationDraft{Name: "x"})

		assert.True(t, errs.IsValidation(err))
		gateway.AssertExpectations(t)
	})

	t.Run("authorization failure is surfaced", func(t *testing.T) {
		ctx := t.Context()
		draft := directory.LocationDraft{Name: "Dock", Address: "1 Pier", City: "Porto", CenterID: 1}
		gateway := new(MockDirectoryGateway)
		gateway.On("CreateLocation", ctx, draft).Return(directory.Location{}, errs.NewAuthorizationError("POST /locations")).Once()

		_, err := appdirectory.NewService(gateway, logs.Discard()).CreateLocation(ctx, draft)

		require.ErrorIs(t, err, errs.ErrAuthorization)
	})
}

func TestService_Snapshot(t *testing.T) {
	ctx := t.Context()
	gateway := new(MockDirectoryGateway)
	customer, err := directory.RestoreCustomer(1, "Ada", "", "")
	require.NoError(t, err)
	center, err := directory.RestoreCenter(1, directory.CenterDraft{Name: "Hub", City: "Porto", Type: "HUB"})
	require.NoError(t, err)
	gateway.On("ListCustomers", ctx).Return([]directory.Customer{customer}, nil).Once()
	gateway.On("ListLocations", ctx).Return([]directory.Location{location(t, 1, 1), location(t, 2, 9)}, nil).Once()
	gateway.On("ListCenters", ctx).Return([]directory.Center{center}, nil).Once()

	view, err := appdirectory.NewService(gateway, logs.Discard()).Snapshot(ctx)

	require.NoError(t, err)
	_, ok := view.Customer(1)
	assert.True(t, ok)
	_, ok = view.Location(3)
	assert.False(t, ok)
	assert.Len(t, view.LocationsOf(1), 1)
	gateway.AssertExpectations(t)
}
