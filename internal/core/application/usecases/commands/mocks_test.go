package commands_test

import (
	"context"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/directory"
	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/shipment"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockPackageRepository struct{ mock.Mock }

func (m *MockPackageRepository) Add(ctx context.Context, p *shipment.Package) (kernel.ID, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(kernel.ID), args.Error(1)
}

func (m *MockPackageRepository) AppendTrack(ctx context.Context, p *shipment.Package, track shipment.Track) error {
	args := m.Called(ctx, p, track)
	return args.Error(0)
}

func (m *MockPackageRepository) Get(ctx context.Context, id kernel.ID) (*shipment.Package, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*shipment.Package)
	return p, args.Error(1)
}

func (m *MockPackageRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*shipment.Package, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*shipment.Package)
	return p, args.Error(1)
}

func (m *MockPackageRepository) List(_ context.Context) ([]*shipment.Package, error) {
	return nil, nil
}

func (m *MockPackageRepository) ProjectionRecords(_ context.Context) ([]services.ProjectionRecord, error) {
	return nil, nil
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.ID) (directory.Customer, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(directory.Customer), args.Error(1)
}

func (m *MockCustomerRepository) List(_ context.Context) ([]directory.Customer, error) {
	return nil, nil
}

type MockLocationRepository struct{ mock.Mock }

func (m *MockLocationRepository) Add(ctx context.Context, draft directory.LocationDraft) (directory.Location, error) {
	args := m.Called(ctx, draft)
	return args.Get(0).(directory.Location), args.Error(1)
}

func (m *MockLocationRepository) Get(ctx context.Context, id kernel.ID) (directory.Location, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(directory.Location), args.Error(1)
}

func (m *MockLocationRepository) List(_ context.Context) ([]directory.Location, error) {
	return nil, nil
}

func (m *MockLocationRepository) IsReferenced(ctx context.Context, id kernel.ID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockLocationRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCenterRepository struct{ mock.Mock }

func (m *MockCenterRepository) Add(ctx context.Context, draft directory.CenterDraft) (directory.Center, error) {
	args := m.Called(ctx, draft)
	return args.Get(0).(directory.Center), args.Error(1)
}

func (m *MockCenterRepository) Get(ctx context.Context, id kernel.ID) (directory.Center, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(directory.Center), args.Error(1)
}

func (m *MockCenterRepository) List(_ context.Context) ([]directory.Center, error) {
	return nil, nil
}

type MockTransportationRepository struct{ mock.Mock }

func (m *MockTransportationRepository) Get(ctx context.Context, id kernel.ID) (directory.Transportation, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(directory.Transportation), args.Error(1)
}

type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) Add(ctx context.Context, account *identity.Account) (kernel.ID, error) {
	args := m.Called(ctx, account)
	return args.Get(0).(kernel.ID), args.Error(1)
}

func (m *MockAccountRepository) Get(ctx context.Context, id kernel.ID) (*identity.Account, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*identity.Account)
	return a, args.Error(1)
}

func (m *MockAccountRepository) GetByUsername(ctx context.Context, username string) (*identity.Account, error) {
	args := m.Called(ctx, username)
	a, _ := args.Get(0).(*identity.Account)
	return a, args.Error(1)
}

// MockUoW serves every unit of work interface; each test wires only the
// repositories its handler reaches.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) PackageRepository() ports.PackageRepository {
	args := m.Called()
	return args.Get(0).(ports.PackageRepository)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

func (m *MockUoW) LocationRepository() ports.LocationRepository {
	args := m.Called()
	return args.Get(0).(ports.LocationRepository)
}

func (m *MockUoW) CenterRepository() ports.CenterRepository {
	args := m.Called()
	return args.Get(0).(ports.CenterRepository)
}

func (m *MockUoW) TransportationRepository() ports.TransportationRepository {
	args := m.Called()
	return args.Get(0).(ports.TransportationRepository)
}

func (m *MockUoW) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}

type MockPackageUoWFactory struct{ mock.Mock }

func (m *MockPackageUoWFactory) Create() commands.PackageUoW {
	args := m.Called()
	return args.Get(0).(commands.PackageUoW)
}

type MockDirectoryUoWFactory struct{ mock.Mock }

func (m *MockDirectoryUoWFactory) Create() commands.DirectoryUoW {
	args := m.Called()
	return args.Get(0).(commands.DirectoryUoW)
}

type MockAccountUoWFactory struct{ mock.Mock }

func (m *MockAccountUoWFactory) Create() commands.AccountUoW {
	args := m.Called()
	return args.Get(0).(commands.AccountUoW)
}

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Compare(hash, password string) error {
	args := m.Called(hash, password)
	return args.Error(0)
}

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) Issue(account *identity.Account) (string, error) {
	args := m.Called(account)
	return args.String(0), args.Error(1)
}

func (m *MockTokenIssuer) Verify(token string) (ports.Claims, error) {
	args := m.Called(token)
	return args.Get(0).(ports.Claims), args.Error(1)
}
