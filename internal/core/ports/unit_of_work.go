package ports

import "context"

// UnitOfWorkFactory hands out a fresh UnitOfWork per command so concurrent
// commands never share transaction state.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of the reference authority.
// Repositories obtained after Begin run inside the transaction; before Begin
// they read through the plain connection.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	// Commit and Rollback fail when no transaction is open.
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	PackageRepository() PackageRepository
	CustomerRepository() CustomerRepository
	LocationRepository() LocationRepository
	CenterRepository() CenterRepository
	TransportationRepository() TransportationRepository
	AccountRepository() AccountRepository
}
