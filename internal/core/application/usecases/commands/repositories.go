// Package commands contains the remote authority's business operations that modify
// system state. Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation, transaction
// management, and persistence.
package commands

import (
	"context"
	"parceltrack/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// PackageRepoFactory provides access to the package repository within a transaction.
	PackageRepoFactory interface {
		PackageRepository() ports.PackageRepository
	}

	// DirectoryRepoFactory provides access to the directory repositories within a transaction.
	DirectoryRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
		LocationRepository() ports.LocationRepository
		CenterRepository() ports.CenterRepository
		TransportationRepository() ports.TransportationRepository
	}

	// AccountRepoFactory provides access to the account repository within a transaction.
	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	// PackageUoW manages transactions for package writes, which must check the
	// directory entries a package refers to.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   pkg, err := uow.PackageRepository().GetForUpdate(ctx, id)
	//   _, err = uow.LocationRepository().Get(ctx, locationID)
	//   // ... advance and append
	//
	//   err = uow.Commit(ctx)
	PackageUoW interface {
		TxManager
		PackageRepoFactory
		DirectoryRepoFactory
	}

	// PackageUoWFactory creates new package unit of work instances.
	PackageUoWFactory interface {
		Create() PackageUoW
	}

	// DirectoryUoW manages transactions for directory-only operations.
	DirectoryUoW interface {
		TxManager
		DirectoryRepoFactory
	}

	// DirectoryUoWFactory creates new directory unit of work instances.
	DirectoryUoWFactory interface {
		Create() DirectoryUoW
	}

	// AccountUoW manages transactions for account operations.
	AccountUoW interface {
		TxManager
		AccountRepoFactory
	}

	// AccountUoWFactory creates new account unit of work instances.
	AccountUoWFactory interface {
		Create() AccountUoW
	}
)
