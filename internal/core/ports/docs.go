// Package ports defines the contracts between the core and its adapters.
//
// The reference remote authority persists through PackageRepository and the
// directory repositories, grouped in a UnitOfWork, and authenticates through
// TokenIssuer and PasswordHasher.
//
// The client reaches the remote authority through the gateways (AuthGateway,
// PermissionGateway, PackageGateway, DirectoryGateway) and keeps its token in a
// TokenStorage. Every gateway call except login and tracking lookup carries the
// token provided by a TokenSource.
package ports
