// Package services provides domain services of the reference remote authority:
// logic that does not belong to a single aggregate.
//
// The package includes:
//   - CapabilityPolicy: the server-side mapping from roles to capabilities
//   - ProjectionAuditor: a consistency check of package projections against their ledgers
//
// Clients never use CapabilityPolicy directly. They ask the authority, which asks
// the policy; changing the policy needs no client release.
package services
