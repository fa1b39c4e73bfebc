// Package identity models who is using the system: accounts, roles, the capability
// names the remote authority evaluates, and the client-side session.
//
// Capability is an opaque name. The client never maps roles to capabilities;
// that policy lives with the remote authority (see services.CapabilityPolicy for
// the reference implementation). Identity.PermissionHints is what the authority
// reported at hydration time and is kept for display only.
package identity
