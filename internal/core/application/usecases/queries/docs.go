// Package queries contains the remote authority's read operations. Implements the
// Query side of CQRS: handlers read straight from the database with hand-written
// SQL and rebuild domain values, bypassing the repositories and their locks.
//
// All queries follow the same pattern:
//   - a Query struct created via its constructor and checked with Validate
//   - a QueryHandler holding the database handle
//   - Handle(ctx, query) returning domain values ready for the transport layer
package queries
