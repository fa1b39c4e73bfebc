// Package shipment models packages and their tracking ledger.
//
// A Package is the aggregate root. Its ledger is the append-only sequence of
// Track entries; status and current location on the package are a cached
// projection of the latest track and are never assigned directly:
//   - a package is born with exactly one CREATED track at its initial location;
//   - every later change appends one track (Advance) and moves the projection with it;
//   - tracks are ordered by timestamp, ties broken by id (insertion order);
//   - DELIVERED and CANCELLED are terminal: nothing can be appended after them.
//
// RestorePackage rebuilds an aggregate from persisted or remote data and refuses
// any payload that breaks these rules, so a package held in memory always
// satisfies them.
package shipment
