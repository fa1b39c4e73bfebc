// Package kernel provides the value objects shared by every aggregate of the
// parceltrack domain model.
//
// The remote authority is the system of record for all entities and assigns their
// identifiers. ID wraps those identifiers so that unsaved entities (zero ID) are
// told apart from persisted ones, and so that a malformed identifier coming from
// the wire is rejected before it reaches an aggregate.
package kernel
