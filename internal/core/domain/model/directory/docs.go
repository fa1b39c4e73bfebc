// Package directory holds the reference entities packages point at: customers,
// locations, the centers locations belong to, and transportations.
//
// Directory entries are owned by the remote authority. Referential rules between
// them, such as a location that may not be deleted while a package or a track
// refers to it, are enforced there and only surfaced by the client.
package directory
