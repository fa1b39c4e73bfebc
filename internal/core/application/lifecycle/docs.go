// Package lifecycle implements the Package Lifecycle Controller and the read side
// of the Tracking Ledger.
//
// The Controller is the only writer of package status. It never mutates a package
// locally: every change is a request to the remote authority, and the package it
// hands back is the authority's response, checked against the ledger rules. The
// Ledger answers "what is the current status" for every other component; nothing
// else infers it.
package lifecycle
