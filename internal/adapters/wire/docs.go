// Package wire holds the JSON documents exchanged with the remote authority and
// their conversions to and from the domain model. The reference server encodes
// them and the client decodes them, so both sides share one definition.
//
// Package documents may carry nested sender, receiver, currentLocation and
// transportation objects, flat ids, or both; decoding accepts any of these.
package wire
