// Package http is the remote authority's HTTP API: an echo router exposing the
// command and query handlers, guarded by bearer-token authentication and the
// capability policy, and checked against the embedded OpenAPI document.
//
// Every failure leaves a handler as an error and is rendered by ErrorHandler as a
// wire.ErrorResponse whose status follows the error kind:
//
//	AuthenticationError   401
//	AuthorizationError    403
//	ObjectNotFoundError   404
//	ConflictError         409
//	validation errors     400
//	anything else         500
package http
