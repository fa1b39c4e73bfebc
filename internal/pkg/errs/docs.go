// Package errs provides standardized error types for the parceltrack application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used by the domain model, the remote-authority client and the reference
// authority server alike.
//
// The package includes two groups of error types.
//
// Value errors, raised by constructors and local pre-validation:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside its allowed bounds
//   - ObjectNotFoundError: For when an object cannot be found
//
// Protocol errors, one per kind of failure a remote call can end with:
//   - AuthenticationError: the token is missing, expired or rejected (HTTP 401)
//   - AuthorizationError: the session is authenticated but not permitted (HTTP 403)
//   - ValidationError: the remote authority rejected the input (HTTP 400/422)
//   - ConflictError: the request is incompatible with the current state (HTTP 409)
//   - NetworkError: the transport failed or timed out
//   - RemoteFailureError: the remote authority answered with a 5xx or an unreadable body
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() returning the sentinel, so errors.Is classifies the kind; value errors
//     also expose their cause
package errs
