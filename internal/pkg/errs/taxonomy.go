package errs

import (
	"errors"
	"fmt"
)

var (
	ErrAuthentication = errors.New("authentication required")
	ErrAuthorization  = errors.New("not permitted")
	ErrValidation     = errors.New("validation failed")
	ErrConflict       = errors.New("state conflict")
	ErrNetwork        = errors.New("network failure")
	ErrRemoteFailure  = errors.New("remote authority failure")
)

// AuthenticationError means the session holds no usable token. It is raised for a
// remote 401 and when a call is attempted without any token at all.
type AuthenticationError struct {
	Reason string
	Cause  error
}

func NewAuthenticationError(reason string) *AuthenticationError {
	return &AuthenticationError{Reason: reason}
}

func NewAuthenticationErrorWithCause(reason string, cause error) *AuthenticationError {
	return &AuthenticationError{Reason: reason, Cause: cause}
}

func (e *AuthenticationError) Error() string {
	return format(ErrAuthentication, e.Reason, e.Cause)
}

func (e *AuthenticationError) Unwrap() error {
	return ErrAuthentication
}

// AuthorizationError means the remote authority refused the action for the current
// session (HTTP 403). It is definitive: the same attempt must not be repeated.
type AuthorizationError struct {
	Action string
	Cause  error
}

func NewAuthorizationError(action string) *AuthorizationError {
	return &AuthorizationError{Action: action}
}

func NewAuthorizationErrorWithCause(action string, cause error) *AuthorizationError {
	return &AuthorizationError{Action: action, Cause: cause}
}

func (e *AuthorizationError) Error() string {
	return format(ErrAuthorization, e.Action, e.Cause)
}

func (e *AuthorizationError) Unwrap() error {
	return ErrAuthorization
}

// ValidationError carries an input rejection reported by the remote authority.
// Local pre-validation uses the Value* errors instead; IsValidation covers both.
type ValidationError struct {
	Message string
	Cause   error
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func NewValidationErrorWithCause(message string, cause error) *ValidationError {
	return &ValidationError{Message: message, Cause: cause}
}

func (e *ValidationError) Error() string {
	return format(ErrValidation, e.Message, e.Cause)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ConflictError reports a request that is incompatible with the current state of
// Subject, such as advancing a delivered package or deleting a referenced location.
type ConflictError struct {
	Subject string
	Reason  string
	Cause   error
}

func NewConflictError(subject, reason string) *ConflictError {
	return &ConflictError{Subject: subject, Reason: reason}
}

func NewConflictErrorWithCause(subject, reason string, cause error) *ConflictError {
	return &ConflictError{Subject: subject, Reason: reason, Cause: cause}
}

func (e *ConflictError) Error() string {
	detail := e.Subject
	if e.Reason != "" {
		detail = fmt.Sprintf("%s: %s", e.Subject, e.Reason)
	}
	return format(ErrConflict, detail, e.Cause)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// NetworkError wraps a transport failure or timeout of the operation Op.
type NetworkError struct {
	Op    string
	Cause error
}

func NewNetworkError(op string, cause error) *NetworkError {
	return &NetworkError{Op: op, Cause: cause}
}

func (e *NetworkError) Error() string {
	return format(ErrNetwork, e.Op, e.Cause)
}

func (e *NetworkError) Unwrap() error {
	return ErrNetwork
}

// RemoteFailureError reports a response that is neither a success nor one of the
// classified rejections: 5xx codes, unexpected statuses and undecodable bodies.
type RemoteFailureError struct {
	StatusCode int
	Message    string
	Cause      error
}

func NewRemoteFailureError(statusCode int, message string) *RemoteFailureError {
	return &RemoteFailureError{StatusCode: statusCode, Message: message}
}

func NewRemoteFailureErrorWithCause(statusCode int, message string, cause error) *RemoteFailureError {
	return &RemoteFailureError{StatusCode: statusCode, Message: message, Cause: cause}
}

func (e *RemoteFailureError) Error() string {
	return format(ErrRemoteFailure, fmt.Sprintf("status %d: %s", e.StatusCode, e.Message), e.Cause)
}

func (e *RemoteFailureError) Unwrap() error {
	return ErrRemoteFailure
}

// IsValidation reports whether err is any kind of input rejection, local or remote.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrValueIsInvalid) ||
		errors.Is(err, ErrValueIsRequired) ||
		errors.Is(err, ErrValueIsOutOfRange)
}

// IsNotFound reports whether err is the NotFound kind.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrObjectNotFound)
}

func format(sentinel error, detail string, cause error) string {
	msg := sentinel.Error()
	if detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, sanitize(detail))
	}
	if cause != nil {
		msg = fmt.Sprintf("%s (cause: %v)", msg, cause)
	}
	return msg
}
