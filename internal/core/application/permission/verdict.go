package permission

import (
	"errors"

	"parceltrack/internal/pkg/errs"
)

// Verdict classifies the outcome of an attempted gated operation.
type Verdict int

const (
	// Failed means the operation did not complete for a reason unrelated to
	// permission: validation, conflict, not found, network or server failure.
	Failed Verdict = iota
	Permitted
	NotPermitted
	NotAuthenticated
)

func (v Verdict) String() string {
	switch v {
	case Permitted:
		return "permitted"
	case NotPermitted:
		return "not permitted"
	case NotAuthenticated:
		return "not authenticated"
	default:
		return "failed"
	}
}

// Interpret reads the result of an attempted operation. A 403 is final: the same
// attempt must not be repeated in the hope of a different answer.
func Interpret(err error) Verdict {
	switch {
	case err == nil:
		return Permitted
	case errors.Is(err, errs.ErrAuthorization):
		return NotPermitted
	case errors.Is(err, errs.ErrAuthentication):
		return NotAuthenticated
	default:
		return Failed
	}
}
