package wire

import (
	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/core/domain/model/kernel"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// MeResponse describes the identity behind a token. Permissions is a display hint.
type MeResponse struct {
	ID          int64    `json:"id,omitempty"`
	Username    string   `json:"username,omitempty"`
	Email       string   `json:"email,omitempty"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

type PermissionResponse struct {
	Allowed bool `json:"allowed"`
}

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (r MeResponse) ToIdentity() (identity.Identity, error) {
	role, err := identity.ParseRole(r.Role)
	if err != nil {
		return identity.Identity{}, err
	}
	return identity.NewIdentity(kernel.ID(r.ID), r.Username, r.Email, role, r.Permissions)
}
