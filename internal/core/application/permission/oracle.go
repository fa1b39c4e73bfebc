// Package permission implements the Permission Oracle. The client holds no table
// of what roles may do: every question is a live round trip to the remote
// authority, or is answered by the outcome of the attempted operation itself.
//
// Two styles are supported:
//   - pre-check: HasCapability before offering an action;
//   - attempt-then-interpret: run the operation and classify its error with Interpret.
package permission

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
)

// Oracle asks the remote authority about capabilities of the current session.
// It keeps no state between calls.
type Oracle struct {
	gateway ports.PermissionGateway
	tokens  ports.TokenSource
	logger  *slog.Logger
}

// NewOracle creates an oracle asking gateway on behalf of the session behind tokens.
func NewOracle(gateway ports.PermissionGateway, tokens ports.TokenSource, logger *slog.Logger) *Oracle {
	return &Oracle{
		gateway: gateway,
		tokens:  tokens,
		logger:  logger.With("component", "PermissionOracle"),
	}
}

// HasCapability reports whether the current session may perform capability.
//
// Without a token the answer is false and no request is made. A 401 or 403 from the
// check endpoint also reads as false. Any other failure is returned as an error
// with a false answer: the caller must not treat "could not ask" as permission.
func (o *Oracle) HasCapability(ctx context.Context, capability identity.Capability) (bool, error) {
	if err := capability.Validate(); err != nil {
		return false, err
	}
	if o.tokens.Token() == "" {
		return false, nil
	}

	allowed, err := o.gateway.CheckPermission(ctx, capability)
	if err != nil {
		if errors.Is(err, errs.ErrAuthentication) || errors.Is(err, errs.ErrAuthorization) {
			return false, nil
		}
		o.logger.WarnContext(ctx, "capability check failed", "capability", capability.String(), "error", err)
		return false, err
	}
	return allowed, nil
}

// Interaction returns a scope that remembers answers for the duration of one user
// interaction, such as rendering one menu. Discard it when the interaction ends.
func (o *Oracle) Interaction() *Interaction {
	return &Interaction{oracle: o, answers: make(map[identity.Capability]bool)}
}

// Interaction memoizes successful answers of one Oracle for a single interaction.
// Failed checks are not remembered.
type Interaction struct {
	oracle *Oracle

	mu      sync.Mutex
	answers map[identity.Capability]bool
}

func (i *Interaction) HasCapability(ctx context.Context, capability identity.Capability) (bool, error) {
	i.mu.Lock()
	allowed, ok := i.answers[capability]
	i.mu.Unlock()
	if ok {
		return allowed, nil
	}

	allowed, err := i.oracle.HasCapability(ctx, capability)
	if err != nil {
		return false, err
	}

	i.mu.Lock()
	i.answers[capability] = allowed
	i.mu.Unlock()
	return allowed, nil
}
