package auth

import (
	"errors"
	c "studiobooking/internal/core/domain/common"
	"studiobooking/internal/core/domain/user"
)

var (
	ErrUnauthenticated = errors.New("no caller identity")
	ErrForbidden       = errors.New("insufficient privileges")
)

// Claims is the caller identity produced by the upstream authentication
// layer. The core only consumes it, it never issues tokens.
type Claims struct {
	UserID  user.ID
	Email   c.Email
	IsAdmin bool
}

type Capability int

const (
	// CapabilityAdmin guards user management and other admin-only operations.
	CapabilityAdmin Capability = iota
)

type Decision int

const (
	DecisionAllowed Decision = iota
	DecisionUnauthenticated
	DecisionForbidden
)

// Evaluate decides whether the caller may perform an operation requiring the
// given capability. Missing claims and insufficient claims are distinct
// outcomes so the boundary can answer 401 vs 403.
func Evaluate(claims c.Optional[Claims], capability Capability) Decision {
	if !claims.IsPresent {
		return DecisionUnauthenticated
	}
	switch capability {
	case CapabilityAdmin:
		if !claims.Value.IsAdmin {
			return DecisionForbidden
		}
	}
	return DecisionAllowed
}
