package auth

import (
	"context"
	"studiobooking/internal/core/domain/auth"
	c "studiobooking/internal/core/domain/common"
	e "studiobooking/internal/core/domain/errors"
	"studiobooking/internal/core/services"
)

type contextClaims string

const CONTEXT_CLAIMS_KEY = contextClaims("authClaims")

// ClaimsFromContext returns the caller claims injected by the HTTP layer,
// absent when the request carried no valid identity.
func ClaimsFromContext(ctx context.Context) c.Optional[auth.Claims] {
	claims, ok := ctx.Value(CONTEXT_CLAIMS_KEY).(auth.Claims)
	return c.NewOptional(claims, ok)
}

type service[T any, S any] struct {
	capability auth.Capability
	inner      services.Service[T, S]
}

// WithAuthorization gates the inner service behind the capability check.
// The gate runs before the inner service sees the input.
func WithAuthorization[T any, S any](
	capability auth.Capability,
	inner services.Service[T, S],
) services.Service[T, S] {
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &service[T, S]{
		capability: capability,
		inner:      inner,
	}
}

func (s *service[T, S]) Run(ctx context.Context, input T) (result S, err error) {
	switch auth.Evaluate(ClaimsFromContext(ctx), s.capability) {
	case auth.DecisionUnauthenticated:
		return result, auth.ErrUnauthenticated
	case auth.DecisionForbidden:
		return result, auth.ErrForbidden
	}
	return s.inner.Run(ctx, input)
}
