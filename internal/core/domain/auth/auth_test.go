package auth

import (
	c "studiobooking/internal/core/domain/common"
	"studiobooking/internal/core/domain/user"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		id         string
		claims     c.Optional[Claims]
		capability Capability
		expected   Decision
	}{
		{
			id:         "no claims",
			claims:     c.Optional[Claims]{},
			capability: CapabilityAdmin,
			expected:   DecisionUnauthenticated,
		},
		{
			id:         "authenticated but not admin",
			claims:     c.NewOptional(Claims{UserID: user.ID("u-1")}, true),
			capability: CapabilityAdmin,
			expected:   DecisionForbidden,
		},
		{
			id:         "admin",
			claims:     c.NewOptional(Claims{UserID: user.ID("u-1"), IsAdmin: true}, true),
			capability: CapabilityAdmin,
			expected:   DecisionAllowed,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			decision := Evaluate(testcase.claims, testcase.capability)
			require.Equal(t, testcase.expected, decision)
		})
	}
}
