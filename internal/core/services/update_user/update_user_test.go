package updateuser

import (
	"context"
	c "studiobooking/internal/core/domain/common"
	"studiobooking/internal/core/domain/logging"
	"studiobooking/internal/core/domain/user"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const USER_ID = user.ID("user-1")

var NOW time.Time = time.Date(2023, 2, 11, 15, 30, 0, 0, time.UTC)

func setup() (*user.FakeUserRepository, *service) {
	userRepo := user.NewFakeUserRepository()
	userRepo.Users = []user.User{{
		ID:       USER_ID,
		Email:    "test@test.test",
		FullName: "Old Name",
		IsActive: true,
	}}
	s := New(logging.NewFakeLogger(), userRepo, func() time.Time { return NOW })
	return userRepo, s
}

func TestPartialUpdate(t *testing.T) {
	cases := []struct {
		id               string
		input            Input
		expectedFullName string
		expectedIsActive bool
	}{
		{
			id:               "full name only",
			input:            Input{UserID: USER_ID, FullName: c.NewOptional("New Name", true)},
			expectedFullName: "New Name",
			expectedIsActive: true,
		},
		{
			id:               "deactivate only",
			input:            Input{UserID: USER_ID, IsActive: c.NewOptional(false, true)},
			expectedFullName: "Old Name",
			expectedIsActive: false,
		},
		{
			id: "both",
			input: Input{
				UserID:   USER_ID,
				FullName: c.NewOptional("New Name", true),
				IsActive: c.NewOptional(false, true),
			},
			expectedFullName: "New Name",
			expectedIsActive: false,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			// Setup ---
			_, service := setup()

			// Exercise ---
			result, err := service.Run(context.Background(), testcase.input)

			// Verify ---
			require.NoError(t, err)
			require.Equal(t, testcase.expectedFullName, result.User.FullName)
			require.Equal(t, testcase.expectedIsActive, result.User.IsActive)
			require.True(t, result.User.UpdatedAt.IsPresent)
		})
	}
}

func TestUserDoesNotExist(t *testing.T) {
	// Setup ---
	_, service := setup()

	// Exercise ---
	_, err := service.Run(context.Background(), Input{UserID: user.ID("unknown")})

	// Verify ---
	require.ErrorIs(t, err, user.ErrUserDoesNotExist)
}
