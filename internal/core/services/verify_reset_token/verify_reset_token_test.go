package verifyresettoken

import (
	"context"
	"studiobooking/internal/core/domain/logging"
	"studiobooking/internal/core/domain/user"
	"studiobooking/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const (
	USER_ID = user.ID("user-1")
	TOKEN   = "test-reset-token"
)

var NOW time.Time = time.Date(2023, 2, 11, 15, 30, 0, 0, time.UTC)

type suite struct {
	log       *logging.FakeLogger
	resetRepo *user.FakePasswordResetRepository
}

func setupSuite() *suite {
	return &suite{
		log:       logging.NewFakeLogger(),
		resetRepo: user.NewFakePasswordResetRepository(),
	}
}

func (s *suite) storeReset(token string, expiresAt time.Time) {
	s.resetRepo.Resets[USER_ID] = user.PasswordReset{
		UserID:    USER_ID,
		Token:     user.ResetToken(token),
		ExpiresAt: expiresAt,
		CreatedAt: expiresAt.Add(-24 * time.Hour),
	}
}

func (s *suite) createService() services.Service[Input, Result] {
	return New(s.log, s.resetRepo, func() time.Time { return NOW })
}

func TestTokenValid(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	suite.storeReset(TOKEN, NOW.Add(time.Hour))
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(context.Background(), Input{UserID: USER_ID, Token: TOKEN})

	// Verify ---
	require.NoError(t, err)
}

func TestTokenInvalid(t *testing.T) {
	cases := []struct {
		id          string
		storedToken string
		expiresAt   time.Time
		inputToken  string
	}{
		{
			id:          "wrong token value",
			storedToken: TOKEN,
			expiresAt:   NOW.Add(time.Hour),
			inputToken:  "another-token",
		},
		{
			id:          "expired",
			storedToken: TOKEN,
			expiresAt:   NOW.Add(-time.Second),
			inputToken:  TOKEN,
		},
		{
			id:          "expires exactly now",
			storedToken: TOKEN,
			expiresAt:   NOW,
			inputToken:  TOKEN,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			// Setup ---
			suite := setupSuite()
			suite.storeReset(testcase.storedToken, testcase.expiresAt)
			service := suite.createService()

			// Exercise ---
			_, err := service.Run(
				context.Background(),
				Input{UserID: USER_ID, Token: user.ResetToken(testcase.inputToken)},
			)

			// Verify ---
			require.ErrorIs(t, err, user.ErrInvalidResetToken)
		})
	}
}

func TestNoTokenStored(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(context.Background(), Input{UserID: USER_ID, Token: TOKEN})

	// Verify ---
	require.ErrorIs(t, err, user.ErrInvalidResetToken)
}

func TestVerificationDoesNotConsumeToken(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	suite.storeReset(TOKEN, NOW.Add(time.Hour))
	service := suite.createService()

	// Exercise ---
	for i := 0; i < 3; i++ {
		_, err := service.Run(context.Background(), Input{UserID: USER_ID, Token: TOKEN})
		require.NoError(t, err)
	}

	// Verify ---
	require.Len(t, suite.resetRepo.Resets, 1)
}

func TestTransientReadErrorRetriedOnce(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	suite.storeReset(TOKEN, NOW.Add(time.Hour))
	suite.resetRepo.FailGets = 1
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(context.Background(), Input{UserID: USER_ID, Token: TOKEN})

	// Verify ---
	require.NoError(t, err)
}

func TestPersistentReadErrorSurfaces(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	suite.storeReset(TOKEN, NOW.Add(time.Hour))
	suite.resetRepo.FailGets = 2
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(context.Background(), Input{UserID: USER_ID, Token: TOKEN})

	// Verify ---
	require.Error(t, err)
	require.NotErrorIs(t, err, user.ErrInvalidResetToken)
}
