package verifyresettoken

import (
	"context"
	"errors"
	e "studiobooking/internal/core/domain/errors"
	"studiobooking/internal/core/domain/logging"
	"studiobooking/internal/core/domain/user"
	"time"
)

type Input struct {
	UserID user.ID
	Token  user.ResetToken
}

type Result struct{}

type service struct {
	log             logging.Logger
	resetRepository user.PasswordResetRepository
	now             func() time.Time
}

func New(
	log logging.Logger,
	resetRepository user.PasswordResetRepository,
	now func() time.Time,
) *service {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if resetRepository == nil {
		panic(e.NewNilArgumentError("resetRepository"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:             log,
		resetRepository: resetRepository,
		now:             now,
	}
}

// Run checks token validity without consuming it, so a client can probe
// before submitting a new password.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	reset, err := getReset(ctx, s.resetRepository, input.UserID)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrResetDoesNotExist) {
		return result, user.ErrInvalidResetToken
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get password reset token.",
			logging.Entry("userID", input.UserID),
			logging.Entry("err", err),
		)
		return result, err
	}

	if !reset.Matches(input.Token) || reset.IsExpired(s.now()) {
		return result, user.ErrInvalidResetToken
	}
	return result, nil
}

// getReset retries a failed lookup once, the read is idempotent.
func getReset(
	ctx context.Context,
	repo user.PasswordResetRepository,
	userID user.ID,
) (user.PasswordReset, error) {
	reset, err := repo.Get(ctx, userID)
	if err == nil || errors.Is(err, user.ErrResetDoesNotExist) || errors.Is(err, context.Canceled) {
		return reset, err
	}
	return repo.Get(ctx, userID)
}
