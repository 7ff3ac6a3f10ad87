package completepasswordreset

import (
	"context"
	"errors"
	"studiobooking/internal/core/domain/alerting"
	e "studiobooking/internal/core/domain/errors"
	"studiobooking/internal/core/domain/logging"
	"studiobooking/internal/core/domain/user"
	"time"
)

type Input struct {
	UserID      user.ID
	Token       user.ResetToken
	NewPassword user.RawPassword
}

type Result struct{}

type service struct {
	log             logging.Logger
	alerter         alerting.Alerter
	userRepository  user.UserRepository
	resetRepository user.PasswordResetRepository
	passwordHasher  user.PasswordHasher
	now             func() time.Time
}

func New(
	log logging.Logger,
	alerter alerting.Alerter,
	userRepository user.UserRepository,
	resetRepository user.PasswordResetRepository,
	passwordHasher user.PasswordHasher,
	now func() time.Time,
) *service {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if alerter == nil {
		panic(e.NewNilArgumentError("alerter"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if resetRepository == nil {
		panic(e.NewNilArgumentError("resetRepository"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:             log,
		alerter:         alerter,
		userRepository:  userRepository,
		resetRepository: resetRepository,
		passwordHasher:  passwordHasher,
		now:             now,
	}
}

// Run re-validates the token, consumes it with a compare-and-delete and only
// then updates the password hash. The conditional delete is the serialization
// point: of two concurrent calls with the same token exactly one deletes the
// row, the loser gets ErrInvalidResetToken and changes nothing.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if input.NewPassword.IsTooWeak() {
		return result, user.ErrPasswordIsTooWeak
	}

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

	newPasswordHash, err := s.passwordHasher.HashPassword(input.NewPassword)
	if err != nil {
		s.log.Error(ctx, "Could not hash new password.", logging.Entry("err", err))
		return result, err
	}

	deleted, err := s.resetRepository.DeleteMatching(ctx, input.UserID, input.Token)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return result, err
		}
		s.log.Error(
			ctx,
			"Could not consume password reset token.",
			logging.Entry("userID", input.UserID),
			logging.Entry("err", err),
		)
		return result, err
	}
	if !deleted {
		// Lost the race, the token was consumed or superseded meanwhile.
		return result, user.ErrInvalidResetToken
	}

	err = s.userRepository.SetPassword(ctx, input.UserID, newPasswordHash, s.now())
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Warning(ctx, "User vanished during password reset.", logging.Entry("userID", input.UserID))
		return result, user.ErrInvalidResetToken
	}
	if err != nil {
		// The token is already burned but the password is unchanged,
		// the user has to restart the flow.
		s.log.Error(
			ctx,
			"Could not update password after consuming reset token.",
			logging.Entry("userID", input.UserID),
			logging.Entry("err", err),
		)
		s.alerter.CaptureError(err)
		return result, err
	}

	s.log.Info(ctx, "New password has been successfully set.", logging.Entry("userID", input.UserID))
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
