package requestpasswordreset

import (
	"context"
	"errors"
	"studiobooking/internal/core/domain/alerting"
	c "studiobooking/internal/core/domain/common"
	e "studiobooking/internal/core/domain/errors"
	"studiobooking/internal/core/domain/logging"
	"studiobooking/internal/core/domain/user"
	"time"
)

type Input struct {
	Email c.Email
}

func (i Input) GetRateLimitKey() string {
	return "request-password-reset::" + string(i.Email)
}

type Result struct {
	// Token is never rendered to the caller, the HTTP handler exposes it
	// through a header in test mode only.
	Token user.ResetToken
}

type service struct {
	log             logging.Logger
	alerter         alerting.Alerter
	userRepository  user.UserRepository
	resetRepository user.PasswordResetRepository
	tokenGenerator  user.ResetTokenGenerator
	tokenSender     user.ResetTokenSender
	tokenTTL        time.Duration
	now             func() time.Time
}

func New(
	log logging.Logger,
	alerter alerting.Alerter,
	userRepository user.UserRepository,
	resetRepository user.PasswordResetRepository,
	tokenGenerator user.ResetTokenGenerator,
	tokenSender user.ResetTokenSender,
	tokenTTL time.Duration,
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
	if tokenGenerator == nil {
		panic(e.NewNilArgumentError("tokenGenerator"))
	}
	if tokenSender == nil {
		panic(e.NewNilArgumentError("tokenSender"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:             log,
		alerter:         alerter,
		userRepository:  userRepository,
		resetRepository: resetRepository,
		tokenGenerator:  tokenGenerator,
		tokenSender:     tokenSender,
		tokenTTL:        tokenTTL,
		now:             now,
	}
}

// Run never tells the caller whether the email is registered. Every outcome
// except a canceled context maps to the same generic acknowledgment, internal
// failures are logged and alerted instead.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	u, err := s.userRepository.GetByEmail(ctx, input.Email)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Info(ctx, "User not found for password reset request.", logging.Entry("email", input.Email))
		return result, nil
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user for password reset request.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		s.alerter.CaptureError(err)
		return result, nil
	}

	now := s.now()
	reset := user.PasswordReset{
		UserID:    u.ID,
		Token:     s.tokenGenerator.GenerateResetToken(),
		ExpiresAt: now.Add(s.tokenTTL),
		CreatedAt: now,
	}
	if err := s.resetRepository.Put(ctx, reset); err != nil {
		if errors.Is(err, context.Canceled) {
			return result, err
		}
		s.log.Error(
			ctx,
			"Could not store password reset token.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		s.alerter.CaptureError(err)
		return result, nil
	}

	if err := s.tokenSender.SendResetToken(ctx, u, reset.Token); err != nil {
		if errors.Is(err, context.Canceled) {
			return result, err
		}
		s.log.Error(
			ctx,
			"Could not send password reset token.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		s.alerter.CaptureError(err)
		return result, nil
	}

	s.log.Info(ctx, "Password reset token has been sent.", logging.Entry("userID", u.ID))
	return Result{Token: reset.Token}, nil
}
