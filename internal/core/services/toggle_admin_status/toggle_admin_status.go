package toggleadminstatus

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
}

type Result struct {
	User user.User
}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
	now            func() time.Time
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	now func() time.Time,
) *service {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		userRepository: userRepository,
		now:            now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	u, err := s.userRepository.GetByID(ctx, input.UserID)
	if errors.Is(err, context.Canceled) || errors.Is(err, user.ErrUserDoesNotExist) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user for admin status toggle.",
			logging.Entry("userID", input.UserID),
			logging.Entry("err", err),
		)
		return result, err
	}

	updated, err := s.userRepository.SetAdminStatus(ctx, u.ID, !u.IsAdmin, s.now())
	if errors.Is(err, context.Canceled) || errors.Is(err, user.ErrUserDoesNotExist) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not toggle user admin status.",
			logging.Entry("userID", input.UserID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"User admin status has been toggled.",
		logging.Entry("userID", u.ID),
		logging.Entry("isAdmin", updated.IsAdmin),
	)
	return Result{User: updated}, nil
}
