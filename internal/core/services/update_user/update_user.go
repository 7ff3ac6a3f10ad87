package updateuser

import (
	"context"
	"errors"
	c "studiobooking/internal/core/domain/common"
	e "studiobooking/internal/core/domain/errors"
	"studiobooking/internal/core/domain/logging"
	"studiobooking/internal/core/domain/user"
	"time"
)

type Input struct {
	UserID   user.ID
	FullName c.Optional[string]
	IsActive c.Optional[bool]
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
	u, err := s.userRepository.Update(ctx, user.UpdateUserInput{
		UserID:   input.UserID,
		FullName: input.FullName,
		IsActive: input.IsActive,
		At:       s.now(),
	})
	if errors.Is(err, context.Canceled) || errors.Is(err, user.ErrUserDoesNotExist) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not update user.",
			logging.Entry("userID", input.UserID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(ctx, "User has been updated.", logging.Entry("userID", input.UserID))
	return Result{User: u}, nil
}
