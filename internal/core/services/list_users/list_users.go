package listusers

import (
	"context"
	"errors"
	e "studiobooking/internal/core/domain/errors"
	"studiobooking/internal/core/domain/logging"
	"studiobooking/internal/core/domain/user"
)

type Input struct{}

type Result struct {
	Users []user.User
}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
) *service {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	return &service{
		log:            log,
		userRepository: userRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	users, err := s.userRepository.List(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not list users.", logging.Entry("err", err))
		return result, err
	}
	return Result{Users: users}, nil
}
