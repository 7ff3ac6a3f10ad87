package user

import (
	"errors"
)

var (
	ErrUserDoesNotExist  = errors.New("user does not exist")
	ErrPasswordIsTooWeak = errors.New("password is too weak")
	ErrInvalidResetToken = errors.New("invalid password reset token")
	ErrResetDoesNotExist = errors.New("password reset does not exist")
)
