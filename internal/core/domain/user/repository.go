package user

import (
	"context"
	c "studiobooking/internal/core/domain/common"
	"time"
)

type UpdateUserInput struct {
	UserID   ID
	FullName c.Optional[string]
	IsActive c.Optional[bool]
	At       time.Time
}

type UserRepository interface {
	GetByID(ctx context.Context, id ID) (User, error)
	GetByEmail(ctx context.Context, email c.Email) (User, error)
	List(ctx context.Context) ([]User, error)
	// SetPassword replaces the stored hash and bumps the update timestamp.
	SetPassword(ctx context.Context, id ID, password PasswordHash, at time.Time) error
	Update(ctx context.Context, input UpdateUserInput) (User, error)
	SetAdminStatus(ctx context.Context, id ID, isAdmin bool, at time.Time) (User, error)
}
