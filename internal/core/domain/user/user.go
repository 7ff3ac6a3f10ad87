package user

import (
	c "studiobooking/internal/core/domain/common"
	"time"
)

// ID is the opaque user identifier assigned by the user directory.
type ID string

type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

// MinPasswordLength is the floor enforced on every password change.
const MinPasswordLength = 8

func (p RawPassword) IsTooWeak() bool {
	return len(p) < MinPasswordLength
}

type User struct {
	ID           ID
	Email        c.Email
	PasswordHash PasswordHash
	FullName     string
	IsActive     bool
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    c.Optional[time.Time]
}
