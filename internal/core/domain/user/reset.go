package user

import (
	"context"
	"crypto/subtle"
	"time"
)

// ResetToken is the secret value mailed to the user. It proves control of the
// account's registered email and substitutes for the password exactly once.
type ResetToken string

func (t ResetToken) String() string {
	return "***"
}

// PasswordReset is the single outstanding reset attempt for a user.
// Putting a new one for the same user invalidates the previous one.
type PasswordReset struct {
	UserID    ID
	Token     ResetToken
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Matches compares the presented token in constant time.
func (r PasswordReset) Matches(token ResetToken) bool {
	return subtle.ConstantTimeCompare([]byte(r.Token), []byte(token)) == 1
}

func (r PasswordReset) IsExpired(now time.Time) bool {
	return !now.Before(r.ExpiresAt)
}

type PasswordResetRepository interface {
	// Put stores the reset, overwriting any existing one for the same user.
	Put(ctx context.Context, reset PasswordReset) error
	Get(ctx context.Context, userID ID) (PasswordReset, error)
	// DeleteMatching deletes the reset only if the stored token still equals
	// the given one. Returns false if nothing matched (already consumed,
	// superseded, or never existed).
	DeleteMatching(ctx context.Context, userID ID, token ResetToken) (bool, error)
}

type ResetTokenGenerator interface {
	GenerateResetToken() ResetToken
}

type ResetTokenSender interface {
	SendResetToken(ctx context.Context, u User, token ResetToken) error
}
