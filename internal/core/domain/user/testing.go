package user

import (
	"context"
	"crypto/md5"
	"fmt"
	"io"
	c "studiobooking/internal/core/domain/common"
	"sync"
	"time"
)

type FakeUserRepository struct {
	Users       []User
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{Users: make([]User, 0, 10)}
}

func (r *FakeUserRepository) GetByID(ctx context.Context, id ID) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not get user %s", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) GetByEmail(ctx context.Context, email c.Email) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not get user by email %s", email)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) List(ctx context.Context) ([]User, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not list users")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	users := make([]User, len(r.Users))
	copy(users, r.Users)
	return users, nil
}

func (r *FakeUserRepository) SetPassword(ctx context.Context, id ID, password PasswordHash, at time.Time) error {
	if r.ReturnError {
		return fmt.Errorf("could not set password for user %s", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix := range r.Users {
		if r.Users[ix].ID == id {
			r.Users[ix].PasswordHash = password
			r.Users[ix].UpdatedAt = c.NewOptional(at, true)
			return nil
		}
	}
	return ErrUserDoesNotExist
}

func (r *FakeUserRepository) Update(ctx context.Context, input UpdateUserInput) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not update user %s", input.UserID)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix := range r.Users {
		if r.Users[ix].ID == input.UserID {
			if input.FullName.IsPresent {
				r.Users[ix].FullName = input.FullName.Value
			}
			if input.IsActive.IsPresent {
				r.Users[ix].IsActive = input.IsActive.Value
			}
			r.Users[ix].UpdatedAt = c.NewOptional(input.At, true)
			return r.Users[ix], nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) SetAdminStatus(ctx context.Context, id ID, isAdmin bool, at time.Time) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not set admin status for user %s", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix := range r.Users {
		if r.Users[ix].ID == id {
			r.Users[ix].IsAdmin = isAdmin
			r.Users[ix].UpdatedAt = c.NewOptional(at, true)
			return r.Users[ix], nil
		}
	}
	return u, ErrUserDoesNotExist
}

type FakePasswordResetRepository struct {
	Resets      map[ID]PasswordReset
	ReturnError bool
	// FailGets makes the next N Get calls fail, transient store errors.
	FailGets int
	lock     sync.Mutex
}

func NewFakePasswordResetRepository() *FakePasswordResetRepository {
	return &FakePasswordResetRepository{Resets: make(map[ID]PasswordReset)}
}

func (r *FakePasswordResetRepository) Put(ctx context.Context, reset PasswordReset) error {
	if r.ReturnError {
		return fmt.Errorf("could not store password reset for user %s", reset.UserID)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Resets[reset.UserID] = reset
	return nil
}

func (r *FakePasswordResetRepository) Get(ctx context.Context, userID ID) (reset PasswordReset, err error) {
	if r.ReturnError {
		return reset, fmt.Errorf("could not get password reset for user %s", userID)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.FailGets > 0 {
		r.FailGets--
		return reset, fmt.Errorf("transient store error")
	}
	reset, ok := r.Resets[userID]
	if !ok {
		return reset, ErrResetDoesNotExist
	}
	return reset, nil
}

func (r *FakePasswordResetRepository) DeleteMatching(
	ctx context.Context,
	userID ID,
	token ResetToken,
) (bool, error) {
	if r.ReturnError {
		return false, fmt.Errorf("could not delete password reset for user %s", userID)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	reset, ok := r.Resets[userID]
	if !ok || reset.Token != token {
		return false, nil
	}
	delete(r.Resets, userID)
	return true, nil
}

type FakePasswordHasher struct{}

func NewFakePasswordHasher() *FakePasswordHasher {
	return &FakePasswordHasher{}
}

func (h *FakePasswordHasher) HashPassword(password RawPassword) (PasswordHash, error) {
	hash := md5.New()
	io.WriteString(hash, string(password))
	return PasswordHash(fmt.Sprintf("%x", hash.Sum(nil))), nil
}

func (h *FakePasswordHasher) ValidatePassword(password RawPassword, hash PasswordHash) bool {
	actualHash, err := h.HashPassword(password)
	if err != nil {
		return false
	}
	return actualHash == hash
}

type FakeResetTokenGenerator struct {
	Token ResetToken
}

func NewFakeResetTokenGenerator(token string) *FakeResetTokenGenerator {
	return &FakeResetTokenGenerator{Token: ResetToken(token)}
}

func (g *FakeResetTokenGenerator) GenerateResetToken() ResetToken {
	return g.Token
}

type FakeResetTokenSender struct {
	Sent        []SentResetToken
	ReturnError bool
	lock        sync.Mutex
}

type SentResetToken struct {
	User  User
	Token ResetToken
}

func NewFakeResetTokenSender() *FakeResetTokenSender {
	return &FakeResetTokenSender{}
}

func (s *FakeResetTokenSender) SendResetToken(ctx context.Context, u User, token ResetToken) error {
	if s.ReturnError {
		return fmt.Errorf("could not send reset token to user %s", u.ID)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, SentResetToken{User: u, Token: token})
	return nil
}

func (s *FakeResetTokenSender) SentCount() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.Sent)
}

func (s *FakeResetTokenSender) LastSent() SentResetToken {
	s.lock.Lock()
	defer s.lock.Unlock()
	l := len(s.Sent)
	if l == 0 {
		panic("Sent count is 0.")
	}
	return s.Sent[l-1]
}
