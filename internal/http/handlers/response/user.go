package response

import (
	"studiobooking/internal/core/domain/user"
	"time"
)

type User struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	FullName  string     `json:"full_name"`
	IsActive  bool       `json:"is_active"`
	IsAdmin   bool       `json:"is_admin"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func (u *User) FromDomainUser(du user.User) {
	u.ID = string(du.ID)
	u.Email = string(du.Email)
	u.FullName = du.FullName
	u.IsActive = du.IsActive
	u.IsAdmin = du.IsAdmin
	u.CreatedAt = du.CreatedAt
	if du.UpdatedAt.IsPresent {
		updatedAt := du.UpdatedAt.Value
		u.UpdatedAt = &updatedAt
	}
}
