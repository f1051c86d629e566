package domain

import "time"

type UserRole string

const (
	RoleTenant UserRole = "tenant"
	RoleOwner  UserRole = "owner"
	RoleAdmin  UserRole = "admin"
)

type UserStatus string

const (
	UserActive  UserStatus = "active"
	UserBlocked UserStatus = "blocked"
)

type User struct {
	ID           int64      `json:"id"`
	Email        string     `json:"email" validate:"required,email" gorm:"uniqueIndex;size:100"`
	Name         string     `json:"name"`
	PasswordHash string     `json:"-"`
	Birthday     *time.Time `json:"birthday,omitempty"`
	Role         UserRole   `json:"role" gorm:"size:20;index"`
	PhotoURL     string     `json:"photo_url,omitempty"`
	Status       UserStatus `json:"status" gorm:"size:20;default:'active'"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// CanHavePhoto reports whether this role carries a profile photo.
// Admins never do; the photo field is a tenant/owner capability.
func (u *User) CanHavePhoto() bool {
	return u.Role == RoleTenant || u.Role == RoleOwner
}
