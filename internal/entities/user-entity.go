// Файл: internal/entities/user-entity.go
package entities

import (
	"github.com/aarondl/null/v8"

	"admin-console/pkg/types"
)

const (
	UserStatusActive  = "ACTIVE"
	UserStatusBlocked = "BLOCKED"
)

type User struct {
	ID          uint64      `json:"id" db:"id"`
	Name        string      `json:"name" db:"name"`
	Email       string      `json:"email" db:"email"`
	PhoneNumber null.String `json:"phone_number" db:"phone_number"`

	Password string `json:"-" db:"password"`

	RoleID      uint64    `json:"role_id" db:"role_id"`
	StatusCode  string    `json:"status_code" db:"status_code"`
	LastLoginAt null.Time `json:"last_login_at" db:"last_login_at"`

	// Role заполняется, только если загружена вместе с правами.
	Role *Role `json:"role,omitempty" db:"-"`

	types.BaseEntity
	types.SoftDelete
}

func (u *User) IsActive() bool {
	return u.StatusCode == UserStatusActive && u.DeletedAt == nil
}
