package entities

import (
	"admin-console/pkg/types"
)

type Role struct {
	ID              uint64           `json:"id" db:"id"`
	Name            string           `json:"name" db:"name"`
	Description     string           `json:"description" db:"description"`
	RolePermissions []RolePermission `json:"role_permissions" db:"-"`

	types.BaseEntity
}
