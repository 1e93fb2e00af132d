package entities

// RolePermission - связь роли и права, вместе с самим правом.
type RolePermission struct {
	ID           uint64     `json:"id" db:"id"`
	RoleID       uint64     `json:"role_id" db:"role_id"`
	PermissionID uint64     `json:"permission_id" db:"permission_id"`
	Permission   Permission `json:"permissions" db:"-"`
}
