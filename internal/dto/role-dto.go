package dto

type RoleDTO struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// RoleDetailsDTO - роль вместе со связями на права.
type RoleDetailsDTO struct {
	RoleDTO
	RolePermissions []RolePermissionDTO `json:"role_permissions"`
}

type RolePermissionDTO struct {
	ID         uint64        `json:"id"`
	Permission PermissionDTO `json:"permission"`
}

type UpdateRolePermissionsDTO struct {
	PermissionIDs []uint64 `json:"permission_ids" validate:"required,min=1,dive,gt=0"`
}
