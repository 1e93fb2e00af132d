package authz

import (
	"strings"

	"admin-console/internal/entities"
)

// FlattenRolePermissions превращает role.role_permissions[].permissions.title
// в плоский список: без пустых и повторов, в порядке первого появления.
func FlattenRolePermissions(role *entities.Role) []string {
	if role == nil {
		return []string{}
	}
	seen := make(map[string]struct{}, len(role.RolePermissions))
	out := make([]string, 0, len(role.RolePermissions))
	for _, rp := range role.RolePermissions {
		title := strings.TrimSpace(rp.Permission.Title)
		if title == "" {
			continue
		}
		if _, dup := seen[title]; dup {
			continue
		}
		seen[title] = struct{}{}
		out = append(out, title)
	}
	return out
}
