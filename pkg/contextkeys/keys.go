package contextkeys

type contextKey string

const (
	UserIDKey          contextKey = "UserID"
	RoleIDKey          contextKey = "RoleID"
	UserPermissionsKey contextKey = "UserPermissions"
	CheckerKey         contextKey = "PermissionChecker"
	RequestIDKey       contextKey = "RequestID"
)
