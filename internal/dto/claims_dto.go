package dto

// UserClaims - то, что достаётся из access-токена и кладётся в контекст запроса.
type UserClaims struct {
	UserID      uint64
	RoleID      uint64
	Permissions []string
}
