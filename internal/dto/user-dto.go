package dto

// UserPublicDTO - пользователь сессии. Эта же структура лежит в cookie userData.
type UserPublicDTO struct {
	ID          uint64   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone_number,omitempty"`
	RoleID      uint64   `json:"role_id"`
	Role        string   `json:"role"`
	Status      string   `json:"status"`
	Permissions []string `json:"permissions"`
}
