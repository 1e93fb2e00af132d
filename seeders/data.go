package seeders

import "admin-console/internal/authz"

// AdminRoleName - роль, которой выдаются все права.
const AdminRoleName = "Администратор"

type roleSeed struct {
	Name        string
	Description string
	Permissions []string
}

var rolesData = []roleSeed{
	{Name: AdminRoleName, Description: "Полный доступ к консоли"},
	{
		Name:        "Финансы",
		Description: "Эскроу, кошельки, споры",
		Permissions: []string{
			authz.CanViewEscrows, authz.CanListEscrows, authz.CanViewLedger,
			authz.CanViewWallets, authz.CanListWallets, authz.CanViewTransactions,
			authz.CanViewDisputes, authz.CanListDisputes,
		},
	},
	{
		Name:        "Поддержка",
		Description: "Обращения и карточки пользователей",
		Permissions: []string{
			authz.CanViewUsers, authz.CanListUsers, authz.CanViewGroups,
			authz.CanViewTickets, authz.CanListTickets,
		},
	},
	{
		Name:        "Контент",
		Description: "Медиатека и авторы",
		Permissions: []string{authz.CanViewMedia, authz.CanUploadMedia, authz.CanViewCreators},
	},
	{
		Name:        "Аналитик",
		Description: "Только отчёты",
		Permissions: []string{authz.CanViewAnalytics, authz.CanViewLedger},
	},
}

// permissionsFor - права роли; администратор получает всё.
func permissionsFor(r roleSeed) []string {
	if r.Name != AdminRoleName {
		return r.Permissions
	}
	out := make([]string, 0, len(authz.AllPermissions))
	for _, p := range authz.AllPermissions {
		out = append(out, p.Title)
	}
	return out
}
