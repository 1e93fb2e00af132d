// internal/authz/permissions.go
package authz

// --- СПИСОК ВСЕХ ПЕРМИШЕНОВ КОНСОЛИ ---

const (
	// Эскроу
	CanViewEscrows = "can_view_escrows"
	CanListEscrows = "can_list_escrows"
	CanViewLedger  = "can_view_ledger"

	// Кошельки
	CanViewWallets      = "can_view_wallets"
	CanListWallets      = "can_list_wallets"
	CanViewTransactions = "can_view_transactions"

	// Споры
	CanViewDisputes = "can_view_disputes"
	CanListDisputes = "can_list_disputes"

	// Пользователи и группы
	CanViewUsers    = "can_view_users"
	CanListUsers    = "can_list_users"
	CanViewGroups   = "can_view_groups"
	CanListGroups   = "can_list_groups"
	CanViewCreators = "can_view_creators"

	// Медиа
	CanViewMedia   = "can_view_media"
	CanUploadMedia = "can_upload_media"

	// Поддержка
	CanViewTickets = "can_view_tickets"
	CanListTickets = "can_list_tickets"

	// Система
	CanViewRoles       = "can_view_roles"
	CanListRoles       = "can_list_roles"
	CanEditRoles       = "can_edit_roles"
	CanViewPermissions = "can_view_permissions"

	// Аналитика
	CanViewAnalytics = "can_view_analytics"
)

// PermissionInfo - описание права для сидера и выгрузки.
type PermissionInfo struct {
	Title       string
	Description string
}

// AllPermissions - полный список прав в порядке показа.
var AllPermissions = []PermissionInfo{
	{CanViewEscrows, "Просмотр эскроу-сделок"},
	{CanListEscrows, "Список эскроу-сделок"},
	{CanViewLedger, "Просмотр проводок"},
	{CanViewWallets, "Просмотр кошельков"},
	{CanListWallets, "Список кошельков"},
	{CanViewTransactions, "Просмотр транзакций"},
	{CanViewDisputes, "Просмотр споров"},
	{CanListDisputes, "Список споров"},
	{CanViewUsers, "Просмотр пользователей"},
	{CanListUsers, "Список пользователей"},
	{CanViewGroups, "Просмотр групп"},
	{CanListGroups, "Список групп"},
	{CanViewCreators, "Просмотр авторов"},
	{CanViewMedia, "Просмотр медиатеки"},
	{CanUploadMedia, "Загрузка медиа"},
	{CanViewTickets, "Просмотр обращений"},
	{CanListTickets, "Список обращений"},
	{CanViewRoles, "Просмотр ролей"},
	{CanListRoles, "Список ролей"},
	{CanEditRoles, "Изменение прав ролей"},
	{CanViewPermissions, "Просмотр прав"},
	{CanViewAnalytics, "Просмотр аналитики"},
}
