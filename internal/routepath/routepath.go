// Package routepath - все пути консоли в одном месте.
// Параметризованные пути используют один сегмент-шаблон ":id", тот же, что и у echo.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root         = "/"
	Login        = "/login"
	Unauthorized = "/unauthorized"
	AdminPrefix  = "/admin"
	ParamID      = ":id"
)

const (
	Dashboard = "/admin/dashboard"
	Profile   = "/admin/profile"
)

const (
	EscrowDashboard     = "/admin/escrow/dashboard"
	Escrows             = "/admin/escrow/escrows"
	EscrowDetailPattern = "/admin/escrow/escrows/:id"
	Ledger              = "/admin/escrow/ledger"
)

const (
	Wallets             = "/admin/wallets/wallets"
	WalletDetailPattern = "/admin/wallets/wallets/:id"
	WalletTransactions  = "/admin/wallets/transactions"
)

const (
	Disputes             = "/admin/disputes/disputes"
	DisputeDetailPattern = "/admin/disputes/disputes/:id"
)

const (
	UserDetails        = "/admin/users/user-details"
	UserDetailPattern  = "/admin/users/user-details/:id"
	Groups             = "/admin/users/groups"
	GroupDetailPattern = "/admin/users/groups/:id"
	Creators           = "/admin/users/creators"
)

const (
	MediaLibrary = "/admin/media/library"
	MediaUpload  = "/admin/media/upload"
)

const (
	SupportTickets       = "/admin/support/tickets"
	SupportTicketPattern = "/admin/support/tickets/:id"
)

const (
	Roles             = "/admin/system/roles"
	RoleDetailPattern = "/admin/system/roles/:id"
	Permissions       = "/admin/system/permissions"
)

const (
	AnalyticsOverview = "/admin/analytics/overview"
)

func EscrowDetail(escrowID string) string {
	return Escrows + "/" + escapeSegment(escrowID)
}

func WalletDetail(walletID string) string {
	return Wallets + "/" + escapeSegment(walletID)
}

func DisputeDetail(disputeID string) string {
	return Disputes + "/" + escapeSegment(disputeID)
}

func UserDetail(userID string) string {
	return UserDetails + "/" + escapeSegment(userID)
}

func GroupDetail(groupID string) string {
	return Groups + "/" + escapeSegment(groupID)
}

func SupportTicket(ticketID string) string {
	return SupportTickets + "/" + escapeSegment(ticketID)
}

func RoleDetail(roleID string) string {
	return Roles + "/" + escapeSegment(roleID)
}

// UnauthorizedFrom - адрес страницы отказа с исходным путём в параметре from.
func UnauthorizedFrom(target, from string) string {
	if target == "" {
		target = Unauthorized
	}
	if from == "" {
		return target
	}
	return target + "?" + url.Values{"from": []string{from}}.Encode()
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
