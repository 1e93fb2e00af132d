package navigation

import (
	"admin-console/internal/authz"
	"admin-console/internal/routepath"
)

// DefaultTree - меню консоли. Строится один раз, во время работы не меняется.
var DefaultTree = []Node{
	Link{Path: routepath.Dashboard, Title: "Главная", Icon: "home"},
	Section{
		Title: "Финансы",
		Items: []SectionItem{
			Dropdown{
				Key: "escrow", Title: "Эскроу", Icon: "shield",
				Items: []Link{
					{Path: routepath.EscrowDashboard, Title: "Сводка", Icon: "chart"},
					{Path: routepath.Escrows, Title: "Сделки", Icon: "list"},
					{Path: routepath.Ledger, Title: "Проводки", Icon: "book"},
				},
			},
			Dropdown{
				Key: "wallets", Title: "Кошельки", Icon: "wallet",
				Items: []Link{
					{Path: routepath.Wallets, Title: "Кошельки", Icon: "wallet"},
					{Path: routepath.WalletTransactions, Title: "Транзакции", Icon: "swap"},
				},
			},
			Link{Path: routepath.Disputes, Title: "Споры", Icon: "scale"},
		},
	},
	Section{
		Title: "Пользователи",
		Items: []SectionItem{
			Link{Path: routepath.UserDetails, Title: "Пользователи", Icon: "user"},
			Link{Path: routepath.Groups, Title: "Группы", Icon: "users"},
			Link{Path: routepath.Creators, Title: "Авторы", Icon: "star"},
		},
	},
	Dropdown{
		Key: "media", Title: "Медиа", Icon: "image",
		Items: []Link{
			{Path: routepath.MediaLibrary, Title: "Медиатека", Icon: "image"},
			{Path: routepath.MediaUpload, Title: "Загрузка", Icon: "upload"},
		},
	},
	Link{Path: routepath.SupportTickets, Title: "Поддержка", Icon: "lifebuoy"},
	Link{Path: routepath.AnalyticsOverview, Title: "Аналитика", Icon: "chart"},
	Section{
		Title: "Система",
		Items: []SectionItem{
			Link{Path: routepath.Roles, Title: "Роли", Icon: "key"},
			Link{Path: routepath.Permissions, Title: "Права", Icon: "lock"},
		},
	},
}

// Page - страница, которую монтирует роутер.
type Page struct {
	Pattern string
	Title   string
}

// detailPages - страницы, которых нет в меню (карточки по :id и профиль).
var detailPages = []Page{
	{Pattern: routepath.Profile, Title: "Профиль"},
	{Pattern: routepath.EscrowDetailPattern, Title: "Сделка"},
	{Pattern: routepath.WalletDetailPattern, Title: "Кошелёк"},
	{Pattern: routepath.DisputeDetailPattern, Title: "Спор"},
	{Pattern: routepath.UserDetailPattern, Title: "Пользователь"},
	{Pattern: routepath.GroupDetailPattern, Title: "Группа"},
	{Pattern: routepath.SupportTicketPattern, Title: "Обращение"},
	{Pattern: routepath.RoleDetailPattern, Title: "Роль"},
}

// Pages - все страницы консоли: ссылки меню плюс карточки. Без повторов.
func Pages(tree []Node) []Page {
	seen := make(map[string]struct{})
	var out []Page
	add := func(p Page) {
		if _, dup := seen[p.Pattern]; dup {
			return
		}
		seen[p.Pattern] = struct{}{}
		out = append(out, p)
	}
	for _, l := range Links(tree) {
		add(Page{Pattern: l.Path, Title: l.Title})
	}
	for _, p := range detailPages {
		add(p)
	}
	return out
}

// FindPage ищет страницу по конкретному пути (с подстановкой :id).
func FindPage(pages []Page, path string) (Page, bool) {
	for _, p := range pages {
		if p.Pattern == path {
			return p, true
		}
	}
	for _, p := range pages {
		if authz.MatchPattern(p.Pattern, path) {
			return p, true
		}
	}
	return Page{}, false
}

// Unclassified - страницы, для которых нет строки в таблице прав.
func Unclassified(pages []Page, table *authz.Table) []Page {
	var out []Page
	for _, p := range pages {
		if table.Resolve(p.Pattern).Classification == authz.ClassUnclassified {
			out = append(out, p)
		}
	}
	return out
}
