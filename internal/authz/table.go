package authz

import (
	"admin-console/internal/routepath"
)

// Requirement - что нужно, чтобы открыть путь.
// Public=true - путь открыт любому вошедшему оператору.
type Requirement struct {
	Permissions []string
	Public      bool
}

// Entry - одна строка таблицы прав.
type Entry struct {
	Pattern     string
	Requirement Requirement
}

// Restricted - путь, для которого нужен хотя бы один из perms.
func Restricted(pattern string, perms ...string) Entry {
	return Entry{Pattern: pattern, Requirement: Requirement{Permissions: perms}}
}

// Public - путь, явно открытый всем вошедшим.
func Public(pattern string) Entry {
	return Entry{Pattern: pattern, Requirement: Requirement{Public: true}}
}

// Table - упорядоченная таблица прав. Порядок строк решает, какой шаблон победит
// при нескольких совпадениях, поэтому это срез, а не map.
type Table struct {
	entries []Entry
	exact   map[string]int
}

// NewTable строит таблицу. При повторе шаблона остаётся первая строка.
func NewTable(entries ...Entry) *Table {
	t := &Table{
		entries: make([]Entry, 0, len(entries)),
		exact:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if _, dup := t.exact[e.Pattern]; dup {
			continue
		}
		t.exact[e.Pattern] = len(t.entries)
		t.entries = append(t.entries, e)
	}
	return t
}

// Entries возвращает копию строк таблицы.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	for i, e := range t.entries {
		out[i] = Entry{Pattern: e.Pattern, Requirement: e.Requirement.clone()}
	}
	return out
}

func (t *Table) Len() int { return len(t.entries) }

func (r Requirement) clone() Requirement {
	perms := make([]string, len(r.Permissions))
	copy(perms, r.Permissions)
	return Requirement{Permissions: perms, Public: r.Public}
}

// DefaultTable - таблица прав консоли.
var DefaultTable = NewTable(
	Public(routepath.Dashboard),
	Public(routepath.Profile),

	Restricted(routepath.EscrowDashboard, CanViewEscrows),
	Restricted(routepath.Escrows, CanViewEscrows, CanListEscrows),
	Restricted(routepath.EscrowDetailPattern, CanViewEscrows),
	Restricted(routepath.Ledger, CanViewLedger),

	Restricted(routepath.Wallets, CanViewWallets, CanListWallets),
	Restricted(routepath.WalletDetailPattern, CanViewWallets),
	Restricted(routepath.WalletTransactions, CanViewTransactions),

	Restricted(routepath.Disputes, CanViewDisputes, CanListDisputes),
	Restricted(routepath.DisputeDetailPattern, CanViewDisputes),

	Restricted(routepath.UserDetails, CanViewUsers, CanListUsers),
	Restricted(routepath.UserDetailPattern, CanViewUsers),
	Restricted(routepath.Groups, CanViewGroups, CanListGroups),
	Restricted(routepath.GroupDetailPattern, CanViewGroups),
	Restricted(routepath.Creators, CanViewCreators),

	Restricted(routepath.MediaLibrary, CanViewMedia),
	Restricted(routepath.MediaUpload, CanUploadMedia),

	Restricted(routepath.SupportTickets, CanViewTickets, CanListTickets),
	Restricted(routepath.SupportTicketPattern, CanViewTickets),

	Restricted(routepath.Roles, CanViewRoles, CanListRoles),
	Restricted(routepath.RoleDetailPattern, CanViewRoles),
	Restricted(routepath.Permissions, CanViewPermissions),

	Restricted(routepath.AnalyticsOverview, CanViewAnalytics),
)
