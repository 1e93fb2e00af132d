package authz

// Checker отвечает на вопросы "есть ли доступ" для одного оператора.
// Список прав передаётся явно (из сессии), а не читается из глобального хранилища.
// Нулевой *Checker ведёт себя как оператор без прав.
type Checker struct {
	list              []string
	set               map[string]struct{}
	table             *Table
	allowUnclassified bool
}

type Option func(*Checker)

// WithTable подменяет таблицу прав (по умолчанию DefaultTable).
func WithTable(t *Table) Option {
	return func(c *Checker) { c.table = t }
}

// AllowUnclassified - пускать ли на пути, которых нет в таблице.
func AllowUnclassified(allow bool) Option {
	return func(c *Checker) { c.allowUnclassified = allow }
}

func NewChecker(permissions []string, opts ...Option) *Checker {
	c := &Checker{
		list:  make([]string, 0, len(permissions)),
		set:   make(map[string]struct{}, len(permissions)),
		table: DefaultTable,
	}
	for _, p := range permissions {
		if _, dup := c.set[p]; dup {
			continue
		}
		c.set[p] = struct{}{}
		c.list = append(c.list, p)
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Permissions - копия списка прав.
func (c *Checker) Permissions() []string {
	if c == nil {
		return []string{}
	}
	out := make([]string, len(c.list))
	copy(out, c.list)
	return out
}

func (c *Checker) HasPermission(permission string) bool {
	if c == nil {
		return false
	}
	_, ok := c.set[permission]
	return ok
}

// HasAnyPermission: пустой required - true, иначе нужно хотя бы одно совпадение.
func (c *Checker) HasAnyPermission(required []string) bool {
	if len(required) == 0 {
		return true
	}
	for _, p := range required {
		if c.HasPermission(p) {
			return true
		}
	}
	return false
}

// HasAllPermissions: пустой required - true, иначе нужны все.
func (c *Checker) HasAllPermissions(required []string) bool {
	for _, p := range required {
		if !c.HasPermission(p) {
			return false
		}
	}
	return true
}

// HasPermissionForRoute - доступ к конкретному пути по таблице.
func (c *Checker) HasPermissionForRoute(path string) bool {
	return c.Allows(c.Table().Resolve(path))
}

// Allows применяет политику к уже найденной строке таблицы.
func (c *Checker) Allows(res Resolution) bool {
	switch res.Classification {
	case ClassPublic:
		return true
	case ClassUnclassified:
		return c != nil && c.allowUnclassified
	}
	return c.HasAnyPermission(res.Requirement.Permissions)
}

func (c *Checker) Table() *Table {
	if c == nil || c.table == nil {
		return DefaultTable
	}
	return c.table
}
