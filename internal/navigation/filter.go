package navigation

// Authorizer - кто решает, доступен ли путь. Обычно *authz.Checker.
type Authorizer interface {
	HasPermissionForRoute(path string) bool
}

// Filter возвращает новое дерево, где остались только доступные ссылки.
// Dropdown и Section остаются, только если в них уцелел хотя бы один элемент.
// Исходное дерево не меняется.
func Filter(tree []Node, auth Authorizer) []Node {
	out := make([]Node, 0, len(tree))
	for _, n := range tree {
		if kept, ok := filterNode(n, auth); ok {
			out = append(out, kept)
		}
	}
	return out
}

func filterNode(n Node, auth Authorizer) (Node, bool) {
	switch v := n.(type) {
	case Link:
		return v, auth.HasPermissionForRoute(v.Path)
	case Dropdown:
		return filterDropdown(v, auth)
	case Section:
		items := make([]SectionItem, 0, len(v.Items))
		for _, item := range v.Items {
			kept, ok := filterNode(item, auth)
			if !ok {
				continue
			}
			items = append(items, kept.(SectionItem))
		}
		if len(items) == 0 {
			return nil, false
		}
		return Section{Title: v.Title, Items: items}, true
	}
	return nil, false
}

func filterDropdown(d Dropdown, auth Authorizer) (Node, bool) {
	items := make([]Link, 0, len(d.Items))
	for _, l := range d.Items {
		if auth.HasPermissionForRoute(l.Path) {
			items = append(items, l)
		}
	}
	if len(items) == 0 {
		return nil, false
	}
	return Dropdown{Key: d.Key, Title: d.Title, Icon: d.Icon, Items: items}, true
}
