package navigation

import (
	"strings"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	"maragu.dev/gomponents/html"
)

// PageTarget - куда htmx подставляет содержимое страницы при переходе по меню.
const PageTarget = "#page"

// Sidebar - вертикальное меню. Дерево уже должно быть отфильтровано под оператора.
func Sidebar(tree []Node, active string) g.Node {
	return html.Nav(
		html.ID("sidebar"),
		html.Class("sidebar"),
		html.Ul(html.Class("nav"),
			g.Map(tree, func(n Node) g.Node { return renderNode(n, active) }),
		),
	)
}

// TopBar - горизонтальное меню. Первые visible элементов верхнего уровня
// выводятся как есть, остальные уходят в выпадающий блок "Ещё".
// visible <= 0 значит "без ограничения".
func TopBar(tree []Node, active string, visible int) g.Node {
	head, rest := tree, []Node(nil)
	if visible > 0 && len(tree) > visible {
		head, rest = tree[:visible], tree[visible:]
	}

	return html.Nav(
		html.ID("topbar"),
		html.Class("topbar"),
		html.Ul(html.Class("nav nav-horizontal"),
			g.Map(head, func(n Node) g.Node { return renderNode(n, active) }),
			g.If(len(rest) > 0,
				html.Li(
					html.Class("nav-more"),
					html.Data("overflow", "more"),
					html.Span(html.Class("nav-more-toggle"), g.Text("Ещё")),
					html.Ul(html.Class("nav-more-items"),
						g.Map(rest, func(n Node) g.Node { return renderNode(n, active) }),
					),
				),
			),
		),
	)
}

// IsActive - относится ли текущий путь к ссылке (сама ссылка или её карточка).
func IsActive(linkPath, current string) bool {
	if current == "" {
		return false
	}
	return current == linkPath || strings.HasPrefix(current, linkPath+"/")
}

func renderNode(n Node, active string) g.Node {
	switch v := n.(type) {
	case Link:
		return renderLink(v, active)
	case Dropdown:
		return renderDropdown(v, active)
	case Section:
		return html.Li(
			html.Class("nav-section"),
			html.Data("nav-section", v.Title),
			html.Span(html.Class("nav-section-title"), g.Text(v.Title)),
			html.Ul(
				g.Map(v.Items, func(item SectionItem) g.Node { return renderNode(item, active) }),
			),
		)
	}
	return g.Group(nil)
}

func renderLink(l Link, active string) g.Node {
	classes := "nav-link"
	if IsActive(l.Path, active) {
		classes += " active"
	}
	return html.Li(
		html.Data("nav-item", l.Path),
		html.A(
			html.Class(classes),
			html.Href(l.Path),
			hx.Get(l.Path),
			hx.Target(PageTarget),
			g.If(IsActive(l.Path, active), html.Aria("current", "page")),
			g.If(l.Icon != "", html.I(html.Class("icon icon-"+l.Icon))),
			html.Span(g.Text(l.Title)),
		),
	)
}

func renderDropdown(d Dropdown, active string) g.Node {
	open := false
	for _, l := range d.Items {
		if IsActive(l.Path, active) {
			open = true
			break
		}
	}
	return html.Li(
		html.Class("nav-dropdown"),
		html.Data("nav-dropdown", d.Key),
		html.Details(
			g.If(open, g.Attr("open")),
			html.Summary(
				g.If(d.Icon != "", html.I(html.Class("icon icon-"+d.Icon))),
				html.Span(g.Text(d.Title)),
			),
			html.Ul(
				g.Map(d.Items, func(l Link) g.Node { return renderLink(l, active) }),
			),
		),
	)
}
