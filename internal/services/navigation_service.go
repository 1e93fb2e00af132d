package services

import (
	"net/url"

	g "maragu.dev/gomponents"

	"admin-console/internal/authz"
	"admin-console/internal/dto"
	"admin-console/internal/navigation"
)

// Layout - вариант отрисовки меню.
type Layout string

const (
	LayoutSidebar Layout = "sidebar"
	LayoutTopBar  Layout = "topbar"
)

type NavigationServiceInterface interface {
	Tree(checker *authz.Checker) []dto.NavNodeDTO
	Render(checker *authz.Checker, layout Layout, active string) g.Node
	Page(path string) (dto.PageDTO, bool)
	Pages() []navigation.Page
}

type NavigationService struct {
	tree       []navigation.Node
	pages      []navigation.Page
	topVisible int
}

// NewNavigationService: topVisible - сколько пунктов верхнего меню выводить до "Ещё".
func NewNavigationService(tree []navigation.Node, topVisible int) *NavigationService {
	return &NavigationService{
		tree:       tree,
		pages:      navigation.Pages(tree),
		topVisible: topVisible,
	}
}

func (s *NavigationService) Tree(checker *authz.Checker) []dto.NavNodeDTO {
	return nodesToDTO(navigation.Filter(s.tree, checker))
}

func (s *NavigationService) Render(checker *authz.Checker, layout Layout, active string) g.Node {
	tree := navigation.Filter(s.tree, checker)
	if layout == LayoutTopBar {
		return navigation.TopBar(tree, active, s.topVisible)
	}
	return navigation.Sidebar(tree, active)
}

// Page - описание страницы по конкретному (экранированному) пути,
// с раскодированными параметрами из шаблона.
func (s *NavigationService) Page(path string) (dto.PageDTO, bool) {
	p, ok := navigation.FindPage(s.pages, path)
	if !ok {
		return dto.PageDTO{}, false
	}
	params := authz.Params(p.Pattern, path)
	for k, v := range params {
		if decoded, err := url.PathUnescape(v); err == nil {
			params[k] = decoded
		}
	}
	return dto.PageDTO{
		Path:    path,
		Pattern: p.Pattern,
		Title:   p.Title,
		Params:  params,
	}, true
}

func (s *NavigationService) Pages() []navigation.Page {
	return append([]navigation.Page(nil), s.pages...)
}

func nodesToDTO(nodes []navigation.Node) []dto.NavNodeDTO {
	out := make([]dto.NavNodeDTO, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, nodeToDTO(n))
	}
	return out
}

func nodeToDTO(n navigation.Node) dto.NavNodeDTO {
	switch v := n.(type) {
	case navigation.Link:
		return dto.NavNodeDTO{Kind: string(v.Kind()), Path: v.Path, Title: v.Title, Icon: v.Icon}
	case navigation.Dropdown:
		items := make([]dto.NavNodeDTO, 0, len(v.Items))
		for _, l := range v.Items {
			items = append(items, nodeToDTO(l))
		}
		return dto.NavNodeDTO{Kind: string(v.Kind()), Key: v.Key, Title: v.Title, Icon: v.Icon, Items: items}
	case navigation.Section:
		items := make([]dto.NavNodeDTO, 0, len(v.Items))
		for _, item := range v.Items {
			items = append(items, nodeToDTO(item))
		}
		return dto.NavNodeDTO{Kind: string(v.Kind()), Title: v.Title, Items: items}
	}
	return dto.NavNodeDTO{}
}
