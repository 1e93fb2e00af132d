// Package navigation описывает дерево меню консоли (ссылки, выпадающие списки, секции)
// и умеет отфильтровать его под права конкретного оператора.
package navigation

type Kind string

const (
	KindLink     Kind = "link"
	KindDropdown Kind = "dropdown"
	KindSection  Kind = "section"
)

// Node - элемент верхнего уровня: Link, Dropdown или Section.
type Node interface {
	Kind() Kind
	node()
}

// SectionItem - то, что может лежать внутри секции: Link или Dropdown.
type SectionItem interface {
	Node
	sectionItem()
}

type Link struct {
	Path  string
	Title string
	Icon  string
}

type Dropdown struct {
	Key   string
	Title string
	Icon  string
	Items []Link
}

type Section struct {
	Title string
	Items []SectionItem
}

func (Link) Kind() Kind     { return KindLink }
func (Dropdown) Kind() Kind { return KindDropdown }
func (Section) Kind() Kind  { return KindSection }

func (Link) node()     {}
func (Dropdown) node() {}
func (Section) node()  {}

func (Link) sectionItem()     {}
func (Dropdown) sectionItem() {}

// Links - все ссылки дерева в порядке обхода.
func Links(tree []Node) []Link {
	var out []Link
	for _, n := range tree {
		out = appendLinks(out, n)
	}
	return out
}

func appendLinks(out []Link, n Node) []Link {
	switch v := n.(type) {
	case Link:
		out = append(out, v)
	case Dropdown:
		out = append(out, v.Items...)
	case Section:
		for _, item := range v.Items {
			out = appendLinks(out, item)
		}
	}
	return out
}
