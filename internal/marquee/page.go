package marquee

import (
	"fmt"
	"strings"
)

// ItemSeparator joins the items of a template subtree into one block of content.
const ItemSeparator = "   "

// Node is an element of a host document.
type Node interface {
	Attributes
	ID() string
	Text() string
	Children() []Node
}

// Page holds the wraps discovered in a document.
type Page struct {
	wraps []*Wrap
}

// NewPage walks roots and creates a wrap for every element marked as one.
// A wrap without a template is skipped; it never stops the others.
func NewPage(roots []Node, env Env) *Page {
	p := &Page{}
	for _, n := range findRole(roots, RoleWrap, true) {
		w, err := wrapFromNode(n, len(p.wraps), env)
		if err != nil {
			env.logger().Debug("marquee: skipping wrap", "wrap", n.ID(), "error", err)
			continue
		}
		p.wraps = append(p.wraps, w)
	}
	return p
}

func wrapFromNode(n Node, index int, env Env) (*Wrap, error) {
	id := n.ID()
	if id == "" {
		id = fmt.Sprintf("wrap-%d", index)
	}
	tpls := findRole(n.Children(), RoleTemplate, false)
	if len(tpls) == 0 {
		return nil, ErrMissingTemplate
	}
	t := tpls[0]
	return NewWrap(id, NewTemplate(t.ID(), templateText(t)), ResolveOptions(n), env)
}

// templateText flattens a template subtree: the node's own text followed by
// every descendant's text, depth first, skipping empty ones.
func templateText(n Node) string {
	var items []string
	var walk func(Node)
	walk = func(n Node) {
		if t := n.Text(); t != "" {
			items = append(items, t)
		}
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(items, ItemSeparator)
}

// findRole returns nodes whose role attribute equals role, depth first. With
// all unset it stops at the first match.
func findRole(nodes []Node, role string, all bool) []Node {
	var out []Node
	var walk func([]Node) bool
	walk = func(ns []Node) bool {
		for _, n := range ns {
			if v, ok := n.Attr(RoleAttr); ok && v == role {
				out = append(out, n)
				if !all {
					return false
				}
				// wraps don't nest
				continue
			}
			if !walk(n.Children()) {
				return false
			}
		}
		return true
	}
	walk(nodes)
	return out
}

func (p *Page) Wraps() []*Wrap { return p.wraps }

// Observe reports the same width to every wrap and returns how many rebuilt.
func (p *Page) Observe(width float64) int {
	return p.ObserveEach(func(*Wrap) float64 { return width })
}

// ObserveEach reports width(w) to every wrap w and returns how many rebuilt.
func (p *Page) ObserveEach(width func(w *Wrap) float64) int {
	n := 0
	for _, w := range p.wraps {
		if w.Observe(width(w)) {
			n++
		}
	}
	return n
}

// Teardown stops every wrap on the page.
func (p *Page) Teardown() {
	for _, w := range p.wraps {
		w.Teardown()
	}
}
