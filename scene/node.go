package scene

// Kind tags the variant held by a Node.
type Kind uint8

const (
	KindBox Kind = iota
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Node is one element of a scene tree.
type Node struct {
	Kind     Kind
	Style    Style
	Text     string // KindText only
	Children []Node // KindBox only
}

// Box returns a box node owning children.
func Box(style Style, children ...Node) Node {
	return Node{Kind: KindBox, Style: style, Children: children}
}

// Text returns a text node.
func Text(style Style, s string) Node {
	return Node{Kind: KindText, Style: style, Text: s}
}

// Walk visits n and its descendants depth-first in document order.
// Returning false from fn skips the node's children.
func (n Node) Walk(fn func(n Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n Node) walk(fn func(Node, int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.Children {
		c.walk(fn, depth+1)
	}
}

// Count returns the number of nodes in the tree rooted at n.
func (n Node) Count() int {
	total := 0
	n.Walk(func(Node, int) bool {
		total++
		return true
	})
	return total
}

// Texts returns the content of every text node in document order.
func (n Node) Texts() []string {
	var out []string
	n.Walk(func(c Node, _ int) bool {
		if c.Kind == KindText {
			out = append(out, c.Text)
		}
		return true
	})
	return out
}

// Find returns the first text node whose content equals s.
func (n Node) Find(s string) (Node, bool) {
	var found Node
	var ok bool
	n.Walk(func(c Node, _ int) bool {
		if ok {
			return false
		}
		if c.Kind == KindText && c.Text == s {
			found, ok = c, true
			return false
		}
		return true
	})
	return found, ok
}
