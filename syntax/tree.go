// Package syntax parses .ana schema sources into a concrete syntax tree.
//
// Consumers walk the tree through the Node interface only: a node has a kind tag, a byte range
// into the source, named children (some addressed by field name) and anonymous punctuation
// children. The tree is never mutated after parsing.
package syntax

import "fmt"

// Point is a zero-based row/column position.
type Point struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// Range locates a node in the source it was parsed from.
type Range struct {
	StartByte  int   `json:"startByte"`
	EndByte    int   `json:"endByte"`
	StartPoint Point `json:"startPoint"`
	EndPoint   Point `json:"endPoint"`
}

func (r Range) String() string {
	return fmt.Sprintf("%d:%d-%d:%d", r.StartPoint.Row+1, r.StartPoint.Column+1, r.EndPoint.Row+1, r.EndPoint.Column+1)
}

// Len is the number of source bytes covered.
func (r Range) Len() int {
	return r.EndByte - r.StartByte
}

// Node kinds produced by the parser.
const (
	KindSourceFile = "source_file"
	KindNamespace  = "namespace"
	KindNsid       = "nsid"
	KindObject     = "object"
	KindBody       = "body"
	KindProperty   = "property"
	KindType       = "type"
	KindParam      = "param"
	KindIdentifier = "identifier"
	KindString     = "string"
	KindInteger    = "integer"
	KindBoolean    = "boolean"
	KindSlice      = "slice"
)

type Node interface {
	Kind() string
	Range() Range
	// NamedChild returns the i'th named child, or nil.
	NamedChild(i int) Node
	NamedChildCount() int
	// Child returns the i'th child including anonymous punctuation, or nil.
	Child(i int) Node
	ChildCount() int
	IsNamed() bool
	ChildByFieldName(name string) Node
	ChildrenByFieldName(name string) []Node
	// Text slices the node's bytes out of the source it was parsed from.
	Text(src string) string
}

type Tree struct {
	Source string
	root   *node
}

func (t *Tree) Root() Node {
	return t.root
}

type node struct {
	kind     string
	rng      Range
	named    bool
	field    string
	children []*node
}

func newNode(kind string, rng Range) *node {
	return &node{kind: kind, rng: rng, named: true}
}

func anonymous(tok Token) *node {
	return &node{kind: tok.Text, rng: tok.Range()}
}

// add appends child under the given field name (may be empty) and widens the parent range.
func (n *node) add(field string, child *node) *node {
	child.field = field
	n.children = append(n.children, child)
	n.extend(child.rng)
	return n
}

func (n *node) extend(r Range) {
	if r.EndByte > n.rng.EndByte {
		n.rng.EndByte = r.EndByte
		n.rng.EndPoint = r.EndPoint
	}
}

func (n *node) Kind() string {
	return n.kind
}

func (n *node) Range() Range {
	return n.rng
}

func (n *node) IsNamed() bool {
	return n.named
}

func (n *node) NamedChild(i int) Node {
	for _, c := range n.children {
		if !c.named {
			continue
		}
		if i == 0 {
			return c
		}
		i--
	}
	return nil
}

func (n *node) NamedChildCount() int {
	count := 0
	for _, c := range n.children {
		if c.named {
			count++
		}
	}
	return count
}

func (n *node) Child(i int) Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

func (n *node) ChildCount() int {
	return len(n.children)
}

func (n *node) ChildByFieldName(name string) Node {
	for _, c := range n.children {
		if c.field == name {
			return c
		}
	}
	return nil
}

func (n *node) ChildrenByFieldName(name string) []Node {
	var result []Node
	for _, c := range n.children {
		if c.field == name {
			result = append(result, c)
		}
	}
	return result
}

func (n *node) Text(src string) string {
	if n.rng.StartByte < 0 || n.rng.EndByte > len(src) || n.rng.StartByte > n.rng.EndByte {
		return ""
	}
	return src[n.rng.StartByte:n.rng.EndByte]
}

// SExpr renders the named structure of the subtree, e.g. (type (identifier) (param ...)).
func SExpr(n Node) string {
	if n == nil {
		return "()"
	}
	s := "(" + n.Kind()
	for i := 0; i < n.NamedChildCount(); i++ {
		s += " " + SExpr(n.NamedChild(i))
	}
	return s + ")"
}
