package ir

import (
	"github.com/boynton/ana/syntax"
)

// Prop is one named field of an object.
type Prop struct {
	Name  string
	Value Type
	// Optional is set by a trailing ? on the name, e.g. alt?: String.
	Optional bool
	Loc      syntax.Range
}

// NewProp reads a name: Type fragment and lowers its type.
func NewProp(src string, n syntax.Node) (*Prop, error) {
	if err := expectKind(n, syntax.KindProperty); err != nil {
		return nil, err
	}
	if count := n.NamedChildCount(); count != 2 {
		return nil, NewError(ErrMissingChild, n, "property must have a name and a type, found %d parts", count)
	}
	name := n.NamedChild(0).Text(src)
	value, err := LowerNode(src, n.NamedChild(1))
	if err != nil {
		return nil, err
	}
	p := &Prop{Name: name, Value: value, Loc: n.Range()}
	for i := 0; i < n.ChildCount(); i++ {
		if c := n.Child(i); !c.IsNamed() && c.Kind() == "?" {
			p.Optional = true
		}
	}
	return p, nil
}

// ParseProperties reads every property in an object body. A property named more than once
// keeps its last definition.
func ParseProperties(src string, body syntax.Node) (map[string]*Prop, error) {
	if err := expectKind(body, syntax.KindBody); err != nil {
		return nil, err
	}
	props := make(map[string]*Prop)
	for i := 0; i < body.NamedChildCount(); i++ {
		p, err := NewProp(src, body.NamedChild(i))
		if err != nil {
			return nil, err
		}
		props[p.Name] = p
	}
	return props, nil
}
