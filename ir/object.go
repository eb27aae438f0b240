package ir

import (
	"sort"

	"github.com/boynton/ana/lexicon"
	"github.com/boynton/ana/syntax"
)

type Object struct {
	Name  string
	Props map[string]*Prop
	Loc   syntax.Range
}

// NewObject reads a name { ... } fragment.
func NewObject(src string, n syntax.Node) (*Object, error) {
	if err := expectKind(n, syntax.KindObject); err != nil {
		return nil, err
	}
	name, err := namedChild(n, 0, "name")
	if err != nil {
		return nil, err
	}
	body, err := namedChild(n, 1, "body")
	if err != nil {
		return nil, err
	}
	props, err := ParseProperties(src, body)
	if err != nil {
		return nil, err
	}
	return &Object{Name: name.Text(src), Props: props, Loc: n.Range()}, nil
}

// PropNames returns the property names in sorted order.
func (o *Object) PropNames() []string {
	names := make([]string, 0, len(o.Props))
	for name := range o.Props {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Required lists the properties not marked optional, sorted.
func (o *Object) Required() []string {
	var names []string
	for _, name := range o.PropNames() {
		if !o.Props[name].Optional {
			names = append(names, name)
		}
	}
	return names
}

func (o *Object) Schema() *lexicon.Object {
	obj := &lexicon.Object{Properties: make(map[string]lexicon.Node, len(o.Props))}
	for name, p := range o.Props {
		obj.Properties[name] = p.Value.Schema()
	}
	obj.Required = o.Required()
	return obj
}
