package ir

import (
	"github.com/boynton/ana/lexicon"
	"github.com/boynton/ana/syntax"
)

type Integer struct {
	Description string
	// Range bounds the value, inclusive at both ends.
	Range   Slice
	Default *int32
	Const   *int32
	Loc     syntax.Range
}

// LowerInteger reads range=min..max, default and const. A bare range such as Integer(0..9) is
// used when no range parameter is given.
func LowerInteger(t *GenericType) *Integer {
	rng := t.SliceParam("range")
	if rng.IsUnbounded() {
		rng = t.Slice
	}
	return &Integer{
		Description: t.description(),
		Range:       rng,
		Default:     t.integerPtr("default"),
		Const:       t.integerPtr("const"),
		Loc:         t.Loc,
	}
}

func (*Integer) Kind() Kind           { return KindInteger }
func (i *Integer) Span() syntax.Range { return i.Loc }
func (*Integer) isType()              {}

func (i *Integer) Schema() lexicon.Node {
	return &lexicon.Integer{
		Description: i.Description,
		Minimum:     clone(i.Range.Start),
		Maximum:     clone(i.Range.End),
		Default:     clone(i.Default),
		Const:       clone(i.Const),
	}
}
