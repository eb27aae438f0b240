package ir

import (
	"github.com/boynton/ana/lexicon"
	"github.com/boynton/ana/syntax"
)

type Null struct {
	Description string
	Loc         syntax.Range
}

func LowerNull(t *GenericType) *Null {
	return &Null{Description: t.description(), Loc: t.Loc}
}

func (*Null) Kind() Kind           { return KindNull }
func (n *Null) Span() syntax.Range { return n.Loc }
func (*Null) isType()              {}

func (n *Null) Schema() lexicon.Node {
	return &lexicon.Null{Description: n.Description}
}
