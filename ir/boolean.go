package ir

import (
	"github.com/boynton/ana/lexicon"
	"github.com/boynton/ana/syntax"
)

type Boolean struct {
	Description string
	Default     *bool
	Const       *bool
	Loc         syntax.Range
}

func LowerBoolean(t *GenericType) *Boolean {
	return &Boolean{
		Description: t.description(),
		Default:     t.booleanPtr("default"),
		Const:       t.booleanPtr("const"),
		Loc:         t.Loc,
	}
}

func (*Boolean) Kind() Kind           { return KindBoolean }
func (b *Boolean) Span() syntax.Range { return b.Loc }
func (*Boolean) isType()              {}

func (b *Boolean) Schema() lexicon.Node {
	return &lexicon.Boolean{
		Description: b.Description,
		Default:     cloneBool(b.Default),
		Const:       cloneBool(b.Const),
	}
}

func cloneBool(p *bool) *bool {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
