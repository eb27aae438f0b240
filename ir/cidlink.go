package ir

import (
	"github.com/boynton/ana/lexicon"
	"github.com/boynton/ana/syntax"
)

type CidLink struct {
	Description string
	Loc         syntax.Range
}

func LowerCidLink(t *GenericType) *CidLink {
	return &CidLink{Description: t.description(), Loc: t.Loc}
}

func (*CidLink) Kind() Kind           { return KindCidLink }
func (c *CidLink) Span() syntax.Range { return c.Loc }
func (*CidLink) isType()              {}

func (c *CidLink) Schema() lexicon.Node {
	return &lexicon.CidLink{Description: c.Description}
}
