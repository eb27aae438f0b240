package ir

import (
	"github.com/boynton/ana/lexicon"
	"github.com/boynton/ana/syntax"
)

// Unknown accepts any data object.
type Unknown struct {
	Description string
	Loc         syntax.Range
}

func LowerUnknown(t *GenericType) *Unknown {
	return &Unknown{Description: t.description(), Loc: t.Loc}
}

func (*Unknown) Kind() Kind           { return KindUnknown }
func (u *Unknown) Span() syntax.Range { return u.Loc }
func (*Unknown) isType()              {}

func (u *Unknown) Schema() lexicon.Node {
	return &lexicon.Unknown{Description: u.Description}
}
