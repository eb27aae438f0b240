package ir

import (
	"github.com/boynton/ana/lexicon"
	"github.com/boynton/ana/syntax"
)

// Ref names another definition, e.g. Ref(ref="#image"). The name is not resolved here.
type Ref struct {
	Description string
	Ref         string
	Loc         syntax.Range
}

func LowerRef(t *GenericType) *Ref {
	ref, _ := t.StringParam("ref")
	return &Ref{Description: t.description(), Ref: ref, Loc: t.Loc}
}

func (*Ref) Kind() Kind           { return KindRef }
func (r *Ref) Span() syntax.Range { return r.Loc }
func (*Ref) isType()              {}

func (r *Ref) Schema() lexicon.Node {
	return &lexicon.Ref{Description: r.Description, Ref: r.Ref}
}
