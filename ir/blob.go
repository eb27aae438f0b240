package ir

import (
	"github.com/boynton/ana/lexicon"
	"github.com/boynton/ana/syntax"
)

type Blob struct {
	Description string
	// Accept lists MIME type patterns, e.g. "image/*".
	Accept  []string
	MaxSize *int32
	Loc     syntax.Range
}

func LowerBlob(t *GenericType) *Blob {
	b := &Blob{
		Description: t.description(),
		MaxSize:     t.integerPtr("size"),
		Loc:         t.Loc,
	}
	if accept, ok := t.StringParam("accept"); ok {
		b.Accept = []string{accept}
	}
	return b
}

func (*Blob) Kind() Kind           { return KindBlob }
func (b *Blob) Span() syntax.Range { return b.Loc }
func (*Blob) isType()              {}

func (b *Blob) Schema() lexicon.Node {
	var accept []string
	if len(b.Accept) > 0 {
		accept = append(accept, b.Accept...)
	}
	return &lexicon.Blob{
		Description: b.Description,
		Accept:      accept,
		MaxSize:     clone(b.MaxSize),
	}
}
