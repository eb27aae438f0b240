package ir

import (
	"github.com/boynton/ana/lexicon"
	"github.com/boynton/ana/syntax"
)

type Bytes struct {
	Description string
	// Size bounds the raw byte length.
	Size Slice
	Loc  syntax.Range
}

// LowerBytes reads size=min..max, or a bare range such as Bytes(..256).
func LowerBytes(t *GenericType) *Bytes {
	size := t.SliceParam("size")
	if size.IsUnbounded() {
		size = t.Slice
	}
	return &Bytes{Description: t.description(), Size: size, Loc: t.Loc}
}

func (*Bytes) Kind() Kind           { return KindBytes }
func (b *Bytes) Span() syntax.Range { return b.Loc }
func (*Bytes) isType()              {}

func (b *Bytes) Schema() lexicon.Node {
	return &lexicon.Bytes{
		Description: b.Description,
		MinLength:   clone(b.Size.Start),
		MaxLength:   clone(b.Size.End),
	}
}
