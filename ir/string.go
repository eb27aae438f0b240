package ir

import (
	"github.com/boynton/ana/lexicon"
	"github.com/boynton/ana/syntax"
)

type String struct {
	Description string
	// Format is empty when absent or when the format parameter names no known format.
	Format lexicon.StringFormat
	// Length bounds the UTF-8 byte length.
	Length    Slice
	Graphemes Slice
	Default   *string
	Const     *string
	Loc       syntax.Range
}

func LowerString(t *GenericType) *String {
	s := &String{
		Description: t.description(),
		Length:      t.SliceParam("len"),
		Graphemes:   t.SliceParam("graphemes"),
		Default:     t.stringPtr("default"),
		Const:       t.stringPtr("const"),
		Loc:         t.Loc,
	}
	if name, ok := t.StringParam("format"); ok {
		if f, ok := lexicon.ParseStringFormat(name); ok {
			s.Format = f
		}
	}
	return s
}

func (*String) Kind() Kind           { return KindString }
func (s *String) Span() syntax.Range { return s.Loc }
func (*String) isType()              {}

func (s *String) Schema() lexicon.Node {
	return &lexicon.String{
		Description:  s.Description,
		Format:       s.Format,
		MinLength:    clone(s.Length.Start),
		MaxLength:    clone(s.Length.End),
		MinGraphemes: clone(s.Graphemes.Start),
		MaxGraphemes: clone(s.Graphemes.End),
		Default:      cloneString(s.Default),
		Const:        cloneString(s.Const),
	}
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
