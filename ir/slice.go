package ir

import (
	"fmt"

	"github.com/boynton/ana/syntax"
)

// Slice is an optional-start, optional-end bound pair. Whether the bounds describe a byte
// length, a grapheme count or a value range is up to the type that consumes it.
type Slice struct {
	Start *int32
	End   *int32
	Loc   syntax.Range
}

// Unbounded returns the "no constraint" range. Every call yields a fresh value.
func Unbounded() Slice {
	return Slice{}
}

func (Slice) isParamValue() {}

func (s Slice) IsUnbounded() bool {
	return s.Start == nil && s.End == nil
}

// Equal compares the bounds only; where a range came from does not matter.
func (s Slice) Equal(other Slice) bool {
	return sameBound(s.Start, other.Start) && sameBound(s.End, other.End)
}

func (s Slice) String() string {
	bound := func(p *int32) string {
		if p == nil {
			return ""
		}
		return fmt.Sprint(*p)
	}
	return bound(s.Start) + ".." + bound(s.End)
}

func sameBound(a, b *int32) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func clone(p *int32) *int32 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
