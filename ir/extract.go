// Package ir lowers parsed .ana type expressions into concrete types and Lexicon schema nodes.
//
// Lowering runs in three steps. Attribute extraction reads literal values out of syntax
// fragments; a GenericType collects a type expression's name and parameters; and a per-kind
// lowering function turns the GenericType into a concrete Type. Structural problems (a fragment
// of the wrong kind, an unknown type name) are returned as *Error. A known parameter holding the
// wrong kind of value is ignored, exactly as if it were absent.
package ir

import (
	"fmt"
	"strconv"

	"github.com/boynton/ana/syntax"
)

// ExtractString returns the contents of a string fragment without its delimiting quotes.
func ExtractString(src string, n syntax.Node) (string, bool) {
	if n == nil || n.Kind() != syntax.KindString {
		return "", false
	}
	r := n.Range()
	return src[r.StartByte+1 : r.EndByte-1], true
}

// ExtractInteger parses an integer fragment. The grammar only produces well-formed base-10
// numerals that fit in 32 bits, so anything else is a defect and panics.
func ExtractInteger(src string, n syntax.Node) (int32, bool) {
	if n == nil || n.Kind() != syntax.KindInteger {
		return 0, false
	}
	text := n.Text(src)
	v, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		panic(fmt.Sprintf("malformed integer literal %q at %s", text, n.Range()))
	}
	return int32(v), true
}

func ExtractBoolean(src string, n syntax.Node) (bool, bool) {
	if n == nil || n.Kind() != syntax.KindBoolean {
		return false, false
	}
	return n.Text(src) == "true", true
}

// ExtractSlice reads the min and max children of any fragment. A fragment without them yields
// an unbounded slice located at the fragment.
func ExtractSlice(src string, n syntax.Node) Slice {
	if n == nil {
		return Unbounded()
	}
	s := Slice{Loc: n.Range()}
	if v, ok := ExtractInteger(src, n.ChildByFieldName("min")); ok {
		s.Start = &v
	}
	if v, ok := ExtractInteger(src, n.ChildByFieldName("max")); ok {
		s.End = &v
	}
	return s
}
