package ir

import (
	"sort"
	"strings"

	"github.com/boynton/ana/lexicon"
	"github.com/boynton/ana/syntax"
)

type Kind string

const (
	KindNull    Kind = "null"
	KindBoolean Kind = "boolean"
	KindInteger Kind = "integer"
	KindString  Kind = "string"
	KindBytes   Kind = "bytes"
	KindBlob    Kind = "blob"
	KindCidLink Kind = "cid-link"
	KindUnknown Kind = "unknown"
	KindRef     Kind = "ref"
)

// Type is a lowered, concrete type. Implementations are *Null, *Boolean, *Integer, *String,
// *Bytes, *Blob, *CidLink, *Unknown and *Ref.
type Type interface {
	Kind() Kind
	Span() syntax.Range
	// Schema converts the type into its Lexicon schema node.
	Schema() lexicon.Node
	isType()
}

type lowerFunc func(t *GenericType) Type

var lowerings = map[string]lowerFunc{
	"null":     func(t *GenericType) Type { return LowerNull(t) },
	"boolean":  func(t *GenericType) Type { return LowerBoolean(t) },
	"integer":  func(t *GenericType) Type { return LowerInteger(t) },
	"string":   func(t *GenericType) Type { return LowerString(t) },
	"bytes":    func(t *GenericType) Type { return LowerBytes(t) },
	"blob":     func(t *GenericType) Type { return LowerBlob(t) },
	"cid-link": func(t *GenericType) Type { return LowerCidLink(t) },
	"cidlink":  func(t *GenericType) Type { return LowerCidLink(t) },
	"unknown":  func(t *GenericType) Type { return LowerUnknown(t) },
	"ref":      func(t *GenericType) Type { return LowerRef(t) },
}

// TypeNames lists the accepted (lowercase) type names.
func TypeNames() []string {
	names := make([]string, 0, len(lowerings))
	for name := range lowerings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lower dispatches on the type name, ignoring case. An unrecognized name is an error: there is
// no shape to fall back to.
func Lower(t *GenericType) (Type, error) {
	fn, ok := lowerings[strings.ToLower(t.Name)]
	if !ok {
		return nil, &Error{
			Code:  ErrUnknownType,
			Msg:   "unknown type " + t.Name + " (expected one of " + strings.Join(TypeNames(), ", ") + ")",
			Range: t.Loc,
		}
	}
	return fn(t), nil
}

// LowerNode reads and lowers a type expression fragment.
func LowerNode(src string, n syntax.Node) (Type, error) {
	t, err := NewGenericType(src, n)
	if err != nil {
		return nil, err
	}
	return Lower(t)
}
