package ir

import (
	"fmt"

	"github.com/boynton/ana/syntax"
)

// ErrorCode classifies a structural lowering failure.
type ErrorCode string

const (
	// ErrWrongKind indicates a fragment of one kind was found where another was required.
	ErrWrongKind ErrorCode = "wrong-kind"
	// ErrMissingChild indicates a fragment lacks a required named child.
	ErrMissingChild ErrorCode = "missing-child"
	// ErrUnknownType indicates a type expression names no known type.
	ErrUnknownType ErrorCode = "unknown-type"
	// ErrBadParamValue indicates a parameter value that is not a string, integer, boolean or range.
	ErrBadParamValue ErrorCode = "bad-param-value"
	// ErrDuplicateDef indicates two definitions share a name in one document.
	ErrDuplicateDef ErrorCode = "duplicate-def"
)

// Error is a structural failure, located at the offending fragment. It aborts the whole document.
type Error struct {
	Code  ErrorCode
	Msg   string
	Range syntax.Range
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Range, e.Msg)
}

func NewError(code ErrorCode, n syntax.Node, format string, args ...interface{}) *Error {
	e := &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
	if n != nil {
		e.Range = n.Range()
	}
	return e
}

func expectKind(n syntax.Node, kind string) error {
	if n == nil {
		return &Error{Code: ErrMissingChild, Msg: fmt.Sprintf("expected %s, found nothing", kind)}
	}
	if n.Kind() != kind {
		return NewError(ErrWrongKind, n, "expected %s, found %s", kind, n.Kind())
	}
	return nil
}

func namedChild(n syntax.Node, i int, what string) (syntax.Node, error) {
	child := n.NamedChild(i)
	if child == nil {
		return nil, NewError(ErrMissingChild, n, "%s is missing its %s", n.Kind(), what)
	}
	return child, nil
}
