package ir

import (
	"github.com/boynton/ana/syntax"
)

// ParamValue is the value of one name=value argument: StringValue, IntegerValue,
// BooleanValue or Slice.
type ParamValue interface {
	isParamValue()
}

type StringValue string

func (StringValue) isParamValue() {}

type IntegerValue int32

func (IntegerValue) isParamValue() {}

type BooleanValue bool

func (BooleanValue) isParamValue() {}

type Param struct {
	Name  string
	Value ParamValue
	Loc   syntax.Range
}

// NewParam reads a name=value fragment.
func NewParam(src string, n syntax.Node) (*Param, error) {
	if err := expectKind(n, syntax.KindParam); err != nil {
		return nil, err
	}
	name, err := namedChild(n, 0, "name")
	if err != nil {
		return nil, err
	}
	value, err := namedChild(n, 1, "value")
	if err != nil {
		return nil, err
	}
	p := &Param{Name: name.Text(src), Loc: n.Range()}
	switch value.Kind() {
	case syntax.KindString:
		s, _ := ExtractString(src, value)
		p.Value = StringValue(s)
	case syntax.KindInteger:
		i, _ := ExtractInteger(src, value)
		p.Value = IntegerValue(i)
	case syntax.KindBoolean:
		b, _ := ExtractBoolean(src, value)
		p.Value = BooleanValue(b)
	case syntax.KindSlice:
		p.Value = ExtractSlice(src, value)
	default:
		return nil, NewError(ErrBadParamValue, value, "parameter %s has an unsupported %s value", p.Name, value.Kind())
	}
	return p, nil
}

// GenericType is a type expression that has not been lowered yet, e.g. String(len=1..10).
type GenericType struct {
	Name   string
	Params map[string]*Param
	// Slice holds a bare range written directly in the argument list, e.g. Integer(0..9).
	Slice Slice
	Loc   syntax.Range
}

// NewGenericType reads a type expression fragment. Later parameters with the same name
// replace earlier ones.
func NewGenericType(src string, n syntax.Node) (*GenericType, error) {
	if err := expectKind(n, syntax.KindType); err != nil {
		return nil, err
	}
	name, err := namedChild(n, 0, "name")
	if err != nil {
		return nil, err
	}
	t := &GenericType{
		Name:   name.Text(src),
		Params: make(map[string]*Param),
		Slice:  ExtractSlice(src, n),
		Loc:    n.Range(),
	}
	for _, child := range n.ChildrenByFieldName("param") {
		p, err := NewParam(src, child)
		if err != nil {
			return nil, err
		}
		t.Params[p.Name] = p
	}
	return t, nil
}

func (t *GenericType) Param(name string) ParamValue {
	if p, ok := t.Params[name]; ok {
		return p.Value
	}
	return nil
}

// The typed accessors below report absence for a missing parameter and for a parameter
// holding a different kind of value alike.

func (t *GenericType) StringParam(name string) (string, bool) {
	if v, ok := t.Param(name).(StringValue); ok {
		return string(v), true
	}
	return "", false
}

func (t *GenericType) IntegerParam(name string) (int32, bool) {
	if v, ok := t.Param(name).(IntegerValue); ok {
		return int32(v), true
	}
	return 0, false
}

func (t *GenericType) BooleanParam(name string) (bool, bool) {
	if v, ok := t.Param(name).(BooleanValue); ok {
		return bool(v), true
	}
	return false, false
}

// SliceParam returns Unbounded() when the parameter is absent or not a range.
func (t *GenericType) SliceParam(name string) Slice {
	if v, ok := t.Param(name).(Slice); ok {
		return v
	}
	return Unbounded()
}

func (t *GenericType) stringPtr(name string) *string {
	if s, ok := t.StringParam(name); ok {
		return &s
	}
	return nil
}

func (t *GenericType) integerPtr(name string) *int32 {
	if i, ok := t.IntegerParam(name); ok {
		return &i
	}
	return nil
}

func (t *GenericType) booleanPtr(name string) *bool {
	if b, ok := t.BooleanParam(name); ok {
		return &b
	}
	return nil
}

func (t *GenericType) description() string {
	s, _ := t.StringParam("description")
	return s
}
