package lexicon

import (
	"encoding/json"
	"fmt"
)

// ParamNode is the restricted set of schemas allowed as query parameters: boolean, integer,
// string, unknown, or an array of one of those.
type ParamNode interface {
	TypeName() string
	isParamNode()
}

// DecodeParamNode is DecodeNode for the parameter sub-union.
func DecodeParamNode(data []byte) (ParamNode, error) {
	tag, err := readTag(data)
	if err != nil {
		return nil, err
	}
	var n ParamNode
	switch tag {
	case TypeBoolean:
		n = &Boolean{}
	case TypeInteger:
		n = &Integer{}
	case TypeString:
		n = &String{}
	case TypeUnknown:
		n = &Unknown{}
	case TypeArray:
		n = &ParamArray{}
	default:
		return nil, fmt.Errorf("schema type %q is not allowed in params", tag)
	}
	if err := json.Unmarshal(data, n); err != nil {
		return nil, err
	}
	return n, nil
}

// ParamArray is an array whose items are themselves parameter scalars.
type ParamArray struct {
	Description string    `json:"description,omitempty"`
	Items       ParamNode `json:"items"`
	MinLength   *int32    `json:"minLength,omitempty"`
	MaxLength   *int32    `json:"maxLength,omitempty"`
}

func (*ParamArray) TypeName() string { return TypeArray }
func (*ParamArray) isParamNode()     {}

func (a *ParamArray) MarshalJSON() ([]byte, error) {
	if a.Items == nil {
		return nil, fmt.Errorf("array: missing items")
	}
	if _, nested := a.Items.(*ParamArray); nested {
		return nil, fmt.Errorf("params array items cannot be arrays")
	}
	type alias ParamArray
	return marshalTagged(TypeArray, (*alias)(a))
}

func (a *ParamArray) UnmarshalJSON(data []byte) error {
	type alias ParamArray
	aux := struct {
		Items json.RawMessage `json:"items"`
		*alias
	}{alias: (*alias)(a)}
	if err := unmarshalTagged(data, TypeArray, &aux); err != nil {
		return err
	}
	if aux.Items == nil {
		return fmt.Errorf("array: missing items")
	}
	items, err := DecodeParamNode(aux.Items)
	if err != nil {
		return fmt.Errorf("array items: %w", err)
	}
	if _, nested := items.(*ParamArray); nested {
		return fmt.Errorf("params array items cannot be arrays")
	}
	a.Items = items
	return nil
}

type Params struct {
	Description string               `json:"description,omitempty"`
	Required    []string             `json:"required,omitzero"`
	Properties  map[string]ParamNode `json:"properties"`
}

func (*Params) TypeName() string { return TypeParams }
func (*Params) isNode()          {}

func (p *Params) MarshalJSON() ([]byte, error) {
	type alias Params
	tmp := *p
	if tmp.Properties == nil {
		tmp.Properties = map[string]ParamNode{}
	}
	return marshalTagged(TypeParams, (*alias)(&tmp))
}

func (p *Params) UnmarshalJSON(data []byte) error {
	type alias Params
	aux := struct {
		Properties map[string]json.RawMessage `json:"properties"`
		*alias
	}{alias: (*alias)(p)}
	if err := unmarshalTagged(data, TypeParams, &aux); err != nil {
		return err
	}
	if aux.Properties == nil {
		return fmt.Errorf("params: missing properties")
	}
	p.Properties = make(map[string]ParamNode, len(aux.Properties))
	for name, raw := range aux.Properties {
		n, err := DecodeParamNode(raw)
		if err != nil {
			return fmt.Errorf("params %s: %w", name, err)
		}
		p.Properties[name] = n
	}
	return nil
}
