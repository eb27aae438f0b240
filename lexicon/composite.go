package lexicon

import (
	"encoding/json"
	"fmt"
)

type Array struct {
	Description string `json:"description,omitempty"`
	// Items describes every element of the array.
	Items Node `json:"items"`
	// MinLength and MaxLength count elements.
	MinLength *int32 `json:"minLength,omitempty"`
	MaxLength *int32 `json:"maxLength,omitempty"`
}

func (*Array) TypeName() string { return TypeArray }
func (*Array) isNode()          {}

func (a *Array) MarshalJSON() ([]byte, error) {
	if a.Items == nil {
		return nil, fmt.Errorf("array: missing items")
	}
	type alias Array
	return marshalTagged(TypeArray, (*alias)(a))
}

func (a *Array) UnmarshalJSON(data []byte) error {
	type alias Array
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
	items, err := DecodeNode(aux.Items)
	if err != nil {
		return fmt.Errorf("array items: %w", err)
	}
	a.Items = items
	return nil
}

type Object struct {
	Description string `json:"description,omitempty"`
	// Properties maps each field name to its schema.
	Properties map[string]Node `json:"properties"`
	Required   []string        `json:"required,omitzero"`
	// Nullable names the properties that may hold null.
	Nullable []string `json:"nullable,omitzero"`
}

func (*Object) TypeName() string { return TypeObject }
func (*Object) isNode()          {}
func (*Object) isBodySchema()    {}

func (o *Object) MarshalJSON() ([]byte, error) {
	type alias Object
	tmp := *o
	if tmp.Properties == nil {
		tmp.Properties = map[string]Node{}
	}
	return marshalTagged(TypeObject, (*alias)(&tmp))
}

func (o *Object) UnmarshalJSON(data []byte) error {
	type alias Object
	aux := struct {
		Properties map[string]json.RawMessage `json:"properties"`
		*alias
	}{alias: (*alias)(o)}
	if err := unmarshalTagged(data, TypeObject, &aux); err != nil {
		return err
	}
	if aux.Properties == nil {
		return fmt.Errorf("object: missing properties")
	}
	props, err := decodeNodes(aux.Properties)
	if err != nil {
		return fmt.Errorf("object properties: %w", err)
	}
	o.Properties = props
	return nil
}

// Ref points at another definition by name: "#local", "nsid" or "nsid#name".
type Ref struct {
	Description string `json:"description,omitempty"`
	Ref         string `json:"ref"`
}

func (*Ref) TypeName() string { return TypeRef }
func (*Ref) isNode()          {}
func (*Ref) isBodySchema()    {}

func (r *Ref) MarshalJSON() ([]byte, error) {
	type alias Ref
	return marshalTagged(TypeRef, (*alias)(r))
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	type alias Ref
	return unmarshalTagged(data, TypeRef, (*alias)(r))
}

type Union struct {
	Description string   `json:"description,omitempty"`
	Refs        []string `json:"refs"`
	// Closed unions reject types outside Refs; unions are open when unset.
	Closed *bool `json:"closed,omitempty"`
}

func (*Union) TypeName() string { return TypeUnion }
func (*Union) isNode()          {}
func (*Union) isBodySchema()    {}

func (u *Union) MarshalJSON() ([]byte, error) {
	type alias Union
	tmp := *u
	if tmp.Refs == nil {
		tmp.Refs = []string{}
	}
	return marshalTagged(TypeUnion, (*alias)(&tmp))
}

func (u *Union) UnmarshalJSON(data []byte) error {
	type alias Union
	if err := unmarshalTagged(data, TypeUnion, (*alias)(u)); err != nil {
		return err
	}
	if u.Refs == nil {
		return fmt.Errorf("union: missing refs")
	}
	return nil
}

type Record struct {
	Description string `json:"description,omitempty"`
	// Key names the record key type, e.g. "tid".
	Key    string  `json:"key"`
	Record *Object `json:"record"`
}

func (*Record) TypeName() string { return TypeRecord }
func (*Record) isNode()          {}

func (r *Record) MarshalJSON() ([]byte, error) {
	if r.Record == nil {
		return nil, fmt.Errorf("record: missing record object")
	}
	type alias Record
	return marshalTagged(TypeRecord, (*alias)(r))
}

func (r *Record) UnmarshalJSON(data []byte) error {
	type alias Record
	if err := unmarshalTagged(data, TypeRecord, (*alias)(r)); err != nil {
		return err
	}
	if r.Record == nil {
		return fmt.Errorf("record: missing record object")
	}
	return nil
}
