package lexicon

import (
	"encoding/json"
	"fmt"
)

// BodySchema is the schema allowed for an RPC input or output body: object, ref or union.
type BodySchema interface {
	Node
	isBodySchema()
}

func DecodeBodySchema(data []byte) (BodySchema, error) {
	tag, err := readTag(data)
	if err != nil {
		return nil, err
	}
	var s BodySchema
	switch tag {
	case TypeObject:
		s = &Object{}
	case TypeRef:
		s = &Ref{}
	case TypeUnion:
		s = &Union{}
	default:
		return nil, fmt.Errorf("schema type %q is not allowed as a body schema", tag)
	}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Body describes an HTTP request or response body.
type Body struct {
	Description string `json:"description,omitempty"`
	// Encoding is a MIME type, e.g. "application/json" or "*/*".
	Encoding string     `json:"encoding"`
	Schema   BodySchema `json:"schema,omitempty"`
}

func (b *Body) UnmarshalJSON(data []byte) error {
	type alias Body
	aux := struct {
		Schema json.RawMessage `json:"schema"`
		*alias
	}{alias: (*alias)(b)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	b.Schema = nil
	if aux.Schema != nil && string(aux.Schema) != "null" {
		s, err := DecodeBodySchema(aux.Schema)
		if err != nil {
			return fmt.Errorf("body schema: %w", err)
		}
		b.Schema = s
	}
	return nil
}

// Message describes the frames of a subscription stream.
type Message struct {
	Description string `json:"description,omitempty"`
	Schema      *Union `json:"schema"`
}

type RPCError struct {
	// Name is a short error name with no whitespace.
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type Query struct {
	Description string `json:"description,omitempty"`
	// Parameters describes the HTTP query parameters.
	Parameters *Params    `json:"parameters,omitempty"`
	Output     *Body      `json:"output,omitempty"`
	Errors     []RPCError `json:"errors,omitzero"`
}

func (*Query) TypeName() string { return TypeQuery }
func (*Query) isNode()          {}

func (q *Query) MarshalJSON() ([]byte, error) {
	type alias Query
	return marshalTagged(TypeQuery, (*alias)(q))
}

func (q *Query) UnmarshalJSON(data []byte) error {
	type alias Query
	return unmarshalTagged(data, TypeQuery, (*alias)(q))
}

type Procedure struct {
	Description string     `json:"description,omitempty"`
	Parameters  *Params    `json:"parameters,omitempty"`
	Output      *Body      `json:"output,omitempty"`
	Input       *Body      `json:"input,omitempty"`
	Errors      []RPCError `json:"errors,omitzero"`
}

func (*Procedure) TypeName() string { return TypeProcedure }
func (*Procedure) isNode()          {}

func (p *Procedure) MarshalJSON() ([]byte, error) {
	type alias Procedure
	return marshalTagged(TypeProcedure, (*alias)(p))
}

func (p *Procedure) UnmarshalJSON(data []byte) error {
	type alias Procedure
	return unmarshalTagged(data, TypeProcedure, (*alias)(p))
}

type Subscription struct {
	Description string     `json:"description,omitempty"`
	Parameters  *Params    `json:"parameters,omitempty"`
	Message     *Message   `json:"message,omitempty"`
	Errors      []RPCError `json:"errors,omitzero"`
}

func (*Subscription) TypeName() string { return TypeSubscription }
func (*Subscription) isNode()          {}

func (s *Subscription) MarshalJSON() ([]byte, error) {
	type alias Subscription
	return marshalTagged(TypeSubscription, (*alias)(s))
}

func (s *Subscription) UnmarshalJSON(data []byte) error {
	type alias Subscription
	return unmarshalTagged(data, TypeSubscription, (*alias)(s))
}

func (m *Message) MarshalJSON() ([]byte, error) {
	if m.Schema == nil {
		return nil, fmt.Errorf("message: missing schema")
	}
	type alias Message
	return json.Marshal((*alias)(m))
}

func (m *Message) UnmarshalJSON(data []byte) error {
	type alias Message
	if err := json.Unmarshal(data, (*alias)(m)); err != nil {
		return err
	}
	if m.Schema == nil {
		return fmt.Errorf("message: missing schema")
	}
	return nil
}
