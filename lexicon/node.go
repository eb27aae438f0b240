package lexicon

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// The "type" discriminant of every schema node.
const (
	TypeNull         = "null"
	TypeBoolean      = "boolean"
	TypeInteger      = "integer"
	TypeString       = "string"
	TypeBytes        = "bytes"
	TypeCidLink      = "cid-link"
	TypeBlob         = "blob"
	TypeArray        = "array"
	TypeObject       = "object"
	TypeParams       = "params"
	TypeToken        = "token"
	TypeRef          = "ref"
	TypeUnion        = "union"
	TypeUnknown      = "unknown"
	TypeRecord       = "record"
	TypeQuery        = "query"
	TypeProcedure    = "procedure"
	TypeSubscription = "subscription"
)

// Node is any schema definition that can appear in a document's defs, an array's items or an
// object's properties. The set of implementations is closed.
type Node interface {
	TypeName() string
	isNode()
}

// DecodeNode reads the "type" tag of a JSON object and decodes the rest of it as that variant.
func DecodeNode(data []byte) (Node, error) {
	tag, err := readTag(data)
	if err != nil {
		return nil, err
	}
	var n Node
	switch tag {
	case TypeNull:
		n = &Null{}
	case TypeBoolean:
		n = &Boolean{}
	case TypeInteger:
		n = &Integer{}
	case TypeString:
		n = &String{}
	case TypeBytes:
		n = &Bytes{}
	case TypeCidLink:
		n = &CidLink{}
	case TypeBlob:
		n = &Blob{}
	case TypeArray:
		n = &Array{}
	case TypeObject:
		n = &Object{}
	case TypeParams:
		n = &Params{}
	case TypeToken:
		n = &Token{}
	case TypeRef:
		n = &Ref{}
	case TypeUnion:
		n = &Union{}
	case TypeUnknown:
		n = &Unknown{}
	case TypeRecord:
		n = &Record{}
	case TypeQuery:
		n = &Query{}
	case TypeProcedure:
		n = &Procedure{}
	case TypeSubscription:
		n = &Subscription{}
	default:
		return nil, fmt.Errorf("unknown schema type %q", tag)
	}
	if err := json.Unmarshal(data, n); err != nil {
		return nil, err
	}
	return n, nil
}

func decodeNodes(raw map[string]json.RawMessage) (map[string]Node, error) {
	nodes := make(map[string]Node, len(raw))
	for name, data := range raw {
		n, err := DecodeNode(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		nodes[name] = n
	}
	return nodes, nil
}

type tagged struct {
	Type *string `json:"type"`
}

func readTag(data []byte) (string, error) {
	var t tagged
	if err := json.Unmarshal(data, &t); err != nil {
		return "", err
	}
	if t.Type == nil {
		return "", fmt.Errorf("schema node is missing its \"type\" field")
	}
	return *t.Type, nil
}

// marshalTagged encodes v, which must encode as a JSON object, with the "type" field in front.
func marshalTagged(tag string, v interface{}) ([]byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	name, err := json.Marshal(tag)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.WriteString(`{"type":`)
	buf.Write(name)
	if len(body) > 2 {
		buf.WriteByte(',')
		buf.Write(body[1:])
	} else {
		buf.WriteByte('}')
	}
	return buf.Bytes(), nil
}

// unmarshalTagged decodes data into v after checking that a present "type" field names tag.
func unmarshalTagged(data []byte, tag string, v interface{}) error {
	var t tagged
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}
	if t.Type != nil && *t.Type != tag {
		return fmt.Errorf("expected schema type %q, found %q", tag, *t.Type)
	}
	return json.Unmarshal(data, v)
}
