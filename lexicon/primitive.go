package lexicon

import (
	"encoding/json"
	"fmt"
)

type Null struct {
	// Description is short, usually only a sentence or two.
	Description string `json:"description,omitempty"`
}

func (*Null) TypeName() string { return TypeNull }
func (*Null) isNode()          {}

func (n *Null) MarshalJSON() ([]byte, error) {
	type alias Null
	return marshalTagged(TypeNull, (*alias)(n))
}

func (n *Null) UnmarshalJSON(data []byte) error {
	type alias Null
	return unmarshalTagged(data, TypeNull, (*alias)(n))
}

type Boolean struct {
	Description string `json:"description,omitempty"`
	Default     *bool  `json:"default,omitempty"`
	Const       *bool  `json:"const,omitempty"`
}

func (*Boolean) TypeName() string { return TypeBoolean }
func (*Boolean) isNode()          {}
func (*Boolean) isParamNode()     {}

func (b *Boolean) MarshalJSON() ([]byte, error) {
	type alias Boolean
	return marshalTagged(TypeBoolean, (*alias)(b))
}

func (b *Boolean) UnmarshalJSON(data []byte) error {
	type alias Boolean
	return unmarshalTagged(data, TypeBoolean, (*alias)(b))
}

type Integer struct {
	Description string `json:"description,omitempty"`
	Minimum     *int32 `json:"minimum,omitempty"`
	Maximum     *int32 `json:"maximum,omitempty"`
	// Enum is a closed set of allowed values.
	Enum    []int32 `json:"enum,omitzero"`
	Default *int32  `json:"default,omitempty"`
	Const   *int32  `json:"const,omitempty"`
}

func (*Integer) TypeName() string { return TypeInteger }
func (*Integer) isNode()          {}
func (*Integer) isParamNode()     {}

func (i *Integer) MarshalJSON() ([]byte, error) {
	type alias Integer
	return marshalTagged(TypeInteger, (*alias)(i))
}

func (i *Integer) UnmarshalJSON(data []byte) error {
	type alias Integer
	return unmarshalTagged(data, TypeInteger, (*alias)(i))
}

// StringFormat restricts the lexical form of a string value.
type StringFormat string

const (
	FormatAtIdentifier StringFormat = "at-identifier"
	FormatAtUri        StringFormat = "at-uri"
	FormatCid          StringFormat = "cid"
	FormatDatetime     StringFormat = "datetime"
	FormatDid          StringFormat = "did"
	FormatHandle       StringFormat = "handle"
	FormatNsid         StringFormat = "nsid"
	FormatTid          StringFormat = "tid"
	FormatUri          StringFormat = "uri"
	FormatRecordKey    StringFormat = "record-key"
	FormatLanguage     StringFormat = "language"
)

var StringFormats = []StringFormat{
	FormatAtIdentifier,
	FormatAtUri,
	FormatCid,
	FormatDatetime,
	FormatDid,
	FormatHandle,
	FormatNsid,
	FormatTid,
	FormatUri,
	FormatRecordKey,
	FormatLanguage,
}

// ParseStringFormat matches s exactly (case-sensitive) against the kebab-case format names.
func ParseStringFormat(s string) (StringFormat, bool) {
	for _, f := range StringFormats {
		if string(f) == s {
			return f, true
		}
	}
	return "", false
}

func (f *StringFormat) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	format, ok := ParseStringFormat(s)
	if !ok {
		return fmt.Errorf("unknown string format %q", s)
	}
	*f = format
	return nil
}

type String struct {
	Description string       `json:"description,omitempty"`
	Format      StringFormat `json:"format,omitempty"`
	// MaxLength and MinLength count UTF-8 bytes.
	MaxLength *int32 `json:"maxLength,omitempty"`
	MinLength *int32 `json:"minLength,omitempty"`
	// MaxGraphemes and MinGraphemes count Unicode grapheme clusters.
	MaxGraphemes *int32 `json:"maxGraphemes,omitempty"`
	MinGraphemes *int32 `json:"minGraphemes,omitempty"`
	// KnownValues suggests common values without limiting the value to them.
	KnownValues []string `json:"knownValues,omitzero"`
	Enum        []string `json:"enum,omitzero"`
	Default     *string  `json:"default,omitempty"`
	Const       *string  `json:"const,omitempty"`
}

func (*String) TypeName() string { return TypeString }
func (*String) isNode()          {}
func (*String) isParamNode()     {}

func (s *String) MarshalJSON() ([]byte, error) {
	type alias String
	return marshalTagged(TypeString, (*alias)(s))
}

func (s *String) UnmarshalJSON(data []byte) error {
	type alias String
	return unmarshalTagged(data, TypeString, (*alias)(s))
}

type Bytes struct {
	Description string `json:"description,omitempty"`
	// MinLength and MaxLength are raw sizes, with no encoding.
	MinLength *int32 `json:"minLength,omitempty"`
	MaxLength *int32 `json:"maxLength,omitempty"`
}

func (*Bytes) TypeName() string { return TypeBytes }
func (*Bytes) isNode()          {}

func (b *Bytes) MarshalJSON() ([]byte, error) {
	type alias Bytes
	return marshalTagged(TypeBytes, (*alias)(b))
}

func (b *Bytes) UnmarshalJSON(data []byte) error {
	type alias Bytes
	return unmarshalTagged(data, TypeBytes, (*alias)(b))
}

type CidLink struct {
	Description string `json:"description,omitempty"`
}

func (*CidLink) TypeName() string { return TypeCidLink }
func (*CidLink) isNode()          {}

func (c *CidLink) MarshalJSON() ([]byte, error) {
	type alias CidLink
	return marshalTagged(TypeCidLink, (*alias)(c))
}

func (c *CidLink) UnmarshalJSON(data []byte) error {
	type alias CidLink
	return unmarshalTagged(data, TypeCidLink, (*alias)(c))
}

type Blob struct {
	Description string `json:"description,omitempty"`
	// Accept lists MIME types; each may end in * as a glob, and */* accepts anything.
	Accept  []string `json:"accept,omitzero"`
	MaxSize *int32   `json:"maxSize,omitempty"`
}

func (*Blob) TypeName() string { return TypeBlob }
func (*Blob) isNode()          {}

func (b *Blob) MarshalJSON() ([]byte, error) {
	type alias Blob
	return marshalTagged(TypeBlob, (*alias)(b))
}

func (b *Blob) UnmarshalJSON(data []byte) error {
	type alias Blob
	return unmarshalTagged(data, TypeBlob, (*alias)(b))
}

type Unknown struct {
	Description string `json:"description,omitempty"`
}

func (*Unknown) TypeName() string { return TypeUnknown }
func (*Unknown) isNode()          {}
func (*Unknown) isParamNode()     {}

func (u *Unknown) MarshalJSON() ([]byte, error) {
	type alias Unknown
	return marshalTagged(TypeUnknown, (*alias)(u))
}

func (u *Unknown) UnmarshalJSON(data []byte) error {
	type alias Unknown
	return unmarshalTagged(data, TypeUnknown, (*alias)(u))
}

// Token is a bare marker with no payload.
type Token struct {
	Description string `json:"description,omitempty"`
}

func (*Token) TypeName() string { return TypeToken }
func (*Token) isNode()          {}

func (t *Token) MarshalJSON() ([]byte, error) {
	type alias Token
	return marshalTagged(TypeToken, (*alias)(t))
}

func (t *Token) UnmarshalJSON(data []byte) error {
	type alias Token
	return unmarshalTagged(data, TypeToken, (*alias)(t))
}
