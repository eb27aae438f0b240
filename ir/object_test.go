package ir

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boynton/ana/lexicon"
)

func TestNewObject(test *testing.T) {
	src := `image { foo: String(default="bar") }`
	o, err := NewObject(src, fragment(test, src))
	require.NoError(test, err)
	assert.Equal(test, "image", o.Name)
	require.Len(test, o.Props, 1)
	foo := o.Props["foo"]
	require.NotNil(test, foo)
	assert.Equal(test, "foo", foo.Name)
	assert.Equal(test, KindString, foo.Value.Kind())
	assert.Equal(test, "bar", *foo.Value.(*String).Default)
}

func TestObjectSchema(test *testing.T) {
	src := `post {
	text: String(len=..3000, graphemes=..300),
	lang?: String(format="language")
	likes: Integer(range=0..)
	text: String(len=..300)
}`
	o, err := NewObject(src, fragment(test, src))
	require.NoError(test, err)
	assert.Equal(test, []string{"lang", "likes", "text"}, o.PropNames())
	assert.Equal(test, []string{"likes", "text"}, o.Required())
	assert.True(test, o.Props["lang"].Optional)
	// the later definition of text wins
	assert.True(test, o.Props["text"].Value.(*String).Graphemes.IsUnbounded())

	schema := o.Schema()
	assert.Equal(test, []string{"likes", "text"}, schema.Required)
	assert.Equal(test, &lexicon.String{Format: lexicon.FormatLanguage}, schema.Properties["lang"])
	assert.Equal(test, &lexicon.Integer{Minimum: i32(0)}, schema.Properties["likes"])
}

func TestEmptyObject(test *testing.T) {
	src := "empty {}"
	o, err := NewObject(src, fragment(test, src))
	require.NoError(test, err)
	assert.Empty(test, o.Props)
	assert.Nil(test, o.Required())
	assert.NotNil(test, o.Schema().Properties)
}

func TestNewProp(test *testing.T) {
	src := "size: Integer"
	p, err := NewProp(src, fragment(test, src))
	require.NoError(test, err)
	assert.Equal(test, "size", p.Name)
	assert.False(test, p.Optional)
	assert.Equal(test, KindInteger, p.Value.Kind())
}

func TestObjectErrors(test *testing.T) {
	var e *Error

	_, err := NewObject("Integer", fragment(test, "Integer"))
	require.True(test, errors.As(err, &e))
	assert.Equal(test, ErrWrongKind, e.Code)

	_, err = NewProp("Integer", fragment(test, "Integer"))
	require.True(test, errors.As(err, &e))
	assert.Equal(test, ErrWrongKind, e.Code)

	src := "thing { a: Integer, b: Decimal }"
	_, err = NewObject(src, fragment(test, src))
	require.True(test, errors.As(err, &e))
	assert.Equal(test, ErrUnknownType, e.Code)
	assert.Equal(test, "Decimal", src[e.Range.StartByte:e.Range.EndByte])

	_, err = ParseProperties(src, fragment(test, "a: Integer"))
	require.True(test, errors.As(err, &e))
	assert.Equal(test, ErrWrongKind, e.Code)
}
