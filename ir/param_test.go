package ir

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParam(test *testing.T) {
	cases := []struct {
		src    string
		expect ParamValue
	}{
		{`format="did"`, StringValue("did")},
		{`default=1`, IntegerValue(1)},
		{`default=true`, BooleanValue(true)},
	}
	for _, c := range cases {
		p, err := NewParam(c.src, fragment(test, c.src))
		require.NoError(test, err, c.src)
		assert.Equal(test, c.expect, p.Value, c.src)
	}

	src := "len=1..10"
	p, err := NewParam(src, fragment(test, src))
	require.NoError(test, err)
	assert.Equal(test, "len", p.Name)
	slice, ok := p.Value.(Slice)
	require.True(test, ok)
	assert.True(test, slice.Equal(Slice{Start: i32(1), End: i32(10)}))
	assert.Equal(test, 0, p.Loc.StartByte)
	assert.Equal(test, len(src), p.Loc.EndByte)
}

func TestNewParamWrongKind(test *testing.T) {
	_, err := NewParam("String", fragment(test, "String"))
	var e *Error
	require.True(test, errors.As(err, &e))
	assert.Equal(test, ErrWrongKind, e.Code)
}

func TestNewGenericType(test *testing.T) {
	src := `String(len=1..10, format="did", format="uri")`
	t, err := NewGenericType(src, fragment(test, src))
	require.NoError(test, err)
	assert.Equal(test, "String", t.Name)
	assert.Len(test, t.Params, 2)
	format, ok := t.StringParam("format")
	assert.True(test, ok)
	assert.Equal(test, "uri", format)
	assert.True(test, t.Slice.IsUnbounded())

	src = "Integer(0..9)"
	t, err = NewGenericType(src, fragment(test, src))
	require.NoError(test, err)
	assert.Empty(test, t.Params)
	assert.True(test, t.Slice.Equal(Slice{Start: i32(0), End: i32(9)}))

	_, err = NewGenericType(`"x"`, fragment(test, `"x"`))
	var e *Error
	require.True(test, errors.As(err, &e))
	assert.Equal(test, ErrWrongKind, e.Code)
	assert.Equal(test, 0, e.Range.StartByte)
	assert.Equal(test, 3, e.Range.EndByte)
}

func TestTypedAccessorsIgnoreOtherKinds(test *testing.T) {
	src := `Thing(a="x", b=2, c=true, d=1..2)`
	t, err := NewGenericType(src, fragment(test, src))
	require.NoError(test, err)

	_, ok := t.IntegerParam("a")
	assert.False(test, ok)
	_, ok = t.StringParam("b")
	assert.False(test, ok)
	_, ok = t.StringParam("c")
	assert.False(test, ok)
	_, ok = t.BooleanParam("d")
	assert.False(test, ok)
	assert.True(test, t.SliceParam("a").IsUnbounded())
	assert.False(test, t.SliceParam("d").IsUnbounded())
	_, ok = t.StringParam("missing")
	assert.False(test, ok)
	assert.Nil(test, t.Param("missing"))
}
