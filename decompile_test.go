package ana

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boynton/ana/lexicon"
)

func TestDecompile(test *testing.T) {
	doc, err := String(imageSource)
	require.NoError(test, err)
	src, err := Decompile(doc)
	require.NoError(test, err)
	assert.Equal(test, `lexicon app.example.image revision 3 description "Image embeds"

aspectRatio {
	height: Integer(range=1..)
	width: Integer(range=1..)
}

image {
	alt: String(description="Alt text", graphemes=..1000)
	aspect?: Ref(ref="#aspectRatio")
	image: Blob(accept="image/*", size=1000000)
}

visible: Boolean(default=true)
`, src)

	back, err := String(src)
	require.NoError(test, err)
	assert.Equal(test, doc, back)
}

func TestDecompileScalars(test *testing.T) {
	doc := lexicon.New("app.example.scalars")
	doc.Defs["a"] = &lexicon.String{Format: lexicon.FormatDatetime, MinLength: i32(1), Default: str("x"), Const: str("y")}
	doc.Defs["b"] = &lexicon.Integer{Minimum: i32(-5), Maximum: i32(5), Default: i32(0), Const: i32(1)}
	doc.Defs["c"] = &lexicon.Bytes{MaxLength: i32(16)}
	doc.Defs["d"] = &lexicon.CidLink{}
	doc.Defs["e"] = &lexicon.Unknown{Description: "anything"}
	doc.Defs["f"] = &lexicon.Null{}
	src, err := Decompile(doc)
	require.NoError(test, err)
	assert.Contains(test, src, `a: String(format="datetime", len=1.., default="x", const="y")`)
	assert.Contains(test, src, "b: Integer(range=-5..5, default=0, const=1)\n")
	assert.Contains(test, src, "c: Bytes(size=..16)\n")
	assert.Contains(test, src, "d: CidLink\n")
	assert.Contains(test, src, `e: Unknown(description="anything")`)
	assert.Contains(test, src, "f: Null\n")

	back, err := String(src)
	require.NoError(test, err)
	assert.Equal(test, doc, back)
}

func TestDecompileErrors(test *testing.T) {
	cases := map[string]lexicon.Node{
		"array":    &lexicon.Array{Items: &lexicon.String{}},
		"union":    &lexicon.Union{Refs: []string{"#a"}},
		"enum":     &lexicon.String{Enum: []string{"a", "b"}},
		"accept":   &lexicon.Blob{Accept: []string{"image/png", "image/jpeg"}},
		"quote":    &lexicon.String{Default: str(`say "hi"`)},
		"nullable": &lexicon.Object{Properties: map[string]lexicon.Node{"a": &lexicon.String{}}, Nullable: []string{"a"}},
		"nested":   &lexicon.Object{Properties: map[string]lexicon.Node{"a": &lexicon.Object{}}},
	}
	for name, node := range cases {
		doc := lexicon.New("app.example.bad")
		doc.Defs["main"] = node
		_, err := Decompile(doc)
		assert.Error(test, err, name)
	}
}

func i32(v int32) *int32 {
	return &v
}

func str(s string) *string {
	return &s
}
