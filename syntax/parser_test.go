package syntax

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTypeFragment(test *testing.T) {
	src := `String(len=1..10, format="did")`
	tree, err := ParseFragment(src)
	require.NoError(test, err)
	root := tree.Root()
	assert.Equal(test, KindType, root.Kind())
	assert.Equal(test, "String", root.NamedChild(0).Text(src))
	params := root.ChildrenByFieldName("param")
	require.Len(test, params, 2)
	assert.Equal(test, "len", params[0].NamedChild(0).Text(src))
	assert.Equal(test, KindSlice, params[0].NamedChild(1).Kind())
	assert.Equal(test, `"did"`, params[1].NamedChild(1).Text(src))
	assert.Equal(test, 0, root.Range().StartByte)
	assert.Equal(test, len(src), root.Range().EndByte)
	assert.Equal(test, "(type (identifier) (param (identifier) (slice (integer) (integer))) (param (identifier) (string)))", SExpr(root))
}

func TestParseBareType(test *testing.T) {
	tree, err := ParseFragment("Boolean")
	require.NoError(test, err)
	root := tree.Root()
	assert.Equal(test, KindType, root.Kind())
	assert.Equal(test, 1, root.NamedChildCount())
	assert.Equal(test, 7, root.Range().EndByte)
	assert.Nil(test, root.ChildByFieldName("min"))
}

func TestParseBareRangeOnType(test *testing.T) {
	src := "Integer(0..9, default=3)"
	tree, err := ParseFragment(src)
	require.NoError(test, err)
	root := tree.Root()
	require.NotNil(test, root.ChildByFieldName("min"))
	assert.Equal(test, "0", root.ChildByFieldName("min").Text(src))
	assert.Equal(test, "9", root.ChildByFieldName("max").Text(src))
	assert.Len(test, root.ChildrenByFieldName("param"), 1)

	_, err = ParseFragment("Integer(0..9, 1..2)")
	assert.Error(test, err)
}

func TestParseSlices(test *testing.T) {
	cases := map[string][2]bool{
		"1..2": {true, true},
		"..2":  {false, true},
		"1..":  {true, false},
		"..":   {false, false},
	}
	for src, expect := range cases {
		tree, err := ParseFragment(src)
		require.NoError(test, err, src)
		root := tree.Root()
		assert.Equal(test, KindSlice, root.Kind(), src)
		assert.Equal(test, expect[0], root.ChildByFieldName("min") != nil, src)
		assert.Equal(test, expect[1], root.ChildByFieldName("max") != nil, src)
	}
}

func TestParseLiterals(test *testing.T) {
	tree, err := ParseFragment(`"wow"`)
	require.NoError(test, err)
	assert.Equal(test, KindString, tree.Root().Kind())
	assert.Equal(test, `"wow"`, tree.Root().Text(tree.Source))

	tree, err = ParseFragment("-42")
	require.NoError(test, err)
	assert.Equal(test, KindInteger, tree.Root().Kind())

	tree, err = ParseFragment("true")
	require.NoError(test, err)
	assert.Equal(test, KindBoolean, tree.Root().Kind())
}

func TestParseParamFragment(test *testing.T) {
	src := "foo=42"
	tree, err := ParseFragment(src)
	require.NoError(test, err)
	root := tree.Root()
	assert.Equal(test, KindParam, root.Kind())
	assert.Equal(test, 0, root.Range().StartByte)
	assert.Equal(test, 6, root.Range().EndByte)
	assert.Equal(test, 2, root.NamedChildCount())
	assert.Equal(test, 3, root.ChildCount())
}

func TestParseObjectFragment(test *testing.T) {
	src := `image { foo: String(default="bar"), bar?: Integer }`
	tree, err := ParseFragment(src)
	require.NoError(test, err)
	root := tree.Root()
	assert.Equal(test, KindObject, root.Kind())
	assert.Equal(test, "image", root.NamedChild(0).Text(src))
	body := root.NamedChild(1)
	assert.Equal(test, KindBody, body.Kind())
	require.Equal(test, 2, body.NamedChildCount())
	bar := body.NamedChild(1)
	assert.Equal(test, 2, bar.NamedChildCount())
	assert.Equal(test, "?", bar.Child(1).Kind())
}

func TestParseDocument(test *testing.T) {
	src := `// an example
lexicon com.example.image revision 2 description "Images."

/* the main record */
image {
    foo: String(default="bar")
    size?: Integer(range=0..100)
}

tag: String(len=1..64)
`
	tree, err := Parse(src)
	require.NoError(test, err)
	root := tree.Root()
	assert.Equal(test, KindSourceFile, root.Kind())
	ns := root.ChildByFieldName("namespace")
	require.NotNil(test, ns)
	assert.Equal(test, "com.example.image", ns.ChildByFieldName("id").Text(src))
	assert.Equal(test, "2", ns.ChildByFieldName("revision").Text(src))
	assert.Equal(test, `"Images."`, ns.ChildByFieldName("description").Text(src))
	defs := root.ChildrenByFieldName("definition")
	require.Len(test, defs, 2)
	assert.Equal(test, KindObject, defs[0].Kind())
	assert.Equal(test, KindProperty, defs[1].Kind())
	assert.Equal(test, 4, defs[0].Range().StartPoint.Row)
}

func TestParseErrors(test *testing.T) {
	bad := []string{
		`image { foo String }`,
		`String(len=)`,
		`Integer(default=99999999999)`,
		`String(format="did)`,
	}
	for _, src := range bad {
		_, err := ParseFragment(src)
		require.Error(test, err, src)
		var syntaxErr *Error
		assert.True(test, errors.As(err, &syntaxErr), src)
	}
	_, err := Parse(`image { foo: String }`)
	assert.Error(test, err)
}
