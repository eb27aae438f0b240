package ana

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boynton/ana/ir"
	"github.com/boynton/ana/lexicon"
	"github.com/boynton/ana/syntax"
)

const imageSource = `// images and their metadata
lexicon app.example.image revision 3 description "Image embeds"

image {
	image: Blob(accept="image/*", size=1000000),
	alt: String(graphemes=..1000, description="Alt text"),
	/* optional */
	aspect?: Ref(ref="#aspectRatio")
}

aspectRatio {
	width: Integer(range=1..)
	height: Integer(range=1..)
}

visible: Boolean(default=true)
`

func TestCompile(test *testing.T) {
	doc, err := String(imageSource)
	require.NoError(test, err)
	assert.Equal(test, "app.example.image", doc.ID)
	require.NotNil(test, doc.Revision)
	assert.Equal(test, int32(3), *doc.Revision)
	assert.Equal(test, "Image embeds", doc.Description)
	assert.Equal(test, []string{"aspectRatio", "image", "visible"}, doc.DefNames())

	data, err := json.Marshal(doc)
	require.NoError(test, err)
	assert.JSONEq(test, `{
		"lexicon": 1,
		"id": "app.example.image",
		"revision": 3,
		"description": "Image embeds",
		"defs": {
			"image": {
				"type": "object",
				"required": ["alt", "image"],
				"properties": {
					"image": {"type": "blob", "accept": ["image/*"], "maxSize": 1000000},
					"alt": {"type": "string", "description": "Alt text", "maxGraphemes": 1000},
					"aspect": {"type": "ref", "ref": "#aspectRatio"}
				}
			},
			"aspectRatio": {
				"type": "object",
				"required": ["height", "width"],
				"properties": {
					"width": {"type": "integer", "minimum": 1},
					"height": {"type": "integer", "minimum": 1}
				}
			},
			"visible": {"type": "boolean", "default": true}
		}
	}`, string(data))
}

func TestCompileMinimal(test *testing.T) {
	doc, err := String("lexicon com.example.thing\nmain: CidLink")
	require.NoError(test, err)
	assert.Nil(test, doc.Revision)
	assert.Empty(test, doc.Description)
	assert.Equal(test, &lexicon.CidLink{}, doc.Defs["main"])
}

func TestCompileErrors(test *testing.T) {
	var e *ir.Error

	_, err := String("lexicon com.example.thing\na: Integer\nb: String\na { x: Null }")
	require.True(test, errors.As(err, &e))
	assert.Equal(test, ir.ErrDuplicateDef, e.Code)
	assert.Equal(test, 3, e.Range.StartPoint.Row)

	_, err = String("lexicon com.example.thing\nthing { size: Float }")
	require.True(test, errors.As(err, &e))
	assert.Equal(test, ir.ErrUnknownType, e.Code)

	_, err = String("lexicon thing\na: Integer")
	require.True(test, errors.As(err, &e))
	assert.Contains(test, e.Msg, "NSID")

	// a document needs at least one definition
	_, err = String("lexicon com.example.thing")
	require.Error(test, err)
	assert.False(test, errors.As(err, &e))

	var se *syntax.Error
	_, err = String("lexicon com.example.thing\nthing { size: Integer(range=1..2 }")
	require.True(test, errors.As(err, &se))
}

func TestCompileFragmentTree(test *testing.T) {
	tree, err := syntax.ParseFragment("Integer")
	require.NoError(test, err)
	_, err = Compile(tree.Source, tree)
	var e *ir.Error
	require.True(test, errors.As(err, &e))
	assert.Equal(test, ir.ErrWrongKind, e.Code)
}

func TestFile(test *testing.T) {
	dir := test.TempDir()
	path := filepath.Join(dir, "image.ana")
	require.NoError(test, os.WriteFile(path, []byte(imageSource), 0644))
	assert.True(test, IsValidFile(path))
	doc, err := File(path)
	require.NoError(test, err)
	assert.Len(test, doc.Defs, 3)

	_, err = File(filepath.Join(dir, "missing.ana"))
	assert.Error(test, err)
}

func TestCache(test *testing.T) {
	cache, err := NewCache(2)
	require.NoError(test, err)
	first, err := cache.String(imageSource)
	require.NoError(test, err)
	second, err := cache.String(imageSource)
	require.NoError(test, err)
	assert.Same(test, first, second)
	assert.Equal(test, 1, cache.Len())

	_, err = cache.String("lexicon com.example.thing\nthing { size: Float }")
	assert.Error(test, err)
	assert.Equal(test, 1, cache.Len())

	_, err = NewCache(0)
	assert.Error(test, err)
}
