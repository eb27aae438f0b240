package graphql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boynton/ana/lexicon"
)

func i32(v int32) *int32 {
	return &v
}

func sampleDoc() *lexicon.Lexicon {
	doc := lexicon.New("app.example.feed")
	doc.Defs["post"] = &lexicon.Object{
		Description: "A post in a feed",
		Required:    []string{"text", "createdAt"},
		Properties: map[string]lexicon.Node{
			"text":      &lexicon.String{MaxGraphemes: i32(300)},
			"createdAt": &lexicon.String{Format: lexicon.FormatDatetime},
			"likes":     &lexicon.Integer{Minimum: i32(0)},
			"tags":      &lexicon.Array{Items: &lexicon.Ref{Ref: "#tag"}},
			"embed":     &lexicon.Union{Refs: []string{"#image", "com.example.external#main"}},
			"cid":       &lexicon.CidLink{},
			"author":    &lexicon.Ref{Ref: "#author"},
		},
	}
	doc.Defs["tag"] = &lexicon.String{MaxLength: i32(64)}
	doc.Defs["image"] = &lexicon.Object{
		Properties: map[string]lexicon.Node{
			"blob": &lexicon.Blob{Accept: []string{"image/*"}},
		},
	}
	doc.Defs["author"] = &lexicon.Object{
		Required: []string{"did"},
		Properties: map[string]lexicon.Node{
			"did":  &lexicon.String{Format: lexicon.FormatDid},
			"meta": &lexicon.Object{Properties: map[string]lexicon.Node{"age": &lexicon.Integer{}}},
		},
	}
	doc.Defs["main"] = &lexicon.Query{
		Description: "Fetch the feed",
		Parameters: &lexicon.Params{
			Required: []string{"actor"},
			Properties: map[string]lexicon.ParamNode{
				"actor": &lexicon.String{Format: lexicon.FormatDid},
				"limit": &lexicon.Integer{Minimum: i32(1), Maximum: i32(100)},
				"tags":  &lexicon.ParamArray{Items: &lexicon.String{}},
			},
		},
		Output: &lexicon.Body{
			Encoding: "application/json",
			Schema: &lexicon.Object{
				Properties: map[string]lexicon.Node{
					"posts": &lexicon.Array{Items: &lexicon.Ref{Ref: "#post"}},
				},
			},
		},
	}
	return doc
}

func TestExport(test *testing.T) {
	sdl, err := Export(sampleDoc(), map[string]string{"datetime": "Datetime"})
	require.NoError(test, err)
	require.NoError(test, Validate(sdl))

	assert.Contains(test, sdl, "# A post in a feed\ntype Post {\n")
	assert.Contains(test, sdl, "  createdAt: Datetime!\n")
	assert.Contains(test, sdl, "  text: String!\n")
	assert.Contains(test, sdl, "  likes: Int\n")
	// scalar definitions are inlined at the reference
	assert.Contains(test, sdl, "  tags: [String!]\n")
	assert.Contains(test, sdl, "  author: Author\n")
	assert.Contains(test, sdl, "  cid: CidLink\n")
	assert.Contains(test, sdl, "  embed: PostEmbed\n")
	assert.Contains(test, sdl, "union PostEmbed =\n    Image\n  | ComExampleExternalMain\n")
	assert.Contains(test, sdl, "type AuthorMeta {\n  age: Int\n}\n")
	assert.Contains(test, sdl, "type FeedOutput {\n  posts: [Post!]\n}\n")
	assert.Contains(test, sdl, "type Query {\n  # Fetch the feed\n  feed(actor: String!, limit: Int, tags: [String!]): FeedOutput\n}\n")
	assert.Contains(test, sdl, "scalar Blob\n")
	assert.Contains(test, sdl, "scalar Datetime\n")
	assert.Contains(test, sdl, "scalar ComExampleExternalMain\n")
	assert.NotContains(test, sdl, "type Tag")
}

func TestExportOperations(test *testing.T) {
	doc := lexicon.New("app.example.ops")
	doc.Defs["create"] = &lexicon.Procedure{
		Input: &lexicon.Body{
			Encoding: "application/json",
			Schema:   &lexicon.Object{Properties: map[string]lexicon.Node{"text": &lexicon.String{}}},
		},
		Output: &lexicon.Body{Encoding: "application/json", Schema: &lexicon.Ref{Ref: "#result"}},
	}
	doc.Defs["result"] = &lexicon.Object{Properties: map[string]lexicon.Node{"uri": &lexicon.String{Format: lexicon.FormatAtUri}}}
	doc.Defs["events"] = &lexicon.Subscription{
		Message: &lexicon.Message{Schema: &lexicon.Union{Refs: []string{"#result"}}},
	}
	sdl, err := Export(doc, nil)
	require.NoError(test, err)
	assert.Contains(test, sdl, "type Mutation {\n  create(input: CreateInput!): Result\n}\n")
	assert.Contains(test, sdl, "type CreateInput {\n  text: String\n}\n")
	assert.Contains(test, sdl, "type Subscription {\n  events: EventsMessage\n}\n")
	assert.Contains(test, sdl, "union EventsMessage =\n    Result\n")
}

func TestExportErrors(test *testing.T) {
	doc := lexicon.New("app.example.broken")
	doc.Defs["thing"] = &lexicon.Object{Properties: map[string]lexicon.Node{"x": &lexicon.Ref{Ref: "#missing"}}}
	_, err := Export(doc, nil)
	assert.Error(test, err)

	doc = lexicon.New("app.example.loop")
	doc.Defs["a"] = &lexicon.Ref{Ref: "#b"}
	doc.Defs["b"] = &lexicon.Ref{Ref: "#a"}
	doc.Defs["thing"] = &lexicon.Object{Properties: map[string]lexicon.Node{"x": &lexicon.Ref{Ref: "#a"}}}
	_, err = Export(doc, nil)
	assert.Error(test, err)

	assert.Error(test, Validate("type {"))
}

func TestImport(test *testing.T) {
	src := `
schema { query: Root }

type Root {
  posts: [Post!]
}

"A post"
type Post {
  text: String!
  likes: Int
  tags: [String!]!
  mood: Mood
  cid: CidLink
  extra: Whatever
}

enum Mood { HAPPY SAD }

union Embed = Post

scalar CidLink
scalar Whatever
`
	doc, err := Import([]byte(src), "app.example.imported", nil)
	require.NoError(test, err)
	assert.Equal(test, []string{"embed", "mood", "post"}, doc.DefNames())

	post := doc.Defs["post"].(*lexicon.Object)
	assert.Equal(test, "A post", post.Description)
	assert.Equal(test, []string{"text", "tags"}, post.Required)
	assert.Equal(test, &lexicon.String{}, post.Properties["text"])
	assert.Equal(test, &lexicon.Integer{}, post.Properties["likes"])
	assert.Equal(test, &lexicon.Array{Items: &lexicon.String{}}, post.Properties["tags"])
	assert.Equal(test, &lexicon.Ref{Ref: "#mood"}, post.Properties["mood"])
	assert.Equal(test, &lexicon.CidLink{}, post.Properties["cid"])
	assert.Equal(test, &lexicon.Unknown{}, post.Properties["extra"])

	assert.Equal(test, &lexicon.String{Enum: []string{"HAPPY", "SAD"}}, doc.Defs["mood"])
	assert.Equal(test, &lexicon.Union{Refs: []string{"#post"}}, doc.Defs["embed"])

	_, err = Import([]byte("type X { f: Float }"), "app.example.x", nil)
	assert.Error(test, err)
	_, err = Import([]byte("type {"), "app.example.x", nil)
	assert.Error(test, err)
}

func TestExportImport(test *testing.T) {
	doc := lexicon.New("app.example.round")
	doc.Defs["thing"] = &lexicon.Object{
		Required: []string{"count"},
		Properties: map[string]lexicon.Node{
			"count": &lexicon.Integer{},
			"name":  &lexicon.String{},
			"data":  &lexicon.Bytes{},
			"other": &lexicon.Ref{Ref: "#other"},
		},
	}
	doc.Defs["other"] = &lexicon.Object{Properties: map[string]lexicon.Node{"flag": &lexicon.Boolean{}}}
	sdl, err := Export(doc, nil)
	require.NoError(test, err)
	back, err := Import([]byte(sdl), doc.ID, nil)
	require.NoError(test, err)
	assert.Equal(test, doc, back)
}

func TestExportImportNames(test *testing.T) {
	doc := lexicon.New("app.example.image")
	doc.Defs["main"] = &lexicon.Object{
		Required: []string{"alt", "view"},
		Properties: map[string]lexicon.Node{
			"alt":       &lexicon.String{},
			"size":      &lexicon.Integer{},
			"createdAt": &lexicon.String{Format: lexicon.FormatDatetime},
			"view":      &lexicon.Ref{Ref: "#image_view"},
		},
	}
	doc.Defs["image_view"] = &lexicon.Object{
		Required:   []string{"ok"},
		Properties: map[string]lexicon.Node{"ok": &lexicon.Boolean{}},
	}
	doc.Defs["gallery"] = &lexicon.Union{Refs: []string{"#main", "#image_view"}}
	scalars := map[string]string{"datetime": "Datetime"}

	sdl, err := Export(doc, scalars)
	require.NoError(test, err)
	assert.Contains(test, sdl, "type Image @lexicon(def: \"main\") {\n")
	assert.Contains(test, sdl, "type ImageView @lexicon(def: \"image_view\") {\n")
	assert.Contains(test, sdl, "union Gallery =\n    Image\n  | ImageView\n")
	assert.Contains(test, sdl, "directive @lexicon(def: String!) on OBJECT | UNION\n")

	back, err := Import([]byte(sdl), doc.ID, scalars)
	require.NoError(test, err)
	assert.Equal(test, doc, back)

	back, err = Import([]byte(sdl), doc.ID, nil)
	require.NoError(test, err)
	assert.Equal(test, &lexicon.Unknown{}, back.Defs["main"].(*lexicon.Object).Properties["createdAt"])
}
