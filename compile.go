// Package ana compiles .ana schema documents into atproto Lexicon documents.
//
// A document starts with a lexicon declaration naming its NSID, followed by definitions:
//
//	lexicon app.example.image revision 1 description "An image"
//
//	image {
//		alt?: String(graphemes=..300)
//		blob: Blob(accept="image/*", size=1000000)
//	}
//	count: Integer(range=0..)
//
// An object definition becomes an "object" def; a top-level property becomes a def of its type.
package ana

import (
	"fmt"
	"os"
	"strings"

	"github.com/boynton/ana/ir"
	"github.com/boynton/ana/lexicon"
	"github.com/boynton/ana/syntax"
	"github.com/boynton/ana/util"
)

// File reads, parses and compiles an .ana file.
func File(path string) (*lexicon.Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Cannot read file %q: %w", path, err)
	}
	return String(string(data))
}

func IsValidFile(path string) bool {
	return strings.HasSuffix(path, ".ana")
}

// String parses and compiles .ana source text.
func String(src string) (*lexicon.Lexicon, error) {
	tree, err := syntax.Parse(src)
	if err != nil {
		return nil, err
	}
	return Compile(src, tree)
}

// Compile assembles a Lexicon document from a parsed source file. Any structural error in a
// definition fails the whole document.
func Compile(src string, tree *syntax.Tree) (*lexicon.Lexicon, error) {
	root := tree.Root()
	if root.Kind() != syntax.KindSourceFile {
		return nil, ir.NewError(ir.ErrWrongKind, root, "expected %s, found %s", syntax.KindSourceFile, root.Kind())
	}
	ns := root.ChildByFieldName("namespace")
	if ns == nil {
		return nil, ir.NewError(ir.ErrMissingChild, root, "document has no lexicon declaration")
	}
	doc, err := namespace(src, ns)
	if err != nil {
		return nil, err
	}
	defined := make(map[string]syntax.Node)
	for _, def := range root.ChildrenByFieldName("definition") {
		name, node, err := definition(src, def)
		if err != nil {
			return nil, err
		}
		if prev, ok := defined[name]; ok {
			return nil, ir.NewError(ir.ErrDuplicateDef, def, "%s is already defined at %s", name, prev.Range())
		}
		defined[name] = def
		doc.Defs[name] = node
		util.Log.Debug().Str("id", doc.ID).Str("def", name).Str("type", node.TypeName()).Msg("compiled definition")
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

func namespace(src string, ns syntax.Node) (*lexicon.Lexicon, error) {
	id := ns.ChildByFieldName("id")
	if id == nil {
		return nil, ir.NewError(ir.ErrMissingChild, ns, "lexicon declaration has no id")
	}
	var segments []string
	for _, seg := range id.ChildrenByFieldName("segment") {
		segments = append(segments, seg.Text(src))
	}
	doc := lexicon.New(strings.Join(segments, "."))
	if rev, ok := ir.ExtractInteger(src, ns.ChildByFieldName("revision")); ok {
		doc.Revision = &rev
	}
	if desc, ok := ir.ExtractString(src, ns.ChildByFieldName("description")); ok {
		doc.Description = desc
	}
	if !lexicon.IsValidNSID(doc.ID) {
		return nil, ir.NewError(ir.ErrBadParamValue, id, "%q is not a valid NSID", doc.ID)
	}
	return doc, nil
}

func definition(src string, def syntax.Node) (string, lexicon.Node, error) {
	switch def.Kind() {
	case syntax.KindObject:
		obj, err := ir.NewObject(src, def)
		if err != nil {
			return "", nil, err
		}
		return obj.Name, obj.Schema(), nil
	case syntax.KindProperty:
		prop, err := ir.NewProp(src, def)
		if err != nil {
			return "", nil, err
		}
		return prop.Name, prop.Value.Schema(), nil
	}
	return "", nil, ir.NewError(ir.ErrWrongKind, def, "expected object or property, found %s", def.Kind())
}
