package graphql

import (
	"fmt"
	"os"
	"strings"

	gql_ast "github.com/graphql-go/graphql/language/ast"
	gql_parser "github.com/graphql-go/graphql/language/parser"
	gql_source "github.com/graphql-go/graphql/language/source"

	"github.com/boynton/ana/lexicon"
	"github.com/boynton/ana/util"
)

func ImportFile(path string, id string, customScalars map[string]string) (*lexicon.Lexicon, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Import(src, id, customScalars)
}

// Import converts GraphQL SDL into a Lexicon document with the given id. Object types become
// object defs, enums become strings with a closed enum, and unions become unions of local refs.
// The Query, Mutation and Subscription root types are skipped. Declared scalars are mapped back
// through DefaultCustomScalars and customScalars, the same table Export takes, and an
// @lexicon(def:) directive restores the definition name Export started from.
func Import(src []byte, id string, customScalars map[string]string) (*lexicon.Lexicon, error) {
	doc, err := gql_parser.Parse(gql_parser.ParseParams{
		Source: &gql_source.Source{
			Body: src,
			Name: "GraphQL",
		},
		Options: gql_parser.ParseOptions{
			NoLocation: true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("Cannot parse GraphQL: %v", err)
	}
	lex := lexicon.New(id)
	im := &importer{
		lex:      lex,
		scalars:  make(map[string]bool),
		names:    make(map[string]string),
		reversed: make(map[string]string),
	}
	for k, v := range DefaultCustomScalars {
		im.reversed[v] = k
	}
	for k, v := range customScalars {
		im.reversed[v] = k
	}
	ignore := map[string]bool{"Query": true, "Mutation": true, "Subscription": true}
	for _, def := range doc.Definitions {
		switch tdef := def.(type) {
		case *gql_ast.SchemaDefinition:
			for _, opt := range tdef.OperationTypes {
				ignore[opt.Type.Name.Value] = true
			}
		case *gql_ast.ScalarDefinition:
			im.scalars[tdef.Name.Value] = true
		case *gql_ast.ObjectDefinition:
			im.name(tdef.Name.Value, tdef.Directives)
		case *gql_ast.UnionDefinition:
			im.name(tdef.Name.Value, tdef.Directives)
		}
	}
	for _, def := range doc.Definitions {
		switch tdef := def.(type) {
		case *gql_ast.ObjectDefinition:
			if !ignore[tdef.Name.Value] {
				err = im.object(tdef)
			}
		case *gql_ast.EnumDefinition:
			im.enum(tdef)
		case *gql_ast.UnionDefinition:
			im.union(tdef)
		case *gql_ast.SchemaDefinition, *gql_ast.ScalarDefinition, *gql_ast.DirectiveDefinition:
			//handled above
		case *gql_ast.InterfaceDefinition, *gql_ast.InputObjectDefinition:
			util.Debug("graphql import: ignoring", def.GetKind())
		default:
			err = fmt.Errorf("Unsupported definition: %v", def.GetKind())
		}
		if err != nil {
			return nil, err
		}
	}
	if err := lex.Validate(); err != nil {
		return nil, err
	}
	return lex, nil
}

type importer struct {
	lex     *lexicon.Lexicon
	scalars map[string]bool
	// names maps GraphQL type names to definition names.
	names map[string]string
	// reversed maps scalar names to Lexicon type or string format names.
	reversed map[string]string
}

func defName(typeName string) string {
	return util.Uncapitalize(typeName)
}

func (im *importer) name(typeName string, directives []*gql_ast.Directive) {
	im.names[typeName] = defName(typeName)
	for _, d := range directives {
		if d.Name.Value != defDirective {
			continue
		}
		for _, arg := range d.Arguments {
			if v, ok := arg.Value.(*gql_ast.StringValue); ok && arg.Name.Value == defArgument {
				im.names[typeName] = v.Value
			}
		}
	}
}

func (im *importer) defName(typeName string) string {
	if name, ok := im.names[typeName]; ok {
		return name
	}
	return defName(typeName)
}

// customScalar maps a declared scalar back to its Lexicon type.
func (im *importer) customScalar(name string) lexicon.Node {
	key := im.reversed[name]
	if format, ok := lexicon.ParseStringFormat(key); ok {
		return &lexicon.String{Format: format}
	}
	switch key {
	case lexicon.TypeNull:
		return &lexicon.Null{}
	case lexicon.TypeBytes:
		return &lexicon.Bytes{}
	case lexicon.TypeCidLink:
		return &lexicon.CidLink{}
	case lexicon.TypeBlob:
		return &lexicon.Blob{}
	}
	return &lexicon.Unknown{}
}

func commentValue(descr *gql_ast.StringValue) string {
	if descr == nil {
		return ""
	}
	return strings.TrimSpace(descr.Value)
}

func (im *importer) object(def *gql_ast.ObjectDefinition) error {
	obj := &lexicon.Object{
		Description: commentValue(def.Description),
		Properties:  make(map[string]lexicon.Node),
	}
	for _, f := range def.Fields {
		name := f.Name.Value
		t := f.Type
		if nn, ok := t.(*gql_ast.NonNull); ok {
			obj.Required = append(obj.Required, name)
			t = nn.Type
		}
		n, err := im.typeNode(t)
		if err != nil {
			return fmt.Errorf("%s.%s: %v", def.Name.Value, name, err)
		}
		setDescription(n, commentValue(f.Description))
		obj.Properties[name] = n
	}
	im.lex.Defs[im.defName(def.Name.Value)] = obj
	return nil
}

func (im *importer) enum(def *gql_ast.EnumDefinition) {
	s := &lexicon.String{Description: commentValue(def.Description)}
	for _, v := range def.Values {
		s.Enum = append(s.Enum, v.Name.Value)
	}
	im.lex.Defs[im.defName(def.Name.Value)] = s
}

func (im *importer) union(def *gql_ast.UnionDefinition) {
	u := &lexicon.Union{Description: commentValue(def.Description), Refs: []string{}}
	for _, t := range def.Types {
		u.Refs = append(u.Refs, "#"+im.defName(t.Name.Value))
	}
	im.lex.Defs[im.defName(def.Name.Value)] = u
}

func (im *importer) typeNode(t gql_ast.Type) (lexicon.Node, error) {
	switch tt := t.(type) {
	case *gql_ast.Named:
		return im.namedNode(tt.Name.Value)
	case *gql_ast.List:
		item := tt.Type
		if nn, ok := item.(*gql_ast.NonNull); ok {
			item = nn.Type
		}
		items, err := im.typeNode(item)
		if err != nil {
			return nil, err
		}
		return &lexicon.Array{Items: items}, nil
	case *gql_ast.NonNull:
		return im.typeNode(tt.Type)
	}
	return nil, fmt.Errorf("unsupported type %v", t)
}

func (im *importer) namedNode(name string) (lexicon.Node, error) {
	switch name {
	case "Int":
		return &lexicon.Integer{}, nil
	case "Boolean":
		return &lexicon.Boolean{}, nil
	case "String", "ID":
		return &lexicon.String{}, nil
	case "Float":
		return nil, fmt.Errorf("Float has no Lexicon equivalent")
	}
	if im.scalars[name] {
		return im.customScalar(name), nil
	}
	return &lexicon.Ref{Ref: "#" + im.defName(name)}, nil
}

func setDescription(n lexicon.Node, d string) {
	if d == "" {
		return
	}
	switch t := n.(type) {
	case *lexicon.Null:
		t.Description = d
	case *lexicon.Boolean:
		t.Description = d
	case *lexicon.Integer:
		t.Description = d
	case *lexicon.String:
		t.Description = d
	case *lexicon.Bytes:
		t.Description = d
	case *lexicon.CidLink:
		t.Description = d
	case *lexicon.Blob:
		t.Description = d
	case *lexicon.Unknown:
		t.Description = d
	case *lexicon.Array:
		t.Description = d
	case *lexicon.Ref:
		t.Description = d
	}
}
