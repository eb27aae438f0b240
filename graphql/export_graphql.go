package graphql

import (
	"bufio"
	"bytes"
	"fmt"
	"sort"
	"strings"

	gql_parser "github.com/graphql-go/graphql/language/parser"
	gql_source "github.com/graphql-go/graphql/language/source"

	"github.com/boynton/ana/lexicon"
	"github.com/boynton/ana/util"
)

// DefaultCustomScalars names the scalars emitted for Lexicon types with no GraphQL equivalent.
// Keys are Lexicon type names, or string format names for formatted strings.
var DefaultCustomScalars = map[string]string{
	lexicon.TypeNull:    "Null",
	lexicon.TypeBytes:   "Bytes",
	lexicon.TypeCidLink: "CidLink",
	lexicon.TypeBlob:    "Blob",
	lexicon.TypeUnknown: "Unknown",
}

// Export renders the document as GraphQL SDL. Objects and records become types, unions become
// unions, and queries, procedures and subscriptions become fields of the Query, Mutation and
// Subscription types. Scalar definitions are inlined wherever they are referenced.
// customScalars overrides DefaultCustomScalars and may map string formats (e.g. "datetime").
// A type whose name does not lowercase back to its definition name carries an @lexicon(def:)
// directive, which Import reads.
func Export(doc *lexicon.Lexicon, customScalars map[string]string) (string, error) {
	w := &GraphqlWriter{
		doc:           doc,
		scalarNames:   make(map[string]string),
		customScalars: make(map[string]bool),
		synthesized:   make(map[string]bool),
		operations:    make(map[string][]string),
		defNames:      make(map[string]string),
	}
	for k, v := range DefaultCustomScalars {
		w.scalarNames[k] = v
	}
	for k, v := range customScalars {
		w.scalarNames[k] = v
	}
	w.Begin()
	for _, name := range doc.DefNames() {
		switch doc.Defs[name].(type) {
		case *lexicon.Object, *lexicon.Record, *lexicon.Union:
			if t := w.typeName(name); defName(t) != name {
				w.defNames[t] = name
			}
		}
	}
	for _, name := range doc.DefNames() {
		switch def := doc.Defs[name].(type) {
		case *lexicon.Object:
			w.EmitObjectDef(w.typeName(name), def)
		case *lexicon.Record:
			w.EmitRecordDef(w.typeName(name), def)
		case *lexicon.Union:
			w.EmitUnionDef(w.typeName(name), def)
		case *lexicon.Query:
			w.addQuery(name, def)
		case *lexicon.Procedure:
			w.addProcedure(name, def)
		case *lexicon.Subscription:
			w.addSubscription(name, def)
		default:
			//scalars, arrays and tokens have no named GraphQL form; references inline them
		}
		if w.err != nil {
			return "", w.err
		}
	}
	for len(w.pending) > 0 {
		p := w.pending[0]
		w.pending = w.pending[1:]
		p()
	}
	for _, op := range []string{"Query", "Mutation", "Subscription"} {
		if fields := w.operations[op]; len(fields) > 0 {
			w.Emit("type %s {\n", op)
			for _, f := range fields {
				w.Emit("%s", f)
			}
			w.Emit("}\n\n")
		}
	}
	var scalars []string
	for k := range w.customScalars {
		scalars = append(scalars, k)
	}
	sort.Strings(scalars)
	for _, k := range scalars {
		w.Emit("scalar %s\n", k)
	}
	if len(w.defNames) > 0 {
		w.Emit("\ndirective @%s(%s: String!) on OBJECT | UNION\n", defDirective, defArgument)
	}
	if w.err != nil {
		return "", w.err
	}
	sdl := w.End()
	if err := Validate(sdl); err != nil {
		return "", err
	}
	return sdl, nil
}

// Validate checks that sdl is syntactically valid GraphQL.
func Validate(sdl string) error {
	_, err := gql_parser.Parse(gql_parser.ParseParams{
		Source: &gql_source.Source{
			Body: []byte(sdl),
			Name: "GraphQL",
		},
		Options: gql_parser.ParseOptions{
			NoLocation: true,
		},
	})
	if err != nil {
		return fmt.Errorf("Generated GraphQL does not parse: %v", err)
	}
	return nil
}

type GraphqlWriter struct {
	doc           *lexicon.Lexicon
	buf           bytes.Buffer
	writer        *bufio.Writer
	scalarNames   map[string]string
	customScalars map[string]bool
	synthesized   map[string]bool
	pending       []func()
	operations    map[string][]string
	resolving     map[string]bool
	defNames      map[string]string
	err           error
}

const (
	defDirective = "lexicon"
	defArgument  = "def"
)

func (w *GraphqlWriter) Begin() {
	w.buf.Reset()
	w.writer = bufio.NewWriter(&w.buf)
}

func (w *GraphqlWriter) Emit(format string, args ...interface{}) {
	w.writer.WriteString(fmt.Sprintf(format, args...))
}

func (w *GraphqlWriter) End() string {
	w.writer.Flush()
	return w.buf.String()
}

func (w *GraphqlWriter) emitComment(indent, comment string) {
	if comment != "" {
		w.Emit("%s", util.FormatComment(indent, "# ", comment, 100, false))
	}
}

// typeName maps a definition name to a GraphQL type name. The main definition is named after
// the last segment of the document id.
func (w *GraphqlWriter) typeName(def string) string {
	if def == "main" {
		id := w.doc.ID
		if i := strings.LastIndex(id, "."); i >= 0 {
			id = id[i+1:]
		}
		return util.CamelCase(id)
	}
	return util.CamelCase(def)
}

func (w *GraphqlWriter) directive(typeName string) string {
	if def, ok := w.defNames[typeName]; ok {
		return fmt.Sprintf(" @%s(%s: %q)", defDirective, defArgument, def)
	}
	return ""
}

func fieldName(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

func (w *GraphqlWriter) EmitObjectDef(name string, obj *lexicon.Object) {
	w.emitComment("", obj.Description)
	w.emitFields("type", name, obj)
}

func (w *GraphqlWriter) EmitRecordDef(name string, rec *lexicon.Record) {
	w.emitComment("", rec.Description)
	if rec.Record == nil {
		w.err = fmt.Errorf("record %s has no object", name)
		return
	}
	w.emitFields("type", name, rec.Record)
}

func (w *GraphqlWriter) emitFields(keyword, name string, obj *lexicon.Object) {
	required := make(map[string]bool)
	for _, r := range obj.Required {
		required[r] = true
	}
	var names []string
	for k := range obj.Properties {
		names = append(names, k)
	}
	sort.Strings(names)
	if len(names) == 0 {
		// GraphQL types need at least one field
		w.Emit("%s %s%s {\n  _empty: Boolean\n}\n\n", keyword, name, w.directive(name))
		return
	}
	w.Emit("%s %s%s {\n", keyword, name, w.directive(name))
	for _, k := range names {
		prop := obj.Properties[k]
		w.emitComment("  ", description(prop))
		ftype := w.typeRef(name, k, prop)
		if required[k] {
			ftype += "!"
		}
		w.Emit("  %s: %s\n", fieldName(k), ftype)
	}
	w.Emit("}\n\n")
}

func (w *GraphqlWriter) EmitUnionDef(name string, u *lexicon.Union) {
	w.emitComment("", u.Description)
	if len(u.Refs) == 0 {
		w.customScalars[name] = true
		return
	}
	w.Emit("union %s%s =\n", name, w.directive(name))
	for i, ref := range u.Refs {
		if i > 0 {
			w.Emit("  | ")
		} else {
			w.Emit("    ")
		}
		w.Emit("%s\n", w.refType(ref))
	}
	w.Emit("\n")
}

func (w *GraphqlWriter) customScalar(key string) string {
	name, ok := w.scalarNames[key]
	if !ok {
		name = util.CamelCase(key)
	}
	w.customScalars[name] = true
	return name
}

// synthesize queues a named type for an inline object or union and returns its name.
func (w *GraphqlWriter) synthesize(name string, n lexicon.Node) string {
	if w.synthesized[name] {
		return name
	}
	w.synthesized[name] = true
	w.pending = append(w.pending, func() {
		switch t := n.(type) {
		case *lexicon.Object:
			w.EmitObjectDef(name, t)
		case *lexicon.Union:
			w.EmitUnionDef(name, t)
		}
	})
	return name
}

func (w *GraphqlWriter) typeRef(owner, field string, n lexicon.Node) string {
	switch t := n.(type) {
	case *lexicon.Boolean:
		return "Boolean"
	case *lexicon.Integer:
		return "Int"
	case *lexicon.String:
		if t.Format != "" {
			if _, ok := w.scalarNames[string(t.Format)]; ok {
				return w.customScalar(string(t.Format))
			}
		}
		return "String"
	case *lexicon.Token:
		return "String"
	case *lexicon.Array:
		return "[" + w.typeRef(owner, field, t.Items) + "!]"
	case *lexicon.Ref:
		return w.refType(t.Ref)
	case *lexicon.Object, *lexicon.Union:
		return w.synthesize(owner+util.CamelCase(field), n)
	case nil:
		return w.customScalar(lexicon.TypeUnknown)
	default:
		return w.customScalar(n.TypeName())
	}
}

func (w *GraphqlWriter) paramRef(n lexicon.ParamNode) string {
	switch t := n.(type) {
	case *lexicon.ParamArray:
		return "[" + w.paramRef(t.Items) + "!]"
	case lexicon.Node:
		return w.typeRef("", "", t)
	}
	return w.customScalar(lexicon.TypeUnknown)
}

// refType resolves "#def", "nsid#def" and "nsid" references. References into this document
// resolve to the definition's type (scalars are inlined); references elsewhere become custom
// scalars.
func (w *GraphqlWriter) refType(ref string) string {
	id, def := ref, "main"
	if i := strings.Index(ref, "#"); i >= 0 {
		id, def = ref[:i], ref[i+1:]
	}
	if id != "" && id != w.doc.ID {
		w.customScalars[util.CamelCase(ref)] = true
		return util.CamelCase(ref)
	}
	target, ok := w.doc.Defs[def]
	if !ok {
		if w.err == nil {
			w.err = fmt.Errorf("unresolved reference %q", ref)
		}
		return w.customScalar(lexicon.TypeUnknown)
	}
	switch target.(type) {
	case *lexicon.Object, *lexicon.Record, *lexicon.Union:
		return w.typeName(def)
	}
	if w.resolving == nil {
		w.resolving = make(map[string]bool)
	}
	if w.resolving[def] {
		if w.err == nil {
			w.err = fmt.Errorf("reference cycle through %q", ref)
		}
		return w.customScalar(lexicon.TypeUnknown)
	}
	w.resolving[def] = true
	defer delete(w.resolving, def)
	return w.typeRef(w.typeName(def), "", target)
}

func (w *GraphqlWriter) operationName(def string) string {
	if def == "main" {
		id := w.doc.ID
		if i := strings.LastIndex(id, "."); i >= 0 {
			id = id[i+1:]
		}
		return fieldName(id)
	}
	return fieldName(def)
}

func (w *GraphqlWriter) arguments(params *lexicon.Params, extra ...string) string {
	args := extra
	if params != nil {
		required := make(map[string]bool)
		for _, r := range params.Required {
			required[r] = true
		}
		var names []string
		for k := range params.Properties {
			names = append(names, k)
		}
		sort.Strings(names)
		for _, k := range names {
			t := w.paramRef(params.Properties[k])
			if required[k] {
				t += "!"
			}
			args = append(args, fieldName(k)+": "+t)
		}
	}
	if len(args) == 0 {
		return ""
	}
	return "(" + strings.Join(args, ", ") + ")"
}

func (w *GraphqlWriter) bodyType(owner string, body *lexicon.Body) string {
	if body == nil || body.Schema == nil {
		return w.customScalar(lexicon.TypeUnknown)
	}
	return w.typeRef(owner, "", body.Schema)
}

func (w *GraphqlWriter) addOperation(op, comment, field string) {
	var buf strings.Builder
	if comment != "" {
		buf.WriteString(util.FormatComment("  ", "# ", comment, 100, false))
	}
	buf.WriteString("  " + field + "\n")
	w.operations[op] = append(w.operations[op], buf.String())
}

func (w *GraphqlWriter) addQuery(def string, q *lexicon.Query) {
	name := w.operationName(def)
	out := w.bodyType(util.CamelCase(name)+"Output", q.Output)
	w.addOperation("Query", q.Description, name+w.arguments(q.Parameters)+": "+out)
}

func (w *GraphqlWriter) addProcedure(def string, p *lexicon.Procedure) {
	name := w.operationName(def)
	var extra []string
	if p.Input != nil && p.Input.Schema != nil {
		in := w.typeRef(util.CamelCase(name)+"Input", "", p.Input.Schema)
		extra = append(extra, "input: "+in+"!")
	}
	out := w.bodyType(util.CamelCase(name)+"Output", p.Output)
	w.addOperation("Mutation", p.Description, name+w.arguments(p.Parameters, extra...)+": "+out)
}

func (w *GraphqlWriter) addSubscription(def string, s *lexicon.Subscription) {
	name := w.operationName(def)
	out := w.customScalar(lexicon.TypeUnknown)
	if s.Message != nil && s.Message.Schema != nil {
		out = w.typeRef(util.CamelCase(name)+"Message", "", s.Message.Schema)
	}
	w.addOperation("Subscription", s.Description, name+w.arguments(s.Parameters)+": "+out)
}

func description(n lexicon.Node) string {
	switch t := n.(type) {
	case *lexicon.Null:
		return t.Description
	case *lexicon.Boolean:
		return t.Description
	case *lexicon.Integer:
		return t.Description
	case *lexicon.String:
		return t.Description
	case *lexicon.Bytes:
		return t.Description
	case *lexicon.CidLink:
		return t.Description
	case *lexicon.Blob:
		return t.Description
	case *lexicon.Unknown:
		return t.Description
	case *lexicon.Array:
		return t.Description
	case *lexicon.Object:
		return t.Description
	case *lexicon.Ref:
		return t.Description
	case *lexicon.Union:
		return t.Description
	}
	return ""
}
