package ana

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/boynton/ana/lexicon"
	"github.com/boynton/ana/util"
)

const indentAmount = "\t"

// Decompile renders a document as .ana source. Only documents whose definitions are objects of
// scalar properties, or scalars themselves, can be expressed; anything else is an error.
// Object descriptions become comments, so they do not survive recompilation.
func Decompile(doc *lexicon.Lexicon) (string, error) {
	d := &decompiler{}
	funcMap := template.FuncMap{
		"quote": d.quote,
		"deref": func(p *int32) int32 {
			return *p
		},
		"def": func(name string) string {
			return d.definition(name, doc.Defs[name])
		},
	}
	tmpl, err := template.New("ana").Funcs(funcMap).Parse(anaTemplate)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	data := struct {
		*lexicon.Lexicon
		Names []string
	}{doc, doc.DefNames()}
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	if d.err != nil {
		return "", d.err
	}
	return buf.String(), nil
}

const anaTemplate = `lexicon {{.ID}}{{with .Revision}} revision {{deref .}}{{end}}{{if .Description}} description {{quote .Description}}{{end}}
{{range .Names}}
{{def .}}{{end}}`

type decompiler struct {
	err error
}

func (d *decompiler) fail(format string, args ...interface{}) string {
	if d.err == nil {
		d.err = fmt.Errorf(format, args...)
	}
	return ""
}

// quote writes a string literal. The scanner does not unescape, so text that would need
// escaping cannot be written.
func (d *decompiler) quote(s string) string {
	if strings.ContainsAny(s, "\"\\\n") {
		return d.fail("cannot write %q as an .ana string literal", s)
	}
	return `"` + s + `"`
}

func (d *decompiler) definition(name string, n lexicon.Node) string {
	if !util.IsSymbol(name) {
		return d.fail("definition name %q is not an identifier", name)
	}
	if obj, ok := n.(*lexicon.Object); ok {
		return d.object(name, obj)
	}
	return name + ": " + d.typeSpec(name, n) + "\n"
}

func (d *decompiler) object(name string, obj *lexicon.Object) string {
	if len(obj.Nullable) > 0 {
		return d.fail("%s: nullable properties cannot be expressed", name)
	}
	required := make(map[string]bool)
	for _, r := range obj.Required {
		if _, ok := obj.Properties[r]; !ok {
			return d.fail("%s: required property %q is not defined", name, r)
		}
		required[r] = true
	}
	var props []string
	for k := range obj.Properties {
		props = append(props, k)
	}
	sort.Strings(props)
	s := ""
	if obj.Description != "" {
		s = util.FormatComment("", "// ", obj.Description, 100, false)
	}
	s += name + " {\n"
	for _, k := range props {
		if !util.IsSymbol(k) {
			return d.fail("%s: property name %q is not an identifier", name, k)
		}
		opt := "?"
		if required[k] {
			opt = ""
		}
		s += fmt.Sprintf("%s%s%s: %s\n", indentAmount, k, opt, d.typeSpec(name+"."+k, obj.Properties[k]))
	}
	return s + "}\n"
}

func (d *decompiler) typeSpec(where string, n lexicon.Node) string {
	var name string
	var opts []string
	desc := func(s string) {
		if s != "" {
			opts = append(opts, "description="+d.quote(s))
		}
	}
	switch t := n.(type) {
	case *lexicon.Null:
		name = "Null"
		desc(t.Description)
	case *lexicon.Boolean:
		name = "Boolean"
		desc(t.Description)
		if t.Default != nil {
			opts = append(opts, fmt.Sprintf("default=%v", *t.Default))
		}
		if t.Const != nil {
			opts = append(opts, fmt.Sprintf("const=%v", *t.Const))
		}
	case *lexicon.Integer:
		name = "Integer"
		if len(t.Enum) > 0 {
			return d.fail("%s: integer enums cannot be expressed", where)
		}
		desc(t.Description)
		if t.Minimum != nil || t.Maximum != nil {
			opts = append(opts, "range="+bounds(t.Minimum, t.Maximum))
		}
		if t.Default != nil {
			opts = append(opts, fmt.Sprintf("default=%d", *t.Default))
		}
		if t.Const != nil {
			opts = append(opts, fmt.Sprintf("const=%d", *t.Const))
		}
	case *lexicon.String:
		name = "String"
		if len(t.Enum) > 0 || len(t.KnownValues) > 0 {
			return d.fail("%s: string value lists cannot be expressed", where)
		}
		desc(t.Description)
		if t.Format != "" {
			opts = append(opts, "format="+d.quote(string(t.Format)))
		}
		if t.MinLength != nil || t.MaxLength != nil {
			opts = append(opts, "len="+bounds(t.MinLength, t.MaxLength))
		}
		if t.MinGraphemes != nil || t.MaxGraphemes != nil {
			opts = append(opts, "graphemes="+bounds(t.MinGraphemes, t.MaxGraphemes))
		}
		if t.Default != nil {
			opts = append(opts, "default="+d.quote(*t.Default))
		}
		if t.Const != nil {
			opts = append(opts, "const="+d.quote(*t.Const))
		}
	case *lexicon.Bytes:
		name = "Bytes"
		desc(t.Description)
		if t.MinLength != nil || t.MaxLength != nil {
			opts = append(opts, "size="+bounds(t.MinLength, t.MaxLength))
		}
	case *lexicon.CidLink:
		name = "CidLink"
		desc(t.Description)
	case *lexicon.Blob:
		name = "Blob"
		if len(t.Accept) > 1 {
			return d.fail("%s: a blob may only accept one pattern", where)
		}
		desc(t.Description)
		if len(t.Accept) == 1 {
			opts = append(opts, "accept="+d.quote(t.Accept[0]))
		}
		if t.MaxSize != nil {
			opts = append(opts, fmt.Sprintf("size=%d", *t.MaxSize))
		}
	case *lexicon.Unknown:
		name = "Unknown"
		desc(t.Description)
	case nil:
		return d.fail("%s: empty definition", where)
	case *lexicon.Ref:
		name = "Ref"
		desc(t.Description)
		opts = append(opts, "ref="+d.quote(t.Ref))
	default:
		return d.fail("%s: %s definitions cannot be expressed", where, n.TypeName())
	}
	if len(opts) == 0 {
		return name
	}
	return name + "(" + strings.Join(opts, ", ") + ")"
}

func bounds(min, max *int32) string {
	s := ""
	if min != nil {
		s = fmt.Sprint(*min)
	}
	s += ".."
	if max != nil {
		s += fmt.Sprint(*max)
	}
	return s
}
