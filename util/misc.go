package util

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[0:1]) + s[1:]
}

func Uncapitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[0:1]) + s[1:]
}

// IsSymbolChar reports whether ch may appear in an identifier. Dashes are allowed after the
// first character so that kebab-case names like cid-link scan as one symbol.
func IsSymbolChar(ch rune, first bool) bool {
	if IsLetter(ch) {
		return true
	}
	if first {
		return false
	}
	return IsDigit(ch) || ch == '_' || ch == '-'
}

func IsSymbol(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		if !IsSymbolChar(c, i == 0) {
			return false
		}
	}
	return true
}

func IsWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func IsDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func IsLetter(ch rune) bool {
	return IsUppercaseLetter(ch) || IsLowercaseLetter(ch)
}

func IsUppercaseLetter(ch rune) bool {
	return ch >= 'A' && ch <= 'Z'
}

func IsLowercaseLetter(ch rune) bool {
	return ch >= 'a' && ch <= 'z'
}

// CamelCase turns "cid-link" or "record_key" into "CidLink" / "RecordKey".
func CamelCase(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_' || r == '.' || r == '#'
	})
	var buf strings.Builder
	for _, p := range parts {
		buf.WriteString(Capitalize(p))
	}
	return buf.String()
}

func Pretty(obj interface{}) string {
	return PrettyIndent(obj, "    ")
}

func PrettyIndent(obj interface{}, indent string) string {
	buf := new(bytes.Buffer)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(&obj); err != nil {
		return fmt.Sprint(obj)
	}
	return buf.String()
}

func FormatComment(indent, prefix, comment string, maxcol int, extraPad bool) string {
	left := len(indent)
	if maxcol <= left && strings.Index(comment, "\n") < 0 {
		return indent + prefix + comment + "\n"
	}
	tab := strings.Repeat(" ", left)
	prefixlen := len(prefix)
	if strings.Index(comment, "\n") >= 0 {
		result := ""
		for _, line := range strings.Split(comment, "\n") {
			result = result + tab + prefix + line + "\n"
		}
		return result
	}
	var buf bytes.Buffer
	col := 0
	for _, tok := range strings.Split(comment, " ") {
		toklen := len(tok)
		if col > 0 && col+toklen >= maxcol {
			buf.WriteString("\n")
			col = 0
		}
		if col == 0 {
			buf.WriteString(tab)
			buf.WriteString(prefix)
			buf.WriteString(tok)
			col = left + prefixlen + toklen
		} else {
			buf.WriteString(" ")
			buf.WriteString(tok)
			col += toklen + 1
		}
	}
	buf.WriteString("\n")
	pad := ""
	if extraPad {
		pad = tab + strings.Trim(prefix, " ") + "\n"
	}
	return pad + buf.String() + pad
}
