package syntax

import (
	"fmt"
	"strconv"

	"github.com/boynton/ana/util"
)

// Error is a syntax error located in the source.
type Error struct {
	Msg   string
	Range Range
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Range, e.Msg)
}

//
// import "github.com/boynton/ana/syntax"
// ...
// tree, err := syntax.Parse(src)
//
func Parse(src string) (*Tree, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}
	root, err := p.parseSourceFile()
	if err != nil {
		return nil, err
	}
	return &Tree{Source: src, root: root}, nil
}

// ParseFragment parses a single fragment (a type expression, property, object, param or
// literal) and makes it the root of the returned tree.
func ParseFragment(src string) (*Tree, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}
	root, err := p.parseFragment()
	if err != nil {
		return nil, err
	}
	if tok := p.getToken(); tok.Type != EOF {
		return nil, p.errorAt(tok, fmt.Sprintf("Unexpected %v after fragment", tok.Type))
	}
	return &Tree{Source: src, root: root}, nil
}

type Parser struct {
	source string
	tokens []Token
	index  int
}

func newParser(src string) (*Parser, error) {
	p := &Parser{source: src}
	scanner := NewScanner(src)
	for {
		tok := scanner.Scan()
		switch tok.Type {
		case UNDEFINED:
			return nil, p.errorAt(tok, tok.Text)
		case LINE_COMMENT, BLOCK_COMMENT:
			continue
		}
		p.tokens = append(p.tokens, tok)
		if tok.Type == EOF {
			return p, nil
		}
	}
}

func (p *Parser) getToken() Token {
	tok := p.tokens[p.index]
	if p.index < len(p.tokens)-1 {
		p.index++
	}
	util.Debug("getToken() ->", tok)
	return tok
}

func (p *Parser) ungetToken() {
	if p.index > 0 {
		p.index--
	}
}

// peek looks n tokens ahead without consuming anything.
func (p *Parser) peek(n int) Token {
	i := p.index + n
	if i >= len(p.tokens) {
		i = len(p.tokens) - 1
	}
	return p.tokens[i]
}

func (p *Parser) errorAt(tok Token, msg string) error {
	return &Error{Msg: msg, Range: tok.Range()}
}

func (p *Parser) syntaxError(tok Token, expected string) error {
	if tok.Type == EOF {
		return p.errorAt(tok, "Unexpected end of file, expected "+expected)
	}
	return p.errorAt(tok, fmt.Sprintf("Expected %s, found %v %q", expected, tok.Type, tok.Text))
}

func (p *Parser) expect(toktype TokenType) (Token, error) {
	tok := p.getToken()
	if tok.Type != toktype {
		return tok, p.syntaxError(tok, toktype.String())
	}
	return tok, nil
}

func (p *Parser) expectIdentifier() (*node, error) {
	tok, err := p.expect(SYMBOL)
	if err != nil {
		return nil, err
	}
	return newNode(KindIdentifier, tok.Range()), nil
}

func (p *Parser) parseSourceFile() (*node, error) {
	root := newNode(KindSourceFile, Range{})
	tok := p.getToken()
	if tok.Type != SYMBOL || tok.Text != "lexicon" {
		return nil, p.syntaxError(tok, "'lexicon' declaration")
	}
	ns, err := p.parseNamespace(tok)
	if err != nil {
		return nil, err
	}
	root.add("namespace", ns)
	for {
		tok := p.getToken()
		if tok.Type == EOF {
			root.extend(tok.Range())
			return root, nil
		}
		if tok.Type != SYMBOL {
			return nil, p.syntaxError(tok, "definition")
		}
		def, err := p.parseDefinition(tok)
		if err != nil {
			return nil, err
		}
		root.add("definition", def)
	}
}

func (p *Parser) parseNamespace(keyword Token) (*node, error) {
	ns := newNode(KindNamespace, keyword.Range())
	ns.add("", anonymous(keyword))
	id, err := p.parseNsid()
	if err != nil {
		return nil, err
	}
	ns.add("id", id)
	for {
		tok := p.peek(0)
		if tok.Type != SYMBOL {
			return ns, nil
		}
		switch {
		case tok.Text == "revision" && p.peek(1).Type == NUMBER:
			ns.add("", anonymous(p.getToken()))
			rev, err := p.parseInteger(p.getToken())
			if err != nil {
				return nil, err
			}
			ns.add("revision", rev)
		case tok.Text == "description" && p.peek(1).Type == STRING:
			ns.add("", anonymous(p.getToken()))
			ns.add("description", newNode(KindString, p.getToken().Range()))
		default:
			return ns, nil
		}
	}
}

func (p *Parser) parseNsid() (*node, error) {
	first, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	nsid := newNode(KindNsid, first.rng)
	nsid.add("segment", first)
	for p.peek(0).Type == DOT {
		nsid.add("", anonymous(p.getToken()))
		seg, err := p.expectIdentifier()
		if err != nil {
			return nil, err
		}
		nsid.add("segment", seg)
	}
	return nsid, nil
}

func (p *Parser) parseDefinition(name Token) (*node, error) {
	switch p.peek(0).Type {
	case OPEN_BRACE:
		return p.parseObject(name)
	case COLON, QUESTION:
		return p.parseProperty(name)
	}
	return nil, p.syntaxError(p.getToken(), "'{' or ':' after definition name")
}

func (p *Parser) parseObject(name Token) (*node, error) {
	obj := newNode(KindObject, name.Range())
	obj.add("name", newNode(KindIdentifier, name.Range()))
	open, err := p.expect(OPEN_BRACE)
	if err != nil {
		return nil, err
	}
	body := newNode(KindBody, open.Range())
	body.add("", anonymous(open))
	for {
		tok := p.getToken()
		switch tok.Type {
		case CLOSE_BRACE:
			body.add("", anonymous(tok))
			obj.add("body", body)
			return obj, nil
		case COMMA:
			body.add("", anonymous(tok))
		case SYMBOL:
			prop, err := p.parseProperty(tok)
			if err != nil {
				return nil, err
			}
			body.add("property", prop)
		default:
			return nil, p.syntaxError(tok, "property or '}'")
		}
	}
}

func (p *Parser) parseProperty(name Token) (*node, error) {
	prop := newNode(KindProperty, name.Range())
	prop.add("name", newNode(KindIdentifier, name.Range()))
	if p.peek(0).Type == QUESTION {
		prop.add("", anonymous(p.getToken()))
	}
	colon, err := p.expect(COLON)
	if err != nil {
		return nil, err
	}
	prop.add("", anonymous(colon))
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	prop.add("type", t)
	return prop, nil
}

func (p *Parser) parseType() (*node, error) {
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	t := newNode(KindType, name.rng)
	t.add("name", name)
	if p.peek(0).Type != OPEN_PAREN {
		return t, nil
	}
	t.add("", anonymous(p.getToken()))
	if p.peek(0).Type == CLOSE_PAREN {
		t.add("", anonymous(p.getToken()))
		return t, nil
	}
	sawRange := false
	for {
		tok := p.getToken()
		switch {
		case tok.Type == SYMBOL && p.peek(0).Type == EQUALS:
			param, err := p.parseParam(tok)
			if err != nil {
				return nil, err
			}
			t.add("param", param)
		case tok.Type == NUMBER || tok.Type == DOTDOT:
			if sawRange {
				return nil, p.errorAt(tok, "Only one bare range is allowed in a type expression")
			}
			sawRange = true
			// the bounds of a bare range belong to the type expression itself
			if err := p.parseBounds(t, tok); err != nil {
				return nil, err
			}
		default:
			return nil, p.syntaxError(tok, "parameter")
		}
		sep := p.getToken()
		switch sep.Type {
		case COMMA:
			t.add("", anonymous(sep))
		case CLOSE_PAREN:
			t.add("", anonymous(sep))
			return t, nil
		default:
			return nil, p.syntaxError(sep, "',' or ')'")
		}
	}
}

func (p *Parser) parseParam(name Token) (*node, error) {
	param := newNode(KindParam, name.Range())
	param.add("name", newNode(KindIdentifier, name.Range()))
	eq, err := p.expect(EQUALS)
	if err != nil {
		return nil, err
	}
	param.add("", anonymous(eq))
	value, err := p.parseValue(p.getToken())
	if err != nil {
		return nil, err
	}
	param.add("value", value)
	return param, nil
}

func (p *Parser) parseValue(tok Token) (*node, error) {
	switch tok.Type {
	case STRING:
		return newNode(KindString, tok.Range()), nil
	case NUMBER:
		if p.peek(0).Type == DOTDOT {
			return p.parseSlice(tok)
		}
		return p.parseInteger(tok)
	case DOTDOT:
		return p.parseSlice(tok)
	case SYMBOL:
		if tok.Text == "true" || tok.Text == "false" {
			return newNode(KindBoolean, tok.Range()), nil
		}
	}
	return nil, p.syntaxError(tok, "string, integer, boolean or range")
}

func (p *Parser) parseInteger(tok Token) (*node, error) {
	if tok.Type != NUMBER {
		return nil, p.syntaxError(tok, "integer")
	}
	if _, err := strconv.ParseInt(tok.Text, 10, 32); err != nil {
		return nil, p.errorAt(tok, fmt.Sprintf("Integer literal %s is out of range", tok.Text))
	}
	return newNode(KindInteger, tok.Range()), nil
}

// parseSlice parses "[min]..[max]" where first is either the min integer or the '..' token.
func (p *Parser) parseSlice(first Token) (*node, error) {
	slice := newNode(KindSlice, first.Range())
	if err := p.parseBounds(slice, first); err != nil {
		return nil, err
	}
	return slice, nil
}

func (p *Parser) parseBounds(parent *node, first Token) error {
	dotdot := first
	if first.Type == NUMBER {
		min, err := p.parseInteger(first)
		if err != nil {
			return err
		}
		parent.add("min", min)
		dotdot, err = p.expect(DOTDOT)
		if err != nil {
			return err
		}
	}
	parent.add("", anonymous(dotdot))
	if p.peek(0).Type == NUMBER {
		max, err := p.parseInteger(p.getToken())
		if err != nil {
			return err
		}
		parent.add("max", max)
	}
	return nil
}

func (p *Parser) parseFragment() (*node, error) {
	tok := p.getToken()
	switch tok.Type {
	case STRING, NUMBER, DOTDOT:
		return p.parseValue(tok)
	case SYMBOL:
		next := p.peek(0).Type
		switch {
		case next == EQUALS:
			return p.parseParam(tok)
		case next == COLON || next == QUESTION:
			return p.parseProperty(tok)
		case next == OPEN_BRACE:
			return p.parseObject(tok)
		case next == EOF && (tok.Text == "true" || tok.Text == "false"):
			return p.parseValue(tok)
		}
		p.ungetToken()
		return p.parseType()
	}
	return nil, p.syntaxError(tok, "fragment")
}
