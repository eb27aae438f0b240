package syntax

import (
	"fmt"
	"unicode/utf8"

	"github.com/boynton/ana/util"
)

type TokenType int

const (
	UNDEFINED TokenType = iota
	EOF
	LINE_COMMENT
	BLOCK_COMMENT
	SYMBOL
	NUMBER
	STRING
	COLON
	COMMA
	DOT
	DOTDOT
	EQUALS
	QUESTION
	OPEN_BRACE
	CLOSE_BRACE
	OPEN_PAREN
	CLOSE_PAREN
)

func (tokenType TokenType) String() string {
	switch tokenType {
	case UNDEFINED:
		return "UNDEFINED"
	case EOF:
		return "EOF"
	case LINE_COMMENT:
		return "LINE_COMMENT"
	case BLOCK_COMMENT:
		return "BLOCK_COMMENT"
	case SYMBOL:
		return "SYMBOL"
	case NUMBER:
		return "NUMBER"
	case STRING:
		return "STRING"
	case COLON:
		return "COLON"
	case COMMA:
		return "COMMA"
	case DOT:
		return "DOT"
	case DOTDOT:
		return "DOTDOT"
	case EQUALS:
		return "EQUALS"
	case QUESTION:
		return "QUESTION"
	case OPEN_BRACE:
		return "OPEN_BRACE"
	case CLOSE_BRACE:
		return "CLOSE_BRACE"
	case OPEN_PAREN:
		return "OPEN_PAREN"
	case CLOSE_PAREN:
		return "CLOSE_PAREN"
	}
	return "?"
}

// Position is a zero-based location in the source text.
type Position struct {
	Offset int
	Row    int
	Column int
}

func (pos Position) Point() Point {
	return Point{Row: pos.Row, Column: pos.Column}
}

// Token carries the raw source text it was scanned from; string tokens keep their quotes.
type Token struct {
	Type  TokenType
	Text  string
	Start Position
	End   Position
}

func (tok Token) String() string {
	return fmt.Sprintf("<%v %q %d:%d>", tok.Type, tok.Text, tok.Start.Row+1, tok.Start.Column+1)
}

func (tok Token) Range() Range {
	return Range{
		StartByte:  tok.Start.Offset,
		EndByte:    tok.End.Offset,
		StartPoint: tok.Start.Point(),
		EndPoint:   tok.End.Point(),
	}
}

const eof = rune(0)

type Scanner struct {
	src  string
	pos  Position
	prev Position
}

func NewScanner(src string) *Scanner {
	return &Scanner{src: src}
}

func (s *Scanner) read() rune {
	s.prev = s.pos
	if s.pos.Offset >= len(s.src) {
		return eof
	}
	ch, size := utf8.DecodeRuneInString(s.src[s.pos.Offset:])
	s.pos.Offset += size
	if ch == '\n' {
		s.pos.Row++
		s.pos.Column = 0
	} else {
		s.pos.Column += size
	}
	return ch
}

func (s *Scanner) unread() {
	s.pos = s.prev
}

func (s *Scanner) startToken(tokenType TokenType, start Position) Token {
	return Token{Type: tokenType, Start: start}
}

func (s *Scanner) finish(tok Token) Token {
	tok.End = s.pos
	tok.Text = s.src[tok.Start.Offset:tok.End.Offset]
	return tok
}

func (s *Scanner) undefined(tok Token, msg string) Token {
	tok.Type = UNDEFINED
	tok.End = s.pos
	tok.Text = msg
	return tok
}

func (s *Scanner) Scan() Token {
	for {
		start := s.pos
		ch := s.read()
		if ch == eof {
			return s.finish(s.startToken(EOF, start))
		}
		if util.IsWhitespace(ch) {
			continue
		}
		if util.IsLetter(ch) || ch == '_' {
			return s.scanSymbol(start)
		} else if util.IsDigit(ch) || ch == '-' {
			return s.scanNumber(start)
		} else if ch == '/' {
			return s.scanComment(start)
		} else if ch == '"' {
			return s.scanString(start)
		}
		return s.scanPunct(ch, start)
	}
}

func (s *Scanner) scanSymbol(start Position) Token {
	tok := s.startToken(SYMBOL, start)
	for {
		ch := s.read()
		if ch == eof {
			break
		} else if !util.IsSymbolChar(ch, false) {
			s.unread()
			break
		}
	}
	return s.finish(tok)
}

func (s *Scanner) scanNumber(start Position) Token {
	tok := s.startToken(NUMBER, start)
	digits := 0
	if s.src[start.Offset] != '-' {
		digits++
	}
	for {
		ch := s.read()
		if ch == eof {
			break
		} else if !util.IsDigit(ch) {
			s.unread()
			break
		}
		digits++
	}
	if digits == 0 {
		return s.undefined(tok, "Expected digits after '-'")
	}
	return s.finish(tok)
}

func (s *Scanner) scanComment(start Position) Token {
	tok := s.startToken(LINE_COMMENT, start)
	switch s.read() {
	case '/':
		for {
			ch := s.read()
			if ch == eof {
				break
			}
			if ch == '\n' {
				s.unread()
				break
			}
		}
		return s.finish(tok)
	case '*':
		tok.Type = BLOCK_COMMENT
		star := false
		for {
			ch := s.read()
			if ch == eof {
				return s.undefined(tok, "Unterminated block comment")
			}
			if star && ch == '/' {
				return s.finish(tok)
			}
			star = ch == '*'
		}
	}
	return s.undefined(tok, "Unexpected '/'")
}

func (s *Scanner) scanString(start Position) Token {
	tok := s.startToken(STRING, start)
	escape := false
	for {
		ch := s.read()
		if ch == eof || ch == '\n' {
			return s.undefined(tok, "Unterminated string")
		}
		if escape {
			escape = false
			continue
		}
		switch ch {
		case '\\':
			escape = true
		case '"':
			return s.finish(tok)
		}
	}
}

func (s *Scanner) scanPunct(ch rune, start Position) Token {
	tok := s.startToken(UNDEFINED, start)
	switch ch {
	case ':':
		tok.Type = COLON
	case ',':
		tok.Type = COMMA
	case '=':
		tok.Type = EQUALS
	case '?':
		tok.Type = QUESTION
	case '{':
		tok.Type = OPEN_BRACE
	case '}':
		tok.Type = CLOSE_BRACE
	case '(':
		tok.Type = OPEN_PAREN
	case ')':
		tok.Type = CLOSE_PAREN
	case '.':
		tok.Type = DOT
		if next := s.read(); next == '.' {
			tok.Type = DOTDOT
		} else if next != eof {
			s.unread()
		}
	default:
		return s.undefined(tok, fmt.Sprintf("Unexpected character %q", ch))
	}
	return s.finish(tok)
}
