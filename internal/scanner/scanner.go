package scanner

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Code inspired by the chai SQL scanner, itself inspired by
// the influxdata/influxql repository.

// Scanner represents a lexical scanner for EDN text.
// Whitespace, commas and comments never produce a token.
type Scanner struct {
	r *reader
}

// NewScanner returns a new instance of Scanner reading src.
func NewScanner(src string) *Scanner {
	return &Scanner{r: &reader{src: src}}
}

// Offset returns the offset in bytes of the first rune that
// hasn't been consumed yet.
func (s *Scanner) Offset() int {
	return s.r.offset()
}

// Scan returns the next token and position from the underlying reader.
// Also returns the literal text read for strings, characters, keywords, tags
// and atoms since these token types can have different literal representations.
// Invalid UTF-8 is reported with a BADENCODING token as soon as the
// reader reaches it, and every following call returns that token again.
func (s *Scanner) Scan() TokenInfo {
	ti := s.scan()
	if s.r.bad != nil {
		return *s.r.bad
	}
	return ti
}

func (s *Scanner) scan() TokenInfo {
	for {
		ch0, pos := s.r.read()

		switch {
		case ch0 == eof:
			return TokenInfo{EOF, pos, ""}
		case isWhitespace(ch0):
			continue
		case ch0 == ';':
			s.skipUntilNewline()
			continue
		}

		switch ch0 {
		case '{':
			return TokenInfo{LBRACE, pos, ""}
		case '}':
			return TokenInfo{RBRACE, pos, ""}
		case '[':
			return TokenInfo{LBRACKET, pos, ""}
		case ']':
			return TokenInfo{RBRACKET, pos, ""}
		case '(':
			return TokenInfo{LPAREN, pos, ""}
		case ')':
			return TokenInfo{RPAREN, pos, ""}
		case '"':
			return s.scanString(pos)
		case '\\':
			return s.scanChar(pos)
		case ':':
			return s.scanKeyword(pos)
		case '#':
			return s.scanDispatch(pos)
		}

		if isSymbolFirstChar(ch0) {
			s.r.unread()
			return TokenInfo{ATOM, pos, s.scanSymbolChars()}
		}

		return TokenInfo{ILLEGAL, pos, string(ch0)}
	}
}

// skipUntilNewline skips characters until it reaches a newline.
func (s *Scanner) skipUntilNewline() {
	for {
		if ch, _ := s.r.read(); ch == '\n' || ch == '\r' || ch == eof {
			return
		}
	}
}

// scanString consumes a contiguous string of non-quote characters.
// Quote characters can be consumed if they're first escaped with a backslash.
// Escape sequences are kept as is, they are interpreted by the parser.
func (s *Scanner) scanString(pos Pos) TokenInfo {
	var buf strings.Builder
	for {
		ch, _ := s.r.read()
		switch ch {
		case eof:
			return TokenInfo{BADSTRING, pos, buf.String()}
		case '"':
			return TokenInfo{STRING, pos, buf.String()}
		case '\\':
			ch1, _ := s.r.read()
			if ch1 == eof {
				return TokenInfo{BADSTRING, pos, buf.String()}
			}
			buf.WriteRune(ch)
			buf.WriteRune(ch1)
		default:
			buf.WriteRune(ch)
		}
	}
}

// scanChar consumes a character literal, e.g. \a, \newline or \u03A9.
func (s *Scanner) scanChar(pos Pos) TokenInfo {
	ch, _ := s.r.read()
	if ch == eof || isWhitespace(ch) {
		return TokenInfo{BADCHAR, pos, ""}
	}

	var buf strings.Builder
	buf.WriteRune(ch)
	if !isLetter(ch) {
		return TokenInfo{CHAR, pos, buf.String()}
	}

	// named characters and unicode escapes
	for {
		ch, _ = s.r.read()
		if !isLetter(ch) && !isDigit(ch) {
			s.r.unread()
			break
		}
		buf.WriteRune(ch)
	}
	return TokenInfo{CHAR, pos, buf.String()}
}

// scanKeyword consumes a keyword. The leading ':' is part of the literal.
func (s *Scanner) scanKeyword(pos Pos) TokenInfo {
	name := s.scanSymbolChars()
	if name == "" {
		return TokenInfo{ILLEGAL, pos, ":"}
	}
	return TokenInfo{KEYWORD, pos, ":" + name}
}

// scanDispatch consumes the token following a '#': a set opener,
// a discard marker, a symbolic value or a tag.
func (s *Scanner) scanDispatch(pos Pos) TokenInfo {
	ch, _ := s.r.read()
	switch {
	case ch == '{':
		return TokenInfo{SETOPEN, pos, ""}
	case ch == '_':
		return TokenInfo{DISCARD, pos, ""}
	case ch == '#':
		name := s.scanSymbolChars()
		if name == "" {
			return TokenInfo{ILLEGAL, pos, "##"}
		}
		return TokenInfo{SYMBOLIC, pos, name}
	case isLetter(ch):
		s.r.unread()
		return TokenInfo{TAG, pos, s.scanSymbolChars()}
	case ch == eof:
		return TokenInfo{ILLEGAL, pos, "#"}
	}

	return TokenInfo{ILLEGAL, pos, "#" + string(ch)}
}

// scanSymbolChars consumes a contiguous series of symbol characters.
func (s *Scanner) scanSymbolChars() string {
	var buf strings.Builder
	for {
		ch, _ := s.r.read()
		if !isSymbolChar(ch) {
			s.r.unread()
			break
		}
		buf.WriteRune(ch)
	}
	return buf.String()
}

// isWhitespace returns true if the rune is a separator. Commas are whitespace.
func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == ',' || ch == '\f' || ch == '\v'
}

// isLetter returns true if the rune is a letter.
func isLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch > utf8.RuneSelf && unicode.IsLetter(ch))
}

// isDigit returns true if the rune is a digit.
func isDigit(ch rune) bool { return ch >= '0' && ch <= '9' }

// isSymbolFirstChar returns true if the rune can start a symbol or a number.
func isSymbolFirstChar(ch rune) bool {
	if isLetter(ch) || isDigit(ch) {
		return true
	}
	return strings.ContainsRune(".*+!-_?$%&=<>/'", ch)
}

// isSymbolChar returns true if the rune can be used after the first
// character of a symbol, a keyword or a tag.
func isSymbolChar(ch rune) bool {
	return ch != eof && (isSymbolFirstChar(ch) || ch == '#' || ch == ':')
}

// reader represents a rune reader used by the scanner.
// It provides a fixed-length circular buffer that can be unread.
type reader struct {
	src string
	i   int        // buffer index
	n   int        // buffer char count
	pos Pos        // position of the next rune in src
	bad *TokenInfo // first invalid UTF-8 sequence
	buf [3]struct {
		ch  rune
		pos Pos
	}
}

// read reads the next rune from the reader.
func (r *reader) read() (ch rune, pos Pos) {
	// If we have unread characters then read them off the buffer first.
	if r.n > 0 {
		r.n--
		return r.curr()
	}

	pos = r.pos
	if r.pos.Offset >= len(r.src) {
		ch = eof
	} else {
		var size int
		ch, size = utf8.DecodeRuneInString(r.src[r.pos.Offset:])
		if ch == utf8.RuneError && size == 1 && r.bad == nil {
			r.bad = &TokenInfo{BADENCODING, pos, fmt.Sprintf(`\x%02x`, r.src[r.pos.Offset])}
		}
		r.pos.Offset += size
	}

	// Save character and position to the buffer.
	r.i = (r.i + 1) % len(r.buf)
	buf := &r.buf[r.i]
	buf.ch, buf.pos = ch, pos

	// Update position.
	if ch == '\n' {
		r.pos.Line++
		r.pos.Char = 0
	} else if ch != eof {
		r.pos.Char++
	}

	return r.curr()
}

// unread pushes the previously read rune back onto the buffer.
func (r *reader) unread() {
	r.n++
}

// curr returns the last read character and position.
func (r *reader) curr() (ch rune, pos Pos) {
	i := (r.i - r.n + len(r.buf)) % len(r.buf)
	buf := &r.buf[i]
	return buf.ch, buf.pos
}

// offset returns the offset of the next rune read will return.
func (r *reader) offset() int {
	if r.n > 0 {
		_, pos := r.curr()
		return pos.Offset
	}
	return r.pos.Offset
}

// eof is a marker code point to signify that the reader can't read any more.
const eof = rune(-1)
