package scanner

// Token is a lexical token of the EDN notation.
type Token int

// These are a comprehensive list of EDN tokens.
const (
	// ILLEGAL Token, EOF and BADENCODING are special tokens.
	ILLEGAL Token = iota
	EOF
	BADENCODING // invalid UTF-8

	literalBeg
	// STRING and the following are literal tokens.
	STRING    // "abc"
	BADSTRING // "abc
	CHAR      // \c
	BADCHAR   // \
	KEYWORD   // :db/id
	ATOM      // symbols, numbers, true, false and nil
	SYMBOLIC  // ##Inf
	literalEnd

	LBRACE   // {
	RBRACE   // }
	LBRACKET // [
	RBRACKET // ]
	LPAREN   // (
	RPAREN   // )
	SETOPEN  // #{
	TAG      // #inst
	DISCARD  // #_
)

var tokens = [...]string{
	ILLEGAL: "ILLEGAL",
	EOF:     "EOF",

	BADENCODING: "BADENCODING",

	STRING:    "STRING",
	BADSTRING: "BADSTRING",
	CHAR:      "CHAR",
	BADCHAR:   "BADCHAR",
	KEYWORD:   "KEYWORD",
	ATOM:      "ATOM",
	SYMBOLIC:  "SYMBOLIC",

	LBRACE:   "{",
	RBRACE:   "}",
	LBRACKET: "[",
	RBRACKET: "]",
	LPAREN:   "(",
	RPAREN:   ")",
	SETOPEN:  "#{",
	TAG:      "TAG",
	DISCARD:  "#_",
}

// String returns the string representation of the token.
func (tok Token) String() string {
	if tok >= 0 && tok < Token(len(tokens)) {
		return tokens[tok]
	}
	return ""
}

// IsLiteral returns true for literal tokens.
func (tok Token) IsLiteral() bool { return tok > literalBeg && tok < literalEnd }

// IsOpener returns true for tokens opening a collection.
func (tok Token) IsOpener() bool {
	return tok == LBRACE || tok == LBRACKET || tok == LPAREN || tok == SETOPEN
}

// IsCloser returns true for tokens closing a collection.
func (tok Token) IsCloser() bool {
	return tok == RBRACE || tok == RBRACKET || tok == RPAREN
}

// Closer returns the token closing the collection opened by tok.
func (tok Token) Closer() Token {
	switch tok {
	case LBRACE, SETOPEN:
		return RBRACE
	case LBRACKET:
		return RBRACKET
	case LPAREN:
		return RPAREN
	}
	return ILLEGAL
}

// Tokstr returns a literal if provided, otherwise returns the token string.
func Tokstr(tok Token, lit string) string {
	if lit != "" {
		switch tok {
		case TAG:
			return "#" + lit
		case SYMBOLIC:
			return "##" + lit
		case STRING:
			return `"` + lit + `"`
		case BADSTRING:
			return `"` + lit
		case CHAR:
			return `\` + lit
		}
		return lit
	}
	return tok.String()
}

// Pos specifies the line and character position of a token.
// The Line and Char are both zero-based indexes, Offset is the
// offset in bytes from the start of the input.
type Pos struct {
	Line   int
	Char   int
	Offset int
}

// TokenInfo holds information about a token.
type TokenInfo struct {
	Tok Token
	Pos Pos
	Lit string
}
