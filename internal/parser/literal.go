package parser

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/chaisql/edn/internal/scanner"
	"github.com/chaisql/edn/types"
)

// parseLiteral converts a literal token into a scalar value.
func parseLiteral(ti scanner.TokenInfo) (types.Value, error) {
	switch ti.Tok {
	case scanner.STRING:
		s, bad, ok := unquote(ti.Lit)
		if !ok {
			return nil, newParseError("invalid escape sequence "+bad+" in string", ti)
		}
		return types.NewTextValue(s), nil
	case scanner.CHAR:
		r, ok := parseChar(ti.Lit)
		if !ok {
			return nil, newParseError("invalid character literal", ti)
		}
		return types.NewCharacterValue(r), nil
	case scanner.KEYWORD:
		return types.KeywordValue(ti.Lit), nil
	case scanner.SYMBOLIC:
		f, ok := symbolicValues[ti.Lit]
		if !ok {
			return nil, newParseError("unknown symbolic value", ti)
		}
		return types.NewDoubleValue(f), nil
	case scanner.ATOM:
		return parseAtom(ti)
	}

	return nil, newParseError("unexpected token", ti)
}

// parseAtom classifies a bare atom as nil, a boolean, a number or a symbol.
func parseAtom(ti scanner.TokenInfo) (types.Value, error) {
	switch ti.Lit {
	case "nil":
		return types.NewNullValue(), nil
	case "true":
		return types.NewBooleanValue(true), nil
	case "false":
		return types.NewBooleanValue(false), nil
	}

	if isNumeric(ti.Lit) {
		return parseNumber(ti)
	}

	return types.NewSymbolValue(ti.Lit), nil
}

// isNumeric returns true if the atom starts like a number: a digit,
// optionally preceded by a sign.
func isNumeric(lit string) bool {
	if lit == "" {
		return false
	}
	if lit[0] == '+' || lit[0] == '-' {
		lit = lit[1:]
	}
	return lit != "" && isDigit(lit[0])
}

// parseNumber parses an integer or a floating point number.
// Integers are never truncated, whatever their magnitude.
// The N suffix forces an integer, the M suffix a floating point number.
func parseNumber(ti scanner.TokenInfo) (types.Value, error) {
	lit := ti.Lit

	switch {
	case strings.HasSuffix(lit, "N"):
		lit = lit[:len(lit)-1]
		if !isInteger(lit) {
			return nil, newParseError("invalid number", ti)
		}
	case strings.HasSuffix(lit, "M"):
		lit = lit[:len(lit)-1]
		if !isInteger(lit) && !isFloat(lit) {
			return nil, newParseError("invalid number", ti)
		}
		return parseFloat(lit, ti)
	}

	if isInteger(lit) {
		i, ok := types.ParseIntegerValue(lit)
		if !ok {
			return nil, newParseError("invalid number", ti)
		}
		return i, nil
	}

	if isFloat(lit) {
		return parseFloat(lit, ti)
	}

	return nil, newParseError("invalid number", ti)
}

func parseFloat(lit string, ti scanner.TokenInfo) (types.Value, error) {
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return nil, newParseError("floating point number out of range", ti)
	}
	return types.NewDoubleValue(f), nil
}

// isInteger returns true if s is an optional sign followed by digits.
func isInteger(s string) bool {
	s = trimSign(s)
	if s == "" {
		return false
	}
	return skipDigits(s) == len(s)
}

// isFloat returns true if s is an optional sign, digits, an optional
// fractional part and an optional exponent, with at least a fractional
// part or an exponent.
func isFloat(s string) bool {
	s = trimSign(s)
	n := skipDigits(s)
	if n == 0 {
		return false
	}
	s = s[n:]

	var frac, exp bool
	if strings.HasPrefix(s, ".") {
		frac = true
		s = s[1:]
		s = s[skipDigits(s):]
	}
	if strings.HasPrefix(s, "e") || strings.HasPrefix(s, "E") {
		exp = true
		s = trimSign(s[1:])
		n = skipDigits(s)
		if n == 0 {
			return false
		}
		s = s[n:]
	}

	return s == "" && (frac || exp)
}

func trimSign(s string) string {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		return s[1:]
	}
	return s
}

func skipDigits(s string) int {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// unquote replaces the escape sequences of a string body.
// If an escape sequence is invalid, it is returned with ok set to false.
func unquote(lit string) (s string, bad string, ok bool) {
	if !strings.ContainsRune(lit, '\\') {
		return lit, "", true
	}

	var buf strings.Builder
	buf.Grow(len(lit))
	for i := 0; i < len(lit); {
		c := lit[i]
		if c != '\\' {
			r, size := utf8.DecodeRuneInString(lit[i:])
			buf.WriteRune(r)
			i += size
			continue
		}

		if i+1 >= len(lit) {
			return "", `\`, false
		}

		esc := lit[i+1]
		switch esc {
		case '"':
			buf.WriteByte('"')
		case '\\':
			buf.WriteByte('\\')
		case 'n':
			buf.WriteByte('\n')
		case 'r':
			buf.WriteByte('\r')
		case 't':
			buf.WriteByte('\t')
		case 'b':
			buf.WriteByte('\b')
		case 'f':
			buf.WriteByte('\f')
		case 'u':
			r, n, ok := readUnicodeEscape(lit[i:])
			if !ok {
				return "", lit[i:min(i+6, len(lit))], false
			}
			buf.WriteRune(r)
			i += n
			continue
		default:
			r, _ := utf8.DecodeRuneInString(lit[i+1:])
			return "", `\` + string(r), false
		}
		i += 2
	}

	return buf.String(), "", true
}

// readUnicodeEscape reads a \uXXXX escape at the start of s, combining
// surrogate pairs written as two escapes.
func readUnicodeEscape(s string) (rune, int, bool) {
	r, ok := hex4(s)
	if !ok {
		return 0, 0, false
	}
	if !utf16.IsSurrogate(r) {
		return r, 6, true
	}

	if r2, ok := hex4(s[6:]); ok {
		if dec := utf16.DecodeRune(r, r2); dec != utf8.RuneError {
			return dec, 12, true
		}
	}
	return utf8.RuneError, 6, true
}

// hex4 parses "\uXXXX" at the start of s.
func hex4(s string) (rune, bool) {
	if len(s) < 6 || s[0] != '\\' || s[1] != 'u' {
		return 0, false
	}
	x, err := strconv.ParseUint(s[2:6], 16, 16)
	if err != nil {
		return 0, false
	}
	return rune(x), true
}

// parseChar parses the text following the backslash of a character literal.
func parseChar(lit string) (rune, bool) {
	if r, size := utf8.DecodeRuneInString(lit); size == len(lit) && (r != utf8.RuneError || size > 1) {
		return r, true
	}

	if r, ok := types.CharacterNames[lit]; ok {
		return r, true
	}

	if len(lit) == 5 && lit[0] == 'u' {
		return hex4(`\` + lit)
	}

	return 0, false
}
