package jsondoc

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Parse parses a JSON document into a value tree. The first non-space
// character must open an object or an array; bare scalars are not
// documents. Any failure at any nesting level discards all partially
// built values and surfaces a single error; there is no partial result.
// Bytes following a complete top-level value are ignored.
func Parse(data string) (*Value, error) {
	p := &parser{data: data}
	p.skipWhitespace()
	if c := p.peek(); c != '{' && c != '[' {
		return nil, newSyntaxError("document must start with '{' or '['", p.pos)
	}
	return p.parseValue(0)
}

// ParseWithComments parses a JSON document that may be annotated with
// /* block */ and // line comments. Comments are blanked out of a copy of
// the input before grammar parsing, so tokens inside string literals are
// never treated as comments.
func ParseWithComments(data string) (*Value, error) {
	stripped, err := stripComments(data)
	if err != nil {
		return nil, err
	}
	return Parse(stripped)
}

// parser is a cursor over the input text. All productions consume through
// it; nesting depth is threaded explicitly through parseValue.
type parser struct {
	data string
	pos  int
}

// peek returns the byte at the cursor, or 0 at end of input.
func (p *parser) peek() byte {
	if p.pos >= len(p.data) {
		return 0
	}
	return p.data[p.pos]
}

func (p *parser) skipWhitespace() {
	for p.pos < len(p.data) {
		switch p.data[p.pos] {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			p.pos++
		default:
			return
		}
	}
}

// parseValue dispatches on the next non-space character. depth counts the
// container levels already open; reaching maxNestingDepth fails before any
// partial output is constructed.
func (p *parser) parseValue(depth int) (*Value, error) {
	p.skipWhitespace()
	switch c := p.peek(); {
	case c == '{':
		if depth >= maxNestingDepth {
			return nil, ErrDepthLimit
		}
		return p.parseObject(depth + 1)
	case c == '[':
		if depth >= maxNestingDepth {
			return nil, ErrDepthLimit
		}
		return p.parseArray(depth + 1)
	case c == '"':
		return p.parseString()
	case c == 't' || c == 'f':
		return p.parseBoolean()
	case c == '-' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	case c == 'n':
		return p.parseNull()
	default:
		return nil, newSyntaxError("unexpected character", p.pos)
	}
}

func (p *parser) parseObject(depth int) (*Value, error) {
	out := NewObject()
	obj := out.object
	p.pos++ // consume '{'
	p.skipWhitespace()
	if p.peek() == '}' {
		p.pos++
		return out, nil
	}
	for p.pos < len(p.data) {
		key, err := p.parseQuotedString()
		if err != nil {
			return nil, err
		}
		p.skipWhitespace()
		if p.peek() != ':' {
			return nil, newSyntaxError("expected ':' after object key", p.pos)
		}
		p.pos++
		value, err := p.parseValue(depth)
		if err != nil {
			return nil, err
		}
		// add enforces key uniqueness and the capacity cap; either
		// failure aborts the whole parse.
		if err := obj.add(key, value); err != nil {
			return nil, err
		}
		p.skipWhitespace()
		if p.peek() != ',' {
			break
		}
		p.pos++
		p.skipWhitespace()
	}
	p.skipWhitespace()
	if p.peek() != '}' {
		return nil, newSyntaxError("expected '}' or ',' in object", p.pos)
	}
	p.pos++
	obj.shrink()
	return out, nil
}

func (p *parser) parseArray(depth int) (*Value, error) {
	out := NewArray()
	arr := out.array
	p.pos++ // consume '['
	p.skipWhitespace()
	if p.peek() == ']' {
		p.pos++
		return out, nil
	}
	for p.pos < len(p.data) {
		value, err := p.parseValue(depth)
		if err != nil {
			return nil, err
		}
		if err := arr.Append(value); err != nil {
			return nil, err
		}
		p.skipWhitespace()
		if p.peek() != ',' {
			break
		}
		p.pos++
		p.skipWhitespace()
	}
	p.skipWhitespace()
	if p.peek() != ']' {
		return nil, newSyntaxError("expected ']' or ',' in array", p.pos)
	}
	p.pos++
	arr.shrink()
	return out, nil
}

func (p *parser) parseString() (*Value, error) {
	s, err := p.parseQuotedString()
	if err != nil {
		return nil, err
	}
	return NewString(s), nil
}

// parseQuotedString consumes a quoted string token and returns its decoded
// contents. The raw span is located first (respecting backslash escapes),
// then unescaped in a second pass.
func (p *parser) parseQuotedString() (string, error) {
	if p.peek() != '"' {
		return "", newSyntaxError("expected '\"'", p.pos)
	}
	start := p.pos + 1
	i := start
	for i < len(p.data) && p.data[i] != '"' {
		if p.data[i] == '\\' {
			i++
			if i >= len(p.data) {
				break
			}
		}
		i++
	}
	if i >= len(p.data) {
		return "", newSyntaxError("unterminated string", p.pos)
	}
	decoded, err := decodeString(p.data[start:i], start)
	if err != nil {
		return "", err
	}
	p.pos = i + 1
	return decoded, nil
}

// decodeString unescapes the raw contents of a string token. offset is the
// position of the raw span in the whole input, used for error reporting.
func decodeString(raw string, offset int) (string, error) {
	// A decoded string is never longer than its raw form.
	buf := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c == '\\':
			i++
			if i >= len(raw) {
				return "", newSyntaxError("truncated escape sequence", offset+i)
			}
			switch raw[i] {
			case '"':
				buf = append(buf, '"')
			case '\\':
				buf = append(buf, '\\')
			case '/':
				buf = append(buf, '/')
			case 'b':
				buf = append(buf, '\b')
			case 'f':
				buf = append(buf, '\f')
			case 'n':
				buf = append(buf, '\n')
			case 'r':
				buf = append(buf, '\r')
			case 't':
				buf = append(buf, '\t')
			case 'u':
				n, out, err := decodeUnicodeEscape(raw[i-1:], offset+i-1)
				if err != nil {
					return "", err
				}
				buf = append(buf, out...)
				i += n - 2 // past the escape; the loop itself steps once more
			default:
				return "", newSyntaxError("invalid escape character", offset+i)
			}
		case c < 0x20:
			// RFC 4627: control characters must be escaped.
			return "", newSyntaxError("unescaped control character in string", offset+i)
		default:
			buf = append(buf, c)
		}
	}
	return string(buf), nil
}

// decodeUnicodeEscape decodes a \uXXXX sequence at the start of raw,
// combining UTF-16 surrogate pairs into a single code point. It returns
// the number of input bytes consumed and the UTF-8 encoding of the code
// point (1 to 4 bytes).
func decodeUnicodeEscape(raw string, offset int) (int, []byte, error) {
	cp, ok := hex4(raw[2:])
	if !ok {
		return 0, nil, newSyntaxError("invalid \\u escape", offset)
	}
	switch {
	case cp < 0xD800 || cp > 0xDFFF:
		return 6, utf8.AppendRune(nil, rune(cp)), nil
	case cp <= 0xDBFF:
		// Lead surrogate: must be immediately followed by a trail
		// surrogate; the pair encodes one supplementary code point.
		rest := raw[6:]
		if len(rest) < 6 || rest[0] != '\\' || rest[1] != 'u' {
			return 0, nil, newSyntaxError("unpaired lead surrogate", offset)
		}
		trail, ok := hex4(rest[2:])
		if !ok || trail < 0xDC00 || trail > 0xDFFF {
			return 0, nil, newSyntaxError("invalid trail surrogate", offset)
		}
		r := rune(((cp-0xD800)<<10)|(trail-0xDC00)) + 0x10000
		return 12, utf8.AppendRune(nil, r), nil
	default:
		return 0, nil, newSyntaxError("unpaired trail surrogate", offset)
	}
}

// hex4 parses exactly four hex digits.
func hex4(s string) (uint32, bool) {
	if len(s) < 4 {
		return 0, false
	}
	var v uint32
	for i := 0; i < 4; i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			v = v<<4 | uint32(c-'0')
		case c >= 'a' && c <= 'f':
			v = v<<4 | uint32(c-'a'+10)
		case c >= 'A' && c <= 'F':
			v = v<<4 | uint32(c-'A'+10)
		default:
			return 0, false
		}
	}
	return v, true
}

func (p *parser) parseBoolean() (*Value, error) {
	if strings.HasPrefix(p.data[p.pos:], "true") {
		p.pos += len("true")
		return NewBoolean(true), nil
	}
	if strings.HasPrefix(p.data[p.pos:], "false") {
		p.pos += len("false")
		return NewBoolean(false), nil
	}
	return nil, newSyntaxError("invalid literal", p.pos)
}

func (p *parser) parseNull() (*Value, error) {
	if strings.HasPrefix(p.data[p.pos:], "null") {
		p.pos += len("null")
		return NewNull(), nil
	}
	return nil, newSyntaxError("invalid literal", p.pos)
}

// parseNumber scans the maximal number-like span, checks it against the
// JSON decimal shape, and only then hands it to the float parser. The
// shape check exists because strconv.ParseFloat accepts forms JSON
// forbids, notably hex floats.
func (p *parser) parseNumber() (*Value, error) {
	start := p.pos
	i := p.pos
	for i < len(p.data) && isNumberChar(p.data[i]) {
		i++
	}
	span := p.data[start:i]
	if !isDecimal(span) {
		return nil, newSyntaxError("malformed number", start)
	}
	n, err := strconv.ParseFloat(span, 64)
	if err != nil {
		return nil, newSyntaxError("malformed number", start)
	}
	p.pos = i
	return NewNumber(n), nil
}

// isNumberChar includes the hex alphabet on purpose: a span like "0x1A"
// must be scanned whole so isDecimal can reject it, rather than splitting
// into a valid "0" and trailing garbage.
func isNumberChar(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		return true
	case c == '+' || c == '-' || c == '.' || c == 'x' || c == 'X':
		return true
	}
	return false
}

// isDecimal rejects number spans JSON disallows: a leading zero not
// followed by '.', "-0" not followed by '.', and anything hex-looking.
func isDecimal(s string) bool {
	if len(s) == 0 {
		return false
	}
	if len(s) > 1 && s[0] == '0' && s[1] != '.' {
		return false
	}
	if strings.HasPrefix(s, "-0") && (len(s) == 2 || s[2] != '.') {
		return false
	}
	return !strings.ContainsAny(s, "xX")
}
