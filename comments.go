package jsondoc

import "strings"

// stripComments blanks /* block */ and // line comment spans out of a copy
// of the input, replacing them with spaces so byte offsets reported by the
// parser stay aligned with the original text. Quoted strings and
// backslash escapes are tracked so comment tokens inside string literals
// survive untouched. An unterminated block comment fails the strip.
func stripComments(data string) (string, error) {
	buf := []byte(data)
	inString := false
	escaped := false
	for i := 0; i < len(buf); i++ {
		c := buf[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case c == '/' && !inString && i+1 < len(buf):
			switch buf[i+1] {
			case '*':
				end := strings.Index(data[i+2:], "*/")
				if end < 0 {
					return "", ErrUnterminatedComment
				}
				stop := i + 2 + end + 2 // one past the closing token
				for j := i; j < stop; j++ {
					buf[j] = ' '
				}
				i = stop - 1
			case '/':
				j := i
				for j < len(buf) && buf[j] != '\n' {
					buf[j] = ' '
					j++
				}
				i = j // the newline itself is kept
			}
		}
	}
	return string(buf), nil
}
