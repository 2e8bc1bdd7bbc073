package jsondoc

import (
	"math"
	"strconv"
)

// The serializer is two mirrored recursive traversals: serializationSize
// computes the exact output length, then writeValue emits into a buffer of
// that size. The two functions must keep the identical structure: both
// delegate every per-type length decision to the same helpers
// (formatNumber, escapedLength/appendEscaped) so they cannot diverge.

// maxIntegerForm is the largest magnitude formatted in integer form; above
// it float64 can no longer represent every integer exactly.
const maxIntegerForm = float64(1 << 53)

// SerializedSize returns the exact number of bytes Serialize would
// produce, or 0 for an absent value.
func (v *Value) SerializedSize() int {
	return serializationSize(v)
}

// Serialize renders the value tree as compact JSON text sized exactly to
// fit. Fails only for an absent (error-typed) value.
func (v *Value) Serialize() (string, error) {
	if v.Type() == TypeError {
		return "", ErrInvalidValue
	}
	buf := make([]byte, 0, serializationSize(v))
	return string(writeValue(v, buf)), nil
}

// SerializeTo writes the serialization into a caller-supplied buffer and
// returns the number of bytes written. The buffer must hold at least
// SerializedSize() bytes or the call fails with ErrBufferTooSmall.
func (v *Value) SerializeTo(buf []byte) (int, error) {
	if v.Type() == TypeError {
		return 0, ErrInvalidValue
	}
	size := serializationSize(v)
	if len(buf) < size {
		return 0, ErrBufferTooSmall
	}
	writeValue(v, buf[:0])
	return size, nil
}

func serializationSize(v *Value) int {
	switch v.Type() {
	case TypeArray:
		size := 2 // brackets
		count := len(v.array.items)
		if count > 0 {
			size += count - 1 // commas
		}
		for _, item := range v.array.items {
			size += serializationSize(item)
		}
		return size
	case TypeObject:
		size := 2 // braces
		count := len(v.object.names)
		if count > 0 {
			size += count*2 - 1 // colons and commas
		}
		for i, name := range v.object.names {
			size += escapedLength(name) + 2 // key and quotes
			size += serializationSize(v.object.values[i])
		}
		return size
	case TypeString:
		return escapedLength(v.str) + 2
	case TypeBoolean:
		if v.boolean {
			return len("true")
		}
		return len("false")
	case TypeNumber:
		return len(formatNumber(v.number))
	case TypeNull:
		return len("null")
	default:
		return 0
	}
}

func writeValue(v *Value, out []byte) []byte {
	switch v.Type() {
	case TypeArray:
		out = append(out, '[')
		for i, item := range v.array.items {
			if i > 0 {
				out = append(out, ',')
			}
			out = writeValue(item, out)
		}
		return append(out, ']')
	case TypeObject:
		out = append(out, '{')
		for i, name := range v.object.names {
			if i > 0 {
				out = append(out, ',')
			}
			out = appendEscaped(out, name)
			out = append(out, ':')
			out = writeValue(v.object.values[i], out)
		}
		return append(out, '}')
	case TypeString:
		return appendEscaped(out, v.str)
	case TypeBoolean:
		if v.boolean {
			return append(out, "true"...)
		}
		return append(out, "false"...)
	case TypeNumber:
		return append(out, formatNumber(v.number)...)
	case TypeNull:
		return append(out, "null"...)
	default:
		return out
	}
}

// formatNumber renders integral values inside the float64-exact window in
// integer form and everything else in fixed six-digit decimal form.
func formatNumber(n float64) string {
	if n == math.Trunc(n) && n >= -maxIntegerForm && n <= maxIntegerForm {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'f', floatPrecision, 64)
}

// escapedLength returns the byte length of s after output escaping: the
// seven escaped characters cost two bytes, every other byte passes through
// unchanged.
func escapedLength(s string) int {
	size := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"', '\\', '\b', '\f', '\n', '\r', '\t':
			size += 2
		default:
			size++
		}
	}
	return size
}

func appendEscaped(out []byte, s string) []byte {
	out = append(out, '"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			out = append(out, '\\', '"')
		case '\\':
			out = append(out, '\\', '\\')
		case '\b':
			out = append(out, '\\', 'b')
		case '\f':
			out = append(out, '\\', 'f')
		case '\n':
			out = append(out, '\\', 'n')
		case '\r':
			out = append(out, '\\', 'r')
		case '\t':
			out = append(out, '\\', 't')
		default:
			out = append(out, c)
		}
	}
	return append(out, '"')
}
