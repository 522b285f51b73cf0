package xmltext

import (
	"strings"
	"unicode/utf8"
)

var standardEntities = map[string]string{
	"lt":   "<",
	"gt":   ">",
	"amp":  "&",
	"apos": "'",
	"quot": "\"",
}

// maxEntityName bounds the stack buffer used to join a reference name that
// crosses chunks; longer names fall back to a heap copy.
const maxEntityName = 64

// AppendEntity appends the replacement text of the reference name (the
// text between '&' and ';') to dst. It resolves the predefined entities,
// decimal and hexadecimal character references, and names from custom.
func AppendEntity(dst []byte, name Text, custom map[string]string) ([]byte, error) {
	switch len(name) {
	case 0:
		return dst, errInvalidEntity
	case 1:
		return appendEntity(dst, name[0].String(), custom)
	}
	var scratch [maxEntityName]byte
	joined := name.AppendTo(scratch[:0])
	return appendEntity(dst, unsafeString(joined), custom)
}

func appendEntity(dst []byte, name string, custom map[string]string) ([]byte, error) {
	if name == "" {
		return dst, errInvalidEntity
	}
	if name[0] == '#' {
		r, err := parseNumericEntity(name)
		if err != nil {
			return dst, err
		}
		return utf8.AppendRune(dst, r), nil
	}
	if value, ok := standardEntities[name]; ok {
		return append(dst, value...), nil
	}
	value, ok := custom[name]
	if !ok {
		return dst, errUnknownEntity
	}
	if !utf8.ValidString(value) {
		return dst, errInvalidChar
	}
	for _, r := range value {
		if !isCharRune(r) {
			return dst, errInvalidChar
		}
	}
	return append(dst, value...), nil
}

func parseNumericEntity(ref string) (rune, error) {
	if len(ref) < 2 {
		return 0, errInvalidCharRef
	}
	base := 10
	start := 1
	if ref[1] == 'x' {
		base = 16
		start = 2
	}
	if start >= len(ref) {
		return 0, errInvalidCharRef
	}
	var value uint64
	for i := start; i < len(ref); i++ {
		digit, ok := digitValue(ref[i], base)
		if !ok {
			return 0, errInvalidCharRef
		}
		value = value*uint64(base) + uint64(digit)
		if value > utf8.MaxRune {
			return 0, errInvalidCharRef
		}
	}
	r := rune(value)
	if !isCharRune(r) {
		return 0, errInvalidCharRef
	}
	return r, nil
}

// isCharRune reports whether a character reference may name r.
func isCharRune(r rune) bool {
	if r < 0x20 {
		return r == '\t' || r == '\n' || r == '\r'
	}
	if r >= 0xD800 && r <= 0xDFFF {
		return false
	}
	return r != 0xFFFE && r != 0xFFFF && r <= utf8.MaxRune
}

func digitValue(b byte, base int) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case base == 16 && b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case base == 16 && b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	default:
		return 0, false
	}
}

// UnescapeInto expands the predefined entity and character references in
// t, typically an attribute value, into h and returns a view of the result.
func UnescapeInto(h *TextHolder, t Text) (string, error) {
	return unescapeInto(h, t, nil)
}

func unescapeInto(h *TextHolder, t Text, custom map[string]string) (string, error) {
	if h == nil {
		return "", errNilHolder
	}
	dst := h.buf[:0]
	var scratch [maxEntityName]byte
	name := scratch[:0]
	inRef := false
	for _, sp := range t {
		s := sp.String()
		for len(s) > 0 {
			if inRef {
				i := strings.IndexByte(s, ';')
				if i < 0 {
					name = append(name, s...)
					break
				}
				name = append(name, s[:i]...)
				s = s[i+1:]
				var err error
				dst, err = appendEntity(dst, unsafeString(name), custom)
				if err != nil {
					h.buf = dst[:0]
					return "", err
				}
				name = name[:0]
				inRef = false
				continue
			}
			i := strings.IndexByte(s, '&')
			if i < 0 {
				dst = append(dst, s...)
				break
			}
			dst = append(dst, s[:i]...)
			s = s[i+1:]
			inRef = true
		}
	}
	h.buf = dst
	if inRef {
		h.buf = dst[:0]
		return "", errInvalidEntity
	}
	return unsafeString(dst), nil
}
