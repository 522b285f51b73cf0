package xmllex

import "unicode/utf8"

var nameStartByteLUT = [utf8.RuneSelf]bool{
	':': true,
	'A': true, 'B': true, 'C': true, 'D': true, 'E': true, 'F': true, 'G': true,
	'H': true, 'I': true, 'J': true, 'K': true, 'L': true, 'M': true, 'N': true,
	'O': true, 'P': true, 'Q': true, 'R': true, 'S': true, 'T': true, 'U': true,
	'V': true, 'W': true, 'X': true, 'Y': true, 'Z': true,
	'_': true,
	'a': true, 'b': true, 'c': true, 'd': true, 'e': true, 'f': true, 'g': true,
	'h': true, 'i': true, 'j': true, 'k': true, 'l': true, 'm': true, 'n': true,
	'o': true, 'p': true, 'q': true, 'r': true, 's': true, 't': true, 'u': true,
	'v': true, 'w': true, 'x': true, 'y': true, 'z': true,
}

var nameByteLUT = [utf8.RuneSelf]bool{
	'-': true, '.': true,
	'0': true, '1': true, '2': true, '3': true, '4': true,
	'5': true, '6': true, '7': true, '8': true, '9': true,
	':': true,
	'A': true, 'B': true, 'C': true, 'D': true, 'E': true, 'F': true, 'G': true,
	'H': true, 'I': true, 'J': true, 'K': true, 'L': true, 'M': true, 'N': true,
	'O': true, 'P': true, 'Q': true, 'R': true, 'S': true, 'T': true, 'U': true,
	'V': true, 'W': true, 'X': true, 'Y': true, 'Z': true,
	'_': true,
	'a': true, 'b': true, 'c': true, 'd': true, 'e': true, 'f': true, 'g': true,
	'h': true, 'i': true, 'j': true, 'k': true, 'l': true, 'm': true, 'n': true,
	'o': true, 'p': true, 'q': true, 'r': true, 's': true, 't': true, 'u': true,
	'v': true, 'w': true, 'x': true, 'y': true, 'z': true,
}

var whitespaceLUT = [256]bool{
	'\t': true,
	'\n': true,
	'\r': true,
	' ':  true,
}

// IsNameStartByte reports whether b may begin a name.
// Bytes of multi-byte UTF-8 sequences are accepted without classification
// so the answer never depends on where a chunk boundary splits a rune.
func IsNameStartByte(b byte) bool {
	return b >= utf8.RuneSelf || nameStartByteLUT[b]
}

// IsNameByte reports whether b may continue a name.
func IsNameByte(b byte) bool {
	return b >= utf8.RuneSelf || nameByteLUT[b]
}

// IsWhitespace reports whether b is XML whitespace.
func IsWhitespace(b byte) bool {
	return whitespaceLUT[b]
}

// NameEnd returns the index of the first byte in s at or after start that
// cannot continue a name.
func NameEnd(s string, start int) int {
	i := start
	for i < len(s) && IsNameByte(s[i]) {
		i++
	}
	return i
}

// WhitespaceEnd returns the index of the first non-whitespace byte in s at
// or after start.
func WhitespaceEnd(s string, start int) int {
	i := start
	for i < len(s) && whitespaceLUT[s[i]] {
		i++
	}
	return i
}
