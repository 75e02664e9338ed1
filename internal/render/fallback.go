package render

import "unicode"

var asciiFallback = map[rune]rune{
	'━': '-',
	'┃': '|',
	'┏': '+',
	'┓': '+',
	'┗': '+',
	'┛': '+',
}

// ASCII maps runes the bitmap font cannot draw to a close ASCII stand-in.
// Unknown non-ASCII runes become '?'.
func ASCII(r rune) rune {
	if r <= unicode.MaxASCII {
		return r
	}
	if f, ok := asciiFallback[r]; ok {
		return f
	}
	return '?'
}
