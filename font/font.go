package font

import "unicode"

// Blank is the font ROM index of a space.
//
// Writing Blank to a digit Dn also blanks its paired digit Dna.
const Blank byte = 0x20

// Hex returns the font index of the hexadecimal digit v (0-15), or Blank.
func Hex(v byte) byte {
	if v > 0x0F {
		return Blank
	}
	return v
}

// HexRune returns the font index of the hexadecimal character r, or Blank.
// Letters are accepted in either case.
func HexRune(r rune) byte {
	switch {
	case r >= '0' && r <= '9':
		return byte(r - '0')
	case r >= 'a' && r <= 'f':
		return byte(r-'a') + 0x0A
	case r >= 'A' && r <= 'F':
		return byte(r-'A') + 0x0A
	}
	return Blank
}

// ASCII returns the font index of r. The font ROM is indexed by ASCII code
// so r is passed through unchanged; non ASCII runes map to Blank.
func ASCII(r rune) byte {
	if r < 0 || r > unicode.MaxASCII {
		return Blank
	}
	return byte(r)
}

// Segments is a 7-segment mask. Each bit drives one segment.
//
//	 -A-
//	F   B
//	 -G-
//	E   C
//	 -D-  DP
type Segments byte

const (
	SegDP Segments = 0x80
	SegA  Segments = 0x40
	SegB  Segments = 0x20
	SegC  Segments = 0x10
	SegD  Segments = 0x08
	SegE  Segments = 0x04
	SegF  Segments = 0x02
	SegG  Segments = 0x01

	// SegBlank turns every segment off.
	SegBlank Segments = 0x00
)

// Degree is the degree sign. No rune maps to it through Segment7.
const Degree = SegA | SegB | SegF | SegG

var segment7 = map[rune]Segments{
	'0':  SegA | SegB | SegC | SegD | SegE | SegF,
	'1':  SegB | SegC,
	'2':  SegA | SegB | SegG | SegE | SegD,
	'3':  SegA | SegB | SegG | SegC | SegD,
	'4':  SegF | SegB | SegG | SegC,
	'5':  SegA | SegF | SegG | SegC | SegD,
	'6':  SegA | SegF | SegE | SegD | SegC | SegG,
	'7':  SegA | SegB | SegC,
	'8':  SegA | SegB | SegC | SegD | SegE | SegF | SegG,
	'9':  SegA | SegB | SegC | SegD | SegF | SegG,
	'A':  SegA | SegB | SegC | SegE | SegF | SegG,
	'B':  SegC | SegD | SegE | SegF | SegG,
	'C':  SegA | SegD | SegE | SegF,
	'D':  SegB | SegC | SegD | SegE | SegG,
	'E':  SegA | SegD | SegE | SegF | SegG,
	'F':  SegA | SegE | SegF | SegG,
	'G':  SegA | SegC | SegD | SegE | SegF,
	'H':  SegC | SegE | SegF | SegG,
	'I':  SegE | SegF,
	'J':  SegB | SegC | SegD | SegE,
	'K':  SegA | SegC | SegE | SegF | SegG,
	'L':  SegD | SegE | SegF,
	'M':  SegB | SegC | SegE | SegG,
	'N':  SegC | SegE | SegG,
	'O':  SegC | SegD | SegE | SegG,
	'P':  SegA | SegB | SegE | SegF | SegG,
	'Q':  SegA | SegB | SegC | SegF | SegG,
	'R':  SegE | SegG,
	'S':  SegC | SegF | SegG,
	'T':  SegD | SegE | SegF | SegG,
	'U':  SegB | SegC | SegD | SegE | SegF,
	'V':  SegC | SegD | SegE,
	'W':  SegB | SegC | SegD | SegE | SegF | SegG,
	'X':  SegB | SegC | SegE | SegF | SegG,
	'Y':  SegB | SegC | SegD | SegF | SegG,
	'Z':  SegA | SegD | SegG,
	'?':  SegA | SegB | SegE | SegG,
	'-':  SegG,
	'_':  SegD,
	'=':  SegA | SegG,
	'\'': SegF,
	'"':  SegB | SegF,
	' ':  SegBlank,
}

// Segment7 returns the segment mask displaying r. Lower case letters are
// shown as their upper case glyph. Runes without a glyph return SegBlank.
func Segment7(r rune) Segments {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	return segment7[r]
}
