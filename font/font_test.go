package font

import (
	"strings"
	"testing"
	"unicode"
)

func TestHex(t *testing.T) {
	for v := 0; v < 256; v++ {
		want := Blank
		if v < 16 {
			want = byte(v)
		}
		if got := Hex(byte(v)); got != want {
			t.Errorf("Hex(%d) = 0x%02X, want 0x%02X", v, got, want)
		}
	}
}

func TestHexRune(t *testing.T) {
	const digits = "0123456789abcdefABCDEF"
	for _, r := range digits {
		want := byte(strings.IndexRune("0123456789abcdef", unicode.ToLower(r)))
		if got := HexRune(r); got != want {
			t.Errorf("HexRune(%q) = 0x%02X, want 0x%02X", r, got, want)
		}
	}
	for _, r := range "gGxZ -./:@`é\x00" {
		if got := HexRune(r); got != Blank {
			t.Errorf("HexRune(%q) = 0x%02X, want Blank", r, got)
		}
	}
}

func TestASCII(t *testing.T) {
	for r := rune(0); r <= unicode.MaxASCII; r++ {
		if got := ASCII(r); got != byte(r) {
			t.Errorf("ASCII(%q) = 0x%02X, want 0x%02X", r, got, byte(r))
		}
	}
	for _, r := range []rune{0x80, 0xFF, 'é', '€', '世', unicode.MaxRune, -1} {
		if got := ASCII(r); got != Blank {
			t.Errorf("ASCII(%q) = 0x%02X, want Blank", r, got)
		}
	}
}

func TestSegment7(t *testing.T) {
	tests := []struct {
		r    rune
		want Segments
	}{
		{'0', 0x7E},
		{'1', SegB | SegC},
		{'7', SegA | SegB | SegC},
		{'8', 0x7F},
		{'A', SegA | SegB | SegC | SegE | SegF | SegG},
		{'H', SegC | SegE | SegF | SegG},
		{'Z', SegA | SegD | SegG},
		{'-', SegG},
		{'_', SegD},
		{'"', SegB | SegF},
		{' ', SegBlank},
	}
	for _, tt := range tests {
		if got := Segment7(tt.r); got != tt.want {
			t.Errorf("Segment7(%q) = %08b, want %08b", tt.r, byte(got), byte(tt.want))
		}
	}
}

func TestSegment7CaseInsensitive(t *testing.T) {
	for r := 'a'; r <= 'z'; r++ {
		upper := unicode.ToUpper(r)
		if Segment7(r) != Segment7(upper) {
			t.Errorf("Segment7(%q) = %08b, Segment7(%q) = %08b", r, byte(Segment7(r)), upper, byte(Segment7(upper)))
		}
		if Segment7(upper) == SegBlank {
			t.Errorf("Segment7(%q) is blank", upper)
		}
	}
}

func TestSegment7Unknown(t *testing.T) {
	for _, r := range "#.,!@*/\\é€\x00\n" {
		if got := Segment7(r); got != SegBlank {
			t.Errorf("Segment7(%q) = %08b, want blank", r, byte(got))
		}
	}
}

func TestSegment7NoDecimalPoint(t *testing.T) {
	if len(segment7) != 43 {
		t.Errorf("table has %d glyphs, want 43", len(segment7))
	}
	for r, s := range segment7 {
		if s&SegDP != 0 {
			t.Errorf("Segment7(%q) sets the decimal point", r)
		}
	}
	if Degree != 0b0110_0011 {
		t.Errorf("Degree = %08b, want 01100011", byte(Degree))
	}
}
