package max6954

import "testing"

func TestDigitRegisterCoverage(t *testing.T) {
	seen := map[Register]bool{}
	for d := D0; d <= D7a; d++ {
		for _, p := range []Plane{P0, P1, Both} {
			r := d.Register(p)
			if seen[r] {
				t.Errorf("%s%s maps to %s twice", d, p, r)
			}
			seen[r] = true
		}
	}
	if len(seen) != 48 {
		t.Fatalf("got %d registers, want 48", len(seen))
	}
	for _, base := range []Register{0x20, 0x40, 0x60} {
		for i := Register(0); i < 16; i++ {
			if !seen[base+i] {
				t.Errorf("register 0x%02X not reachable", byte(base+i))
			}
		}
	}
}

func TestDigitRegister(t *testing.T) {
	tests := []struct {
		d    Digit
		p    Plane
		want Register
	}{
		{D0, P0, D0P0},
		{D3, P0, D3P0},
		{D7, P1, D7P1},
		{D0a, P0, D0aP0},
		{D7a, P0, D7aP0},
		{D4a, P1, D4aP1},
		{D0, Both, D0P0P1},
		{D7a, Both, D7aP0P1},
	}
	for _, tt := range tests {
		if got := tt.d.Register(tt.p); got != tt.want {
			t.Errorf("%s.Register(%s) = %s, want %s", tt.d, tt.p, got, tt.want)
		}
	}
}

func TestNewDigit(t *testing.T) {
	for i := -1; i <= 9; i++ {
		d, ok := NewDigit(i)
		if want := i >= 0 && i <= 7; ok != want {
			t.Errorf("NewDigit(%d) ok = %v, want %v", i, ok, want)
		} else if ok && d != Digit(i) {
			t.Errorf("NewDigit(%d) = %s", i, d)
		}

		d, ok = NewDigitA(i)
		if want := i >= 0 && i <= 7; ok != want {
			t.Errorf("NewDigitA(%d) ok = %v, want %v", i, ok, want)
		} else if ok && d != Digit(i+8) {
			t.Errorf("NewDigitA(%d) = %s", i, d)
		}
	}
}

func TestRegisterString(t *testing.T) {
	tests := []struct {
		r    Register
		want string
	}{
		{NoOp, "NoOp"},
		{KeyAPressedDigitType, "KeyAPressedDigitType"},
		{Intensity76a, "Intensity76a"},
		{D3P0, "D3P0"},
		{D5aP1, "D5aP1"},
		{D7aP0P1, "D7aP0P1"},
		{Register(0x18), "Register(0x18)"},
		{Register(0x30), "Register(0x30)"},
	}
	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("Register(0x%02X).String() = %q, want %q", byte(tt.r), got, tt.want)
		}
	}
}
