package max6954

import "strings"

// Config is the content of the Configuration register.
//
// Flags combine with |. Bit 0x02 is unused.
type Config byte

const (
	// BlinkPhase reports the current blink phase: set for P0, clear for P1.
	// It is read only; writes are ignored by the chip.
	BlinkPhase Config = 0x80
	// GlobalIntensityMode selects the GlobalIntensity register instead of the
	// per digit intensity registers.
	GlobalIntensityMode Config = 0x40
	// ClearData clears the digit data of both planes. Transient.
	ClearData Config = 0x20
	// BlinkSync resets the blink timing on the CS falling edge. Transient.
	BlinkSync Config = 0x10
	// GlobalBlink enables blinking between P0 and P1.
	GlobalBlink Config = 0x08
	// BlinkRate selects the slow blink rate (0.5Hz at 4MHz, 1Hz when clear).
	BlinkRate Config = 0x04
	// NotShutdown takes the chip out of shutdown.
	NotShutdown Config = 0x01
)

var configNames = []struct {
	f    Config
	name string
}{
	{BlinkPhase, "BlinkPhase"},
	{GlobalIntensityMode, "GlobalIntensityMode"},
	{ClearData, "ClearData"},
	{BlinkSync, "BlinkSync"},
	{GlobalBlink, "GlobalBlink"},
	{BlinkRate, "BlinkRate"},
	{NotShutdown, "NotShutdown"},
}

// Has reports whether all flags of f are set in c.
func (c Config) Has(f Config) bool {
	return c&f == f
}

func (c Config) String() string {
	var out []string
	for _, n := range configNames {
		if c.Has(n.f) {
			out = append(out, n.name)
		}
	}
	if len(out) == 0 {
		return "0"
	}
	return strings.Join(out, "|")
}

// DigitConfig is the content of the DecodeMode register: one bit per digit
// pair, set to enable font decoding.
//
// Cleared digits show raw segment data. Only meaningful for 7-segment digits.
type DigitConfig byte

const (
	DecodeD0 DigitConfig = 1 << iota
	DecodeD1
	DecodeD2
	DecodeD3
	DecodeD4
	DecodeD5
	DecodeD6
	DecodeD7

	DecodeNone DigitConfig = 0
	DecodeAll  DigitConfig = 0xFF
)

// DecodeFor returns the decode bit controlling d. Dn and Dna share a bit.
func DecodeFor(d Digit) DigitConfig {
	return DigitConfig(1) << (d & 0x07)
}

// Has reports whether all bits of f are set in c.
func (c DigitConfig) Has(f DigitConfig) bool {
	return c&f == f
}

func (c DigitConfig) String() string {
	var out []string
	for i := D0; i <= D7; i++ {
		if c.Has(DecodeFor(i)) {
			out = append(out, i.String())
		}
	}
	if len(out) == 0 {
		return "0"
	}
	return strings.Join(out, "|")
}
