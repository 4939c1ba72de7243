package max6954

import "fmt"

// Register is the one byte address of a MAX6954 register.
type Register byte

const (
	NoOp Register = 0x00
	// DecodeMode enables font decoding per digit. See DigitConfiguration.
	DecodeMode Register = 0x01
	// GlobalIntensity sets the intensity of all digits (0x00-0x0F) when
	// GlobalIntensityMode is set in the Configuration register.
	GlobalIntensity   Register = 0x02
	ScanLimit         Register = 0x03
	Configuration     Register = 0x04
	GPIOData          Register = 0x05
	PortConfiguration Register = 0x06
	DisplayTest       Register = 0x07

	// Key mask registers on write, debounce registers on read.
	KeyAMaskDebounce Register = 0x08
	KeyBMaskDebounce Register = 0x09
	KeyCMaskDebounce Register = 0x0A
	KeyDMaskDebounce Register = 0x0B

	// KeyAPressedDigitType is the digit type register on write and reports
	// KEY_A pressed on read.
	KeyAPressedDigitType Register = 0x0C
	// Read only.
	KeyBPressed Register = 0x0D
	KeyCPressed Register = 0x0E
	KeyDPressed Register = 0x0F

	// Digit intensity registers, two digits per register.
	Intensity10  Register = 0x10
	Intensity32  Register = 0x11
	Intensity54  Register = 0x12
	Intensity76  Register = 0x13
	Intensity10a Register = 0x14
	Intensity32a Register = 0x15
	Intensity54a Register = 0x16
	Intensity76a Register = 0x17

	// Digit data registers for plane P0.
	D0P0  Register = 0x20
	D1P0  Register = 0x21
	D2P0  Register = 0x22
	D3P0  Register = 0x23
	D4P0  Register = 0x24
	D5P0  Register = 0x25
	D6P0  Register = 0x26
	D7P0  Register = 0x27
	D0aP0 Register = 0x28
	D1aP0 Register = 0x29
	D2aP0 Register = 0x2A
	D3aP0 Register = 0x2B
	D4aP0 Register = 0x2C
	D5aP0 Register = 0x2D
	D6aP0 Register = 0x2E
	D7aP0 Register = 0x2F

	// Digit data registers for plane P1.
	D0P1  Register = 0x40
	D1P1  Register = 0x41
	D2P1  Register = 0x42
	D3P1  Register = 0x43
	D4P1  Register = 0x44
	D5P1  Register = 0x45
	D6P1  Register = 0x46
	D7P1  Register = 0x47
	D0aP1 Register = 0x48
	D1aP1 Register = 0x49
	D2aP1 Register = 0x4A
	D3aP1 Register = 0x4B
	D4aP1 Register = 0x4C
	D5aP1 Register = 0x4D
	D6aP1 Register = 0x4E
	D7aP1 Register = 0x4F

	// Digit data registers written to both planes at once.
	D0P0P1  Register = 0x60
	D1P0P1  Register = 0x61
	D2P0P1  Register = 0x62
	D3P0P1  Register = 0x63
	D4P0P1  Register = 0x64
	D5P0P1  Register = 0x65
	D6P0P1  Register = 0x66
	D7P0P1  Register = 0x67
	D0aP0P1 Register = 0x68
	D1aP0P1 Register = 0x69
	D2aP0P1 Register = 0x6A
	D3aP0P1 Register = 0x6B
	D4aP0P1 Register = 0x6C
	D5aP0P1 Register = 0x6D
	D6aP0P1 Register = 0x6E
	D7aP0P1 Register = 0x6F
)

var registerNames = map[Register]string{
	NoOp:                 "NoOp",
	DecodeMode:           "DecodeMode",
	GlobalIntensity:      "GlobalIntensity",
	ScanLimit:            "ScanLimit",
	Configuration:        "Configuration",
	GPIOData:             "GPIOData",
	PortConfiguration:    "PortConfiguration",
	DisplayTest:          "DisplayTest",
	KeyAMaskDebounce:     "KeyAMaskDebounce",
	KeyBMaskDebounce:     "KeyBMaskDebounce",
	KeyCMaskDebounce:     "KeyCMaskDebounce",
	KeyDMaskDebounce:     "KeyDMaskDebounce",
	KeyAPressedDigitType: "KeyAPressedDigitType",
	KeyBPressed:          "KeyBPressed",
	KeyCPressed:          "KeyCPressed",
	KeyDPressed:          "KeyDPressed",
	Intensity10:          "Intensity10",
	Intensity32:          "Intensity32",
	Intensity54:          "Intensity54",
	Intensity76:          "Intensity76",
	Intensity10a:         "Intensity10a",
	Intensity32a:         "Intensity32a",
	Intensity54a:         "Intensity54a",
	Intensity76a:         "Intensity76a",
}

// String returns the datasheet name of the register, e.g. "D3aP0P1".
func (r Register) String() string {
	if n, ok := registerNames[r]; ok {
		return n
	}
	if p, ok := planeOf(r); ok {
		return Digit(r&0x0F).String() + p.String()
	}
	return fmt.Sprintf("Register(0x%02X)", byte(r))
}

// Digit identifies one of the 16 digit positions.
//
// D0-D7 are usable in every display mode. D0a-D7a exist only for 7-segment
// digits.
type Digit byte

const (
	D0 Digit = iota
	D1
	D2
	D3
	D4
	D5
	D6
	D7
	D0a
	D1a
	D2a
	D3a
	D4a
	D5a
	D6a
	D7a
)

// NewDigit returns digit Dn. ok is false when index is not in 0-7.
func NewDigit(index int) (d Digit, ok bool) {
	if index < 0 || index > 7 {
		return 0, false
	}
	return Digit(index), true
}

// NewDigitA returns digit Dna. ok is false when index is not in 0-7.
func NewDigitA(index int) (d Digit, ok bool) {
	if index < 0 || index > 7 {
		return 0, false
	}
	return Digit(index + 8), true
}

// Register returns the digit data register of d in plane p.
func (d Digit) Register(p Plane) Register {
	return planeBase[p] + Register(d&0x0F)
}

func (d Digit) String() string {
	if d > D7a {
		return fmt.Sprintf("Digit(%d)", byte(d))
	}
	if d >= D0a {
		return fmt.Sprintf("D%da", byte(d-D0a))
	}
	return fmt.Sprintf("D%d", byte(d))
}

// Plane selects the digit data plane a write targets.
//
// With GlobalBlink enabled the display alternates between P0 and P1. Both
// updates P0 and P1 with a single write.
type Plane byte

const (
	P0 Plane = iota
	P1
	Both
)

var planeBase = [...]Register{
	P0:   D0P0,
	P1:   D0P1,
	Both: D0P0P1,
}

func (p Plane) String() string {
	switch p {
	case P0:
		return "P0"
	case P1:
		return "P1"
	case Both:
		return "P0P1"
	}
	return fmt.Sprintf("Plane(%d)", byte(p))
}

// planeOf returns the plane of a digit data register.
func planeOf(r Register) (Plane, bool) {
	for p, base := range planeBase {
		if r >= base && r <= base+0x0F {
			return Plane(p), true
		}
	}
	return 0, false
}
