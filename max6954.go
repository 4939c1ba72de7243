package max6954

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/devices/v3/max6954/font"
)

// maxFreq is the fastest SPI clock the MAX6954 accepts.
const maxFreq = 26 * physic.MegaHertz

// Opts is the configuration for the MAX6954.
type Opts struct {
	// SPI clock (default: 10MHz, must be ≤26MHz)
	Freq physic.Frequency
}

// Dev is the device handle for the MAX6954.
//
// Every method issues its register writes immediately. Nothing is buffered
// or cached and a Dev must not be used concurrently.
type Dev struct {
	c conn.Conn
}

// NewSPI creates a new MAX6954 device connected via SPI.
//
// The SPI port is configured for Mode0 (CPOL=0, CPHA=0), 8-bit transfers.
// Each register write is a single 2 byte transaction.
//
// opts can be nil to use defaults.
func NewSPI(p spi.Port, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{Freq: 10 * physic.MegaHertz}
	}
	f := opts.Freq
	if f == 0 {
		f = 10 * physic.MegaHertz
	}
	if f < 0 || f > maxFreq {
		return nil, errors.New("max6954: frequency must be between 1Hz and 26MHz")
	}

	c, err := p.Connect(f, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("max6954: %w", err)
	}
	return New(c), nil
}

// New returns a Dev writing to an already connected c.
func New(c conn.Conn) *Dev {
	return &Dev{c: c}
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("max6954.Dev{%s}", d.c)
}

// WriteRegister writes data to the register r.
//
// A failed transaction is returned wrapped; it is never retried.
func (d *Dev) WriteRegister(r Register, data byte) error {
	if err := d.c.Tx([]byte{byte(r), data}, nil); err != nil {
		return fmt.Errorf("max6954: write %s: %w", r, err)
	}
	return nil
}

// SetDigitRaw writes data unchanged to the register of digit in plane.
//
// With decoding disabled for the digit, data is a segment mask.
func (d *Dev) SetDigitRaw(digit Digit, plane Plane, data byte) error {
	return d.WriteRegister(digit.Register(plane), data)
}

// SetConfiguration writes c to the Configuration register.
func (d *Dev) SetConfiguration(c Config) error {
	return d.WriteRegister(Configuration, byte(c))
}

// EnableDecode sets font decoding for the digits in m and disables it for
// all others. Digits without decoding show raw segment data.
func (d *Dev) EnableDecode(m DigitConfig) error {
	return d.WriteRegister(DecodeMode, byte(m))
}

// Unblank clears D0P0P1-D7P0P1, in digit order.
//
// The digit registers hold 0x20 (blank) after power up, which also blanks
// D0a-D7a. Writing D0-D7 unblanks the paired digits as well.
//
// Unblank stops at the first failed write. The digits before it are
// already unblanked when the error is returned.
func (d *Dev) Unblank() error {
	for digit := D0; digit <= D7; digit++ {
		if err := d.WriteRegister(digit.Register(Both), 0); err != nil {
			return err
		}
	}
	return nil
}

// SetDigitHex shows the hexadecimal digit value (0-15) on digit. Larger
// values blank the digit. dp turns on the decimal point.
//
// Decoding must be enabled for the digit, see EnableDecode.
func (d *Dev) SetDigitHex(digit Digit, plane Plane, value byte, dp bool) error {
	return d.WriteRegister(digit.Register(plane), font.Hex(value)|dpBit(dp))
}

// SetDigitASCII shows the character r on digit. Non ASCII runes blank the
// digit. dp turns on the decimal point.
//
// Decoding must be enabled for the digit, see EnableDecode.
func (d *Dev) SetDigitASCII(digit Digit, plane Plane, r rune, dp bool) error {
	return d.WriteRegister(digit.Register(plane), font.ASCII(r)|dpBit(dp))
}

// SetDigitSegments lights the segments of the 7-segment glyph of r on
// digit. Runes without a glyph turn all segments off.
//
// Decoding must be disabled for the digit, see EnableDecode.
func (d *Dev) SetDigitSegments(digit Digit, plane Plane, r rune, dp bool) error {
	s := font.Segment7(r)
	if dp {
		s |= font.SegDP
	}
	return d.WriteRegister(digit.Register(plane), byte(s))
}

// WriteString shows s on D0-D7 using the ASCII font, one rune per digit.
// A '.' turns on the decimal point of the digit before it, unless that one
// is already on. Digits past the end of s are blanked.
//
// Decoding must be enabled for D0-D7, see EnableDecode.
func (d *Dev) WriteString(plane Plane, s string) error {
	var data [8]byte
	for i := range data {
		data[i] = font.Blank
	}
	n := 0
	for _, r := range s {
		if r == '.' && n > 0 && data[n-1]&dpBit(true) == 0 {
			data[n-1] |= dpBit(true)
			continue
		}
		if n == len(data) {
			return errors.New("max6954: string does not fit on 8 digits")
		}
		data[n] = font.ASCII(r)
		n++
	}
	for i, b := range data {
		if err := d.WriteRegister(Digit(i).Register(plane), b); err != nil {
			return err
		}
	}
	return nil
}

// SetGlobalIntensity sets the intensity of all digits (0-15). It applies
// when GlobalIntensityMode is set in the configuration.
func (d *Dev) SetGlobalIntensity(level byte) error {
	return d.WriteRegister(GlobalIntensity, level&0x0F)
}

// SetScanLimit sets the number of scanned digit pairs minus one (0-7).
func (d *Dev) SetScanLimit(limit byte) error {
	return d.WriteRegister(ScanLimit, limit&0x07)
}

// SetDisplayTest turns all segments on at full intensity when on is set.
func (d *Dev) SetDisplayTest(on bool) error {
	var v byte
	if on {
		v = 0x01
	}
	return d.WriteRegister(DisplayTest, v)
}

// Halt puts the display in shutdown by clearing the configuration.
//
// Call SetConfiguration with NotShutdown to turn it back on.
func (d *Dev) Halt() error {
	return d.SetConfiguration(0)
}

func dpBit(dp bool) byte {
	if dp {
		return 0x80
	}
	return 0
}
