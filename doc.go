// Package max6954 controls a MAX6954 LED display driver via SPI.
//
// The MAX6954 drives up to 16 7-segment digits, or 8 14-segment or
// 16-segment digits, from a built-in font ROM or from raw segment data.
// Every method of Dev is a single register write (Unblank and WriteString
// write several registers in a row); nothing is buffered or read back.
//
// # Hardware Connection
//
// Connect the MAX6954 to your system via SPI:
//
//	Chip Pin → System Pin
//	GND      → GND
//	V+       → 3.3V or 5V
//	CLK      → SPI Clock (SCLK)
//	DIN      → SPI Data (MOSI)
//	DOUT     → SPI Data (MISO), unused by this driver
//	CS       → SPI Chip Select
//
// # Basic Usage
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/devices/v3/max6954"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		host.Init()
//
//		p, _ := spireg.Open("")
//		defer p.Close()
//
//		dev, _ := max6954.NewSPI(p, nil)
//		defer dev.Halt()
//
//		dev.SetConfiguration(max6954.NotShutdown | max6954.GlobalIntensityMode)
//		dev.SetGlobalIntensity(8)
//		dev.SetScanLimit(7)
//		dev.EnableDecode(max6954.DecodeAll)
//		dev.WriteString(max6954.Both, "12.34")
//	}
//
// # Digits and Planes
//
// Each of the 16 digits (D0-D7, D0a-D7a) has one data register per plane.
// Digit.Register maps a digit and a Plane to its register:
//
//	P0   → 0x20-0x2F
//	P1   → 0x40-0x4F
//	Both → 0x60-0x6F (writes P0 and P1 at once)
//
// With GlobalBlink set the display alternates between P0 and P1, so a digit
// with different content in the two planes blinks.
//
// D0a-D7a only exist for 7-segment digits. Use NewDigit and NewDigitA to
// build a digit from an index; they reject indices above 7.
//
// # Blanking
//
// After power up every digit register holds 0x20, which is blank in the
// font ROM. Blanking Dn also blanks its pair Dna, so Unblank only writes
// D0-D7 in plane Both.
//
// # Decoding
//
// DecodeMode selects per digit pair whether register data is a font ROM
// index (SetDigitHex, SetDigitASCII, WriteString) or a raw segment mask
// (SetDigitRaw, SetDigitSegments). See package font for the tables.
//
// # Errors
//
// Transport failures are returned wrapped with the register name; use
// errors.Is or errors.As to reach the underlying error. No write is retried.
//
// # Datasheet
//
// https://www.analog.com/media/en/technical-documentation/data-sheets/MAX6954.pdf
package max6954
