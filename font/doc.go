// Package font converts characters into the bytes written to MAX6954 digit
// data registers.
//
// Two kinds of tables exist. Hex and ASCII return an index into the chip's
// internal font ROM and are used for digits with decoding enabled. Segment7
// returns a raw segment mask for 7-segment digits with decoding disabled.
//
// All conversions are total: unknown input maps to a blank value instead of
// an error. Hex and ASCII return Blank (0x20, a space in the font ROM),
// Segment7 returns SegBlank (all segments off).
package font
