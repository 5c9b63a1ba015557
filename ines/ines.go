/*
Package ines implements a parser for the iNES cartridge image container.

The container starts with a 16 byte header. The first four bytes are the
constant "NES" followed by an MS-DOS end-of-file byte, byte 4 is the number of
16 KB program ROM units and byte 5 is the number of 8 KB character ROM units.
The program ROM follows the header immediately and the character ROM, which
holds the tile graphics, follows the program ROM. No other header field is
interpreted.
*/
package ines

import (
	"bytes"
	"errors"
)

const (
	// HeaderSize is the size in bytes of the fixed header
	HeaderSize = 16
	// ProgramUnit is the size in bytes of each program ROM unit
	ProgramUnit = 16 << 10
	// GraphicsUnit is the size in bytes of each character ROM unit
	GraphicsUnit = 8 << 10

	magic = "NES\x1a"
)

var (
	// ErrFormat is returned when the input does not start with the iNES
	// magic number
	ErrFormat = errors.New("ines: not an iNES image")
	// ErrTruncated is returned when the input is shorter than the header
	// or the regions it declares
	ErrTruncated = errors.New("ines: truncated input")
)

// Header is the parsed iNES header. It implements the
// encoding.BinaryMarshaler and encoding.BinaryUnmarshaler interfaces.
type Header struct {
	Magic         [4]byte
	ProgramUnits  uint8
	GraphicsUnits uint8
}

// GraphicsOffset returns the byte offset of the character ROM
func (h Header) GraphicsOffset() int {
	return HeaderSize + int(h.ProgramUnits)*ProgramUnit
}

// GraphicsSize returns the length in bytes of the character ROM
func (h Header) GraphicsSize() int {
	return int(h.GraphicsUnits) * GraphicsUnit
}

// MarshalBinary encodes the header into its 16 byte form. Bytes 6 to 15 are
// always written as zero.
func (h Header) MarshalBinary() ([]byte, error) {
	b := make([]byte, HeaderSize)
	copy(b, h.Magic[:])
	b[4] = h.ProgramUnits
	b[5] = h.GraphicsUnits
	return b, nil
}

// UnmarshalBinary decodes the header from the start of b
func (h *Header) UnmarshalBinary(b []byte) error {
	if len(b) < HeaderSize {
		return ErrTruncated
	}

	if !bytes.Equal(b[:len(magic)], []byte(magic)) {
		return ErrFormat
	}

	copy(h.Magic[:], b[:len(magic)])
	h.ProgramUnits = b[4]
	h.GraphicsUnits = b[5]

	return nil
}

// NewHeader returns a header with the magic number set
func NewHeader(programUnits, graphicsUnits uint8) Header {
	h := Header{
		ProgramUnits:  programUnits,
		GraphicsUnits: graphicsUnits,
	}
	copy(h.Magic[:], magic)
	return h
}

// Parse validates the header at the start of b and returns it along with the
// character ROM region. The region is a sub-slice of b and is not copied.
func Parse(b []byte) (Header, []byte, error) {
	var h Header
	if err := h.UnmarshalBinary(b); err != nil {
		return Header{}, nil, err
	}

	start := h.GraphicsOffset()
	end := start + h.GraphicsSize()
	if end > len(b) {
		return Header{}, nil, ErrTruncated
	}

	return h, b[start:end:end], nil
}
