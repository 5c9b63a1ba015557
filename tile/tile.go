/*
Package tile implements a decoder and encoder for 2 bits per pixel planar
tiles as stored in an iNES character ROM.

Each tile is 8 by 8 pixels and occupies 16 bytes. The first 8 bytes are the
low bit plane and the last 8 bytes are the high bit plane, one byte per row.
Within a byte the most significant bit is the leftmost pixel.
*/
package tile

const (
	// Width is the width of a tile in pixels
	Width = 8
	// Height is the height of a tile in pixels
	Height = Width
	// Size is the encoded size of a tile in bytes
	Size = planeSize * 2
	// Colors is the number of distinct color indices
	Colors = 4

	planeSize = Height
)

// Tile is a decoded tile, indexed as [y][x]. Each cell is a color index
// between 0 and 3 inclusive.
type Tile [Height][Width]uint8
