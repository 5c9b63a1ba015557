/*
Package sheet lays decoded tiles out as a single grayscale image and splits
such an image back into tiles.

Tiles are placed left to right, top to bottom, a fixed number per row. Each
2-bit color index maps to a fixed intensity; any part of the last row not
covered by a tile is left black.
*/
package sheet

import (
	"errors"

	"github.com/bodgit/chrsheet/tile"
)

// DefaultTilesPerRow is the number of tiles placed on each row unless
// otherwise configured
const DefaultTilesPerRow = 50

const background = 0

var (
	// ErrTilesPerRow is returned when the number of tiles per row is not
	// positive
	ErrTilesPerRow = errors.New("sheet: tiles per row must be positive")
	// ErrDimensions is returned when an image cannot be split into whole
	// tiles
	ErrDimensions = errors.New("sheet: image dimensions are not a multiple of the tile size")
)

var intensities = [tile.Colors]uint8{0, 117, 188, 255}

// MapColor returns the intensity for color index i. Anything other than 0-3
// maps to black.
func MapColor(i uint8) uint8 {
	if int(i) < len(intensities) {
		return intensities[i]
	}
	return background
}

// nearest returns the color index whose intensity is closest to y
func nearest(y uint8) uint8 {
	var best uint8
	bestDiff := 1 << 8
	for i, v := range intensities {
		d := int(y) - int(v)
		if d < 0 {
			d = -d
		}
		if d < bestDiff {
			best, bestDiff = uint8(i), d
		}
	}
	return best
}

// RowCount returns the number of rows needed to hold n tiles at perRow tiles
// per row
func RowCount(n, perRow int) int {
	return (n + perRow - 1) / perRow
}
