package sheet

import (
	"image"

	"github.com/bodgit/chrsheet/tile"
)

// Compose draws tiles into a new grayscale image, perRow tiles across
func Compose(tiles []tile.Tile, perRow int) (*image.Gray, error) {
	if perRow < 1 {
		return nil, ErrTilesPerRow
	}

	m := image.NewGray(image.Rect(0, 0, perRow*tile.Width, RowCount(len(tiles), perRow)*tile.Height))

	for i, t := range tiles {
		tx, ty := i%perRow, i/perRow
		for y := 0; y < tile.Height; y++ {
			for x := 0; x < tile.Width; x++ {
				dx := tx*tile.Width + x
				dy := ty*tile.Height + y

				m.Pix[m.PixOffset(dx, dy)] = MapColor(t[y][x])
			}
		}
	}

	return m, nil
}
