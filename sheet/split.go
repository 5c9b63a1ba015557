package sheet

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/bodgit/chrsheet/tile"
	"github.com/ericpauley/go-quantize/quantize"
)

func paletteIndices(p color.Palette) []uint8 {
	indices := make([]uint8, len(p))
	for i, c := range p {
		indices[i] = nearest(color.GrayModel.Convert(c).(color.Gray).Y)
	}
	return indices
}

// Return a function mapping each pixel of m to a color index
func indexer(m image.Image) func(x, y int) uint8 {
	if gm, ok := m.(*image.Gray); ok {
		return func(x, y int) uint8 {
			return nearest(gm.GrayAt(x, y).Y)
		}
	}

	pm, _ := m.(*image.Paletted)
	if pm == nil || len(pm.Palette) > tile.Colors {
		b := m.Bounds()
		q := quantize.MedianCutQuantizer{}
		pm = image.NewPaletted(b, q.Quantize(make(color.Palette, 0, tile.Colors), m))
		draw.Draw(pm, b, m, b.Min, draw.Src)
	}

	indices := paletteIndices(pm.Palette)
	return func(x, y int) uint8 {
		return indices[pm.ColorIndexAt(x, y)]
	}
}

// Split cuts m into tiles, left to right and top to bottom. Each pixel is
// mapped to the color index with the closest intensity. Images with more
// than four colors are quantized first.
func Split(m image.Image) ([]tile.Tile, error) {
	b := m.Bounds()
	if b.Dx()%tile.Width != 0 || b.Dy()%tile.Height != 0 {
		return nil, ErrDimensions
	}

	index := indexer(m)

	tileX, tileY := b.Dx()/tile.Width, b.Dy()/tile.Height
	tiles := make([]tile.Tile, 0, tileX*tileY)

	for ty := 0; ty < tileY; ty++ {
		for tx := 0; tx < tileX; tx++ {
			var t tile.Tile
			for y := 0; y < tile.Height; y++ {
				for x := 0; x < tile.Width; x++ {
					t[y][x] = index(b.Min.X+tx*tile.Width+x, b.Min.Y+ty*tile.Height+y)
				}
			}
			tiles = append(tiles, t)
		}
	}

	return tiles, nil
}
