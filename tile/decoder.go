package tile

// Decode decodes a single 16 byte tile record
func Decode(p [Size]byte) Tile {
	var t Tile
	for y := 0; y < Height; y++ {
		lo, hi := p[y], p[planeSize+y]
		for x := 0; x < Width; x++ {
			shift := uint(Width - 1 - x)
			t[y][x] = lo>>shift&1 | (hi>>shift&1)<<1
		}
	}
	return t
}

// DecodeAll decodes b as consecutive tile records. Any trailing bytes that
// do not make up a whole tile are ignored.
func DecodeAll(b []byte) []Tile {
	tiles := make([]Tile, len(b)/Size)
	for i := range tiles {
		var p [Size]byte
		copy(p[:], b[i*Size:])
		tiles[i] = Decode(p)
	}
	return tiles
}
