package tile

// Encode encodes t as a 16 byte tile record. Only the lower two bits of
// each cell are used.
func Encode(t Tile) [Size]byte {
	var p [Size]byte
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			shift := uint(Width - 1 - x)
			p[y] |= t[y][x] & 0x01 << shift
			p[planeSize+y] |= t[y][x] >> 1 & 0x01 << shift
		}
	}
	return p
}

// EncodeAll encodes each tile in turn and returns the concatenated records
func EncodeAll(tiles []Tile) []byte {
	b := make([]byte, 0, len(tiles)*Size)
	for _, t := range tiles {
		p := Encode(t)
		b = append(b, p[:]...)
	}
	return b
}
