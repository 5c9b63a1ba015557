package chrsheet

import (
	"fmt"
	"hash/crc32"

	"github.com/bodgit/chrsheet/ines"
)

// crcROM computes the CRC of everything after the header, which is how ROM
// databases usually identify an iNES image
func crcROM(b []byte) string {
	if len(b) > ines.HeaderSize {
		b = b[ines.HeaderSize:]
	} else {
		b = nil
	}
	return fmt.Sprintf("%.*X", crc32.Size<<1, crc32.ChecksumIEEE(b))
}
