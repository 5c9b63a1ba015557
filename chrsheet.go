/*
Package chrsheet is a library for extracting the tile graphics from iNES
cartridge images as grayscale sprite sheets.
*/
package chrsheet

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/ioutil"
	"log"
	"os"

	"github.com/bodgit/chrsheet/ines"
	"github.com/bodgit/chrsheet/sheet"
	"github.com/bodgit/chrsheet/tile"
)

// ErrNoGraphics is returned when an image has no character ROM, usually
// because the cartridge uses character RAM instead
var ErrNoGraphics = errors.New("chrsheet: no tile graphics")

// ChrSheet extracts sprite sheets, optionally recording each ROM in a
// Catalog.
type ChrSheet struct {
	db          *Catalog
	logger      *log.Logger
	tilesPerRow int
}

// New returns a ChrSheet laying out tilesPerRow tiles on each row. db may be
// nil; logger may be nil in which case nothing is logged.
func New(tilesPerRow int, db *Catalog, logger *log.Logger) (*ChrSheet, error) {
	if tilesPerRow < 1 {
		return nil, sheet.ErrTilesPerRow
	}
	if logger == nil {
		logger = log.New(ioutil.Discard, "", 0)
	}
	return &ChrSheet{
		db:          db,
		logger:      logger,
		tilesPerRow: tilesPerRow,
	}, nil
}

// Result holds everything learned while extracting a single ROM
type Result struct {
	Header ines.Header
	CRC    string
	Tiles  int
	Image  *image.Gray
}

// Extract decodes the iNES image in b and returns its sprite sheet
func (c *ChrSheet) Extract(b []byte) (*Result, error) {
	h, region, err := ines.Parse(b)
	if err != nil {
		return nil, err
	}

	tiles := tile.DecodeAll(region)
	if len(tiles) == 0 {
		return nil, ErrNoGraphics
	}

	m, err := sheet.Compose(tiles, c.tilesPerRow)
	if err != nil {
		return nil, err
	}

	return &Result{
		Header: h,
		CRC:    crcROM(b),
		Tiles:  len(tiles),
		Image:  m,
	}, nil
}

func writePNG(file string, m image.Image) error {
	// Encode fully first so a failure leaves nothing behind
	var b bytes.Buffer
	if err := png.Encode(&b, m); err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	return ioutil.WriteFile(file, b.Bytes(), 0666)
}

func (c *ChrSheet) extractTo(file string, b []byte, output string) (*Result, error) {
	r, err := c.Extract(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	c.logger.Printf("%s: %d program units, %d graphics units, %d tiles, CRC %s\n", file, r.Header.ProgramUnits, r.Header.GraphicsUnits, r.Tiles, r.CRC)

	if err := writePNG(output, r.Image); err != nil {
		return nil, err
	}

	c.logger.Printf("Wrote %s\n", output)

	return r, nil
}

// ExtractFile reads the iNES image in file and writes its sprite sheet as a
// PNG to output. Nothing is written if the image cannot be decoded.
func (c *ChrSheet) ExtractFile(file, output string) (*Result, error) {
	b, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return c.extractTo(file, b, output)
}

// Pack reads the sprite sheet in file and writes the raw tile data to
// output. Any format registered with the image package can be read.
func Pack(file, output string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}

	tiles, err := sheet.Split(m)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}

	return ioutil.WriteFile(output, tile.EncodeAll(tiles), 0666)
}
