package chrsheet

import (
	"bytes"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/bodgit/chrsheet/ines"
	"github.com/bodgit/chrsheet/tile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, file string, b []byte) {
	require.NoError(t, os.MkdirAll(filepath.Dir(file), 0777))
	require.NoError(t, ioutil.WriteFile(file, b, 0666))
}

func TestSheetPath(t *testing.T) {
	assert.Equal(t, "/roms/game.png", sheetPath("/roms/game.nes"))
	assert.Equal(t, "/roms/game.v1.png", sheetPath("/roms/game.v1.NES"))
}

func TestScan(t *testing.T) {
	dir := t.TempDir()

	noCHR, err := ines.NewHeader(1, 0).MarshalBinary()
	require.NoError(t, err)
	noCHR = append(noCHR, make([]byte, ines.ProgramUnit)...)

	writeFile(t, filepath.Join(dir, "a.nes"), makeROM(t, 1, []tile.Tile{{}}))
	writeFile(t, filepath.Join(dir, "sub", "b.NES"), makeROM(t, 2, make([]tile.Tile, 1024)))
	writeFile(t, filepath.Join(dir, "sub", "chrram.nes"), noCHR)
	writeFile(t, filepath.Join(dir, ".hidden", "c.nes"), makeROM(t, 1, nil))
	writeFile(t, filepath.Join(dir, "notes.txt"), []byte("not a rom"))

	db := newCatalog(t)

	var logs bytes.Buffer
	c, err := New(16, db, log.New(&logs, "", 0))
	require.NoError(t, err)

	require.NoError(t, c.Scan(dir))

	assert.FileExists(t, filepath.Join(dir, "a.png"))
	assert.FileExists(t, filepath.Join(dir, "sub", "b.png"))
	assert.NoFileExists(t, filepath.Join(dir, "sub", "chrram.png"))
	assert.NoFileExists(t, filepath.Join(dir, ".hidden", "c.png"))
	assert.NoFileExists(t, filepath.Join(dir, "notes.png"))

	m := readPNG(t, filepath.Join(dir, "sub", "b.png"))
	assert.Equal(t, 16*tile.Width, m.Bounds().Dx())
	assert.Equal(t, 1024/16*tile.Height, m.Bounds().Dy())

	entries, err := db.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].Name)
	assert.Equal(t, 512, entries[0].Tiles)
	assert.Equal(t, "b", entries[1].Name)
	assert.Equal(t, uint8(2), entries[1].ProgramUnits)
	assert.Equal(t, uint8(2), entries[1].GraphicsUnits)
	assert.Equal(t, 1024, entries[1].Tiles)

	// A second scan finds everything already catalogued
	logs.Reset()
	require.NoError(t, c.Scan(dir))
	assert.Contains(t, logs.String(), "already catalogued")
	assert.NotContains(t, logs.String(), "Wrote")

	// Unless the sheet has gone away
	require.NoError(t, os.Remove(filepath.Join(dir, "a.png")))
	logs.Reset()
	require.NoError(t, c.Scan(dir))
	assert.FileExists(t, filepath.Join(dir, "a.png"))
	assert.Contains(t, logs.String(), "Wrote "+filepath.Join(dir, "a.png"))
}

func TestScanWithoutCatalog(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "a.nes"), makeROM(t, 0, []tile.Tile{{}}))

	c, err := New(50, nil, nil)
	require.NoError(t, err)

	require.NoError(t, c.Scan(dir))
	assert.FileExists(t, filepath.Join(dir, "a.png"))
}

func TestScanError(t *testing.T) {
	dir := t.TempDir()

	for i := 0; i < 3*scanWorkers; i++ {
		writeFile(t, filepath.Join(dir, string(rune('a'+i%26))+string(rune('0'+i/26))+".nes"), makeROM(t, 0, []tile.Tile{{}}))
	}
	writeFile(t, filepath.Join(dir, "bad.nes"), []byte("NES\x1a\x01\x01"))

	c, err := New(50, nil, nil)
	require.NoError(t, err)

	assert.ErrorIs(t, c.Scan(dir), ines.ErrTruncated)
	assert.NoFileExists(t, filepath.Join(dir, "bad.png"))
}

func TestScanMissing(t *testing.T) {
	c, err := New(50, nil, nil)
	require.NoError(t, err)

	assert.Error(t, c.Scan(filepath.Join(t.TempDir(), "missing")))
}
