package chrsheet

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Catalog is a sqlite database of every ROM processed, keyed by the CRC of
// the ROM without its header.
type Catalog struct {
	db *sql.DB
}

// Entry is a single catalogued ROM
type Entry struct {
	CRC           string
	Name          string
	ProgramUnits  uint8
	GraphicsUnits uint8
	Tiles         int
	Sheet         string
}

// NewCatalog opens or creates the catalog in file
func NewCatalog(file string) (*Catalog, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_busy_timeout=5000", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(scanWorkers)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS rom (id INTEGER PRIMARY KEY NOT NULL, crc TEXT NOT NULL UNIQUE, name TEXT NOT NULL, program_units INTEGER NOT NULL, graphics_units INTEGER NOT NULL, tiles INTEGER NOT NULL, sheet TEXT NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	return &Catalog{
		db: db,
	}, nil
}

// Close closes the underlying database
func (c *Catalog) Close() error {
	return c.db.Close()
}

// Add stores e, replacing any existing entry with the same CRC
func (c *Catalog) Add(e Entry) error {
	if _, err := c.db.Exec("INSERT OR REPLACE INTO rom (crc, name, program_units, graphics_units, tiles, sheet) VALUES (?, ?, ?, ?, ?, ?)", e.CRC, e.Name, e.ProgramUnits, e.GraphicsUnits, e.Tiles, e.Sheet); err != nil {
		return err
	}
	return nil
}

// FindByCRC returns the entry for crc or nil if there isn't one
func (c *Catalog) FindByCRC(crc string) (*Entry, error) {
	e := Entry{CRC: crc}
	switch err := c.db.QueryRow("SELECT name, program_units, graphics_units, tiles, sheet FROM rom WHERE crc = ?", crc).Scan(&e.Name, &e.ProgramUnits, &e.GraphicsUnits, &e.Tiles, &e.Sheet); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return &e, nil
	default:
		return nil, err
	}
}

// Entries returns every entry ordered by name
func (c *Catalog) Entries() ([]Entry, error) {
	rows, err := c.db.Query("SELECT crc, name, program_units, graphics_units, tiles, sheet FROM rom ORDER BY name, crc")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.CRC, &e.Name, &e.ProgramUnits, &e.GraphicsUnits, &e.Tiles, &e.Sheet); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
