package vicpen

import (
	"bytes"
	"crypto/sha1"
	"database/sql"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	_ "github.com/mattn/go-sqlite3"
	"github.com/vicpen/vicpen/vic"
)

// BrushDB is a persistent library of named brushes, so grabbed cell
// rectangles can be reused across sessions.
type BrushDB struct {
	db *sql.DB
}

// OpenBrushDB opens or creates a brush library at the given path.
func OpenBrushDB(file string) (*BrushDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS brush (id INTEGER PRIMARY KEY NOT NULL, name STRING NOT NULL UNIQUE, sha1 TEXT NOT NULL, cells BLOB NOT NULL)"); err != nil {
		return nil, err
	}

	return &BrushDB{db: db}, nil
}

// Close closes the library.
func (db *BrushDB) Close() error {
	return db.db.Close()
}

// Store saves a brush under the given name, replacing any previous brush
// with that name.
func (db *BrushDB) Store(name string, brush *vic.CharGrid) error {
	blob, err := marshalBrush(brush)
	if err != nil {
		return err
	}
	hash := fmt.Sprintf("%x", sha1.Sum(blob))
	_, err = db.db.Exec("INSERT INTO brush (name, sha1, cells) VALUES (?, ?, ?) ON CONFLICT(name) DO UPDATE SET sha1 = excluded.sha1, cells = excluded.cells", name, hash, blob)
	return err
}

// Load returns the brush stored under the given name.
func (db *BrushDB) Load(name string) (*vic.CharGrid, error) {
	var blob []byte
	if err := db.db.QueryRow("SELECT cells FROM brush WHERE name = ?", name).Scan(&blob); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("vicpen: no brush named %q", name)
		}
		return nil, err
	}
	return unmarshalBrush(blob)
}

// Names returns the stored brush names in alphabetical order.
func (db *BrushDB) Names() ([]string, error) {
	rows, err := db.db.Query("SELECT name FROM brush ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Delete removes a stored brush. Removing an unknown name is not an error.
func (db *BrushDB) Delete(name string) error {
	_, err := db.db.Exec("DELETE FROM brush WHERE name = ?", name)
	return err
}

// marshalBrush encodes a brush as a compact blob: width and height as
// 16 bit values, then 8 bitmap bytes and a raw color nibble per cell.
func marshalBrush(brush *vic.CharGrid) ([]byte, error) {
	if brush.Width < 1 || brush.Height < 1 || brush.Width > 0xffff || brush.Height > 0xffff {
		return nil, errors.New("vicpen: brush size out of range")
	}
	b := new(bytes.Buffer)
	if err := binary.Write(b, binary.LittleEndian, []uint16{uint16(brush.Width), uint16(brush.Height)}); err != nil {
		return nil, err
	}
	for y := 0; y < brush.Height; y++ {
		for x := 0; x < brush.Width; x++ {
			c := brush.At(x, y)
			bits := c.Bits()
			if _, err := b.Write(bits[:]); err != nil {
				return nil, err
			}
			if err := b.WriteByte(c.RawNibble()); err != nil {
				return nil, err
			}
		}
	}
	return b.Bytes(), nil
}

func unmarshalBrush(blob []byte) (*vic.CharGrid, error) {
	r := bytes.NewReader(blob)
	var size [2]uint16
	if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
		return nil, errors.New("vicpen: corrupt brush data")
	}
	width := int(size[0])
	height := int(size[1])
	if width < 1 || height < 1 {
		return nil, errors.New("vicpen: corrupt brush data")
	}
	grid := vic.NewCharGrid(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var record [vic.CharHeight + 1]byte
			if _, err := io.ReadFull(r, record[:]); err != nil {
				return nil, errors.New("vicpen: corrupt brush data")
			}
			var bits [vic.CharHeight]byte
			copy(bits[:], record[:vic.CharHeight])
			grid.Set(x, y, vic.CharFromRawNibble(bits, record[vic.CharHeight]))
		}
	}
	return grid, nil
}
