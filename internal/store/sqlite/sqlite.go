// Package sqlite reads dictionaries stored as SQLite databases with a single
// table dictionary(word, definition) in ROWID order.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"dicbrowse/internal/domain"
	"dicbrowse/internal/store"
)

const (
	driverName = "sqlite"
	tableName  = "dictionary"
)

// record is one row of the dictionary table
type record struct {
	ID         int64  `db:"id"`
	Word       string `db:"word"`
	Definition string `db:"definition"`
}

var recordColumns = []string{
	"ROWID AS id",
	"COALESCE(word, '') AS word",
	"COALESCE(definition, '') AS definition",
}

// Opener opens <dir>/<name><extension> read-only
type Opener struct {
	dir       string
	extension string
}

// NewOpener creates an opener rooted at dir
func NewOpener(dir, extension string) *Opener {
	return &Opener{dir: dir, extension: extension}
}

// Path returns the file backing the named dictionary
func (o *Opener) Path(name string) string {
	return filepath.Join(o.dir, name+o.extension)
}

func (o *Opener) Open(name string) (store.Handle, error) {
	path := o.Path(name)

	// sqlite would create a missing file, so check first
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("open %s: %w", path, domain.ErrStoreNotFound)
		}
		return nil, fmt.Errorf("open %s: %w: %v", path, domain.ErrStoreIO, err)
	}

	db, err := sqlx.Open(driverName, "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open %s: %w: %v", path, domain.ErrStoreIO, err)
	}
	db.SetMaxOpenConns(1)

	if err := checkSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("open %s: %w: %v", path, domain.ErrStoreIO, err)
	}

	log.Printf("Opened dictionary %s", path)
	return &Handle{db: db, path: path}, nil
}

func checkSchema(db *sqlx.DB) error {
	query, args, err := sq.Select("COUNT(*)").
		From("sqlite_master").
		Where(sq.Eq{"type": "table", "name": tableName}).
		ToSql()
	if err != nil {
		return err
	}
	var n int
	if err := db.Get(&n, query, args...); err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("missing table %q", tableName)
	}
	return nil
}

// Handle is an open dictionary database
type Handle struct {
	db   *sqlx.DB
	path string
}

func (h *Handle) ListWords() ([]string, error) {
	query, args, err := sq.Select("COALESCE(word, '')").
		From(tableName).
		OrderBy("ROWID").
		ToSql()
	if err != nil {
		return nil, err
	}
	var words []string
	if err := h.db.Select(&words, query, args...); err != nil {
		return nil, fmt.Errorf("list words in %s: %w: %v", h.path, domain.ErrStoreIO, err)
	}
	return words, nil
}

func (h *Handle) LookupPrefix(query string) (domain.WordEntry, bool, error) {
	builder := sq.Select(recordColumns...).
		From(tableName).
		Where("substr(word, 1, length(?)) = ?", query, query).
		OrderBy("ROWID").
		Limit(1)
	return h.first(builder)
}

func (h *Handle) Define(position int) (domain.WordEntry, bool, error) {
	if position < 0 {
		return domain.NotFoundEntry(), false, nil
	}
	builder := sq.Select(recordColumns...).
		From(tableName).
		OrderBy("ROWID").
		Limit(1).
		Offset(uint64(position))
	return h.first(builder)
}

func (h *Handle) first(builder sq.SelectBuilder) (domain.WordEntry, bool, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return domain.WordEntry{}, false, err
	}

	var rec record
	if err := h.db.Get(&rec, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFoundEntry(), false, nil
		}
		return domain.WordEntry{}, false, fmt.Errorf("query %s: %w: %v", h.path, domain.ErrStoreIO, err)
	}

	position, err := h.position(rec.ID)
	if err != nil {
		return domain.WordEntry{}, false, err
	}
	return domain.WordEntry{
		Position:   position,
		Word:       rec.Word,
		Definition: domain.NormalizeDefinition(rec.Definition),
	}, true, nil
}

// position maps a ROWID to its index in ListWords order, tolerating gaps
func (h *Handle) position(rowID int64) (int, error) {
	query, args, err := sq.Select("COUNT(*)").
		From(tableName).
		Where(sq.Lt{"ROWID": rowID}).
		ToSql()
	if err != nil {
		return 0, err
	}
	var n int
	if err := h.db.Get(&n, query, args...); err != nil {
		return 0, fmt.Errorf("position in %s: %w: %v", h.path, domain.ErrStoreIO, err)
	}
	return n, nil
}

func (h *Handle) Close() error {
	log.Printf("Closing dictionary %s", h.path)
	return h.db.Close()
}
