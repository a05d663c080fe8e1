package sqlite

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"dicbrowse/internal/domain"
)

const schema = `CREATE TABLE IF NOT EXISTS dictionary (
	word TEXT NOT NULL,
	definition TEXT NOT NULL
)`

// Build writes entries, in order, into a dictionary database at path.
// The file is created if needed; rows are appended to an existing table.
func Build(path string, entries []domain.WordEntry) error {
	db, err := sqlx.Open(driverName, path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	for _, e := range entries {
		query, args, err := sq.Insert(tableName).
			Columns("word", "definition").
			Values(e.Word, e.Definition).
			ToSql()
		if err != nil {
			tx.Rollback()
			return err
		}
		if _, err := tx.Exec(query, args...); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert %q: %w", e.Word, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// ParseTSV reads one "word<TAB>definition" record per line. Blank lines and
// lines starting with # are skipped; a literal \n in a definition becomes a
// newline.
func ParseTSV(r io.Reader) ([]domain.WordEntry, error) {
	var entries []domain.WordEntry
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r")
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		word, def, ok := strings.Cut(text, "\t")
		if !ok || word == "" {
			return nil, fmt.Errorf("line %d: expected word<TAB>definition", line)
		}
		entries = append(entries, domain.WordEntry{
			Position:   len(entries),
			Word:       word,
			Definition: strings.ReplaceAll(def, `\n`, "\n"),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return entries, nil
}
