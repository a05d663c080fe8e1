package domain

import (
	"path/filepath"
	"strings"
)

// NotFoundDefinition is shown when a query matches no word
const NotFoundDefinition = "Not found!"

// WordEntry is one dictionary record as returned by a lookup
type WordEntry struct {
	Position   int // zero-based position in the dictionary's canonical order
	Word       string
	Definition string
}

// NotFoundEntry returns the result of a lookup that matched nothing.
// Its Position is left at zero and must not be used as a selection.
func NotFoundEntry() WordEntry {
	return WordEntry{Definition: NotFoundDefinition}
}

// NormalizeDefinition converts embedded carriage returns to newlines
func NormalizeDefinition(def string) string {
	def = strings.ReplaceAll(def, "\r\n", "\n")
	return strings.ReplaceAll(def, "\r", "\n")
}

// Catalog is the ordered list of dictionaries discovered at startup
type Catalog struct {
	Dir       string
	Extension string
	Names     []string
}

// Len returns the number of available dictionaries
func (c Catalog) Len() int {
	return len(c.Names)
}

// Name returns the dictionary name at index
func (c Catalog) Name(index int) string {
	if index < 0 || index >= len(c.Names) {
		return ""
	}
	return c.Names[index]
}

// Path returns the on-disk location of the dictionary at index
func (c Catalog) Path(index int) string {
	return filepath.Join(c.Dir, c.Name(index)+c.Extension)
}

// Wrap returns index advanced by step, wrapping in both directions
func (c Catalog) Wrap(index, step int) int {
	n := len(c.Names)
	if n == 0 {
		return 0
	}
	return ((index+step)%n + n) % n
}
