package store

import (
	"fmt"
	"strings"
	"sync"

	"dicbrowse/internal/domain"
)

// MemoryOpener is an in-memory implementation of Opener
type MemoryOpener struct {
	mu      sync.RWMutex
	dicts   map[string][]domain.WordEntry
	failing map[string]error
	opened  int
	closed  int
}

// NewMemoryOpener creates an empty memory-backed opener
func NewMemoryOpener() *MemoryOpener {
	return &MemoryOpener{
		dicts:   make(map[string][]domain.WordEntry),
		failing: make(map[string]error),
	}
}

// AddDictionary registers a dictionary. Pairs are word, definition, word, definition...
func (o *MemoryOpener) AddDictionary(name string, pairs ...string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	entries := make([]domain.WordEntry, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		entries = append(entries, domain.WordEntry{
			Position:   len(entries),
			Word:       pairs[i],
			Definition: pairs[i+1],
		})
	}
	o.dicts[name] = entries
}

// FailOpen makes every subsequent Open of name return err
func (o *MemoryOpener) FailOpen(name string, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.failing[name] = err
}

// Live returns the number of handles opened and not yet closed
func (o *MemoryOpener) Live() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.opened - o.closed
}

func (o *MemoryOpener) Open(name string) (Handle, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err, ok := o.failing[name]; ok {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	entries, ok := o.dicts[name]
	if !ok {
		return nil, fmt.Errorf("open %s: %w", name, domain.ErrStoreNotFound)
	}
	o.opened++
	return &memoryHandle{owner: o, entries: entries}, nil
}

type memoryHandle struct {
	owner   *MemoryOpener
	entries []domain.WordEntry
	closed  bool
}

func (h *memoryHandle) ListWords() ([]string, error) {
	if h.closed {
		return nil, fmt.Errorf("list words: %w", domain.ErrStoreIO)
	}
	words := make([]string, len(h.entries))
	for i, e := range h.entries {
		words[i] = e.Word
	}
	return words, nil
}

func (h *memoryHandle) LookupPrefix(query string) (domain.WordEntry, bool, error) {
	if h.closed {
		return domain.WordEntry{}, false, fmt.Errorf("lookup %q: %w", query, domain.ErrStoreIO)
	}
	for _, e := range h.entries {
		if strings.HasPrefix(e.Word, query) {
			e.Definition = domain.NormalizeDefinition(e.Definition)
			return e, true, nil
		}
	}
	return domain.NotFoundEntry(), false, nil
}

func (h *memoryHandle) Define(position int) (domain.WordEntry, bool, error) {
	if h.closed {
		return domain.WordEntry{}, false, fmt.Errorf("define %d: %w", position, domain.ErrStoreIO)
	}
	if position < 0 || position >= len(h.entries) {
		return domain.NotFoundEntry(), false, nil
	}
	e := h.entries[position]
	e.Definition = domain.NormalizeDefinition(e.Definition)
	return e, true, nil
}

func (h *memoryHandle) Close() error {
	if h.closed {
		return nil
	}
	h.closed = true
	h.owner.mu.Lock()
	h.owner.closed++
	h.owner.mu.Unlock()
	return nil
}
