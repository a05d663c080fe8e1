package navigation

import (
	"fmt"
	"log"

	"dicbrowse/internal/domain"
	"dicbrowse/internal/store"
)

// Service owns the active dictionary and every piece of navigation state.
// Each operation leaves Definition consistent with Words[Selection].
type Service struct {
	state   *State
	opener  store.Opener
	catalog domain.Catalog
	handle  store.Handle
}

// NewService creates a navigation service over the catalog. Nothing is
// opened until LoadDictionary is called.
func NewService(opener store.Opener, catalog domain.Catalog) *Service {
	return &Service{
		state:   &State{},
		opener:  opener,
		catalog: catalog,
	}
}

// GetSelection returns the selected word index
func (s *Service) GetSelection() int {
	return s.state.Selection
}

// GetWords returns the word index of the active dictionary
func (s *Service) GetWords() []string {
	return s.state.Words
}

// GetSelectedWord returns the highlighted word, or "" for an empty dictionary
func (s *Service) GetSelectedWord() string {
	if len(s.state.Words) == 0 {
		return ""
	}
	return s.state.Words[s.state.Selection]
}

// GetQuery returns the query buffer
func (s *Service) GetQuery() string {
	return string(s.state.Query)
}

// GetDefinition returns the definition to display
func (s *Service) GetDefinition() string {
	return s.state.Definition
}

// GetDictionary returns the active catalog index
func (s *Service) GetDictionary() int {
	return s.state.Dictionary
}

// GetCatalog returns the dictionaries available for switching
func (s *Service) GetCatalog() domain.Catalog {
	return s.catalog
}

// LoadDictionary opens the dictionary at index and resets the selection to
// its first word. On failure the previously active dictionary is untouched.
func (s *Service) LoadDictionary(index int) error {
	name := s.catalog.Name(index)
	if name == "" {
		return fmt.Errorf("dictionary %d: %w", index, domain.ErrStoreNotFound)
	}

	handle, err := s.opener.Open(name)
	if err != nil {
		return err
	}
	words, err := handle.ListWords()
	if err != nil {
		handle.Close()
		return fmt.Errorf("load %s: %w", name, err)
	}

	if s.handle != nil {
		if err := s.handle.Close(); err != nil {
			log.Printf("Failed to close dictionary: %v", err)
		}
	}
	s.handle = handle
	s.state.Dictionary = index
	s.state.Words = words
	s.state.Selection = 0

	log.Printf("Loaded dictionary %s (%d words)", name, len(words))
	return s.refresh()
}

// SwitchDictionary loads the next or previous dictionary, wrapping around
func (s *Service) SwitchDictionary(direction Direction) error {
	target := s.catalog.Wrap(s.state.Dictionary, int(direction))
	return s.LoadDictionary(target)
}

// MoveBy moves the selection by delta, clamped to the word index
func (s *Service) MoveBy(delta int) error {
	if len(s.state.Words) == 0 {
		return nil
	}
	s.state.Selection = s.clampIndex(s.state.Selection + delta)
	return s.refresh()
}

// SelectAt selects the word rendered at row of a list showing height rows
func (s *Service) SelectAt(row, height int) error {
	if len(s.state.Words) == 0 || height <= 0 {
		return nil
	}
	target := ScrollOffset(s.state.Selection, height) + row
	s.state.Selection = s.clampIndex(target)
	return s.refresh()
}

// PushChar appends c to the query buffer
func (s *Service) PushChar(c rune) {
	s.state.Query = append(s.state.Query, c)
}

// PopChar removes the last character of the query buffer, if any
func (s *Service) PopChar() {
	if n := len(s.state.Query); n > 0 {
		s.state.Query = s.state.Query[:n-1]
	}
}

// SubmitQuery consumes the query buffer and looks it up. When nothing
// matches the selection is kept and the definition becomes the not-found text.
func (s *Service) SubmitQuery() (bool, error) {
	query := string(s.state.Query)
	s.state.Query = nil

	if s.handle == nil {
		s.state.Definition = domain.NotFoundDefinition
		return false, nil
	}

	entry, found, err := s.handle.LookupPrefix(query)
	if err != nil {
		s.state.Definition = ""
		return false, fmt.Errorf("lookup %q: %w", query, err)
	}
	if !found || entry.Position < 0 || entry.Position >= len(s.state.Words) {
		s.state.Definition = domain.NotFoundDefinition
		return false, nil
	}

	s.state.Selection = entry.Position
	s.state.Definition = entry.Definition
	return true, nil
}

// Close releases the active dictionary
func (s *Service) Close() error {
	if s.handle == nil {
		return nil
	}
	err := s.handle.Close()
	s.handle = nil
	return err
}

// refresh reloads the definition of the selected word
func (s *Service) refresh() error {
	if len(s.state.Words) == 0 {
		s.state.Definition = ""
		return nil
	}

	entry, found, err := s.handle.Define(s.state.Selection)
	if err != nil {
		s.state.Definition = ""
		return fmt.Errorf("define %q: %w", s.state.Words[s.state.Selection], err)
	}
	if !found {
		s.state.Definition = domain.NotFoundDefinition
		return nil
	}
	s.state.Definition = entry.Definition
	return nil
}

func (s *Service) clampIndex(index int) int {
	if index < 0 {
		return 0
	}
	if last := len(s.state.Words) - 1; index > last {
		return last
	}
	return index
}
