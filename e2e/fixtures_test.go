//go:build e2e && unix

package e2e

import (
	"fmt"
	"os"
	"path/filepath"

	"dicbrowse/internal/domain"
	"dicbrowse/internal/store/sqlite"
)

// CreateTestWorkspace creates a temporary workspace with an empty dictionary directory
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	if err := os.MkdirAll(tf.DictionaryDir(), 0755); err != nil {
		return "", err
	}
	return tmpDir, nil
}

// DictionaryDir is where dictionaries of the workspace live
func (tf *TUITestFramework) DictionaryDir() string {
	return filepath.Join(tf.workspace, "dics")
}

// CreateDictionary writes a dictionary from word, definition pairs
func (tf *TUITestFramework) CreateDictionary(name string, pairs ...string) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}
	if len(pairs)%2 != 0 {
		return "", fmt.Errorf("odd number of word/definition values")
	}

	var entries []domain.WordEntry
	for i := 0; i < len(pairs); i += 2 {
		entries = append(entries, domain.WordEntry{
			Position:   len(entries),
			Word:       pairs[i],
			Definition: pairs[i+1],
		})
	}

	path := filepath.Join(tf.DictionaryDir(), name+".db")
	if err := sqlite.Build(path, entries); err != nil {
		return "", err
	}
	return path, nil
}

// CreateCorruptDictionary writes a file with the dictionary extension that is not a database
func (tf *TUITestFramework) CreateCorruptDictionary(name string) (string, error) {
	path := filepath.Join(tf.DictionaryDir(), name+".db")
	return path, os.WriteFile(path, []byte("this is not a database"), 0644)
}
