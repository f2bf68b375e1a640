// Package content persists the editable landing-page texts and image
// filenames as a flat JSON document merged over compiled-in defaults.
package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrSaveFailed is returned when the document cannot be written.
var ErrSaveFailed = errors.New("content: save failed")

// Store reads and writes the content document at a fixed path. Writes are
// serialized and use temp-file-plus-rename so a crash never leaves a
// partial document behind.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a store backed by the given file path. The file may
// not exist yet; defaults cover every key until the first save.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Defaults returns a copy of the compiled-in content document.
func Defaults() map[string]string {
	return defaults()
}

// DefaultKeys returns the set of keys an admin save may touch.
func DefaultKeys() map[string]struct{} {
	keys := make(map[string]struct{})
	for k := range defaults() {
		keys[k] = struct{}{}
	}
	return keys
}

// Load returns the persisted overrides merged over defaults. A missing or
// unreadable file yields the defaults: page rendering must never fail on
// a broken document.
func (s *Store) Load() map[string]string {
	doc := defaults()
	for k, v := range s.overrides() {
		if _, ok := doc[k]; ok {
			doc[k] = v
		}
	}
	return doc
}

// Save applies updates to the persisted overrides and writes the result.
// Keys outside the default key set are silently dropped.
func (s *Store) Save(updates map[string]string) error {
	allowed := DefaultKeys()

	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.overrides()
	for k, v := range updates {
		if _, ok := allowed[k]; !ok {
			continue
		}
		doc[k] = v
	}
	if err := s.writeAtomic(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}
	return nil
}

// overrides reads the raw persisted document; corrupt or missing files
// are treated as empty.
func (s *Store) overrides() map[string]string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return map[string]string{}
	}
	doc := map[string]string{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return map[string]string{}
	}
	return doc
}

func (s *Store) writeAtomic(doc map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".content-*.json")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
