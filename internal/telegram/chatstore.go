package telegram

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ChatStore persists the single recipient chat id learned from the
// handshake. Last write wins; reads always see the latest successful
// write. The file survives restarts so the operator does not have to
// repeat /start after every deploy.
type ChatStore struct {
	mu   sync.Mutex
	path string
}

type chatRecord struct {
	ChatID int64 `json:"chat_id"`
}

// NewChatStore creates a store backed by the given file path.
func NewChatStore(path string) *ChatStore {
	return &ChatStore{path: path}
}

// ChatID returns the stored recipient chat id. ok is false when no
// handshake has been recorded yet or the file is unreadable.
func (s *ChatStore) ChatID() (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return 0, false
	}
	var rec chatRecord
	if err := json.Unmarshal(data, &rec); err != nil || rec.ChatID == 0 {
		return 0, false
	}
	return rec.ChatID, true
}

// SetChatID overwrites the stored recipient chat id atomically.
func (s *ChatStore) SetChatID(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(chatRecord{ChatID: id})
	if err != nil {
		return fmt.Errorf("telegram: marshal chat record: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("telegram: create chat store dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".chat-*")
	if err != nil {
		return fmt.Errorf("telegram: create temp chat file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("telegram: write chat record: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("telegram: close chat record: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("telegram: replace chat record: %w", err)
	}
	return nil
}
