package telegram

import (
	"os"
	"path/filepath"
	"testing"
)

func TestChatStoreEmpty(t *testing.T) {
	s := NewChatStore(filepath.Join(t.TempDir(), ".telegram_chat_id"))
	if id, ok := s.ChatID(); ok || id != 0 {
		t.Fatalf("expected no chat id, got %d, %v", id, ok)
	}
}

func TestChatStoreSetAndGet(t *testing.T) {
	s := NewChatStore(filepath.Join(t.TempDir(), ".telegram_chat_id"))

	if err := s.SetChatID(123456); err != nil {
		t.Fatalf("set chat id: %v", err)
	}
	id, ok := s.ChatID()
	if !ok || id != 123456 {
		t.Fatalf("expected 123456, got %d, %v", id, ok)
	}

	// Last write wins.
	if err := s.SetChatID(-100987); err != nil {
		t.Fatalf("overwrite chat id: %v", err)
	}
	id, ok = s.ChatID()
	if !ok || id != -100987 {
		t.Fatalf("expected overwritten id, got %d, %v", id, ok)
	}
}

func TestChatStoreSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".telegram_chat_id")
	if err := NewChatStore(path).SetChatID(777); err != nil {
		t.Fatalf("set chat id: %v", err)
	}

	// A fresh store over the same file sees the value.
	id, ok := NewChatStore(path).ChatID()
	if !ok || id != 777 {
		t.Fatalf("expected persisted id, got %d, %v", id, ok)
	}
}

func TestChatStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".telegram_chat_id")
	if err := os.WriteFile(path, []byte("oops"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}
	if _, ok := NewChatStore(path).ChatID(); ok {
		t.Fatal("expected corrupt file to read as absent")
	}
}
