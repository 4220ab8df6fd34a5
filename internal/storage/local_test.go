package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/johanforsgren/tokendash/internal/domain"
)

func TestNewFileStore_RequiresDir(t *testing.T) {
	if _, err := NewFileStore(""); err == nil {
		t.Fatal("expected error for empty directory")
	}
}

func TestNewFileStore_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "tokendash")

	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("expected session directory to exist: %v", err)
	}
	if info.Mode().Perm() != 0700 {
		t.Errorf("expected directory mode 0700, got %v", info.Mode().Perm())
	}

	expectedPath := filepath.Join(dir, "session.json")
	if store.Path() != expectedPath {
		t.Errorf("Expected session path %s, got %s", expectedPath, store.Path())
	}
}

func TestFileStore_SetAndReload(t *testing.T) {
	dir := t.TempDir()

	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	if err := store.Set(domain.CredentialKey, "abc123"); err != nil {
		t.Fatalf("Failed to set credential: %v", err)
	}

	info, err := os.Stat(store.Path())
	if err != nil {
		t.Fatalf("expected session file: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("expected file mode 0600, got %v", info.Mode().Perm())
	}

	reopened, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}

	got, ok := reopened.Get(domain.CredentialKey)
	if !ok {
		t.Fatal("expected credential to survive reopening")
	}
	if got != "abc123" {
		t.Errorf("Expected credential abc123, got %s", got)
	}
}

func TestFileStore_DeleteRemovesFile(t *testing.T) {
	dir := t.TempDir()

	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	if err := store.Set(domain.CredentialKey, "abc123"); err != nil {
		t.Fatalf("Failed to set credential: %v", err)
	}
	if err := store.Delete(domain.CredentialKey); err != nil {
		t.Fatalf("Failed to delete credential: %v", err)
	}

	if _, ok := store.Get(domain.CredentialKey); ok {
		t.Error("expected credential to be gone")
	}
	if _, err := os.Stat(store.Path()); !os.IsNotExist(err) {
		t.Errorf("expected session file to be removed, stat err = %v", err)
	}

	if err := store.Delete(domain.CredentialKey); err != nil {
		t.Errorf("deleting a missing key should be a no-op, got %v", err)
	}
}

func TestFileStore_CorruptFileStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "session.json"), []byte("{not json"), 0600); err != nil {
		t.Fatalf("failed to seed corrupt file: %v", err)
	}

	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("corrupt session file should not be fatal: %v", err)
	}

	if _, ok := store.Get(domain.CredentialKey); ok {
		t.Error("expected empty store after corrupt file")
	}

	if err := store.Set(domain.CredentialKey, "fresh"); err != nil {
		t.Fatalf("Failed to overwrite corrupt file: %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	if _, ok := store.Get(domain.CredentialKey); ok {
		t.Fatal("expected empty store")
	}

	if err := store.Set(domain.CredentialKey, "abc123"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if got, ok := store.Get(domain.CredentialKey); !ok || got != "abc123" {
		t.Errorf("expected abc123, got %q (present=%v)", got, ok)
	}

	if err := store.Delete(domain.CredentialKey); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok := store.Get(domain.CredentialKey); ok {
		t.Error("expected credential to be deleted")
	}
}
