package core

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestOSFileSystem_WriteKeepsExistingMode(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "Info.plist")
	if err := os.WriteFile(p, []byte("old content"), 0o644); err != nil {
		t.Fatal(err)
	}

	fsys := NewOSFileSystem()
	ctx := context.Background()
	if err := fsys.WriteFile(ctx, p, []byte("new"), PermOwnerRW); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := fsys.ReadFile(ctx, p)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "new" {
		t.Errorf("content = %q, want %q", got, "new")
	}

	info, err := fsys.Stat(ctx, p)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Mode().Perm() != 0o644 {
		t.Errorf("mode = %v, want 0644", info.Mode().Perm())
	}
}

func TestOSFileSystem_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fsys := NewOSFileSystem()
	p := filepath.Join(t.TempDir(), "never")

	if _, err := fsys.ReadFile(ctx, p); !errors.Is(err, context.Canceled) {
		t.Errorf("ReadFile err = %v, want context.Canceled", err)
	}
	if err := fsys.WriteFile(ctx, p, []byte("x"), PermOwnerRW); !errors.Is(err, context.Canceled) {
		t.Errorf("WriteFile err = %v, want context.Canceled", err)
	}
	if _, err := os.Stat(p); !os.IsNotExist(err) {
		t.Errorf("file should not exist after cancelled write, stat err = %v", err)
	}
}

func TestMockFileSystem(t *testing.T) {
	ctx := context.Background()
	m := NewMockFileSystem()

	if _, err := m.ReadFile(ctx, "/missing"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}

	m.SetFile("/a", []byte("1"))
	if err := m.WriteFile(ctx, "/a", []byte("2"), PermOwnerRW); err != nil {
		t.Fatal(err)
	}
	if got, _ := m.GetFile("/a"); string(got) != "2" {
		t.Errorf("got %q, want %q", got, "2")
	}
	if m.Writes != 1 {
		t.Errorf("Writes = %d, want 1", m.Writes)
	}

	info, err := m.Stat(ctx, "/a")
	if err != nil {
		t.Fatal(err)
	}
	if info.Name() != "a" || info.Size() != 1 {
		t.Errorf("unexpected info: name=%q size=%d", info.Name(), info.Size())
	}

	m.WriteErr = errors.New("disk full")
	if err := m.WriteFile(ctx, "/a", []byte("3"), PermOwnerRW); err == nil {
		t.Error("expected write error")
	}
	if got, _ := m.GetFile("/a"); string(got) != "2" {
		t.Errorf("content changed despite write error: %q", got)
	}
}
