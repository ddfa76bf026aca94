package core

import (
	"context"
	"io/fs"
	"path"
	"sync"
	"time"
)

// MockFileSystem is an in-memory FileSystem for tests.
// ReadErr and WriteErr, when set, are returned by every read or write.
type MockFileSystem struct {
	mu    sync.RWMutex
	files map[string][]byte
	modes map[string]FileMode

	ReadErr  error
	WriteErr error

	// Writes counts successful WriteFile calls.
	Writes int
}

// NewMockFileSystem returns an empty MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files: make(map[string][]byte),
		modes: make(map[string]FileMode),
	}
}

// SetFile stores data at path, replacing any previous content.
func (m *MockFileSystem) SetFile(p string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[p] = append([]byte(nil), data...)
	m.modes[p] = 0o644
}

// GetFile returns the stored content for path.
func (m *MockFileSystem) GetFile(p string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[p]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), data...), true
}

func (m *MockFileSystem) ReadFile(ctx context.Context, p string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}

	data, ok := m.GetFile(p)
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: p, Err: fs.ErrNotExist}
	}
	return data, nil
}

func (m *MockFileSystem) WriteFile(ctx context.Context, p string, data []byte, perm FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.WriteErr != nil {
		return m.WriteErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.files[p]; !exists {
		m.modes[p] = perm
	}
	m.files[p] = append([]byte(nil), data...)
	m.Writes++
	return nil
}

func (m *MockFileSystem) Stat(ctx context.Context, p string) (fs.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[p]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: p, Err: fs.ErrNotExist}
	}
	return mockFileInfo{name: path.Base(p), size: int64(len(data)), mode: m.modes[p]}, nil
}

type mockFileInfo struct {
	name string
	size int64
	mode FileMode
}

func (i mockFileInfo) Name() string       { return i.name }
func (i mockFileInfo) Size() int64        { return i.size }
func (i mockFileInfo) Mode() fs.FileMode  { return i.mode }
func (i mockFileInfo) ModTime() time.Time { return time.Time{} }
func (i mockFileInfo) IsDir() bool        { return false }
func (i mockFileInfo) Sys() any           { return nil }
