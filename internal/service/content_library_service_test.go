package service

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/maheshrc27/nexus/internal/models"
	"github.com/maheshrc27/nexus/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjectStorage struct {
	mu        sync.Mutex
	objects   map[string][]byte
	types     map[string]string
	uploadErr error
}

func newFakeObjectStorage() *fakeObjectStorage {
	return &fakeObjectStorage{objects: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeObjectStorage) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[key] = data
	f.types[key] = contentType
	return "https://cdn.example.com/" + key, nil
}

func (f *fakeObjectStorage) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, key)
	return nil
}

var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52}

func TestContentLibraryUpload(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStorage()
	u := newUser(t, store, "lib@example.com")
	objects := newFakeObjectStorage()
	s := NewContentLibraryService(store, objects)

	item, err := s.Upload(ctx, u.ID, "logo.png", pngHeader, []string{" brand ", "", "logo", "brand"})
	require.NoError(t, err)

	assert.Equal(t, "logo.png", item.FileName)
	assert.Equal(t, models.FileTypeImage, item.FileType)
	assert.Equal(t, int64(len(pngHeader)), item.FileSize)
	assert.Equal(t, models.StringList{"brand", "logo"}, item.Tags)
	assert.True(t, strings.HasPrefix(item.FileURL, "https://cdn.example.com/"))
	assert.True(t, strings.HasSuffix(item.FileURL, ".png"))

	key := filepath.Base(item.FileURL)
	assert.Equal(t, pngHeader, objects.objects[key])
	assert.Equal(t, "image/png", objects.types[key])

	items, err := s.List(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)

	require.NoError(t, s.Delete(ctx, u.ID, item.ID))
	assert.Empty(t, objects.objects)
	assert.ErrorIs(t, s.Delete(ctx, u.ID, item.ID), ErrContentNotFound)
}

func TestContentLibraryRejectsUnknownFiles(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStorage()
	u := newUser(t, store, "lib@example.com")
	s := NewContentLibraryService(store, newFakeObjectStorage())

	_, err := s.Upload(ctx, u.ID, "notes.txt", []byte("plain text notes"), nil)
	assert.ErrorIs(t, err, ErrUnsupportedFileType)

	_, err = s.Upload(ctx, u.ID, "empty.png", nil, nil)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestContentLibraryUploadFailure(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStorage()
	u := newUser(t, store, "lib@example.com")
	objects := newFakeObjectStorage()
	objects.uploadErr = errors.New("bucket unavailable")
	s := NewContentLibraryService(store, objects)

	_, err := s.Upload(ctx, u.ID, "logo.png", pngHeader, nil)
	assert.Error(t, err)

	items, err := s.List(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestContentLibraryOwnership(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStorage()
	owner := newUser(t, store, "owner@example.com")
	other := newUser(t, store, "other@example.com")
	s := NewContentLibraryService(store, newFakeObjectStorage())

	item, err := s.Upload(ctx, owner.ID, "", pngHeader, nil)
	require.NoError(t, err)
	assert.Equal(t, models.StringList{}, item.Tags)
	assert.True(t, strings.HasSuffix(item.FileName, ".png"))

	assert.ErrorIs(t, s.Delete(ctx, other.ID, item.ID), ErrContentNotFound)
}

func TestLocalStorage(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := NewLocalStorage(dir, "http://localhost:3000/uploads")
	require.NoError(t, err)

	url, err := s.Upload(ctx, "a.png", pngHeader, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000/uploads/a.png", url)
	assert.FileExists(t, filepath.Join(dir, "a.png"))

	require.NoError(t, s.Delete(ctx, "a.png"))
	assert.NoFileExists(t, filepath.Join(dir, "a.png"))
	assert.NoError(t, s.Delete(ctx, "a.png"))
}
