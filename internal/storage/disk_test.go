package storage

import (
	"bytes"
	"context"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var pngBytes = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

// fileHeader builds a real multipart.FileHeader from in-memory content.
func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("files", name)
	assert.NoError(t, err)
	_, err = fw.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	assert.NoError(t, err)
	return form.File["files"][0]
}

func TestDiskStore_SaveAndRemove(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	assert.NoError(t, err)

	brandID := uuid.New()
	ctx := context.Background()

	saved, err := store.Save(ctx, brandID, fileHeader(t, "logo.png", pngBytes))
	assert.NoError(t, err)
	assert.Equal(t, "image/png", saved.MimeType)
	assert.Equal(t, int64(len(pngBytes)), saved.Size)
	assert.Contains(t, saved.RelPath, "brands/"+brandID.String()+"/")

	onDisk := filepath.Join(store.Root(), filepath.FromSlash(saved.RelPath))
	data, err := os.ReadFile(onDisk)
	assert.NoError(t, err)
	assert.Equal(t, pngBytes, data)

	assert.NoError(t, store.Remove(ctx, saved.RelPath))
	_, err = os.Stat(onDisk)
	assert.True(t, os.IsNotExist(err))

	// Removing again is idempotent.
	assert.NoError(t, store.Remove(ctx, saved.RelPath))
}

func TestDiskStore_RejectsDisallowedExtension(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	assert.NoError(t, err)

	_, err = store.Save(context.Background(), uuid.New(), fileHeader(t, "setup.exe", []byte("MZ\x90\x00")))
	assert.ErrorIs(t, err, ErrInvalidFileType)
}

func TestDiskStore_RejectsMismatchedContent(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	assert.NoError(t, err)

	// Executable content disguised with an allowed extension.
	_, err = store.Save(context.Background(), uuid.New(), fileHeader(t, "photo.png", []byte("MZ\x90\x00\x03\x00\x00\x00")))
	assert.ErrorIs(t, err, ErrInvalidFileType)
}

func TestDiskStore_RejectsOversizedFile(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	assert.NoError(t, err)

	fh := fileHeader(t, "big.png", pngBytes)
	fh.Size = MaxFileSize + 1

	_, err = store.Save(context.Background(), uuid.New(), fh)
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestDiskStore_RemoveRejectsTraversal(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	assert.NoError(t, err)

	assert.Error(t, store.Remove(context.Background(), "../outside.txt"))
	assert.Error(t, store.Remove(context.Background(), "/etc/passwd"))
}

func TestAllowedExtension(t *testing.T) {
	assert.True(t, AllowedExtension("deck.PPTX"))
	assert.True(t, AllowedExtension("clip.mov"))
	assert.False(t, AllowedExtension("script.sh"))
	assert.False(t, AllowedExtension("noext"))
}
