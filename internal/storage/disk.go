// Package storage persists uploaded brand assets on disk. Files live in
// per-brand directories under a configured root and are served statically.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/rollodex/brandcentral/internal/logger"
)

// MaxFileSize is the upload ceiling per file.
const MaxFileSize = 10 << 20 // 10MB

// MaxFilesPerRequest caps a single multipart upload.
const MaxFilesPerRequest = 10

var (
	// ErrInvalidFileType is returned for files outside the allow-list,
	// whether by extension or by sniffed content.
	ErrInvalidFileType = errors.New("file type not allowed")

	// ErrFileTooLarge is returned for files over MaxFileSize.
	ErrFileTooLarge = errors.New("file exceeds maximum size")
)

// allowedExtensions is the fixed upload allow-list: images, pdf, office
// documents, zip and two video containers.
var allowedExtensions = map[string]struct{}{
	".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {}, ".webp": {}, ".svg": {},
	".pdf": {},
	".doc": {}, ".docx": {},
	".xls": {}, ".xlsx": {},
	".ppt": {}, ".pptx": {},
	".zip": {},
	".mp4": {}, ".mov": {},
}

// allowedMimeTypes accepts the sniffed content type, walking mimetype's
// parent chain. application/zip covers the OOXML office formats and
// application/x-ole-storage covers the legacy ones.
var allowedMimeTypes = map[string]struct{}{
	"image/jpeg": {}, "image/png": {}, "image/gif": {}, "image/webp": {},
	"image/svg+xml": {}, "text/xml": {},
	"application/pdf": {},
	"application/msword":            {},
	"application/vnd.ms-excel":      {},
	"application/vnd.ms-powerpoint": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document":   {},
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":         {},
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": {},
	"application/x-ole-storage": {},
	"application/zip":           {},
	"video/mp4":                 {},
	"video/quicktime":           {},
}

// AllowedExtension reports whether the filename carries an allow-listed
// extension.
func AllowedExtension(filename string) bool {
	_, ok := allowedExtensions[strings.ToLower(filepath.Ext(filename))]
	return ok
}

// SavedFile describes a file persisted to disk.
type SavedFile struct {
	Filename string // generated name on disk
	RelPath  string // path relative to the store root, slash-separated
	MimeType string // sniffed content type
	Size     int64
}

// DiskStore writes uploads under a root directory.
type DiskStore struct {
	root string
}

// NewDiskStore creates the root directory if needed.
func NewDiskStore(root string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload root: %w", err)
	}
	return &DiskStore{root: root}, nil
}

// Save validates and persists one multipart file into the brand's
// directory. The stored name is a fresh uuid with the original extension,
// so uploads never collide or overwrite.
func (s *DiskStore) Save(ctx context.Context, brandID uuid.UUID, fh *multipart.FileHeader) (*SavedFile, error) {
	if fh.Size > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return nil, ErrInvalidFileType
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	mtype, err := mimetype.DetectReader(src)
	if err != nil {
		return nil, fmt.Errorf("sniff upload: %w", err)
	}
	if !mimeAllowed(mtype) {
		logger.Log.Warnw("rejected upload by content sniff",
			"original_name", fh.Filename,
			"detected", mtype.String(),
		)
		return nil, ErrInvalidFileType
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind upload: %w", err)
	}

	dir := filepath.Join(s.root, "brands", brandID.String())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create brand dir: %w", err)
	}

	filename := uuid.New().String() + ext
	dst, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	size, err := io.Copy(dst, src)
	if err != nil {
		os.Remove(dst.Name())
		return nil, fmt.Errorf("write file: %w", err)
	}

	return &SavedFile{
		Filename: filename,
		RelPath:  "brands/" + brandID.String() + "/" + filename,
		MimeType: mtype.String(),
		Size:     size,
	}, nil
}

// Remove deletes a stored file. Removing an already-absent file is not an
// error, so deletes stay idempotent.
func (s *DiskStore) Remove(ctx context.Context, relPath string) error {
	clean := filepath.Clean(filepath.FromSlash(relPath))
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return fmt.Errorf("invalid asset path %q", relPath)
	}

	err := os.Remove(filepath.Join(s.root, clean))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Root returns the store root, for wiring the static file server.
func (s *DiskStore) Root() string {
	return s.root
}

func mimeAllowed(mtype *mimetype.MIME) bool {
	for m := mtype; m != nil; m = m.Parent() {
		if _, ok := allowedMimeTypes[m.String()]; ok {
			return true
		}
	}
	return false
}
