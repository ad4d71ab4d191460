// Package upload stores multipart files on disk and hands back opaque
// reference strings. Callers never see paths outside the configured root.
package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const maxFileSize = 5 << 20 // 5MB, same cap for every category

type Store struct {
	root string
}

// New ensures the per-category folders exist under root.
func New(root string) (*Store, error) {
	for _, sub := range []string{"attendance", "logos"} {
		if err := os.MkdirAll(filepath.Join(root, sub), 0o755); err != nil {
			return nil, fmt.Errorf("create upload dir %s: %w", sub, err)
		}
	}
	return &Store{root: root}, nil
}

// Save writes one uploaded file under the given category and returns its
// reference string (the stored filename).
func (s *Store) Save(category string, fh *multipart.FileHeader) (string, error) {
	if fh.Size > maxFileSize {
		return "", fmt.Errorf("file %s exceeds size limit", fh.Filename)
	}
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := uuid.NewString() + filepath.Ext(fh.Filename)
	dst, err := os.Create(filepath.Join(s.root, category, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return name, nil
}

// SaveAll stores every file and returns the references in input order.
func (s *Store) SaveAll(category string, fhs []*multipart.FileHeader) ([]string, error) {
	refs := make([]string, 0, len(fhs))
	for _, fh := range fhs {
		ref, err := s.Save(category, fh)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}
