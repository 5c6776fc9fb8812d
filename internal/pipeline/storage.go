package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// MediaStore writes intake images under a local media root, one
// directory per product.
type MediaStore struct {
	root string
}

func NewMediaStore(root string) *MediaStore {
	return &MediaStore{root: root}
}

// ProductDir returns the directory that holds a product's images.
func (s *MediaStore) ProductDir(productID uuid.UUID) string {
	return filepath.Join(s.root, "products", productID.String())
}

// Save writes an image and returns its storage path. The filename must
// already be sanitized.
func (s *MediaStore) Save(productID uuid.UUID, filename string, data []byte) (string, error) {
	dir := s.ProductDir(productID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create media dir: %w", err)
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write media file: %w", err)
	}
	return path, nil
}

// Remove deletes a stored file. A missing file is not an error.
func (s *MediaStore) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
