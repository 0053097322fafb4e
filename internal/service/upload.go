package service

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alexanderramin/tender/internal/domain"
)

// InspectFile describes the file at path as an upload: its base name, the
// MIME type implied by its extension, its size and its SHA-256. Files over
// the upload limit are not hashed.
func InspectFile(path string) (*domain.Upload, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	u := &domain.Upload{
		Name:     filepath.Base(path),
		MIMEType: domain.MIMETypeForFile(path),
		Size:     info.Size(),
	}
	if u.Size > domain.MaxUploadBytes {
		return u, nil
	}
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return nil, fmt.Errorf("hashing %s: %w", path, err)
	}
	u.SHA256 = hex.EncodeToString(h.Sum(nil))
	return u, nil
}
