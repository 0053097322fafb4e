package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/tender/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Tender.TXT")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	u, err := InspectFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Tender.TXT", u.Name)
	assert.Equal(t, domain.MIMEText, u.MIMEType)
	assert.Equal(t, int64(5), u.Size)
	assert.Equal(t, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", u.SHA256)
	assert.NoError(t, domain.ValidateUpload(*u))
}

func TestInspectFile_UnknownExtensionFailsValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.md")
	require.NoError(t, os.WriteFile(path, []byte("# notes"), 0o644))

	u, err := InspectFile(path)
	require.NoError(t, err)
	assert.Empty(t, u.MIMEType)
	assert.ErrorIs(t, domain.ValidateUpload(*u), domain.ErrInvalidFileType)
}

func TestInspectFile_Errors(t *testing.T) {
	_, err := InspectFile(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = InspectFile(t.TempDir())
	assert.Error(t, err)
}
