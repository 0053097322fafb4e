package domain

import (
	"errors"
	"path/filepath"
	"strings"
	"time"
)

// MaxUploadBytes is the largest accepted RFP document.
const MaxUploadBytes = 10 * 1024 * 1024

const (
	MIMEPDF  = "application/pdf"
	MIMEDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MIMEText = "text/plain"
	MIMEDoc  = "application/msword"
)

// Validation errors surfaced inline on the new-project screen.
var (
	ErrInvalidFileType = errors.New("Invalid file type. Please upload a PDF, DOCX, or TXT file.")
	ErrFileTooLarge    = errors.New("File is too large. Maximum size is 10MB.")
	ErrMissingFields   = errors.New("Please fill in all fields and upload an RFP document.")
)

var allowedMIMETypes = map[string]bool{
	MIMEPDF:  true,
	MIMEDOCX: true,
	MIMEText: true,
}

var extensionMIMETypes = map[string]string{
	".pdf":  MIMEPDF,
	".docx": MIMEDOCX,
	".doc":  MIMEDoc,
	".txt":  MIMEText,
}

// Upload describes a user-selected RFP file.
type Upload struct {
	Name     string
	MIMEType string
	Size     int64
	SHA256   string
}

// Document is the stored record of a project's uploaded RFP.
type Document struct {
	ID         string
	ProjectID  string
	Name       string
	MIMEType   string
	Size       int64
	SHA256     string
	UploadedAt time.Time
}

// MIMETypeForFile maps a file name to the MIME type the upload form
// would report. Unknown extensions map to "".
func MIMETypeForFile(name string) string {
	return extensionMIMETypes[strings.ToLower(filepath.Ext(name))]
}

// ValidateUpload checks the file type against the allow-list, then the size.
func ValidateUpload(u Upload) error {
	if !allowedMIMETypes[u.MIMEType] {
		return ErrInvalidFileType
	}
	if u.Size > MaxUploadBytes {
		return ErrFileTooLarge
	}
	return nil
}

// NewProjectForm is the input of the new-project screen.
type NewProjectForm struct {
	Title  string
	Client string
	File   *Upload
}

// Validate blocks submission until every field is present and the file
// passes ValidateUpload.
func (f NewProjectForm) Validate() error {
	if f.Title == "" || f.Client == "" || f.File == nil {
		return ErrMissingFields
	}
	return ValidateUpload(*f.File)
}
