package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const mib = 1024 * 1024

func TestValidateUpload_AcceptsTextUnderLimit(t *testing.T) {
	assert.NoError(t, ValidateUpload(Upload{Name: "rfp.txt", MIMEType: MIMEText, Size: 5 * mib}))
}

func TestValidateUpload_RejectsImage(t *testing.T) {
	err := ValidateUpload(Upload{Name: "scan.png", MIMEType: "image/png", Size: 1})
	assert.ErrorIs(t, err, ErrInvalidFileType)
	assert.Equal(t, "Invalid file type. Please upload a PDF, DOCX, or TXT file.", err.Error())
}

func TestValidateUpload_RejectsOversizedPDF(t *testing.T) {
	err := ValidateUpload(Upload{Name: "rfp.pdf", MIMEType: MIMEPDF, Size: 11 * mib})
	assert.ErrorIs(t, err, ErrFileTooLarge)
	assert.Equal(t, "File is too large. Maximum size is 10MB.", err.Error())
}

func TestValidateUpload_LimitIsInclusive(t *testing.T) {
	assert.NoError(t, ValidateUpload(Upload{MIMEType: MIMEDOCX, Size: MaxUploadBytes}))
	assert.ErrorIs(t, ValidateUpload(Upload{MIMEType: MIMEDOCX, Size: MaxUploadBytes + 1}), ErrFileTooLarge)
}

func TestMIMETypeForFile(t *testing.T) {
	assert.Equal(t, MIMEPDF, MIMETypeForFile("RFP.PDF"))
	assert.Equal(t, MIMEDOCX, MIMETypeForFile("brief.docx"))
	assert.Equal(t, MIMEText, MIMETypeForFile("notes.txt"))
	assert.Equal(t, MIMEDoc, MIMETypeForFile("legacy.doc"))
	assert.Equal(t, "", MIMETypeForFile("archive.zip"))
}

func TestValidateUpload_LegacyDocRejected(t *testing.T) {
	err := ValidateUpload(Upload{Name: "legacy.doc", MIMEType: MIMETypeForFile("legacy.doc"), Size: 10})
	assert.ErrorIs(t, err, ErrInvalidFileType)
}

func TestNewProjectForm_Validate(t *testing.T) {
	file := &Upload{Name: "rfp.pdf", MIMEType: MIMEPDF, Size: mib}

	assert.ErrorIs(t, NewProjectForm{Client: "c", File: file}.Validate(), ErrMissingFields)
	assert.ErrorIs(t, NewProjectForm{Title: "t", File: file}.Validate(), ErrMissingFields)
	assert.ErrorIs(t, NewProjectForm{Title: "t", Client: "c"}.Validate(), ErrMissingFields)
	assert.NoError(t, NewProjectForm{Title: "t", Client: "c", File: file}.Validate())

	big := &Upload{Name: "rfp.pdf", MIMEType: MIMEPDF, Size: 11 * mib}
	assert.ErrorIs(t, NewProjectForm{Title: "t", Client: "c", File: big}.Validate(), ErrFileTooLarge)
}
