// Package upload validates resume file uploads before any parsing work occurs.
package upload

import (
	"github.com/jonathan/resume-importer/internal/types"
)

// Supported upload mimetypes.
const (
	MimetypePDF  = "application/pdf"
	MimetypeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimetypeDoc  = "application/msword"
)

var supportedTypes = []string{MimetypePDF, MimetypeDocx, MimetypeDoc}

// Validator checks upload constraints. Validation is metadata-only: the file
// buffer is never read, so rejection cost does not depend on file size.
type Validator struct{}

// NewValidator creates a file upload validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks the upload's mimetype and size. It returns
// *UnsupportedFileTypeError or *FileTooLargeError on violation.
func (v *Validator) Validate(file types.FileUpload) error {
	if !v.IsSupportedFileType(file.Mimetype) {
		return &UnsupportedFileTypeError{Mimetype: file.Mimetype}
	}
	if file.Size > types.MaxFileSize {
		return &FileTooLargeError{Size: file.Size, Limit: types.MaxFileSize}
	}
	return nil
}

// SupportedFileTypes returns the accepted mimetypes.
func (v *Validator) SupportedFileTypes() []string {
	out := make([]string, len(supportedTypes))
	copy(out, supportedTypes)
	return out
}

// IsSupportedFileType reports whether mimetype is accepted.
func (v *Validator) IsSupportedFileType(mimetype string) bool {
	for _, t := range supportedTypes {
		if t == mimetype {
			return true
		}
	}
	return false
}
