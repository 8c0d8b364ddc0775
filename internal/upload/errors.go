package upload

import "fmt"

// UnsupportedFileTypeError indicates the upload's mimetype is not accepted.
type UnsupportedFileTypeError struct {
	Mimetype string
}

func (e *UnsupportedFileTypeError) Error() string {
	return fmt.Sprintf("Unsupported file type: %q. Please upload PDF or Word documents", e.Mimetype)
}

// FileTooLargeError indicates the upload exceeds the size limit.
type FileTooLargeError struct {
	Size  int64
	Limit int64
}

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("File size %d exceeds maximum allowed size of %d bytes", e.Size, e.Limit)
}
