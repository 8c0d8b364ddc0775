package extraction

import "fmt"

// ExtractionError represents a failure to decode a file buffer as its
// declared format. It is fatal for the file it occurred on only.
type ExtractionError struct {
	Filename string
	Message  string
	Cause    error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("Failed to parse resume content from %s: %s: %v", e.Filename, e.Message, e.Cause)
	}
	return fmt.Sprintf("Failed to parse resume content from %s: %s", e.Filename, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
