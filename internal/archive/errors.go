package archive

import (
	"encoding/json"
	"errors"
	"fmt"
)

// FormatError reports that the archive text is not valid JSON.
type FormatError struct {
	// Offset is the byte offset of the syntax error, 0 if unknown.
	Offset int64
	Err    error
}

func newFormatError(err error) *FormatError {
	fe := &FormatError{Err: err}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		fe.Offset = syntaxErr.Offset
	}
	return fe
}

func (e *FormatError) Error() string {
	if e.Offset > 0 {
		return fmt.Sprintf("archive is not valid JSON (offset %d): %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("archive is not valid JSON: %v", e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// ReadError reports that the archive file could not be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading archive %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
