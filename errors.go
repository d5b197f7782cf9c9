package markterm

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates options failed validation.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates the input path does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrIsDirectory indicates the input path names a directory.
	ErrIsDirectory = errors.New("path is a directory, not a file")

	// ErrPermission indicates the input file cannot be read.
	ErrPermission = errors.New("permission denied")

	// ErrTooLarge indicates the input file exceeds MaxFileSize.
	ErrTooLarge = errors.New("file too large")

	// ErrDecode indicates the input bytes are not decodable text.
	ErrDecode = errors.New("file is not valid UTF-8 or UTF-16 text")
)
