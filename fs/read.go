package fs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/fwojciec/markterm"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	utf8BOM    = []byte{0xEF, 0xBB, 0xBF}
	utf16LEBOM = []byte{0xFF, 0xFE}
	utf16BEBOM = []byte{0xFE, 0xFF}
)

// Read returns the decoded text of the file at path. Files larger than
// maxSize bytes are rejected with markterm.ErrTooLarge; the limit is checked
// against the stat size and again while reading.
//
// Failures wrap markterm.ErrNotFound, markterm.ErrIsDirectory,
// markterm.ErrPermission, markterm.ErrTooLarge or markterm.ErrDecode.
func Read(path string, maxSize int64) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", statError(path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s", markterm.ErrIsDirectory, path)
	}
	if info.Size() > maxSize {
		return "", tooLarge(info.Size(), maxSize)
	}

	data, err := readBounded(path, maxSize)
	if err != nil {
		return "", err
	}

	text, err := Decode(data)
	if err != nil {
		return "", fmt.Errorf("%w: %s", err, path)
	}
	return text, nil
}

func readBounded(path string, maxSize int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, statError(path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if int64(len(data)) > maxSize {
		return nil, tooLarge(int64(len(data)), maxSize)
	}
	return data, nil
}

// Decode converts raw file bytes to text. Valid UTF-8 is returned with any
// leading byte order mark removed. Input starting with a UTF-16 byte order
// mark is decoded as UTF-16. Anything else fails with markterm.ErrDecode.
func Decode(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(bytes.TrimPrefix(data, utf8BOM)), nil
	}
	if !bytes.HasPrefix(data, utf16LEBOM) && !bytes.HasPrefix(data, utf16BEBOM) {
		return "", markterm.ErrDecode
	}
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return "", fmt.Errorf("%w (%v)", markterm.ErrDecode, err)
	}
	return string(out), nil
}

func statError(path string, err error) error {
	switch {
	case errors.Is(err, iofs.ErrNotExist):
		return fmt.Errorf("%w: %s", markterm.ErrNotFound, path)
	case errors.Is(err, iofs.ErrPermission):
		return fmt.Errorf("%w: %s", markterm.ErrPermission, path)
	default:
		return fmt.Errorf("access %s: %w", path, err)
	}
}

func tooLarge(size, maxSize int64) error {
	return fmt.Errorf("%w: %s (max: %s)", markterm.ErrTooLarge,
		humanize.IBytes(uint64(size)), humanize.IBytes(uint64(maxSize)))
}
