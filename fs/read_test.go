package fs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/markterm"
	"github.com/fwojciec/markterm/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const simpleMarkdown = "# Test Heading\n\nThis is a test paragraph.\n\n- Item 1\n- Item 2\n\n```python\nprint(\"hello\")\n```\n"

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestRead(t *testing.T) {
	t.Parallel()

	t.Run("reads a simple markdown file", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "simple.md", []byte(simpleMarkdown))
		content, err := fs.Read(path, markterm.MaxFileSize)
		require.NoError(t, err)
		assert.Contains(t, content, "Test Heading")
		assert.Contains(t, content, "test paragraph")
		assert.Contains(t, content, "Item 1")
		assert.Contains(t, content, `print("hello")`)
	})

	t.Run("reads an empty file", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "empty.md", nil)
		content, err := fs.Read(path, markterm.MaxFileSize)
		require.NoError(t, err)
		assert.Equal(t, "", content)
	})

	t.Run("missing file is not found", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "nonexistent.md")
		_, err := fs.Read(path, markterm.MaxFileSize)
		require.ErrorIs(t, err, markterm.ErrNotFound)
		assert.Contains(t, err.Error(), "file not found")
		assert.Contains(t, err.Error(), path)
	})

	t.Run("directory is rejected", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		_, err := fs.Read(dir, markterm.MaxFileSize)
		require.ErrorIs(t, err, markterm.ErrIsDirectory)
		assert.Contains(t, err.Error(), "is a directory")
	})

	t.Run("strips a UTF-8 byte order mark", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "bom.md", []byte("\xef\xbb\xbf# Header with BOM\n"))
		content, err := fs.Read(path, markterm.MaxFileSize)
		require.NoError(t, err)
		assert.Equal(t, "# Header with BOM\n", content)
	})

	t.Run("file over the limit is rejected", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "large.md", []byte(strings.Repeat("x", 1000)))
		_, err := fs.Read(path, 100)
		require.ErrorIs(t, err, markterm.ErrTooLarge)
		assert.Contains(t, err.Error(), "file too large")
		assert.Contains(t, err.Error(), "max: 100 B")
	})

	t.Run("file exactly at the limit is accepted", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "exact.md", []byte(strings.Repeat("x", 100)))
		content, err := fs.Read(path, 100)
		require.NoError(t, err)
		assert.Len(t, content, 100)
	})

	t.Run("sparse file over 100 MiB is rejected without reading it", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "huge.md")
		f, err := os.Create(path)
		require.NoError(t, err)
		require.NoError(t, f.Truncate(markterm.MaxFileSize+1))
		require.NoError(t, f.Close())

		_, err = fs.Read(path, markterm.MaxFileSize)
		require.ErrorIs(t, err, markterm.ErrTooLarge)
		assert.Contains(t, err.Error(), "max: 100 MiB")
	})

	t.Run("undecodable bytes are rejected", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "binary.md", []byte{'#', ' ', 0xC3, 0x28, '\n'})
		_, err := fs.Read(path, markterm.MaxFileSize)
		require.ErrorIs(t, err, markterm.ErrDecode)
		assert.Contains(t, err.Error(), path)
	})

	t.Run("unreadable file is permission denied", func(t *testing.T) {
		t.Parallel()
		if os.Geteuid() == 0 {
			t.Skip("permission bits are not enforced for root")
		}
		path := writeFile(t, "secret.md", []byte("# secret"))
		require.NoError(t, os.Chmod(path, 0o000))
		_, err := fs.Read(path, markterm.MaxFileSize)
		require.ErrorIs(t, err, markterm.ErrPermission)
	})
}

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("plain UTF-8 passes through", func(t *testing.T) {
		t.Parallel()
		got, err := fs.Decode([]byte("héllo wörld"))
		require.NoError(t, err)
		assert.Equal(t, "héllo wörld", got)
	})

	t.Run("UTF-16LE with byte order mark", func(t *testing.T) {
		t.Parallel()
		got, err := fs.Decode([]byte{0xFF, 0xFE, '#', 0, ' ', 0, 'H', 0, 'i', 0})
		require.NoError(t, err)
		assert.Equal(t, "# Hi", got)
	})

	t.Run("UTF-16BE with byte order mark", func(t *testing.T) {
		t.Parallel()
		got, err := fs.Decode([]byte{0xFE, 0xFF, 0, '#', 0, ' ', 0, 'H', 0, 'i'})
		require.NoError(t, err)
		assert.Equal(t, "# Hi", got)
	})

	t.Run("invalid bytes without byte order mark fail", func(t *testing.T) {
		t.Parallel()
		_, err := fs.Decode([]byte{0xFF, 0x00, 0x41})
		assert.ErrorIs(t, err, markterm.ErrDecode)
	})
}

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("relative path becomes absolute", func(t *testing.T) {
		t.Parallel()
		got, err := fs.Resolve("docs/README.md")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got))
		assert.True(t, strings.HasSuffix(got, filepath.Join("docs", "README.md")))
	})

	t.Run("tilde expands to home", func(t *testing.T) {
		t.Parallel()
		home, err := os.UserHomeDir()
		if err != nil {
			t.Skip("no home directory")
		}
		got, err := fs.Resolve(filepath.Join("~", "notes.md"))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "notes.md"), got)
	})

	t.Run("tilde inside a name is kept", func(t *testing.T) {
		t.Parallel()
		got, err := fs.Resolve("/tmp/~draft.md")
		require.NoError(t, err)
		assert.Equal(t, filepath.Clean("/tmp/~draft.md"), got)
	})
}
