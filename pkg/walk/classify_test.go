package walk

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hello.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello world\n"), 0o644))

	content := Classify(path)
	assert.Equal(t, ClassText, content.Class)
	assert.Equal(t, "hello world\n", content.Text)
}

func TestClassifyEmptyFileIsText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	assert.Equal(t, ClassText, Classify(path).Class)
}

func TestClassifyBinary(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blob.dat")
	require.NoError(t, os.WriteFile(path, []byte{0x01, 0x00, 0x02}, 0o644))

	assert.Equal(t, ClassBinary, Classify(path).Class)
}

// A NUL byte beyond the sniffed prefix does not mark the file binary;
// only the first 8 KiB are inspected.
func TestClassifyNulBeyondPrefix(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tail-nul.dat")
	data := append(bytes.Repeat([]byte("a"), 8192), 0x00)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	// NUL is valid UTF-8, so the full read still decodes as text.
	assert.Equal(t, ClassText, Classify(path).Class)
}

func TestClassifyInvalidUTF8IsUnreadable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "latin1.txt")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, 0x61}, 0o644))

	assert.Equal(t, ClassUnreadable, Classify(path).Class)
}

func TestClassifyMissingFileIsUnreadable(t *testing.T) {
	assert.Equal(t, ClassUnreadable, Classify(filepath.Join(t.TempDir(), "nope")).Class)
}

func TestFormatBlock(t *testing.T) {
	block, ok := FormatBlock("a/b.txt", FileContent{Class: ClassText, Text: "body\n"})
	assert.True(t, ok)
	assert.Equal(t, "--- a/b.txt ---\nbody\n", block)

	block, ok = FormatBlock("a/b.dat", FileContent{Class: ClassBinary})
	assert.True(t, ok)
	assert.Equal(t, "--- a/b.dat ---\n<BINARY_FILE>", block)

	_, ok = FormatBlock("a/b", FileContent{Class: ClassUnreadable})
	assert.False(t, ok)
}
