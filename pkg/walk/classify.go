package walk

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/Oscarnordstrom/rcat/pkg/config"
)

// Classification of one file's content.
type Classification int

const (
	ClassText Classification = iota
	ClassBinary
	ClassUnreadable
)

// FileContent couples a classification with the decoded text for text
// files.
type FileContent struct {
	Class Classification
	Text  string
}

// Classify reads path and decides whether it is text, binary, or
// unreadable. Binary means a NUL byte in the first 8 KiB; unreadable
// means the file could not be opened, read, or decoded as UTF-8.
func Classify(path string) FileContent {
	if isBinary(path) {
		return FileContent{Class: ClassBinary}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return FileContent{Class: ClassUnreadable}
	}
	if !utf8.Valid(data) {
		return FileContent{Class: ClassUnreadable}
	}
	return FileContent{Class: ClassText, Text: string(data)}
}

// isBinary sniffs a bounded prefix for NUL bytes. Open and read failures
// report "not binary" so the text read gets the final word.
func isBinary(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	buf := make([]byte, config.BinaryCheckBufferSize)
	n, err := f.Read(buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return false
	}
	return bytes.IndexByte(buf[:n], 0) >= 0
}

// FormatBlock renders the output block for a classified file. The second
// return is false for unreadable files, which contribute nothing.
func FormatBlock(path string, content FileContent) (string, bool) {
	switch content.Class {
	case ClassText:
		return fmt.Sprintf("--- %s ---\n%s", path, content.Text), true
	case ClassBinary:
		return fmt.Sprintf("--- %s ---\n<BINARY_FILE>", path), true
	default:
		return "", false
	}
}
