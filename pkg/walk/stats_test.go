package walk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectorCounters(t *testing.T) {
	c := NewCollector()

	c.RecordTextFile("a/main.go", 100)
	c.RecordTextFile("a/util.go", 50)
	c.RecordTextFile("a/README.md", 25)
	c.RecordBinaryFile("a/logo.PNG")
	c.RecordUnreadableFile()
	c.RecordDirectory()
	c.RecordDirectory()
	c.RecordSkippedFile()
	c.RecordSkippedDirectory()
	c.RecordGitignoredFile()
	c.RecordGitignoredDirectory()
	c.RecordLargeFileSkipped()
	c.RecordUnreadableDirectory()
	c.SetIgnoreFiles([]string{"/repo/.gitignore"})

	s := c.Snapshot()
	assert.Equal(t, 5, s.FilesProcessed)
	assert.Equal(t, 3, s.TextFiles)
	assert.Equal(t, 1, s.BinaryFiles)
	assert.Equal(t, 1, s.UnreadableFiles)
	assert.Equal(t, 2, s.DirectoriesProcessed)
	assert.Equal(t, 1, s.SkippedFiles)
	assert.Equal(t, 1, s.SkippedDirectories)
	assert.Equal(t, 1, s.GitignoredFiles)
	assert.Equal(t, 1, s.GitignoredDirectories)
	assert.Equal(t, 1, s.LargeFilesSkipped)
	assert.Equal(t, 1, s.UnreadableDirectories)
	assert.Equal(t, 175, s.TotalBytes)
	assert.Equal(t, []string{"/repo/.gitignore"}, s.IgnoreFiles)

	// Extensions are lowercased and counted for text and binary files.
	assert.Equal(t, map[string]int{"go": 2, "md": 1, "png": 1}, s.Extensions)
	assert.GreaterOrEqual(t, s.Elapsed.Nanoseconds(), int64(0))
}

func TestSummaryContents(t *testing.T) {
	c := NewCollector()
	c.RecordTextFile("main.go", 2048)
	c.RecordBinaryFile("logo.png")
	c.RecordDirectory()
	c.RecordGitignoredFile()
	c.SetIgnoreFiles([]string{".gitignore"})

	out := c.Snapshot().Summary()
	assert.Contains(t, out, "Processed 2 files and 1 directories")
	assert.Contains(t, out, "Using .gitignore: .gitignore")
	assert.Contains(t, out, "Files: 1 text, 1 binary, 0 unreadable")
	assert.Contains(t, out, "1 gitignored")
	assert.Contains(t, out, ".go (1)")
	assert.Contains(t, out, "files/sec")
}

func TestSummaryEmptyWalk(t *testing.T) {
	out := NewCollector().Snapshot().Summary()
	assert.Contains(t, out, "Processed 0 files and 0 directories")
	assert.NotContains(t, out, "Using .gitignore")
	assert.NotContains(t, out, "Skipped:")
}

func TestTopExtensionsOrdering(t *testing.T) {
	s := Stats{Extensions: map[string]int{
		"go": 5, "md": 2, "txt": 2, "rs": 9,
	}}
	assert.Equal(t, []string{".rs (9)", ".go (5)", ".md (2)", ".txt (2)"}, s.topExtensions(10))
	assert.Equal(t, []string{".rs (9)", ".go (5)"}, s.topExtensions(2))
}
