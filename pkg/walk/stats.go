package walk

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Stats is a snapshot of the counters collected during one walk.
type Stats struct {
	FilesProcessed        int
	DirectoriesProcessed  int
	TextFiles             int
	BinaryFiles           int
	UnreadableFiles       int
	UnreadableDirectories int
	SkippedFiles          int
	SkippedDirectories    int
	GitignoredFiles       int
	GitignoredDirectories int
	LargeFilesSkipped     int
	IgnoreFiles           []string
	Extensions            map[string]int
	TotalBytes            int
	Elapsed               time.Duration
}

// Collector accumulates traversal counters behind one lock. Every worker
// holds the same handle; there is no package-level state. Lifecycle is a
// single walk: created at the start, mutated throughout, snapshotted at
// the end.
type Collector struct {
	mu    sync.Mutex
	stats Stats
	start time.Time
}

// NewCollector creates a collector whose elapsed clock starts now.
func NewCollector() *Collector {
	return &Collector{
		stats: Stats{Extensions: make(map[string]int)},
		start: time.Now(),
	}
}

// RecordTextFile counts a processed text file, its emitted size, and its
// extension.
func (c *Collector) RecordTextFile(path string, size int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats.FilesProcessed++
	c.stats.TextFiles++
	c.stats.TotalBytes += size
	c.recordExtension(path)
}

// RecordBinaryFile counts a binary file and its extension.
func (c *Collector) RecordBinaryFile(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats.FilesProcessed++
	c.stats.BinaryFiles++
	c.recordExtension(path)
}

func (c *Collector) RecordUnreadableFile() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats.FilesProcessed++
	c.stats.UnreadableFiles++
}

func (c *Collector) RecordDirectory() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats.DirectoriesProcessed++
}

func (c *Collector) RecordUnreadableDirectory() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats.UnreadableDirectories++
}

func (c *Collector) RecordSkippedFile() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats.SkippedFiles++
}

func (c *Collector) RecordSkippedDirectory() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats.SkippedDirectories++
}

func (c *Collector) RecordGitignoredFile() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats.GitignoredFiles++
}

func (c *Collector) RecordGitignoredDirectory() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats.GitignoredDirectories++
}

func (c *Collector) RecordLargeFileSkipped() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats.LargeFilesSkipped++
}

// SetIgnoreFiles replaces the list of active ignore files.
func (c *Collector) SetIgnoreFiles(files []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats.IgnoreFiles = append([]string(nil), files...)
}

// recordExtension tallies the lowercase extension, without the leading
// dot. Callers hold the lock.
func (c *Collector) recordExtension(path string) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext != "" {
		c.stats.Extensions[ext]++
	}
}

// Snapshot returns a copy of the counters with the elapsed time filled
// in. The copy is safe to read after the walk completes.
func (c *Collector) Snapshot() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := c.stats
	out.Elapsed = time.Since(c.start)
	out.IgnoreFiles = append([]string(nil), c.stats.IgnoreFiles...)
	out.Extensions = make(map[string]int, len(c.stats.Extensions))
	for ext, n := range c.stats.Extensions {
		out.Extensions[ext] = n
	}
	return out
}

// Summary renders the statistics as a multi-line human-readable report.
func (s Stats) Summary() string {
	var lines []string

	lines = append(lines, fmt.Sprintf("Processed %d files and %d directories in %.2fs",
		s.FilesProcessed, s.DirectoriesProcessed, s.Elapsed.Seconds()))

	if len(s.IgnoreFiles) > 0 {
		lines = append(lines, fmt.Sprintf("Using .gitignore: %s", strings.Join(s.IgnoreFiles, ", ")))
	}

	if s.FilesProcessed > 0 {
		lines = append(lines, fmt.Sprintf("Files: %d text, %d binary, %d unreadable",
			s.TextFiles, s.BinaryFiles, s.UnreadableFiles))
	}

	totalSkippedFiles := s.SkippedFiles + s.BinaryFiles + s.GitignoredFiles + s.LargeFilesSkipped
	totalSkippedDirs := s.SkippedDirectories + s.GitignoredDirectories
	if totalSkippedFiles > 0 || totalSkippedDirs > 0 {
		var reasons []string
		if s.SkippedFiles+s.BinaryFiles > 0 {
			reasons = append(reasons, fmt.Sprintf("%d hidden/binary", s.SkippedFiles+s.BinaryFiles))
		}
		if s.GitignoredFiles+s.GitignoredDirectories > 0 {
			reasons = append(reasons, fmt.Sprintf("%d gitignored", s.GitignoredFiles+s.GitignoredDirectories))
		}
		if s.LargeFilesSkipped > 0 {
			reasons = append(reasons, fmt.Sprintf("%d too large", s.LargeFilesSkipped))
		}
		lines = append(lines, fmt.Sprintf("Skipped: %d files, %d directories (%s)",
			totalSkippedFiles, totalSkippedDirs, strings.Join(reasons, ", ")))
	}

	if s.UnreadableDirectories > 0 {
		lines = append(lines, fmt.Sprintf("Unreadable directories: %d", s.UnreadableDirectories))
	}

	if len(s.Extensions) > 0 {
		lines = append(lines, fmt.Sprintf("Top extensions: %s", strings.Join(s.topExtensions(10), ", ")))
	}

	if secs := s.Elapsed.Seconds(); secs > 0 {
		filesPerSec := float64(s.FilesProcessed) / secs
		mbPerSec := float64(s.TotalBytes) / 1024 / 1024 / secs
		lines = append(lines, fmt.Sprintf("Speed: %.0f files/sec, %.2f MB/sec", filesPerSec, mbPerSec))
	}

	return strings.Join(lines, "\n")
}

// topExtensions returns the n most frequent extensions, most frequent
// first, ties broken by name for stable output.
func (s Stats) topExtensions(n int) []string {
	type extCount struct {
		ext   string
		count int
	}
	counts := make([]extCount, 0, len(s.Extensions))
	for ext, count := range s.Extensions {
		counts = append(counts, extCount{ext, count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].ext < counts[j].ext
	})

	if len(counts) > n {
		counts = counts[:n]
	}
	out := make([]string, len(counts))
	for i, ec := range counts {
		out[i] = fmt.Sprintf(".%s (%d)", ec.ext, ec.count)
	}
	return out
}
