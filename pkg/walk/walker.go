// Package walk implements the gitignore-aware, size-bounded traversal
// engine: it walks one or more roots breadth-first, classifies files,
// concatenates qualifying text into one bounded blob, and collects
// statistics along the way.
package walk

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/Oscarnordstrom/rcat/pkg/format"
	"github.com/Oscarnordstrom/rcat/pkg/gitignore"
	"github.com/Oscarnordstrom/rcat/pkg/glob"
)

// Result of one walk. Content is the concatenated blocks joined by a
// newline; Truncated reports whether the aggregate cap cut the walk
// short (in which case Content ends with a single truncation marker).
type Result struct {
	Content   string
	Truncated bool
	Stats     Stats
}

// Collect walks the supplied roots and concatenates every qualifying
// text file into a single bounded blob. Only malformed options produce
// an error; per-item filesystem failures are counted and absorbed.
func Collect(paths []string, opts Options, logger *zap.Logger) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, fmt.Errorf("invalid walk options: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	w := &walker{
		opts:    opts,
		logger:  logger,
		stats:   NewCollector(),
		queue:   newWorkQueue(),
		visited: make(map[string]struct{}),
	}
	for _, path := range paths {
		w.addRoot(path)
	}
	w.queue.push(w.roots...)

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			w.run(logger.With(zap.Int("worker", id)))
		}(i)
	}
	wg.Wait()

	return Result{
		Content:   strings.Join(w.blocks, "\n"),
		Truncated: w.truncated,
		Stats:     w.stats.Snapshot(),
	}, nil
}

// walker holds the shared state of one walk. mu guards the output
// accumulator and the visited set; the queue and the stats collector
// carry their own locks.
type walker struct {
	opts   Options
	logger *zap.Logger
	stats  *Collector
	queue  *workQueue

	roots    []string
	managers []*gitignore.Manager

	mu        sync.Mutex
	blocks    []string
	totalSize int
	truncated bool
	visited   map[string]struct{}
}

func (w *walker) addRoot(path string) {
	w.roots = append(w.roots, path)
	w.managers = append(w.managers, gitignore.NewManager(path, w.logger))
	w.syncIgnoreStats()
}

// syncIgnoreStats publishes the ignore files every manager has
// discovered so far.
func (w *walker) syncIgnoreStats() {
	var files []string
	for _, mgr := range w.managers {
		files = append(files, mgr.ActiveIgnoreFiles()...)
	}
	if len(files) > 0 {
		w.stats.SetIgnoreFiles(files)
	}
}

// run is one worker's loop: dequeue a path, process it, enqueue any
// subdirectories it produced.
func (w *walker) run(logger *zap.Logger) {
	for {
		path, ok := w.queue.pop()
		if !ok {
			return
		}
		subdirs := w.processPath(path, logger)
		w.queue.push(subdirs...)
		w.queue.done()
	}
}

// processPath handles one dequeued path and returns the subdirectories
// to enqueue. Paths that cannot be canonicalized (broken symlinks) or
// were already visited are skipped without side effects.
func (w *walker) processPath(path string, logger *zap.Logger) []string {
	canonical, err := canonicalize(path)
	if err != nil {
		logger.Debug("skipping unresolvable path", zap.String("path", path), zap.Error(err))
		return nil
	}
	if !w.markVisited(canonical) {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil
	}

	if !w.opts.IncludeAll && w.isIgnored(path) {
		if info.IsDir() {
			w.stats.RecordGitignoredDirectory()
		} else {
			w.stats.RecordGitignoredFile()
		}
		return nil
	}

	switch {
	case info.Mode().IsRegular():
		if !w.opts.IncludeAll && isHidden(path) {
			w.stats.RecordSkippedFile()
			return nil
		}
		w.processFile(path, logger)
		return nil
	case info.IsDir():
		if !w.opts.IncludeAll && isHidden(path) {
			w.stats.RecordSkippedDirectory()
			return nil
		}
		return w.processDirectory(path, logger)
	default:
		return nil
	}
}

// processDirectory expands one directory: loads any local ignore file,
// partitions the sorted entries, emits every qualifying file, and
// returns the qualifying subdirectories. Emitting files here, before any
// subdirectory is expanded, is what makes the single-worker walk
// breadth-first.
func (w *walker) processDirectory(path string, logger *zap.Logger) []string {
	w.stats.RecordDirectory()

	for _, mgr := range w.managers {
		mgr.CheckDirectory(path)
	}
	w.syncIgnoreStats()

	// os.ReadDir returns entries sorted by name, which keeps emission
	// order independent of raw filesystem enumeration order.
	entries, err := os.ReadDir(path)
	if err != nil {
		w.stats.RecordUnreadableDirectory()
		logger.Warn("failed to read directory", zap.String("path", path), zap.Error(err))
		return nil
	}

	var files, subdirs []string
	for _, entry := range entries {
		entryPath := filepath.Join(path, entry.Name())

		info, err := os.Stat(entryPath)
		if err != nil {
			// Broken symlink or entry that vanished mid-walk.
			continue
		}
		if !w.shouldProcess(entryPath, info) {
			continue
		}

		switch {
		case info.IsDir():
			subdirs = append(subdirs, entryPath)
		case info.Mode().IsRegular():
			canonical, err := canonicalize(entryPath)
			if err != nil {
				continue
			}
			if !w.markVisited(canonical) {
				continue
			}
			files = append(files, entryPath)
		}
	}

	for _, file := range files {
		if w.isTruncated() {
			break
		}
		w.processFile(file, logger)
	}
	return subdirs
}

// shouldProcess applies the ignore rules, exclude patterns, and
// dotted-name filter to a directory entry, recording the appropriate
// skip counter.
func (w *walker) shouldProcess(path string, info os.FileInfo) bool {
	if w.opts.IncludeAll {
		return true
	}
	if w.isIgnored(path) {
		if info.IsDir() {
			w.stats.RecordGitignoredDirectory()
		} else {
			w.stats.RecordGitignoredFile()
		}
		return false
	}
	if isHidden(path) {
		if info.IsDir() {
			w.stats.RecordSkippedDirectory()
		} else {
			w.stats.RecordSkippedFile()
		}
		return false
	}
	return true
}

// processFile enforces the per-file cap, classifies the file, and emits
// its block. Binary files are emitted only with IncludeAll; unreadable
// files contribute nothing.
func (w *walker) processFile(path string, logger *zap.Logger) {
	if info, err := os.Stat(path); err == nil && info.Size() > int64(w.opts.MaxFileSize) {
		w.stats.RecordLargeFileSkipped()
		logger.Debug("skipping large file",
			zap.String("path", path), zap.Int64("size", info.Size()))
		return
	}

	content := Classify(path)
	switch content.Class {
	case ClassText:
		block, _ := FormatBlock(path, content)
		if w.appendBlock(block) {
			w.stats.RecordTextFile(path, len(block))
		}
	case ClassBinary:
		w.stats.RecordBinaryFile(path)
		if w.opts.IncludeAll {
			block, _ := FormatBlock(path, content)
			w.appendBlock(block)
		}
	case ClassUnreadable:
		w.stats.RecordUnreadableFile()
		logger.Debug("unreadable file", zap.String("path", path))
	}
}

// appendBlock reserves room for block under the aggregate cap. The check
// and the commit happen under one lock, so two workers racing near the
// cap cannot both succeed and jointly exceed it. When the cap is hit the
// truncation marker is emitted exactly once and the queue shuts down.
func (w *walker) appendBlock(block string) bool {
	size := len(block)

	w.mu.Lock()
	if w.truncated {
		w.mu.Unlock()
		return false
	}
	if w.totalSize+size > w.opts.MaxSize {
		marker := fmt.Sprintf(
			"\n--- TRUNCATED: Size limit of %s reached ---\n--- %s collected, %s would exceed limit ---",
			format.FormatAsUnit(w.opts.MaxSize),
			format.Format(w.totalSize),
			format.Format(w.totalSize+size),
		)
		w.blocks = append(w.blocks, marker)
		w.truncated = true
		w.mu.Unlock()
		w.queue.shutdown()
		return false
	}
	w.totalSize += size
	w.blocks = append(w.blocks, block)
	w.mu.Unlock()
	return true
}

// markVisited records the canonical path, returning false if it was
// already seen. This is what prevents duplication from symlinks and
// overlapping roots.
func (w *walker) markVisited(canonical string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, seen := w.visited[canonical]; seen {
		return false
	}
	w.visited[canonical] = struct{}{}
	return true
}

func (w *walker) isTruncated() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.truncated
}

// isIgnored consults every root's ignore manager and the user's exclude
// patterns.
func (w *walker) isIgnored(path string) bool {
	for _, mgr := range w.managers {
		if mgr.ShouldIgnore(path) {
			return true
		}
	}
	return w.isExcluded(path)
}

// isExcluded matches each exclude pattern against every component of
// the path.
func (w *walker) isExcluded(path string) bool {
	if len(w.opts.ExcludePatterns) == 0 {
		return false
	}
	components := strings.Split(filepath.ToSlash(path), "/")
	for _, pattern := range w.opts.ExcludePatterns {
		for _, component := range components {
			if component == "" {
				continue
			}
			if glob.Match(component, pattern) {
				return true
			}
		}
	}
	return false
}

// canonicalize resolves a path to its unique symlink-free absolute form.
func canonicalize(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", err
	}
	return filepath.Abs(resolved)
}

// isHidden reports whether the path's base name starts with a dot. Bare
// roots like "." and "/" are not hidden.
func isHidden(path string) bool {
	name := filepath.Base(filepath.Clean(path))
	return name != "." && name != string(filepath.Separator) && strings.HasPrefix(name, ".")
}
