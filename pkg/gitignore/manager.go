package gitignore

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Manager lazily discovers the ignore files under one root and answers
// ignore queries by consulting each discovered matcher from the root
// toward the candidate path. Matchers accumulate for the lifetime of a
// walk; nothing is evicted. Safe for concurrent use.
type Manager struct {
	mu       sync.RWMutex
	rootPath string
	matchers map[string]*Matcher
	active   []string
	logger   *zap.Logger
}

// NewManager creates a manager rooted at rootPath, loading rootPath's
// ignore file if one is present.
func NewManager(rootPath string, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Manager{
		rootPath: rootPath,
		matchers: make(map[string]*Matcher),
		logger:   logger,
	}
	m.mu.Lock()
	m.load(rootPath)
	m.mu.Unlock()
	return m
}

// CheckDirectory loads dirPath's ignore file if it exists and has not
// been indexed yet. Called by the walker as each directory is expanded.
func (m *Manager) CheckDirectory(dirPath string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.matchers[dirPath]; ok {
		return
	}
	m.load(dirPath)
}

// load reads dirPath/.gitignore and registers a matcher for it. An
// unreadable ignore file means no rules for that directory. Callers hold
// the write lock.
func (m *Manager) load(dirPath string) {
	ignorePath := filepath.Join(dirPath, ".gitignore")
	content, err := os.ReadFile(ignorePath)
	if err != nil {
		return
	}
	m.matchers[dirPath] = NewMatcher(string(content), dirPath)
	m.active = append(m.active, ignorePath)
	m.logger.Debug("loaded ignore file", zap.String("path", ignorePath))
}

// ShouldIgnore consults the registered matchers from the root toward
// path, returning true at the first one that ignores it. The short
// circuit means a deeper directory's negation cannot re-include a path
// an ancestor's rules ignored.
func (m *Manager) ShouldIgnore(path string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if matcher, ok := m.matchers[m.rootPath]; ok && matcher.ShouldIgnore(path) {
		return true
	}

	rel, err := filepath.Rel(m.rootPath, path)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return false
	}

	current := m.rootPath
	for _, component := range strings.Split(filepath.ToSlash(rel), "/") {
		current = filepath.Join(current, component)
		if matcher, ok := m.matchers[current]; ok && matcher.ShouldIgnore(path) {
			return true
		}
	}
	return false
}

// ActiveIgnoreFiles returns the ignore files discovered so far, in
// discovery order.
func (m *Manager) ActiveIgnoreFiles() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.active...)
}

// HasActiveIgnoreFiles reports whether any ignore file has been loaded.
func (m *Manager) HasActiveIgnoreFiles() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.active) > 0
}
