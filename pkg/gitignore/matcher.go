package gitignore

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/Oscarnordstrom/rcat/pkg/glob"
)

// Matcher evaluates one ignore file's patterns against paths below its
// base directory. Immutable once built.
type Matcher struct {
	basePath string
	patterns []Pattern
}

// NewMatcher parses content into a matcher rooted at basePath.
func NewMatcher(content, basePath string) *Matcher {
	return &Matcher{
		basePath: basePath,
		patterns: ParsePatterns(content),
	}
}

// ShouldIgnore reports whether path is ignored by this file's patterns.
// Patterns are scanned in file order and the last match wins, so a later
// negation re-includes a path an earlier line ignored. Paths outside the
// base directory, and the base directory itself, are never ignored.
func (m *Matcher) ShouldIgnore(path string) bool {
	rel, err := filepath.Rel(m.basePath, path)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}
	rel = filepath.ToSlash(rel)

	info, err := os.Stat(path)
	isDir := err == nil && info.IsDir()

	ignored := false
	for _, p := range m.patterns {
		if p.DirectoryOnly && !isDir {
			continue
		}
		if matchesPattern(rel, p.Text, p.Anchored) {
			ignored = !p.Negated
		}
	}
	return ignored
}

// matchesPattern decides how a pattern applies to a relative path. An
// anchored pattern, or one that names a directory structure with '/',
// must match segment by segment from the start; a bare pattern matches
// any single path segment.
func matchesPattern(path, pattern string, anchored bool) bool {
	if pattern == "*" {
		return true
	}

	if anchored || strings.Contains(pattern, "/") {
		return matchSegments(splitSegments(path), strings.Split(pattern, "/"), 0)
	}

	for _, segment := range splitSegments(path) {
		if glob.Match(segment, pattern) {
			return true
		}
	}
	return false
}

// matchSegments walks path and pattern segments in lockstep starting at
// start. A '**' segment matches zero or more path segments: if it ends
// the pattern it matches unconditionally, otherwise every position where
// the following segment matches is tried, backtracking on failure. The
// search is bounded by the number of path segments.
func matchSegments(pathSegs, patternSegs []string, start int) bool {
	if len(patternSegs) == 0 {
		return true
	}

	pathIdx := start
	patIdx := 0

	for patIdx < len(patternSegs) && pathIdx < len(pathSegs) {
		pat := patternSegs[patIdx]

		if pat == "**" {
			if patIdx == len(patternSegs)-1 {
				return true
			}
			patIdx++
			next := patternSegs[patIdx]
			for pathIdx < len(pathSegs) {
				if glob.Match(pathSegs[pathIdx], next) {
					if matchSegments(pathSegs, patternSegs[patIdx:], pathIdx) {
						return true
					}
				}
				pathIdx++
			}
			return false
		}

		if !glob.Match(pathSegs[pathIdx], pat) {
			return false
		}
		pathIdx++
		patIdx++
	}

	return patIdx == len(patternSegs)
}

func splitSegments(path string) []string {
	var segments []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}
