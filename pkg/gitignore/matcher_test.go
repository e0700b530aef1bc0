package gitignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchesPattern(t *testing.T) {
	tests := []struct {
		path     string
		pattern  string
		anchored bool
		want     bool
	}{
		// Bare star ignores everything.
		{"anything/at/all", "*", false, true},

		// Unanchored single-component patterns match any segment.
		{"src/main.rs", "main.rs", false, true},
		{"src/main.rs", "src", false, true},
		{"src/main.rs", "*.rs", false, true},
		{"src/main.rs", "*.go", false, false},
		{"deep/nested/cache", "cache", false, true},

		// Patterns with '/' require structural matching from the start.
		{"src/main.rs", "src/main.rs", false, true},
		{"src/main.rs", "src/*.rs", false, true},
		{"a/src/main.rs", "src/main.rs", false, false},
		{"src/sub/main.rs", "src/*.rs", false, false},

		// Anchored patterns match from the base only.
		{"build", "build", true, true},
		{"sub/build", "build", true, false},

		// '**' spans zero or more segments.
		{"a/b/c.log", "**/*.log", false, true},
		{"c.log", "**/*.log", false, true},
		{"a/b/c/d", "a/**", false, true},
		{"a/b/c/d", "a/**/d", false, true},
		{"a/d", "a/**/d", false, true},
		{"a/b/c/x", "a/**/d", false, false},
		{"x/b/d", "a/**/d", false, false},

		// '**' backtracks past a premature match of the next segment.
		{"a/b/x/b/c", "a/**/b/c", false, true},
	}

	for _, tt := range tests {
		got := matchesPattern(tt.path, tt.pattern, tt.anchored)
		if got != tt.want {
			t.Errorf("matchesPattern(%q, %q, anchored=%v) = %v, want %v",
				tt.path, tt.pattern, tt.anchored, got, tt.want)
		}
	}
}

func TestMatcherLastMatchWins(t *testing.T) {
	dir := t.TempDir()
	keep := filepath.Join(dir, "important.tmp")
	drop := filepath.Join(dir, "scratch.tmp")
	require.NoError(t, os.WriteFile(keep, []byte("keep"), 0o644))
	require.NoError(t, os.WriteFile(drop, []byte("drop"), 0o644))

	m := NewMatcher("*.tmp\n!important.tmp\n", dir)
	assert.True(t, m.ShouldIgnore(drop))
	assert.False(t, m.ShouldIgnore(keep))

	// Reversed order: the ignore line comes last, so it wins.
	m = NewMatcher("!important.tmp\n*.tmp\n", dir)
	assert.True(t, m.ShouldIgnore(keep))
}

func TestMatcherDirectoryOnly(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "build"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "build.txt"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "buildfile"), nil, 0o644))

	m := NewMatcher("build/\n", dir)
	assert.True(t, m.ShouldIgnore(filepath.Join(dir, "build")))
	assert.False(t, m.ShouldIgnore(filepath.Join(dir, "build.txt")))
	assert.False(t, m.ShouldIgnore(filepath.Join(dir, "buildfile")))
}

func TestMatcherAnchored(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub", "build"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "build"), 0o755))

	m := NewMatcher("/build/\n", dir)
	assert.True(t, m.ShouldIgnore(filepath.Join(dir, "build")))
	assert.False(t, m.ShouldIgnore(filepath.Join(dir, "sub", "build")))
}

func TestMatcherBasePathScope(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base")
	require.NoError(t, os.Mkdir(base, 0o755))
	outside := filepath.Join(dir, "elsewhere.tmp")
	require.NoError(t, os.WriteFile(outside, nil, 0o644))

	m := NewMatcher("*\n", base)

	// The base directory itself and paths outside it are never ignored.
	assert.False(t, m.ShouldIgnore(base))
	assert.False(t, m.ShouldIgnore(outside))
}
