// Package gitignore evaluates gitignore-style rules hierarchically: one
// matcher per directory that carries an ignore file, consulted from the
// root toward the candidate path. The dialect is deliberately small:
// negation, anchoring, directory-only suffixes, '*'/'?' wildcards, and
// '**' segments. There are no character classes or escaped wildcards.
package gitignore

import "strings"

// Pattern is one parsed, non-comment line of an ignore file. The marker
// characters ('!', trailing '/', leading '/') are stripped from Text and
// recorded as flags.
type Pattern struct {
	Text          string
	Negated       bool
	DirectoryOnly bool
	Anchored      bool
}

// ParsePatterns parses ignore-file content into ordered patterns, skipping
// blank lines and comments. File order is preserved: later patterns
// override earlier ones during matching.
func ParsePatterns(content string) []Pattern {
	var patterns []Pattern
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var p Pattern
		if strings.HasPrefix(line, "!") {
			p.Negated = true
			line = line[1:]
		}
		if strings.HasSuffix(line, "/") {
			p.DirectoryOnly = true
			line = line[:len(line)-1]
		}
		if strings.HasPrefix(line, "/") {
			p.Anchored = true
			line = line[1:]
		}
		p.Text = line
		patterns = append(patterns, p)
	}
	return patterns
}
