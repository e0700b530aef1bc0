// Package glob implements the single-segment wildcard matching used by
// ignore patterns and --exclude filters. Only '*' and '?' are supported;
// there are no character classes or escapes.
package glob

import "strings"

// Match reports whether text matches pattern. '*' matches any run of
// characters (including none) and '?' matches exactly one character. A
// pattern without wildcards requires exact equality.
func Match(text, pattern string) bool {
	if pattern == "*" {
		return true
	}
	if !strings.ContainsAny(pattern, "*?") {
		return text == pattern
	}

	// Two-pointer scan with backtracking: on a mismatch, retry from the
	// most recent '*' with one more text character consumed by it.
	ti, pi := 0, 0
	starIdx := -1
	starMatch := 0

	for ti < len(text) {
		switch {
		case pi < len(pattern) && pattern[pi] == '*':
			starIdx = pi
			starMatch = ti
			pi++
		case pi < len(pattern) && (pattern[pi] == '?' || pattern[pi] == text[ti]):
			ti++
			pi++
		case starIdx >= 0:
			pi = starIdx + 1
			starMatch++
			ti = starMatch
		default:
			return false
		}
	}

	// Any pattern left over must be all stars.
	for pi < len(pattern) && pattern[pi] == '*' {
		pi++
	}
	return pi == len(pattern)
}
