// Package clipboard places text on the system clipboard through the
// platform's native utility (pbcopy, xclip, or clip). The engine itself
// never writes anywhere; this is strictly a caller-side sink.
package clipboard

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// utility returns the platform clipboard command and its arguments.
func utility() (string, []string) {
	switch runtime.GOOS {
	case "darwin":
		return "pbcopy", nil
	case "windows":
		return "clip", nil
	default:
		return "xclip", []string{"-selection", "clipboard"}
	}
}

// Validate checks that the platform clipboard utility is on PATH, with
// installation hints where it usually is not. Called before traversal so
// a missing utility fails fast instead of after a long walk.
func Validate() error {
	name, _ := utility()
	if _, err := exec.LookPath(name); err == nil {
		return nil
	}

	switch runtime.GOOS {
	case "darwin":
		return errors.New("pbcopy not found; it should be installed by default on macOS")
	case "windows":
		return errors.New("clip.exe not found; it should be installed by default on Windows")
	default:
		return errors.New("xclip not found. Install it with:\n" +
			"  Ubuntu/Debian: sudo apt install xclip\n" +
			"  Fedora: sudo dnf install xclip\n" +
			"  Arch: sudo pacman -S xclip")
	}
}

// Copy pipes content into the clipboard utility's stdin.
func Copy(content string) error {
	name, args := utility()
	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(content)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w", name, err)
	}
	return nil
}
