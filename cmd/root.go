package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Oscarnordstrom/rcat/pkg/clipboard"
	"github.com/Oscarnordstrom/rcat/pkg/config"
	"github.com/Oscarnordstrom/rcat/pkg/format"
	"github.com/Oscarnordstrom/rcat/pkg/logging"
	"github.com/Oscarnordstrom/rcat/pkg/version"
	"github.com/Oscarnordstrom/rcat/pkg/walk"
)

var (
	includeAll      bool
	maxSizeStr      string
	maxFileSizeStr  string
	excludePatterns []string
	toStdout        bool
	workers         int
	verbose         bool
)

var logger = zap.NewNop()

// RootCmd is the base command; rcat itself performs the concatenation.
var RootCmd = &cobra.Command{
	Use:   "rcat [flags] <path>...",
	Short: "Recursively concatenate files and copy to clipboard or stdout",
	Long: `rcat walks the given directories breadth-first, concatenates every text
file that survives gitignore rules, hidden-name filtering, and the size
caps, and places the result on the system clipboard (or on stdout with
--stdout). Hidden entries and binary files are skipped unless --all is
given.`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

// Execute wires the provided logger into the command tree and runs it.
func Execute(l *zap.Logger) error {
	if l != nil {
		logger = l
	}
	return RootCmd.Execute()
}

func init() {
	RootCmd.Flags().BoolVarP(&includeAll, "all", "a", false, "Include hidden directories, hidden files, and binary files")
	RootCmd.Flags().StringVarP(&maxSizeStr, "max-size", "m", "", "Maximum output size (e.g. 10MB, 1GB, 500KB)")
	RootCmd.Flags().StringVarP(&maxFileSizeStr, "max-file-size", "f", "", "Skip files larger than this size (e.g. 500KB, 1MB)")
	RootCmd.Flags().StringArrayVarP(&excludePatterns, "exclude", "e", nil, "Exclude files matching pattern (repeatable)")
	RootCmd.Flags().BoolVarP(&toStdout, "stdout", "o", false, "Write content to stdout instead of the clipboard")
	RootCmd.Flags().IntVarP(&workers, "workers", "w", 1, "Traversal workers; more than one trades deterministic output order for throughput")
	RootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	if verbose {
		if l, err := logging.Setup(true, "rcat", version.Get().Version); err == nil {
			logger = l
		}
	}

	for _, path := range args {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("path %q does not exist", path)
		}
	}

	limits, err := config.LoadLimits(logger)
	if err != nil {
		return err
	}
	if maxSizeStr != "" {
		if limits.MaxSize, err = config.ParseSize(maxSizeStr); err != nil {
			return fmt.Errorf("invalid --max-size: %w", err)
		}
	}
	if maxFileSizeStr != "" {
		if limits.MaxFileSize, err = config.ParseSize(maxFileSizeStr); err != nil {
			return fmt.Errorf("invalid --max-file-size: %w", err)
		}
	}

	// Fail on a missing clipboard utility before the walk, not after.
	if !toStdout {
		if err := clipboard.Validate(); err != nil {
			return err
		}
	}

	opts := walk.Options{
		IncludeAll:      includeAll,
		MaxSize:         limits.MaxSize,
		MaxFileSize:     limits.MaxFileSize,
		ExcludePatterns: excludePatterns,
		Workers:         workers,
	}

	result, err := walk.Collect(args, opts, logger)
	if err != nil {
		return err
	}

	return deliver(result, limits.MaxSize)
}

// deliver routes the collected content to the clipboard or stdout and
// prints the status and statistics summary to stderr.
func deliver(result walk.Result, maxSize int) error {
	useColor := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	color.NoColor = !useColor

	size := len(result.Content)
	if size == 0 {
		if toStdout {
			fmt.Fprintln(os.Stderr, "No files found to output")
		} else {
			fmt.Fprintln(os.Stderr, "No files found to copy")
		}
		return nil
	}

	if toStdout {
		fmt.Print(result.Content)
	} else {
		if err := clipboard.Copy(result.Content); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
	}

	if result.Truncated {
		fmt.Fprintln(os.Stderr, color.YellowString(
			"Content truncated at %s limit", format.FormatAsUnit(maxSize)))
	}

	destination := "clipboard"
	if toStdout {
		destination = "stdout"
	}
	fmt.Fprintln(os.Stderr, color.GreenString(
		"Successfully sent %s to %s", format.Format(size), destination))

	fmt.Fprintf(os.Stderr, "\n%s\n", result.Stats.Summary())
	return nil
}
