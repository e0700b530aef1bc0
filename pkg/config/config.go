// Package config holds the engine's size defaults and parses the
// human-readable size strings accepted on the command line and in the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	// DefaultMaxSize caps the aggregate output at 5 MiB.
	DefaultMaxSize = 5 * 1024 * 1024

	// DefaultMaxFileSize skips individual files larger than 500 KiB.
	DefaultMaxFileSize = 500 * 1024

	// BinaryCheckBufferSize is the prefix length inspected for NUL bytes
	// when classifying a file as binary.
	BinaryCheckBufferSize = 8192
)

// Environment variables that override the default size limits. They accept
// the same syntax as ParseSize and may come from a .env file.
const (
	EnvMaxSize     = "RCAT_MAX_SIZE"
	EnvMaxFileSize = "RCAT_MAX_FILE_SIZE"
)

// Limits are the effective size caps after environment overrides.
type Limits struct {
	MaxSize     int
	MaxFileSize int
}

// LoadLimits returns the default caps, applying any overrides found in the
// environment or a .env file in the working directory. A malformed
// override is a hard error: it must surface before traversal starts.
func LoadLimits(logger *zap.Logger) (Limits, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := godotenv.Load(); err == nil {
		logger.Debug("loaded .env file")
	}

	limits := Limits{MaxSize: DefaultMaxSize, MaxFileSize: DefaultMaxFileSize}

	if v := os.Getenv(EnvMaxSize); v != "" {
		size, err := ParseSize(v)
		if err != nil {
			return Limits{}, fmt.Errorf("invalid %s: %w", EnvMaxSize, err)
		}
		limits.MaxSize = size
		logger.Debug("max size overridden from environment", zap.Int("bytes", size))
	}
	if v := os.Getenv(EnvMaxFileSize); v != "" {
		size, err := ParseSize(v)
		if err != nil {
			return Limits{}, fmt.Errorf("invalid %s: %w", EnvMaxFileSize, err)
		}
		limits.MaxFileSize = size
		logger.Debug("max file size overridden from environment", zap.Int("bytes", size))
	}

	return limits, nil
}

// ParseSize converts a human-readable size string such as "10MB", "1.5G",
// or "500KB" into a byte count. Bare numbers are bytes.
func ParseSize(s string) (int, error) {
	str := strings.ToUpper(strings.TrimSpace(s))

	cut := len(str)
	for i, r := range str {
		if unicode.IsLetter(r) {
			cut = i
			break
		}
	}
	numberPart := strings.TrimSpace(str[:cut])
	unitPart := str[cut:]

	number, err := strconv.ParseFloat(numberPart, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number: %s", numberPart)
	}
	if number < 0 {
		return 0, errors.New("size cannot be negative")
	}

	var multiplier float64
	switch unitPart {
	case "", "B":
		multiplier = 1
	case "KB", "K":
		multiplier = 1024
	case "MB", "M":
		multiplier = 1024 * 1024
	case "GB", "G":
		multiplier = 1024 * 1024 * 1024
	default:
		return 0, fmt.Errorf("unknown unit: %s (use B, KB, MB, or GB)", unitPart)
	}

	size := int(number * multiplier)
	if size == 0 {
		return 0, errors.New("size must be greater than 0")
	}
	return size, nil
}
