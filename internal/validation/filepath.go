package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LogPathValidator validates the debug log file path before it is opened.
type LogPathValidator struct {
	// AllowedBaseDirs restricts the log file to specific base directories;
	// empty means any directory is acceptable
	AllowedBaseDirs []string
	// MaxPathLength is the maximum allowed path length
	MaxPathLength int
}

// NewLogPathValidator creates a validator restricted to the app's own
// directories.
func NewLogPathValidator() *LogPathValidator {
	homeDir, _ := os.UserHomeDir()
	return &LogPathValidator{
		AllowedBaseDirs: []string{
			filepath.Join(homeDir, ".lexwire"),
			filepath.Join(homeDir, ".config", "lexwire"),
			os.TempDir(),
		},
		MaxPathLength: 4096,
	}
}

// NewPermissiveLogPathValidator places no directory restriction; used when
// the user configures an explicit log path.
func NewPermissiveLogPathValidator() *LogPathValidator {
	return &LogPathValidator{MaxPathLength: 4096}
}

// ValidateAndSanitize validates and normalizes a log file path.
func (v *LogPathValidator) ValidateAndSanitize(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("path cannot be empty")
	}
	if len(path) > v.MaxPathLength {
		return "", fmt.Errorf("path too long (max %d characters)", v.MaxPathLength)
	}
	if strings.Contains(path, "\x00") {
		return "", fmt.Errorf("path contains null bytes")
	}

	if len(path) >= 2 && path[:2] == "~/" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		path = filepath.Join(homeDir, path[2:])
	}

	if !filepath.IsAbs(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("cannot make path absolute: %w", err)
		}
		path = abs
	}
	path = filepath.Clean(path)

	for _, component := range strings.Split(filepath.ToSlash(path), "/") {
		if component == ".." {
			return "", fmt.Errorf("directory traversal not allowed")
		}
	}

	if err := v.validateBaseDirs(path); err != nil {
		return "", err
	}

	return path, nil
}

func (v *LogPathValidator) validateBaseDirs(path string) error {
	if len(v.AllowedBaseDirs) == 0 {
		return nil
	}

	for _, baseDir := range v.AllowedBaseDirs {
		absBase, err := filepath.Abs(baseDir)
		if err != nil {
			continue
		}
		rel, err := filepath.Rel(absBase, path)
		if err != nil {
			continue
		}
		if !strings.HasPrefix(rel, "..") {
			return nil
		}
	}

	return fmt.Errorf("path not within allowed directories: %v", v.AllowedBaseDirs)
}
