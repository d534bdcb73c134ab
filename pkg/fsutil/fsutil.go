// Package fsutil provides file system primitives for mdslim:
// categorized reads, atomic writes, and destination-tree creation.
package fsutil

import (
	"context"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

// Sentinel errors for categorization via errors.Is.
var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrInvalidEncoding indicates the file is not valid UTF-8.
	ErrInvalidEncoding = errors.New("invalid UTF-8 encoding")
)

// FileInfo captures the state of a file at read time. The mode is
// carried over to the mirrored destination file.
type FileInfo struct {
	// Path is the path the file was read from.
	Path string

	// Mode is the file's permission and mode bits.
	Mode os.FileMode

	// Size is the file size in bytes.
	Size int64
}

// ReadFile reads a UTF-8 text file and returns its content along with
// metadata. Errors are wrapped with the package sentinels so callers
// can categorize them without string matching.
func ReadFile(ctx context.Context, path string) ([]byte, *FileInfo, error) {
	select {
	case <-ctx.Done():
		return nil, nil, fmt.Errorf("read file: %w", ctx.Err())
	default:
	}

	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
		}
		if os.IsPermission(err) {
			return nil, nil, fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
		}
		return nil, nil, fmt.Errorf("stat %s: %w", path, err)
	}

	if stat.IsDir() {
		return nil, nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, nil, fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
		}
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}

	if !utf8.Valid(content) {
		return nil, nil, fmt.Errorf("%w: %s", ErrInvalidEncoding, path)
	}

	info := &FileInfo{
		Path: path,
		Mode: stat.Mode(),
		Size: stat.Size(),
	}

	return content, info, nil
}

// DefaultDirMode is the permission mode for newly created directories.
const DefaultDirMode os.FileMode = 0o755

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, DefaultDirMode); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	return nil
}
