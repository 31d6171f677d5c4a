package vpath

import (
	"errors"
	"io/fs"
	"path"
)

var (
	// ErrNotExist is returned when a path or its parent does not exist.
	// Re-exported from io/fs for convenience.
	ErrNotExist = fs.ErrNotExist

	// ErrExist is returned when a path already exists.
	// Re-exported from io/fs for convenience.
	ErrExist = fs.ErrExist

	// ErrIsDirectory is returned when a file operation targets a directory.
	ErrIsDirectory = errors.New("is a directory")

	// ErrNotDirectory is returned when a directory operation targets a file.
	ErrNotDirectory = errors.New("not a directory")

	// ErrUnsupported is returned when an operation is not supported by the
	// backend. For example, symlink operations on backends without symlink
	// modeling.
	ErrUnsupported = errors.New("operation not supported")

	// ErrNotRelative is returned when a path cannot be expressed relative
	// to another path.
	ErrNotRelative = errors.New("path is not relative to base")

	// ErrBadPattern is returned for malformed glob patterns.
	// Re-exported from the path package so errors.Is works across both.
	ErrBadPattern = path.ErrBadPattern
)
