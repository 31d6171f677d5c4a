package vpath

import "io"

// Status describes what a path string currently denotes in a backend.
type Status struct {
	// Exists reports whether the path denotes anything at all.
	Exists bool
	// IsDir reports whether the path denotes a directory.
	IsDir bool
	// IsFile reports whether the path denotes a regular file.
	IsFile bool
	// IsSymlink reports whether the path denotes a symbolic link.
	// Backends without symlink modeling always report false.
	IsSymlink bool
}

// ReadBackend is the storage capability ReadPath requires.
//
// Backends operate on rendered path strings; they never interpret path
// syntax beyond the separator convention they were built for. Errors are
// *fs.PathError values wrapping the package sentinels, so callers can use
// errors.Is regardless of which backend produced them.
type ReadBackend interface {
	// QueryStatus reports what name currently denotes. Absence is a
	// Status with Exists false, not an error. When followSymlinks is
	// false, a symbolic link is reported as itself rather than as its
	// target.
	QueryStatus(name string, followSymlinks bool) (Status, error)

	// OpenRead opens the named file for reading. It fails with
	// ErrIsDirectory if name denotes a directory and ErrNotExist if it
	// denotes nothing. The caller must close the returned stream.
	OpenRead(name string) (io.ReadCloser, error)

	// ListChildren returns the basenames of the entries directly beneath
	// the named directory. It fails with ErrNotDirectory if name denotes
	// a file and ErrNotExist if it denotes nothing. Order is unspecified
	// but stable for an unchanged backend.
	ListChildren(name string) ([]string, error)

	// ReadLink returns the target of the named symbolic link. Backends
	// without symlink modeling fail with ErrUnsupported.
	ReadLink(name string) (string, error)
}

// WriteBackend is the storage capability WritePath requires.
type WriteBackend interface {
	// OpenWrite opens the named file for writing, creating it if needed.
	// It fails with ErrIsDirectory if name denotes an existing directory
	// and ErrNotExist if the parent directory does not exist. Written
	// content becomes visible to readers no later than Close; the caller
	// must close the returned stream on every exit path.
	OpenWrite(name string) (io.WriteCloser, error)

	// MakeDirectory creates the named directory. It fails with ErrExist
	// if name already denotes something and ErrNotExist if the parent
	// directory does not exist.
	MakeDirectory(name string) error

	// MakeSymlink creates a symbolic link at name pointing to target.
	// The isDir hint tells backends that distinguish directory links
	// what kind of link to create. Backends without symlink modeling
	// fail with ErrUnsupported.
	MakeSymlink(name, target string, isDir bool) error
}

// Backend combines the read and write capabilities. Backends implementing
// both can serve RWPath values.
type Backend interface {
	ReadBackend
	WriteBackend
}
