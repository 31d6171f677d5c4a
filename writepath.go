package vpath

import (
	"errors"
	"io"

	"github.com/vpath-go/vpath/syntax"
)

// WritePath is a Path bound to a WriteBackend. It adds the mutation
// operations: opening files for writing, creating directories, and
// creating symlinks. It exposes no query operations; a path type over a
// write-only backend cannot read by construction.
type WritePath struct {
	Path
	fs WriteBackend
}

// NewWritePath builds a WritePath over backend from fragments parsed under
// flavor.
func NewWritePath(backend WriteBackend, flavor syntax.Flavor, fragments ...string) *WritePath {
	return &WritePath{Path: New(flavor, fragments...), fs: backend}
}

func (p *WritePath) with(v Path) *WritePath {
	return &WritePath{Path: v, fs: p.fs}
}

// Backend returns the backend the path mutates.
func (p *WritePath) Backend() WriteBackend { return p.fs }

// Join returns the path extended with fragments, bound to the same backend.
func (p *WritePath) Join(fragments ...string) *WritePath {
	return p.with(p.Path.Join(fragments...))
}

// Parent returns the parent path bound to the same backend.
func (p *WritePath) Parent() *WritePath {
	return p.with(p.Path.Parent())
}

// WithName returns the path with its final segment replaced, bound to the
// same backend.
func (p *WritePath) WithName(name string) *WritePath {
	return p.with(p.Path.WithName(name))
}

// OpenWrite opens the path for writing. Written content becomes visible to
// readers no later than Close; the caller must close the stream on every
// exit path.
func (p *WritePath) OpenWrite() (io.WriteCloser, error) {
	return p.fs.OpenWrite(p.String())
}

// WriteBytes writes data as the path's whole content.
func (p *WritePath) WriteBytes(data []byte) error {
	w, err := p.OpenWrite()
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

// Mkdir creates the directory the path denotes. It fails with ErrExist if
// the path already denotes something and ErrNotExist if the parent does
// not exist.
func (p *WritePath) Mkdir() error {
	return p.fs.MakeDirectory(p.String())
}

// MkdirAll creates the directory and any missing ancestors. It succeeds if
// the directory already exists.
func (p *WritePath) MkdirAll() error {
	ancestors := p.Parents()
	for i := len(ancestors) - 1; i >= 0; i-- {
		if ancestors[i].Name() == "" && ancestors[i].Root() == "" {
			continue
		}
		if err := p.fs.MakeDirectory(ancestors[i].String()); err != nil && !errors.Is(err, ErrExist) {
			return err
		}
	}
	if err := p.fs.MakeDirectory(p.String()); err != nil && !errors.Is(err, ErrExist) {
		return err
	}
	return nil
}

// SymlinkTo creates a symbolic link at the path pointing to target. It
// fails with ErrUnsupported on backends without symlink modeling.
func (p *WritePath) SymlinkTo(target string, targetIsDir bool) error {
	return p.fs.MakeSymlink(p.String(), target, targetIsDir)
}
