package vpath

import (
	"io"
	"iter"

	"github.com/vpath-go/vpath/syntax"
)

// ReadPath is a Path bound to a ReadBackend. It adds the query operations:
// opening files for reading, listing and walking directories, glob
// matching, and symlink resolution. It exposes no mutation operations; a
// path type over a read-only backend cannot write by construction.
type ReadPath struct {
	Path
	fs   ReadBackend
	info *Info
}

// NewReadPath builds a ReadPath over backend from fragments parsed under
// flavor.
func NewReadPath(backend ReadBackend, flavor syntax.Flavor, fragments ...string) *ReadPath {
	return &ReadPath{Path: New(flavor, fragments...), fs: backend}
}

// with rebinds a derived value to the same backend with a fresh status
// cache.
func (p *ReadPath) with(v Path) *ReadPath {
	return &ReadPath{Path: v, fs: p.fs}
}

// Backend returns the backend the path queries.
func (p *ReadPath) Backend() ReadBackend { return p.fs }

// Join returns the path extended with fragments, bound to the same backend.
func (p *ReadPath) Join(fragments ...string) *ReadPath {
	return p.with(p.Path.Join(fragments...))
}

// Parent returns the parent path bound to the same backend.
func (p *ReadPath) Parent() *ReadPath {
	return p.with(p.Path.Parent())
}

// WithName returns the path with its final segment replaced, bound to the
// same backend.
func (p *ReadPath) WithName(name string) *ReadPath {
	return p.with(p.Path.WithName(name))
}

// Info returns the path's status cache, creating it on first use.
func (p *ReadPath) Info() *Info {
	if p.info == nil {
		p.info = newInfo(p.fs, p.String())
	}
	return p.info
}

// Open opens the path for reading. The caller must close the stream.
func (p *ReadPath) Open() (io.ReadCloser, error) {
	return p.fs.OpenRead(p.String())
}

// ReadBytes reads the whole file content.
func (p *ReadPath) ReadBytes() ([]byte, error) {
	r, err := p.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()
	return io.ReadAll(r)
}

// IterDir returns the path's children, one per directory entry. It fails
// with ErrNotDirectory if the path denotes a file and ErrNotExist if it
// denotes nothing.
func (p *ReadPath) IterDir() ([]*ReadPath, error) {
	names, err := p.fs.ListChildren(p.String())
	if err != nil {
		return nil, err
	}
	children := make([]*ReadPath, len(names))
	for i, name := range names {
		children[i] = p.Join(name)
	}
	return children, nil
}

// ReadLink returns the symlink's target as a path bound to the same
// backend. It fails with ErrUnsupported on backends without symlink
// modeling.
func (p *ReadPath) ReadLink() (*ReadPath, error) {
	target, err := p.fs.ReadLink(p.String())
	if err != nil {
		return nil, err
	}
	return p.with(New(p.Flavor(), target)), nil
}

// Walk traverses the tree rooted at the path, top-down. Each call starts a
// fresh traversal.
func (p *ReadPath) Walk(opts ...WalkOption) iter.Seq2[WalkEntry[*ReadPath], error] {
	return walkSeq(p.Path, p.fs, p.with, newWalkConfig(opts))
}

// Glob returns the paths under this one matching pattern.
func (p *ReadPath) Glob(pattern string) ([]*ReadPath, error) {
	return globPaths(p.Path, p.fs, p.with, pattern)
}
