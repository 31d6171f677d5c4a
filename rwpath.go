package vpath

import (
	"io"
	"iter"

	"github.com/vpath-go/vpath/syntax"
)

// RWPath is a Path bound to a Backend that supports both capability sets.
// It composes the ReadPath and WritePath operations over one shared value;
// ReadOnly and WriteOnly narrow it back to a single capability.
type RWPath struct {
	Path
	fs   Backend
	info *Info
}

// NewRWPath builds an RWPath over backend from fragments parsed under
// flavor.
func NewRWPath(backend Backend, flavor syntax.Flavor, fragments ...string) *RWPath {
	return &RWPath{Path: New(flavor, fragments...), fs: backend}
}

func (p *RWPath) with(v Path) *RWPath {
	return &RWPath{Path: v, fs: p.fs}
}

// Backend returns the backend the path queries and mutates.
func (p *RWPath) Backend() Backend { return p.fs }

// ReadOnly returns the same path restricted to the read capability.
func (p *RWPath) ReadOnly() *ReadPath {
	return &ReadPath{Path: p.Path, fs: p.fs}
}

// WriteOnly returns the same path restricted to the write capability.
func (p *RWPath) WriteOnly() *WritePath {
	return &WritePath{Path: p.Path, fs: p.fs}
}

// Join returns the path extended with fragments, bound to the same backend.
func (p *RWPath) Join(fragments ...string) *RWPath {
	return p.with(p.Path.Join(fragments...))
}

// Parent returns the parent path bound to the same backend.
func (p *RWPath) Parent() *RWPath {
	return p.with(p.Path.Parent())
}

// WithName returns the path with its final segment replaced, bound to the
// same backend.
func (p *RWPath) WithName(name string) *RWPath {
	return p.with(p.Path.WithName(name))
}

// Info returns the path's status cache, creating it on first use.
func (p *RWPath) Info() *Info {
	if p.info == nil {
		p.info = newInfo(p.fs, p.String())
	}
	return p.info
}

// Open opens the path for reading. The caller must close the stream.
func (p *RWPath) Open() (io.ReadCloser, error) {
	return p.fs.OpenRead(p.String())
}

// ReadBytes reads the whole file content.
func (p *RWPath) ReadBytes() ([]byte, error) {
	return p.ReadOnly().ReadBytes()
}

// IterDir returns the path's children, one per directory entry.
func (p *RWPath) IterDir() ([]*RWPath, error) {
	names, err := p.fs.ListChildren(p.String())
	if err != nil {
		return nil, err
	}
	children := make([]*RWPath, len(names))
	for i, name := range names {
		children[i] = p.Join(name)
	}
	return children, nil
}

// ReadLink returns the symlink's target as a path bound to the same
// backend.
func (p *RWPath) ReadLink() (*RWPath, error) {
	target, err := p.fs.ReadLink(p.String())
	if err != nil {
		return nil, err
	}
	return p.with(New(p.Flavor(), target)), nil
}

// Walk traverses the tree rooted at the path, top-down. Each call starts a
// fresh traversal.
func (p *RWPath) Walk(opts ...WalkOption) iter.Seq2[WalkEntry[*RWPath], error] {
	return walkSeq(p.Path, p.fs, p.with, newWalkConfig(opts))
}

// Glob returns the paths under this one matching pattern.
func (p *RWPath) Glob(pattern string) ([]*RWPath, error) {
	return globPaths(p.Path, p.fs, p.with, pattern)
}

// OpenWrite opens the path for writing. The caller must close the stream.
func (p *RWPath) OpenWrite() (io.WriteCloser, error) {
	return p.fs.OpenWrite(p.String())
}

// WriteBytes writes data as the path's whole content.
func (p *RWPath) WriteBytes(data []byte) error {
	return p.WriteOnly().WriteBytes(data)
}

// Mkdir creates the directory the path denotes.
func (p *RWPath) Mkdir() error {
	return p.fs.MakeDirectory(p.String())
}

// MkdirAll creates the directory and any missing ancestors.
func (p *RWPath) MkdirAll() error {
	return p.WriteOnly().MkdirAll()
}

// SymlinkTo creates a symbolic link at the path pointing to target.
func (p *RWPath) SymlinkTo(target string, targetIsDir bool) error {
	return p.fs.MakeSymlink(p.String(), target, targetIsDir)
}

// CopyTo copies the file or tree rooted at the path into dst, which may be
// bound to a different backend.
func (p *RWPath) CopyTo(dst *WritePath) error {
	return Copy(p.ReadOnly(), dst)
}
