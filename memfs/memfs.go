// Package memfs provides the in-memory reference backend: a Store mapping
// path strings to file content and directories to child-name sets.
//
// The Store is an explicit object shared by reference across every path
// instance built over it, so multiple instances addressing the same string
// observe the same content. It raises the same error taxonomy as a real
// filesystem backend (*fs.PathError wrapping the vpath sentinels), which
// lets code written against the path kinds behave identically over either.
//
// The Store assumes single-goroutine use and performs no internal locking;
// callers sharing one across goroutines must serialize access themselves.
package memfs

import (
	"bytes"
	"io"
	"io/fs"
	"slices"
	"strings"

	"github.com/vpath-go/vpath"
	"github.com/vpath-go/vpath/syntax"
)

// Store is an in-memory backend. It keeps two mappings: file path strings
// to content, and directory path strings to the set of child basenames.
// A path string appears in at most one of the two.
type Store struct {
	flavor syntax.Flavor
	files  map[string][]byte
	dirs   map[string]map[string]struct{}
}

// Option configures a Store.
type Option func(*Store)

// WithFlavor sets the syntax flavor used to canonicalize keys and compute
// parents. The default is syntax.Posix.
func WithFlavor(flavor syntax.Flavor) Option {
	return func(s *Store) { s.flavor = flavor }
}

// New creates an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		flavor: syntax.Posix,
		files:  make(map[string][]byte),
		dirs:   make(map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Clear empties both mappings. Paths built over the Store stay valid and
// observe the empty state.
func (s *Store) Clear() {
	s.files = make(map[string][]byte)
	s.dirs = make(map[string]map[string]struct{})
}

// key canonicalizes a path string under the store's flavor.
func (s *Store) key(name string) string {
	root, parts := s.flavor.Split(name)
	if len(parts) == 0 {
		return root
	}
	return root + strings.Join(parts, string(s.flavor.Separator()))
}

// split returns the canonical parent key and basename of name. A root or
// empty path is its own parent and has no basename.
func (s *Store) split(name string) (parent, base string) {
	root, parts := s.flavor.Split(name)
	if len(parts) == 0 {
		return root, ""
	}
	sep := string(s.flavor.Separator())
	return root + strings.Join(parts[:len(parts)-1], sep), parts[len(parts)-1]
}

// PutDir seeds a directory entry, linking it into its parent's child set
// when the parent is present. Unlike MakeDirectory it never fails; tests
// use it to pre-populate hierarchies.
func (s *Store) PutDir(name string) {
	name = s.key(name)
	if _, ok := s.dirs[name]; !ok {
		s.dirs[name] = make(map[string]struct{})
	}
	s.link(name)
}

// PutFile seeds a file entry with content, linking it into its parent's
// child set when the parent is present.
func (s *Store) PutFile(name string, data []byte) {
	name = s.key(name)
	s.files[name] = data
	s.link(name)
}

func (s *Store) link(name string) {
	parent, base := s.split(name)
	if base == "" || parent == name {
		return
	}
	if children, ok := s.dirs[parent]; ok {
		children[base] = struct{}{}
	}
}

func pathErr(op, name string, err error) error {
	return &fs.PathError{Op: op, Path: name, Err: err}
}

// QueryStatus implements vpath.ReadBackend. The Store has no symlink
// modeling, so IsSymlink is always false and the followSymlinks flag is
// irrelevant.
func (s *Store) QueryStatus(name string, _ bool) (vpath.Status, error) {
	name = s.key(name)
	_, isDir := s.dirs[name]
	_, isFile := s.files[name]
	return vpath.Status{
		Exists: isDir || isFile,
		IsDir:  isDir,
		IsFile: isFile,
	}, nil
}

// OpenRead implements vpath.ReadBackend.
func (s *Store) OpenRead(name string) (io.ReadCloser, error) {
	name = s.key(name)
	if _, ok := s.dirs[name]; ok {
		return nil, pathErr("open", name, vpath.ErrIsDirectory)
	}
	data, ok := s.files[name]
	if !ok {
		return nil, pathErr("open", name, vpath.ErrNotExist)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// ListChildren implements vpath.ReadBackend. Names are returned sorted.
func (s *Store) ListChildren(name string) ([]string, error) {
	name = s.key(name)
	if _, ok := s.files[name]; ok {
		return nil, pathErr("listdir", name, vpath.ErrNotDirectory)
	}
	children, ok := s.dirs[name]
	if !ok {
		return nil, pathErr("listdir", name, vpath.ErrNotExist)
	}
	names := make([]string, 0, len(children))
	for child := range children {
		names = append(names, child)
	}
	slices.Sort(names)
	return names, nil
}

// ReadLink implements vpath.ReadBackend. The Store has no symlink
// modeling.
func (s *Store) ReadLink(name string) (string, error) {
	return "", pathErr("readlink", s.key(name), vpath.ErrUnsupported)
}

// OpenWrite implements vpath.WriteBackend. The entry is registered in the
// parent's child set immediately; content becomes visible at Close.
func (s *Store) OpenWrite(name string) (io.WriteCloser, error) {
	name = s.key(name)
	if _, ok := s.dirs[name]; ok {
		return nil, pathErr("open", name, vpath.ErrIsDirectory)
	}
	parent, base := s.split(name)
	children, ok := s.dirs[parent]
	if !ok {
		return nil, pathErr("open", parent, vpath.ErrNotExist)
	}
	s.files[name] = nil
	children[base] = struct{}{}
	return &fileWriter{store: s, name: name}, nil
}

// MakeDirectory implements vpath.WriteBackend.
func (s *Store) MakeDirectory(name string) error {
	name = s.key(name)
	if _, ok := s.dirs[name]; ok {
		return pathErr("mkdir", name, vpath.ErrExist)
	}
	if _, ok := s.files[name]; ok {
		return pathErr("mkdir", name, vpath.ErrExist)
	}
	parent, base := s.split(name)
	if parent != name {
		children, ok := s.dirs[parent]
		if !ok {
			return pathErr("mkdir", parent, vpath.ErrNotExist)
		}
		children[base] = struct{}{}
	}
	s.dirs[name] = make(map[string]struct{})
	return nil
}

// MakeSymlink implements vpath.WriteBackend. The Store has no symlink
// modeling.
func (s *Store) MakeSymlink(name, _ string, _ bool) error {
	return pathErr("symlink", s.key(name), vpath.ErrUnsupported)
}

// fileWriter buffers written bytes and publishes them to the store at
// Close.
type fileWriter struct {
	store *Store
	name  string
	buf   bytes.Buffer
	done  bool
}

func (w *fileWriter) Write(p []byte) (int, error) {
	if w.done {
		return 0, pathErr("write", w.name, fs.ErrClosed)
	}
	return w.buf.Write(p)
}

func (w *fileWriter) Close() error {
	if w.done {
		return nil
	}
	w.done = true
	w.store.files[w.name] = w.buf.Bytes()
	return nil
}

// Compile-time interface check.
var _ vpath.Backend = (*Store)(nil)
