// Package billyfs provides vpath backends over go-billy filesystems.
//
// Two constructors are provided: NewLocal for disk-backed storage via
// billy's osfs, and NewMemory for billy's memfs. Both support symlinks, so
// they exercise the link operations the in-memory reference store cannot.
// Unwrap exposes the underlying billy.Filesystem for go-git integration.
package billyfs

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/vpath-go/vpath"
)

// FS adapts a billy.Filesystem to the vpath backend contracts.
type FS struct {
	bfs billy.Filesystem
}

// NewLocal creates a disk-backed filesystem rooted at the filesystem
// root ("/").
func NewLocal() *FS {
	return &FS{bfs: osfs.New("/")}
}

// NewLocalAt creates a disk-backed filesystem rooted at dir. Paths given
// to the backend are resolved inside dir and cannot escape it.
func NewLocalAt(dir string) *FS {
	return &FS{bfs: osfs.New(dir)}
}

// NewMemory creates an in-memory filesystem. It is initially empty.
func NewMemory() *FS {
	return &FS{bfs: memfs.New()}
}

// Unwrap returns the underlying billy.Filesystem for go-git integration.
func (b *FS) Unwrap() billy.Filesystem {
	return b.bfs
}

// normalize converts paths to slash form before handing them to billy.
func normalize(name string) string {
	return filepath.ToSlash(filepath.Clean(name))
}

func statusOf(info fs.FileInfo) vpath.Status {
	return vpath.Status{
		Exists:    true,
		IsDir:     info.IsDir(),
		IsFile:    info.Mode().IsRegular(),
		IsSymlink: info.Mode()&fs.ModeSymlink != 0,
	}
}

// QueryStatus implements vpath.ReadBackend. Absence is reported as a zero
// Status, not an error.
func (b *FS) QueryStatus(name string, followSymlinks bool) (vpath.Status, error) {
	name = normalize(name)
	var info fs.FileInfo
	var err error
	if followSymlinks {
		info, err = b.bfs.Stat(name)
	} else {
		info, err = b.bfs.Lstat(name)
	}
	if err != nil {
		if os.IsNotExist(err) {
			return vpath.Status{}, nil
		}
		return vpath.Status{}, err
	}
	return statusOf(info), nil
}

// OpenRead implements vpath.ReadBackend.
func (b *FS) OpenRead(name string) (io.ReadCloser, error) {
	name = normalize(name)
	info, err := b.bfs.Stat(name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &fs.PathError{Op: "open", Path: name, Err: vpath.ErrNotExist}
		}
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "open", Path: name, Err: vpath.ErrIsDirectory}
	}
	return b.bfs.Open(name)
}

// ListChildren implements vpath.ReadBackend.
func (b *FS) ListChildren(name string) ([]string, error) {
	name = normalize(name)
	info, err := b.bfs.Stat(name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &fs.PathError{Op: "listdir", Path: name, Err: vpath.ErrNotExist}
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, &fs.PathError{Op: "listdir", Path: name, Err: vpath.ErrNotDirectory}
	}
	infos, err := b.bfs.ReadDir(name)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(infos))
	for i, entry := range infos {
		names[i] = entry.Name()
	}
	return names, nil
}

// ReadLink implements vpath.ReadBackend.
func (b *FS) ReadLink(name string) (string, error) {
	return b.bfs.Readlink(normalize(name))
}

// OpenWrite implements vpath.WriteBackend. Billy filesystems create
// missing parents implicitly, so the parent is checked first to preserve
// the backend contract.
func (b *FS) OpenWrite(name string) (io.WriteCloser, error) {
	name = normalize(name)
	if info, err := b.bfs.Stat(name); err == nil && info.IsDir() {
		return nil, &fs.PathError{Op: "open", Path: name, Err: vpath.ErrIsDirectory}
	}
	if err := b.requireParent("open", name); err != nil {
		return nil, err
	}
	return b.bfs.Create(name)
}

// MakeDirectory implements vpath.WriteBackend. Billy only exposes
// MkdirAll, so existence and parent checks are performed here.
func (b *FS) MakeDirectory(name string) error {
	name = normalize(name)
	if _, err := b.bfs.Stat(name); err == nil {
		return &fs.PathError{Op: "mkdir", Path: name, Err: vpath.ErrExist}
	}
	if err := b.requireParent("mkdir", name); err != nil {
		return err
	}
	return b.bfs.MkdirAll(name, 0o755)
}

// MakeSymlink implements vpath.WriteBackend. Billy does not distinguish
// directory links, so the hint is ignored.
func (b *FS) MakeSymlink(name, target string, _ bool) error {
	return b.bfs.Symlink(target, normalize(name))
}

func (b *FS) requireParent(op, name string) error {
	parent := filepath.Dir(name)
	if parent == "." || parent == "/" {
		return nil
	}
	info, err := b.bfs.Stat(parent)
	if err != nil {
		if os.IsNotExist(err) {
			return &fs.PathError{Op: op, Path: parent, Err: vpath.ErrNotExist}
		}
		return err
	}
	if !info.IsDir() {
		return &fs.PathError{Op: op, Path: parent, Err: vpath.ErrNotDirectory}
	}
	return nil
}

// Compile-time interface check.
var _ vpath.Backend = (*FS)(nil)
