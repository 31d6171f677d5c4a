// Package aferofs provides vpath backends over afero filesystems.
//
// NewOS adapts the real filesystem, NewOSAt a BasePathFs-scoped view of
// it, and NewMemory afero's MemMapFs. Symlink operations are served
// through afero's optional capability interfaces (Lstater, Linker,
// LinkReader); filesystems without them fail with vpath.ErrUnsupported.
package aferofs

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/vpath-go/vpath"
)

// FS adapts an afero.Fs to the vpath backend contracts.
type FS struct {
	afs afero.Fs
}

// New adapts an arbitrary afero.Fs.
func New(afs afero.Fs) *FS {
	return &FS{afs: afs}
}

// NewOS creates a disk-backed filesystem over the process root.
func NewOS() *FS {
	return &FS{afs: afero.NewOsFs()}
}

// NewOSAt creates a disk-backed filesystem scoped to dir; paths given to
// the backend are resolved inside dir.
func NewOSAt(dir string) *FS {
	return &FS{afs: afero.NewBasePathFs(afero.NewOsFs(), dir)}
}

// NewMemory creates an in-memory filesystem. It is initially empty.
func NewMemory() *FS {
	return &FS{afs: afero.NewMemMapFs()}
}

// Unwrap returns the underlying afero.Fs.
func (b *FS) Unwrap() afero.Fs {
	return b.afs
}

func normalize(name string) string {
	return filepath.ToSlash(filepath.Clean(name))
}

// QueryStatus implements vpath.ReadBackend. When followSymlinks is false
// and the filesystem supports Lstat, the link itself is reported.
func (b *FS) QueryStatus(name string, followSymlinks bool) (vpath.Status, error) {
	name = normalize(name)
	var info fs.FileInfo
	var err error
	if lstater, ok := b.afs.(afero.Lstater); ok && !followSymlinks {
		info, _, err = lstater.LstatIfPossible(name)
	} else {
		info, err = b.afs.Stat(name)
	}
	if err != nil {
		if os.IsNotExist(err) {
			return vpath.Status{}, nil
		}
		return vpath.Status{}, err
	}
	return vpath.Status{
		Exists:    true,
		IsDir:     info.IsDir(),
		IsFile:    info.Mode().IsRegular(),
		IsSymlink: info.Mode()&fs.ModeSymlink != 0,
	}, nil
}

// OpenRead implements vpath.ReadBackend.
func (b *FS) OpenRead(name string) (io.ReadCloser, error) {
	name = normalize(name)
	info, err := b.afs.Stat(name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &fs.PathError{Op: "open", Path: name, Err: vpath.ErrNotExist}
		}
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "open", Path: name, Err: vpath.ErrIsDirectory}
	}
	return b.afs.Open(name)
}

// ListChildren implements vpath.ReadBackend.
func (b *FS) ListChildren(name string) ([]string, error) {
	name = normalize(name)
	info, err := b.afs.Stat(name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &fs.PathError{Op: "listdir", Path: name, Err: vpath.ErrNotExist}
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, &fs.PathError{Op: "listdir", Path: name, Err: vpath.ErrNotDirectory}
	}
	infos, err := afero.ReadDir(b.afs, name)
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
	reader, ok := b.afs.(afero.LinkReader)
	if !ok {
		return "", &fs.PathError{Op: "readlink", Path: name, Err: vpath.ErrUnsupported}
	}
	return reader.ReadlinkIfPossible(normalize(name))
}

// OpenWrite implements vpath.WriteBackend. MemMapFs creates missing
// parents implicitly, so the parent is checked first to preserve the
// backend contract.
func (b *FS) OpenWrite(name string) (io.WriteCloser, error) {
	name = normalize(name)
	if info, err := b.afs.Stat(name); err == nil && info.IsDir() {
		return nil, &fs.PathError{Op: "open", Path: name, Err: vpath.ErrIsDirectory}
	}
	if err := b.requireParent("open", name); err != nil {
		return nil, err
	}
	return b.afs.Create(name)
}

// MakeDirectory implements vpath.WriteBackend.
func (b *FS) MakeDirectory(name string) error {
	name = normalize(name)
	if _, err := b.afs.Stat(name); err == nil {
		return &fs.PathError{Op: "mkdir", Path: name, Err: vpath.ErrExist}
	}
	if err := b.requireParent("mkdir", name); err != nil {
		return err
	}
	return b.afs.Mkdir(name, 0o755)
}

// MakeSymlink implements vpath.WriteBackend. Afero does not distinguish
// directory links, so the hint is ignored.
func (b *FS) MakeSymlink(name, target string, _ bool) error {
	linker, ok := b.afs.(afero.Linker)
	if !ok {
		return &fs.PathError{Op: "symlink", Path: name, Err: vpath.ErrUnsupported}
	}
	return linker.SymlinkIfPossible(target, normalize(name))
}

func (b *FS) requireParent(op, name string) error {
	parent := filepath.Dir(name)
	if parent == "." || parent == "/" {
		return nil
	}
	info, err := b.afs.Stat(parent)
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
