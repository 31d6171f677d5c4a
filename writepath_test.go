package vpath_test

import (
	"errors"
	"testing"

	"github.com/vpath-go/vpath"
	"github.com/vpath-go/vpath/memfs"
	"github.com/vpath-go/vpath/syntax"
)

func newWriteBase(t *testing.T) (*memfs.Store, *vpath.WritePath) {
	t.Helper()
	store := memfs.New()
	seedStore(store)
	return store, vpath.NewWritePath(store, syntax.Posix, "/base")
}

func TestOpenWrite(t *testing.T) {
	store, base := newWriteBase(t)

	w, err := base.Join("new.txt").OpenWrite()
	if err != nil {
		t.Fatalf("OpenWrite(new.txt) error = %v", err)
	}
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("Write error = %v", err)
	}

	// Content is published at Close, not before.
	read := vpath.NewReadPath(store, syntax.Posix, "/base/new.txt")
	if data, err := read.ReadBytes(); err != nil || len(data) != 0 {
		t.Errorf("before Close: ReadBytes = %q, %v; want empty", data, err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close error = %v", err)
	}
	data, err := vpath.NewReadPath(store, syntax.Posix, "/base/new.txt").ReadBytes()
	if err != nil || string(data) != "hello" {
		t.Errorf("after Close: ReadBytes = %q, %v; want hello", data, err)
	}
}

func TestOpenWriteErrors(t *testing.T) {
	_, base := newWriteBase(t)

	if _, err := base.Join("dirA").OpenWrite(); !errors.Is(err, vpath.ErrIsDirectory) {
		t.Errorf("OpenWrite(dirA) error = %v, want ErrIsDirectory", err)
	}
	if _, err := base.Join("nope", "file").OpenWrite(); !errors.Is(err, vpath.ErrNotExist) {
		t.Errorf("OpenWrite(nope/file) error = %v, want ErrNotExist", err)
	}
}

func TestMkdir(t *testing.T) {
	store, base := newWriteBase(t)

	p := base.Join("dirNew")
	if err := p.Mkdir(); err != nil {
		t.Fatalf("Mkdir(dirNew) error = %v", err)
	}

	children, err := vpath.NewReadPath(store, syntax.Posix, "/base").IterDir()
	if err != nil {
		t.Fatalf("IterDir(base) error = %v", err)
	}
	count := 0
	for _, child := range children {
		if child.Name() == "dirNew" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("base listing contains dirNew %d times, want exactly once", count)
	}
	isDir, err := vpath.NewReadPath(store, syntax.Posix, "/base/dirNew").Info().IsDir(true)
	if err != nil || !isDir {
		t.Errorf("Info(dirNew).IsDir = %v, %v; want true", isDir, err)
	}
}

func TestMkdirErrors(t *testing.T) {
	_, base := newWriteBase(t)

	if err := base.Join("dirA").Mkdir(); !errors.Is(err, vpath.ErrExist) {
		t.Errorf("Mkdir(dirA) error = %v, want ErrExist", err)
	}
	if err := base.Join("fileA").Mkdir(); !errors.Is(err, vpath.ErrExist) {
		t.Errorf("Mkdir(fileA) error = %v, want ErrExist", err)
	}

	deep := base.Join("deep", "deeper")
	if err := deep.Mkdir(); !errors.Is(err, vpath.ErrNotExist) {
		t.Errorf("Mkdir(deep/deeper) error = %v, want ErrNotExist", err)
	}
	// The same call succeeds once the parent exists.
	if err := base.Join("deep").Mkdir(); err != nil {
		t.Fatalf("Mkdir(deep) error = %v", err)
	}
	if err := deep.Mkdir(); err != nil {
		t.Fatalf("Mkdir(deep/deeper) after parent error = %v", err)
	}
}

func TestMkdirAll(t *testing.T) {
	store, base := newWriteBase(t)

	p := base.Join("x", "y", "z")
	if err := p.MkdirAll(); err != nil {
		t.Fatalf("MkdirAll error = %v", err)
	}
	// Idempotent on existing directories.
	if err := p.MkdirAll(); err != nil {
		t.Fatalf("repeat MkdirAll error = %v", err)
	}
	isDir, err := vpath.NewReadPath(store, syntax.Posix, "/base/x/y/z").Info().IsDir(true)
	if err != nil || !isDir {
		t.Errorf("Info(x/y/z).IsDir = %v, %v; want true", isDir, err)
	}
}

func TestSymlinkToUnsupported(t *testing.T) {
	_, base := newWriteBase(t)
	if err := base.Join("link").SymlinkTo("/base/fileA", false); !errors.Is(err, vpath.ErrUnsupported) {
		t.Errorf("SymlinkTo error = %v, want ErrUnsupported", err)
	}
}
