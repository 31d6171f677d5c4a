package vpath_test

import (
	"errors"
	"io"
	"testing"

	"github.com/vpath-go/vpath"
	"github.com/vpath-go/vpath/memfs"
	"github.com/vpath-go/vpath/syntax"
)

// seedStore populates a store with the hierarchy the read tests assume:
//
//	/base
//	 |-- dirA          (empty)
//	 |-- dirB
//	 |    `-- fileB
//	 |-- dirC
//	 |    |-- dirD
//	 |    |    `-- fileD
//	 |    |-- fileC
//	 |    `-- novel.txt
//	 `-- fileA
func seedStore(store *memfs.Store) {
	store.PutDir("/")
	store.PutDir("/base")
	store.PutDir("/base/dirA")
	store.PutDir("/base/dirB")
	store.PutDir("/base/dirC")
	store.PutDir("/base/dirC/dirD")
	store.PutFile("/base/fileA", []byte("this is file A\n"))
	store.PutFile("/base/dirB/fileB", []byte("this is file B\n"))
	store.PutFile("/base/dirC/fileC", []byte("this is file C\n"))
	store.PutFile("/base/dirC/dirD/fileD", []byte("this is file D\n"))
	store.PutFile("/base/dirC/novel.txt", []byte("this is a novel\n"))
}

func newBase(t *testing.T) *vpath.ReadPath {
	t.Helper()
	store := memfs.New()
	seedStore(store)
	return vpath.NewReadPath(store, syntax.Posix, "/base")
}

func TestReadBytes(t *testing.T) {
	data, err := newBase(t).Join("fileA").ReadBytes()
	if err != nil {
		t.Fatalf("ReadBytes(fileA) error = %v", err)
	}
	if string(data) != "this is file A\n" {
		t.Errorf("ReadBytes(fileA) = %q", data)
	}
}

func TestOpen(t *testing.T) {
	base := newBase(t)

	r, err := base.Join("dirB", "fileB").Open()
	if err != nil {
		t.Fatalf("Open(dirB/fileB) error = %v", err)
	}
	data, err := io.ReadAll(r)
	if cerr := r.Close(); cerr != nil {
		t.Errorf("Close error = %v", cerr)
	}
	if err != nil || string(data) != "this is file B\n" {
		t.Errorf("read = %q, %v", data, err)
	}

	if _, err := base.Join("dirA").Open(); !errors.Is(err, vpath.ErrIsDirectory) {
		t.Errorf("Open(dirA) error = %v, want ErrIsDirectory", err)
	}
	if _, err := base.Join("missing").Open(); !errors.Is(err, vpath.ErrNotExist) {
		t.Errorf("Open(missing) error = %v, want ErrNotExist", err)
	}
}

func TestIterDir(t *testing.T) {
	base := newBase(t)

	children, err := base.IterDir()
	if err != nil {
		t.Fatalf("IterDir(base) error = %v", err)
	}
	got := make(map[string]int)
	for _, child := range children {
		got[child.String()]++
	}
	for _, want := range []string{"/base/dirA", "/base/dirB", "/base/dirC", "/base/fileA"} {
		if got[want] != 1 {
			t.Errorf("IterDir(base) contains %q %d times, want once", want, got[want])
		}
	}
	if len(children) != 4 {
		t.Errorf("IterDir(base) returned %d entries, want 4", len(children))
	}

	if _, err := base.Join("fileA").IterDir(); !errors.Is(err, vpath.ErrNotDirectory) {
		t.Errorf("IterDir(fileA) error = %v, want ErrNotDirectory", err)
	}
	if _, err := base.Join("missing").IterDir(); !errors.Is(err, vpath.ErrNotExist) {
		t.Errorf("IterDir(missing) error = %v, want ErrNotExist", err)
	}
}

func TestReadLinkUnsupported(t *testing.T) {
	if _, err := newBase(t).Join("fileA").ReadLink(); !errors.Is(err, vpath.ErrUnsupported) {
		t.Errorf("ReadLink error = %v, want ErrUnsupported", err)
	}
}

// TestDerivedKind verifies derivation keeps the backend binding.
func TestDerivedKind(t *testing.T) {
	base := newBase(t)
	p := base.Join("dirC").Parent().WithName("dirB").Join("fileB")
	data, err := p.ReadBytes()
	if err != nil {
		t.Fatalf("ReadBytes through derivations error = %v", err)
	}
	if string(data) != "this is file B\n" {
		t.Errorf("ReadBytes = %q", data)
	}
}

// TestSharedStore verifies independent instances over one store observe
// the same state.
func TestSharedStore(t *testing.T) {
	store := memfs.New()
	seedStore(store)

	a := vpath.NewReadPath(store, syntax.Posix, "/base/fileA")
	b := vpath.NewReadPath(store, syntax.Posix, "/base", "fileA")
	da, err := a.ReadBytes()
	if err != nil {
		t.Fatalf("ReadBytes error = %v", err)
	}
	db, err := b.ReadBytes()
	if err != nil {
		t.Fatalf("ReadBytes error = %v", err)
	}
	if string(da) != string(db) {
		t.Errorf("instances disagree: %q vs %q", da, db)
	}

	store.Clear()
	if _, err := vpath.NewReadPath(store, syntax.Posix, "/base/fileA").ReadBytes(); !errors.Is(err, vpath.ErrNotExist) {
		t.Errorf("after Clear error = %v, want ErrNotExist", err)
	}
}
