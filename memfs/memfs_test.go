package memfs

import (
	"errors"
	"io"
	"slices"
	"testing"

	"github.com/vpath-go/vpath"
	"github.com/vpath-go/vpath/syntax"
)

func seeded() *Store {
	s := New()
	s.PutDir("/")
	s.PutDir("/base")
	s.PutDir("/base/dirA")
	s.PutFile("/base/fileA", []byte("this is file A\n"))
	return s
}

func TestQueryStatus(t *testing.T) {
	s := seeded()
	tests := []struct {
		name string
		want vpath.Status
	}{
		{"/base", vpath.Status{Exists: true, IsDir: true}},
		{"/base/fileA", vpath.Status{Exists: true, IsFile: true}},
		{"/base/missing", vpath.Status{}},
		// Trailing separators canonicalize away.
		{"/base/dirA/", vpath.Status{Exists: true, IsDir: true}},
	}
	for _, tt := range tests {
		got, err := s.QueryStatus(tt.name, true)
		if err != nil {
			t.Fatalf("QueryStatus(%q) error = %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("QueryStatus(%q) = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestOpenRead(t *testing.T) {
	s := seeded()

	r, err := s.OpenRead("/base/fileA")
	if err != nil {
		t.Fatalf("OpenRead error = %v", err)
	}
	data, err := io.ReadAll(r)
	_ = r.Close()
	if err != nil || string(data) != "this is file A\n" {
		t.Errorf("read = %q, %v", data, err)
	}

	if _, err := s.OpenRead("/base/dirA"); !errors.Is(err, vpath.ErrIsDirectory) {
		t.Errorf("OpenRead(dir) error = %v, want ErrIsDirectory", err)
	}
	if _, err := s.OpenRead("/base/missing"); !errors.Is(err, vpath.ErrNotExist) {
		t.Errorf("OpenRead(missing) error = %v, want ErrNotExist", err)
	}
}

func TestListChildren(t *testing.T) {
	s := seeded()

	names, err := s.ListChildren("/base")
	if err != nil {
		t.Fatalf("ListChildren error = %v", err)
	}
	if !slices.Equal(names, []string{"dirA", "fileA"}) {
		t.Errorf("ListChildren(/base) = %v, want [dirA fileA]", names)
	}

	if _, err := s.ListChildren("/base/fileA"); !errors.Is(err, vpath.ErrNotDirectory) {
		t.Errorf("ListChildren(file) error = %v, want ErrNotDirectory", err)
	}
	if _, err := s.ListChildren("/base/missing"); !errors.Is(err, vpath.ErrNotExist) {
		t.Errorf("ListChildren(missing) error = %v, want ErrNotExist", err)
	}
}

func TestOpenWritePublishesAtClose(t *testing.T) {
	s := seeded()

	w, err := s.OpenWrite("/base/new")
	if err != nil {
		t.Fatalf("OpenWrite error = %v", err)
	}
	// The entry is linked into the parent immediately.
	names, err := s.ListChildren("/base")
	if err != nil || !slices.Contains(names, "new") {
		t.Errorf("parent listing before Close = %v, %v; want to contain new", names, err)
	}
	if _, err := w.Write([]byte("payload")); err != nil {
		t.Fatalf("Write error = %v", err)
	}
	if data := s.files[s.key("/base/new")]; len(data) != 0 {
		t.Errorf("content visible before Close: %q", data)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close error = %v", err)
	}
	if data := s.files[s.key("/base/new")]; string(data) != "payload" {
		t.Errorf("content after Close = %q, want payload", data)
	}

	// Writes after Close fail.
	if _, err := w.Write([]byte("x")); err == nil {
		t.Error("Write after Close should fail")
	}
}

func TestOpenWriteErrors(t *testing.T) {
	s := seeded()
	if _, err := s.OpenWrite("/base/dirA"); !errors.Is(err, vpath.ErrIsDirectory) {
		t.Errorf("OpenWrite(dir) error = %v, want ErrIsDirectory", err)
	}
	if _, err := s.OpenWrite("/nope/file"); !errors.Is(err, vpath.ErrNotExist) {
		t.Errorf("OpenWrite without parent error = %v, want ErrNotExist", err)
	}
}

func TestMakeDirectory(t *testing.T) {
	s := seeded()

	if err := s.MakeDirectory("/base/dirB"); err != nil {
		t.Fatalf("MakeDirectory error = %v", err)
	}
	names, _ := s.ListChildren("/base")
	if !slices.Contains(names, "dirB") {
		t.Errorf("parent listing = %v, want to contain dirB", names)
	}

	if err := s.MakeDirectory("/base/dirA"); !errors.Is(err, vpath.ErrExist) {
		t.Errorf("MakeDirectory(existing dir) error = %v, want ErrExist", err)
	}
	if err := s.MakeDirectory("/base/fileA"); !errors.Is(err, vpath.ErrExist) {
		t.Errorf("MakeDirectory(existing file) error = %v, want ErrExist", err)
	}
	if err := s.MakeDirectory("/nope/child"); !errors.Is(err, vpath.ErrNotExist) {
		t.Errorf("MakeDirectory without parent error = %v, want ErrNotExist", err)
	}

	// A root is its own parent and needs no registration.
	empty := New()
	if err := empty.MakeDirectory("/"); err != nil {
		t.Errorf("MakeDirectory(/) on empty store error = %v", err)
	}
}

// TestExclusiveMappings verifies a path never appears as both a file and
// a directory.
func TestExclusiveMappings(t *testing.T) {
	s := seeded()
	for key := range s.files {
		if _, ok := s.dirs[key]; ok {
			t.Errorf("%q present in both mappings", key)
		}
	}
}

func TestClear(t *testing.T) {
	s := seeded()
	s.Clear()
	if st, _ := s.QueryStatus("/base", true); st.Exists {
		t.Error("store should be empty after Clear")
	}
	if _, err := s.ListChildren("/"); !errors.Is(err, vpath.ErrNotExist) {
		t.Errorf("ListChildren(/) after Clear error = %v, want ErrNotExist", err)
	}
}

func TestSymlinksUnsupported(t *testing.T) {
	s := seeded()
	if _, err := s.ReadLink("/base/fileA"); !errors.Is(err, vpath.ErrUnsupported) {
		t.Errorf("ReadLink error = %v, want ErrUnsupported", err)
	}
	if err := s.MakeSymlink("/base/link", "/base/fileA", false); !errors.Is(err, vpath.ErrUnsupported) {
		t.Errorf("MakeSymlink error = %v, want ErrUnsupported", err)
	}
	st, _ := s.QueryStatus("/base/fileA", false)
	if st.IsSymlink {
		t.Error("IsSymlink should always be false")
	}
}

func TestWindowsFlavorKeys(t *testing.T) {
	s := New(WithFlavor(syntax.Windows))
	s.PutDir(`\`)
	s.PutDir(`\base`)
	s.PutFile(`\base\fileA`, []byte("X"))

	// Alternate separators canonicalize to the flavor's separator.
	st, _ := s.QueryStatus("/base/fileA", true)
	if !st.IsFile {
		t.Error("slash-form key should resolve to the seeded file")
	}
	names, err := s.ListChildren(`\base`)
	if err != nil || !slices.Equal(names, []string{"fileA"}) {
		t.Errorf("ListChildren = %v, %v", names, err)
	}
}
