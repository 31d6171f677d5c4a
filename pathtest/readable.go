package pathtest

import (
	"bytes"
	"errors"
	"testing"

	"github.com/vpath-go/vpath"
	"github.com/vpath-go/vpath/syntax"
)

// seed builds the hierarchy the read tests assume:
//
//	/base
//	 |-- dirA          (empty)
//	 |-- dirB
//	 |    `-- fileB
//	 `-- fileA
func seed(t *testing.T, backend vpath.Backend) *vpath.RWPath {
	t.Helper()
	base := vpath.NewRWPath(backend, syntax.Posix, "/base")
	for _, dir := range []*vpath.RWPath{base, base.Join("dirA"), base.Join("dirB")} {
		if err := dir.MkdirAll(); err != nil {
			t.Fatalf("MkdirAll(%s): setup failed: %v", dir, err)
		}
	}
	if err := base.Join("fileA").WriteBytes([]byte("this is file A\n")); err != nil {
		t.Fatalf("WriteBytes(fileA): setup failed: %v", err)
	}
	if err := base.Join("dirB", "fileB").WriteBytes([]byte("this is file B\n")); err != nil {
		t.Fatalf("WriteBytes(dirB/fileB): setup failed: %v", err)
	}
	return base
}

func testReadable(t *testing.T, backend vpath.Backend, _ Config) {
	base := seed(t, backend)

	t.Run("ReadBytes", func(t *testing.T) {
		data, err := base.Join("fileA").ReadBytes()
		if err != nil {
			t.Fatalf("ReadBytes(fileA) error = %v", err)
		}
		if !bytes.Equal(data, []byte("this is file A\n")) {
			t.Errorf("ReadBytes(fileA) = %q, want %q", data, "this is file A\n")
		}
	})

	t.Run("OpenDirectory", func(t *testing.T) {
		if _, err := base.Join("dirA").Open(); !errors.Is(err, vpath.ErrIsDirectory) {
			t.Errorf("Open(dirA) error = %v, want ErrIsDirectory", err)
		}
	})

	t.Run("OpenNotExist", func(t *testing.T) {
		if _, err := base.Join("missing").Open(); !errors.Is(err, vpath.ErrNotExist) {
			t.Errorf("Open(missing) error = %v, want ErrNotExist", err)
		}
	})

	t.Run("IterDir", func(t *testing.T) {
		children, err := base.IterDir()
		if err != nil {
			t.Fatalf("IterDir(base) error = %v", err)
		}
		got := make(map[string]bool, len(children))
		for _, child := range children {
			got[child.Name()] = true
		}
		for _, want := range []string{"dirA", "dirB", "fileA"} {
			if !got[want] {
				t.Errorf("IterDir(base) missing %q (got %v)", want, got)
			}
		}
		if len(children) != 3 {
			t.Errorf("IterDir(base) returned %d entries, want 3", len(children))
		}
	})

	t.Run("IterDirFile", func(t *testing.T) {
		if _, err := base.Join("fileA").IterDir(); !errors.Is(err, vpath.ErrNotDirectory) {
			t.Errorf("IterDir(fileA) error = %v, want ErrNotDirectory", err)
		}
	})

	t.Run("IterDirNotExist", func(t *testing.T) {
		if _, err := base.Join("missing").IterDir(); !errors.Is(err, vpath.ErrNotExist) {
			t.Errorf("IterDir(missing) error = %v, want ErrNotExist", err)
		}
	})

	t.Run("Info", func(t *testing.T) {
		checks := []struct {
			path    *vpath.RWPath
			isDir   bool
			isFile  bool
			present bool
		}{
			{base.Join("dirA"), true, false, true},
			{base.Join("fileA"), false, true, true},
			{base.Join("missing"), false, false, false},
		}
		for _, c := range checks {
			info := c.path.Info()
			if got, err := info.Exists(true); err != nil || got != c.present {
				t.Errorf("Info(%s).Exists = %v, %v; want %v", c.path, got, err, c.present)
			}
			if got, err := info.IsDir(true); err != nil || got != c.isDir {
				t.Errorf("Info(%s).IsDir = %v, %v; want %v", c.path, got, err, c.isDir)
			}
			if got, err := info.IsFile(true); err != nil || got != c.isFile {
				t.Errorf("Info(%s).IsFile = %v, %v; want %v", c.path, got, err, c.isFile)
			}
		}
	})
}
