package pathtest

import (
	"errors"
	"slices"
	"testing"

	"github.com/vpath-go/vpath"
	"github.com/vpath-go/vpath/syntax"
)

// seedTree builds the hierarchy the traversal tests assume:
//
//	/walk
//	 |-- SUB1
//	 |    |-- SUB11    (empty)
//	 |    `-- tmp2
//	 |-- SUB2
//	 |    `-- tmp3
//	 `-- tmp1
func seedTree(t *testing.T, backend vpath.Backend) *vpath.RWPath {
	t.Helper()
	root := vpath.NewRWPath(backend, syntax.Posix, "/walk")
	dirs := []*vpath.RWPath{
		root,
		root.Join("SUB1"),
		root.Join("SUB1", "SUB11"),
		root.Join("SUB2"),
	}
	for _, dir := range dirs {
		if err := dir.MkdirAll(); err != nil {
			t.Fatalf("MkdirAll(%s): setup failed: %v", dir, err)
		}
	}
	files := map[string][]byte{
		"tmp1":      []byte("this is tmp1\n"),
		"SUB1/tmp2": []byte("this is tmp2\n"),
		"SUB2/tmp3": []byte("this is tmp3\n"),
	}
	for name, data := range files {
		if err := root.Join(name).WriteBytes(data); err != nil {
			t.Fatalf("WriteBytes(%s): setup failed: %v", name, err)
		}
	}
	return root
}

func testTraverse(t *testing.T, backend vpath.Backend) {
	root := seedTree(t, backend)

	t.Run("TopDown", func(t *testing.T) {
		var visited []string
		for entry, err := range root.Walk() {
			if err != nil {
				t.Fatalf("Walk yielded error for %s: %v", entry.Dir, err)
			}
			visited = append(visited, entry.Dir.String())
			switch entry.Dir.Name() {
			case "walk":
				if !slices.Equal(entry.Dirs, []string{"SUB1", "SUB2"}) {
					t.Errorf("Walk(%s) dirs = %v, want [SUB1 SUB2]", entry.Dir, entry.Dirs)
				}
				if !slices.Equal(entry.Files, []string{"tmp1"}) {
					t.Errorf("Walk(%s) files = %v, want [tmp1]", entry.Dir, entry.Files)
				}
			case "SUB11":
				if len(entry.Dirs) != 0 || len(entry.Files) != 0 {
					t.Errorf("Walk(SUB11) = %v/%v, want empty", entry.Dirs, entry.Files)
				}
			}
		}
		want := []string{"/walk", "/walk/SUB1", "/walk/SUB1/SUB11", "/walk/SUB2"}
		if !slices.Equal(visited, want) {
			t.Errorf("Walk visited %v, want %v", visited, want)
		}
	})

	t.Run("FreshTraversal", func(t *testing.T) {
		seq := root.Walk()
		for range 2 {
			count := 0
			for _, err := range seq {
				if err != nil {
					t.Fatalf("Walk yielded error: %v", err)
				}
				count++
			}
			if count != 4 {
				t.Errorf("Walk visited %d directories, want 4", count)
			}
		}
	})

	t.Run("MissingRoot", func(t *testing.T) {
		for entry, err := range root.Join("missing").Walk() {
			if !errors.Is(err, vpath.ErrNotExist) {
				t.Errorf("Walk(missing) yielded (%v, %v), want ErrNotExist", entry.Dir, err)
			}
		}
	})
}

func testGlob(t *testing.T, backend vpath.Backend) {
	base := seed(t, backend)

	t.Run("Wildcard", func(t *testing.T) {
		matches, err := base.Glob("dir*")
		if err != nil {
			t.Fatalf("Glob(dir*) error = %v", err)
		}
		if got := pathStrings(matches); !slices.Equal(got, []string{"/base/dirA", "/base/dirB"}) {
			t.Errorf("Glob(dir*) = %v, want [/base/dirA /base/dirB]", got)
		}
	})

	t.Run("CaseSensitive", func(t *testing.T) {
		// The backend is addressed through the POSIX flavor here, so
		// matching is case-sensitive regardless of the backend.
		matches, err := base.Glob("FILEa")
		if err != nil {
			t.Fatalf("Glob(FILEa) error = %v", err)
		}
		if len(matches) != 0 {
			t.Errorf("Glob(FILEa) = %v, want empty", pathStrings(matches))
		}
	})

	t.Run("NestedSegments", func(t *testing.T) {
		matches, err := base.Glob("dirB/file?")
		if err != nil {
			t.Fatalf("Glob(dirB/file?) error = %v", err)
		}
		if got := pathStrings(matches); !slices.Equal(got, []string{"/base/dirB/fileB"}) {
			t.Errorf("Glob(dirB/file?) = %v, want [/base/dirB/fileB]", got)
		}
	})

	t.Run("MissingRoot", func(t *testing.T) {
		matches, err := base.Join("missing").Glob("*")
		if err != nil {
			t.Fatalf("Glob under missing root error = %v, want nil", err)
		}
		if len(matches) != 0 {
			t.Errorf("Glob under missing root = %v, want empty", pathStrings(matches))
		}
	})

	t.Run("BadPattern", func(t *testing.T) {
		if _, err := base.Glob("fi[le"); !errors.Is(err, vpath.ErrBadPattern) {
			t.Errorf("Glob(fi[le) error = %v, want ErrBadPattern", err)
		}
	})
}

func pathStrings(paths []*vpath.RWPath) []string {
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = p.String()
	}
	slices.Sort(names)
	return names
}
