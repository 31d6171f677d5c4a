package vpath_test

import (
	"slices"
	"testing"

	"github.com/vpath-go/vpath"
	"github.com/vpath-go/vpath/memfs"
	"github.com/vpath-go/vpath/syntax"
)

// newWalkRoot populates a store with the traversal fixture:
//
//	/base/TEST1
//	 |-- SUB1
//	 |    |-- SUB11    (empty)
//	 |    `-- tmp2
//	 |-- SUB2
//	 |    `-- tmp3
//	 `-- tmp1
func newWalkRoot(t *testing.T) *vpath.ReadPath {
	t.Helper()
	store := memfs.New()
	store.PutDir("/")
	store.PutDir("/base")
	store.PutDir("/base/TEST1")
	store.PutDir("/base/TEST1/SUB1")
	store.PutDir("/base/TEST1/SUB1/SUB11")
	store.PutDir("/base/TEST1/SUB2")
	store.PutDir("/base/TEST2")
	store.PutFile("/base/TEST1/tmp1", []byte("this is tmp1\n"))
	store.PutFile("/base/TEST1/SUB1/tmp2", []byte("this is tmp2\n"))
	store.PutFile("/base/TEST1/SUB2/tmp3", []byte("this is tmp3\n"))
	store.PutFile("/base/TEST2/tmp4", []byte("this is tmp4\n"))
	return vpath.NewReadPath(store, syntax.Posix, "/base", "TEST1")
}

func TestWalkTopDown(t *testing.T) {
	root := newWalkRoot(t)

	type visit struct {
		dir   string
		dirs  []string
		files []string
	}
	var visits []visit
	for entry, err := range root.Walk() {
		if err != nil {
			t.Fatalf("Walk yielded error for %s: %v", entry.Dir, err)
		}
		visits = append(visits, visit{entry.Dir.String(), entry.Dirs, entry.Files})
	}

	want := []visit{
		{"/base/TEST1", []string{"SUB1", "SUB2"}, []string{"tmp1"}},
		{"/base/TEST1/SUB1", []string{"SUB11"}, []string{"tmp2"}},
		{"/base/TEST1/SUB1/SUB11", nil, nil},
		{"/base/TEST1/SUB2", nil, []string{"tmp3"}},
	}
	if len(visits) != len(want) {
		t.Fatalf("Walk visited %d directories, want %d: %v", len(visits), len(want), visits)
	}
	for i, w := range want {
		if visits[i].dir != w.dir || !slices.Equal(visits[i].dirs, w.dirs) || !slices.Equal(visits[i].files, w.files) {
			t.Errorf("visit %d = %+v, want %+v", i, visits[i], w)
		}
	}
}

// TestWalkRestart verifies every call starts a fresh traversal.
func TestWalkRestart(t *testing.T) {
	root := newWalkRoot(t)
	for range 2 {
		count := 0
		for _, err := range root.Walk() {
			if err != nil {
				t.Fatalf("Walk yielded error: %v", err)
			}
			count++
		}
		if count != 4 {
			t.Errorf("Walk visited %d directories, want 4", count)
		}
	}
}

// TestWalkEarlyStop verifies a traversal can be abandoned mid-flight.
func TestWalkEarlyStop(t *testing.T) {
	root := newWalkRoot(t)
	count := 0
	for _, err := range root.Walk() {
		if err != nil {
			t.Fatalf("Walk yielded error: %v", err)
		}
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("walked %d entries after break, want 2", count)
	}
}

func TestWalkMissingRoot(t *testing.T) {
	root := newWalkRoot(t)
	yields := 0
	for _, err := range root.Join("missing").Walk() {
		yields++
		if err == nil {
			t.Error("Walk of missing root should yield an error entry")
		}
	}
	if yields != 1 {
		t.Errorf("Walk of missing root yielded %d entries, want 1", yields)
	}
}
