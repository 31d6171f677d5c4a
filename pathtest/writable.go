package pathtest

import (
	"bytes"
	"errors"
	"testing"

	"github.com/vpath-go/vpath"
)

func testWritable(t *testing.T, backend vpath.Backend, config Config) {
	base := seed(t, backend)

	t.Run("WriteThenRead", func(t *testing.T) {
		p := base.Join("new.txt")
		want := []byte("written through the abstraction")
		if err := p.WriteBytes(want); err != nil {
			t.Fatalf("WriteBytes(new.txt) error = %v", err)
		}
		got, err := p.ReadBytes()
		if err != nil {
			t.Fatalf("ReadBytes(new.txt) error = %v", err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("ReadBytes(new.txt) = %q, want %q", got, want)
		}
	})

	t.Run("VisibleAtClose", func(t *testing.T) {
		p := base.Join("late.txt")
		w, err := p.OpenWrite()
		if err != nil {
			t.Fatalf("OpenWrite(late.txt) error = %v", err)
		}
		if _, err := w.Write([]byte("late")); err != nil {
			t.Fatalf("Write error = %v", err)
		}
		if err := w.Close(); err != nil {
			t.Fatalf("Close error = %v", err)
		}
		got, err := p.ReadBytes()
		if err != nil {
			t.Fatalf("ReadBytes(late.txt) error = %v", err)
		}
		if string(got) != "late" {
			t.Errorf("ReadBytes(late.txt) = %q, want %q", got, "late")
		}
	})

	t.Run("OpenWriteDirectory", func(t *testing.T) {
		if _, err := base.Join("dirA").OpenWrite(); !errors.Is(err, vpath.ErrIsDirectory) {
			t.Errorf("OpenWrite(dirA) error = %v, want ErrIsDirectory", err)
		}
	})

	t.Run("OpenWriteNoParent", func(t *testing.T) {
		if _, err := base.Join("nope", "file").OpenWrite(); !errors.Is(err, vpath.ErrNotExist) {
			t.Errorf("OpenWrite(nope/file) error = %v, want ErrNotExist", err)
		}
	})

	t.Run("Mkdir", func(t *testing.T) {
		p := base.Join("dirNew")
		if err := p.Mkdir(); err != nil {
			t.Fatalf("Mkdir(dirNew) error = %v", err)
		}
		children, err := base.IterDir()
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
		if isDir, err := p.Info().IsDir(true); err != nil || !isDir {
			t.Errorf("Info(dirNew).IsDir = %v, %v; want true", isDir, err)
		}
	})

	t.Run("MkdirExists", func(t *testing.T) {
		if err := base.Join("dirA").Mkdir(); !errors.Is(err, vpath.ErrExist) {
			t.Errorf("Mkdir(dirA) error = %v, want ErrExist", err)
		}
	})

	t.Run("MkdirNoParent", func(t *testing.T) {
		p := base.Join("deep", "deeper")
		if err := p.Mkdir(); !errors.Is(err, vpath.ErrNotExist) {
			t.Errorf("Mkdir(deep/deeper) error = %v, want ErrNotExist", err)
		}
		// After creating the parent the same call succeeds and is
		// visible in the parent's listing.
		if err := base.Join("deep").Mkdir(); err != nil {
			t.Fatalf("Mkdir(deep) error = %v", err)
		}
		if err := p.Mkdir(); err != nil {
			t.Fatalf("Mkdir(deep/deeper) after parent error = %v", err)
		}
		children, err := base.Join("deep").IterDir()
		if err != nil {
			t.Fatalf("IterDir(deep) error = %v", err)
		}
		if len(children) != 1 || children[0].Name() != "deeper" {
			t.Errorf("IterDir(deep) = %v, want [deeper]", children)
		}
	})

	if !config.Symlinks {
		t.Run("SymlinkUnsupported", func(t *testing.T) {
			if err := base.Join("link").SymlinkTo("fileA", false); !errors.Is(err, vpath.ErrUnsupported) {
				t.Errorf("SymlinkTo error = %v, want ErrUnsupported", err)
			}
			if _, err := base.Join("fileA").ReadLink(); !errors.Is(err, vpath.ErrUnsupported) {
				t.Errorf("ReadLink error = %v, want ErrUnsupported", err)
			}
			if isLink, err := base.Join("fileA").Info().IsSymlink(); err != nil || isLink {
				t.Errorf("Info(fileA).IsSymlink = %v, %v; want false", isLink, err)
			}
		})
	}
}

func testSymlinks(t *testing.T, backend vpath.Backend) {
	base := seed(t, backend)

	link := base.Join("linkA")
	if err := link.SymlinkTo("/base/fileA", false); err != nil {
		t.Fatalf("SymlinkTo(linkA -> fileA) error = %v", err)
	}

	t.Run("IsSymlink", func(t *testing.T) {
		if isLink, err := link.Info().IsSymlink(); err != nil || !isLink {
			t.Errorf("Info(linkA).IsSymlink = %v, %v; want true", isLink, err)
		}
	})

	t.Run("ReadLink", func(t *testing.T) {
		// Some backends store the target verbatim, others rewrite it
		// into their own namespace; only the final segment is portable.
		target, err := link.ReadLink()
		if err != nil {
			t.Fatalf("ReadLink(linkA) error = %v", err)
		}
		if target.Name() != "fileA" {
			t.Errorf("ReadLink(linkA) = %s, want a path ending in fileA", target)
		}
	})

	t.Run("FollowStatus", func(t *testing.T) {
		followed, err := link.Info().IsFile(true)
		if err != nil || !followed {
			t.Errorf("Info(linkA).IsFile(follow) = %v, %v; want true", followed, err)
		}
	})
}
