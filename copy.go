package vpath

import "io"

// Copy copies the file or directory tree rooted at src into dst. The two
// paths may be bound to different backends; content moves through the
// abstract read and write operations only.
//
// Directories are created with MkdirAll, so copying into an existing tree
// merges rather than fails. Symlinks are copied as links when both
// backends model them; on backends that do not, Copy fails with the
// backend's ErrUnsupported.
func Copy(src *ReadPath, dst *WritePath) error {
	st, err := src.fs.QueryStatus(src.String(), false)
	if err != nil {
		return err
	}
	switch {
	case st.IsSymlink:
		target, err := src.fs.ReadLink(src.String())
		if err != nil {
			return err
		}
		tst, err := src.fs.QueryStatus(src.String(), true)
		if err != nil {
			return err
		}
		return dst.SymlinkTo(target, tst.IsDir)
	case st.IsDir:
		if err := dst.MkdirAll(); err != nil {
			return err
		}
		children, err := src.IterDir()
		if err != nil {
			return err
		}
		for _, child := range children {
			if err := Copy(child, dst.Join(child.Name())); err != nil {
				return err
			}
		}
		return nil
	default:
		return copyFile(src, dst)
	}
}

func copyFile(src *ReadPath, dst *WritePath) error {
	r, err := src.Open()
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()

	w, err := dst.OpenWrite()
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}
