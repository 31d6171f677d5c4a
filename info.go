package vpath

// Info is a per-path-instance, lazily populated view of what the path
// denotes in its backend. Each follow-symlinks variant is queried from the
// backend at most once and then served from the cache; a fresh path
// instance always re-queries.
//
// Info is not shared between instances: deriving a new path yields a new,
// empty cache.
type Info struct {
	backend  ReadBackend
	name     string
	follow   *Status
	noFollow *Status
}

func newInfo(backend ReadBackend, name string) *Info {
	return &Info{backend: backend, name: name}
}

func (i *Info) status(followSymlinks bool) (Status, error) {
	cache := &i.noFollow
	if followSymlinks {
		cache = &i.follow
	}
	if *cache == nil {
		st, err := i.backend.QueryStatus(i.name, followSymlinks)
		if err != nil {
			return Status{}, err
		}
		*cache = &st
	}
	return **cache, nil
}

// Exists reports whether the path denotes anything.
func (i *Info) Exists(followSymlinks bool) (bool, error) {
	st, err := i.status(followSymlinks)
	return st.Exists, err
}

// IsDir reports whether the path denotes a directory.
func (i *Info) IsDir(followSymlinks bool) (bool, error) {
	st, err := i.status(followSymlinks)
	return st.IsDir, err
}

// IsFile reports whether the path denotes a regular file.
func (i *Info) IsFile(followSymlinks bool) (bool, error) {
	st, err := i.status(followSymlinks)
	return st.IsFile, err
}

// IsSymlink reports whether the path denotes a symbolic link. Backends
// without symlink modeling report false.
func (i *Info) IsSymlink() (bool, error) {
	st, err := i.status(false)
	return st.IsSymlink, err
}
