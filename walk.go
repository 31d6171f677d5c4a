package vpath

import (
	"iter"
	"slices"
)

// WalkEntry is one directory visited by Walk: the directory itself plus
// the basenames of its subdirectories and files.
type WalkEntry[P any] struct {
	Dir   P
	Dirs  []string
	Files []string
}

// WalkOption configures a traversal.
type WalkOption func(*walkConfig)

type walkConfig struct {
	followSymlinks bool
}

// WalkFollowSymlinks makes the traversal descend into symlinked
// directories. The default is to list them without entering, which keeps
// traversals over cyclic link structures finite.
func WalkFollowSymlinks() WalkOption {
	return func(c *walkConfig) { c.followSymlinks = true }
}

func newWalkConfig(opts []WalkOption) walkConfig {
	var cfg walkConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// walkSeq is the traversal shared by every readable path kind. rebind
// converts a derived Path value back into the caller's concrete kind.
// Directories whose listing fails are yielded with the error and skipped.
func walkSeq[P any](start Path, b ReadBackend, rebind func(Path) P, cfg walkConfig) iter.Seq2[WalkEntry[P], error] {
	return func(yield func(WalkEntry[P], error) bool) {
		stack := []Path{start}
		for len(stack) > 0 {
			dir := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			names, err := b.ListChildren(dir.String())
			if err != nil {
				if !yield(WalkEntry[P]{Dir: rebind(dir)}, err) {
					return
				}
				continue
			}
			slices.Sort(names)

			entry := WalkEntry[P]{Dir: rebind(dir)}
			var descend []Path
			for _, name := range names {
				child := dir.Join(name)
				st, err := b.QueryStatus(child.String(), true)
				if err != nil || !st.IsDir {
					entry.Files = append(entry.Files, name)
					continue
				}
				entry.Dirs = append(entry.Dirs, name)
				if !cfg.followSymlinks {
					lst, err := b.QueryStatus(child.String(), false)
					if err == nil && lst.IsSymlink {
						continue
					}
				}
				descend = append(descend, child)
			}
			if !yield(entry, nil) {
				return
			}
			for i := len(descend) - 1; i >= 0; i-- {
				stack = append(stack, descend[i])
			}
		}
	}
}
