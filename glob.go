package vpath

import (
	"fmt"
	"path"
	"strings"

	"github.com/vpath-go/vpath/syntax"
)

// splitPattern parses a glob pattern into a root and segments under the
// flavor's split rule, validating every segment. A segment containing "**"
// must be exactly "**".
func splitPattern(flavor syntax.Flavor, pattern string) (string, []string, error) {
	root, segs := flavor.Split(pattern)
	for _, seg := range segs {
		if strings.Contains(seg, "**") {
			if seg != "**" {
				return "", nil, fmt.Errorf("%q: ** must be a whole segment: %w", pattern, ErrBadPattern)
			}
			continue
		}
		if _, err := path.Match(seg, ""); err != nil {
			return "", nil, fmt.Errorf("%q: %w", pattern, err)
		}
	}
	return root, segs, nil
}

// matchSegment matches one pattern segment against one entry name under
// the flavor's case rule.
func matchSegment(flavor syntax.Flavor, seg, name string) (bool, error) {
	return path.Match(flavor.NormCase(seg), flavor.NormCase(name))
}

// endsWithSeparator reports whether the raw pattern ends with the flavor's
// separator or alternate separator; such patterns match directories only.
func endsWithSeparator(flavor syntax.Flavor, pattern string) bool {
	if pattern == "" {
		return false
	}
	last := pattern[len(pattern)-1]
	return last == flavor.Separator() || (flavor.AltSeparator() != 0 && last == flavor.AltSeparator())
}

// globPaths is the matcher shared by every readable path kind. Pattern
// segments are expanded against directory listings, so results carry each
// entry's real name even when the flavor compares case-insensitively.
// A pattern that matches nothing, including one expanded under a
// non-existent base, yields an empty slice rather than an error.
func globPaths[P any](base Path, b ReadBackend, rebind func(Path) P, pattern string) ([]P, error) {
	flavor := base.Flavor()
	patRoot, segs, err := splitPattern(flavor, pattern)
	if err != nil {
		return nil, err
	}
	if patRoot != "" {
		return nil, fmt.Errorf("%q: anchored pattern: %w", pattern, ErrBadPattern)
	}
	if len(segs) == 0 {
		return nil, fmt.Errorf("empty pattern: %w", ErrBadPattern)
	}
	dirOnly := endsWithSeparator(flavor, pattern)

	cur := []Path{base}
	for i, seg := range segs {
		last := i == len(segs)-1
		var next []Path
		seen := make(map[string]bool)
		keep := func(p Path) {
			if key := p.Key(); !seen[key] {
				seen[key] = true
				next = append(next, p)
			}
		}
		for _, dir := range cur {
			if seg == "**" {
				for _, d := range descendantDirs(dir, b) {
					keep(d)
				}
				continue
			}
			names, err := b.ListChildren(dir.String())
			if err != nil {
				continue
			}
			for _, name := range names {
				ok, err := matchSegment(flavor, seg, name)
				if err != nil {
					return nil, fmt.Errorf("%q: %w", pattern, err)
				}
				if !ok {
					continue
				}
				child := dir.Join(name)
				if !last || dirOnly {
					st, err := b.QueryStatus(child.String(), true)
					if err != nil || !st.IsDir {
						continue
					}
				}
				keep(child)
			}
		}
		cur = next
		if len(cur) == 0 {
			break
		}
	}

	matches := make([]P, len(cur))
	for i, p := range cur {
		matches[i] = rebind(p)
	}
	return matches, nil
}

// descendantDirs returns start and every directory beneath it, top-down.
// A start that does not denote a directory contributes nothing. Symlinked
// directories are not entered, which keeps expansion over cyclic link
// structures finite.
func descendantDirs(start Path, b ReadBackend) []Path {
	st, err := b.QueryStatus(start.String(), true)
	if err != nil || !st.IsDir {
		return nil
	}
	dirs := []Path{start}
	for i := 0; i < len(dirs); i++ {
		names, err := b.ListChildren(dirs[i].String())
		if err != nil {
			continue
		}
		for _, name := range names {
			child := dirs[i].Join(name)
			st, err := b.QueryStatus(child.String(), true)
			if err != nil || !st.IsDir {
				continue
			}
			if lst, err := b.QueryStatus(child.String(), false); err == nil && lst.IsSymlink {
				continue
			}
			dirs = append(dirs, child)
		}
	}
	return dirs
}
