package vpath

import (
	"fmt"
	"strings"

	"github.com/vpath-go/vpath/syntax"
)

// Path is an immutable path value: a root plus an ordered sequence of
// segments, parsed under a fixed syntax.Flavor. Path carries no storage;
// it only supports derivation and comparison. Derivation operations return
// new values, never mutate.
//
// The zero value is the empty POSIX path.
type Path struct {
	flavor syntax.Flavor
	root   string
	parts  []string
}

// New builds a Path by joining fragments under flavor's join rule and
// parsing the result. Construction never fails; malformed input produces a
// degenerate but well-defined value.
func New(flavor syntax.Flavor, fragments ...string) Path {
	root, parts := flavor.Split(flavor.Join(fragments...))
	return Path{flavor: flavor, root: root, parts: parts}
}

// Posix builds a Path under the POSIX flavor.
func Posix(fragments ...string) Path {
	return New(syntax.Posix, fragments...)
}

// Windows builds a Path under the Windows flavor.
func Windows(fragments ...string) Path {
	return New(syntax.Windows, fragments...)
}

// Flavor returns the syntax flavor the path was parsed under.
func (p Path) Flavor() syntax.Flavor {
	if p.flavor == nil {
		return syntax.Posix
	}
	return p.flavor
}

// String renders the canonical form of the path. The empty path renders
// as "".
func (p Path) String() string {
	if len(p.parts) == 0 {
		return p.root
	}
	return p.root + strings.Join(p.parts, string(p.Flavor().Separator()))
}

// Root returns the path's root ("" for relative paths). Drive letters and
// UNC shares are part of the root.
func (p Path) Root() string { return p.root }

// Parts returns the path's components: the root, if any, followed by the
// segments. The returned slice is a copy.
func (p Path) Parts() []string {
	parts := make([]string, 0, len(p.parts)+1)
	if p.root != "" {
		parts = append(parts, p.root)
	}
	return append(parts, p.parts...)
}

// Name returns the final segment, or "" for a root or empty path.
func (p Path) Name() string {
	if len(p.parts) == 0 {
		return ""
	}
	return p.parts[len(p.parts)-1]
}

// Suffix returns the final segment's extension, including the dot.
// A name with no dot, or only a leading dot, has no suffix.
func (p Path) Suffix() string {
	name := p.Name()
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		return name[i:]
	}
	return ""
}

// Stem returns the final segment without its suffix.
func (p Path) Stem() string {
	name := p.Name()
	return name[:len(name)-len(p.Suffix())]
}

// Parent returns the path with its final segment dropped. The parent of a
// root, or of the empty path, is the path itself.
func (p Path) Parent() Path {
	if len(p.parts) == 0 {
		return p
	}
	return Path{flavor: p.flavor, root: p.root, parts: p.parts[:len(p.parts)-1]}
}

// Parents returns the path's ancestors, nearest first, ending at the root
// (or the empty path for relative paths). The path itself is not included.
func (p Path) Parents() []Path {
	parents := make([]Path, 0, len(p.parts))
	for cur := p; len(cur.parts) > 0; {
		cur = cur.Parent()
		parents = append(parents, cur)
	}
	return parents
}

// Join returns the path extended with the given fragments, applying the
// flavor's join rule. An anchored fragment replaces the path entirely.
func (p Path) Join(fragments ...string) Path {
	return New(p.Flavor(), append([]string{p.String()}, fragments...)...)
}

// WithName returns the path with its final segment replaced by name.
func (p Path) WithName(name string) Path {
	return p.Parent().Join(name)
}

// WithSuffix returns the path with the final segment's suffix replaced.
// An empty suffix removes the current one.
func (p Path) WithSuffix(suffix string) Path {
	return p.WithName(p.Stem() + suffix)
}

// IsAbsolute reports whether the path is anchored under its flavor.
func (p Path) IsAbsolute() bool {
	return p.Flavor().IsAbsolute(p.root)
}

// Key returns the path's comparison form under the flavor's case rule.
// Two paths of the same flavor are equal iff their keys are equal; Key is
// also suitable as a map key.
func (p Path) Key() string {
	return p.Flavor().NormCase(p.String())
}

// Equal reports whether other denotes the same path under the same flavor.
func (p Path) Equal(other Path) bool {
	return p.Flavor() == other.Flavor() && p.Key() == other.Key()
}

// RelativeTo returns the path's tail relative to base. It fails with
// ErrNotRelative when base is not a segment-wise prefix of the path under
// the flavor's case rule.
func (p Path) RelativeTo(base Path) (Path, error) {
	flavor := p.Flavor()
	norm := flavor.NormCase
	if norm(p.root) != norm(base.root) || len(base.parts) > len(p.parts) {
		return Path{}, fmt.Errorf("%q relative to %q: %w", p, base, ErrNotRelative)
	}
	for i, seg := range base.parts {
		if norm(seg) != norm(p.parts[i]) {
			return Path{}, fmt.Errorf("%q relative to %q: %w", p, base, ErrNotRelative)
		}
	}
	return Path{flavor: p.flavor, parts: p.parts[len(base.parts):]}, nil
}

// Match reports whether the path matches the glob pattern. Matching is
// purely syntactic: pattern segments are compared against the path's
// trailing segments under the flavor's case rule, with * and ? as
// segment-local wildcards. An anchored pattern must match the whole path.
func (p Path) Match(pattern string) (bool, error) {
	flavor := p.Flavor()
	patRoot, patParts, err := splitPattern(flavor, pattern)
	if err != nil {
		return false, err
	}
	if len(patParts) == 0 && patRoot == "" {
		return false, fmt.Errorf("empty pattern: %w", ErrBadPattern)
	}
	if patRoot != "" {
		if flavor.NormCase(patRoot) != flavor.NormCase(p.root) || len(patParts) != len(p.parts) {
			return false, nil
		}
	}
	if len(patParts) > len(p.parts) {
		return false, nil
	}
	tail := p.parts[len(p.parts)-len(patParts):]
	for i, seg := range patParts {
		ok, err := matchSegment(flavor, seg, tail[i])
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}
