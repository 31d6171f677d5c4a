// Package syntax implements the pure string rules that govern how paths are
// parsed, joined, and compared.
//
// A Flavor bundles one set of rules: the separator, the case-comparison rule,
// and how roots (including drives and UNC shares) are recognized. Flavors are
// stateless values; every function in this package is pure and total over all
// string inputs. Malformed input never produces an error, only an unusual but
// well-defined parse.
//
// Two flavors are provided:
//
//   - Posix: single '/' separator, case-sensitive comparison, a leading '/'
//     root. Exactly two leading separators are preserved as a distinct root
//     ("//"); three or more collapse to one.
//   - Windows: '\' separator with '/' accepted as an alternate, case-folded
//     comparison, drive-letter roots ("c:", "c:\") and UNC share roots
//     ("\\host\share\").
package syntax

// A Flavor describes the syntactic rules used to parse and render one style
// of path string. Implementations must be stateless: the same input always
// parses and normalizes identically.
type Flavor interface {
	// Separator returns the canonical separator byte.
	Separator() byte

	// AltSeparator returns the accepted alternate separator byte,
	// or 0 if the flavor has none.
	AltSeparator() byte

	// Split parses s into its root and its meaningful segments.
	// The root is "" for relative paths. Empty segments and "." segments
	// are dropped; ".." segments are kept.
	//
	// Rendering root followed by the segments joined with Separator
	// reproduces the canonical form of s.
	Split(s string) (root string, parts []string)

	// Join concatenates path fragments under the flavor's join rule.
	// A later fragment that is anchored (absolute, or carrying a drive)
	// discards what came before it. Empty fragments are ignored.
	Join(fragments ...string) string

	// NormCase returns the canonical comparison form of s. Two path
	// strings denote the same path under the flavor iff their NormCase
	// forms are byte-equal.
	NormCase(s string) string

	// IsAbsolute reports whether a root returned by Split anchors a
	// path absolutely.
	IsAbsolute(root string) bool
}

// Posix is the flavor used by POSIX-style paths.
var Posix Flavor = posixFlavor{}

// Windows is the flavor used by Windows-style paths.
var Windows Flavor = windowsFlavor{}
