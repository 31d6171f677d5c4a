// Package vpath provides a layered path abstraction: a pure,
// storage-independent path value beneath capability-restricted path kinds
// that delegate to pluggable storage backends.
//
// # Design Philosophy
//
// The package follows these principles:
//
//   - Syntax before storage: Path parses, joins, and compares path strings
//     under a syntax.Flavor without ever touching a backend.
//   - Capabilities as types: ReadPath, WritePath, and RWPath expose only
//     the operations their backend capability supports. A path over a
//     read-only backend has no write methods to call.
//   - Pluggable storage: backends implement small interfaces (ReadBackend,
//     WriteBackend) over rendered path strings; code written against the
//     path kinds runs unchanged over any backend.
//   - Stdlib error interop: backends fail with *fs.PathError values
//     wrapping the package sentinels, so errors.Is works uniformly.
//
// # Path Kinds
//
//   - Path: the pure value. Parts, Name, Suffix, Parent, Join, WithName,
//     RelativeTo, Match, and equality under the flavor's case rule.
//   - ReadPath: Path plus Open, ReadBytes, IterDir, Walk, Glob, ReadLink,
//     and the Info status cache.
//   - WritePath: Path plus OpenWrite, WriteBytes, Mkdir, MkdirAll,
//     SymlinkTo.
//   - RWPath: both capability sets over one shared backend, narrowable
//     with ReadOnly and WriteOnly.
//
// # Usage Example
//
//	store := memfs.New()
//	root := vpath.NewRWPath(store, syntax.Posix, "/data")
//	if err := root.MkdirAll(); err != nil {
//	    return err
//	}
//	if err := root.Join("hello.txt").WriteBytes([]byte("hi")); err != nil {
//	    return err
//	}
//	matches, err := root.Glob("*.txt")
//
// # Backend Implementations
//
// This package defines the backend contracts and the path kinds. Concrete
// backends live in subpackages:
//
//   - github.com/vpath-go/vpath/memfs - in-memory store, the reference
//     backend for tests
//   - github.com/vpath-go/vpath/billyfs - go-billy-backed stores (local
//     disk and in-memory, with symlinks)
//   - github.com/vpath-go/vpath/aferofs - afero-backed stores
//
// The pathtest package provides a conformance suite for validating
// third-party backends against the same contracts.
package vpath
