// Package pathtest provides a conformance test suite for validating
// backend implementations against the vpath backend contracts.
//
// Backend packages import the suite and run it against a factory that
// returns a fresh, empty backend per invocation:
//
//	func TestMyBackend(t *testing.T) {
//	    pathtest.TestBackend(t, func() vpath.Backend {
//	        return mybackend.New()
//	    })
//	}
//
// The suite validates the contract, not backend-specific behavior: the
// error taxonomy for missing paths and type mismatches, visibility of
// written content at Close, directory listing consistency, traversal
// shape, and glob matching under both case rules. Backends that model
// symlinks opt in to the link tests through Config.
package pathtest

import (
	"testing"

	"github.com/vpath-go/vpath"
)

// Config describes backend behavior the suite must account for.
type Config struct {
	// Symlinks indicates the backend models symbolic links. When false,
	// the suite asserts link operations fail with vpath.ErrUnsupported;
	// when true, it exercises them.
	Symlinks bool
}

// TestBackend runs all conformance tests against backends produced by
// newBackend. Each call must return a fresh, empty backend; the suite
// creates and modifies entries.
func TestBackend(t *testing.T, newBackend func() vpath.Backend) {
	TestBackendWithConfig(t, newBackend, Config{})
}

// TestBackendWithConfig runs the conformance tests with behavior
// configuration.
func TestBackendWithConfig(t *testing.T, newBackend func() vpath.Backend, config Config) {
	t.Run("Readable", func(t *testing.T) {
		testReadable(t, newBackend(), config)
	})
	t.Run("Writable", func(t *testing.T) {
		testWritable(t, newBackend(), config)
	})
	t.Run("Traverse", func(t *testing.T) {
		testTraverse(t, newBackend())
	})
	t.Run("Glob", func(t *testing.T) {
		testGlob(t, newBackend())
	})
	if config.Symlinks {
		t.Run("Symlinks", func(t *testing.T) {
			testSymlinks(t, newBackend())
		})
	}
}
