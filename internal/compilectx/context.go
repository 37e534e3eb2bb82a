// Package compilectx carries the handful of cross-cutting settings every
// compiler in the pipeline needs — the compilation package, its default
// ID, and the feature switches from the CLI surface (spec.md §6) — so
// the Driver can build it once per run and hand it to whichever
// compiler a given input dispatches to.
package compilectx

import (
	"github.com/kunalshah912/aapt2-core/internal/diagnostics"
	"github.com/kunalshah912/aapt2-core/internal/toolconfig"
)

// Context is immutable once constructed; no compiler mutates it.
type Context struct {
	// Package is the compilation package name; may be empty.
	Package string
	// DefaultPackageID is assigned to any package left unset at the end
	// of a Values Compiler parse (spec.md §3).
	DefaultPackageID uint8
	PackageIDs       *toolconfig.PackageIDs

	PseudoLocalize bool
	Legacy         bool

	Diagnostics diagnostics.Sink
}

// ResolvePackageID returns the package ID to use for name: the
// packageids.toml override when present, otherwise DefaultPackageID
// (SPEC_FULL.md §4.3).
func (c *Context) ResolvePackageID(name string) uint8 {
	return c.PackageIDs.Lookup(name, c.DefaultPackageID)
}
