// Package restable implements the ResourceTable data model (spec.md §3):
// a set of Packages, each holding named resource entries keyed by
// (type, name, config).
package restable

import (
	"sort"

	"github.com/kunalshah912/aapt2-core/internal/resconfig"
)

// Value is the payload of one resource entry. Kind distinguishes the
// three shapes the Values Compiler produces: a single string, a plural's
// per-quantity item set, or an array's per-index item set.
type Value struct {
	Kind  string // "string", "plural", "array", ...
	Item  string            // used when Kind == "string"
	Items map[string]string // quantity -> text for "plural", index -> text for "array"
}

// EntryKey identifies one resource entry within a package: its type
// ("string", "plural", "dimen", ...), its name, and its configuration.
type EntryKey struct {
	Type   string
	Name   string
	Config string // Configuration.Raw, used as the map key's comparable form
}

// Entry is one resource definition.
type Entry struct {
	Key          EntryKey
	Config       *resconfig.Configuration
	Value        Value
	Translatable bool
	// Weak marks an entry that may be silently overridden by a later
	// explicit definition of the same key — used for synthesized
	// pseudo-locale entries (spec.md §4.3 step 4).
	Weak bool
}

// Package is a named, optionally-ID'd set of resource entries.
type Package struct {
	Name string
	// ID is nil until assigned; the Values Compiler assigns the
	// context's default package ID to any package still unset at the
	// end of parsing (spec.md §3).
	ID      *uint8
	entries map[EntryKey]*Entry
	order   []EntryKey
}

func newPackage(name string) *Package {
	return &Package{Name: name, entries: make(map[EntryKey]*Entry)}
}

// Put inserts or overwrites an entry. A non-weak entry always wins; a
// weak entry already present is replaced by a newer entry of either
// kind, but a weak entry never replaces an existing strong entry
// (spec.md §8: "pseudo-localization ... never replaces an existing
// strong entry").
func (p *Package) Put(e *Entry) {
	if existing, ok := p.entries[e.Key]; ok {
		if e.Weak && !existing.Weak {
			return
		}
		p.entries[e.Key] = e
		return
	}
	p.entries[e.Key] = e
	p.order = append(p.order, e.Key)
}

// Entries returns every entry in insertion order.
func (p *Package) Entries() []*Entry {
	out := make([]*Entry, 0, len(p.order))
	for _, k := range p.order {
		out = append(out, p.entries[k])
	}
	return out
}

func (p *Package) Get(key EntryKey) (*Entry, bool) {
	e, ok := p.entries[key]
	return e, ok
}

// Table is the ResourceTable of spec.md §3.
type Table struct {
	packages map[string]*Package
	order    []string
}

func New() *Table {
	return &Table{packages: make(map[string]*Package)}
}

// EnsurePackage returns the package named name, creating it (with no ID
// assigned) if absent. Used both while parsing values XML and to
// guarantee the compilation package exists (spec.md §4.3 step 5).
func (t *Table) EnsurePackage(name string) *Package {
	if p, ok := t.packages[name]; ok {
		return p
	}
	p := newPackage(name)
	t.packages[name] = p
	t.order = append(t.order, name)
	return p
}

// Packages returns every package in first-seen order.
func (t *Table) Packages() []*Package {
	out := make([]*Package, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, t.packages[name])
	}
	return out
}

// AssignDefaultPackageIDs sets ID on every package that doesn't yet have
// one, to defaultID (spec.md §3, §4.3 step 5).
func (t *Table) AssignDefaultPackageIDs(defaultID uint8) {
	for _, name := range t.order {
		p := t.packages[name]
		if p.ID == nil {
			id := defaultID
			p.ID = &id
		}
	}
}

// SortedPackageNames returns package names sorted lexically, useful for
// deterministic test assertions independent of parse order.
func (t *Table) SortedPackageNames() []string {
	out := append([]string(nil), t.order...)
	sort.Strings(out)
	return out
}
