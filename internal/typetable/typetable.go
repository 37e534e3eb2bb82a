// Package typetable backs the Driver's type_dir resolution (spec.md
// §4.8): a table mapping the directory token of a resource path to a
// known ResourceKind. The built-in table covers every standard Android
// resource type; SPEC_FULL.md §3 lets a deployment extend it with a
// JSON override, validated by the schema in schema.go before merging.
package typetable

// Kind distinguishes the handful of dispatch-relevant resource kinds.
// Every type_dir other than "values" is looked up here; "raw" forces the
// File Compiler regardless of extension, everything else ("Generic")
// dispatches purely on extension (xml / png / 9.png / other).
type Kind int

const (
	KindUnknown Kind = iota
	KindRaw
	KindGeneric
)

// Table is a resolved, queryable type_dir -> Kind mapping.
type Table struct {
	kinds map[string]Kind
}

// defaultEntries lists every type_dir the core recognizes out of the box.
// "raw" is the only one that forces a Kind other than Generic; "values"
// is intentionally absent because the Driver special-cases it before
// ever consulting the Table (spec.md §4.8).
var defaultEntries = []string{
	"raw",
	"layout", "drawable", "anim", "animator", "color", "interpolator",
	"menu", "mipmap", "xml", "font", "transition", "navigation",
}

// Default returns a Table seeded with every built-in Android resource
// type_dir.
func Default() *Table {
	t := &Table{kinds: make(map[string]Kind, len(defaultEntries))}
	for _, name := range defaultEntries {
		if name == "raw" {
			t.kinds[name] = KindRaw
			continue
		}
		t.kinds[name] = KindGeneric
	}
	return t
}

// Lookup resolves a type_dir to its Kind. The bool return is false when
// type_dir names no known resource type, which the Driver reports as
// InvalidFilePath (spec.md §7).
func (t *Table) Lookup(typeDir string) (Kind, bool) {
	k, ok := t.kinds[typeDir]
	return k, ok
}

// Names returns every known type_dir, used by the Suggestion Engine to
// find the closest match to an unrecognized type_dir.
func (t *Table) Names() []string {
	out := make([]string, 0, len(t.kinds))
	for name := range t.kinds {
		out = append(out, name)
	}
	return out
}

// Merge overlays extra entries onto t, used after validating a JSON
// override file. Later entries win on name collision.
func (t *Table) Merge(extra map[string]Kind) {
	for name, kind := range extra {
		t.kinds[name] = kind
	}
}
