package restable

import "github.com/kunalshah912/aapt2-core/internal/restable/restablepb"

// Marshal serializes t to the canonical protocol-buffer representation
// (spec.md §4.3 step 6).
func Marshal(t *Table) []byte {
	pb := &restablepb.ResourceTable{}
	for _, p := range t.Packages() {
		var id uint32
		if p.ID != nil {
			id = uint32(*p.ID)
		}
		pkg := restablepb.Package{ID: id, Name: p.Name}
		for _, e := range p.Entries() {
			pe := restablepb.Entry{
				Type:         e.Key.Type,
				Name:         e.Key.Name,
				Config:       e.Key.Config,
				Weak:         e.Weak,
				Translatable: e.Translatable,
			}
			switch e.Value.Kind {
			case "string":
				pe.Value = e.Value.Item
			case "plural", "array":
				pe.Items = e.Value.Items
			}
			pkg.Entries = append(pkg.Entries, pe)
		}
		pb.Packages = append(pb.Packages, pkg)
	}
	return restablepb.Marshal(pb)
}
