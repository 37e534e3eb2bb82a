package toolconfig

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/kunalshah912/aapt2-core/internal/cerrors"
)

// PackageIDs maps package names to their 8-bit package ID, loaded from an
// optional packageids.toml (SPEC_FULL.md §3/§4.3). It supplements, never
// replaces, the compilation context's single default package ID.
type PackageIDs struct {
	byName map[string]uint8
}

type packageIDsFile struct {
	Packages map[string]int `toml:"packages"`
}

// LoadPackageIDs reads and parses path as TOML. A missing file yields an
// empty PackageIDs rather than an error, matching LoadKDL's treatment of
// an absent config.
func LoadPackageIDs(path string) (*PackageIDs, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &PackageIDs{byName: map[string]uint8{}}, nil
	}
	if err != nil {
		return nil, cerrors.New(cerrors.KindConfig, "read package id map", err)
	}

	var f packageIDsFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, cerrors.New(cerrors.KindConfig, "parse package id map", err)
	}

	byName := make(map[string]uint8, len(f.Packages))
	for name, id := range f.Packages {
		if id < 0 || id > 0xff {
			return nil, cerrors.New(cerrors.KindConfig, "parse package id map",
				fmt.Errorf("package %q: id %d out of range 0-255", name, id))
		}
		byName[name] = uint8(id)
	}
	return &PackageIDs{byName: byName}, nil
}

// Lookup resolves a package name to its configured ID, falling back to
// defaultID when the name is absent from the map (SPEC_FULL.md §4.3).
func (p *PackageIDs) Lookup(name string, defaultID uint8) uint8 {
	if p == nil {
		return defaultID
	}
	if id, ok := p.byName[name]; ok {
		return id
	}
	return defaultID
}
