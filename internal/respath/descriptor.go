// Package respath implements the Path Classifier (spec.md §4.1): turning
// a filesystem path into a ResourcePathDescriptor, or a parse-error
// reason, the same way pathutil converts between absolute and relative
// paths as the sole boundary between on-disk paths and internal models.
package respath

import (
	"strings"

	"github.com/kunalshah912/aapt2-core/internal/cerrors"
	"github.com/kunalshah912/aapt2-core/internal/resconfig"
)

// Descriptor is the ResourcePathDescriptor of spec.md §3.
type Descriptor struct {
	Source string

	TypeDir string
	Name    string
	// Extension is "", "xml", "png", "9.png", or any other literal
	// extension taken verbatim from the first-dot split.
	Extension string

	ConfigStr string
	Config    *resconfig.Configuration
}

// Classify parses source (already normalized to use "/" separators, see
// Normalize) into a Descriptor. Only the last two path components matter;
// everything before them is ignored, matching spec.md §4.1.
func Classify(source string) (*Descriptor, error) {
	parts := strings.Split(source, "/")
	// A leading, doubled or trailing "/" produces empty components; those
	// are dropped, and at least two real components must remain.
	var nonEmpty []string
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	if len(nonEmpty) < 2 {
		return nil, cerrors.New(cerrors.KindBadResourcePath, "classify",
			errBadPath(source)).WithSource(source)
	}

	dirToken := nonEmpty[len(nonEmpty)-2]
	filename := nonEmpty[len(nonEmpty)-1]

	typeDir, configStr := splitDirToken(dirToken)

	cfg, err := resconfig.Parse(configStr)
	if err != nil {
		return nil, cerrors.New(cerrors.KindInvalidConfiguration, "classify", err).WithSource(source)
	}

	name, ext := splitFilename(filename)

	return &Descriptor{
		Source:    source,
		TypeDir:   typeDir,
		Name:      name,
		Extension: ext,
		ConfigStr: configStr,
		Config:    cfg,
	}, nil
}

// splitDirToken splits the directory component on the first "-": left is
// type_dir, right is config_str ("" if there is no dash).
func splitDirToken(dirToken string) (typeDir, configStr string) {
	if idx := strings.Index(dirToken, "-"); idx >= 0 {
		return dirToken[:idx], dirToken[idx+1:]
	}
	return dirToken, ""
}

// splitFilename splits the filename on the FIRST ".": this is load-bearing
// for 9-patch classification — "foo.9.png" must yield name="foo",
// extension="9.png", not extension="png" (spec.md §4.1 step 3).
func splitFilename(filename string) (name, ext string) {
	if idx := strings.Index(filename, "."); idx >= 0 {
		return filename[:idx], filename[idx+1:]
	}
	return filename, ""
}

type errBadPath string

func (e errBadPath) Error() string { return "path has fewer than two components: " + string(e) }
