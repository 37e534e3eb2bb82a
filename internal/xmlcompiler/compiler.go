package xmlcompiler

import (
	"os"

	"github.com/kunalshah912/aapt2-core/internal/cerrors"
	"github.com/kunalshah912/aapt2-core/internal/respath"
)

// CompiledFile is one (descriptor, payload) pair ready for the Envelope
// Writer (spec.md §4.7): Name/Type/Config identify it, Payload is its
// flattened bytes.
type CompiledFile struct {
	Name   string
	Type   string
	Config string
	Source string
	Payload []byte
}

// Compile runs the full XML Compiler pipeline for one input (spec.md
// §4.4): inflate, annotate, collect IDs, extract inline fragments,
// flatten primary and every extracted sub-document. The returned slice
// is ordered primary-first, then extracted sub-documents in the document
// order their <aapt:attr> occurred in the source (spec.md §4.4 step 5,
// "Determinism").
func Compile(d *respath.Descriptor) ([]CompiledFile, error) {
	f, err := os.Open(d.Source)
	if err != nil {
		return nil, cerrors.New(cerrors.KindIO, "open xml file", err).WithSource(d.Source)
	}
	defer f.Close()

	root, err := Parse(f)
	if err != nil {
		return nil, wrapSource(err, d.Source)
	}

	primary := &Document{
		Root: root,
		Meta: Meta{TypeFromDir: d.TypeDir, Name: d.Name, ConfigStr: d.ConfigStr, Source: d.Source},
	}
	primary.DefinedIDs = CollectIDs(root)

	subDocs, err := ExtractInlineFragments(root, d.Name, d.Source)
	if err != nil {
		return nil, wrapSource(err, d.Source)
	}

	out := make([]CompiledFile, 0, 1+len(subDocs))
	out = append(out, CompiledFile{
		Name:    primary.Meta.Name,
		Type:    primary.Meta.TypeFromDir,
		Config:  primary.Meta.ConfigStr,
		Source:  d.Source,
		Payload: Flatten(primary.Root),
	})
	for _, sub := range subDocs {
		out = append(out, CompiledFile{
			Name:    sub.Meta.Name,
			Type:    "_aapt_fragment",
			Source:  d.Source,
			Payload: Flatten(sub.Root),
		})
	}
	return out, nil
}

func wrapSource(err error, source string) error {
	if ce, ok := err.(*cerrors.CompileError); ok {
		return ce.WithSource(source)
	}
	return err
}
