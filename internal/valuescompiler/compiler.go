package valuescompiler

import (
	"os"
	"path/filepath"

	"github.com/kunalshah912/aapt2-core/internal/cerrors"
	"github.com/kunalshah912/aapt2-core/internal/compilectx"
	"github.com/kunalshah912/aapt2-core/internal/respath"
	"github.com/kunalshah912/aapt2-core/internal/restable"
)

// Compile runs the full Values Compiler pipeline for one input (spec.md
// §4.3 steps 1-6) and returns the serialized resource table — the
// envelope-writing caller is responsible for writing it as the entry
// body directly, with no outer compiled-file framing (the asymmetry
// spec.md §6 and §9 call out explicitly).
func Compile(d *respath.Descriptor, ctx *compilectx.Context) ([]byte, error) {
	f, err := os.Open(d.Source)
	if err != nil {
		return nil, cerrors.New(cerrors.KindIO, "open values file", err).WithSource(d.Source)
	}
	defer f.Close()

	table := restable.New()
	opts := ParseOptions{
		Legacy:              ctx.Legacy,
		DefaultTranslatable: DefaultTranslatable(filepath.Base(d.Source)),
	}

	if err := Parse(f, table, ctx.Package, d.Config, opts); err != nil {
		return nil, wrapSource(err, d.Source)
	}

	pkg := table.EnsurePackage(ctx.Package)
	if ctx.PseudoLocalize {
		restable.GeneratePseudoLocales(pkg)
	}

	table.AssignDefaultPackageIDs(ctx.ResolvePackageID(ctx.Package))

	return restable.Marshal(table), nil
}

func wrapSource(err error, source string) error {
	if ce, ok := err.(*cerrors.CompileError); ok {
		return ce.WithSource(source)
	}
	return err
}
