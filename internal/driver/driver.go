// Package driver implements the Driver component (spec.md §4.8): for
// each classified input, it dispatches to the compiler that owns its
// type_dir/extension, names the resulting entries, and hands them to
// the Envelope Writer. A failure on one input is recorded and the batch
// continues — the Driver never short-circuits on the first error.
package driver

import (
	"bytes"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/kunalshah912/aapt2-core/internal/cerrors"
	"github.com/kunalshah912/aapt2-core/internal/compilectx"
	"github.com/kunalshah912/aapt2-core/internal/diagnostics"
	"github.com/kunalshah912/aapt2-core/internal/envelope"
	"github.com/kunalshah912/aapt2-core/internal/filecompiler"
	"github.com/kunalshah912/aapt2-core/internal/pngcompiler"
	"github.com/kunalshah912/aapt2-core/internal/respath"
	"github.com/kunalshah912/aapt2-core/internal/suggest"
	"github.com/kunalshah912/aapt2-core/internal/typetable"
	"github.com/kunalshah912/aapt2-core/internal/valuescompiler"
	"github.com/kunalshah912/aapt2-core/internal/xmlcompiler"
)

// Result is the outcome of driving one batch of descriptors: the
// entries ready for the Envelope Writer, and every error encountered
// (one input failing never drops the rest of the batch).
type Result struct {
	Entries []envelope.File
	Errors  []error
}

// Run compiles every descriptor in order, dispatching each to its
// owning compiler (spec.md §4.8's type_dir/extension table), and
// collects entries and errors across the whole batch.
func Run(descriptors []*respath.Descriptor, types *typetable.Table, ctx *compilectx.Context) Result {
	var result Result
	seen := make(map[uint64][]byte)
	for _, d := range descriptors {
		entry, err := compileOne(d, types, ctx)
		if err != nil {
			result.Errors = append(result.Errors, err)
			if ctx.Diagnostics != nil {
				ctx.Diagnostics.Report(diagnostics.Diagnostic{
					Source:   d.Source,
					Severity: diagnostics.Error,
					Message:  err.Error(),
				})
			}
			continue
		}
		reportIfDuplicate(ctx, d.Source, entry, seen)
		result.Entries = append(result.Entries, entry)
	}
	return result
}

// reportIfDuplicate flags an Info diagnostic when entry's payload is
// byte-identical to one already produced in this batch. The xxhash
// fast hash is used as a cheap pre-filter the same way the teacher's
// content store uses FastHash for quick equality before ever comparing
// full byte slices (internal/core.FileContentStore.applyLoadUpdate).
func reportIfDuplicate(ctx *compilectx.Context, source string, entry envelope.File, seen map[uint64][]byte) {
	sum := xxhash.Sum64(entry.Payload)
	if prior, ok := seen[sum]; ok {
		if bytes.Equal(prior, entry.Payload) {
			if ctx.Diagnostics != nil {
				ctx.Diagnostics.Report(diagnostics.Diagnostic{
					Source:   source,
					Severity: diagnostics.Info,
					Message:  fmt.Sprintf("entry %q duplicates previously compiled content", entry.Name),
				})
			}
			return
		}
	}
	seen[sum] = entry.Payload
}

// compileOne dispatches one descriptor to its owning compiler and
// returns exactly one archive entry for it (spec.md §4.8). Every path
// except the values path packs its compiler's output into the
// count-prefixed envelope (spec.md §4.7) before naming the entry; the
// values path is the documented exception that writes its serialized
// table directly as the entry body (spec.md §4.3 step 6, §9's open
// question on the asymmetry).
func compileOne(d *respath.Descriptor, types *typetable.Table, ctx *compilectx.Context) (envelope.File, error) {
	if d.TypeDir == "values" {
		payload, err := valuescompiler.Compile(d, ctx)
		if err != nil {
			return envelope.File{}, err
		}
		return envelope.File{
			Type:    d.TypeDir,
			Name:    respath.EntryName(d, "arsc"),
			Config:  d.ConfigStr,
			Payload: payload,
		}, nil
	}

	kind, ok := types.Lookup(d.TypeDir)
	if !ok {
		return envelope.File{}, invalidFilePath(d, types)
	}

	if kind == typetable.KindRaw {
		return compileRaw(d)
	}

	switch d.Extension {
	case "xml":
		return compileXML(d)
	case "png", "9.png":
		return compilePNG(d)
	default:
		return compileRaw(d)
	}
}

func compileRaw(d *respath.Descriptor) (envelope.File, error) {
	out, err := filecompiler.Compile(d)
	if err != nil {
		return envelope.File{}, err
	}
	payload := append([]byte(nil), out.Payload...)
	if out.Release != nil {
		if err := out.Release(); err != nil {
			return envelope.File{}, cerrors.New(cerrors.KindIO, "release mapped file", err).WithSource(d.Source)
		}
	}
	return envelopeEntry(d, []envelope.File{{
		Type:    d.TypeDir,
		Name:    d.Name,
		Config:  d.ConfigStr,
		Payload: payload,
	}}), nil
}

func compileXML(d *respath.Descriptor) (envelope.File, error) {
	files, err := xmlcompiler.Compile(d)
	if err != nil {
		return envelope.File{}, err
	}
	inner := make([]envelope.File, 0, len(files))
	for _, f := range files {
		inner = append(inner, envelope.File{
			Type:    f.Type,
			Name:    f.Name,
			Config:  f.Config,
			Payload: f.Payload,
		})
	}
	return envelopeEntry(d, inner), nil
}

func compilePNG(d *respath.Descriptor) (envelope.File, error) {
	out, err := pngcompiler.Compile(d)
	if err != nil {
		return envelope.File{}, err
	}
	return envelopeEntry(d, []envelope.File{{
		Type:    d.TypeDir,
		Name:    d.Name,
		Config:  d.ConfigStr,
		Payload: out.Payload,
	}}), nil
}

// envelopeEntry packs inner (the primary compiled file, plus any
// extracted sub-documents for an XML input) into the count-prefixed
// envelope of spec.md §4.7 and names the one archive entry the whole
// input produces.
func envelopeEntry(d *respath.Descriptor, inner []envelope.File) envelope.File {
	return envelope.File{
		Type:    d.TypeDir,
		Name:    respath.EntryName(d, d.Extension),
		Config:  d.ConfigStr,
		Payload: envelope.Encode(inner),
	}
}

func invalidFilePath(d *respath.Descriptor, types *typetable.Table) error {
	msg := "unrecognized resource type directory: " + d.TypeDir
	if best, ok := suggest.ClosestTypeDir(d.TypeDir, types.Names()); ok {
		msg += " (did you mean \"" + best + "\"?)"
	}
	return cerrors.New(cerrors.KindInvalidFilePath, "dispatch", errInvalidFilePath(msg)).WithSource(d.Source)
}

type errInvalidFilePath string

func (e errInvalidFilePath) Error() string { return string(e) }
