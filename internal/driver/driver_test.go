package driver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kunalshah912/aapt2-core/internal/compilectx"
	"github.com/kunalshah912/aapt2-core/internal/diagnostics"
	"github.com/kunalshah912/aapt2-core/internal/envelope"
	"github.com/kunalshah912/aapt2-core/internal/respath"
	"github.com/kunalshah912/aapt2-core/internal/toolconfig"
	"github.com/kunalshah912/aapt2-core/internal/typetable"
)

func newTestContext() *compilectx.Context {
	return &compilectx.Context{
		Package:          "com.example.app",
		DefaultPackageID: 0x7f,
		PackageIDs:       &toolconfig.PackageIDs{},
		Diagnostics:      diagnostics.NewCollector(),
	}
}

func classify(t *testing.T, path string) *respath.Descriptor {
	t.Helper()
	d, err := respath.Classify(respath.Normalize(path))
	require.NoError(t, err)
	return d
}

func TestRun_ValuesFileProducesArscEntry(t *testing.T) {
	dir := t.TempDir()
	valuesDir := filepath.Join(dir, "values")
	require.NoError(t, os.MkdirAll(valuesDir, 0o755))
	path := filepath.Join(valuesDir, "strings.xml")
	require.NoError(t, os.WriteFile(path, []byte(`<resources><string name="app_name">Demo</string></resources>`), 0o644))

	d := classify(t, path)
	result := Run([]*respath.Descriptor{d}, typetable.Default(), newTestContext())
	require.Empty(t, result.Errors)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, "values_strings.arsc.flat", result.Entries[0].Name)
}

func TestRun_UnrecognizedTypeDirRecordsErrorAndContinues(t *testing.T) {
	dir := t.TempDir()
	badDir := filepath.Join(dir, "layuot")
	require.NoError(t, os.MkdirAll(badDir, 0o755))
	okDir := filepath.Join(dir, "raw")
	require.NoError(t, os.MkdirAll(okDir, 0o755))
	badPath := filepath.Join(badDir, "main.xml")
	okPath := filepath.Join(okDir, "sound.mp3")
	require.NoError(t, os.WriteFile(badPath, []byte(`<View/>`), 0o644))
	require.NoError(t, os.WriteFile(okPath, []byte("bytes"), 0o644))

	descriptors := []*respath.Descriptor{classify(t, badPath), classify(t, okPath)}
	result := Run(descriptors, typetable.Default(), newTestContext())

	require.Len(t, result.Errors, 1)
	require.Len(t, result.Entries, 1, "the raw file must still compile")
}

func TestRun_RawTypeDirBypassesExtensionDispatch(t *testing.T) {
	dir := t.TempDir()
	rawDir := filepath.Join(dir, "raw")
	require.NoError(t, os.MkdirAll(rawDir, 0o755))
	path := filepath.Join(rawDir, "config.xml")
	require.NoError(t, os.WriteFile(path, []byte("<not-really-xml"), 0o644))

	d := classify(t, path)
	result := Run([]*respath.Descriptor{d}, typetable.Default(), newTestContext())
	require.Empty(t, result.Errors)
	require.Len(t, result.Entries, 1)

	inner, err := envelope.Decode(result.Entries[0].Payload)
	require.NoError(t, err)
	require.Len(t, inner, 1, "a raw input is still a single-member envelope, per spec.md §4.6/§4.7")
	assert.Equal(t, []byte("<not-really-xml"), inner[0].Payload)
}

func TestRun_XMLInlineFragmentProducesOneArchiveEntryWithTwoEmbeddedFiles(t *testing.T) {
	dir := t.TempDir()
	layoutDir := filepath.Join(dir, "layout")
	require.NoError(t, os.MkdirAll(layoutDir, 0o755))
	path := filepath.Join(layoutDir, "main.xml")
	require.NoError(t, os.WriteFile(path, []byte(`<View xmlns:aapt="http://schemas.android.com/aapt">
		<aapt:attr name="background"><shape/></aapt:attr>
	</View>`), 0o644))

	d := classify(t, path)
	result := Run([]*respath.Descriptor{d}, typetable.Default(), newTestContext())
	require.Empty(t, result.Errors)
	require.Len(t, result.Entries, 1, "one input must produce exactly one archive entry, not one per embedded document")
	assert.Equal(t, "layout_main.xml.flat", result.Entries[0].Name)

	inner, err := envelope.Decode(result.Entries[0].Payload)
	require.NoError(t, err)
	assert.Len(t, inner, 2, "N=k+1 for k=1 aapt:attr element (spec.md §8)")
}
