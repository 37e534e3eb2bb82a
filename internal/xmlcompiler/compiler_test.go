package xmlcompiler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kunalshah912/aapt2-core/internal/respath"
)

func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCompile_SimpleLayoutNoFragments(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "main.xml", `<View android:id="@+id/root" xmlns:android="http://schemas.android.com/apk/res/android"/>`)

	desc := fakeDescriptor(path)
	out, err := Compile(&desc)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 {
		t.Fatalf("got %d compiled files, want 1", len(out))
	}
}

func TestCompile_InlineFragmentProducesTwoFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "main.xml", `<View xmlns:aapt="http://schemas.android.com/aapt">
		<aapt:attr name="background"><shape/></aapt:attr>
	</View>`)

	desc := fakeDescriptor(path)
	out, err := Compile(&desc)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d compiled files, want 2 (N=k+1 for k=1 aapt:attr)", len(out))
	}
}

func TestExtractInlineFragments_ReplacesAttributeWithReference(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "main.xml", `<View xmlns:aapt="http://schemas.android.com/aapt">
		<aapt:attr name="background"><shape/></aapt:attr>
	</View>`)
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	root, err := Parse(f)
	if err != nil {
		t.Fatal(err)
	}
	subDocs, err := ExtractInlineFragments(root, "main", path)
	if err != nil {
		t.Fatal(err)
	}
	if len(subDocs) != 1 {
		t.Fatalf("got %d sub-documents, want 1", len(subDocs))
	}
	if subDocs[0].Root.Name.Local != "shape" {
		t.Errorf("got sub-document root %q, want shape", subDocs[0].Root.Name.Local)
	}
	bg, ok := root.AttrValue("background")
	if !ok || bg == "" {
		t.Errorf("expected background attribute to be replaced with a reference, got %q", bg)
	}
}

func TestCollectIDs(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "main.xml", `<LinearLayout>
		<View android:id="@+id/one"/>
		<View android:id="@+id/two"/>
		<View android:id="@+id/one"/>
	</LinearLayout>`)
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	root, err := Parse(f)
	if err != nil {
		t.Fatal(err)
	}
	ids := CollectIDs(root)
	if len(ids) != 2 {
		t.Fatalf("got %d ids, want 2 (deduplicated): %v", len(ids), ids)
	}
}

// fakeDescriptor is a minimal respath.Descriptor for tests that only
// need Source/Name/TypeDir, avoiding a full directory fixture.
func fakeDescriptor(source string) respath.Descriptor {
	return respath.Descriptor{Source: source, TypeDir: "layout", Name: "main"}
}
