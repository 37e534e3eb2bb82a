package enumerate

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTree(t *testing.T, root string) {
	t.Helper()
	mustMkdir(t, filepath.Join(root, "values"))
	mustWrite(t, filepath.Join(root, "values", "strings.xml"), "<resources/>")
	mustMkdir(t, filepath.Join(root, "layout"))
	mustWrite(t, filepath.Join(root, "layout", "main.xml"), "<View/>")
	mustMkdir(t, filepath.Join(root, ".hidden"))
	mustWrite(t, filepath.Join(root, ".hidden", "x.xml"), "<x/>")
	mustWrite(t, filepath.Join(root, "notadir.txt"), "ignored")
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatal(err)
	}
}

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestEnumerateDir_SkipsDottedAndNonDirs(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root)

	descs, err := Enumerate(Options{Dir: root})
	if err != nil {
		t.Fatal(err)
	}
	if len(descs) != 2 {
		t.Fatalf("got %d descriptors, want 2: %+v", len(descs), descs)
	}
}

func TestEnumerateDir_SkipsDottedChildren(t *testing.T) {
	root := t.TempDir()
	mustMkdir(t, filepath.Join(root, "values"))
	mustWrite(t, filepath.Join(root, "values", ".swp.xml"), "x")
	mustWrite(t, filepath.Join(root, "values", "strings.xml"), "x")

	descs, err := Enumerate(Options{Dir: root})
	if err != nil {
		t.Fatal(err)
	}
	if len(descs) != 1 {
		t.Fatalf("got %d descriptors, want 1", len(descs))
	}
}

func TestEnumerate_ExclusiveModes(t *testing.T) {
	if _, err := Enumerate(Options{}); err == nil {
		t.Fatal("expected error when neither Dir nor Files is set")
	}
	if _, err := Enumerate(Options{Dir: "x", Files: []string{"y"}}); err == nil {
		t.Fatal("expected error when both Dir and Files are set")
	}
}

func TestEnumerateExplicit_AbortsOnFirstBadPath(t *testing.T) {
	root := t.TempDir()
	good := filepath.Join(root, "values", "strings.xml")
	mustMkdir(t, filepath.Join(root, "values"))
	mustWrite(t, good, "x")

	_, err := Enumerate(Options{Files: []string{"onlyonecomponent", good}})
	if err == nil {
		t.Fatal("expected classification failure to abort the batch")
	}
}

func TestEnumerateExplicit_GlobExpansion(t *testing.T) {
	root := t.TempDir()
	mustMkdir(t, filepath.Join(root, "values-en"))
	mustMkdir(t, filepath.Join(root, "values-fr"))
	mustWrite(t, filepath.Join(root, "values-en", "strings.xml"), "x")
	mustWrite(t, filepath.Join(root, "values-fr", "strings.xml"), "x")

	descs, err := Enumerate(Options{Files: []string{filepath.Join(root, "values-*", "strings.xml")}})
	if err != nil {
		t.Fatal(err)
	}
	if len(descs) != 2 {
		t.Fatalf("got %d descriptors, want 2", len(descs))
	}
}
