package respath

import "testing"

func TestClassify_EntryNameRoundTrip(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"res/layout-land/main.xml", "layout-land_main.xml.flat"},
		{"res/layout/main.xml", "layout_main.xml.flat"},
		{"res/drawable/foo.9.png", "drawable_foo.9.png.flat"},
	}
	for _, c := range cases {
		d, err := Classify(Normalize(c.path))
		if err != nil {
			t.Fatalf("Classify(%q): %v", c.path, err)
		}
		got := EntryName(d, "")
		if got != c.want {
			t.Errorf("Classify(%q) entry name = %q, want %q", c.path, got, c.want)
		}
	}
}

func TestClassify_FirstDotSplit(t *testing.T) {
	d, err := Classify("res/drawable/foo.9.png")
	if err != nil {
		t.Fatal(err)
	}
	if d.Name != "foo" || d.Extension != "9.png" {
		t.Errorf("got name=%q extension=%q, want name=foo extension=9.png", d.Name, d.Extension)
	}
}

func TestClassify_BadPath(t *testing.T) {
	if _, err := Classify("onlyonecomponent"); err == nil {
		t.Fatal("expected BadResourcePath error")
	}
}

func TestClassify_InvalidConfiguration(t *testing.T) {
	if _, err := Classify("res/values-bogus!!/strings.xml"); err == nil {
		t.Fatal("expected InvalidConfiguration error")
	}
}

func TestClassify_EmptyQualifierNoTrailingDash(t *testing.T) {
	d, err := Classify("res/values/strings.xml")
	if err != nil {
		t.Fatal(err)
	}
	if got := EntryName(d, "arsc"); got != "values_strings.arsc.flat" {
		t.Errorf("got %q, want values_strings.arsc.flat", got)
	}
}
