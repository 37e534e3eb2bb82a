package valuescompiler

import (
	"strings"
	"testing"

	"github.com/kunalshah912/aapt2-core/internal/resconfig"
	"github.com/kunalshah912/aapt2-core/internal/restable"
)

func TestParse_SimpleString(t *testing.T) {
	table := restable.New()
	xmlDoc := `<resources><string name="hi">Hi</string></resources>`
	cfg := &resconfig.Configuration{}
	if err := Parse(strings.NewReader(xmlDoc), table, "", cfg, ParseOptions{DefaultTranslatable: true}); err != nil {
		t.Fatal(err)
	}
	pkg := table.EnsurePackage("")
	e, ok := pkg.Get(restable.EntryKey{Type: "string", Name: "hi"})
	if !ok {
		t.Fatal("expected entry \"hi\"")
	}
	if e.Value.Item != "Hi" || !e.Translatable {
		t.Errorf("got %+v", e)
	}
}

func TestParse_DoNotTranslateDefault(t *testing.T) {
	if DefaultTranslatable("donottranslate.xml") != false {
		t.Error("expected donottranslate filename to default translatable=false")
	}
	if DefaultTranslatable("strings.xml") != true {
		t.Error("expected ordinary filename to default translatable=true")
	}
}

func TestParse_Plurals(t *testing.T) {
	table := restable.New()
	xmlDoc := `<resources><plurals name="n">
		<item quantity="one">%d item</item>
		<item quantity="other">%d items</item>
	</plurals></resources>`
	cfg := &resconfig.Configuration{}
	if err := Parse(strings.NewReader(xmlDoc), table, "", cfg, ParseOptions{DefaultTranslatable: true}); err != nil {
		t.Fatal(err)
	}
	pkg := table.EnsurePackage("")
	e, ok := pkg.Get(restable.EntryKey{Type: "plurals", Name: "n"})
	if !ok {
		t.Fatal("expected entry \"n\"")
	}
	if e.Value.Items["one"] != "%d item" || e.Value.Items["other"] != "%d items" {
		t.Errorf("got %+v", e.Value.Items)
	}
}

func TestParse_PositionalArgsRequiredForMultiSubstitution(t *testing.T) {
	table := restable.New()
	xmlDoc := `<resources><string name="x">%s and %s</string></resources>`
	cfg := &resconfig.Configuration{}
	err := Parse(strings.NewReader(xmlDoc), table, "", cfg, ParseOptions{DefaultTranslatable: true})
	if err == nil {
		t.Fatal("expected error for bare multi-substitution format string")
	}
}

func TestParse_PositionalArgsAllowedUnderLegacy(t *testing.T) {
	table := restable.New()
	xmlDoc := `<resources><string name="x">%s and %s</string></resources>`
	cfg := &resconfig.Configuration{}
	err := Parse(strings.NewReader(xmlDoc), table, "", cfg, ParseOptions{DefaultTranslatable: true, Legacy: true})
	if err != nil {
		t.Fatalf("expected legacy mode to accept bare multi-substitution, got error: %v", err)
	}
}
