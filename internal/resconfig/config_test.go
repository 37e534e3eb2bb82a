package resconfig

import "testing"

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse("")
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.IsDefault() {
		t.Errorf("expected default configuration, got %+v", cfg)
	}
}

func TestParse_Locale(t *testing.T) {
	cfg, err := Parse("fr")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Language != "fr" || cfg.Region != "" {
		t.Errorf("got language=%q region=%q", cfg.Language, cfg.Region)
	}
}

func TestParse_LocaleWithRegion(t *testing.T) {
	cfg, err := Parse("en-rUS")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Language != "en" || cfg.Region != "US" {
		t.Errorf("got language=%q region=%q", cfg.Language, cfg.Region)
	}
}

func TestParse_Density(t *testing.T) {
	cfg, err := Parse("hdpi")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Density != "hdpi" {
		t.Errorf("got density=%q", cfg.Density)
	}
}

func TestParse_LocaleAndDensity(t *testing.T) {
	cfg, err := Parse("en-rUS-hdpi")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Language != "en" || cfg.Region != "US" || cfg.Density != "hdpi" {
		t.Errorf("got %+v", cfg)
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse("not-a-real-qualifier-xyz123!"); err == nil {
		t.Fatal("expected error")
	}
}

func TestParse_Version(t *testing.T) {
	cfg, err := Parse("v21")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Version != 21 {
		t.Errorf("got version=%d", cfg.Version)
	}
}

func TestForLocale_PseudoLocale(t *testing.T) {
	base := &Configuration{}
	enXA := base.ForLocale("en", "XA")
	if enXA.Locale() != "en-XA" {
		t.Errorf("got locale=%q", enXA.Locale())
	}
}
