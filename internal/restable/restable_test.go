package restable

import (
	"testing"

	"github.com/kunalshah912/aapt2-core/internal/resconfig"
	"github.com/kunalshah912/aapt2-core/internal/restable/restablepb"
)

func TestPackage_PutWeakNeverOverridesStrong(t *testing.T) {
	p := newPackage("")
	key := EntryKey{Type: "string", Name: "hi", Config: ""}
	p.Put(&Entry{Key: key, Value: Value{Kind: "string", Item: "Hi"}})
	p.Put(&Entry{Key: key, Value: Value{Kind: "string", Item: "Weak Hi"}, Weak: true})

	e, ok := p.Get(key)
	if !ok {
		t.Fatal("expected entry to exist")
	}
	if e.Value.Item != "Hi" {
		t.Errorf("weak entry overrode strong entry: got %q", e.Value.Item)
	}
}

func TestPackage_WeakReplacesWeak(t *testing.T) {
	p := newPackage("")
	key := EntryKey{Type: "string", Name: "hi"}
	p.Put(&Entry{Key: key, Value: Value{Kind: "string", Item: "first"}, Weak: true})
	p.Put(&Entry{Key: key, Value: Value{Kind: "string", Item: "second"}, Weak: true})

	e, _ := p.Get(key)
	if e.Value.Item != "second" {
		t.Errorf("got %q, want second", e.Value.Item)
	}
}

func TestGeneratePseudoLocales_NeverOverridesStrong(t *testing.T) {
	p := newPackage("")
	defaultKey := EntryKey{Type: "string", Name: "hi"}
	p.Put(&Entry{Key: defaultKey, Config: &resconfig.Configuration{}, Value: Value{Kind: "string", Item: "Hi"}, Translatable: true})

	xaCfg := (&resconfig.Configuration{}).ForLocale("en", "XA")
	xaKey := EntryKey{Type: "string", Name: "hi", Config: xaCfg.Raw}
	p.Put(&Entry{Key: xaKey, Config: xaCfg, Value: Value{Kind: "string", Item: "explicit override"}})

	GeneratePseudoLocales(p)

	e, ok := p.Get(xaKey)
	if !ok {
		t.Fatal("expected en-XA entry to exist")
	}
	if e.Value.Item != "explicit override" {
		t.Errorf("pseudo-locale overrode an explicit strong entry: got %q", e.Value.Item)
	}
}

func TestGeneratePseudoLocales_GeneratesBothLocales(t *testing.T) {
	p := newPackage("")
	key := EntryKey{Type: "string", Name: "hi"}
	p.Put(&Entry{Key: key, Config: &resconfig.Configuration{}, Value: Value{Kind: "string", Item: "Hi"}})

	GeneratePseudoLocales(p)

	for _, locale := range []struct{ lang, region string }{{"en", "XA"}, {"ar", "XB"}} {
		cfg := (&resconfig.Configuration{}).ForLocale(locale.lang, locale.region)
		k := EntryKey{Type: "string", Name: "hi", Config: cfg.Raw}
		e, ok := p.Get(k)
		if !ok {
			t.Fatalf("missing pseudo-locale entry for %s-%s", locale.lang, locale.region)
		}
		if !e.Weak {
			t.Errorf("pseudo-locale entry for %s-%s should be weak", locale.lang, locale.region)
		}
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	table := New()
	id := uint8(0x7f)
	p := table.EnsurePackage("com.example")
	p.ID = &id
	p.Put(&Entry{
		Key:          EntryKey{Type: "string", Name: "hi"},
		Config:       &resconfig.Configuration{},
		Value:        Value{Kind: "string", Item: "Hi"},
		Translatable: true,
	})

	data := Marshal(table)
	pb, err := restablepb.Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(pb.Packages) != 1 {
		t.Fatalf("got %d packages, want 1", len(pb.Packages))
	}
	got := pb.Packages[0]
	if got.ID != 0x7f || got.Name != "com.example" {
		t.Errorf("got id=%d name=%q", got.ID, got.Name)
	}
	if len(got.Entries) != 1 || got.Entries[0].Value != "Hi" {
		t.Errorf("got entries=%+v", got.Entries)
	}
}

func TestMarshal_ArrayEntryRoundTripsThroughItems(t *testing.T) {
	table := New()
	p := table.EnsurePackage("")
	p.Put(&Entry{
		Key:    EntryKey{Type: "string-array", Name: "days"},
		Config: &resconfig.Configuration{},
		Value:  Value{Kind: "array", Items: map[string]string{"0": "Mon", "1": "Tue"}},
	})

	data := Marshal(table)
	pb, err := restablepb.Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}
	got := pb.Packages[0].Entries[0]
	if got.Items["0"] != "Mon" || got.Items["1"] != "Tue" {
		t.Errorf("array items lost in serialization: got %+v", got.Items)
	}
}
