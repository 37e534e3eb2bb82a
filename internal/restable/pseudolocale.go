package restable

import "strings"

// PseudoLocales are the two synthetic locales spec.md §4.3 step 4
// generates when pseudo-localization is enabled.
var PseudoLocales = []struct {
	Lang, Region string
}{
	{"en", "XA"},
	{"ar", "XB"},
}

// GeneratePseudoLocales walks every default-configuration string and
// plural entry in p and adds a weak pseudo-localized variant for each of
// spec.md's two pseudo-locales. Non-default-configuration entries, and
// entries whose type is neither "string" nor "plurals", are left alone.
func GeneratePseudoLocales(p *Package) {
	defaults := make([]*Entry, 0)
	for _, e := range p.Entries() {
		if e.Key.Config != "" {
			continue
		}
		if e.Key.Type != "string" && e.Key.Type != "plurals" {
			continue
		}
		defaults = append(defaults, e)
	}

	for _, e := range defaults {
		for _, locale := range PseudoLocales {
			cfg := e.Config.ForLocale(locale.Lang, locale.Region)
			p.Put(&Entry{
				Key: EntryKey{
					Type:   e.Key.Type,
					Name:   e.Key.Name,
					Config: cfg.Raw,
				},
				Config:       cfg,
				Value:        pseudolocalizeValue(e.Value),
				Translatable: e.Translatable,
				Weak:         true,
			})
		}
	}
}

// pseudolocalizeValue expands and reshapes text to stress layout, the
// way Android's pseudo-locale generator brackets and widens strings.
func pseudolocalizeValue(v Value) Value {
	switch v.Kind {
	case "string":
		return Value{Kind: "string", Item: pseudolocalizeText(v.Item)}
	case "plural":
		items := make(map[string]string, len(v.Items))
		for q, text := range v.Items {
			items[q] = pseudolocalizeText(text)
		}
		return Value{Kind: "plural", Items: items}
	default:
		return v
	}
}

func pseudolocalizeText(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.WriteString("[")
	for _, r := range s {
		if accented, ok := accentMap[r]; ok {
			b.WriteRune(accented)
			continue
		}
		b.WriteRune(r)
	}
	b.WriteString(" one two]")
	return b.String()
}

// accentMap substitutes a handful of vowels with accented look-alikes,
// the classic pseudo-localization trick for surfacing hardcoded-width
// assumptions without actually translating anything.
var accentMap = map[rune]rune{
	'a': 'ȧ', 'e': 'ė', 'i': 'ı', 'o': 'ȯ', 'u': 'ů',
}
