// Package valuescompiler implements the Values Compiler (spec.md §4.3):
// parsing an XML value document into a ResourceTable, optionally
// synthesizing pseudo-locales, and serializing the result.
package valuescompiler

import (
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/kunalshah912/aapt2-core/internal/cerrors"
	"github.com/kunalshah912/aapt2-core/internal/resconfig"
	"github.com/kunalshah912/aapt2-core/internal/restable"
)

// ParseOptions configures the pull-style parse (spec.md §4.3 step 2).
type ParseOptions struct {
	// Legacy accepts positional-argument misuse instead of returning an
	// error. No warning is reported for it.
	Legacy bool
	// DefaultTranslatable is the translatable flag entries get unless
	// overridden by an explicit android:translatable attribute.
	DefaultTranslatable bool
}

// DefaultTranslatable implements spec.md §4.3 step 2's filename rule: the
// default translatable flag is false iff the filename contains the
// literal substring "donottranslate".
func DefaultTranslatable(filename string) bool {
	return !strings.Contains(filename, "donottranslate")
}

var positionalArgRe = regexp.MustCompile(`%(\d+\$)?[sd]`)

// checkFormatArgs validates that, when a string resource uses more than
// one substitution, every substitution is positional ("%1$s") rather
// than bare ("%s") — Android's rule for multi-argument format strings.
// Returns a non-nil error when this is violated and legacy is false.
func checkFormatArgs(text string, legacy bool) error {
	matches := positionalArgRe.FindAllStringSubmatch(text, -1)
	if len(matches) < 2 {
		return nil
	}
	for _, m := range matches {
		if m[1] == "" {
			if legacy {
				return nil
			}
			return fmt.Errorf("multiple substitutions require positional format arguments (%%1$s, %%2$s, ...): %q", text)
		}
	}
	return nil
}

// Parse reads r (a values XML document) into the package pkgName of
// table, keying every entry by cfg.
func Parse(r io.Reader, table *restable.Table, pkgName string, cfg *resconfig.Configuration, opts ParseOptions) error {
	pkg := table.EnsurePackage(pkgName)
	dec := xml.NewDecoder(r)

	var current *pendingEntry
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return cerrors.New(cerrors.KindParse, "parse values xml", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if err := handleStart(t, &current, opts); err != nil {
				return cerrors.New(cerrors.KindParse, "parse values xml", err)
			}
		case xml.CharData:
			if current != nil {
				current.appendText(string(t))
			}
		case xml.EndElement:
			ended, err := handleEnd(t, &current)
			if err != nil {
				return cerrors.New(cerrors.KindParse, "parse values xml", err)
			}
			if ended != nil {
				if err := ended.checkFormatArgs(opts.Legacy); err != nil {
					return cerrors.New(cerrors.KindParse, "parse values xml", err)
				}
				pkg.Put(ended.toEntry(cfg, opts.DefaultTranslatable))
			}
		}
	}
	return nil
}
