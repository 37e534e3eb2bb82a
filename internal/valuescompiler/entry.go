package valuescompiler

import (
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/kunalshah912/aapt2-core/internal/resconfig"
	"github.com/kunalshah912/aapt2-core/internal/restable"
)

// arrayTypes are resource types whose children are indexed <item>
// elements rather than quantity-keyed ones.
var arrayTypes = map[string]bool{"string-array": true, "integer-array": true}

// pendingEntry accumulates one top-level resource element (<string>,
// <plurals>, <bool>, ...) while the parser walks its children.
type pendingEntry struct {
	typ          string
	name         string
	translatable *bool

	textBuf strings.Builder // simple (non-plural/array) value text

	items        map[string]string // plurals: quantity -> text; arrays: index -> text
	itemBuf      *strings.Builder
	itemKey      string
}

func attrValue(se xml.StartElement, local string) (string, bool) {
	for _, a := range se.Attr {
		if a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

func handleStart(se xml.StartElement, current **pendingEntry, opts ParseOptions) error {
	cur := *current
	if cur == nil {
		if se.Name.Local == "resources" {
			return nil
		}
		name, _ := attrValue(se, "name")
		pe := &pendingEntry{typ: se.Name.Local, name: name}
		if v, ok := attrValue(se, "translatable"); ok {
			b := v == "true"
			pe.translatable = &b
		}
		if pe.typ == "plurals" || arrayTypes[pe.typ] {
			pe.items = map[string]string{}
		}
		*current = pe
		return nil
	}

	if se.Name.Local == "item" {
		key := ""
		if cur.typ == "plurals" {
			key, _ = attrValue(se, "quantity")
		} else {
			key = strconv.Itoa(len(cur.items))
		}
		cur.itemKey = key
		cur.itemBuf = &strings.Builder{}
	}
	return nil
}

func handleEnd(ee xml.EndElement, current **pendingEntry) (*pendingEntry, error) {
	cur := *current
	if cur == nil {
		return nil, nil
	}

	if ee.Name.Local == "item" && cur.itemBuf != nil {
		cur.items[cur.itemKey] = cur.itemBuf.String()
		cur.itemBuf = nil
		cur.itemKey = ""
		return nil, nil
	}

	if ee.Name.Local == cur.typ {
		*current = nil
		return cur, nil
	}
	return nil, nil
}

func (p *pendingEntry) appendText(s string) {
	if p.itemBuf != nil {
		p.itemBuf.WriteString(s)
		return
	}
	p.textBuf.WriteString(s)
}

func (p *pendingEntry) checkFormatArgs(legacy bool) error {
	if p.typ != "string" {
		return nil
	}
	return checkFormatArgs(p.textBuf.String(), legacy)
}

func (p *pendingEntry) toEntry(cfg *resconfig.Configuration, defaultTranslatable bool) *restable.Entry {
	translatable := defaultTranslatable
	if p.translatable != nil {
		translatable = *p.translatable
	}

	var value restable.Value
	switch {
	case p.typ == "plurals":
		value = restable.Value{Kind: "plural", Items: p.items}
	case arrayTypes[p.typ]:
		value = restable.Value{Kind: "array", Items: p.items}
	default:
		value = restable.Value{Kind: "string", Item: strings.TrimSpace(p.textBuf.String())}
	}

	return &restable.Entry{
		Key: restable.EntryKey{
			Type:   p.typ,
			Name:   p.name,
			Config: cfg.Raw,
		},
		Config:       cfg,
		Value:        value,
		Translatable: translatable,
	}
}
