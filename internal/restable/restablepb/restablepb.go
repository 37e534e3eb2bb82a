// Package restablepb is the canonical protocol-buffer representation of a
// ResourceTable (spec.md §4.3 step 6). There is no .proto in this repo to
// run protoc against, so the wire format is built and parsed directly
// with google.golang.org/protobuf/encoding/protowire — the same
// low-level approach hand-written protobuf encoders use when a full
// generated message type would be overkill for a narrow internal format.
//
// Message layout (field numbers are part of the wire contract):
//
//	ResourceTable   { repeated Package packages = 1; }
//	Package         { uint32 id = 1; string name = 2; repeated Entry entries = 3; }
//	Entry           { string type = 1; string name = 2; string config = 3;
//	                  bool weak = 4; bool translatable = 5;
//	                  string value = 6; map<string,string> items = 7; }
//	ItemsEntry      { string key = 1; string value = 2; }
package restablepb

import (
	"google.golang.org/protobuf/encoding/protowire"
)

type Entry struct {
	Type         string
	Name         string
	Config       string
	Weak         bool
	Translatable bool
	Value        string
	Items        map[string]string
}

type Package struct {
	ID      uint32
	Name    string
	Entries []Entry
}

type ResourceTable struct {
	Packages []Package
}

// Marshal encodes t to its wire-format bytes.
func Marshal(t *ResourceTable) []byte {
	var b []byte
	for _, pkg := range t.Packages {
		pkgBytes := marshalPackage(&pkg)
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendBytes(b, pkgBytes)
	}
	return b
}

func marshalPackage(p *Package) []byte {
	var b []byte
	b = protowire.AppendTag(b, 1, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(p.ID))
	b = protowire.AppendTag(b, 2, protowire.BytesType)
	b = protowire.AppendString(b, p.Name)
	for _, e := range p.Entries {
		eBytes := marshalEntry(&e)
		b = protowire.AppendTag(b, 3, protowire.BytesType)
		b = protowire.AppendBytes(b, eBytes)
	}
	return b
}

func marshalEntry(e *Entry) []byte {
	var b []byte
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendString(b, e.Type)
	b = protowire.AppendTag(b, 2, protowire.BytesType)
	b = protowire.AppendString(b, e.Name)
	b = protowire.AppendTag(b, 3, protowire.BytesType)
	b = protowire.AppendString(b, e.Config)
	b = protowire.AppendTag(b, 4, protowire.VarintType)
	b = protowire.AppendVarint(b, boolToVarint(e.Weak))
	b = protowire.AppendTag(b, 5, protowire.VarintType)
	b = protowire.AppendVarint(b, boolToVarint(e.Translatable))
	if e.Value != "" {
		b = protowire.AppendTag(b, 6, protowire.BytesType)
		b = protowire.AppendString(b, e.Value)
	}
	for k, v := range e.Items {
		itemBytes := marshalItem(k, v)
		b = protowire.AppendTag(b, 7, protowire.BytesType)
		b = protowire.AppendBytes(b, itemBytes)
	}
	return b
}

func marshalItem(k, v string) []byte {
	var b []byte
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendString(b, k)
	b = protowire.AppendTag(b, 2, protowire.BytesType)
	b = protowire.AppendString(b, v)
	return b
}

func boolToVarint(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// Unmarshal decodes the wire-format bytes produced by Marshal.
func Unmarshal(data []byte) (*ResourceTable, error) {
	t := &ResourceTable{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, protowire.ParseError(n)
		}
		data = data[n:]
		if num != 1 || typ != protowire.BytesType {
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			data = data[n:]
			continue
		}
		pkgBytes, n := protowire.ConsumeBytes(data)
		if n < 0 {
			return nil, protowire.ParseError(n)
		}
		data = data[n:]
		pkg, err := unmarshalPackage(pkgBytes)
		if err != nil {
			return nil, err
		}
		t.Packages = append(t.Packages, *pkg)
	}
	return t, nil
}

func unmarshalPackage(data []byte) (*Package, error) {
	p := &Package{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, protowire.ParseError(n)
		}
		data = data[n:]
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			data = data[n:]
			p.ID = uint32(v)
		case num == 2 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			data = data[n:]
			p.Name = v
		case num == 3 && typ == protowire.BytesType:
			eb, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			data = data[n:]
			e, err := unmarshalEntry(eb)
			if err != nil {
				return nil, err
			}
			p.Entries = append(p.Entries, *e)
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			data = data[n:]
		}
	}
	return p, nil
}

func unmarshalEntry(data []byte) (*Entry, error) {
	e := &Entry{Items: map[string]string{}}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, protowire.ParseError(n)
		}
		data = data[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			data = data[n:]
			e.Type = v
		case num == 2 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			data = data[n:]
			e.Name = v
		case num == 3 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			data = data[n:]
			e.Config = v
		case num == 4 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			data = data[n:]
			e.Weak = v != 0
		case num == 5 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			data = data[n:]
			e.Translatable = v != 0
		case num == 6 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			data = data[n:]
			e.Value = v
		case num == 7 && typ == protowire.BytesType:
			ib, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			data = data[n:]
			k, v, err := unmarshalItem(ib)
			if err != nil {
				return nil, err
			}
			e.Items[k] = v
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			data = data[n:]
		}
	}
	return e, nil
}

func unmarshalItem(data []byte) (key, value string, err error) {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return "", "", protowire.ParseError(n)
		}
		data = data[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return "", "", protowire.ParseError(n)
			}
			data = data[n:]
			key = v
		case num == 2 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return "", "", protowire.ParseError(n)
			}
			data = data[n:]
			value = v
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return "", "", protowire.ParseError(n)
			}
			data = data[n:]
		}
	}
	return key, value, nil
}
