// Package xmlcompiler implements the XML Compiler (spec.md §4.4):
// inflating a layout/drawable XML document into an in-memory tree,
// collecting @+id definitions, extracting <aapt:attr> inline fragments
// into their own sub-documents, and flattening everything to a binary
// form.
package xmlcompiler

import (
	"encoding/xml"
	"io"

	"github.com/kunalshah912/aapt2-core/internal/cerrors"
)

// Attr is one XML attribute, namespace included, with its raw
// (unresolved) string value preserved verbatim — flattening never
// resolves "@string/foo" or "?attr/bar" references (spec.md §4.4 step 4).
type Attr struct {
	Name  xml.Name
	Value string
}

// Node is one element in the in-memory tree. Namespace scoping is
// preserved on Name (xml.Name.Space carries the resolved URI, the way
// encoding/xml.Decoder resolves it while tokenizing).
type Node struct {
	Name     xml.Name
	Attrs    []Attr
	Children []*Node
	Text     string
	Parent   *Node `json:"-"`
}

// Meta annotates a Document the way spec.md §4.4 step 1 describes:
// {name=(—, type_from_dir, descriptor.name), config, source}.
type Meta struct {
	TypeFromDir string
	Name        string
	ConfigStr   string
	Source      string
}

// Document is one XML document: a root Node plus its compilation
// metadata. The primary document and every extracted sub-document share
// this type.
type Document struct {
	Root *Node
	Meta Meta

	// DefinedIDs holds every "@+id/foo" name discovered during ID
	// collection (spec.md §4.4 step 2), in document order, deduplicated.
	DefinedIDs []string
}

// Parse inflates r into a Node tree and returns its root. Only elements, attributes, and
// character data are modeled; comments and processing instructions are
// dropped, matching a layout/drawable compiler's needs.
func Parse(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)
	var root, current *Node

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, cerrors.New(cerrors.KindParse, "parse xml", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Name: t.Name, Parent: current}
			for _, a := range t.Attr {
				n.Attrs = append(n.Attrs, Attr{Name: a.Name, Value: a.Value})
			}
			if current != nil {
				current.Children = append(current.Children, n)
			} else {
				root = n
			}
			current = n
		case xml.EndElement:
			if current != nil {
				current = current.Parent
			}
		case xml.CharData:
			if current != nil {
				current.Text += string(t)
			}
		}
	}
	if root == nil {
		return nil, cerrors.New(cerrors.KindParse, "parse xml", errEmptyDocument{})
	}
	return root, nil
}

type errEmptyDocument struct{}

func (errEmptyDocument) Error() string { return "document has no root element" }

// AttrValue returns the value of the attribute named local in any
// namespace, and whether it was present.
func (n *Node) AttrValue(local string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttrValue overwrites the value of the attribute named local,
// appending it if absent.
func (n *Node) SetAttrValue(local, value string) {
	for i, a := range n.Attrs {
		if a.Name.Local == local {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr{Name: xml.Name{Local: local}, Value: value})
}

// Walk visits n and every descendant, depth-first, pre-order.
func (n *Node) Walk(visit func(*Node)) {
	visit(n)
	for _, c := range n.Children {
		c.Walk(visit)
	}
}
