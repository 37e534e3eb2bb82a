package xmlcompiler

import (
	"fmt"
	"strings"

	"github.com/kunalshah912/aapt2-core/internal/cerrors"
)

// isAaptAttr accepts both the resolved URI (when xmlns:aapt is
// declared) and the bare "aapt" prefix (when Go's decoder could not
// resolve it), since a layout file missing the xmlns declaration is
// still unambiguous in practice.
func isAaptAttr(n *Node) bool {
	if n.Name.Local != "attr" {
		return false
	}
	return n.Name.Space == "aapt" || strings.Contains(n.Name.Space, "schemas.android.com/aapt")
}

// ExtractInlineFragments walks root depth-first, pre-order, collecting
// every <aapt:attr name="X"> element — including ones nested inside
// another <aapt:attr>'s single child, which is what makes the recursive
// case (spec.md §4.4 step 3) fall out of one flat pass instead of
// needing explicit recursion: collection happens before any removal, so
// a nested occurrence's parent pointer is still valid when its turn
// comes.
//
// primaryName seeds the synthesized resource names
// ("<primaryName>__extracted_N"); meta.Source is copied onto every
// sub-document for diagnostics.
func ExtractInlineFragments(root *Node, primaryName, source string) ([]*Document, error) {
	var fragments []*Node
	root.Walk(func(n *Node) {
		if isAaptAttr(n) {
			fragments = append(fragments, n)
		}
	})

	docs := make([]*Document, 0, len(fragments))
	for i, frag := range fragments {
		attrName, ok := frag.AttrValue("name")
		if !ok {
			return nil, cerrors.New(cerrors.KindParse, "extract inline fragment",
				fmt.Errorf("<aapt:attr> is missing required \"name\" attribute"))
		}
		if len(frag.Children) != 1 {
			return nil, cerrors.New(cerrors.KindParse, "extract inline fragment",
				fmt.Errorf("<aapt:attr name=%q> must have exactly one element child, got %d", attrName, len(frag.Children)))
		}

		parent := frag.Parent
		removeChild(parent, frag)

		subRoot := frag.Children[0]
		subRoot.Parent = nil

		synthName := fmt.Sprintf("%s__extracted_%d", primaryName, i+1)
		parent.SetAttrValue(attrName, "@aapt:_aapt/"+synthName)

		docs = append(docs, &Document{
			Root: subRoot,
			Meta: Meta{Name: synthName, Source: source},
		})
	}
	return docs, nil
}

func removeChild(parent, child *Node) {
	for i, c := range parent.Children {
		if c == child {
			parent.Children = append(parent.Children[:i], parent.Children[i+1:]...)
			return
		}
	}
}
