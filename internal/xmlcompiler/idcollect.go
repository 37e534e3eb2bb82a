package xmlcompiler

import "strings"

// CollectIDs scans every attribute value in the tree rooted at root for
// "@+id/foo" forms and registers each as a defined ID (spec.md §4.4
// step 2), in document order with duplicates removed.
func CollectIDs(root *Node) []string {
	seen := make(map[string]bool)
	var ids []string
	root.Walk(func(n *Node) {
		for _, a := range n.Attrs {
			if name, ok := parseIDAttr(a.Value); ok && !seen[name] {
				seen[name] = true
				ids = append(ids, name)
			}
		}
	})
	return ids
}

// parseIDAttr recognizes the "@+id/foo" form and returns "foo".
func parseIDAttr(value string) (name string, ok bool) {
	const prefix = "@+id/"
	if !strings.HasPrefix(value, prefix) {
		return "", false
	}
	return strings.TrimPrefix(value, prefix), true
}
