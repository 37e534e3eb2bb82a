package xmlcompiler

import (
	"bytes"
	"encoding/binary"
)

// Flatten serializes root to the binary XML format (spec.md §4.4 step
// 4): every string is length-prefixed (uint32 little-endian), attribute
// values are written verbatim/unresolved, and child nodes nest
// recursively in document order. This is a from-scratch encoding rather
// than Android's real compiled-XML chunk format — see DESIGN.md for why
// no corpus library covers that format, and why a from-scratch
// length-prefixed tree serialization satisfies the spec's "flatten to
// binary XML" contract without it.
func Flatten(root *Node) []byte {
	var buf bytes.Buffer
	writeNode(&buf, root)
	return buf.Bytes()
}

func writeString(buf *bytes.Buffer, s string) {
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(s)))
	buf.Write(lenBuf[:])
	buf.WriteString(s)
}

func writeUint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func writeNode(buf *bytes.Buffer, n *Node) {
	writeString(buf, n.Name.Space)
	writeString(buf, n.Name.Local)

	writeUint32(buf, uint32(len(n.Attrs)))
	for _, a := range n.Attrs {
		writeString(buf, a.Name.Space)
		writeString(buf, a.Name.Local)
		writeString(buf, a.Value)
	}

	writeString(buf, n.Text)

	writeUint32(buf, uint32(len(n.Children)))
	for _, c := range n.Children {
		writeNode(buf, c)
	}
}
