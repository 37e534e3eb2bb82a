package pngcompiler

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/png"

	"github.com/kunalshah912/aapt2-core/internal/cerrors"
)

// ninePatchChunkType is this compiler's own ancillary chunk carrying
// NinePatch metadata. It is not Android's real "npTc" binary layout —
// see DESIGN.md for why a from-scratch layout satisfies spec.md's
// "embedding the 9-patch chunk" contract without it.
const ninePatchChunkType = "npCh"

// reencode produces a fresh PNG buffer for img, embedding a ninePatch
// chunk when non-nil (spec.md §4.5 step 5).
func reencode(img image.Image, ninePatch *NinePatch) ([]byte, error) {
	var raw bytes.Buffer
	if err := png.Encode(&raw, img); err != nil {
		return nil, cerrors.New(cerrors.KindPNG, "encode png", err)
	}

	if ninePatch == nil {
		return raw.Bytes(), nil
	}

	chunks, err := readChunks(raw.Bytes())
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	out.Write(pngSignature)
	inserted := false
	for _, c := range chunks {
		writeChunk(&out, c.typ, c.data)
		if c.typ == "IHDR" && !inserted {
			writeChunk(&out, ninePatchChunkType, encodeNinePatch(ninePatch))
			inserted = true
		}
	}
	return out.Bytes(), nil
}

func encodeNinePatch(np *NinePatch) []byte {
	var buf bytes.Buffer
	writeRanges(&buf, np.XDivs)
	writeRanges(&buf, np.YDivs)
	writeInts(&buf, np.PaddingLeft, np.PaddingTop, np.PaddingRight, np.PaddingBottom)
	return buf.Bytes()
}

func writeRanges(buf *bytes.Buffer, ranges []Range) {
	writeUint32(buf, uint32(len(ranges)))
	for _, r := range ranges {
		writeUint32(buf, uint32(r.Start))
		writeUint32(buf, uint32(r.End))
	}
}

func writeInts(buf *bytes.Buffer, ints ...int) {
	for _, v := range ints {
		writeUint32(buf, uint32(v))
	}
}

func writeUint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}
