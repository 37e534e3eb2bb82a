// Package pngcompiler implements the PNG Compiler (spec.md §4.5): a
// chunk filter that keeps only the chunks required for rendering, pixel
// decode, 9-patch border handling, and the re-encoded-vs-filtered-
// original size comparison.
//
// image/png (standard library) supplies pixel decode/encode; the chunk
// filter itself is hand-rolled because no corpus dependency exposes raw
// PNG chunk streaming — see DESIGN.md.
package pngcompiler

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"

	"github.com/kunalshah912/aapt2-core/internal/cerrors"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// allowedChunkTypes is the fixed allow-list of chunks required to
// render: everything else (text, time, gamma, physical-size, ICC
// profile, EXIF, ...) is ancillary metadata the compiler strips.
var allowedChunkTypes = map[string]bool{
	"IHDR": true,
	"PLTE": true,
	"tRNS": true,
	"IDAT": true,
	"IEND": true,
}

type chunk struct {
	typ  string
	data []byte
}

func readChunks(data []byte) ([]chunk, error) {
	if len(data) < len(pngSignature) || !bytes.Equal(data[:len(pngSignature)], pngSignature) {
		return nil, cerrors.New(cerrors.KindPNG, "read chunks", errNotPNG{})
	}
	rest := data[len(pngSignature):]

	var chunks []chunk
	for len(rest) > 0 {
		if len(rest) < 8 {
			return nil, cerrors.New(cerrors.KindPNG, "read chunks", errTruncated{})
		}
		length := binary.BigEndian.Uint32(rest[0:4])
		typ := string(rest[4:8])
		if uint64(len(rest)) < 8+uint64(length)+4 {
			return nil, cerrors.New(cerrors.KindPNG, "read chunks", errTruncated{})
		}
		payload := rest[8 : 8+length]
		chunks = append(chunks, chunk{typ: typ, data: payload})
		rest = rest[8+length+4:]
		if typ == "IEND" {
			break
		}
	}
	return chunks, nil
}

// filterChunks rebuilds a valid PNG byte stream containing only
// chunks in allowedChunkTypes, preserving their original bytes and
// relative order (spec.md §4.5 step 2). Each kept chunk's CRC is
// recomputed from type+data the same way the encoder would, since CRCs
// are independent per chunk.
func filterChunks(data []byte) ([]byte, error) {
	chunks, err := readChunks(data)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Write(pngSignature)
	for _, c := range chunks {
		if !allowedChunkTypes[c.typ] {
			continue
		}
		writeChunk(&buf, c.typ, c.data)
	}
	return buf.Bytes(), nil
}

func writeChunk(buf *bytes.Buffer, typ string, data []byte) {
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(data)))
	buf.Write(lenBuf[:])

	typBytes := []byte(typ)
	buf.Write(typBytes)
	buf.Write(data)

	crc := crc32.NewIEEE()
	crc.Write(typBytes)
	crc.Write(data)
	var crcBuf [4]byte
	binary.BigEndian.PutUint32(crcBuf[:], crc.Sum32())
	buf.Write(crcBuf[:])
}

type errNotPNG struct{}

func (errNotPNG) Error() string { return "not a PNG file: bad signature" }

type errTruncated struct{}

func (errTruncated) Error() string { return "truncated PNG chunk stream" }
