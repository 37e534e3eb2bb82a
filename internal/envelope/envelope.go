// Package envelope implements the Compiled Artifact envelope and the
// Envelope Writer (spec.md §4.7): the binary container a compiled
// input's (descriptor, payload) pairs are carried in, and the
// archive-backed sink a batch of CompiledArtifacts is written into.
//
// The file-descriptor record is a length-delimited protocol-buffer
// message, built and parsed directly with
// google.golang.org/protobuf/encoding/protowire — the same approach
// internal/restable/restablepb uses for the resource table itself, so
// the module has one wire-format style rather than two.
//
//	FileDescriptor { string type = 1; string name = 2; string config = 3; }
package envelope

import (
	"bytes"
	"encoding/binary"
	"io"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/kunalshah912/aapt2-core/internal/cerrors"
)

// File is one file-descriptor-plus-payload pair inside an envelope.
type File struct {
	Type    string
	Name    string
	Config  string
	Payload []byte
}

// Encode writes the count-prefixed envelope format of spec.md §4.7: a
// little-endian uint32 count followed by that many (descriptor,
// payload) pairs. Each descriptor is a length-prefixed protobuf
// message; each payload is length-prefixed using the envelope's own
// uint32 data primitive (spec.md §6: "length-delimited payload").
func Encode(files []File) []byte {
	var buf bytes.Buffer
	writeUint32(&buf, uint32(len(files)))
	for _, f := range files {
		desc := marshalFileDescriptor(f)
		writeUint32(&buf, uint32(len(desc)))
		buf.Write(desc)
		writeUint32(&buf, uint32(len(f.Payload)))
		buf.Write(f.Payload)
	}
	return buf.Bytes()
}

// Decode parses bytes produced by Encode, for tests and for tools that
// need to inspect an envelope rather than merely pass it through.
func Decode(data []byte) ([]File, error) {
	r := bytes.NewReader(data)
	count, err := readUint32(r)
	if err != nil {
		return nil, cerrors.New(cerrors.KindArchive, "decode envelope", err)
	}
	files := make([]File, 0, count)
	for i := uint32(0); i < count; i++ {
		descLen, err := readUint32(r)
		if err != nil {
			return nil, cerrors.New(cerrors.KindArchive, "decode envelope", err)
		}
		desc := make([]byte, descLen)
		if _, err := io.ReadFull(r, desc); err != nil {
			return nil, cerrors.New(cerrors.KindArchive, "decode envelope", err)
		}
		f, err := unmarshalFileDescriptor(desc)
		if err != nil {
			return nil, cerrors.New(cerrors.KindArchive, "decode envelope", err)
		}
		n, err := readUint32(r)
		if err != nil {
			return nil, cerrors.New(cerrors.KindArchive, "decode envelope", err)
		}
		payload := make([]byte, n)
		if _, err := io.ReadFull(r, payload); err != nil {
			return nil, cerrors.New(cerrors.KindArchive, "decode envelope", err)
		}
		f.Payload = payload
		files = append(files, f)
	}
	return files, nil
}

func marshalFileDescriptor(f File) []byte {
	var b []byte
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendString(b, f.Type)
	b = protowire.AppendTag(b, 2, protowire.BytesType)
	b = protowire.AppendString(b, f.Name)
	b = protowire.AppendTag(b, 3, protowire.BytesType)
	b = protowire.AppendString(b, f.Config)
	return b
}

func unmarshalFileDescriptor(data []byte) (File, error) {
	var f File
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return File{}, protowire.ParseError(n)
		}
		data = data[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return File{}, protowire.ParseError(n)
			}
			data = data[n:]
			f.Type = v
		case num == 2 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return File{}, protowire.ParseError(n)
			}
			data = data[n:]
			f.Name = v
		case num == 3 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return File{}, protowire.ParseError(n)
			}
			data = data[n:]
			f.Config = v
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return File{}, protowire.ParseError(n)
			}
			data = data[n:]
		}
	}
	return f, nil
}

func writeUint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func readUint32(r *bytes.Reader) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}
