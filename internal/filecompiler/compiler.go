// Package filecompiler implements the File Compiler (spec.md §4.6): the
// pass-through path for resource files with no type-specific transform
// (raw/, any type the Type Table marks raw, and any file whose extension
// no other compiler claims).
// The source is memory-mapped rather than read into a fresh buffer,
// mirroring the teacher's content-store preference for mapping file
// bytes over copying them where the platform allows it.
package filecompiler

import (
	"github.com/kunalshah912/aapt2-core/internal/respath"
)

// CompiledFile is the File Compiler's output: Payload is the verbatim
// source bytes, valid only until Release is called.
type CompiledFile struct {
	Name    string
	Type    string
	Config  string
	Source  string
	Payload []byte
	Release func() error
}

// Compile maps d.Source and returns its bytes unchanged (spec.md §4.6).
// The caller must call Release once the payload has been consumed (the
// Driver copies the bytes into the outgoing entry and releases the
// mapping immediately afterward, so no more than one file's mapping is
// held open at a time).
func Compile(d *respath.Descriptor) (*CompiledFile, error) {
	data, release, err := mapFile(d.Source)
	if err != nil {
		return nil, err
	}
	return &CompiledFile{
		Name:    d.Name,
		Type:    d.TypeDir,
		Config:  d.ConfigStr,
		Source:  d.Source,
		Payload: data,
		Release: release,
	}, nil
}
