//go:build !unix

package filecompiler

import (
	"os"

	"github.com/kunalshah912/aapt2-core/internal/cerrors"
)

// mapFile falls back to a plain read on non-unix platforms, where
// golang.org/x/sys/unix.Mmap has no implementation.
func mapFile(source string) ([]byte, func() error, error) {
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, nil, cerrors.New(cerrors.KindIO, "read raw file", err).WithSource(source)
	}
	return data, func() error { return nil }, nil
}
