//go:build unix

package filecompiler

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/kunalshah912/aapt2-core/internal/cerrors"
)

// mapFile maps source read-only and returns its bytes along with a
// closer that must be called once the caller is done with them.
func mapFile(source string) ([]byte, func() error, error) {
	f, err := os.Open(source)
	if err != nil {
		return nil, nil, cerrors.New(cerrors.KindIO, "open raw file", err).WithSource(source)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, nil, cerrors.New(cerrors.KindIO, "stat raw file", err).WithSource(source)
	}
	if info.Size() == 0 {
		return []byte{}, func() error { return nil }, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(info.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, cerrors.New(cerrors.KindIO, "mmap raw file", err).WithSource(source)
	}
	return data, func() error { return unix.Munmap(data) }, nil
}
