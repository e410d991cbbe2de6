package mmap

import (
	"fmt"
	"io"
	"math"
	"os"
	"sync/atomic"
)

// Mapping is a read-only view of a whole file. It implements io.ReaderAt
// so LocalStore can hand it out as a blob without copying.
type Mapping struct {
	data   []byte
	unmap  func([]byte) error
	closed atomic.Bool
}

// Open maps path. A missing file yields an error matching os.ErrNotExist.
// Empty files produce an empty Mapping without a kernel mapping.
func Open(path string) (*Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}

	switch n := fi.Size(); {
	case n == 0:
		return &Mapping{}, nil
	case n > math.MaxInt:
		return nil, fmt.Errorf("%w: %s is %d bytes", ErrInvalidSize, path, n)
	default:
		data, unmap, err := osMap(f, int(n))
		if err != nil {
			return nil, &os.PathError{Op: "mmap", Path: path, Err: err}
		}
		return &Mapping{data: data, unmap: unmap}, nil
	}
}

func (m *Mapping) live() ([]byte, error) {
	if m.closed.Load() {
		return nil, ErrClosed
	}
	return m.data, nil
}

// Bytes returns the mapped file, or nil after Close.
func (m *Mapping) Bytes() []byte {
	data, _ := m.live()
	return data
}

// Size returns the file size.
func (m *Mapping) Size() int { return len(m.data) }

// Advise passes an access hint to the kernel.
func (m *Mapping) Advise(pattern AccessPattern) error {
	data, err := m.live()
	if err != nil {
		return err
	}
	return osAdvise(data, pattern)
}

// ReadAt implements io.ReaderAt.
func (m *Mapping) ReadAt(p []byte, off int64) (int, error) {
	data, err := m.live()
	switch {
	case err != nil:
		return 0, err
	case off < 0:
		return 0, ErrInvalidOffset
	case off >= int64(len(data)):
		return 0, io.EOF
	}

	n := copy(p, data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// Close unmaps the file. Later calls are no-ops.
func (m *Mapping) Close() error {
	if m.closed.Swap(true) || m.unmap == nil {
		return nil
	}
	return m.unmap(m.data)
}
