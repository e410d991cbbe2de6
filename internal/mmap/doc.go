// Package mmap provides read-only memory-mapped file access.
//
// Dataset files (idx images and labels, CSV) are mapped once and then read
// sequentially through io.ReaderAt, so large MNIST-style inputs are never
// copied into the Go heap before decoding.
//
// # Usage
//
//	m, err := mmap.Open("train-images-idx3-ubyte")
//	if err != nil { ... }
//	defer m.Close()
//
//	_ = m.Advise(mmap.AccessSequential)
//	data := m.Bytes()
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with madvise(2) for access hints
//   - Windows: CreateFileMapping/MapViewOfFile (Advise is a no-op)
package mmap
