package mmap

import "errors"

// AccessPattern is a read-ahead hint passed to the kernel.
type AccessPattern int

const (
	// AccessDefault leaves read-ahead to the kernel.
	AccessDefault AccessPattern = iota
	// AccessSequential suits decoders that scan a file front to back,
	// such as idx headers followed by pixel rows.
	AccessSequential
	// AccessRandom disables aggressive read-ahead.
	AccessRandom
)

var (
	// ErrClosed is returned by reads on a mapping after Close.
	ErrClosed = errors.New("mmap: mapping is closed")
	// ErrInvalidSize is returned when a file is too large to map on this platform.
	ErrInvalidSize = errors.New("mmap: invalid file size")
	// ErrInvalidOffset is returned for negative read offsets.
	ErrInvalidOffset = errors.New("mmap: invalid offset")
)
