package dataset

import (
	"errors"
	"fmt"
	"io"

	"github.com/hupe1980/clusterkit/internal/resource"
)

var (
	// ErrTruncated is returned when idx data ends before the size its header
	// announces.
	ErrTruncated = fmt.Errorf("dataset: truncated idx data: %w", io.ErrUnexpectedEOF)

	// ErrFileNotFound is matched by every *FileNotFoundError.
	ErrFileNotFound = errors.New("dataset: file not found")

	// ErrInvalidFractions is returned when split fractions are negative or sum to more than 1.
	ErrInvalidFractions = errors.New("dataset: split fractions must be non-negative and sum to at most 1")

	// ErrEmptyDataset is returned by operations that need at least one record.
	ErrEmptyDataset = errors.New("dataset: no records")

	// ErrEmptyDelimiter is returned by DecodeCSV for an empty delimiter.
	ErrEmptyDelimiter = errors.New("dataset: empty delimiter")

	// ErrMemoryLimitExceeded is returned when a load would exceed the loader's memory budget.
	ErrMemoryLimitExceeded = resource.ErrMemoryLimitExceeded
)

// ErrBadMagic reports an idx header with an unexpected magic number.
type ErrBadMagic struct {
	Want uint32
	Got  uint32
}

func (e *ErrBadMagic) Error() string {
	return fmt.Sprintf("dataset: bad idx magic 0x%08x, want 0x%08x", e.Got, e.Want)
}

// ErrInvalidHeader reports an idx image header whose dimensions cannot
// describe the announced number of images.
type ErrInvalidHeader struct {
	Count  uint32
	Rows   uint32
	Cols   uint32
	Reason string
}

func (e *ErrInvalidHeader) Error() string {
	return fmt.Sprintf("dataset: invalid idx header (%d images of %dx%d): %s", e.Count, e.Rows, e.Cols, e.Reason)
}

// ErrCountMismatch reports a label file whose item count differs from the
// number of records it is applied to.
type ErrCountMismatch struct {
	Records int
	Labels  int
}

func (e *ErrCountMismatch) Error() string {
	return fmt.Sprintf("dataset: %d labels for %d records", e.Labels, e.Records)
}

// ErrParse reports a malformed line in delimited input. Line is 1-based.
type ErrParse struct {
	Line int
	Err  error
}

func (e *ErrParse) Error() string {
	return fmt.Sprintf("dataset: line %d: %v", e.Line, e.Err)
}

func (e *ErrParse) Unwrap() error { return e.Err }

// ErrFeatureLength reports a record whose feature vector length differs from
// the first record's.
type ErrFeatureLength struct {
	Index int
	Want  int
	Got   int
}

func (e *ErrFeatureLength) Error() string {
	return fmt.Sprintf("dataset: record %d has %d features, want %d", e.Index, e.Got, e.Want)
}

// ErrColumnOutOfRange reports a feature column that a record does not have.
type ErrColumnOutOfRange struct {
	Index  int
	Column int
	Len    int
}

func (e *ErrColumnOutOfRange) Error() string {
	return fmt.Sprintf("dataset: record %d has %d features, column %d out of range", e.Index, e.Len, e.Column)
}

// FileNotFoundError is returned by Loader when the named blob does not exist.
type FileNotFoundError struct {
	Name string
	Err  error
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("dataset: file not found: %s", e.Name)
}

// Is reports ErrFileNotFound as a match.
func (e *FileNotFoundError) Is(target error) bool {
	return target == ErrFileNotFound
}

func (e *FileNotFoundError) Unwrap() error { return e.Err }
