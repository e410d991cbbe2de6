package dataset

import (
	"encoding/binary"
	"errors"
	"io"
	"math"
	"math/bits"
)

const (
	// ImageMagic is the idx magic number of an unsigned-byte image file.
	ImageMagic uint32 = 0x00000803
	// LabelMagic is the idx magic number of an unsigned-byte label file.
	LabelMagic uint32 = 0x00000801
)

type imageHeader struct {
	Magic uint32
	Count uint32
	Rows  uint32
	Cols  uint32
}

type labelHeader struct {
	Magic uint32
	Count uint32
}

// DecodeImages reads an idx image file. Each image becomes one record whose
// Raw field holds rows*cols pixel bytes. Features are left empty until
// Normalize runs.
func DecodeImages(r io.Reader) (*Dataset, error) {
	return decodeImages(r, nil)
}

// decodeImages validates the header, passes the estimated decoded size to
// reserve (when set) and only then reads the pixels.
func decodeImages(r io.Reader, reserve func(int64) error) (*Dataset, error) {
	var h imageHeader
	if err := binary.Read(r, binary.BigEndian, &h); err != nil {
		return nil, truncated(err)
	}
	if h.Magic != ImageMagic {
		return nil, &ErrBadMagic{Want: ImageMagic, Got: h.Magic}
	}

	footprint, err := h.footprint()
	if err != nil {
		return nil, err
	}
	if reserve != nil {
		if err := reserve(footprint); err != nil {
			return nil, err
		}
	}

	size := int(h.Rows) * int(h.Cols)
	ds := &Dataset{
		records: make([]Record, 0, min(int(h.Count), 1<<16)),
		rows:    int(h.Rows),
		cols:    int(h.Cols),
	}

	for i := uint32(0); i < h.Count; i++ {
		raw := make([]uint8, size)
		if _, err := io.ReadFull(r, raw); err != nil {
			return nil, truncated(err)
		}
		ds.records = append(ds.records, Record{Raw: raw})
	}
	return ds, nil
}

// bytesPerPixel is the decoded cost of one pixel: the raw byte plus the
// float64 feature Normalize derives from it.
const bytesPerPixel = 1 + 8

// footprint returns the memory the decoded and normalized images will hold.
func (h imageHeader) footprint() (int64, error) {
	if h.Count == 0 {
		return 0, nil
	}
	if h.Rows == 0 || h.Cols == 0 {
		return 0, &ErrInvalidHeader{Count: h.Count, Rows: h.Rows, Cols: h.Cols, Reason: "empty image dimensions"}
	}

	hi, pixels := bits.Mul64(uint64(h.Rows), uint64(h.Cols))
	if hi == 0 {
		hi, pixels = bits.Mul64(pixels, uint64(h.Count))
	}
	if hi != 0 || pixels > math.MaxInt64/bytesPerPixel || uint64(h.Rows)*uint64(h.Cols) > math.MaxInt {
		return 0, &ErrInvalidHeader{Count: h.Count, Rows: h.Rows, Cols: h.Cols, Reason: "too large"}
	}
	return int64(pixels) * bytesPerPixel, nil
}

// DecodeLabels reads an idx label file and stores one label per record of ds.
// The label count must equal ds.Len().
func DecodeLabels(r io.Reader, ds *Dataset) error {
	var h labelHeader
	if err := binary.Read(r, binary.BigEndian, &h); err != nil {
		return truncated(err)
	}
	if h.Magic != LabelMagic {
		return &ErrBadMagic{Want: LabelMagic, Got: h.Magic}
	}
	if int64(h.Count) != int64(ds.Len()) {
		return &ErrCountMismatch{Records: ds.Len(), Labels: int(h.Count)}
	}

	labels := make([]byte, h.Count)
	if _, err := io.ReadFull(r, labels); err != nil {
		return truncated(err)
	}
	for i, l := range labels {
		ds.records[i].Label = int(l)
	}
	return nil
}

func truncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}
	return err
}
