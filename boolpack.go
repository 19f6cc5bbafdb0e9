// Package boolpack packs boolean values into bytes, eight values per byte,
// and unpacks them back.
//
// Value i of a boolean sequence is stored in bit (i % 8) of byte (i / 8),
// least significant bit first. When the number of values is not a multiple
// of 8, the unused high bits of the last byte are set to zero by Pack and are
// never interpreted as data by Unpack.
//
// All functions of the package are safe to call concurrently, they never
// modify their inputs and always return memory owned by the caller.
package boolpack

import (
	"errors"
	"fmt"

	"github.com/segmentio/boolpack/internal/bits"
	"github.com/segmentio/boolpack/internal/buffers"
)

var (
	// ErrOutOfRange is returned when more values are requested from a packed
	// buffer than it holds bits. It indicates a bug in the caller, retrying
	// the operation cannot succeed.
	ErrOutOfRange = errors.New("number of values out of range of the packed buffer")

	// ErrInvalidShape is returned when a shape has no dimensions, a dimension
	// which is not positive, or too many elements to be represented.
	ErrInvalidShape = errors.New("invalid shape")
)

// PackedSize returns the number of bytes needed to pack n boolean values.
func PackedSize(n int) int {
	if n <= 0 {
		return 0
	}
	return bits.ByteCount(uint(n))
}

// Pack returns a newly allocated byte slice holding the values of bools, one
// bit per value. The returned slice has length PackedSize(len(bools)), and is
// empty but not nil when bools is empty.
func Pack(bools []bool) []byte {
	return AppendPack(make([]byte, 0, PackedSize(len(bools))), bools)
}

// AppendPack packs src and appends the result to dst, returning the extended
// buffer.
func AppendPack(dst []byte, src []bool) []byte {
	offset := len(dst)
	dst = buffers.Grow(dst, PackedSize(len(src)))
	bits.PackBool(dst[offset:], src)
	return dst
}

// Unpack returns a newly allocated slice of the first numel values packed in
// packed.
//
// Only the first numel bits of packed are read, the remaining bits of the
// last byte are treated as padding. The function returns an error wrapping
// ErrOutOfRange if numel is negative or greater than the number of bits in
// packed, in which case no values are returned.
func Unpack(packed []byte, numel int) ([]bool, error) {
	if err := checkRange(packed, numel); err != nil {
		return nil, err
	}
	return AppendUnpack(make([]bool, 0, numel), packed, numel)
}

// AppendUnpack unpacks the first numel values of src and appends them to dst,
// returning the extended buffer. On error, dst is returned unchanged.
func AppendUnpack(dst []bool, src []byte, numel int) ([]bool, error) {
	if err := checkRange(src, numel); err != nil {
		return dst, err
	}
	offset := len(dst)
	dst = buffers.Grow(dst, numel)
	bits.UnpackBool(dst[offset:], src)
	return dst, nil
}

func checkRange(packed []byte, numel int) error {
	if numel < 0 {
		return fmt.Errorf("cannot unpack a negative number of values (%d): %w", numel, ErrOutOfRange)
	}
	if n := bits.BitCount(len(packed)); uint(numel) > n {
		return fmt.Errorf("cannot unpack %d values from %d bytes holding %d bits: %w", numel, len(packed), n, ErrOutOfRange)
	}
	return nil
}
