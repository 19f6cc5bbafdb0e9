package bits

import "fmt"

// PackBool packs the values of src into dst, one bit per value, and returns
// the number of bytes written, which is always ByteCount(uint(len(src))).
//
// Padding bits of the last byte are set to zero. The function panics if dst
// is too short to hold the packed values.
func PackBool(dst []byte, src []bool) int {
	n := ByteCount(uint(len(src)))
	if len(dst) < n {
		panic(fmt.Sprintf("bits.PackBool: destination buffer is too short to pack %d booleans: %d < %d", len(src), len(dst), n))
	}
	packBool(dst[:n], src)
	return n
}

// UnpackBool sets each value of dst to the corresponding bit of src and
// returns len(dst). Bits of src past len(dst) are ignored.
//
// The function panics if src holds fewer than len(dst) bits.
func UnpackBool(dst []bool, src []byte) int {
	if n := BitCount(len(src)); uint(len(dst)) > n {
		panic(fmt.Sprintf("bits.UnpackBool: source buffer is too short to unpack %d booleans: %d bits", len(dst), n))
	}
	unpackBool(dst, src[:ByteCount(uint(len(dst)))])
	return len(dst)
}
