// Package bits implements the bit-level kernels used to pack booleans into
// bytes and to unpack them back.
//
// Bits are always addressed least significant first: bit i of a buffer is
// bit (i % 8) of byte (i / 8).
package bits

// BitCount returns the number of bits held in count bytes.
func BitCount(count int) uint {
	return 8 * uint(count)
}

// ByteCount returns the number of bytes needed to hold count bits.
func ByteCount(count uint) int {
	return int((count + 7) / 8)
}

// IndexShift8 splits a bit index into the index of the byte holding it and
// the position of the bit within that byte.
func IndexShift8(bitIndex uint) (index, shift uint) {
	return bitIndex / 8, bitIndex % 8
}

// load reads n bits (n <= 8) starting at bitIndex in b.
func load(b []byte, bitIndex, n uint) byte {
	i, j := IndexShift8(bitIndex)
	v := uint16(b[i])
	if i+1 < uint(len(b)) {
		v |= uint16(b[i+1]) << 8
	}
	return byte((v >> j) & (1<<n - 1))
}

// store writes the n low bits (n <= 8) of v at bitIndex in b. The target bits
// are expected to be zero.
func store(b []byte, bitIndex, n uint, v byte) {
	i, j := IndexShift8(bitIndex)
	w := (uint16(v) & (1<<n - 1)) << j
	b[i] |= byte(w)
	if w > 0xFF {
		b[i+1] |= byte(w >> 8)
	}
}
