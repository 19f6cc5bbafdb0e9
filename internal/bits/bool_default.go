//go:build !purego

package bits

import (
	"encoding/binary"

	"github.com/segmentio/boolpack/internal/unsafecast"
)

const (
	lsb8   = 0x0101010101010101
	gather = 0x0102040810204080
	spread = 0x8040201008040201
	carry  = 0x7F7F7F7F7F7F7F7F
)

// packBool loads 8 booleans at a time as a little-endian word, byte k holding
// 0 or 1. Multiplying by the gather constant moves byte k to bit 56+k without
// carries, so the top byte of the product is the packed value.
func packBool(dst []byte, src []bool) {
	b := unsafecast.BoolToBytes(src)
	n := len(b) / 8

	for i := 0; i < n; i++ {
		x := binary.LittleEndian.Uint64(b[i*8:]) & lsb8
		dst[i] = byte((x * gather) >> 56)
	}

	if tail := src[n*8:]; len(tail) != 0 {
		v := byte(0)
		for i, t := range tail {
			if t {
				v |= 1 << uint(i)
			}
		}
		dst[n] = v
	}
}

// unpackBool broadcasts each source byte to the 8 bytes of a word, keeps bit
// k in byte k, then turns every non-zero byte into 1 by carrying into its
// high bit.
func unpackBool(dst []bool, src []byte) {
	b := unsafecast.BoolToBytes(dst)
	n := len(b) / 8

	for i, v := range src[:n] {
		x := (uint64(v) * lsb8) & spread
		x = ((x + carry) >> 7) & lsb8
		binary.LittleEndian.PutUint64(b[i*8:], x)
	}

	for i := n * 8; i < len(dst); i++ {
		dst[i] = (src[i/8]>>(uint(i)%8))&1 != 0
	}
}
