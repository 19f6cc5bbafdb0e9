//go:build purego

package bits

import "github.com/segmentio/boolpack/internal/unsafecast"

func packBool(dst []byte, src []bool) {
	Pack(dst, 1, unsafecast.BoolToBytes(src), 8)
}

func unpackBool(dst []bool, src []byte) {
	Unpack(unsafecast.BoolToBytes(dst), 8, src, 1)
}
