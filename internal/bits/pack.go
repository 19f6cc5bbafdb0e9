package bits

// Pack copies words of size srcWidth (in bits) from the src buffer to words
// of size dstWidth (in bits) in the dst buffer, returning the number of words
// that were packed.
//
// When dstWidth is greater than srcWidth, the upper bits of the destination
// word are set to zero. When srcWidth is greater than dstWidth, the upper bits
// of the source are discarded, which is how booleans stored one per byte are
// packed to one per bit (srcWidth=8, dstWidth=1).
//
// The function always writes full bytes to dst, if the last word written does
// not end on a byte boundary, the remaining bits are set to zero.
//
// The source and destination buffers must not overlap.
func Pack(dst []byte, dstWidth uint, src []byte, srcWidth uint) int {
	width := srcWidth
	if dstWidth < width {
		width = dstWidth
	}
	return copyWords(dst, dstWidth, src, srcWidth, width)
}

// Unpack is the inverse of Pack for a destination width greater or equal to
// the source width: each word of src is zero-extended into dst. Booleans are
// unpacked to one per byte with srcWidth=1 and dstWidth=8.
//
// The number of words is bounded by both buffers, a short dst truncates the
// output rather than reading more of src.
func Unpack(dst []byte, dstWidth uint, src []byte, srcWidth uint) int {
	return copyWords(dst, dstWidth, src, srcWidth, srcWidth)
}

// copyWords copies the low width bits of each srcWidth word of src to the
// dstWidth words of dst, 8 bits at a time.
func copyWords(dst []byte, dstWidth uint, src []byte, srcWidth, width uint) int {
	wordCount := BitCount(len(src)) / srcWidth
	if n := BitCount(len(dst)) / dstWidth; n < wordCount {
		wordCount = n
	}
	if wordCount == 0 {
		return 0
	}
	src = src[:ByteCount(wordCount*srcWidth)]
	dst = dst[:ByteCount(wordCount*dstWidth)]

	for i := range dst {
		dst[i] = 0
	}

	for w, si, di := uint(0), uint(0), uint(0); w < wordCount; w++ {
		for n := uint(0); n < width; n += 8 {
			c := width - n
			if c > 8 {
				c = 8
			}
			store(dst, di+n, c, load(src, si+n, c))
		}
		si += srcWidth
		di += dstWidth
	}

	return int(wordCount)
}
