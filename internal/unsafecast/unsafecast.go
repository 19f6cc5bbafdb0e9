// Package unsafecast exposes functions to bypass the Go type system and
// reinterpret the memory of slices without copying.
//
// The functions are unsafe in the sense that the returned slices share their
// backing array with the input: writes through one are visible through the
// other, and the caller is responsible for keeping the values valid for both
// element types.
package unsafecast

import "unsafe"

// Slice converts the data slice of type []From to a slice of type []To sharing
// the same backing array. The length and capacity of the returned slice are
// scaled by the ratio of the element sizes, truncating partial elements.
func Slice[To, From any](data []From) []To {
	var zf From
	var zt To
	if cap(data) == 0 {
		return nil
	}
	fromSize := unsafe.Sizeof(zf)
	toSize := unsafe.Sizeof(zt)
	p := unsafe.Pointer(&data[:1][0])
	s := unsafe.Slice((*To)(p), (uintptr(cap(data))*fromSize)/toSize)
	return s[:(uintptr(len(data))*fromSize)/toSize]
}

// BoolToBytes returns the memory of data as a byte slice where false is 0 and
// true is 1.
func BoolToBytes(data []bool) []byte {
	return Slice[byte](data)
}
