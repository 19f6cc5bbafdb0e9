// Package buffers contains helpers to reuse the memory of caller-provided
// slices.
package buffers

// Grow extends b by n elements and returns the result. The backing array is
// reused when it has enough capacity, otherwise it is reallocated to at
// least double its capacity. The values of the n new elements are undefined.
func Grow[T any](b []T, n int) []T {
	if cap(b)-len(b) < n {
		size := 2 * cap(b)
		if size < len(b)+n {
			size = len(b) + n
		}
		g := make([]T, len(b), size)
		copy(g, b)
		b = g
	}
	return b[:len(b)+n]
}
