package boolpack

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Shape describes the dimensions of a multi-dimensional boolean array stored
// in row-major order.
type Shape []int

// NumElements returns the number of elements of an array of this shape, which
// is the product of its dimensions.
func (s Shape) NumElements() (int, error) {
	if len(s) == 0 {
		return 0, fmt.Errorf("shape has no dimensions: %w", ErrInvalidShape)
	}
	numel := 1
	for i, dim := range s {
		if dim <= 0 {
			return 0, fmt.Errorf("dimension %d of shape %s is not positive: %w", i, s, ErrInvalidShape)
		}
		if numel > math.MaxInt/dim {
			return 0, fmt.Errorf("number of elements of shape %s overflows: %w", s, ErrInvalidShape)
		}
		numel *= dim
	}
	return numel, nil
}

// String returns the shape formatted as its dimensions separated by commas
// within parentheses, for example "(2,3)".
func (s Shape) String() string {
	b := new(strings.Builder)
	b.WriteByte('(')
	for i, dim := range s {
		if i != 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(dim))
	}
	b.WriteByte(')')
	return b.String()
}

// ParseShape parses a list of dimensions separated by commas, optionally
// enclosed in parentheses or brackets, such as "2,3" or "(2, 3)".
func ParseShape(s string) (Shape, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")

	var shape Shape
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		dim, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("malformed dimension %q: %w", field, ErrInvalidShape)
		}
		shape = append(shape, dim)
	}
	if _, err := shape.NumElements(); err != nil {
		return nil, err
	}
	return shape, nil
}

// UnpackShape unpacks enough values from packed to fill an array of the given
// shape, returning them as a flat slice in row-major order.
//
// The function returns an error wrapping ErrInvalidShape if the shape is not
// valid, or ErrOutOfRange if packed holds fewer bits than the shape has
// elements.
func UnpackShape(packed []byte, shape Shape) ([]bool, error) {
	numel, err := shape.NumElements()
	if err != nil {
		return nil, err
	}
	return Unpack(packed, numel)
}
