package boolpack_test

import (
	"errors"
	"math"
	"testing"

	"github.com/segmentio/boolpack"
)

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape boolpack.Shape
		numel int
		err   error
	}{
		{shape: boolpack.Shape{1}, numel: 1},
		{shape: boolpack.Shape{3}, numel: 3},
		{shape: boolpack.Shape{2, 3}, numel: 6},
		{shape: boolpack.Shape{2, 3, 4}, numel: 24},
		{shape: nil, err: boolpack.ErrInvalidShape},
		{shape: boolpack.Shape{}, err: boolpack.ErrInvalidShape},
		{shape: boolpack.Shape{2, 0}, err: boolpack.ErrInvalidShape},
		{shape: boolpack.Shape{-1, 4}, err: boolpack.ErrInvalidShape},
		{shape: boolpack.Shape{math.MaxInt, 2}, err: boolpack.ErrInvalidShape},
	}

	for _, test := range tests {
		t.Run(test.shape.String(), func(t *testing.T) {
			numel, err := test.shape.NumElements()
			if !errors.Is(err, test.err) {
				t.Fatalf("error mismatch: want=%v got=%v", test.err, err)
			}
			if numel != test.numel {
				t.Errorf("number of elements mismatch: want=%d got=%d", test.numel, numel)
			}
		})
	}
}

func TestParseShape(t *testing.T) {
	tests := []struct {
		input string
		shape string
		err   error
	}{
		{input: "4", shape: "(4)"},
		{input: "2,3", shape: "(2,3)"},
		{input: "(2, 3, 4)", shape: "(2,3,4)"},
		{input: "[5,1]", shape: "(5,1)"},
		{input: "", err: boolpack.ErrInvalidShape},
		{input: "2,x", err: boolpack.ErrInvalidShape},
		{input: "2,-3", err: boolpack.ErrInvalidShape},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			shape, err := boolpack.ParseShape(test.input)
			if !errors.Is(err, test.err) {
				t.Fatalf("error mismatch: want=%v got=%v", test.err, err)
			}
			if err == nil && shape.String() != test.shape {
				t.Errorf("shape mismatch: want=%s got=%s", test.shape, shape)
			}
		})
	}
}

func TestUnpackShape(t *testing.T) {
	packed := boolpack.Pack([]bool{
		true, false, true,
		false, true, true,
	})

	values, err := boolpack.UnpackShape(packed, boolpack.Shape{2, 3})
	if err != nil {
		t.Fatal(err)
	}
	assertBoolsEqual(t, []bool{true, false, true, false, true, true}, values)

	values, err = boolpack.UnpackShape(packed, boolpack.Shape{1, 4})
	if err != nil {
		t.Fatal(err)
	}
	assertBoolsEqual(t, []bool{true, false, true, false}, values)
}

func TestUnpackShapeErrors(t *testing.T) {
	packed := []byte{0xFF}

	if _, err := boolpack.UnpackShape(packed, boolpack.Shape{3, 3}); !errors.Is(err, boolpack.ErrOutOfRange) {
		t.Errorf("expected an out of range error but got %v", err)
	}
	if _, err := boolpack.UnpackShape(packed, boolpack.Shape{0}); !errors.Is(err, boolpack.ErrInvalidShape) {
		t.Errorf("expected an invalid shape error but got %v", err)
	}
}
