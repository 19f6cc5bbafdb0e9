package main

import (
	"fmt"
	"os"

	"github.com/segmentio/boolpack"
	"github.com/segmentio/boolpack/internal/debug"
)

type packFlags struct {
	_     struct{} `help:"Pack a string of 0s and 1s into bytes printed in hexadecimal"`
	Debug bool     `flag:"--debug" help:"Display debugging logs" default:"false"`
	JSON  bool     `flag:"--json" help:"Read the values as a JSON array of booleans" default:"false"`
}

func packCommand(flags packFlags, input string) {
	debug.Toggle(flags.Debug)
	defer debug.Timer("pack")()

	values, err := parseValues(input, flags.JSON)
	if err != nil {
		fatalf("Could not parse values: %s", err)
	}

	packed := boolpack.Pack(values)
	pdebugf("packed %d values into %d bytes", len(values), len(packed))
	fmt.Println(formatHex(packed))
}

type unpackFlags struct {
	_     struct{} `help:"Unpack bytes given in hexadecimal into a string of 0s and 1s"`
	Debug bool     `flag:"--debug" help:"Display debugging logs" default:"false"`
	JSON  bool     `flag:"--json" help:"Print the values as a JSON array of booleans" default:"false"`
	Numel int      `flag:"-n,--numel" help:"Number of values to unpack, defaults to all the bits of the input" default:"-1"`
	Shape string   `flag:"-s,--shape" help:"Comma-separated dimensions of the unpacked array, instead of --numel" default:"-"`
}

func unpackCommand(flags unpackFlags, input string) {
	debug.Toggle(flags.Debug)
	defer debug.Timer("unpack")()

	packed, err := parseHex(input)
	if err != nil {
		fatalf("Could not parse bytes: %s", err)
	}

	var shape boolpack.Shape
	var values []bool

	switch {
	case flags.Shape != "":
		if shape, err = boolpack.ParseShape(flags.Shape); err != nil {
			fatalf("Could not parse shape: %s", err)
		}
		pdebugf("unpacking %d bytes to shape %s", len(packed), shape)
		values, err = boolpack.UnpackShape(packed, shape)
	case flags.Numel >= 0:
		pdebugf("unpacking %d values from %d bytes", flags.Numel, len(packed))
		values, err = boolpack.Unpack(packed, flags.Numel)
	default:
		values, err = boolpack.Unpack(packed, 8*len(packed))
	}
	if err != nil {
		fatalf("Could not unpack values: %s", err)
	}

	if !flags.JSON {
		fmt.Println(formatBits(values))
		return
	}

	b, err := marshalValues(values, shape)
	if err != nil {
		fatalf("Could not encode values: %s", err)
	}
	fmt.Println(string(b))
}

type inspectFlags struct {
	_     struct{} `help:"Print the bit layout of bytes given in hexadecimal"`
	Debug bool     `flag:"--debug" help:"Display debugging logs" default:"false"`
	Numel int      `flag:"-n,--numel" help:"Number of packed values, bits past it are shown as padding" default:"-1"`
}

func inspectCommand(flags inspectFlags, input string) {
	debug.Toggle(flags.Debug)

	packed, err := parseHex(input)
	if err != nil {
		fatalf("Could not parse bytes: %s", err)
	}

	numel := flags.Numel
	if numel < 0 {
		numel = 8 * len(packed)
	}
	if err := writeLayout(os.Stdout, packed, numel); err != nil {
		fatalf("Could not inspect bytes: %s", err)
	}
}
