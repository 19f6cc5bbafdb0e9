// Command boolpack packs strings of bits into bytes and back, and prints the
// layout of packed buffers.
//
//	$ boolpack pack 101000001
//	0501
//	$ boolpack unpack --numel 3 05
//	101
//	$ boolpack inspect --numel 9 0501
package main

import (
	"fmt"
	"os"
	"strings"

	color "github.com/logrusorgru/aurora/v3"
	"github.com/segmentio/boolpack/internal/debug"
	"github.com/segmentio/cli"
)

func main() {
	cli.Exec(cli.CommandSet{
		"pack":    cli.Command(packCommand),
		"unpack":  cli.Command(unpackCommand),
		"inspect": cli.Command(inspectCommand),
	})
}

func perrorf(format string, args ...interface{}) {
	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}
	_, _ = fmt.Fprintf(os.Stderr, color.Red(format).String(), args...)
}

func pdebugf(format string, args ...interface{}) {
	debug.Format(color.Gray(12, format).String(), args...)
}

func fatalf(format string, args ...interface{}) {
	perrorf(format, args...)
	os.Exit(1)
}
