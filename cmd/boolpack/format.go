package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/segmentio/boolpack"
	"github.com/segmentio/encoding/json"
)

// parseValues reads booleans either from a string of 0s and 1s, where
// underscores and spaces are ignored, or from a JSON array.
func parseValues(s string, isJSON bool) ([]bool, error) {
	if isJSON {
		var values []bool
		if err := json.Unmarshal([]byte(s), &values); err != nil {
			return nil, err
		}
		return values, nil
	}

	values := make([]bool, 0, len(s))
	for i, c := range s {
		switch c {
		case '0':
			values = append(values, false)
		case '1':
			values = append(values, true)
		case '_', ' ', '\t', '\n':
		default:
			return nil, fmt.Errorf("invalid character %q at offset %d", c, i)
		}
	}
	return values, nil
}

func formatBits(values []bool) string {
	b := make([]byte, len(values))
	for i, v := range values {
		if v {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
	}
	return string(b)
}

// parseHex decodes a hexadecimal string, ignoring an optional 0x prefix and
// any white space.
func parseHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	s = strings.Join(strings.Fields(s), "")
	return hex.DecodeString(s)
}

func formatHex(b []byte) string {
	return hex.EncodeToString(b)
}

// marshalValues encodes values to JSON, nested in row-major order by shape
// when it has more than one dimension.
func marshalValues(values []bool, shape boolpack.Shape) ([]byte, error) {
	if len(shape) < 2 {
		return json.Marshal(values)
	}
	return json.Marshal(nest(values, shape))
}

func nest(values []bool, shape boolpack.Shape) interface{} {
	if len(shape) == 1 {
		return values
	}
	stride := len(values) / shape[0]
	rows := make([]interface{}, shape[0])
	for i := range rows {
		rows[i] = nest(values[i*stride:(i+1)*stride], shape[1:])
	}
	return rows
}

// writeLayout prints one row per byte of packed, showing which values each
// bit holds. Bits at or past numel are displayed as padding.
func writeLayout(w io.Writer, packed []byte, numel int) error {
	if numel > 8*len(packed) {
		return fmt.Errorf("cannot inspect %d values in %d bytes: %w", numel, len(packed), boolpack.ErrOutOfRange)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Byte", "Hex", "Bits (LSB first)", "Values"})
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for i, b := range packed {
		first := 8 * i
		bits := make([]byte, 8)
		for j := range bits {
			switch {
			case first+j >= numel:
				bits[j] = '.'
			case (b>>uint(j))&1 != 0:
				bits[j] = '1'
			default:
				bits[j] = '0'
			}
		}

		values := "padding"
		if first < numel {
			last := first + 7
			if last >= numel {
				last = numel - 1
			}
			values = strconv.Itoa(first) + "-" + strconv.Itoa(last)
		}

		table.Append([]string{
			strconv.Itoa(i),
			fmt.Sprintf("%02x", b),
			string(bits),
			values,
		})
	}

	table.Render()
	return nil
}
