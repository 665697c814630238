package mozmon

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	// DefaultStart is where the Woz monitor expects programs to be typed in.
	DefaultStart = 0x0280

	// RowWidth is the maximum number of bytes rendered on one line.
	RowWidth = 8
)

// A Row is one line of a dump: the address of its first byte and up to
// RowWidth bytes.
type Row struct {
	Address uint32
	Bytes   []byte
}

// String renders the row as "AAAA: BB BB ...".
//
// Addresses wider than four hex digits are not truncated.
func (r Row) String() string {
	sb := strings.Builder{}
	sb.Grow(6 + 3*len(r.Bytes))

	fmt.Fprintf(&sb, "%04X:", r.Address)
	for _, b := range r.Bytes {
		fmt.Fprintf(&sb, " %02X", b)
	}

	return sb.String()
}

// Rows splits data into consecutive rows starting at address start.
// The final row is short if len(data) is not a multiple of RowWidth.
func Rows(data []byte, start uint32) []Row {
	result := make([]Row, 0, (len(data)+RowWidth-1)/RowWidth)

	address := start
	for i := 0; i < len(data); i += RowWidth {
		chunk := data[i:min(i+RowWidth, len(data))]
		result = append(result, Row{Address: address, Bytes: chunk})
		address += uint32(len(chunk))
	}

	return result
}

// Format renders data as newline-separated rows with no trailing newline.
func Format(data []byte, start uint32) string {
	return join(Rows(data, start))
}

// Dump reads all of r and formats it.
func Dump(r io.Reader, start uint32) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	return Format(data, start), nil
}

// DumpFile reads the file at path and formats it. Errors from opening or
// reading the file are returned unchanged.
func DumpFile(path string, start uint32) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	return Format(data, start), nil
}

func join(rows []Row) string {
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = row.String()
	}

	return strings.Join(lines, "\n")
}
