package mozmon

import (
	"cmp"
	"errors"
	"fmt"
	"github.com/marcinbor85/gohex"
	"io"
	"slices"
	"strings"
)

var (
	ErrIntelHex      = errors.New("invalid intel hex image")
	ErrUnknownFormat = errors.New("unknown input format")
)

// InputFormat is how an input file is encoded.
type InputFormat string

const (
	Binary   InputFormat = "bin"
	IntelHex InputFormat = "ihex"
)

func ParseInputFormat(s string) (InputFormat, error) {
	switch f := InputFormat(strings.ToLower(s)); f {
	case Binary, IntelHex:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (want %q or %q)", ErrUnknownFormat, s, Binary, IntelHex)
	}
}

// IntelHexRows parses an Intel HEX image and returns the rows of every data
// segment, in address order. Each segment starts a new row at its own load
// address.
func IntelHexRows(r io.Reader) ([]Row, error) {
	mem := gohex.NewMemory()
	err := mem.ParseIntelHex(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIntelHex, err)
	}

	segments := mem.GetDataSegments()
	slices.SortFunc(segments, func(a, b gohex.DataSegment) int {
		return cmp.Compare(a.Address, b.Address)
	})

	var rows []Row
	for _, segment := range segments {
		rows = append(rows, Rows(segment.Data, segment.Address)...)
	}

	return rows, nil
}

// DumpIntelHex formats every data segment of an Intel HEX image.
func DumpIntelHex(r io.Reader) (string, error) {
	rows, err := IntelHexRows(r)
	if err != nil {
		return "", err
	}

	return join(rows), nil
}
