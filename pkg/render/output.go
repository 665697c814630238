package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// WritePlain writes rows one per line.
func WritePlain(w io.Writer, rows []string) error {
	bw := bufio.NewWriter(w)
	for _, row := range rows {
		_, err := fmt.Fprintln(bw, row)
		if err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteAsm writes rows as xa string directives terminated by a zero byte,
// preceded by description as a comment.
//
// ':' separates statements in xa so it is replaced in the comment and
// escaped in strings.
func WriteAsm(w io.Writer, description string, rows []string) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "; %s\n", strings.ReplaceAll(description, ":", "/"))
	for _, row := range rows {
		fmt.Fprintf(bw, "  .byte \"%s\"\n", strings.ReplaceAll(row, ":", `\:`))
	}
	fmt.Fprintln(bw, "  .byte 0")

	return bw.Flush()
}
