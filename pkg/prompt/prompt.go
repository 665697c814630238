package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/ergochat/readline"
	"golang.org/x/term"
	"io"
	"os"
	"strconv"
	"strings"
)

// A LineEditor reads single lines after showing a prompt.
//
// Terminals get a readline instance with line editing. Anything else, such
// as a pipe or a test's strings.Reader, is read with a bufio.Scanner and the
// prompt is written to out.
type LineEditor struct {
	rl *readline.Instance

	scanner *bufio.Scanner
	out     io.Writer
}

func New(in io.Reader, out io.Writer) *LineEditor {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		rl, err := readline.NewFromConfig(&readline.Config{Prompt: ""})
		if err == nil {
			return &LineEditor{rl: rl, out: out}
		}
		// Fall back to plain reads below.
	}

	return &LineEditor{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Interactive reports whether line editing is enabled.
func (le *LineEditor) Interactive() bool {
	return le.rl != nil
}

// ReadLine shows prompt and returns the next line without its line ending.
// Ctrl-C and end of input both return io.EOF.
func (le *LineEditor) ReadLine(prompt string) (string, error) {
	if le.rl != nil {
		le.rl.SetPrompt(prompt)

		line, err := le.rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			return "", io.EOF
		}
		return line, err
	}

	_, err := fmt.Fprint(le.out, prompt)
	if err != nil {
		return "", err
	}

	if !le.scanner.Scan() {
		if err := le.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	return le.scanner.Text(), nil
}

// ReadFloat reads one line and parses it as a float64. Surrounding spaces
// are ignored. Parse failures are returned as the *strconv.NumError, and
// running out of input as io.ErrUnexpectedEOF.
func (le *LineEditor) ReadFloat(prompt string) (float64, error) {
	line, err := le.ReadLine(prompt)
	if errors.Is(err, io.EOF) {
		return 0, io.ErrUnexpectedEOF
	} else if err != nil {
		return 0, err
	}

	return strconv.ParseFloat(strings.TrimSpace(line), 64)
}

func (le *LineEditor) Close() {
	if le.rl != nil {
		le.rl.Close()
		le.rl = nil
	}
}
