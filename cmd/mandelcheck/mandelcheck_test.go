package main

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	if args == nil {
		// cobra falls back to os.Args when given nil.
		args = []string{}
	}

	out := &strings.Builder{}
	cmd := mainCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(out)
	cmd.SetErr(io.Discard)

	err := cmd.Execute()
	return out.String(), err
}

func TestMandelcheck_Origin(t *testing.T) {
	got, err := run(t, "", "0", "0")
	if err != nil {
		t.Fatal(err)
	}

	var want strings.Builder
	for i := 1; i <= 10; i++ {
		want.WriteString("Iteration " + strconv.Itoa(i) + ": z = (0+0i)\n")
	}

	if got != want.String() {
		t.Errorf("got output\n%s\nwant\n%s", got, want.String())
	}
}

func TestMandelcheck_One(t *testing.T) {
	got, err := run(t, "", "1", "0")
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != DefaultIterations {
		t.Fatalf("got %d lines, want %d", len(lines), DefaultIterations)
	}

	want := map[int]string{
		0: "Iteration 1: z = (1+0i)",
		1: "Iteration 2: z = (2+0i)",
		2: "Iteration 3: z = (5+0i)",
		3: "Iteration 4: z = (26+0i)",
		5: "Iteration 6: z = (458330+0i)",
		6: "Iteration 7: z = (2.10066388901e+11+0i)",
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d = %q, want %q", i, lines[i], w)
		}
	}
}

func TestMandelcheck_Diverging(t *testing.T) {
	got, err := run(t, "", "--", "-5", "-5")
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != DefaultIterations {
		t.Fatalf("got %d lines, want %d", len(lines), DefaultIterations)
	}
	if want := "Iteration 1: z = (-5-5i)"; lines[0] != want {
		t.Errorf("line 0 = %q, want %q", lines[0], want)
	}
}

func TestMandelcheck_Iterations(t *testing.T) {
	got, err := run(t, "", "-n", "3", "1", "0")
	if err != nil {
		t.Fatal(err)
	}

	want := "Iteration 1: z = (1+0i)\nIteration 2: z = (2+0i)\nIteration 3: z = (5+0i)\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	_, err = run(t, "", "--iterations=-1", "1", "0")
	if !errors.Is(err, ErrIterations) {
		t.Errorf("got error %v, want %v", err, ErrIterations)
	}
}

func TestMandelcheck_Prompted(t *testing.T) {
	got, err := run(t, "1\n0\n")
	if err != nil {
		t.Fatal(err)
	}

	wantPrefix := realPrompt + imagPrompt + "Iteration 1: z = (1+0i)\n"
	if !strings.HasPrefix(got, wantPrefix) {
		t.Errorf("got %q, want prefix %q", got, wantPrefix)
	}
	if n := strings.Count(got, "Iteration "); n != DefaultIterations {
		t.Errorf("got %d iterations, want %d", n, DefaultIterations)
	}
}

func TestMandelcheck_BadInput(t *testing.T) {
	tcs := []struct {
		name    string
		stdin   string
		args    []string
		wantOut string
	}{{
		name:    "bad real prompt",
		stdin:   "one\n0\n",
		wantOut: realPrompt,
	}, {
		name:    "bad imaginary prompt",
		stdin:   "1\ni\n",
		wantOut: realPrompt + imagPrompt,
	}, {
		name:  "bad argument",
		args:  []string{"1", "x"},
		stdin: "",
	}}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got, err := run(t, tc.stdin, tc.args...)
			if !errors.Is(err, strconv.ErrSyntax) {
				t.Errorf("got error %v, want %v", err, strconv.ErrSyntax)
			}
			if got != tc.wantOut {
				t.Errorf("got output %q, want %q", got, tc.wantOut)
			}
		})
	}
}

func TestMandelcheck_MissingInput(t *testing.T) {
	_, err := run(t, "1\n")
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("got error %v, want %v", err, io.ErrUnexpectedEOF)
	}
}

func TestMandelcheck_OneArg(t *testing.T) {
	_, err := run(t, "", "1")
	if err == nil {
		t.Error("expected an error for a single argument")
	}
}
