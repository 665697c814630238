package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/spf13/cobra"
	"github.com/willbeason/woztools/pkg/prompt"
	"github.com/willbeason/woztools/pkg/transforms"
	"io"
	"os"
	"strconv"
)

const (
	DefaultIterations = 10

	realPrompt = "Enter the real part of the complex number: "
	imagPrompt = "Enter the imaginary part of the complex number: "
)

var ErrIterations = errors.New("iterations must not be negative")

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mandelcheck [REAL IMAG]",
		Short: "Print the first Mandelbrot iterates of a point",
		Long: `Iterates z = z*z + c from z = 0 and prints every value of z.

c is REAL + IMAG*i. Without arguments both parts are prompted for.
Put -- before negative arguments: mandelcheck -- -0.75 0.1`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("accepts 0 or 2 arg(s), received %d", len(args))
			}
			return nil
		},
		RunE: runCmd,
	}

	cmd.Flags().IntP("iterations", "n", DefaultIterations, "number of iterations to print")

	return cmd
}

func runCmd(cmd *cobra.Command, args []string) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	iterations, err := cmd.Flags().GetInt("iterations")
	if err != nil {
		return err
	}
	if iterations < 0 {
		return fmt.Errorf("%w: %d", ErrIterations, iterations)
	}

	var c complex128
	if len(args) == 2 {
		c, err = parsePoint(args[0], args[1])
	} else {
		c, err = promptPoint(cmd.InOrStdin(), cmd.OutOrStdout())
	}
	if err != nil {
		return err
	}

	return printOrbit(cmd.OutOrStdout(), c, iterations)
}

func parsePoint(re, im string) (complex128, error) {
	r, err := strconv.ParseFloat(re, 64)
	if err != nil {
		return 0, err
	}

	i, err := strconv.ParseFloat(im, 64)
	if err != nil {
		return 0, err
	}

	return complex(r, i), nil
}

func promptPoint(in io.Reader, out io.Writer) (complex128, error) {
	le := prompt.New(in, out)
	defer le.Close()

	r, err := le.ReadFloat(realPrompt)
	if err != nil {
		return 0, err
	}

	i, err := le.ReadFloat(imagPrompt)
	if err != nil {
		return 0, err
	}

	return complex(r, i), nil
}

// printOrbit writes each iterate of z*z + c as soon as it is computed.
func printOrbit(w io.Writer, c complex128, iterations int) error {
	m := transforms.Mandelbrot{C: c}

	return transforms.Walk(m, 0, iterations, func(step int, z complex128) error {
		_, err := fmt.Fprintf(w, "Iteration %d: z = %v\n", step, z)
		return err
	})
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
