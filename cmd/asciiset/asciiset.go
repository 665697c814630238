package main

import (
	"context"
	"fmt"
	"github.com/spf13/cobra"
	"github.com/willbeason/woztools/pkg/render"
	"os"
)

const (
	flagAsm     = "asm"
	flagX       = "x"
	flagY       = "y"
	flagRX      = "rx"
	flagRY      = "ry"
	flagJulia   = "julia"
	flagCR      = "cr"
	flagCI      = "ci"
	flagPower   = "power"
	flagPalette = "palette"
)

// sceneFlags select a single scene instead of the presets.
var sceneFlags = []string{flagX, flagY, flagRX, flagRY, flagJulia, flagCR, flagCI, flagPower}

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "asciiset",
		Short: "Render Mandelbrot and Julia sets for a 40x24 text screen",
		Long: `Without scene flags every preset screen is rendered.

Steps (--rx, --ry) are in 256ths, so --rx 19 moves 19/256 per column.`,
		Args: cobra.ExactArgs(0),
		RunE: runCmd,
	}

	flags := cmd.Flags()
	flags.Bool(flagAsm, false, "write .byte directives instead of plain text")
	flags.Float64(flagX, -0.61, "real part of the screen center")
	flags.Float64(flagY, 0, "imaginary part of the screen center")
	flags.Int(flagRX, 19, "horizontal step between columns")
	flags.Int(flagRY, 24, "vertical step between rows")
	flags.Bool(flagJulia, false, "render the Julia set of c instead of the Mandelbrot set")
	flags.Float64(flagCR, -0.8, "real part of the Julia set's c")
	flags.Float64(flagCI, 0.156, "imaginary part of the Julia set's c")
	flags.Float64(flagPower, 2, "power of z in the Julia map")
	flags.String(flagPalette, string(render.DefaultPalette), "characters from fastest escaping to never escaping")

	return cmd
}

func runCmd(cmd *cobra.Command, _ []string) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	flags := cmd.Flags()

	asm, err := flags.GetBool(flagAsm)
	if err != nil {
		return err
	}
	palette, err := flags.GetString(flagPalette)
	if err != nil {
		return err
	}

	scenes := render.Presets
	for _, name := range sceneFlags {
		if flags.Changed(name) {
			scene, err := sceneFromFlags(cmd)
			if err != nil {
				return err
			}
			scenes = []render.Scene{scene}
			break
		}
	}

	out := cmd.OutOrStdout()
	for i, scene := range scenes {
		rows, err := render.Render(cmd.Context(), scene.Place, scene.Set(), render.Palette(palette))
		if err != nil {
			return err
		}

		if asm {
			err = render.WriteAsm(out, scene.Description(), rows)
			if err != nil {
				return err
			}
			continue
		}

		if i > 0 {
			fmt.Fprintln(out)
		}
		err = render.WritePlain(out, rows)
		if err != nil {
			return err
		}
	}

	return nil
}

func sceneFromFlags(cmd *cobra.Command) (render.Scene, error) {
	flags := cmd.Flags()

	x, err := flags.GetFloat64(flagX)
	if err != nil {
		return render.Scene{}, err
	}
	y, err := flags.GetFloat64(flagY)
	if err != nil {
		return render.Scene{}, err
	}
	rx, err := flags.GetInt(flagRX)
	if err != nil {
		return render.Scene{}, err
	}
	ry, err := flags.GetInt(flagRY)
	if err != nil {
		return render.Scene{}, err
	}
	julia, err := flags.GetBool(flagJulia)
	if err != nil {
		return render.Scene{}, err
	}
	cr, err := flags.GetFloat64(flagCR)
	if err != nil {
		return render.Scene{}, err
	}
	ci, err := flags.GetFloat64(flagCI)
	if err != nil {
		return render.Scene{}, err
	}
	power, err := flags.GetFloat64(flagPower)
	if err != nil {
		return render.Scene{}, err
	}

	return render.Scene{
		Place: render.NewPlace(x, y, rx, ry),
		Julia: julia,
		C:     complex(cr, ci),
		Power: power,
	}, nil
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
