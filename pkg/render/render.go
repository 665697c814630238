package render

import (
	"context"
	"fmt"
	"github.com/willbeason/woztools/pkg/transforms"
	"runtime"
	"sync"
)

const (
	// Width and Height are the size of the 40 column text screen.
	Width  = 40
	Height = 24

	MaxIterations = 250

	// Bailout is the squared magnitude at which a point has escaped. It is
	// just above the largest value the 3.8 fixed point format can hold.
	Bailout = 8.0

	// StepUnit is the resolution of viewport steps.
	StepUnit = 1.0 / 256
)

// A Place is the region of the complex plane covered by the screen.
type Place struct {
	// X and Y are the coordinates of the top-left character.
	X, Y float64

	// RX and RY are the distances between neighbouring characters.
	RX, RY float64
}

// NewPlace centers the screen on (cx, cy) with steps of rx and ry StepUnits.
func NewPlace(cx, cy float64, rx, ry int) Place {
	p := Place{
		RX: float64(rx) * StepUnit,
		RY: float64(ry) * StepUnit,
	}
	p.X = cx - p.RX*Width/2
	p.Y = cy - p.RY*Height/2

	return p
}

// Point is the value at the given column and row.
func (p Place) Point(col, row int) complex128 {
	return complex(p.X+float64(col)*p.RX, p.Y+float64(row)*p.RY)
}

func (p Place) String() string {
	return fmt.Sprintf("x= %f y= %f rx= %f ry= %f", p.X, p.Y, p.RX, p.RY)
}

// A Set counts how many iterations a point survives.
type Set func(point complex128) int

// Mandelbrot iterates from the point itself with c set to the point.
func Mandelbrot(point complex128) int {
	return transforms.Escape(transforms.Mandelbrot{C: point}, point, MaxIterations, Bailout)
}

// Julia iterates t starting from the point.
func Julia(t transforms.Transform) Set {
	return func(point complex128) int {
		return transforms.Escape(t, point, MaxIterations, Bailout)
	}
}

// Render computes every character of the screen. Rows are split between
// one worker per CPU.
func Render(ctx context.Context, place Place, set Set, palette Palette) ([]string, error) {
	rows := make([]string, Height)

	yChannel := make(chan int)
	go func() {
		defer close(yChannel)
		for y := 0; y < Height; y++ {
			select {
			case yChannel <- y:
			case <-ctx.Done():
				return
			}
		}
	}()

	parallel := runtime.NumCPU()

	ywg := sync.WaitGroup{}
	ywg.Add(parallel)
	for i := 0; i < parallel; i++ {
		go func() {
			defer ywg.Done()

			row := make([]byte, Width)
			for y := range yChannel {
				for x := range row {
					row[x] = palette.Char(set(place.Point(x, y)))
				}
				rows[y] = string(row)
			}
		}()
	}

	ywg.Wait()

	err := ctx.Err()
	if err != nil {
		return nil, err
	}

	return rows, nil
}
