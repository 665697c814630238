package render

import (
	"fmt"
	"github.com/willbeason/woztools/pkg/transforms"
)

// A Scene is one screen of either the Mandelbrot set or a Julia set.
type Scene struct {
	Place Place

	// Julia selects the Julia set of C instead of the Mandelbrot set.
	Julia bool
	C     complex128

	// Power of z in the Julia map. Zero means 2.
	Power float64
}

func (s Scene) Set() Set {
	if !s.Julia {
		return Mandelbrot
	}

	power := s.Power
	if power == 0 {
		power = 2
	}
	return Julia(transforms.NewJulia(s.C, power))
}

func (s Scene) Description() string {
	if !s.Julia {
		return "mandelbrot " + s.Place.String()
	}
	return fmt.Sprintf("julia c= %v %s", s.C, s.Place)
}

// Presets are the screens shipped with the demo.
var Presets = []Scene{
	{Place: NewPlace(-0.61, 0, 19, 24)},
	{Place: NewPlace(-1.04, -0.33, 1, 1)},
	{Place: NewPlace(-1.38, 0.123, 1, 1)},
	{Place: NewPlace(-1.47, 0, 1, 1)},
	{Place: NewPlace(-0.62, -0.45, 1, 1)},
	{Place: NewPlace(0.8, 0, 12, 20), Julia: true, C: complex(-0.8, 0.156)},
	{Place: NewPlace(0, 0, 25, 40), Julia: true, C: complex(-0.8, 0.156)},
	{Place: NewPlace(0.8, 0, 12, 20), Julia: true, C: complex(-0.55, -0.64)},
}
