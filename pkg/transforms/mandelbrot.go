package transforms

// Mandelbrot is z ← z² + C. Starting from zero, its orbit decides whether C
// belongs to the Mandelbrot set.
type Mandelbrot struct {
	C complex128
}

func (m Mandelbrot) Next(z complex128) complex128 {
	return z*z + m.C
}

var _ Transform = Mandelbrot{}
