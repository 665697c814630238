package transforms

import "math/cmplx"

// Julia2 is the quadratic Julia map for a fixed C. Unlike Mandelbrot, the
// point being tested is the starting value rather than C.
type Julia2 struct {
	C complex128
}

func (j Julia2) Next(z complex128) complex128 {
	return z*z + j.C
}

// JuliaN generalizes Julia2 to the power N.
type JuliaN struct {
	N complex128
	C complex128
}

func (j JuliaN) Next(z complex128) complex128 {
	return cmplx.Pow(z, j.N) + j.C
}

// NewJulia returns the cheaper Julia2 when power is 2.
func NewJulia(c complex128, power float64) Transform {
	if power == 2 {
		return Julia2{C: c}
	}
	return JuliaN{N: complex(power, 0), C: c}
}

var (
	_ Transform = Julia2{}
	_ Transform = JuliaN{}
)
