package transforms

// A Transform iterates a passed point.
type Transform interface {
	Next(complex128) complex128
}

// Walk applies t to z n times, calling fn with the 1-based step number and
// the new value after every step. Walk stops at the first error from fn.
func Walk(t Transform, z complex128, n int, fn func(step int, z complex128) error) error {
	for step := 1; step <= n; step++ {
		z = t.Next(z)

		err := fn(step, z)
		if err != nil {
			return err
		}
	}

	return nil
}

// Orbit returns the first n iterates of z under t, not including z itself.
func Orbit(t Transform, z complex128, n int) []complex128 {
	result := make([]complex128, 0, max(n, 0))

	_ = Walk(t, z, n, func(_ int, z complex128) error {
		result = append(result, z)
		return nil
	})

	return result
}

// Escape counts the iterations of t from z before |z|² reaches bailout,
// stopping at maxIterations. The starting point itself is checked first.
func Escape(t Transform, z complex128, maxIterations int, bailout float64) int {
	iterations := 0
	for iterations < maxIterations && real(z)*real(z)+imag(z)*imag(z) < bailout {
		z = t.Next(z)
		iterations++
	}

	return iterations
}
