package fuzzy

// Curve is a discretised function: row 0 holds the x samples, row 1 the
// corresponding y samples.
type Curve [2][]float64

func newCurve(n int) Curve {
	return Curve{make([]float64, n), make([]float64, n)}
}

func (c Curve) X() []float64 { return c[0] }
func (c Curve) Y() []float64 { return c[1] }

// Len returns the number of samples.
func (c Curve) Len() int {
	return len(c[0])
}
