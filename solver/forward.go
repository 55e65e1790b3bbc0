package solver

// ForwardDifference marches the explicit scheme from the left boundary only:
//
//	x[i+1] = x[i] + h*f(x[i]),  i = 0..N-1
//
// The right boundary condition is structurally unenforceable in a one-sided
// explicit march and is not consulted at all; the final entry is whatever the
// march produces. This asymmetry with the other two schemes is intentional.
func ForwardDifference(p Params) []float64 {
	h := p.H()
	f := p.RHS()
	x := make([]float64, p.N+1)
	x[0] = p.X0

	for i := 0; i < p.N; i++ {
		x[i+1] = x[i] + h*f(x[i])
	}
	return x
}
