package solver

import "math"

// CentralDifference applies the three-point symmetric recurrence
//
//	x[i+1] = x[i-1] + 2h*f(x[i]),  i = 1..N-1
//
// seeded with the left boundary and a linearized estimate of the first step,
// x[1] = x0*exp(-lambda*h). The seed comes from the linear part of f only; it
// is a consistency heuristic, not a boundary condition. Whatever the
// recurrence produces at the final index is discarded and replaced by the
// right boundary value.
//
// For stiff or strongly nonlinear right-hand sides this scheme is prone to
// spurious oscillatory modes even when the trajectory stays bounded. That
// contrast with the one-sided schemes is the point of the comparison.
func CentralDifference(p Params) []float64 {
	h := p.H()
	f := p.RHS()
	x := make([]float64, p.N+1)
	x[0] = p.X0
	x[1] = p.X0 * math.Exp(-p.Lambda*h)

	for i := 1; i < p.N; i++ {
		x[i+1] = x[i-1] + 2*h*f(x[i])
	}
	x[p.N] = p.XT
	return x
}
