package solver

import "math"

// BackwardDifference marches the implicit one-sided scheme left to right.
// At each interior grid point the implicit relation
//
//	x[i] = (x[i-1] + h*x[i]^alpha) / (1 + h*lambda)
//
// is solved by fixed-point iteration seeded with the previous finalized point
// and run for a fixed number of iterations with no convergence check. If the
// iteration diverges the final iterate is recorded as-is. Both endpoints are
// pinned to the boundary values.
//
// Despite the name this is sequential marching, not a boundary-value linear
// solve: each interior point depends only on its left neighbor.
func BackwardDifference(p Params, iters int) []float64 {
	h := p.H()
	x := make([]float64, p.N+1)
	x[0] = p.X0
	x[p.N] = p.XT

	for i := 1; i < p.N; i++ {
		xi := x[i-1]
		for k := 0; k < iters; k++ {
			xi = (x[i-1] + h*math.Pow(xi, p.Alpha)) / (1 + h*p.Lambda)
		}
		x[i] = xi
	}
	return x
}
