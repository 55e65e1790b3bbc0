package solver

import "math"

// DefaultFixedPointIters is the reference iteration count for the backward
// scheme's fixed-point solve. The count is fixed rather than tolerance-based
// on purpose; see Options.FixedPointIters.
const DefaultFixedPointIters = 15

// Options holds kernel configuration.
type Options struct {
	// FixedPointIters is the number of fixed-point iterations performed per
	// interior grid point by the backward scheme. There is no convergence
	// check and no divergence detection; the final iterate is taken as-is.
	// Zero or negative means DefaultFixedPointIters.
	FixedPointIters int
}

// DefaultOptions returns the kernel defaults.
func DefaultOptions() *Options {
	return &Options{FixedPointIters: DefaultFixedPointIters}
}

// Scheme names, in display order.
const (
	SchemeBackward = "backward"
	SchemeCentral  = "central"
	SchemeForward  = "forward"
)

// Schemes returns the scheme names in display order.
func Schemes() []string {
	return []string{SchemeBackward, SchemeCentral, SchemeForward}
}

// Solution holds the shared grid and one trajectory per scheme. Every
// trajectory has exactly N+1 entries aligned index-for-index with T. Each
// trajectory is owned by the computation that produced it and is never
// mutated after construction.
type Solution struct {
	Params   Params
	T        []float64 // shared uniform grid over [0, Params.T]
	Backward []float64
	Central  []float64
	Forward  []float64
}

// Trajectory returns the trajectory computed by the named scheme, or nil for
// an unknown name.
func (s *Solution) Trajectory(scheme string) []float64 {
	switch scheme {
	case SchemeBackward:
		return s.Backward
	case SchemeCentral:
		return s.Central
	case SchemeForward:
		return s.Forward
	}
	return nil
}

// Finite reports whether every trajectory value is finite (no NaN, no Inf).
func (s *Solution) Finite() bool {
	for _, scheme := range Schemes() {
		for _, v := range s.Trajectory(scheme) {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}

// Solve validates the parameters, builds the grid, and runs the three schemes
// sequentially to completion. The computation is pure: identical inputs yield
// bit-identical trajectories, and nothing is shared between schemes.
func Solve(p Params, opts *Options) (*Solution, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	iters := opts.FixedPointIters
	if iters <= 0 {
		iters = DefaultFixedPointIters
	}

	return &Solution{
		Params:   p,
		T:        Grid(p.T, p.N),
		Backward: BackwardDifference(p, iters),
		Central:  CentralDifference(p),
		Forward:  ForwardDifference(p),
	}, nil
}
