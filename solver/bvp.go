// Package solver implements three finite-difference discretizations of the
// nonlinear, potentially stiff two-point boundary value problem
//
//	x'(t) = f(x(t)) = -lambda*x(t) + x(t)^alpha,  x(0) = x0,  x(T) = xT
//
// on a uniform grid over [0, T]. The backward (implicit), central (symmetric)
// and forward (explicit) schemes are run side by side so their qualitative
// differences can be compared. The schemes themselves are deliberately
// unguarded: overflow, NaN from invalid powers, and divergence of the implicit
// fixed-point iteration all propagate silently into the trajectory, because
// oscillation and blow-up are the phenomena the comparison demonstrates.
// Parameters are validated once, at the kernel boundary.
package solver

import (
	"errors"
	"fmt"
	"math"
)

// Validation errors reported by Params.Validate.
var (
	ErrGridSize     = errors.New("solver: grid subdivision count N must be at least 1")
	ErrTerminalTime = errors.New("solver: terminal time T must be positive")
	ErrNonlinearity = errors.New("solver: nonlinearity exponent alpha must be at least 2")
)

// Params bundles the scalar parameters of one computation. A fresh bundle is
// supplied on every recomputation; the kernel never mutates it.
type Params struct {
	Lambda float64 // decay rate / stiffness parameter
	Alpha  float64 // nonlinearity exponent, >= 2
	T      float64 // terminal time, > 0
	X0     float64 // left boundary value x(0)
	XT     float64 // right boundary value x(T)
	N      int     // grid subdivision count, >= 1
}

// DefaultParams returns the parameter set the tool starts with.
func DefaultParams() Params {
	return Params{Lambda: 7.0, Alpha: 3.0, T: 1.0, X0: 0.5, XT: 0.0, N: 200}
}

// Validate checks the parameter bundle once at the kernel boundary.
// The schemes themselves perform no validation: invalid arithmetic, such as a
// negative base raised to a non-integer exponent, propagates as NaN.
func (p Params) Validate() error {
	if p.N < 1 {
		return fmt.Errorf("%w (got %d)", ErrGridSize, p.N)
	}
	if !(p.T > 0) {
		return fmt.Errorf("%w (got %g)", ErrTerminalTime, p.T)
	}
	if p.Alpha < 2 {
		return fmt.Errorf("%w (got %g)", ErrNonlinearity, p.Alpha)
	}
	return nil
}

// H returns the uniform grid spacing T/N.
func (p Params) H() float64 {
	return p.T / float64(p.N)
}

// RHS returns the right-hand side f(x) = -lambda*x + x^alpha with the
// parameters closed over. Pure function of x. math.Pow semantics apply for
// negative bases with non-integer exponents.
func (p Params) RHS() func(float64) float64 {
	lam, alpha := p.Lambda, p.Alpha
	return func(x float64) float64 {
		return -lam*x + math.Pow(x, alpha)
	}
}

// Grid returns the n+1 uniform time samples over [0, T]. The final sample is
// pinned to T rather than accumulated, so grid[n] == T exactly.
func Grid(T float64, n int) []float64 {
	h := T / float64(n)
	t := make([]float64, n+1)
	for i := range t {
		t[i] = float64(i) * h
	}
	t[n] = T
	return t
}
