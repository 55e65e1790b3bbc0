package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KarolinaS-M/FD-nonlinear-stiff/solver"
)

func TestComputeStats(t *testing.T) {
	s := computeStats([]float64{1, 2, 3, 4})
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 4.0, s.Max)
	assert.Equal(t, 2.5, s.Mean)
	assert.InDelta(t, math.Sqrt(1.25), s.Std, 1e-12)

	assert.Equal(t, Stat{}, computeStats(nil))
}

func TestSignFlips(t *testing.T) {
	// Monotone decay: no flips.
	assert.Equal(t, 0, signFlips([]float64{4, 3, 2, 1}))

	// Alternating sequence: every interior difference flips.
	assert.Equal(t, 4, signFlips([]float64{0, 1, 0, 1, 0, 1}))

	// Plateau keeps the previous sign.
	assert.Equal(t, 0, signFlips([]float64{1, 2, 2, 3}))

	// Single hump: one flip at the peak.
	assert.Equal(t, 1, signFlips([]float64{0, 1, 2, 1, 0}))
}

func TestFinite(t *testing.T) {
	assert.True(t, finite([]float64{0, 1, -2}))
	assert.False(t, finite([]float64{0, math.NaN()}))
	assert.False(t, finite([]float64{math.Inf(1), 0}))
}

func TestReport(t *testing.T) {
	sol, err := solver.Solve(solver.DefaultParams(), nil)
	require.NoError(t, err)

	report := Report(sol)
	require.Len(t, report, 3)

	for i, scheme := range solver.Schemes() {
		d := report[i]
		assert.Equal(t, scheme, d.Scheme)
		assert.Equal(t, sol.Params.N+1, d.Points)
		assert.True(t, d.Finite, "default regime stays finite")
	}

	// Backward and central pin the right endpoint, so the residual is zero
	// by construction; the forward march generally misses it.
	assert.Zero(t, report[0].BoundaryResidual)
	assert.Zero(t, report[1].BoundaryResidual)
	assert.Greater(t, report[2].BoundaryResidual, 0.0)
}

func TestOscillatory(t *testing.T) {
	// Fully alternating increments over 100 points: clearly oscillatory.
	d := Diagnostics{Points: 100, SignFlips: 98, Finite: true}
	assert.True(t, d.Oscillatory())

	// A single hump is not.
	d = Diagnostics{Points: 100, SignFlips: 1, Finite: true}
	assert.False(t, d.Oscillatory())

	// Too short to judge.
	d = Diagnostics{Points: 5, SignFlips: 4, Finite: true}
	assert.False(t, d.Oscillatory())
}

func TestCentralOscillatesMoreThanBackward(t *testing.T) {
	// Raising lambda excites the parasitic mode of the symmetric scheme
	// while the implicit march stays monotone.
	p := solver.DefaultParams()
	p.Lambda = 20.0
	sol, err := solver.Solve(p, nil)
	require.NoError(t, err)

	report := Report(sol)
	backward, central := report[0], report[1]
	require.Equal(t, solver.SchemeBackward, backward.Scheme)
	require.Equal(t, solver.SchemeCentral, central.Scheme)

	assert.Greater(t, central.SignFlips, backward.SignFlips)
	assert.False(t, backward.Oscillatory(), "backward scheme should stay smooth")
}

func TestDescribe(t *testing.T) {
	d := Diagnostics{Scheme: solver.SchemeCentral, Points: 100, SignFlips: 60, Finite: true}
	assert.Contains(t, d.Describe(), "spurious oscillatory mode")

	d = Diagnostics{Scheme: solver.SchemeForward, Points: 100, Finite: true, BoundaryResidual: 0.25,
		Stats: Stat{Min: 0, Max: 0.5}}
	assert.Contains(t, d.Describe(), "misses the right boundary")

	d = Diagnostics{Scheme: solver.SchemeBackward, Points: 100, Finite: false}
	assert.Contains(t, d.Describe(), "NaN or Inf")

	d = Diagnostics{Scheme: solver.SchemeBackward, Points: 100, Finite: true, Stats: Stat{Min: 0, Max: 0.5}}
	assert.Contains(t, d.Describe(), "bounded trajectory")
}
