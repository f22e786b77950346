package colnew

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/numgrove/bvp/jacobian"
)

func checkProblem() *Problem {
	return &Problem{
		Degrees:        []int{1, 1},
		BoundaryPoints: []float64{0, 1},
		F: func(x []float64, z [][]float64) [][]float64 {
			out := newGrid(2, len(x))
			for k := range x {
				out[0][k] = z[1][k]
				out[1][k] = -z[0][k]
			}
			return out
		},
		DF: func(x []float64, z [][]float64) [][][]float64 {
			out := make([][][]float64, 2)
			for i := range out {
				out[i] = newGrid(2, len(x))
			}
			for k := range x {
				out[0][1][k] = 1
				out[1][0][k] = -1
			}
			return out
		},
		G: func(z [][]float64) []float64 {
			return []float64{z[0][0] - 1, z[1][1]}
		},
		DG: func(z [][]float64) [][]float64 {
			return [][]float64{{1, 0}, {0, 1}}
		},
	}
}

func TestCheckJacobiansPasses(t *testing.T) {
	require.NoError(t, CheckJacobians(checkProblem(), nil))
}

func TestCheckJacobiansSkipsNil(t *testing.T) {
	p := checkProblem()
	p.DF = nil
	p.DG = nil
	require.NoError(t, CheckJacobians(p, nil))
}

func TestCheckJacobiansWrongDF(t *testing.T) {
	p := checkProblem()
	p.DF = func(x []float64, z [][]float64) [][][]float64 {
		out := make([][][]float64, 2)
		for i := range out {
			out[i] = newGrid(2, len(x))
		}
		return out
	}

	err := CheckJacobians(p, nil)
	var jm *JacobianMismatchError
	require.ErrorAs(t, err, &jm)
	require.Equal(t, "dfsub", jm.Which)

	var m *jacobian.MismatchError
	require.ErrorAs(t, err, &m)
}

func TestCheckJacobiansWrongDG(t *testing.T) {
	p := checkProblem()
	p.DG = func(z [][]float64) [][]float64 {
		return [][]float64{{0, 0}, {0, 0}}
	}

	err := CheckJacobians(p, nil)
	var jm *JacobianMismatchError
	require.ErrorAs(t, err, &jm)
	require.Equal(t, "dgsub", jm.Which)
}

func TestCheckJacobiansBoundaryLocalityLeak(t *testing.T) {
	// Condition 0 is posted at x=0 but reads the z-vector of x=1. The
	// claimed Jacobian is consistent with reading the right location, so
	// only the expanded-space check can expose the leak.
	p := checkProblem()
	p.G = func(z [][]float64) []float64 {
		return []float64{z[0][1] - 1, z[1][1]}
	}

	err := CheckJacobians(p, nil)
	var jm *JacobianMismatchError
	require.ErrorAs(t, err, &jm)
	require.Equal(t, "dgsub", jm.Which)
}

func TestCheckJacobiansSharedLocation(t *testing.T) {
	// Two conditions at the same boundary point share one distinct
	// location; both may read it freely.
	p := checkProblem()
	p.BoundaryPoints = []float64{0, 0}
	p.G = func(z [][]float64) []float64 {
		return []float64{z[0][0] + z[1][0], z[1][1] - z[0][1]}
	}
	p.DG = func(z [][]float64) [][]float64 {
		return [][]float64{{1, 1}, {-1, 1}}
	}

	require.NoError(t, CheckJacobians(p, nil))
}

func TestCheckJacobiansOptionsRespected(t *testing.T) {
	// A sloppy analytic Jacobian slips through when tolerances are loose
	// and is caught when they are not.
	p := checkProblem()
	p.DF = func(x []float64, z [][]float64) [][][]float64 {
		out := make([][][]float64, 2)
		for i := range out {
			out[i] = newGrid(2, len(x))
		}
		for k := range x {
			out[0][1][k] = 1.0001
			out[1][0][k] = -1.0001
		}
		return out
	}

	require.Error(t, CheckJacobians(p, &jacobian.Options{AbsTol: 1e-8, RelTol: 1e-8}))
	require.NoError(t, CheckJacobians(p, &jacobian.Options{AbsTol: 1e-2, RelTol: 1e-2}))
}
