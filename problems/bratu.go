package problems

import (
	"math"

	"github.com/numgrove/bvp/colnew"
)

// Bratu is the nonlinear problem
//
//	u'' = -lambda * exp(u),  u(0) = u(1) = 0
//
// with lambda = 1, below the fold point at lambda ~ 3.51.
func init() {
	register(Entry{
		Name:  "bratu",
		Desc:  "u'' = -exp(u), u(0)=u(1)=0 (nonlinear, lower branch)",
		Build: Bratu,
	})
}

// Bratu builds the Bratu problem with lambda = 1.
func Bratu() *colnew.Problem {
	const lambda = 1.0
	return &colnew.Problem{
		Degrees:        []int{2},
		BoundaryPoints: []float64{0, 1},
		F: func(x []float64, z [][]float64) [][]float64 {
			f := make([]float64, len(x))
			for k := range x {
				f[k] = -lambda * math.Exp(z[0][k])
			}
			return [][]float64{f}
		},
		DF: func(x []float64, z [][]float64) [][][]float64 {
			du := make([]float64, len(x))
			dv := make([]float64, len(x))
			for k := range x {
				du[k] = -lambda * math.Exp(z[0][k])
			}
			return [][][]float64{{du, dv}}
		},
		G: func(z [][]float64) []float64 {
			return []float64{z[0][0], z[0][1]}
		},
		DG: func(z [][]float64) [][]float64 {
			return [][]float64{
				{1, 0},
				{1, 0},
			}
		},
		InitialGuess: colnew.PointwiseGuess(func(x float64) (z, dm []float64) {
			// Parabolic bump vanishing at both ends.
			return []float64{x * (1 - x), 1 - 2*x}, []float64{-2}
		}),
		Tolerances: []float64{1e-8, 1e-8},
	}
}
