package problems

import (
	"math"

	"github.com/numgrove/bvp/colnew"
)

// Harmonic is the linear test equation
//
//	u'' = -u,  u(0) = 0,  u(pi/2) = 1
//
// with exact solution u = sin(x).
func init() {
	register(Entry{
		Name:  "harmonic",
		Desc:  "u'' = -u, u(0)=0, u(pi/2)=1 (exact: sin x)",
		Build: Harmonic,
	})
}

// Harmonic builds the harmonic oscillator test problem.
func Harmonic() *colnew.Problem {
	return &colnew.Problem{
		Degrees:        []int{2},
		BoundaryPoints: []float64{0, math.Pi / 2},
		Linear:         true,
		F: func(x []float64, z [][]float64) [][]float64 {
			f := make([]float64, len(x))
			for k := range x {
				f[k] = -z[0][k]
			}
			return [][]float64{f}
		},
		DF: func(x []float64, z [][]float64) [][][]float64 {
			du := make([]float64, len(x))
			dv := make([]float64, len(x))
			for k := range x {
				du[k] = -1
			}
			return [][][]float64{{du, dv}}
		},
		G: func(z [][]float64) []float64 {
			return []float64{z[0][0], z[0][1] - 1}
		},
		DG: func(z [][]float64) [][]float64 {
			return [][]float64{
				{1, 0},
				{1, 0},
			}
		},
		InitialGuess: colnew.PointwiseGuess(func(x float64) (z, dm []float64) {
			// Straight line through the boundary values.
			c := 2 / math.Pi
			return []float64{c * x, c}, []float64{0}
		}),
	}
}
