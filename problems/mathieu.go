package problems

import (
	"math"

	"github.com/numgrove/bvp/colnew"
)

// Mathieu is the eigenvalue problem
//
//	u'' + (lam - 2 q cos 2x) u = 0,  0 <= x <= pi
//	u'(0) = 0,  u(0) = 1,  u'(pi) = 0
//
// with q = 5. The eigenvalue is folded in as a third unknown of degree
// one with zero derivative, which makes the system nonlinear. The
// z-vector is [u, u', lam].
func init() {
	register(Entry{
		Name:  "mathieu",
		Desc:  "Mathieu characteristic value problem, q=5 (eigenvalue as unknown)",
		Build: Mathieu,
	})
}

// Mathieu builds the Mathieu characteristic value problem.
func Mathieu() *colnew.Problem {
	const q = 5.0
	return &colnew.Problem{
		Degrees:        []int{2, 1},
		BoundaryPoints: []float64{0, 0, math.Pi},
		F: func(x []float64, z [][]float64) [][]float64 {
			f1 := make([]float64, len(x))
			f2 := make([]float64, len(x))
			for k, xx := range x {
				f1[k] = -(z[2][k] - 2*q*math.Cos(2*xx)) * z[0][k]
			}
			return [][]float64{f1, f2}
		},
		DF: func(x []float64, z [][]float64) [][][]float64 {
			nx := len(x)
			d10 := make([]float64, nx)
			d11 := make([]float64, nx)
			d12 := make([]float64, nx)
			zero := make([]float64, nx)
			for k, xx := range x {
				d10[k] = -(z[2][k] - 2*q*math.Cos(2*xx))
				d12[k] = -z[0][k]
			}
			return [][][]float64{
				{d10, d11, d12},
				{zero, zero, zero},
			}
		},
		G: func(z [][]float64) []float64 {
			return []float64{z[1][0], z[0][1] - 1, z[1][2]}
		},
		DG: func(z [][]float64) [][]float64 {
			return [][]float64{
				{0, 1, 0},
				{1, 0, 0},
				{0, 1, 0},
			}
		},
		InitialGuess: colnew.PointwiseGuess(func(x float64) (z, dm []float64) {
			// Seed near the second even eigenfunction, lam ~ 4.
			return []float64{math.Cos(2 * x), -2 * math.Sin(2 * x), 4},
				[]float64{-4 * math.Cos(2 * x), 0}
		}),
		Tolerances: []float64{1e-8, 1e-8, 1e-8},
	}
}
