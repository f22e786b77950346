package colnew

import "github.com/numgrove/bvp/jacobian"

// Finite-difference substitutes wired in place of absent DF/DG callbacks.
// Both exploit locality: f[.][k] depends only on z[.][k], so one
// perturbation of row j covers the whole batch, and every boundary
// condition reads only its own column, so perturbing row j across all
// columns isolates d g / d z_j.

// numericalDF builds a forward-difference DFSub around f.
func numericalDF(f FSub, ncomp int) DFSub {
	h := jacobian.DefaultStep
	return func(x []float64, z [][]float64) [][][]float64 {
		nx := len(x)
		base := f(x, z)
		out := make([][][]float64, ncomp)
		for i := range out {
			out[i] = newGrid(len(z), nx)
		}
		for j := range z {
			zp := cloneGrid(z)
			for k := range zp[j] {
				zp[j][k] += h
			}
			fp := f(x, zp)
			for i := 0; i < ncomp; i++ {
				for k := 0; k < nx; k++ {
					out[i][j][k] = (fp[i][k] - base[i][k]) / h
				}
			}
		}
		return out
	}
}

// numericalDG builds a forward-difference DGSub around g.
func numericalDG(g GSub, mstar int) DGSub {
	h := jacobian.DefaultStep
	return func(z [][]float64) [][]float64 {
		base := g(z)
		out := newGrid(mstar, mstar)
		for j := range z {
			zp := cloneGrid(z)
			for k := range zp[j] {
				zp[j][k] += h
			}
			gp := g(zp)
			for i := 0; i < mstar; i++ {
				out[i][j] = (gp[i] - base[i]) / h
			}
		}
		return out
	}
}
