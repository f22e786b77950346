package colnew

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/numgrove/bvp/jacobian"
)

// CheckJacobians verifies the user-supplied DF and DG of p against
// finite differences, without invoking the kernel. Callbacks left nil
// are skipped.
//
// For DG this additionally enforces the locality constraint of separated
// boundary conditions: condition j may be sensitive only to z at its own
// distinct boundary location, even when several conditions share one
// location. The check expands the z argument to one independent copy per
// distinct location and differentiates G over the expanded space, so any
// leaked cross-location sensitivity shows up as a nonzero column the
// claimed Jacobian cannot reproduce.
func CheckJacobians(p *Problem, opt *jacobian.Options) error {
	ncomp := p.NComp()
	mstar := p.MStar()
	xmin := floats.Min(p.BoundaryPoints)
	xmax := floats.Max(p.BoundaryPoints)

	rng := rand.New(rand.NewSource(1))
	if opt != nil && opt.Rand != nil {
		rng = opt.Rand
	}

	if p.DF != nil {
		for s := 0; s < 5; s++ {
			x := []float64{xmin + (xmax-xmin)*rng.Float64()}
			fs := func(u []float64) []float64 {
				return column(p.F(x, singleColumn(u)), 0)
			}
			dfs := func(u []float64) *mat.Dense {
				df := p.DF(x, singleColumn(u))
				out := mat.NewDense(ncomp, mstar, nil)
				for i := 0; i < ncomp; i++ {
					for j := 0; j < mstar; j++ {
						out.Set(i, j, df[i][j][0])
					}
				}
				return out
			}
			if err := jacobian.Check(mstar, fs, dfs, opt); err != nil {
				return &JacobianMismatchError{Which: "dfsub", Sample: s, Err: err}
			}
		}
	}

	if p.DG != nil {
		indep := dedup(append([]float64(nil), p.BoundaryPoints...))
		nind := len(indep)
		indepMap := make([]int, mstar)
		for i, x := range p.BoundaryPoints {
			for j, y := range indep {
				if x == y {
					indepMap[i] = j
					break
				}
			}
		}

		// The expanded argument is a flat row-major (mstar, nind) array:
		// one z-vector copy per distinct location. getU rebuilds the
		// (mstar, mstar) argument G expects, column i drawn from the
		// copy of condition i's location.
		getU := func(flat []float64) [][]float64 {
			u := newGrid(mstar, mstar)
			for i := 0; i < mstar; i++ {
				for r := 0; r < mstar; r++ {
					u[r][i] = flat[r*nind+indepMap[i]]
				}
			}
			return u
		}
		gs := func(flat []float64) []float64 {
			return p.G(getU(flat))
		}
		dgs := func(flat []float64) *mat.Dense {
			dg := p.DG(getU(flat))
			out := mat.NewDense(mstar, mstar*nind, nil)
			for i := 0; i < mstar; i++ {
				for j := 0; j < mstar; j++ {
					out.Set(i, j*nind+indepMap[i], dg[i][j])
				}
			}
			return out
		}
		if err := jacobian.Check(mstar*nind, gs, dgs, opt); err != nil {
			return &JacobianMismatchError{Which: "dgsub", Err: err}
		}
	}

	return nil
}

// singleColumn views a z-vector as a one-point batch.
func singleColumn(u []float64) [][]float64 {
	z := make([][]float64, len(u))
	for i, v := range u {
		z[i] = []float64{v}
	}
	return z
}
