package colnew

import "fmt"

// Complex problems are rewritten as real problems of twice the size:
// every complex unknown becomes a (real, imaginary) pair of real
// unknowns and every complex equation a pair of real equations. The
// right-hand sides must be analytic in the unknowns, so the split
// Jacobians follow the Cauchy-Riemann structure
//
//	d(Re f)/d(Re z) =  Re df    d(Re f)/d(Im z) = -Im df
//	d(Im f)/d(Re z) =  Im df    d(Im f)/d(Im z) =  Re df

// CFSub is the complex counterpart of FSub.
type CFSub func(x []float64, z [][]complex128) [][]complex128

// CDFSub is the complex counterpart of DFSub.
type CDFSub func(x []float64, z [][]complex128) [][][]complex128

// CGSub is the complex counterpart of GSub.
type CGSub func(z [][]complex128) []complex128

// CDGSub is the complex counterpart of DGSub.
type CDGSub func(z [][]complex128) [][]complex128

// CGuessFunc is the complex counterpart of GuessFunc.
type CGuessFunc func(x []float64) (z, dm [][]complex128)

// ComplexProblem describes a complex-valued boundary value problem. The
// configuration fields carry the same meaning as on Problem; dimensions
// (Degrees, BoundaryPoints, Tolerances) are given in complex terms and
// are doubled internally.
type ComplexProblem struct {
	Degrees        []int
	BoundaryPoints []float64

	F  CFSub
	G  CGSub
	DF CDFSub
	DG CDGSub

	Domain []float64
	Linear bool

	// InitialGuess may be nil, a CGuessFunc, a prior *ComplexSolution,
	// or a real *Solution of the doubled dimensions.
	InitialGuess     InitialGuess
	CoarsenGuessMesh bool
	InitialMeshSize  int
	InitialMesh      []float64

	Tolerances []float64

	FixedMesh         bool
	Verbosity         int
	CollocationPoints int
	ExtraFixedPoints  []float64
	Sensitive         bool
	MaxMeshSize       int
}

// complexAdapter carries the index maps between a complex z-vector and
// the doubled real z-vector. For equation i of degree m at complex
// offset o, the real layout keeps the Re derivatives at 2o..2o+m-1 and
// the Im derivatives at 2o+m..2o+2m-1.
type complexAdapter struct {
	degrees []int
	ncomp   int
	mstar   int
	re      []int // complex z index -> real z index of the real part
	im      []int // complex z index -> real z index of the imaginary part
}

func newComplexAdapter(degrees []int) *complexAdapter {
	mstar := 0
	for _, m := range degrees {
		mstar += m
	}
	a := &complexAdapter{
		degrees: degrees,
		ncomp:   len(degrees),
		mstar:   mstar,
		re:      make([]int, mstar),
		im:      make([]int, mstar),
	}
	offset := 0
	for _, m := range degrees {
		for d := 0; d < m; d++ {
			a.re[offset+d] = 2*offset + d
			a.im[offset+d] = 2*offset + m + d
		}
		offset += m
	}
	return a
}

// realProblem rewrites p into the equivalent doubled real problem.
func (a *complexAdapter) realProblem(p *ComplexProblem) (*Problem, error) {
	degrees := make([]int, 0, 2*a.ncomp)
	for _, m := range p.Degrees {
		degrees = append(degrees, m, m)
	}

	zeta := make([]float64, 0, 2*len(p.BoundaryPoints))
	for _, x := range p.BoundaryPoints {
		zeta = append(zeta, x, x)
	}

	var tol []float64
	if p.Tolerances != nil {
		if len(p.Tolerances) != a.mstar {
			return nil, fmt.Errorf("%w: got %d, want %d", ErrToleranceCount, len(p.Tolerances), a.mstar)
		}
		tol = make([]float64, 2*a.mstar)
		for j, t := range p.Tolerances {
			tol[a.re[j]] = t
			tol[a.im[j]] = t
		}
	}

	guess, err := a.liftGuessInput(p.InitialGuess)
	if err != nil {
		return nil, err
	}

	rp := &Problem{
		Degrees:           degrees,
		BoundaryPoints:    zeta,
		F:                 a.liftF(p.F),
		G:                 a.liftG(p.G),
		Domain:            p.Domain,
		Linear:            p.Linear,
		InitialGuess:      guess,
		CoarsenGuessMesh:  p.CoarsenGuessMesh,
		InitialMeshSize:   p.InitialMeshSize,
		InitialMesh:       p.InitialMesh,
		Tolerances:        tol,
		FixedMesh:         p.FixedMesh,
		Verbosity:         p.Verbosity,
		CollocationPoints: p.CollocationPoints,
		ExtraFixedPoints:  p.ExtraFixedPoints,
		Sensitive:         p.Sensitive,
		MaxMeshSize:       p.MaxMeshSize,
	}
	if p.DF != nil {
		rp.DF = a.liftDF(p.DF)
	}
	if p.DG != nil {
		rp.DG = a.liftDG(p.DG)
	}
	return rp, nil
}

func (a *complexAdapter) liftGuessInput(g InitialGuess) (InitialGuess, error) {
	switch g := g.(type) {
	case nil:
		return nil, nil
	case CGuessFunc:
		return a.liftGuess(g), nil
	case *ComplexSolution:
		return g.real, nil
	case *Solution:
		return g, nil
	default:
		return nil, fmt.Errorf("%w: %T for complex problem", ErrBadGuess, g)
	}
}

// combine builds the complex z-batch from real column data selected by
// col, which maps a complex condition/point index to a real column.
func (a *complexAdapter) combine(z [][]float64, cols int, col func(j int) int) [][]complex128 {
	cz := make([][]complex128, a.mstar)
	for i := range cz {
		cz[i] = make([]complex128, cols)
		for j := 0; j < cols; j++ {
			k := col(j)
			cz[i][j] = complex(z[a.re[i]][k], z[a.im[i]][k])
		}
	}
	return cz
}

func (a *complexAdapter) liftF(f CFSub) FSub {
	return func(x []float64, z [][]float64) [][]float64 {
		cf := f(x, a.combine(z, len(x), func(k int) int { return k }))
		out := newGrid(2*a.ncomp, len(x))
		for i := 0; i < a.ncomp; i++ {
			for k := range x {
				out[2*i][k] = real(cf[i][k])
				out[2*i+1][k] = imag(cf[i][k])
			}
		}
		return out
	}
}

func (a *complexAdapter) liftDF(df CDFSub) DFSub {
	return func(x []float64, z [][]float64) [][][]float64 {
		cdf := df(x, a.combine(z, len(x), func(k int) int { return k }))
		out := make([][][]float64, 2*a.ncomp)
		for i := range out {
			out[i] = newGrid(2*a.mstar, len(x))
		}
		for i := 0; i < a.ncomp; i++ {
			for j := 0; j < a.mstar; j++ {
				for k := range x {
					c := cdf[i][j][k]
					out[2*i][a.re[j]][k] = real(c)
					out[2*i][a.im[j]][k] = -imag(c)
					out[2*i+1][a.re[j]][k] = imag(c)
					out[2*i+1][a.im[j]][k] = real(c)
				}
			}
		}
		return out
	}
}

// liftG evaluates the complex conditions twice: even real conditions
// (the Re parts) read even columns, odd ones (the Im parts) read odd
// columns, so each real condition touches only its own column and the
// separated-boundary-condition locality survives the doubling exactly.
func (a *complexAdapter) liftG(g CGSub) GSub {
	return func(z [][]float64) []float64 {
		gE := g(a.combine(z, a.mstar, func(j int) int { return 2 * j }))
		gO := g(a.combine(z, a.mstar, func(j int) int { return 2*j + 1 }))
		out := make([]float64, 2*a.mstar)
		for j := 0; j < a.mstar; j++ {
			out[2*j] = real(gE[j])
			out[2*j+1] = imag(gO[j])
		}
		return out
	}
}

func (a *complexAdapter) liftDG(dg CDGSub) DGSub {
	return func(z [][]float64) [][]float64 {
		dgE := dg(a.combine(z, a.mstar, func(j int) int { return 2 * j }))
		dgO := dg(a.combine(z, a.mstar, func(j int) int { return 2*j + 1 }))
		out := newGrid(2*a.mstar, 2*a.mstar)
		for j := 0; j < a.mstar; j++ {
			for i := 0; i < a.mstar; i++ {
				out[2*j][a.re[i]] = real(dgE[j][i])
				out[2*j][a.im[i]] = -imag(dgE[j][i])
				out[2*j+1][a.re[i]] = imag(dgO[j][i])
				out[2*j+1][a.im[i]] = real(dgO[j][i])
			}
		}
		return out
	}
}

func (a *complexAdapter) liftGuess(g CGuessFunc) GuessFunc {
	return func(x []float64) ([][]float64, [][]float64) {
		cz, cdm := g(x)
		z := newGrid(2*a.mstar, len(x))
		for j := 0; j < a.mstar; j++ {
			for k := range x {
				z[a.re[j]][k] = real(cz[j][k])
				z[a.im[j]][k] = imag(cz[j][k])
			}
		}
		dm := newGrid(2*a.ncomp, len(x))
		for i := 0; i < a.ncomp; i++ {
			for k := range x {
				dm[2*i][k] = real(cdm[i][k])
				dm[2*i+1][k] = imag(cdm[i][k])
			}
		}
		return z, dm
	}
}

// ComplexSolution wraps the real solution of a doubled problem and
// recombines the (real, imaginary) component pairs on evaluation. The
// combination is exact: no numerical error beyond the kernel's own.
type ComplexSolution struct {
	real    *Solution
	adapter *complexAdapter
}

// NComp returns the number of complex equations.
func (s *ComplexSolution) NComp() int { return s.adapter.ncomp }

// MStar returns the number of complex unknowns.
func (s *ComplexSolution) MStar() int { return s.adapter.mstar }

// NMesh returns the number of mesh points.
func (s *ComplexSolution) NMesh() int { return s.real.nmesh }

// Mesh returns a copy of the mesh breakpoints.
func (s *ComplexSolution) Mesh() []float64 { return s.real.Mesh() }

// Real exposes the underlying doubled real solution.
func (s *ComplexSolution) Real() *Solution { return s.real }

// Eval evaluates the complex z-vector at each point.
func (s *ComplexSolution) Eval(x []float64) [][]complex128 {
	ry := s.real.Eval(x)
	out := make([][]complex128, len(x))
	for k := range out {
		out[k] = make([]complex128, s.adapter.mstar)
		for j := 0; j < s.adapter.mstar; j++ {
			out[k][j] = complex(ry[k][s.adapter.re[j]], ry[k][s.adapter.im[j]])
		}
	}
	return out
}

// At evaluates the complex z-vector at a single point.
func (s *ComplexSolution) At(x float64) []complex128 {
	return s.Eval([]float64{x})[0]
}

// MeshValues returns the complex z-vectors at the mesh points.
func (s *ComplexSolution) MeshValues() [][]complex128 {
	return s.Eval(s.Mesh())
}
