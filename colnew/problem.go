package colnew

// Verbosity levels for the kernel's own diagnostics.
const (
	Silent = 0
	Info   = 1
	Debug  = 2
)

// FSub evaluates the right-hand side on a batch of points.
//
//	x[k]    = x_k                  (nx)
//	z[i][k] = z_i(x_k)             (mstar, nx)
//	f[i][k] = f_i(x_k, z[:][k])    (ncomp, nx)
//
// f[.][k] may depend only on z[.][k].
type FSub func(x []float64, z [][]float64) [][]float64

// DFSub evaluates the right-hand-side Jacobian on a batch of points.
//
//	df[i][j][k] = d f[i][k] / d z[j][k]   (ncomp, mstar, nx)
type DFSub func(x []float64, z [][]float64) [][][]float64

// GSub evaluates the boundary conditions.
//
//	z[i][j] = z_i(zeta_j)          (mstar, mstar)
//	g[j]    = g_j(zeta_j, z[:][j]) (mstar)
//
// Conditions must be separated: g[j] may depend only on z[.][j].
type GSub func(z [][]float64) []float64

// DGSub evaluates the boundary condition Jacobian.
//
//	dg[j][i] = d g_j / d z_i at zeta_j   (mstar, mstar)
type DGSub func(z [][]float64) [][]float64

// GuessFunc produces an initial solution profile and the top-order
// derivatives at a batch of points.
//
//	z[i][k]  = z_i(x_k)            (mstar, nx)
//	dm[i][k] = u_i^(m_i)(x_k)      (ncomp, nx)
type GuessFunc func(x []float64) (z [][]float64, dm [][]float64)

// InitialGuess is the tagged union of the things a solve can start from:
// nil (cold start), a GuessFunc, a prior *Solution, or a prior
// *ComplexSolution. The interface is sealed.
type InitialGuess interface {
	guessTag()
}

func (GuessFunc) guessTag()        {}
func (*Solution) guessTag()        {}
func (*ComplexSolution) guessTag() {}
func (CGuessFunc) guessTag()       {}

// Problem describes one real-valued boundary value problem. The solve
// never mutates it. Zero values select the kernel defaults throughout;
// see the field comments for what zero means.
type Problem struct {
	// Degrees holds the order of each equation, each in [1,4].
	Degrees []int
	// BoundaryPoints holds the point of the j-th boundary condition, one
	// per scalar unknown, sorted ascending. Points may repeat.
	BoundaryPoints []float64

	F FSub
	G GSub
	// DF and DG are optional; when nil a finite-difference substitute is
	// wired in their place.
	DF DFSub
	DG DGSub

	// Domain optionally fixes [left, right]; nil means the extremes of
	// BoundaryPoints.
	Domain []float64

	// Linear marks the system linear, skipping Newton damping.
	Linear bool

	// InitialGuess seeds the solve: nil, a GuessFunc, or a prior
	// Solution for continuation.
	InitialGuess InitialGuess
	// CoarsenGuessMesh coarsens the prior Solution's mesh before
	// continuing. Only meaningful with a Solution guess and no explicit
	// InitialMesh.
	CoarsenGuessMesh bool

	// InitialMeshSize sets the number of subintervals of the kernel's
	// default initial mesh; 0 means the kernel default of 10.
	InitialMeshSize int
	// InitialMesh supplies concrete initial mesh points. Mutually
	// exclusive with InitialMeshSize.
	InitialMesh []float64

	// Tolerances holds one tolerance per z-vector entry; 0 leaves that
	// entry unconstrained. Nil means all unconstrained.
	Tolerances []float64

	// FixedMesh disables adaptive mesh selection; trivial refinement is
	// used instead and InitialMesh becomes mandatory.
	FixedMesh bool

	// Verbosity selects kernel diagnostics: Silent, Info or Debug.
	Verbosity int

	// CollocationPoints per subinterval, in [max(Degrees), 7]; 0 picks
	// the default max(Degrees)+1.
	CollocationPoints int

	// ExtraFixedPoints are mesh points to pin in addition to the
	// boundary points (known boundary layers and the like).
	ExtraFixedPoints []float64

	// Sensitive marks the problem sensitive: the nonlinear iteration
	// will not rely on past convergence.
	Sensitive bool

	// MaxMeshSize caps the mesh point count; 0 means 100.
	MaxMeshSize int
}

// NComp returns the number of equations.
func (p *Problem) NComp() int { return len(p.Degrees) }

// MStar returns the number of scalar unknowns, sum of the degrees.
func (p *Problem) MStar() int {
	m := 0
	for _, d := range p.Degrees {
		m += d
	}
	return m
}
