package colnew

// Status flags reported by Kernel.Solve.
const (
	StatusOK            = 1  // solution found
	StatusSingular      = 0  // singular collocation matrix
	StatusStorage       = -1 // workspace exhausted, mesh limit too small
	StatusNoConvergence = -2 // nonlinear iteration failed
	StatusBadInput      = -3 // invalid kernel input
)

// Indices into the 11-element kernel configuration vector.
const (
	iparNonlinear    = 0  // 1 if the problem is nonlinear
	iparCollocation  = 1  // collocation points per subinterval
	iparSubintervals = 2  // subintervals in the initial mesh
	iparTolerances   = 3  // number of active tolerances
	iparFspaceLen    = 4  // float workspace length
	iparIspaceLen    = 5  // integer workspace length
	iparOutput       = 6  // output control, 1-verbosity
	iparMeshSource   = 7  // initial mesh source (see guess.go)
	iparGuessSource  = 8  // initial guess source (see guess.go)
	iparRegularity   = 9  // 0 regular, 1 sensitive
	iparFixpnts      = 10 // number of extra fixed mesh points
)

// Request carries one fully marshaled problem to the kernel. The two
// workspace buffers are owned by the in-flight solve; the kernel fills
// them and the populated prefixes become the portable solution format
// (ispace[:7+ncomp], fspace[:ispace[6]]).
type Request struct {
	Degrees []int32
	Left    float64
	Right   float64
	Zeta    []float64
	Ipar    [11]int32
	Ltol    []int32
	Tol     []float64
	Fixpnt  []float64
	Ispace  []int32
	Fspace  []float64

	F  FSub
	DF DFSub
	G  GSub
	DG DGSub
	// Guess is non-nil only when Ipar[iparGuessSource] == guessFromFunc.
	Guess GuessFunc
}

// StateBlock is one named piece of the kernel's process-wide working
// state. The slices are live views: the reentrancy stack copies them on
// nested entry and writes the copies back on exit.
type StateBlock struct {
	Name   string
	Ints   []int32
	Floats []float64
}

// Kernel is the external collocation engine. It is stateful and not
// reentrant: a second Solve must not start on the same kernel state while
// one is in progress unless the caller snapshots StateBlocks first, which
// is exactly what Solver does.
type Kernel interface {
	// Solve runs the collocation driver and returns a status flag.
	// On StatusOK the workspace buffers in req hold the packed solution.
	Solve(req *Request) int

	// Evaluate computes the z-vector at each point from a packed
	// solution, returning one row of length mstar per point. It is a pure
	// function of its arguments.
	Evaluate(x []float64, fspace []float64, ispace []int32) [][]float64

	// StateBlocks returns live views of every named global work area, in
	// a stable order.
	StateBlocks() []StateBlock
}
