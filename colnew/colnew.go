package colnew

// Solver binds a Kernel to the reentrancy stack guarding its global
// state. Nested solves (a solve started from inside another solve's
// callbacks) must go through the same Solver so the stack can bracket
// them.
type Solver struct {
	kernel Kernel
	stack  stateStack
}

// NewSolver returns a Solver around k.
func NewSolver(k Kernel) *Solver {
	return &Solver{kernel: k}
}

var defaultSolver = &Solver{}

// SetKernel installs the collocation engine used by the package-level
// Solve and SolveComplex.
func SetKernel(k Kernel) { defaultSolver.kernel = k }

// Solve solves a real boundary value problem with the installed kernel.
func Solve(p *Problem) (*Solution, error) { return defaultSolver.Solve(p) }

// SolveComplex solves a complex boundary value problem with the
// installed kernel.
func SolveComplex(p *ComplexProblem) (*ComplexSolution, error) {
	return defaultSolver.SolveComplex(p)
}

// Solve validates and marshals p, sizes and seeds the workspace, runs
// the kernel, and wraps the result. The state stack brackets the whole
// pipeline so that even a validation failure inside a nested solve
// restores the outer solve's kernel state.
func (s *Solver) Solve(p *Problem) (*Solution, error) {
	if s.kernel == nil {
		return nil, ErrNoKernel
	}
	s.stack.enter(s.kernel)
	defer s.stack.exit(s.kernel)
	return s.solve(p)
}

// SolveComplex rewrites p as a real problem of doubled size, solves it,
// and wraps the real solution in a complex view.
func (s *Solver) SolveComplex(p *ComplexProblem) (*ComplexSolution, error) {
	a := newComplexAdapter(p.Degrees)
	rp, err := a.realProblem(p)
	if err != nil {
		return nil, err
	}
	sol, err := s.Solve(rp)
	if err != nil {
		return nil, err
	}
	return &ComplexSolution{real: sol, adapter: a}, nil
}

func (s *Solver) solve(p *Problem) (*Solution, error) {
	pr, err := p.marshal()
	if err != nil {
		return nil, err
	}
	if pr.k == 0 {
		pr.k = defaultCollocation(p.Degrees)
	}

	ni, nf := WorkspaceSize(pr.ncomp, pr.mstar, pr.k, pr.maxMesh)
	ws := newWorkspace(ni, nf)

	plan, err := resolveGuess(p, ws)
	if err != nil {
		return nil, err
	}

	f, df, g, dg := p.F, p.DF, p.G, p.DG
	if df == nil {
		df = numericalDF(f, pr.ncomp)
	}
	if dg == nil {
		dg = numericalDG(g, pr.mstar)
	}

	degrees := make([]int32, pr.ncomp)
	for i, d := range p.Degrees {
		degrees[i] = int32(d)
	}

	req := &Request{
		Degrees: degrees,
		Left:    pr.left,
		Right:   pr.right,
		Zeta:    pr.zeta,
		Ltol:    pr.ltol,
		Tol:     pr.tol,
		Fixpnt:  pr.fixpnt,
		Ispace:  ws.ispace,
		Fspace:  ws.fspace,
		F:       f,
		DF:      df,
		G:       g,
		DG:      dg,
		Guess:   plan.guess,
	}
	req.Ipar[iparNonlinear] = 1 - b2i(p.Linear)
	req.Ipar[iparCollocation] = int32(pr.k)
	req.Ipar[iparSubintervals] = plan.subintervals
	req.Ipar[iparTolerances] = int32(len(pr.ltol))
	req.Ipar[iparFspaceLen] = int32(nf)
	req.Ipar[iparIspaceLen] = int32(ni)
	req.Ipar[iparOutput] = int32(1 - pr.verbosity)
	req.Ipar[iparMeshSource] = plan.meshSource
	req.Ipar[iparGuessSource] = plan.guessSource
	req.Ipar[iparRegularity] = b2i(p.Sensitive)
	req.Ipar[iparFixpnts] = int32(pr.nfixpnt)

	if err := statusError(s.kernel.Solve(req)); err != nil {
		return nil, err
	}
	return newSolution(s.kernel, ws), nil
}

func b2i(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
