package colnew

// Solution is an immutable snapshot of a successful solve: the populated
// prefixes of the kernel workspace plus the derived dimensions. It can be
// evaluated anywhere in the domain and fed back to a later solve as
// continuation input.
type Solution struct {
	ncomp  int
	mstar  int
	nmesh  int
	ispace []int32
	fspace []float64
	kernel Kernel
}

// newSolution compacts a filled workspace into a Solution. The integer
// prefix is 7+ncomp entries; the float prefix length is reported by the
// kernel in ispace[6].
func newSolution(k Kernel, ws *workspace) *Solution {
	ncomp := int(ws.ispace[2])
	mstar := int(ws.ispace[3])
	return &Solution{
		ncomp:  ncomp,
		mstar:  mstar,
		nmesh:  int(ws.ispace[0]) + 1,
		ispace: append([]int32(nil), ws.ispace[:7+ncomp]...),
		fspace: append([]float64(nil), ws.fspace[:ws.ispace[6]]...),
		kernel: k,
	}
}

// NComp returns the number of equations.
func (s *Solution) NComp() int { return s.ncomp }

// MStar returns the number of scalar unknowns.
func (s *Solution) MStar() int { return s.mstar }

// NMesh returns the number of mesh points.
func (s *Solution) NMesh() int { return s.nmesh }

// Mesh returns a copy of the mesh breakpoints, ascending.
func (s *Solution) Mesh() []float64 {
	return append([]float64(nil), s.fspace[:s.nmesh]...)
}

// Eval evaluates the solution at each point, returning one z-vector
//
//	[u_1, u_1', ..., u_1^(m_1-1), u_2, ...]
//
// of length MStar per point.
func (s *Solution) Eval(x []float64) [][]float64 {
	return s.kernel.Evaluate(x, s.fspace, s.ispace)
}

// At evaluates the solution at a single point.
func (s *Solution) At(x float64) []float64 {
	return s.Eval([]float64{x})[0]
}

// MeshValues returns the z-vectors at the mesh points.
func (s *Solution) MeshValues() [][]float64 {
	return s.Eval(s.fspace[:s.nmesh])
}
