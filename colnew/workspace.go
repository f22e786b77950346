package colnew

// WorkspaceSize returns the integer and float workspace lengths the
// kernel requires for a problem of the given dimensions. The formulas
// must match the kernel's internal layout exactly:
//
//	kd  = k*ncomp
//	kdm = kd + mstar
//	ni  = M * (3 + kdm)
//	nf  = M * (4 + 3*mstar + (5+kd)*kdm + 2*mstar*2*mstar)
//
// where k is the collocation point count and M the maximum mesh size.
// Sizes are deterministic and strictly increasing in M.
func WorkspaceSize(ncomp, mstar, collocationPoints, maxMeshSize int) (ni, nf int) {
	kd := collocationPoints * ncomp
	kdm := kd + mstar
	ni = maxMeshSize * (3 + kdm)
	nf = maxMeshSize * (4 + 3*mstar + (5+kd)*kdm + 2*mstar*2*mstar)
	return ni, nf
}

// workspace is the pair of flat buffers owned by one in-flight solve.
// The kernel fills them; no zeroing is required up front.
type workspace struct {
	ispace []int32
	fspace []float64
}

func newWorkspace(ni, nf int) *workspace {
	return &workspace{
		ispace: make([]int32, ni),
		fspace: make([]float64, nf),
	}
}
