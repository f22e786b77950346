package colnew

import (
	"errors"
	"fmt"
)

var (
	// ErrNoKernel indicates no collocation engine has been installed.
	ErrNoKernel = errors.New("colnew: no kernel installed")

	// ErrBadDegree indicates an equation degree outside [1,4].
	ErrBadDegree = errors.New("colnew: equation degrees must be between 1 and 4")
	// ErrNoEquations indicates an empty degree list.
	ErrNoEquations = errors.New("colnew: no equations")
	// ErrTooManyEquations indicates ncomp exceeds the kernel limit of 256.
	ErrTooManyEquations = errors.New("colnew: too many equations")
	// ErrTooManyUnknowns indicates mstar exceeds the kernel limit of 512.
	ErrTooManyUnknowns = errors.New("colnew: too many unknown variables")
	// ErrBadCollocationPoints indicates a collocation point count outside
	// [max(degrees), 7].
	ErrBadCollocationPoints = errors.New("colnew: invalid number of collocation points")
	// ErrBadDomain indicates a Domain that is not an ascending pair.
	ErrBadDomain = errors.New("colnew: domain must be an ascending [left, right] pair")
	// ErrBoundaryCount indicates len(BoundaryPoints) != mstar.
	ErrBoundaryCount = errors.New("colnew: invalid number of boundary points")
	// ErrBoundaryOrder indicates boundary points not sorted ascending.
	ErrBoundaryOrder = errors.New("colnew: boundary points must be sorted in increasing order")
	// ErrBoundaryRange indicates a boundary point outside [left, right].
	ErrBoundaryRange = errors.New("colnew: boundary point outside [left, right]")
	// ErrToleranceCount indicates len(Tolerances) != mstar.
	ErrToleranceCount = errors.New("colnew: invalid number of tolerances")
	// ErrBadGuess indicates an initial guess of an unsupported kind for
	// the problem at hand.
	ErrBadGuess = errors.New("colnew: unsupported initial guess")

	// ErrCoarsenWithMesh indicates CoarsenGuessMesh combined with an
	// explicit InitialMesh; there is no mesh of the prior solution left to
	// coarsen once a new one is imposed.
	ErrCoarsenWithMesh = errors.New("colnew: initial mesh and coarsening both specified")
	// ErrMeshConflict indicates both InitialMeshSize and InitialMesh set.
	ErrMeshConflict = errors.New("colnew: initial mesh size and explicit initial mesh both specified")
	// ErrMeshRequired indicates FixedMesh without explicit mesh points:
	// with adaptive selection disabled nothing can generate a mesh.
	ErrMeshRequired = errors.New("colnew: fixed mesh refinement requires an explicit initial mesh")

	// ErrSingularCollocation maps kernel status 0.
	ErrSingularCollocation = errors.New("colnew: singular collocation matrix")
	// ErrStorageExhausted maps kernel status -1.
	ErrStorageExhausted = errors.New("colnew: out of workspace, increase MaxMeshSize")
	// ErrNoConvergence maps kernel status -2.
	ErrNoConvergence = errors.New("colnew: nonlinear iteration did not converge")
	// ErrInvalidKernelInput maps kernel status -3.
	ErrInvalidKernelInput = errors.New("colnew: invalid input data passed to kernel")
	// ErrKernelFault covers any unrecognized kernel status.
	ErrKernelFault = errors.New("colnew: unknown kernel failure")
)

// JacobianMismatchError reports a disagreement between a user-supplied
// Jacobian and its finite-difference estimate.
type JacobianMismatchError struct {
	// Which names the offending callback, "dfsub" or "dgsub".
	Which string
	// Sample is the index of the random evaluation that disagreed.
	Sample int
	// Err is the underlying elementwise mismatch.
	Err error
}

func (e *JacobianMismatchError) Error() string {
	return fmt.Sprintf("colnew: %s may be invalid (sample %d): %v", e.Which, e.Sample, e.Err)
}

func (e *JacobianMismatchError) Unwrap() error { return e.Err }

// statusError maps a kernel status flag to the package error taxonomy.
// Status 1 is success and maps to nil.
func statusError(flag int) error {
	switch flag {
	case StatusOK:
		return nil
	case StatusSingular:
		return ErrSingularCollocation
	case StatusStorage:
		return ErrStorageExhausted
	case StatusNoConvergence:
		return ErrNoConvergence
	case StatusBadInput:
		return ErrInvalidKernelInput
	default:
		return fmt.Errorf("%w: status %d", ErrKernelFault, flag)
	}
}
