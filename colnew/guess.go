package colnew

import "fmt"

// Initial guess sources, ipar[iparGuessSource].
const (
	guessCold        = 0 // kernel builds a trivial profile
	guessFromFunc    = 1 // evaluate the caller's guess function
	guessReuseMesh   = 2 // prior solution, mesh as-is
	guessCoarsenMesh = 3 // prior solution, coarsen mesh first
	guessOntoMesh    = 4 // prior solution appended after a new mesh
)

// Initial mesh sources, ipar[iparMeshSource].
const (
	meshDefault  = 0 // uniform mesh of ipar[iparSubintervals] pieces
	meshExplicit = 1 // caller's mesh, adaptive selection on
	meshFixed    = 2 // caller's mesh, trivial refinement only
)

// guessPlan is the resolved continuation configuration: the two source
// flags, the initial subinterval count, and the guess callback if any.
// Workspace prefills happen as a side effect of resolveGuess.
type guessPlan struct {
	guessSource  int32
	meshSource   int32
	subintervals int32
	guess        GuessFunc
}

// defaultCollocation picks the kernel's default collocation point count
// when the caller left it unset: one more than the highest equation
// order, capped at 7.
func defaultCollocation(degrees []int) int {
	m := 0
	for _, d := range degrees {
		if d > m {
			m = d
		}
	}
	k := m + 1
	if k > 7 {
		k = 7
	}
	return k
}

// resolveGuess translates the initial-condition mode of p into kernel
// flags and pre-seeds the workspace from any prior solution or explicit
// mesh. Exactly one of the four guess modes applies.
func resolveGuess(p *Problem, ws *workspace) (guessPlan, error) {
	plan := guessPlan{subintervals: defaultSubintervals}

	if p.InitialMeshSize != 0 && p.InitialMesh != nil {
		return plan, ErrMeshConflict
	}

	prior := p.InitialGuess
	if cs, ok := prior.(*ComplexSolution); ok {
		prior = cs.real
	}

	switch g := prior.(type) {
	case nil:
		plan.guessSource = guessCold

	case GuessFunc:
		plan.guessSource = guessFromFunc
		plan.guess = g

	case *Solution:
		if p.InitialMesh == nil {
			copy(ws.ispace, g.ispace)
			copy(ws.fspace, g.fspace)
			plan.subintervals = ws.ispace[0]
			if p.CoarsenGuessMesh {
				plan.guessSource = guessCoarsenMesh
			} else {
				plan.guessSource = guessReuseMesh
			}
		} else {
			if p.CoarsenGuessMesh {
				return plan, ErrCoarsenWithMesh
			}
			// The new mesh occupies the buffer heads; the prior
			// solution's data goes right after it.
			n := len(p.InitialMesh)
			copy(ws.ispace[n:], g.ispace)
			copy(ws.fspace[n:], g.fspace)
			plan.guessSource = guessOntoMesh
			plan.subintervals = int32(n - 1)
		}

	default:
		return plan, fmt.Errorf("%w: %T", ErrBadGuess, p.InitialGuess)
	}

	if p.InitialMeshSize != 0 {
		plan.subintervals = int32(p.InitialMeshSize)
	}

	if p.InitialMesh != nil {
		copy(ws.fspace, p.InitialMesh)
		plan.subintervals = int32(len(p.InitialMesh) - 1)
		if p.FixedMesh {
			plan.meshSource = meshFixed
		} else {
			plan.meshSource = meshExplicit
		}
	} else {
		plan.meshSource = meshDefault
		if p.FixedMesh {
			// Trivial refinement has no way to invent mesh locations;
			// a bare count is not enough.
			return plan, ErrMeshRequired
		}
	}

	return plan, nil
}
