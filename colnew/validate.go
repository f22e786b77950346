package colnew

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
)

const (
	maxEquations = 256 // kernel limit on ncomp
	maxUnknowns  = 512 // kernel limit on mstar

	defaultMaxMeshSize  = 100
	defaultSubintervals = 10
)

// params is the kernel-ready form of a Problem: primitive arrays and
// resolved scalars, produced by marshal and consumed by the solve
// pipeline. A zero k means "not yet resolved"; the continuation resolver
// supplies the default before workspace sizing.
type params struct {
	ncomp int
	mstar int
	left  float64
	right float64
	zeta  []float64

	k       int
	fixpnt  []float64
	nfixpnt int

	ltol []int32
	tol  []float64

	maxMesh   int
	verbosity int
}

// marshal validates p and converts it into kernel primitives. It never
// mutates p.
func (p *Problem) marshal() (*params, error) {
	for _, d := range p.Degrees {
		if d < 1 || d > 4 {
			return nil, fmt.Errorf("%w: got %d", ErrBadDegree, d)
		}
	}

	ncomp := p.NComp()
	mstar := p.MStar()
	if ncomp == 0 || mstar == 0 {
		return nil, ErrNoEquations
	}
	if ncomp > maxEquations {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyEquations, ncomp, maxEquations)
	}
	if mstar > maxUnknowns {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyUnknowns, mstar, maxUnknowns)
	}

	maxDeg := 0
	for _, d := range p.Degrees {
		if d > maxDeg {
			maxDeg = d
		}
	}
	k := p.CollocationPoints
	if k != 0 && (k < maxDeg || k > 7) {
		return nil, fmt.Errorf("%w: %d not in [%d, 7]", ErrBadCollocationPoints, k, maxDeg)
	}

	if len(p.BoundaryPoints) != mstar {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrBoundaryCount, len(p.BoundaryPoints), mstar)
	}

	var left, right float64
	if p.Domain != nil {
		if len(p.Domain) != 2 || !(p.Domain[0] < p.Domain[1]) {
			return nil, ErrBadDomain
		}
		left, right = p.Domain[0], p.Domain[1]
	} else {
		left = floats.Min(p.BoundaryPoints)
		right = floats.Max(p.BoundaryPoints)
	}

	// The caller's exact ascending sequence is part of the contract: the
	// j-th condition belongs to the j-th point, so no silent re-sort.
	if !sort.Float64sAreSorted(p.BoundaryPoints) {
		return nil, ErrBoundaryOrder
	}
	zeta := append([]float64(nil), p.BoundaryPoints...)
	for _, x := range zeta {
		if x < left || x > right {
			return nil, fmt.Errorf("%w: %g outside [%g, %g]", ErrBoundaryRange, x, left, right)
		}
	}

	// Fixed mesh points: boundary points plus extras, inside the open
	// interval, sorted and deduplicated.
	fixpnt := make([]float64, 0, len(zeta)+len(p.ExtraFixedPoints))
	for _, x := range append(append([]float64(nil), zeta...), p.ExtraFixedPoints...) {
		if x > left && x < right {
			fixpnt = append(fixpnt, x)
		}
	}
	sort.Float64s(fixpnt)
	fixpnt = dedup(fixpnt)
	nfixpnt := len(fixpnt)
	if nfixpnt == 0 {
		// Kernel expects a non-empty array even when the count is zero.
		fixpnt = []float64{0}
	}

	tolerances := p.Tolerances
	if tolerances == nil {
		tolerances = make([]float64, mstar)
	}
	if len(tolerances) != mstar {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrToleranceCount, len(tolerances), mstar)
	}
	var ltol []int32
	var tol []float64
	for i, t := range tolerances {
		if t > 0 {
			ltol = append(ltol, int32(i+1)) // kernel indexing is 1-based
			tol = append(tol, t)
		}
	}

	verbosity := p.Verbosity
	if verbosity < Silent {
		verbosity = Silent
	} else if verbosity > Debug {
		verbosity = Debug
	}

	maxMesh := p.MaxMeshSize
	if maxMesh == 0 {
		maxMesh = defaultMaxMeshSize
	}

	return &params{
		ncomp:     ncomp,
		mstar:     mstar,
		left:      left,
		right:     right,
		zeta:      zeta,
		k:         k,
		fixpnt:    fixpnt,
		nfixpnt:   nfixpnt,
		ltol:      ltol,
		tol:       tol,
		maxMesh:   maxMesh,
		verbosity: verbosity,
	}, nil
}

// dedup removes exact duplicates from a sorted slice, in place.
func dedup(xs []float64) []float64 {
	if len(xs) < 2 {
		return xs
	}
	out := xs[:1]
	for _, x := range xs[1:] {
		if x != out[len(out)-1] {
			out = append(out, x)
		}
	}
	return out
}
