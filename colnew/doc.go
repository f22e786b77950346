// Package colnew drives a collocation kernel for multi-point boundary
// value problems of mixed-order ODE systems.
//
// The package is the orchestration layer around an opaque, stateful
// collocation engine (see [Kernel]): it validates a [Problem], sizes and
// lays out the kernel's flat working storage, resolves initial guesses
// and mesh continuation, adapts complex-valued problems into doubled
// real-valued ones, substitutes finite-difference Jacobians when analytic
// ones are absent, and brackets every kernel call with a state stack so
// that solves can nest on one call stack without corrupting each other.
//
// A mixed-order system with degrees m_1..m_n is
//
//	u_i^(m_i)(x) = f_i(x, z(x)),   left <= x <= right
//	g_j(zeta_j, z(zeta_j)) = 0,    j = 0..mstar-1
//
// where mstar = sum(m_i) and z is the stacked vector of each component's
// solution and derivatives of order < m_i. Boundary conditions must be
// separated: g_j may depend only on z at zeta_j.
//
// Typical use:
//
//	colnew.SetKernel(kernel)
//	sol, err := colnew.Solve(&colnew.Problem{
//	    Degrees:        []int{2},
//	    BoundaryPoints: []float64{0, 1},
//	    F:              f,
//	    G:              g,
//	    Linear:         true,
//	})
//
// Solutions feed back into later solves as continuation input via
// [Problem.InitialGuess].
package colnew
