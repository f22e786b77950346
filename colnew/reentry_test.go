package colnew

import "testing"

// nestingKernel stamps a marker into its state block on every Solve and
// copies the block value into the result after invoking the right-hand
// side once, imitating a kernel whose output depends on its global state
// surviving the callbacks.
type nestingKernel struct {
	fakeKernel
}

func newNestingKernel() *nestingKernel {
	k := &nestingKernel{}
	k.blocks = []StateBlock{
		{Name: "colnln", Floats: make([]float64, 2)},
		{Name: "colest", Ints: make([]int32, 2)},
	}
	return k
}

func (k *nestingKernel) Solve(req *Request) int {
	stamp := float64(len(req.Fspace))
	k.blocks[0].Floats[0] = stamp
	k.blocks[1].Ints[0] = int32(len(req.Zeta))

	// Drive the callbacks, as the real kernel would. A nested solve may
	// start inside them.
	z := make([][]float64, len(req.Zeta))
	for i := range z {
		z[i] = []float64{0}
	}
	req.F([]float64{req.Left}, z)

	fillSuccess(req)
	// Record what the state block holds after the callbacks returned.
	req.Fspace[fakeNMesh] = k.blocks[0].Floats[0]
	return StatusOK
}

func TestNestedSolvePreservesOuterState(t *testing.T) {
	k := newNestingKernel()
	s := NewSolver(k)

	// Inner problem has a different workspace size, so its stamp differs
	// from the outer one.
	inner := twoPointProblem()
	inner.MaxMeshSize = 50

	outerSolo, err := s.Solve(twoPointProblem())
	if err != nil {
		t.Fatal(err)
	}

	nested := twoPointProblem()
	nested.F = func(x []float64, z [][]float64) [][]float64 {
		if _, err := s.Solve(inner); err != nil {
			t.Fatalf("nested solve failed: %v", err)
		}
		f := make([]float64, len(x))
		return [][]float64{f}
	}
	outerNested, err := s.Solve(nested)
	if err != nil {
		t.Fatal(err)
	}

	// The outer solve's view of the kernel state, and therefore its
	// result, must be identical to running it alone.
	if outerNested.fspace[fakeNMesh] != outerSolo.fspace[fakeNMesh] {
		t.Errorf("outer state corrupted by nested solve: %g vs %g",
			outerNested.fspace[fakeNMesh], outerSolo.fspace[fakeNMesh])
	}

	m1, m2 := outerSolo.Mesh(), outerNested.Mesh()
	for i := range m1 {
		if m1[i] != m2[i] {
			t.Fatalf("outer mesh changed by nesting at %d", i)
		}
	}
}

func TestNestedSolveFailureStillRestores(t *testing.T) {
	k := newNestingKernel()
	s := NewSolver(k)

	outerSolo, err := s.Solve(twoPointProblem())
	if err != nil {
		t.Fatal(err)
	}

	// The nested call fails validation; the outer state must survive.
	bad := twoPointProblem()
	bad.BoundaryPoints = []float64{0.5, 0.2}

	nested := twoPointProblem()
	nested.F = func(x []float64, z [][]float64) [][]float64 {
		if _, err := s.Solve(bad); err == nil {
			t.Fatal("expected nested validation failure")
		}
		f := make([]float64, len(x))
		return [][]float64{f}
	}
	outerNested, err := s.Solve(nested)
	if err != nil {
		t.Fatal(err)
	}

	if outerNested.fspace[fakeNMesh] != outerSolo.fspace[fakeNMesh] {
		t.Errorf("outer state corrupted by failed nested solve")
	}
}

func TestStateStackDepth(t *testing.T) {
	k := newFakeKernel()
	var st stateStack

	st.enter(k)
	if len(st.saved) != 0 {
		t.Error("outermost enter must not snapshot")
	}

	k.blocks[0].Floats[0] = 1.5
	k.blocks[1].Ints[0] = 7
	st.enter(k)
	if len(st.saved) != 1 {
		t.Fatal("nested enter must snapshot")
	}

	k.blocks[0].Floats[0] = -3
	k.blocks[1].Ints[0] = 99
	st.exit(k)
	if k.blocks[0].Floats[0] != 1.5 || k.blocks[1].Ints[0] != 7 {
		t.Error("nested exit must restore block contents")
	}

	st.exit(k)
	if st.depth != 0 || len(st.saved) != 0 {
		t.Error("stack not drained")
	}
}
