package colnew

// The kernel keeps its working data in process-wide named blocks, so a
// solve starting while another is paused on the same call stack would
// trample the outer one's state. stateStack makes the kernel nestable:
// the outermost enter does nothing, every nested enter snapshots all
// blocks, and the matching exit writes the snapshot back. exit must run
// on every path out of a solve, success or failure, which Solver
// guarantees with a defer.
type stateStack struct {
	depth int
	saved [][]StateBlock
}

func (s *stateStack) enter(k Kernel) {
	s.depth++
	if s.depth == 1 {
		return
	}
	blocks := k.StateBlocks()
	snap := make([]StateBlock, len(blocks))
	for i, b := range blocks {
		snap[i] = StateBlock{
			Name:   b.Name,
			Ints:   append([]int32(nil), b.Ints...),
			Floats: append([]float64(nil), b.Floats...),
		}
	}
	s.saved = append(s.saved, snap)
}

func (s *stateStack) exit(k Kernel) {
	s.depth--
	if s.depth == 0 {
		return
	}
	snap := s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
	for i, b := range k.StateBlocks() {
		copy(b.Ints, snap[i].Ints)
		copy(b.Floats, snap[i].Floats)
	}
}
