package colnew

// The kernel consumes batched callbacks exclusively. Pointwise,
// PointwiseJacobian and PointwiseGuess lift per-point callbacks to the
// batched forms at the boundary, so that the hot path never branches on
// callback style. Layout is component-major, point-minor throughout.

// Pointwise lifts a per-point right-hand side to an FSub.
func Pointwise(f func(x float64, z []float64) []float64) FSub {
	return func(xs []float64, z [][]float64) [][]float64 {
		var out [][]float64
		for k, x := range xs {
			fk := f(x, column(z, k))
			if out == nil {
				out = newGrid(len(fk), len(xs))
			}
			for i, v := range fk {
				out[i][k] = v
			}
		}
		return out
	}
}

// PointwiseJacobian lifts a per-point Jacobian to a DFSub.
func PointwiseJacobian(df func(x float64, z []float64) [][]float64) DFSub {
	return func(xs []float64, z [][]float64) [][][]float64 {
		var out [][][]float64
		for k, x := range xs {
			dk := df(x, column(z, k))
			if out == nil {
				out = make([][][]float64, len(dk))
				for i := range out {
					out[i] = newGrid(len(dk[i]), len(xs))
				}
			}
			for i := range dk {
				for j, v := range dk[i] {
					out[i][j][k] = v
				}
			}
		}
		return out
	}
}

// PointwiseGuess lifts a per-point guess function to a GuessFunc.
func PointwiseGuess(g func(x float64) (z, dm []float64)) GuessFunc {
	return func(xs []float64) ([][]float64, [][]float64) {
		var zs, dms [][]float64
		for k, x := range xs {
			zk, dmk := g(x)
			if zs == nil {
				zs = newGrid(len(zk), len(xs))
				dms = newGrid(len(dmk), len(xs))
			}
			for i, v := range zk {
				zs[i][k] = v
			}
			for i, v := range dmk {
				dms[i][k] = v
			}
		}
		return zs, dms
	}
}

// column extracts z[.][k] as a fresh vector.
func column(z [][]float64, k int) []float64 {
	out := make([]float64, len(z))
	for i := range z {
		out[i] = z[i][k]
	}
	return out
}

// newGrid allocates a rows-by-cols batch in one backing array.
func newGrid(rows, cols int) [][]float64 {
	backing := make([]float64, rows*cols)
	out := make([][]float64, rows)
	for i := range out {
		out[i] = backing[i*cols : (i+1)*cols]
	}
	return out
}

// cloneGrid deep-copies a batch.
func cloneGrid(z [][]float64) [][]float64 {
	out := newGrid(len(z), len(z[0]))
	for i := range z {
		copy(out[i], z[i])
	}
	return out
}
