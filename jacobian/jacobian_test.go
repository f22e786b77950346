package jacobian

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestNumericalLinearMap(t *testing.T) {
	// f(x) = A x has Jacobian A everywhere.
	a := [][]float64{
		{2, -1, 0},
		{0.5, 3, -2},
	}
	f := func(x []float64) []float64 {
		out := make([]float64, len(a))
		for i := range a {
			for j, v := range a[i] {
				out[i] += v * x[j]
			}
		}
		return out
	}

	j := Numerical(f, []float64{0.3, -0.7, 1.2})
	r, c := j.Dims()
	if r != 2 || c != 3 {
		t.Fatalf("dims = (%d,%d), want (2,3)", r, c)
	}
	for i := range a {
		for k, want := range a[i] {
			if got := j.At(i, k); math.Abs(got-want) > 1e-5 {
				t.Errorf("J[%d][%d] = %g, want %g", i, k, got, want)
			}
		}
	}
}

func TestNumericalCentralQuadratic(t *testing.T) {
	// f(x) = x^2: central differences are exact up to roundoff for
	// quadratics, forward differences are not.
	f := func(x []float64) []float64 {
		return []float64{x[0] * x[0]}
	}
	x0 := []float64{3}

	central := NumericalScheme(f, x0, Central, 1e-5)
	if got := central.At(0, 0); math.Abs(got-6) > 1e-8 {
		t.Errorf("central J = %g, want 6", got)
	}

	forward := NumericalScheme(f, x0, Forward, 1e-5)
	if got := forward.At(0, 0); math.Abs(got-6) > 1e-3 {
		t.Errorf("forward J = %g, want ~6", got)
	}
}

func TestCheckIdentity(t *testing.T) {
	f := func(x []float64) []float64 {
		return append([]float64(nil), x...)
	}
	df := func(x []float64) *mat.Dense {
		out := mat.NewDense(len(x), len(x), nil)
		for i := range x {
			out.Set(i, i, 1)
		}
		return out
	}
	if err := Check(4, f, df, nil); err != nil {
		t.Fatalf("identity jacobian rejected: %v", err)
	}
}

func TestCheckZeroMatrixFails(t *testing.T) {
	f := func(x []float64) []float64 {
		return append([]float64(nil), x...)
	}
	df := func(x []float64) *mat.Dense {
		return mat.NewDense(len(x), len(x), nil)
	}
	err := Check(3, f, df, nil)
	if err == nil {
		t.Fatal("zero jacobian accepted")
	}
	var mismatch *MismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("error type %T, want *MismatchError", err)
	}
	if mismatch.Row != mismatch.Col {
		t.Errorf("first mismatch at (%d,%d), want a diagonal entry", mismatch.Row, mismatch.Col)
	}
}

func TestCheckShapeMismatch(t *testing.T) {
	f := func(x []float64) []float64 {
		return []float64{x[0] + x[1]}
	}
	df := func(x []float64) *mat.Dense {
		return mat.NewDense(2, 2, nil)
	}
	if err := Check(2, f, df, nil); err == nil {
		t.Fatal("shape mismatch accepted")
	}
}

func TestCheckDeterministicByDefault(t *testing.T) {
	calls := [][]float64{}
	f := func(x []float64) []float64 {
		calls = append(calls, append([]float64(nil), x...))
		return []float64{x[0]}
	}
	df := func(x []float64) *mat.Dense {
		return mat.NewDense(1, 1, []float64{1})
	}

	if err := Check(1, f, df, &Options{Samples: 1}); err != nil {
		t.Fatal(err)
	}
	first := calls[0][0]
	calls = nil
	if err := Check(1, f, df, &Options{Samples: 1}); err != nil {
		t.Fatal(err)
	}
	if calls[0][0] != first {
		t.Errorf("default sampling not reproducible: %g vs %g", calls[0][0], first)
	}
}
