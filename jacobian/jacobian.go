// Package jacobian computes finite-difference Jacobians of vector
// functions and cross-checks analytic Jacobians against them.
package jacobian

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// DefaultStep is the default finite-difference step size.
const DefaultStep = 1e-6

// Scheme selects the difference formula.
type Scheme int

const (
	// Forward uses (f(x+h) - f(x)) / h, one extra evaluation per column.
	Forward Scheme = iota
	// Central uses (f(x+h) - f(x-h)) / 2h, second-order accurate.
	Central
)

// Numerical returns the forward-difference Jacobian of f at x0, one
// column per input component.
func Numerical(f func([]float64) []float64, x0 []float64) *mat.Dense {
	return NumericalScheme(f, x0, Forward, DefaultStep)
}

// NumericalScheme returns the Jacobian of f at x0 using the given
// difference scheme and step.
func NumericalScheme(f func([]float64) []float64, x0 []float64, scheme Scheme, step float64) *mat.Dense {
	n := len(x0)
	x := append([]float64(nil), x0...)

	var f0 []float64
	if scheme == Forward {
		f0 = f(x)
	}

	var out *mat.Dense
	for j := 0; j < n; j++ {
		h := step * math.Max(1, math.Abs(x0[j]))
		var col []float64
		switch scheme {
		case Central:
			x[j] = x0[j] + h
			fp := f(x)
			x[j] = x0[j] - h
			fm := f(x)
			x[j] = x0[j]
			col = make([]float64, len(fp))
			for i := range col {
				col[i] = (fp[i] - fm[i]) / (2 * h)
			}
		default:
			x[j] = x0[j] + h
			fp := f(x)
			x[j] = x0[j]
			col = make([]float64, len(fp))
			for i := range col {
				col[i] = (fp[i] - f0[i]) / h
			}
		}
		if out == nil {
			out = mat.NewDense(len(col), n, nil)
		}
		for i, v := range col {
			out.Set(i, j, v)
		}
	}
	return out
}

// Options configure Check.
type Options struct {
	// Samples is the number of random points compared; 0 means 5.
	Samples int
	// Step is the difference step; 0 means DefaultStep.
	Step float64
	// AbsTol and RelTol bound the accepted elementwise discrepancy as
	// |a-b| <= AbsTol + RelTol*(|a|+|b|). Zeros mean 1e-5 and 1e-3.
	AbsTol float64
	RelTol float64
	// Low and High bound the random sample points; both 0 means [-1, 1].
	Low  float64
	High float64
	// Rand supplies the sample source. Nil means a fixed-seed source, so
	// checks are reproducible by default.
	Rand *rand.Rand
}

func (o *Options) defaults() Options {
	v := Options{Samples: 5, Step: DefaultStep, AbsTol: 1e-5, RelTol: 1e-3, Low: -1, High: 1}
	if o == nil {
		return v
	}
	out := *o
	if out.Samples == 0 {
		out.Samples = v.Samples
	}
	if out.Step == 0 {
		out.Step = v.Step
	}
	if out.AbsTol == 0 {
		out.AbsTol = v.AbsTol
	}
	if out.RelTol == 0 {
		out.RelTol = v.RelTol
	}
	if out.Low == 0 && out.High == 0 {
		out.Low, out.High = v.Low, v.High
	}
	return out
}

// MismatchError reports one Jacobian entry disagreeing with its
// finite-difference estimate.
type MismatchError struct {
	Sample int
	Row    int
	Col    int
	Got    float64 // analytic value
	Want   float64 // finite-difference value
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("jacobian: entry (%d,%d) mismatch at sample %d: analytic %g, numerical %g",
		e.Row, e.Col, e.Sample, e.Got, e.Want)
}

// Check compares df against a central-difference Jacobian of f at
// Samples random points in R^n and returns a *MismatchError for the
// first entry that disagrees beyond tolerance.
func Check(n int, f func([]float64) []float64, df func([]float64) *mat.Dense, opt *Options) error {
	o := opt.defaults()
	rng := o.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	for s := 0; s < o.Samples; s++ {
		x := make([]float64, n)
		for j := range x {
			x[j] = o.Low + (o.High-o.Low)*rng.Float64()
		}

		want := NumericalScheme(f, x, Central, o.Step)
		got := df(x)

		r, c := want.Dims()
		gr, gc := got.Dims()
		if gr != r || gc != c {
			return fmt.Errorf("jacobian: analytic shape (%d,%d) does not match numerical (%d,%d)", gr, gc, r, c)
		}
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				a, b := got.At(i, j), want.At(i, j)
				if math.Abs(a-b) > o.AbsTol+o.RelTol*(math.Abs(a)+math.Abs(b)) {
					return &MismatchError{Sample: s, Row: i, Col: j, Got: a, Want: b}
				}
			}
		}
	}
	return nil
}
