package projective

import (
	"math"

	"github.com/ctessum/sparse"
)

// TensorFromPoly converts a polynomial to its coefficient tensor. The
// tensor has one axis per variable, each of length deg+1, and entry
// [i0, i1, ...] holds the coefficient of x0^i0 * x1^i1 * ... . Coefficient
// tensors are real; a polynomial with non-negligible imaginary coefficients
// yields ErrNotSupported.
func TensorFromPoly(p Poly) (*sparse.DenseArray, error) {
	deg := p.TotalDegree()
	if deg < 0 {
		deg = 0
	}
	dims := make([]int, p.NumVars())
	for i := range dims {
		dims[i] = deg + 1
	}
	arr := sparse.ZerosDense(dims...)
	idx := make([]int, p.NumVars())
	for k, c := range p.terms {
		if math.Abs(imag(c)) > defaultTol {
			return nil, ErrNotSupported
		}
		for i := 0; i < p.n; i++ {
			idx[i] = int(k[i])
		}
		arr.AddVal(real(c), idx...)
	}
	return arr, nil
}

// PolyFromTensor converts a coefficient tensor back to a polynomial.
func PolyFromTensor(arr *sparse.DenseArray) Poly {
	n := len(arr.Shape)
	p := NewPoly(n)
	for f, c := range arr.Elements {
		if c == 0 {
			continue
		}
		idx := arr.IndexNd(f)
		e := make([]byte, n)
		for i, d := range idx {
			e[i] = byte(d)
		}
		p.set(string(e), p.terms[string(e)]+complex(c, 0))
	}
	return p
}

// EvalTensor evaluates the polynomial described by a coefficient tensor at
// the given point.
func EvalTensor(arr *sparse.DenseArray, x []complex128) complex128 {
	if len(x) != len(arr.Shape) {
		panic("projective: evaluation point has wrong length")
	}
	// Power tables per axis avoid recomputing x_i^d for every element.
	pows := make([][]complex128, len(x))
	for i, xi := range x {
		pows[i] = make([]complex128, arr.Shape[i])
		v := complex(1, 0)
		for d := range pows[i] {
			pows[i][d] = v
			v *= xi
		}
	}
	var s complex128
	for f, c := range arr.Elements {
		if c == 0 {
			continue
		}
		t := complex(c, 0)
		for i, d := range arr.IndexNd(f) {
			t *= pows[i][d]
		}
		s += t
	}
	return s
}

// DeriveTensor returns the coefficient tensor of the partial derivative
// along the given axis. The shape is preserved; the top-degree slice of the
// result is zero.
func DeriveTensor(arr *sparse.DenseArray, axis int) *sparse.DenseArray {
	out := sparse.ZerosDense(arr.Shape...)
	for f, c := range arr.Elements {
		if c == 0 {
			continue
		}
		idx := arr.IndexNd(f)
		d := idx[axis]
		if d == 0 {
			continue
		}
		idx[axis] = d - 1
		out.AddVal(c*float64(d), idx...)
	}
	return out
}
