package projective

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// IsMultiple reports whether two vectors are scalar multiples of each
// other. It compares the scalar product against the product of the norms;
// the border case of the Cauchy-Schwarz inequality guarantees equality
// exactly when one vector is a multiple of the other. If tol <= 0 a default
// tolerance is used.
func IsMultiple(a, b []complex128, tol float64) bool {
	if tol <= 0 {
		tol = defaultTol
	}
	if len(a) != len(b) {
		return false
	}
	var ab, aa, bb complex128
	for i := range a {
		ab += a[i] * cmplx.Conj(b[i])
		aa += a[i] * cmplx.Conj(a[i])
		bb += b[i] * cmplx.Conj(b[i])
	}
	return cmplx.Abs(ab*cmplx.Conj(ab)-aa*bb) < tol*(1+cmplx.Abs(aa*bb))
}

// HatMatrix builds a skew-symmetric matrix from the given scalars. For
// three scalars a, b, c it is the classical cross-product matrix
//
//	⎛ 0   c  -b ⎞
//	⎜ -c  0   a ⎟
//	⎝ b  -a   0 ⎠
//
// and in general the scalars fill the upper triangle in reversed
// row-major order, matching the order in which principal minors are
// enumerated during quadric decomposition.
func HatMatrix(xs []complex128) *mat.CDense {
	n := (1 + int(math.Sqrt(float64(1+8*len(xs))))) / 2
	if n*(n-1)/2 != len(xs) {
		panic("projective: hat matrix needs n*(n-1)/2 scalars")
	}
	m := mat.NewCDense(n, n, nil)
	if n == 3 {
		a, b, c := xs[0], xs[1], xs[2]
		m.Set(0, 1, c)
		m.Set(0, 2, -b)
		m.Set(1, 0, -c)
		m.Set(1, 2, a)
		m.Set(2, 0, b)
		m.Set(2, 1, -a)
		return m
	}
	k := len(xs) - 1
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			m.Set(i, j, xs[k])
			m.Set(j, i, -xs[k])
			k--
		}
	}
	return m
}

// NullSpace returns an orthonormal basis for the null space of a real
// matrix, as column vectors. Singular values below max(s) times machine
// epsilon scaled by the larger matrix dimension are treated as zero.
func NullSpace(a *mat.Dense) *mat.Dense {
	r, c := a.Dims()
	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDFull); !ok {
		panic("projective: SVD failed to converge")
	}
	s := svd.Values(nil)
	cond := 0x1p-52 * float64(max(r, c))
	tol := floats.Max(s) * cond
	rank := 0
	for _, v := range s {
		if v > tol {
			rank++
		}
	}
	var v mat.Dense
	svd.VTo(&v)
	q := mat.NewDense(c, c-rank, nil)
	for i := 0; i < c; i++ {
		for j := rank; j < c; j++ {
			q.Set(i, j-rank, v.At(i, j))
		}
	}
	return q
}

// Complex matrix helpers. gonum's complex matrix type has no
// decompositions, determinant, or inverse, so the small-matrix operations
// the quadric algorithms need are implemented here on top of *mat.CDense.

func cClone(a *mat.CDense) *mat.CDense {
	r, c := a.Dims()
	m := mat.NewCDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.Set(i, j, a.At(i, j))
		}
	}
	return m
}

func cFromRows(rows [][]float64) *mat.CDense {
	n := len(rows)
	m := mat.NewCDense(n, len(rows[0]), nil)
	for i, row := range rows {
		for j, v := range row {
			m.Set(i, j, complex(v, 0))
		}
	}
	return m
}

func cMul(a, b *mat.CDense) *mat.CDense {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ac != br {
		panic("projective: dimension mismatch in matrix product")
	}
	m := mat.NewCDense(ar, bc, nil)
	for i := 0; i < ar; i++ {
		for j := 0; j < bc; j++ {
			var s complex128
			for k := 0; k < ac; k++ {
				s += a.At(i, k) * b.At(k, j)
			}
			m.Set(i, j, s)
		}
	}
	return m
}

func cAdd(a, b *mat.CDense) *mat.CDense {
	r, c := a.Dims()
	m := mat.NewCDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.Set(i, j, a.At(i, j)+b.At(i, j))
		}
	}
	return m
}

func cScale(k complex128, a *mat.CDense) *mat.CDense {
	r, c := a.Dims()
	m := mat.NewCDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.Set(i, j, k*a.At(i, j))
		}
	}
	return m
}

func cTranspose(a *mat.CDense) *mat.CDense {
	r, c := a.Dims()
	m := mat.NewCDense(c, r, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.Set(j, i, a.At(i, j))
		}
	}
	return m
}

func cOuter(u, v []complex128) *mat.CDense {
	m := mat.NewCDense(len(u), len(v), nil)
	for i, a := range u {
		for j, b := range v {
			m.Set(i, j, a*b)
		}
	}
	return m
}

// cSandwich returns mᵀ a m.
func cSandwich(m, a *mat.CDense) *mat.CDense {
	return cMul(cTranspose(m), cMul(a, m))
}

func cMulVec(a *mat.CDense, x []complex128) []complex128 {
	r, c := a.Dims()
	if c != len(x) {
		panic("projective: dimension mismatch in matrix-vector product")
	}
	y := make([]complex128, r)
	for i := 0; i < r; i++ {
		var s complex128
		for j := 0; j < c; j++ {
			s += a.At(i, j) * x[j]
		}
		y[i] = s
	}
	return y
}

// cDet computes the determinant of a square complex matrix by LU
// elimination with partial pivoting on the modulus.
func cDet(a *mat.CDense) complex128 {
	n, c := a.Dims()
	if n != c {
		panic("projective: determinant of non-square matrix")
	}
	m := cClone(a)
	det := complex(1, 0)
	for k := 0; k < n; k++ {
		piv := k
		for i := k + 1; i < n; i++ {
			if cmplx.Abs(m.At(i, k)) > cmplx.Abs(m.At(piv, k)) {
				piv = i
			}
		}
		if cmplx.Abs(m.At(piv, k)) == 0 {
			return 0
		}
		if piv != k {
			for j := k; j < n; j++ {
				t := m.At(k, j)
				m.Set(k, j, m.At(piv, j))
				m.Set(piv, j, t)
			}
			det = -det
		}
		det *= m.At(k, k)
		for i := k + 1; i < n; i++ {
			f := m.At(i, k) / m.At(k, k)
			for j := k; j < n; j++ {
				m.Set(i, j, m.At(i, j)-f*m.At(k, j))
			}
		}
	}
	return det
}

// cInv computes the inverse of a square complex matrix by Gauss-Jordan
// elimination with partial pivoting.
func cInv(a *mat.CDense) (*mat.CDense, error) {
	n, c := a.Dims()
	if n != c {
		panic("projective: inverse of non-square matrix")
	}
	m := cClone(a)
	inv := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		inv.Set(i, i, 1)
	}
	for k := 0; k < n; k++ {
		piv := k
		for i := k + 1; i < n; i++ {
			if cmplx.Abs(m.At(i, k)) > cmplx.Abs(m.At(piv, k)) {
				piv = i
			}
		}
		if cmplx.Abs(m.At(piv, k)) < 1e-14 {
			return nil, ErrDegenerate
		}
		if piv != k {
			for j := 0; j < n; j++ {
				t := m.At(k, j)
				m.Set(k, j, m.At(piv, j))
				m.Set(piv, j, t)

				t = inv.At(k, j)
				inv.Set(k, j, inv.At(piv, j))
				inv.Set(piv, j, t)
			}
		}
		p := m.At(k, k)
		for j := 0; j < n; j++ {
			m.Set(k, j, m.At(k, j)/p)
			inv.Set(k, j, inv.At(k, j)/p)
		}
		for i := 0; i < n; i++ {
			if i == k {
				continue
			}
			f := m.At(i, k)
			if f == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				m.Set(i, j, m.At(i, j)-f*m.At(k, j))
				inv.Set(i, j, inv.At(i, j)-f*inv.At(k, j))
			}
		}
	}
	return inv, nil
}

// realifyMat zeroes imaginary parts that are negligible across the whole
// matrix, the matrix analogue of realifyVec.
func realifyMat(a *mat.CDense, tol float64) *mat.CDense {
	r, c := a.Dims()
	maxImag := 0.0
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			maxImag = math.Max(maxImag, math.Abs(imag(a.At(i, j))))
		}
	}
	if maxImag >= tol {
		return cClone(a)
	}
	m := mat.NewCDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.Set(i, j, complex(real(a.At(i, j)), 0))
		}
	}
	return m
}

func cIsReal(a *mat.CDense, tol float64) bool {
	r, c := a.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if !scalar.EqualWithinAbs(imag(a.At(i, j)), 0, tol) {
				return false
			}
		}
	}
	return true
}

// Vector helpers over complex coordinate vectors.

func dotVec(a, b []complex128) complex128 {
	var s complex128
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

func cross3(a, b []complex128) []complex128 {
	return []complex128{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func det3(a, b, c []complex128) complex128 {
	return dotVec(a, cross3(b, c))
}

func vecAdd(a, b []complex128) []complex128 {
	c := make([]complex128, len(a))
	for i := range a {
		c[i] = a[i] + b[i]
	}
	return c
}

func vecSub(a, b []complex128) []complex128 {
	c := make([]complex128, len(a))
	for i := range a {
		c[i] = a[i] - b[i]
	}
	return c
}

func vecScale(k complex128, a []complex128) []complex128 {
	c := make([]complex128, len(a))
	for i := range a {
		c[i] = k * a[i]
	}
	return c
}

func vecIsZero(a []complex128, tol float64) bool {
	for _, v := range a {
		if cmplx.Abs(v) >= tol {
			return false
		}
	}
	return true
}

func vecIsReal(a []complex128, tol float64) bool {
	for _, v := range a {
		if !scalar.EqualWithinAbs(imag(v), 0, tol) {
			return false
		}
	}
	return true
}

// realifyVec zeroes imaginary parts when they are negligible across the
// whole vector.
func realifyVec(a []complex128, tol float64) []complex128 {
	for _, v := range a {
		if math.Abs(imag(v)) >= tol {
			return a
		}
	}
	c := make([]complex128, len(a))
	for i, v := range a {
		c[i] = complex(real(v), 0)
	}
	return c
}

// normalizedVec scales a homogeneous vector so its last coordinate is one.
// Vectors with a vanishing last coordinate are returned as is.
func normalizedVec(c []complex128) []complex128 {
	out := make([]complex128, len(c))
	last := c[len(c)-1]
	if cmplx.Abs(last) < defaultTol {
		copy(out, c)
		return out
	}
	for i, v := range c {
		out[i] = v / last
	}
	return out
}
