package projective

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Roots returns the complex roots of a univariate polynomial given by its
// coefficients in ascending order. Leading coefficients that are negligible
// relative to the largest coefficient are trimmed first. Real-coefficient
// polynomials are solved through the eigenvalues of the companion matrix;
// complex coefficients fall back to Durand-Kerner iteration.
func Roots(coeffs []complex128) []complex128 {
	maxAbs := 0.0
	for _, c := range coeffs {
		maxAbs = math.Max(maxAbs, cmplx.Abs(c))
	}
	if maxAbs == 0 {
		return nil
	}
	d := len(coeffs) - 1
	for d > 0 && cmplx.Abs(coeffs[d]) < 1e-12*maxAbs {
		d--
	}
	coeffs = coeffs[:d+1]
	if d < 1 {
		return nil
	}
	if d == 1 {
		return []complex128{-coeffs[0] / coeffs[1]}
	}

	isReal := true
	for _, c := range coeffs {
		if math.Abs(imag(c)) > 1e-12*maxAbs {
			isReal = false
			break
		}
	}
	if isReal {
		if r, ok := companionRoots(coeffs); ok {
			return r
		}
	}
	return durandKerner(coeffs)
}

// companionRoots computes roots as eigenvalues of the companion matrix of a
// real-coefficient polynomial.
func companionRoots(coeffs []complex128) ([]complex128, bool) {
	d := len(coeffs) - 1
	lead := real(coeffs[d])
	c := mat.NewDense(d, d, nil)
	for i := 0; i < d; i++ {
		c.Set(i, d-1, -real(coeffs[i])/lead)
		if i > 0 {
			c.Set(i, i-1, 1)
		}
	}
	var eig mat.Eigen
	if ok := eig.Factorize(c, mat.EigenNone); !ok {
		return nil, false
	}
	return eig.Values(nil), true
}

// durandKerner iterates the Weierstrass root-refinement simultaneously on
// all roots, starting from powers of a non-real seed.
func durandKerner(coeffs []complex128) []complex128 {
	d := len(coeffs) - 1
	lead := coeffs[d]
	monic := make([]complex128, d+1)
	for i, c := range coeffs {
		monic[i] = c / lead
	}
	eval := func(x complex128) complex128 {
		s := complex(0, 0)
		for i := d; i >= 0; i-- {
			s = s*x + monic[i]
		}
		return s
	}

	roots := make([]complex128, d)
	seed := complex(0.4, 0.9)
	z := complex(1, 0)
	for i := range roots {
		z *= seed
		roots[i] = z
	}
	for iter := 0; iter < 500; iter++ {
		maxStep := 0.0
		for i := range roots {
			den := complex(1, 0)
			for j := range roots {
				if j != i {
					den *= roots[i] - roots[j]
				}
			}
			if den == 0 {
				den = complex(1e-20, 0)
			}
			step := eval(roots[i]) / den
			roots[i] -= step
			maxStep = math.Max(maxStep, cmplx.Abs(step))
		}
		if maxStep < 1e-14 {
			break
		}
	}
	return roots
}

// polyDet computes the determinant of a matrix of polynomials by cofactor
// expansion along the first row. The matrices that arise here (pencil
// discriminants, Sylvester matrices of low-degree curves) are small enough
// for the factorial cost not to matter.
func polyDet(m [][]Poly) Poly {
	n := len(m)
	if n == 1 {
		return m[0][0]
	}
	nvars := m[0][0].NumVars()
	det := NewPoly(nvars)
	for j := 0; j < n; j++ {
		if m[0][j].IsZero() {
			continue
		}
		minor := make([][]Poly, n-1)
		for i := 1; i < n; i++ {
			row := make([]Poly, 0, n-1)
			for k := 0; k < n; k++ {
				if k != j {
					row = append(row, m[i][k])
				}
			}
			minor[i-1] = row
		}
		term := m[0][j].Mul(polyDet(minor))
		if j%2 == 1 {
			term = term.Scale(-1)
		}
		det = det.Add(term)
	}
	return det
}

// resultant eliminates the variable elim from two polynomials via the
// determinant of their Sylvester matrix, whose entries are polynomials in
// the remaining variables.
func resultant(p, q Poly, elim int) (Poly, error) {
	pc := p.CollectIn(elim)
	qc := q.CollectIn(elim)
	m, n := len(pc)-1, len(qc)-1
	if m < 1 || n < 1 {
		return Poly{}, ErrNotSupported
	}
	size := m + n
	nvars := p.NumVars()
	zero := NewPoly(nvars)
	syl := make([][]Poly, size)
	for i := range syl {
		syl[i] = make([]Poly, size)
		for j := range syl[i] {
			syl[i][j] = zero
		}
	}
	// Descending-coefficient convention for the Sylvester rows.
	for i := 0; i < n; i++ {
		for j := 0; j <= m; j++ {
			syl[i][i+j] = pc[m-j]
		}
	}
	for i := 0; i < m; i++ {
		for j := 0; j <= n; j++ {
			syl[n+i][i+j] = qc[n-j]
		}
	}
	return polyDet(syl), nil
}

// solveSystem2 solves a system of two polynomial equations in the two
// variables v0 and v1; any other variables must already have been
// substituted away. It returns the solutions as (x_v0, x_v1) pairs, or
// ErrNotSupported for system shapes the solver cannot handle, such as
// systems with a common component.
func solveSystem2(p, q Poly, v0, v1 int) ([][2]complex128, error) {
	if p.IsZero() || q.IsZero() {
		// Infinitely many solutions.
		return nil, ErrNotSupported
	}
	dp, dq := p.TotalDegree(), q.TotalDegree()
	if dp == 0 || dq == 0 {
		// A non-zero constant equation has no solutions.
		return nil, nil
	}
	if dq == 1 && dp != 1 {
		p, q = q, p
	}
	if p.TotalDegree() == 1 {
		return solveLinear(p, q, v0, v1)
	}

	// If either polynomial is already univariate, skip the elimination.
	if p.DegreeIn(v1) == 0 || q.DegreeIn(v1) == 0 {
		if p.DegreeIn(v1) != 0 {
			p, q = q, p
		}
		u, err := p.Univariate(v0)
		if err != nil {
			return nil, err
		}
		return backSubstitute(Roots(u), p, q, v0, v1)
	}
	if p.DegreeIn(v0) == 0 || q.DegreeIn(v0) == 0 {
		sols, err := solveSystem2(p, q, v1, v0)
		if err != nil {
			return nil, err
		}
		for i := range sols {
			sols[i][0], sols[i][1] = sols[i][1], sols[i][0]
		}
		return sols, nil
	}

	res, err := resultant(p, q, v1)
	if err != nil {
		return nil, err
	}
	if res.IsZero() {
		// The curves share a component.
		return nil, ErrNotSupported
	}
	u, err := res.Univariate(v0)
	if err != nil {
		return nil, err
	}
	return backSubstitute(Roots(u), p, q, v0, v1)
}

// solveLinear eliminates the variable with the larger coefficient of the
// linear equation p from q.
func solveLinear(p, q Poly, v0, v1 int) ([][2]complex128, error) {
	a := p.Coeff(expTuple(p.NumVars(), v0, 1)...)
	b := p.Coeff(expTuple(p.NumVars(), v1, 1)...)
	c := p.Coeff(make([]int, p.NumVars())...)
	if cmplx.Abs(a) == 0 && cmplx.Abs(b) == 0 {
		return nil, ErrNotSupported
	}
	nvars := p.NumVars()
	if cmplx.Abs(b) >= cmplx.Abs(a) {
		// x_v1 = -(a x_v0 + c) / b
		lin := PolyVar(nvars, v0).Scale(-a / b).Add(PolyConst(nvars, -c/b))
		r := q.SubstPoly(v1, lin)
		u, err := r.Univariate(v0)
		if err != nil {
			return nil, err
		}
		var sols [][2]complex128
		for _, x := range Roots(u) {
			sols = append(sols, [2]complex128{x, lin.Subst(v0, x).Eval(make([]complex128, nvars))})
		}
		if len(sols) == 0 && r.IsZero() {
			return nil, ErrNotSupported
		}
		return sols, nil
	}
	lin := PolyVar(nvars, v1).Scale(-b / a).Add(PolyConst(nvars, -c/a))
	r := q.SubstPoly(v0, lin)
	u, err := r.Univariate(v1)
	if err != nil {
		return nil, err
	}
	var sols [][2]complex128
	for _, y := range Roots(u) {
		sols = append(sols, [2]complex128{lin.Subst(v1, y).Eval(make([]complex128, nvars)), y})
	}
	if len(sols) == 0 && r.IsZero() {
		return nil, ErrNotSupported
	}
	return sols, nil
}

// backSubstitute completes partial solutions for x_v0 by solving for x_v1
// in p and keeping the pairs that also satisfy q.
func backSubstitute(xs []complex128, p, q Poly, v0, v1 int) ([][2]complex128, error) {
	var sols [][2]complex128
	for _, x := range xs {
		pu := p.Subst(v0, x)
		qu := q.Subst(v0, x)
		solveFor, check := pu, qu
		if solveFor.DegreeIn(v1) == 0 {
			solveFor, check = qu, pu
		}
		if solveFor.DegreeIn(v1) == 0 {
			// Both collapse to constants; x contributes a solution only if
			// both vanish, but then x_v1 is unconstrained.
			if cmplx.Abs(solveFor.Eval(make([]complex128, p.NumVars()))) < 1e-8 &&
				cmplx.Abs(check.Eval(make([]complex128, p.NumVars()))) < 1e-8 {
				return nil, ErrNotSupported
			}
			continue
		}
		u, err := solveFor.Univariate(v1)
		if err != nil {
			return nil, err
		}
		scale := polyScale(check)
		for _, y := range Roots(u) {
			if cmplx.Abs(check.Subst(v1, y).Eval(make([]complex128, p.NumVars()))) < 1e-6*(1+scale) {
				sols = append(sols, [2]complex128{x, y})
			}
		}
	}
	return sols, nil
}

// polyScale returns the largest coefficient magnitude, used to scale
// residual tolerances.
func polyScale(p Poly) float64 {
	s := 0.0
	for _, c := range p.terms {
		s = math.Max(s, cmplx.Abs(c))
	}
	return s
}

func expTuple(n, v, d int) []int {
	e := make([]int, n)
	e[v] = d
	return e
}
