package projective

import (
	"fmt"
	"math/cmplx"
	"sort"
	"strings"
)

// coeffEps is the magnitude below which polynomial coefficients are
// considered numerically zero and pruned.
const coeffEps = 1e-12

// Poly is a sparse multivariate polynomial with complex coefficients. It is
// the symbolic representation of the package: polynomial-system solving,
// pencil discriminants, and the cross-ratio construction all operate on
// Poly values, while containment and decomposition work on numeric
// matrices. Values are immutable; all operations return new polynomials.
//
// Terms are keyed by their exponent tuples. The zero polynomial has no
// terms.
type Poly struct {
	n     int
	terms map[string]complex128
}

// NewPoly returns the zero polynomial in the given number of variables.
func NewPoly(nvars int) Poly {
	return Poly{n: nvars, terms: map[string]complex128{}}
}

// PolyConst returns a constant polynomial.
func PolyConst(nvars int, c complex128) Poly {
	p := NewPoly(nvars)
	if cmplx.Abs(c) > coeffEps {
		p.terms[string(make([]byte, nvars))] = c
	}
	return p
}

// PolyVar returns the polynomial consisting of the single variable x_i.
func PolyVar(nvars, i int) Poly {
	p := NewPoly(nvars)
	e := make([]byte, nvars)
	e[i] = 1
	p.terms[string(e)] = 1
	return p
}

// NumVars returns the number of variables of the polynomial.
func (p Poly) NumVars() int { return p.n }

// IsZero reports whether the polynomial has no terms.
func (p Poly) IsZero() bool { return len(p.terms) == 0 }

func (p Poly) clone() Poly {
	q := NewPoly(p.n)
	for k, v := range p.terms {
		q.terms[k] = v
	}
	return q
}

func (p Poly) set(key string, c complex128) {
	if cmplx.Abs(c) <= coeffEps {
		delete(p.terms, key)
	} else {
		p.terms[key] = c
	}
}

// Add returns p + q.
func (p Poly) Add(q Poly) Poly {
	if p.n != q.n {
		panic("projective: polynomials over different variables")
	}
	r := p.clone()
	for k, v := range q.terms {
		r.set(k, r.terms[k]+v)
	}
	return r
}

// Sub returns p - q.
func (p Poly) Sub(q Poly) Poly {
	return p.Add(q.Scale(-1))
}

// Scale returns c * p.
func (p Poly) Scale(c complex128) Poly {
	r := NewPoly(p.n)
	for k, v := range p.terms {
		r.set(k, c*v)
	}
	return r
}

// Mul returns p * q.
func (p Poly) Mul(q Poly) Poly {
	if p.n != q.n {
		panic("projective: polynomials over different variables")
	}
	r := NewPoly(p.n)
	for ka, va := range p.terms {
		for kb, vb := range q.terms {
			e := make([]byte, p.n)
			for i := 0; i < p.n; i++ {
				e[i] = ka[i] + kb[i]
			}
			r.set(string(e), r.terms[string(e)]+va*vb)
		}
	}
	return r
}

// Deriv returns the partial derivative with respect to x_v.
func (p Poly) Deriv(v int) Poly {
	r := NewPoly(p.n)
	for k, c := range p.terms {
		d := k[v]
		if d == 0 {
			continue
		}
		e := []byte(k)
		e[v] = d - 1
		r.set(string(e), r.terms[string(e)]+c*complex(float64(d), 0))
	}
	return r
}

// Subst returns the polynomial with x_v replaced by the constant c. The
// result keeps the same variable set, with x_v no longer occurring.
func (p Poly) Subst(v int, c complex128) Poly {
	r := NewPoly(p.n)
	for k, coeff := range p.terms {
		d := int(k[v])
		e := []byte(k)
		e[v] = 0
		t := coeff
		for i := 0; i < d; i++ {
			t *= c
		}
		r.set(string(e), r.terms[string(e)]+t)
	}
	return r
}

// SubstPoly returns the polynomial with x_v replaced by the polynomial q.
func (p Poly) SubstPoly(v int, q Poly) Poly {
	if p.n != q.n {
		panic("projective: polynomials over different variables")
	}
	// Collect p by powers of x_v and evaluate with Horner's rule.
	coeffs := p.CollectIn(v)
	r := NewPoly(p.n)
	for i := len(coeffs) - 1; i >= 0; i-- {
		r = r.Mul(q).Add(coeffs[i])
	}
	return r
}

// CollectIn returns the coefficients of p viewed as a univariate polynomial
// in x_v, in ascending order of the power of x_v. The coefficients are
// polynomials in the remaining variables.
func (p Poly) CollectIn(v int) []Poly {
	d := p.DegreeIn(v)
	coeffs := make([]Poly, d+1)
	for i := range coeffs {
		coeffs[i] = NewPoly(p.n)
	}
	for k, c := range p.terms {
		e := []byte(k)
		pow := int(e[v])
		e[v] = 0
		coeffs[pow].set(string(e), coeffs[pow].terms[string(e)]+c)
	}
	return coeffs
}

// Eval evaluates the polynomial at the given coordinates.
func (p Poly) Eval(x []complex128) complex128 {
	if len(x) != p.n {
		panic("projective: evaluation point has wrong length")
	}
	var s complex128
	for k, c := range p.terms {
		t := c
		for i := 0; i < p.n; i++ {
			for d := 0; d < int(k[i]); d++ {
				t *= x[i]
			}
		}
		s += t
	}
	return s
}

// TotalDegree returns the largest total degree of any term, or -1 for the
// zero polynomial.
func (p Poly) TotalDegree() int {
	deg := -1
	for k := range p.terms {
		d := 0
		for i := 0; i < p.n; i++ {
			d += int(k[i])
		}
		if d > deg {
			deg = d
		}
	}
	return deg
}

// DegreeIn returns the largest power of x_v in any term, or 0 if x_v does
// not occur.
func (p Poly) DegreeIn(v int) int {
	deg := 0
	for k := range p.terms {
		if int(k[v]) > deg {
			deg = int(k[v])
		}
	}
	return deg
}

// Coeff returns the coefficient of the monomial with the given exponents.
func (p Poly) Coeff(exps ...int) complex128 {
	if len(exps) != p.n {
		panic("projective: wrong number of exponents")
	}
	e := make([]byte, p.n)
	for i, d := range exps {
		e[i] = byte(d)
	}
	return p.terms[string(e)]
}

// IsHomogeneous reports whether every term has the same total degree.
func (p Poly) IsHomogeneous() bool {
	deg := -1
	for k := range p.terms {
		d := 0
		for i := 0; i < p.n; i++ {
			d += int(k[i])
		}
		if deg == -1 {
			deg = d
		} else if d != deg {
			return false
		}
	}
	return true
}

// Homogenize raises every term to the total degree of the polynomial by
// multiplying with powers of x_v.
func (p Poly) Homogenize(v int) Poly {
	deg := p.TotalDegree()
	r := NewPoly(p.n)
	for k, c := range p.terms {
		d := 0
		for i := 0; i < p.n; i++ {
			d += int(k[i])
		}
		e := []byte(k)
		e[v] += byte(deg - d)
		r.set(string(e), r.terms[string(e)]+c)
	}
	return r
}

// Univariate returns the coefficients of a polynomial in which only x_v
// occurs, in ascending order of degree. It returns ErrNotSupported if any
// other variable occurs.
func (p Poly) Univariate(v int) ([]complex128, error) {
	coeffs := make([]complex128, p.DegreeIn(v)+1)
	for k, c := range p.terms {
		for i := 0; i < p.n; i++ {
			if i != v && k[i] != 0 {
				return nil, ErrNotSupported
			}
		}
		coeffs[k[v]] += c
	}
	return coeffs, nil
}

// String renders the polynomial with terms in a deterministic order.
func (p Poly) String() string {
	if len(p.terms) == 0 {
		return "0"
	}
	keys := make([]string, 0, len(p.terms))
	for k := range p.terms {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(" + ")
		}
		c := p.terms[k]
		if imag(c) == 0 {
			fmt.Fprintf(&sb, "%g", real(c))
		} else {
			fmt.Fprintf(&sb, "(%g)", c)
		}
		for v := 0; v < p.n; v++ {
			if k[v] == 0 {
				continue
			}
			fmt.Fprintf(&sb, "*x%d", v)
			if k[v] > 1 {
				fmt.Fprintf(&sb, "^%d", k[v])
			}
		}
	}
	return sb.String()
}
