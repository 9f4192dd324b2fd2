package projective

import (
	"math/cmplx"

	"github.com/ctessum/sparse"
)

// Intersectable enumerates the operand kinds accepted by the intersection
// queries of this package. The set is closed: [Line], [SpanLine],
// [AlgebraicCurve], [Quadric], and [Conic] implement it. Operations that do
// not handle a particular kind return [ErrNotSupported].
type Intersectable interface {
	intersectable()
}

func (Line) intersectable()           {}
func (SpanLine) intersectable()       {}
func (AlgebraicCurve) intersectable() {}
func (Quadric) intersectable()        {}
func (Conic) intersectable()          {}

// AlgebraicCurve is a plane algebraic curve, the zero set of a homogeneous
// polynomial in three variables. The polynomial is stored as its real
// coefficient tensor.
type AlgebraicCurve struct {
	arr *sparse.DenseArray
	deg int
}

// CurveFromTensor constructs a curve from a coefficient tensor. The tensor
// must have three axes, one per homogeneous coordinate.
func CurveFromTensor(arr *sparse.DenseArray) (AlgebraicCurve, error) {
	if len(arr.Shape) != 3 {
		return AlgebraicCurve{}, ErrInvalidShape
	}
	return AlgebraicCurve{arr: arr.Copy(), deg: PolyFromTensor(arr).TotalDegree()}, nil
}

// CurveFromPoly constructs a curve from a polynomial in three variables.
// The polynomial is homogenized with respect to the last variable before it
// is stored.
func CurveFromPoly(p Poly) (AlgebraicCurve, error) {
	if p.NumVars() != 3 {
		return AlgebraicCurve{}, ErrInvalidShape
	}
	arr, err := TensorFromPoly(p.Homogenize(2))
	if err != nil {
		return AlgebraicCurve{}, err
	}
	return AlgebraicCurve{arr: arr, deg: p.TotalDegree()}, nil
}

// Polynomial returns the defining polynomial of the curve.
func (c AlgebraicCurve) Polynomial() Poly {
	return PolyFromTensor(c.arr)
}

// Degree returns the homogeneous order of the defining polynomial.
func (c AlgebraicCurve) Degree() int { return c.deg }

// Tangent returns the tangent line of the curve at a point, the line whose
// coefficients are the partial derivatives of the defining polynomial at
// that point.
func (c AlgebraicCurve) Tangent(at Point) Line {
	dx := make([]complex128, 3)
	for i := range dx {
		dx[i] = EvalTensor(DeriveTensor(c.arr, i), at.c)
	}
	return Line{c: dx}
}

// Contains reports whether a point lies on the curve. If tol <= 0 a
// default tolerance is used.
func (c AlgebraicCurve) Contains(pt Point, tol float64) bool {
	if tol <= 0 {
		tol = defaultTol
	}
	return cmplx.Abs(EvalTensor(c.arr, pt.c)) < tol
}

// Intersect returns the points of intersection with a line or another
// curve. The polynomial system is solved independently on the two affine
// charts obtained by fixing the last homogeneous coordinate to zero and to
// one, which recovers points at infinity as well as finite points. A chart
// whose system the solver cannot handle contributes no solutions; spurious
// all-zero solutions are discarded and near-real points are realified.
func (c AlgebraicCurve) Intersect(other Intersectable) ([]Point, error) {
	polys := []Poly{c.Polynomial()}
	switch o := other.(type) {
	case Line:
		polys = append(polys, o.Polynomial())
	case AlgebraicCurve:
		polys = append(polys, o.Polynomial())
	default:
		return nil, ErrNotSupported
	}

	var sols []Point
	for _, z := range []complex128{0, 1} {
		p0 := polys[0].Subst(2, z)
		p1 := polys[1].Subst(2, z)
		chart, err := solveSystem2(p0, p1, 0, 1)
		if err != nil {
			continue
		}
		for _, s := range chart {
			v := []complex128{s[0], s[1], z}
			if vecIsZero(v, 1e-9) {
				continue
			}
			sols = append(sols, Point{c: realifyVec(v, 1e-9)})
		}
	}
	return dedupPoints(sols), nil
}

// IsTangent reports whether a line is tangent to the curve. The test
// compares the number of distinct intersection points found against the
// degree of the curve: by Bezout's theorem a transversal line meets the
// curve in degree-many points, so a deficit indicates a contact of higher
// multiplicity. The count can also drop when deduplication merges close
// transversal intersections, making this an approximation rather than a
// proof of tangency.
func (c AlgebraicCurve) IsTangent(l Line) bool {
	pts, err := c.Intersect(l)
	if err != nil {
		return false
	}
	return len(pts) < c.deg
}
