package projective

import (
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Conic is a quadric of the projective plane, represented by a symmetric
// 3×3 matrix.
type Conic struct {
	Quadric
}

// AbsoluteConic is the conic defined by the identity matrix. Its points are
// exactly the complex points common to all circles.
var AbsoluteConic = Conic{Quadric: Quadric{m: mat.NewCDense(3, 3, []complex128{1, 0, 0, 0, 1, 0, 0, 0, 1})}}

// NewConic constructs a conic from the rows of its real symmetric 3×3
// matrix.
func NewConic(rows [][]float64) (Conic, error) {
	if len(rows) != 3 {
		return Conic{}, ErrInvalidShape
	}
	q, err := NewQuadric(rows)
	if err != nil {
		return Conic{}, err
	}
	return Conic{Quadric: q}, nil
}

// ConicFromMatrix constructs a conic from a symmetric complex 3×3 matrix.
func ConicFromMatrix(m *mat.CDense) (Conic, error) {
	if r, c := m.Dims(); r != 3 || c != 3 {
		return Conic{}, ErrInvalidShape
	}
	q, err := QuadricFromMatrix(m)
	if err != nil {
		return Conic{}, err
	}
	return Conic{Quadric: q}, nil
}

// ConicFromPoints constructs the conic through five points of the plane.
// The matrix combines the two degenerate conics spanned by opposite pairs
// of lines through the points, weighted by determinants so that the fifth
// point lies on the result.
func ConicFromPoints(a, b, c, d, e Point) (Conic, error) {
	for _, p := range []Point{a, b, c, d, e} {
		if len(p.c) != 3 {
			return Conic{}, ErrInvalidShape
		}
	}
	av, bv, cv, dv, ev := a.Normalized(), b.Normalized(), c.Normalized(), d.Normalized(), e.Normalized()
	ace := det3(av, cv, ev)
	bde := det3(bv, dv, ev)
	ade := det3(av, dv, ev)
	bce := det3(bv, cv, ev)
	m1 := cScale(ace*bde, cOuter(cross3(av, dv), cross3(bv, cv)))
	m2 := cScale(ade*bce, cOuter(cross3(av, cv), cross3(bv, dv)))
	m := cAdd(m1, cScale(-1, m2))
	m = realifyMat(cAdd(m, cTranspose(m)), 1e-10)
	return Conic{Quadric: Quadric{m: m}}, nil
}

// ConicFromLines constructs the degenerate conic consisting of the two
// given lines.
func ConicFromLines(g, h Line) Conic {
	m := cOuter(g.c, h.c)
	return Conic{Quadric: Quadric{m: cAdd(m, cTranspose(m))}}
}

// ConicFromTangent constructs the conic through four points that touches
// the given line. It fails with ErrInvalidConfiguration if any of the four
// points lies on the tangent. The diagonal intersections of the
// quadrilateral with the tangent determine two candidate contact points;
// the candidate producing an all-real conic wins.
func ConicFromTangent(tangent Line, a, b, c, d Point) (Conic, error) {
	for _, p := range []Point{a, b, c, d} {
		if tangent.Contains(p, 0) {
			return Conic{}, ErrInvalidConfiguration
		}
	}
	a1 := normalizedVec(LineThrough(a, c).Meet(tangent).c)
	a2 := normalizedVec(LineThrough(b, d).Meet(tangent).c)
	b1 := normalizedVec(LineThrough(a, b).Meet(tangent).c)
	b2 := normalizedVec(LineThrough(c, d).Meet(tangent).c)

	o := tangent.GeneralPoint().c

	a2b1 := det3(o, a2, b1)
	a2b2 := det3(o, a2, b2)
	a1b1 := det3(o, a1, b1)
	a1b2 := det3(o, a1, b2)

	c1 := cmplx.Sqrt(a2b1 * a2b2)
	c2 := cmplx.Sqrt(a1b1 * a1b2)

	x := Point{c: vecAdd(vecScale(c1, a1), vecScale(c2, a2))}
	y := Point{c: vecSub(vecScale(c1, a1), vecScale(c2, a2))}

	conic, err := ConicFromPoints(a, b, c, d, x)
	if err != nil {
		return Conic{}, err
	}
	if cIsReal(conic.m, 1e-10) {
		return conic, nil
	}
	return ConicFromPoints(a, b, c, d, y)
}

// ConicFromFoci constructs the conic with the given foci that passes
// through the boundary point. The tangent lines from the foci to the
// circular points at infinity determine the dual conic; its inverse is the
// conic of points.
func ConicFromFoci(f1, f2, bound Point) (Conic, error) {
	t1 := LineThrough(f1, I)
	t2 := LineThrough(f1, J)
	t3 := LineThrough(f2, I)
	t4 := LineThrough(f2, J)
	c, err := ConicFromTangent(LineFromHomogeneous(bound.c), t1.AsPoint(), t2.AsPoint(), t3.AsPoint(), t4.AsPoint())
	if err != nil {
		return Conic{}, err
	}
	inv, err := cInv(c.m)
	if err != nil {
		return Conic{}, err
	}
	return Conic{Quadric: Quadric{m: realifyMat(inv, 1e-10)}}, nil
}

// ConicFromCrossRatio constructs the conic of points that see the four
// given points under the cross-ratio cr. The defining identity
// |pac||pbd| - cr |pad||pbc| = 0 is expanded symbolically in the unknown
// point p and its quadratic coefficients are matched into the symmetric
// matrix.
func ConicFromCrossRatio(cr complex128, a, b, c, d Point) (Conic, error) {
	for _, p := range []Point{a, b, c, d} {
		if len(p.c) != 3 {
			return Conic{}, ErrInvalidShape
		}
	}
	ac := detRowPoly(a.c, c.c)
	bd := detRowPoly(b.c, d.c)
	ad := detRowPoly(a.c, d.c)
	bc := detRowPoly(b.c, c.c)

	poly := ac.Mul(bd).Sub(ad.Mul(bc).Scale(cr))

	m := mat.NewCDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			e := make([]int, 3)
			e[i]++
			e[j]++
			m.Set(i, j, poly.Coeff(e...))
		}
	}
	m = realifyMat(cAdd(m, cTranspose(m)), 1e-10)
	return Conic{Quadric: Quadric{m: m}}, nil
}

// detRowPoly returns det(p, a, b) as a linear polynomial in the coordinates
// of the unknown plane point p.
func detRowPoly(a, b []complex128) Poly {
	cof := cross3(a, b)
	p := NewPoly(3)
	for i, c := range cof {
		p = p.Add(PolyVar(3, i).Scale(c))
	}
	return p
}

// Components returns the two lines a degenerate conic decomposes into. For
// a dual conic the coefficient vectors are point coordinates.
func (c Conic) Components() ([2]Line, error) {
	if !c.IsDegenerate() {
		return [2]Line{}, ErrNotDegenerate
	}
	u, v := c.decompose()
	return [2]Line{{c: u}, {c: v}}, nil
}

// Polar returns the polar line of a point with respect to the conic. For a
// point on the conic the polar is the tangent there.
func (c Conic) Polar(pt Point) Line {
	return Line{c: cMulVec(c.m, pt.c)}
}

// Tangent returns the tangent line at a point of the conic, or the two
// tangent lines through an external point. The two lines coincide when the
// point lies on the conic.
func (c Conic) Tangent(at Point) ([]Line, error) {
	if c.Contains(at, 0) {
		return []Line{c.Polar(at)}, nil
	}
	pts, err := c.IntersectLine(c.Polar(at))
	if err != nil {
		return nil, err
	}
	if len(pts) == 1 {
		return []Line{at.Join(pts[0])}, nil
	}
	return []Line{at.Join(pts[0]), at.Join(pts[1])}, nil
}

// IsTangent reports whether a line is tangent to the conic.
func (c Conic) IsTangent(l Line) bool {
	d, err := c.Dual()
	if err != nil {
		return false
	}
	return d.containsVec(l.c, 0)
}

// Dual returns the dual conic.
func (c Conic) Dual() (Conic, error) {
	q, err := c.Quadric.Dual()
	if err != nil {
		return Conic{}, err
	}
	return Conic{Quadric: q}, nil
}

// Intersect returns the intersection of the conic with a line or another
// conic.
func (c Conic) Intersect(other Intersectable) ([]Point, error) {
	switch o := other.(type) {
	case Line:
		return c.IntersectLine(o)
	case Conic:
		return c.intersectQuadric(o.Quadric)
	case Quadric:
		return c.intersectQuadric(o)
	default:
		return nil, ErrNotSupported
	}
}

// IntersectLine returns the points where a line meets the conic. A
// tangential intersection yields a single point.
func (c Conic) IntersectLine(l Line) ([]Point, error) {
	var p1, p2 []complex128
	if c.IsDegenerate() {
		if c.dual {
			// The components of a degenerate dual conic are points; there
			// is no join of a point and a line in the plane.
			return nil, ErrNotSupported
		}
		u, v := c.decompose()
		p1 = cross3(u, l.c)
		p2 = cross3(v, l.c)
	} else {
		m := EpsilonContract(3, l.c)
		b := cSandwich(m, c.m)
		p1, p2 = quadric(b, !c.dual).decompose()
	}
	return collapsePair(p1, p2), nil
}

// Foci returns the foci of the conic, the real meeting points of the
// tangents drawn from the two circular points at infinity. Circles, which
// contain the circular points, have a single focus.
func (c Conic) Foci() ([]Point, error) {
	ti, err := c.Tangent(I)
	if err != nil {
		return nil, err
	}
	tj, err := c.Tangent(J)
	if err != nil {
		return nil, err
	}
	if len(ti) == 1 && len(tj) == 1 {
		return []Point{ti[0].Meet(tj[0])}, nil
	}
	if len(ti) == 1 {
		ti = []Line{ti[0], ti[0]}
	}
	if len(tj) == 1 {
		tj = []Line{tj[0], tj[0]}
	}
	candidates := []Point{
		ti[0].Meet(tj[0]),
		ti[1].Meet(tj[1]),
		ti[0].Meet(tj[1]),
		ti[1].Meet(tj[0]),
	}
	var foci []Point
	for _, p := range candidates {
		if p.IsReal() {
			foci = append(foci, Point{c: realifyVec(normalizedVec(p.c), defaultTol)})
		}
	}
	return dedupPoints(foci), nil
}
