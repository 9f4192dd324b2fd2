package projective

import (
	"math"
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Quadric is a quadric hypersurface in any dimension: the zero set of the
// quadratic form defined by a symmetric (n+1)×(n+1) matrix. A dual quadric
// consists of the hyperplanes tangent to a quadric rather than of its
// points; the same matrix representation applies with covectors in place of
// coordinate vectors.
type Quadric struct {
	m    *mat.CDense
	dual bool
}

// NewQuadric constructs a quadric from the rows of its real symmetric
// matrix.
func NewQuadric(rows [][]float64) (Quadric, error) {
	n := len(rows)
	for _, r := range rows {
		if len(r) != n {
			return Quadric{}, ErrInvalidShape
		}
	}
	return QuadricFromMatrix(cFromRows(rows))
}

// QuadricFromMatrix constructs a quadric from a symmetric complex matrix.
func QuadricFromMatrix(m *mat.CDense) (Quadric, error) {
	r, c := m.Dims()
	if r != c || r < 2 {
		return Quadric{}, ErrInvalidShape
	}
	for i := 0; i < r; i++ {
		for j := i + 1; j < r; j++ {
			if cmplx.Abs(m.At(i, j)-m.At(j, i)) > defaultTol {
				return Quadric{}, ErrInvalidShape
			}
		}
	}
	return Quadric{m: cClone(m)}, nil
}

// QuadricFromPlanes constructs the degenerate quadric consisting of the two
// given hyperplanes, the symmetrized outer product of their covectors.
func QuadricFromPlanes(e, f Plane) Quadric {
	m := cOuter(e.c, f.c)
	return Quadric{m: cAdd(m, cTranspose(m))}
}

func quadric(m *mat.CDense, dual bool) Quadric {
	return Quadric{m: m, dual: dual}
}

// size returns the matrix dimension n+1.
func (q Quadric) size() int {
	n, _ := q.m.Dims()
	return n
}

// Dim returns the dimension of the space the quadric lives in.
func (q Quadric) Dim() int { return q.size() - 1 }

// IsDual reports whether the quadric is a quadric of hyperplanes rather
// than of points.
func (q Quadric) IsDual() bool { return q.dual }

// Matrix returns a copy of the defining matrix.
func (q Quadric) Matrix() *mat.CDense { return cClone(q.m) }

// Polynomial returns the quadratic form of the quadric as a symbolic
// polynomial, one variable per homogeneous coordinate.
func (q Quadric) Polynomial() Poly {
	n := q.size()
	p := NewPoly(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			p = p.Add(PolyVar(n, i).Mul(PolyVar(n, j)).Scale(q.m.At(i, j)))
		}
	}
	return p
}

// Contains reports whether a point lies on the quadric, i.e. whether the
// quadratic form vanishes at it. If tol <= 0 a default tolerance is used.
func (q Quadric) Contains(pt Point, tol float64) bool {
	return q.containsVec(pt.c, tol)
}

func (q Quadric) containsVec(x []complex128, tol float64) bool {
	if tol <= 0 {
		tol = defaultTol
	}
	return cmplx.Abs(dotVec(x, cMulVec(q.m, x))) < tol
}

// Tangent returns the tangent hyperplane at a point of the quadric.
func (q Quadric) Tangent(at Point) Plane {
	return Plane{c: cMulVec(q.m, at.c)}
}

// IsTangent reports whether a hyperplane is tangent to the quadric, i.e.
// whether the dual quadric contains it.
func (q Quadric) IsTangent(e Plane) bool {
	d, err := q.Dual()
	if err != nil {
		return false
	}
	return d.containsVec(e.c, 0)
}

// IsDegenerate reports whether the matrix of the quadric is singular.
func (q Quadric) IsDegenerate() bool {
	return cmplx.Abs(cDet(q.m)) < defaultTol
}

// Dual returns the dual quadric, defined by the inverse matrix with the
// duality flag flipped. Taking the dual twice yields a quadric whose matrix
// is proportional to the original. Degenerate quadrics have no dual.
func (q Quadric) Dual() (Quadric, error) {
	inv, err := cInv(q.m)
	if err != nil {
		return Quadric{}, err
	}
	return quadric(inv, !q.dual), nil
}

// Components returns the two hyperplanes a degenerate quadric decomposes
// into. The symmetrized outer product of the two covectors reconstructs the
// matrix of the quadric up to scale. For a dual quadric the returned
// coefficient vectors are point coordinates; reinterpret them with
// [Plane.AsPoint].
func (q Quadric) Components() ([2]Plane, error) {
	if !q.IsDegenerate() {
		return [2]Plane{}, ErrNotDegenerate
	}
	u, v := q.decompose()
	return [2]Plane{{c: u}, {c: v}}, nil
}

// decompose splits a degenerate quadric into representative vectors of its
// two linear components. Following Richter-Gebert, Perspectives on
// Projective Geometry, section 11.1: the square roots of the negated 2×2
// principal minors assemble into a skew-symmetric matrix S such that M + S
// has rank one and factors as the outer product of the two component
// covectors, which are then read off the extremal row and column.
func (q Quadric) decompose() (u, v []complex128) {
	n := q.size()
	xs := make([]complex128, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			xs = append(xs, q.m.At(i, i)*q.m.At(j, j)-q.m.At(i, j)*q.m.At(j, i))
		}
	}
	// Reversed upper-triangular order, with the complex-safe square root of
	// each negated minor.
	rev := make([]complex128, len(xs))
	for i, m := range xs {
		rev[len(xs)-1-i] = cmplx.Sqrt(-m)
	}
	s := HatMatrix(rev)
	t := cAdd(q.m, s)

	bi, bj, best := 0, 0, -1.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if a := cmplx.Abs(t.At(i, j)); a > best {
				bi, bj, best = i, j, a
			}
		}
	}
	u = make([]complex128, n)
	v = make([]complex128, n)
	for k := 0; k < n; k++ {
		u[k] = t.At(bi, k)
		v[k] = t.At(k, bj)
	}
	return u, v
}

// Intersect returns the intersection of the quadric with the given
// operand. Lines of space are intersected directly; intersecting two
// quadrics is supported for conics, where the pencil reduction applies.
func (q Quadric) Intersect(other Intersectable) ([]Point, error) {
	switch o := other.(type) {
	case SpanLine:
		return q.IntersectLine(o)
	case Quadric:
		return q.intersectQuadric(o)
	case Conic:
		return q.intersectQuadric(o.Quadric)
	default:
		return nil, ErrNotSupported
	}
}

// IntersectLine returns the points where a line of space meets the
// quadric. A degenerate quadric is decomposed and the line is met with each
// component; otherwise the alternating tensor contracted against the line
// restricts the quadric to it, producing a degenerate dual quadric of rank
// at most two whose components are the intersection points. A tangential
// intersection yields a single point.
func (q Quadric) IntersectLine(l SpanLine) ([]Point, error) {
	n := q.size()
	if len(l.p.c) != n {
		return nil, ErrInvalidShape
	}
	var p1, p2 []complex128
	if q.IsDegenerate() {
		u, v := q.decompose()
		if q.dual && n != 4 {
			return nil, ErrNotSupported
		}
		if q.dual {
			// Components of a dual quadric are points; joining them with
			// the line yields hyperplane coordinates.
			p1 = l.Join(Point{c: u}).c
			p2 = l.Join(Point{c: v}).c
		} else {
			p1 = l.Meet(Plane{c: u}).c
			p2 = l.Meet(Plane{c: v}).c
		}
	} else {
		if n != 4 {
			// The contraction needs the span representation of the line,
			// which pins the ambient dimension to three.
			return nil, ErrNotSupported
		}
		m := EpsilonContractTensor(n, l.Tensor())
		b := cSandwich(m, q.m)
		p1, p2 = quadric(b, !q.dual).decompose()
	}
	return collapsePair(p1, p2), nil
}

// intersectQuadric intersects two quadrics of the plane by reducing the
// second one to a pair of lines: directly if it is degenerate, otherwise
// through a degenerate member of the pencil spanned by the two quadrics.
func (q Quadric) intersectQuadric(o Quadric) ([]Point, error) {
	n := q.size()
	if o.size() != n {
		return nil, ErrInvalidShape
	}
	if n != 3 {
		// Reducing a space quadric's intersection leads to conics in
		// planes, which this kernel does not represent.
		return nil, ErrNotSupported
	}
	var u, v []complex128
	if o.IsDegenerate() {
		u, v = o.decompose()
	} else {
		t := q.pencilRoot(o)
		c := cAdd(q.m, cScale(t, o.m))
		u, v = quadric(c, q.dual).decompose()
	}
	conic := Conic{Quadric: q}
	res, err := conic.IntersectLine(Line{c: u})
	if err != nil {
		return nil, err
	}
	res2, err := conic.IntersectLine(Line{c: v})
	if err != nil {
		return nil, err
	}
	return dedupPoints(append(res, res2...)), nil
}

// pencilRoot finds a parameter t for which M + t*M' is degenerate, as a
// root of the characteristic polynomial det(M + t*M'). Roots are ordered
// by imaginary magnitude so that a real degenerate member is preferred
// when one exists.
func (q Quadric) pencilRoot(o Quadric) complex128 {
	n := q.size()
	rows := make([][]Poly, n)
	t := PolyVar(1, 0)
	for i := 0; i < n; i++ {
		rows[i] = make([]Poly, n)
		for j := 0; j < n; j++ {
			rows[i][j] = PolyConst(1, q.m.At(i, j)).Add(t.Scale(o.m.At(i, j)))
		}
	}
	det := polyDet(rows)
	coeffs, err := det.Univariate(0)
	if err != nil {
		panic("projective: pencil discriminant is not univariate")
	}
	roots := Roots(coeffs)
	if len(roots) == 0 {
		// The pencil is degenerate everywhere.
		return 0
	}
	sort.Slice(roots, func(i, j int) bool {
		ai, aj := math.Abs(imag(roots[i])), math.Abs(imag(roots[j]))
		if ai != aj {
			return ai < aj
		}
		return real(roots[i]) < real(roots[j])
	})
	return roots[0]
}

// collapsePair wraps a pair of coordinate vectors as points, collapsing
// them to one when they coincide (a tangential intersection).
func collapsePair(u, v []complex128) []Point {
	p1 := Point{c: realifyVec(u, 1e-9)}
	p2 := Point{c: realifyVec(v, 1e-9)}
	if p1.Equal(p2) {
		return []Point{p1}
	}
	return []Point{p1, p2}
}
