package projective

import (
	"fmt"
	"math/cmplx"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// defaultTol is the tolerance used by containment and equality queries when
// the caller passes a tolerance <= 0. It matches the scale of the
// double-precision noise accumulated by the decomposition algorithms.
const defaultTol = 1e-8

// Point is a point of projective space in homogeneous coordinates. A point
// of n-dimensional space has n+1 coordinates, which may be complex.
type Point struct {
	c []complex128
}

// I and J are the circular points at infinity, the two fixed points common
// to all circles of the plane.
var (
	I = Point{c: []complex128{complex(0, -1), 1, 0}}
	J = Point{c: []complex128{complex(0, 1), 1, 0}}
)

// NewPoint returns the point with the given affine coordinates. A unit last
// homogeneous coordinate is appended.
func NewPoint(coords ...float64) Point {
	c := make([]complex128, len(coords)+1)
	for i, v := range coords {
		c[i] = complex(v, 0)
	}
	c[len(coords)] = 1
	return Point{c: c}
}

// PointFromHomogeneous returns the point with the given homogeneous
// coordinates.
func PointFromHomogeneous(coords []complex128) Point {
	c := make([]complex128, len(coords))
	copy(c, coords)
	return Point{c: c}
}

// Dim returns the dimension of the space the point lives in.
func (p Point) Dim() int { return len(p.c) - 1 }

// Coordinates returns a copy of the homogeneous coordinate vector.
func (p Point) Coordinates() []complex128 {
	c := make([]complex128, len(p.c))
	copy(c, p.c)
	return c
}

// Normalized returns the coordinate vector scaled so that the last
// coordinate is one. Points at infinity are returned unchanged.
func (p Point) Normalized() []complex128 {
	return normalizedVec(p.c)
}

// AtInfinity reports whether the point lies on the hyperplane at infinity.
func (p Point) AtInfinity() bool {
	return cmplx.Abs(p.c[len(p.c)-1]) < defaultTol
}

// IsReal reports whether the point has a representative with real
// coordinates.
func (p Point) IsReal() bool {
	return vecIsReal(normalizedVec(p.c), defaultTol)
}

// Equal reports whether two points are equal up to a scalar multiple.
func (p Point) Equal(q Point) bool {
	return len(p.c) == len(q.c) && IsMultiple(p.c, q.c, 0)
}

// Join returns the line through two points of the projective plane.
func (p Point) Join(q Point) Line {
	if len(p.c) != 3 || len(q.c) != 3 {
		panic("projective: Join requires points of the plane")
	}
	return Line{c: cross3(p.c, q.c)}
}

func (p Point) String() string { return "Point" + vecString(p.c) }

// Line is a line of the projective plane, represented by the coefficient
// covector of its defining linear form. For lines of higher-dimensional
// spaces see [SpanLine].
type Line struct {
	c []complex128
}

// NewLine returns the line with the given covector coefficients, i.e. the
// zero set of a*x0 + b*x1 + c*x2.
func NewLine(a, b, c float64) Line {
	return Line{c: []complex128{complex(a, 0), complex(b, 0), complex(c, 0)}}
}

// LineFromHomogeneous returns the line with the given covector coefficients.
func LineFromHomogeneous(coords []complex128) Line {
	if len(coords) != 3 {
		panic("projective: a line covector has three coefficients")
	}
	c := make([]complex128, 3)
	copy(c, coords)
	return Line{c: c}
}

// LineThrough returns the line joining two points of the plane.
func LineThrough(p, q Point) Line { return p.Join(q) }

// Coordinates returns a copy of the covector coefficients.
func (l Line) Coordinates() []complex128 {
	c := make([]complex128, len(l.c))
	copy(c, l.c)
	return c
}

// Meet returns the intersection point of two lines.
func (l Line) Meet(m Line) Point {
	return Point{c: cross3(l.c, m.c)}
}

// Contains reports whether a point lies on the line. If tol <= 0 a default
// tolerance is used.
func (l Line) Contains(p Point, tol float64) bool {
	if tol <= 0 {
		tol = defaultTol
	}
	var s complex128
	for i, v := range l.c {
		s += v * p.c[i]
	}
	return cmplx.Abs(s) < tol
}

// GeneralPoint returns a point in general position with respect to the
// line, i.e. one that does not lie on it. The basis vector with the largest
// covector coefficient is used, making the choice deterministic.
func (l Line) GeneralPoint() Point {
	k := 0
	for i, v := range l.c {
		if cmplx.Abs(v) > cmplx.Abs(l.c[k]) {
			k = i
		}
	}
	c := make([]complex128, len(l.c))
	c[k] = 1
	return Point{c: c}
}

// Equal reports whether two lines are equal up to a scalar multiple.
func (l Line) Equal(m Line) bool {
	return IsMultiple(l.c, m.c, 0)
}

// AsPoint reinterprets the covector coefficients as point coordinates.
// Constructions on the dual plane, such as [ConicFromFoci], use this to
// treat tangent lines as points of the dual.
func (l Line) AsPoint() Point {
	return PointFromHomogeneous(l.c)
}

// Polynomial returns the linear form defining the line as a polynomial in
// three variables.
func (l Line) Polynomial() Poly {
	p := NewPoly(3)
	for i, v := range l.c {
		p = p.Add(PolyVar(3, i).Scale(v))
	}
	return p
}

func (l Line) String() string { return "Line" + vecString(l.c) }

// Plane is a hyperplane of projective space, represented by the coefficient
// covector of its defining linear form.
type Plane struct {
	c []complex128
}

// NewPlane returns the hyperplane with the given covector coefficients.
func NewPlane(coords ...float64) Plane {
	c := make([]complex128, len(coords))
	for i, v := range coords {
		c[i] = complex(v, 0)
	}
	return Plane{c: c}
}

// PlaneFromHomogeneous returns the hyperplane with the given covector
// coefficients.
func PlaneFromHomogeneous(coords []complex128) Plane {
	c := make([]complex128, len(coords))
	copy(c, coords)
	return Plane{c: c}
}

// Coordinates returns a copy of the covector coefficients.
func (e Plane) Coordinates() []complex128 {
	c := make([]complex128, len(e.c))
	copy(c, e.c)
	return c
}

// Contains reports whether a point lies on the hyperplane. If tol <= 0 a
// default tolerance is used.
func (e Plane) Contains(p Point, tol float64) bool {
	if tol <= 0 {
		tol = defaultTol
	}
	var s complex128
	for i, v := range e.c {
		s += v * p.c[i]
	}
	return cmplx.Abs(s) < tol
}

// Equal reports whether two hyperplanes are equal up to a scalar multiple.
func (e Plane) Equal(f Plane) bool {
	return len(e.c) == len(f.c) && IsMultiple(e.c, f.c, 0)
}

// AsPoint reinterprets the covector coefficients as point coordinates.
func (e Plane) AsPoint() Point {
	return PointFromHomogeneous(e.c)
}

func (e Plane) String() string { return "Plane" + vecString(e.c) }

// SpanLine is a line of a space of dimension at least three, given by two
// distinct points spanning it.
type SpanLine struct {
	p, q Point
}

// NewSpanLine returns the line through two points of space.
func NewSpanLine(p, q Point) SpanLine {
	if len(p.c) != len(q.c) {
		panic("projective: span points must have equal dimension")
	}
	if len(p.c) < 4 {
		panic("projective: SpanLine requires dimension >= 3; use Line in the plane")
	}
	return SpanLine{p: p, q: q}
}

// Tensor returns the coordinate tensor of the line, the contraction of the
// alternating tensor against its two span points. In three-dimensional
// space this is the dual Plücker matrix.
func (l SpanLine) Tensor() *mat.CDense {
	return EpsilonContract(len(l.p.c), l.p.c, l.q.c)
}

// Meet returns the intersection point of the line with a hyperplane,
// computed from the Plücker matrix of the span.
func (l SpanLine) Meet(e Plane) Point {
	// (p q^T - q p^T) e = p (q·e) - q (p·e)
	qe := dotVec(l.q.c, e.c)
	pe := dotVec(l.p.c, e.c)
	c := make([]complex128, len(l.p.c))
	for i := range c {
		c[i] = l.p.c[i]*qe - l.q.c[i]*pe
	}
	return Point{c: c}
}

// Join returns the hyperplane spanned by the line and a point. It is only
// defined in three-dimensional space, where a line and a point span a
// plane.
func (l SpanLine) Join(p Point) Plane {
	n := len(l.p.c)
	if n != 4 {
		panic("projective: SpanLine.Join requires three-dimensional space")
	}
	w := l.Tensor()
	c := make([]complex128, n)
	for i := 0; i < n; i++ {
		var s complex128
		for j := 0; j < n; j++ {
			s += w.At(i, j) * p.c[j]
		}
		c[i] = s
	}
	return Plane{c: c}
}

// CrossRatio returns the conic cross-ratio of e with respect to the four
// points a, b, c, d of the plane: the ratio of determinant products
// |eac||ebd| / |ead||ebc|. A sixth point lies on the conic through the five
// given ones exactly if it sees a, b, c, d under the same cross-ratio,
// which is the identity behind [ConicFromCrossRatio].
func CrossRatio(e, a, b, c, d Point) complex128 {
	ac := det3(e.c, a.c, c.c)
	bd := det3(e.c, b.c, d.c)
	ad := det3(e.c, a.c, d.c)
	bc := det3(e.c, b.c, c.c)
	return (ac * bd) / (ad * bc)
}

// dedupPoints collapses near-duplicate points to one representative per
// projective equivalence class. Each point is scaled to a canonical
// representative and quantized; points sharing a quantized key are
// considered equal. Order of first appearance is preserved.
func dedupPoints(pts []Point) []Point {
	seen := make(map[string]bool, len(pts))
	out := pts[:0:0]
	for _, p := range pts {
		k := canonicalKey(p.c)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, p)
	}
	return out
}

// canonicalKey quantizes a homogeneous coordinate vector to a key that is
// shared by all vectors representing the same projective element.
func canonicalKey(c []complex128) string {
	k := 0
	for i, v := range c {
		if cmplx.Abs(v) > cmplx.Abs(c[k]) {
			k = i
		}
	}
	var sb strings.Builder
	if cmplx.Abs(c[k]) == 0 {
		return "0"
	}
	for _, v := range c {
		w := v / c[k]
		re, im := real(w), imag(w)
		if re == 0 {
			re = 0 // normalize negative zero
		}
		if im == 0 {
			im = 0
		}
		fmt.Fprintf(&sb, "%.6f,%.6f;", re, im)
	}
	return sb.String()
}

func vecString(c []complex128) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, v := range c {
		if i > 0 {
			sb.WriteString(", ")
		}
		if imag(v) == 0 {
			fmt.Fprintf(&sb, "%g", real(v))
		} else {
			fmt.Fprintf(&sb, "%g", v)
		}
	}
	sb.WriteByte(')')
	return sb.String()
}
