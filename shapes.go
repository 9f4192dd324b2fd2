package projective

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Ellipse is an axis-aligned ellipse of the plane, as a conic parametrized
// by center and radii.
type Ellipse struct {
	Conic
}

// NewEllipse returns the ellipse with the given center, horizontal radius
// (along the x-axis), and vertical radius (along the y-axis).
func NewEllipse(center Point, hradius, vradius float64) Ellipse {
	r := []float64{vradius * vradius, hradius * hradius, 1}
	cv := normalizedVec(center.c)
	c := []float64{-real(cv[0]), -real(cv[1]), -real(cv[2])}
	m := mat.NewCDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		m.Set(i, i, complex(r[i], 0))
	}
	for i := 0; i < 3; i++ {
		m.Set(2, i, complex(c[i]*r[i], 0))
		m.Set(i, 2, complex(c[i]*r[i], 0))
	}
	corner := r[0]*c[0]*c[0] + r[1]*c[1]*c[1] + r[2]*c[2]*c[2] - (r[0]*r[1] + 1)
	m.Set(2, 2, complex(corner, 0))
	return Ellipse{Conic: Conic{Quadric: Quadric{m: m}}}
}

// Circle is a circle of the plane.
type Circle struct {
	Ellipse
}

// NewCircle returns the circle with the given center and radius.
func NewCircle(center Point, radius float64) Circle {
	return Circle{Ellipse: NewEllipse(center, radius, radius)}
}

// Center returns the center of the circle, recovered as its single focus.
func (c Circle) Center() Point {
	f, err := c.Foci()
	if err != nil || len(f) == 0 {
		panic("projective: circle has no recoverable focus")
	}
	return f[0]
}

// Radius returns the radius of the circle, read off the matrix.
func (c Circle) Radius() float64 {
	s := c.m.At(0, 0)
	v := []complex128{c.m.At(0, 2) / s, c.m.At(1, 2) / s}
	r := dotVec(v, v) - c.m.At(2, 2)/s
	return real(cmplx.Sqrt(r))
}

// LieCoordinates lifts the circle to a point of four-dimensional projective
// space. Two circles are tangent exactly when their lifted points are
// orthogonal under the Lie inner product, which is what
// [Circle.IntersectionAngle] exploits.
func (c Circle) LieCoordinates() Point {
	m := normalizedVec(c.Center().c)
	r := c.Radius()
	x := real(m[0])*real(m[0]) + real(m[1])*real(m[1]) - r*r
	return PointFromHomogeneous([]complex128{
		complex((1+x)/2, 0),
		complex((1-x)/2, 0),
		m[0],
		m[1],
		complex(r, 0),
	})
}

// IntersectionAngle returns the angle at which two circles intersect,
// computed from the inner product of their Lie coordinates without finding
// the intersection points.
func (c Circle) IntersectionAngle(o Circle) float64 {
	p1 := normalizedVec(c.LieCoordinates().c)
	p2 := normalizedVec(o.LieCoordinates().c)
	var s complex128
	for i := 0; i < 4; i++ {
		s += p1[i] * p2[i]
	}
	v := real(s)
	v = math.Max(-1, math.Min(1, v))
	return math.Acos(v)
}

// Area returns the area of the circle.
func (c Circle) Area() float64 {
	r := c.Radius()
	return math.Pi * r * r
}

// Sphere is a sphere in any dimension.
type Sphere struct {
	Quadric
}

// NewSphere returns the sphere with the given center and radius. The
// dimension of the center point determines the dimension of the sphere.
func NewSphere(center Point, radius float64) Sphere {
	n := len(center.c)
	cv := normalizedVec(center.c)
	m := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	var sq float64
	for i := 0; i < n-1; i++ {
		ci := -real(cv[i])
		m.Set(n-1, i, complex(ci, 0))
		m.Set(i, n-1, complex(ci, 0))
		sq += ci * ci
	}
	m.Set(n-1, n-1, complex(sq-radius*radius, 0))
	return Sphere{Quadric: Quadric{m: m}}
}

// Center returns the center of the sphere.
func (s Sphere) Center() Point {
	n := s.size()
	c := make([]complex128, n)
	for i := 0; i < n-1; i++ {
		c[i] = -s.m.At(i, n-1)
	}
	c[n-1] = s.m.At(0, 0)
	return Point{c: c}
}

// Radius returns the radius of the sphere.
func (s Sphere) Radius() float64 {
	n := s.size()
	scale := s.m.At(0, 0)
	var sq complex128
	for i := 0; i < n-1; i++ {
		v := s.m.At(i, n-1) / scale
		sq += v * v
	}
	return real(cmplx.Sqrt(sq - s.m.At(n-1, n-1)/scale))
}

// alpha is the volume of the unit ball in n dimensions.
func alpha(n int) float64 {
	return math.Pow(math.Pi, float64(n)/2) / math.Gamma(float64(n)/2+1)
}

// Volume returns the volume enclosed by the sphere.
func (s Sphere) Volume() float64 {
	n := s.Dim()
	return alpha(n) * math.Pow(s.Radius(), float64(n))
}

// Area returns the surface area of the sphere.
func (s Sphere) Area() float64 {
	n := s.Dim()
	return float64(n) * alpha(n) * math.Pow(s.Radius(), float64(n-1))
}

// Cone is a circular cone in three-dimensional space: the degenerate
// quadric x² + y² = s²z² translated so its apex sits at the given point.
type Cone struct {
	Quadric
}

// NewCone returns the cone with the given apex and slope, the radius of
// its circular cross section at unit height.
func NewCone(apex Point, slope float64) Cone {
	a := []float64{1, 1, -slope * slope}
	v := normalizedVec(apex.c)
	m := mat.NewCDense(4, 4, nil)
	var corner float64
	for i := 0; i < 3; i++ {
		vi := real(v[i])
		m.Set(i, i, complex(a[i], 0))
		m.Set(i, 3, complex(-a[i]*vi, 0))
		m.Set(3, i, complex(-a[i]*vi, 0))
		corner += a[i] * vi * vi
	}
	m.Set(3, 3, complex(corner, 0))
	return Cone{Quadric: Quadric{m: m}}
}

// Apex returns the singular point of the cone, recovered as the null space
// of its matrix.
func (c Cone) Apex() Point {
	n := c.size()
	r := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			r.Set(i, j, real(c.m.At(i, j)))
		}
	}
	ns := NullSpace(r)
	_, cols := ns.Dims()
	if cols == 0 {
		panic("projective: cone matrix has no null space")
	}
	v := make([]complex128, n)
	for i := 0; i < n; i++ {
		v[i] = complex(ns.At(i, 0), 0)
	}
	return Point{c: v}
}

// Cylinder is a circular cylinder around an axis parallel to the z-axis:
// the degenerate quadric (x-cx)² + (y-cy)² = r².
type Cylinder struct {
	Quadric
}

// NewCylinder returns the cylinder of the given radius whose axis passes
// through the given center parallel to the z-axis.
func NewCylinder(center Point, radius float64) Cylinder {
	v := normalizedVec(center.c)
	cx, cy := real(v[0]), real(v[1])
	m := mat.NewCDense(4, 4, nil)
	m.Set(0, 0, 1)
	m.Set(1, 1, 1)
	m.Set(0, 3, complex(-cx, 0))
	m.Set(3, 0, complex(-cx, 0))
	m.Set(1, 3, complex(-cy, 0))
	m.Set(3, 1, complex(-cy, 0))
	m.Set(3, 3, complex(cx*cx+cy*cy-radius*radius, 0))
	return Cylinder{Quadric: Quadric{m: m}}
}

// Radius returns the radius of the cylinder.
func (c Cylinder) Radius() float64 {
	scale := c.m.At(0, 0)
	v := []complex128{c.m.At(0, 3) / scale, c.m.At(1, 3) / scale}
	r := dotVec(v, v) - c.m.At(3, 3)/scale
	return real(cmplx.Sqrt(r))
}
