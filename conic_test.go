package projective

import (
	"math"
	"testing"
)

// flatten3 collects the entries of a 3×3 complex matrix row by row.
func flatten3(c Conic) []complex128 {
	out := make([]complex128, 0, 9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out = append(out, c.m.At(i, j))
		}
	}
	return out
}

func TestConicFromPoints(t *testing.T) {
	a := NewPoint(0, 1)
	b := NewPoint(0, -1)
	c := NewPoint(1.5, 0.5)
	d := NewPoint(1.5, -0.5)
	e := NewPoint(-1.5, 0.5)

	conic, err := ConicFromPoints(a, b, c, d, e)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []Point{a, b, c, d, e} {
		if !conic.Contains(p, 0) {
			t.Errorf("conic misses %v", p)
		}
	}
}

func TestConicFromPointsCircle(t *testing.T) {
	conic, err := ConicFromPoints(
		NewPoint(1, 0),
		NewPoint(0, 1),
		NewPoint(-1, 0),
		NewPoint(0, -1),
		NewPoint(0.6, 0.8),
	)
	if err != nil {
		t.Fatal(err)
	}
	circle := NewCircle(NewPoint(0, 0), 1)
	if !IsMultiple(flatten3(conic), flatten3(circle.Conic), 0) {
		t.Errorf("conic through five circle points is not the circle: %v", flatten3(conic))
	}
}

func TestConicFromLines(t *testing.T) {
	g := NewLine(1, 0, 0)
	h := NewLine(0, 1, -1)
	conic := ConicFromLines(g, h)
	if !conic.IsDegenerate() {
		t.Fatal("line pair not degenerate")
	}
	comps, err := conic.Components()
	if err != nil {
		t.Fatal(err)
	}
	if !comps[0].Equal(g) {
		t.Errorf("components[0] = %v, want %v", comps[0], g)
	}
	if !comps[1].Equal(h) {
		t.Errorf("components[1] = %v, want %v", comps[1], h)
	}
}

func TestConicFromTangent(t *testing.T) {
	a := NewPoint(-1.5, 0.5)
	b := NewPoint(0, -1)
	c := NewPoint(1.5, 0.5)
	d := NewPoint(1.5, -0.5)
	l := NewLine(0, 1, -1)

	conic, err := ConicFromTangent(l, a, b, c, d)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []Point{a, b, c, d} {
		if !conic.Contains(p, 0) {
			t.Errorf("conic misses %v", p)
		}
	}
	if !conic.IsTangent(l) {
		t.Error("constructed conic not tangent to the line")
	}
}

func TestConicFromTangentThroughPoint(t *testing.T) {
	l := NewLine(0, 1, -1)
	if _, err := ConicFromTangent(l, NewPoint(0, 1), NewPoint(1, 0), NewPoint(2, 0), NewPoint(3, 1)); err != ErrInvalidConfiguration {
		t.Errorf("point on tangent: got %v, want ErrInvalidConfiguration", err)
	}
}

func TestConicFromCrossRatio(t *testing.T) {
	a := NewPoint(0, 1)
	b := NewPoint(0, -1)
	c := NewPoint(1.5, 0.5)
	d := NewPoint(1.5, -0.5)
	e := NewPoint(-1.5, 0.5)

	conic1, err := ConicFromPoints(a, b, c, d, e)
	if err != nil {
		t.Fatal(err)
	}
	cr := CrossRatio(e, a, b, c, d)
	conic2, err := ConicFromCrossRatio(cr, a, b, c, d)
	if err != nil {
		t.Fatal(err)
	}
	if !IsMultiple(flatten3(conic1), flatten3(conic2), 0) {
		t.Errorf("cross-ratio conic %v differs from five-point conic %v", flatten3(conic2), flatten3(conic1))
	}
	if !conic2.Contains(e, 0) {
		t.Error("cross-ratio conic misses the reference point")
	}
}

func TestConicIntersectLine(t *testing.T) {
	c := NewCircle(NewPoint(0, 0), 1)
	pts, err := c.Intersect(NewLine(0, 1, 0))
	if err != nil {
		t.Fatal(err)
	}
	wantPoints(t, pts, NewPoint(1, 0), NewPoint(-1, 0))

	pts, err = c.Intersect(NewLine(1, 0, 0))
	if err != nil {
		t.Fatal(err)
	}
	wantPoints(t, pts, NewPoint(0, 1), NewPoint(0, -1))
}

func TestConicIntersectLineTangent(t *testing.T) {
	c := NewCircle(NewPoint(0, 0), 1)
	pts, err := c.IntersectLine(NewLine(1, 0, -1))
	if err != nil {
		t.Fatal(err)
	}
	wantPoints(t, pts, NewPoint(1, 0))
}

func TestConicIntersectConic(t *testing.T) {
	c := NewCircle(NewPoint(0, 0), 1)
	c2 := NewCircle(NewPoint(0, 2), 1)
	pts, err := c.Intersect(c2.Conic)
	if err != nil {
		t.Fatal(err)
	}
	if !hasPoint(pts, NewPoint(0, 1)) {
		t.Errorf("intersection %v misses the tangency point (0, 1)", pts)
	}
}

func TestConicIntersectDegenerate(t *testing.T) {
	// A line pair meets a line in the two points where its components
	// cross it.
	pair := ConicFromLines(NewLine(1, 0, 0), NewLine(0, 1, 0))
	pts, err := pair.IntersectLine(NewLine(1, 1, -1))
	if err != nil {
		t.Fatal(err)
	}
	wantPoints(t, pts, NewPoint(0, 1), NewPoint(1, 0))
}

func TestConicContains(t *testing.T) {
	c, err := NewConic([][]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, -1},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !c.Contains(NewPoint(1, 0), 0) {
		t.Error("conic misses (1, 0)")
	}
	if c.Contains(NewPoint(1, 1), 0) {
		t.Error("conic contains (1, 1)")
	}
}

func TestAbsoluteConic(t *testing.T) {
	if !AbsoluteConic.Contains(I, 0) || !AbsoluteConic.Contains(J, 0) {
		t.Error("absolute conic misses the circular points")
	}
	if AbsoluteConic.Contains(NewPoint(1, 0), 0) {
		t.Error("absolute conic has a real point")
	}
}

func TestConicPolar(t *testing.T) {
	c := NewCircle(NewPoint(0, 0), 1)
	// The polar of a point on the conic is the tangent there.
	l := c.Polar(NewPoint(1, 0))
	if !l.Equal(NewLine(1, 0, -1)) {
		t.Errorf("polar = %v, want x = 1", l)
	}
}

func TestConicTangent(t *testing.T) {
	c := NewCircle(NewPoint(0, 0), 1)

	ls, err := c.Tangent(NewPoint(1, 0))
	if err != nil {
		t.Fatal(err)
	}
	if len(ls) != 1 {
		t.Fatalf("got %d tangents at a conic point, want 1", len(ls))
	}
	if !ls[0].Equal(NewLine(1, 0, -1)) {
		t.Errorf("tangent = %v, want x = 1", ls[0])
	}

	// An external point has two tangents, both touching the conic.
	ls, err = c.Tangent(NewPoint(2, 0))
	if err != nil {
		t.Fatal(err)
	}
	if len(ls) != 2 {
		t.Fatalf("got %d tangents from an external point, want 2", len(ls))
	}
	for _, l := range ls {
		if !l.Contains(NewPoint(2, 0), 0) {
			t.Errorf("tangent %v misses the external point", l)
		}
		if !c.IsTangent(l) {
			t.Errorf("line %v not reported tangent", l)
		}
	}
}

func TestConicFoci(t *testing.T) {
	f1 := NewPoint(0, math.Sqrt(5))
	f2 := NewPoint(0, -math.Sqrt(5))
	b := NewPoint(0, 3)

	conic, err := ConicFromFoci(f1, f2, b)
	if err != nil {
		t.Fatal(err)
	}
	if !conic.Contains(b, 0) {
		t.Error("conic misses the boundary point")
	}
	foci, err := conic.Foci()
	if err != nil {
		t.Fatal(err)
	}
	if len(foci) != 2 {
		t.Fatalf("got %d foci %v, want 2", len(foci), foci)
	}
	if !hasPoint(foci, f1) || !hasPoint(foci, f2) {
		t.Errorf("foci %v, want %v and %v", foci, f1, f2)
	}
}

func TestCircleFocus(t *testing.T) {
	c := NewCircle(NewPoint(0, 1), 1)
	foci, err := c.Foci()
	if err != nil {
		t.Fatal(err)
	}
	if len(foci) != 1 {
		t.Fatalf("got %d foci %v, want 1", len(foci), foci)
	}
	if !foci[0].Equal(NewPoint(0, 1)) {
		t.Errorf("focus = %v, want the center", foci[0])
	}
}
