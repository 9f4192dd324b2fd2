package projective

import (
	"math"
	"math/cmplx"
	"testing"
)

// affineCircle returns x^2 + y^2 - 1 in two variables, optionally shifted
// to the center (cx, cy).
func affineCircle(cx, cy float64) Poly {
	x := PolyVar(2, 0).Sub(PolyConst(2, complex(cx, 0)))
	y := PolyVar(2, 1).Sub(PolyConst(2, complex(cy, 0)))
	return x.Mul(x).Add(y.Mul(y)).Sub(PolyConst(2, 1))
}

func hasSolution(sols [][2]complex128, x, y complex128) bool {
	for _, s := range sols {
		if cmplx.Abs(s[0]-x) < 1e-6 && cmplx.Abs(s[1]-y) < 1e-6 {
			return true
		}
	}
	return false
}

func TestSolveSystemLinear(t *testing.T) {
	// Unit circle and the x-axis.
	sols, err := solveSystem2(affineCircle(0, 0), PolyVar(2, 1), 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(sols) != 2 {
		t.Fatalf("got %d solutions %v, want 2", len(sols), sols)
	}
	if !hasSolution(sols, 1, 0) || !hasSolution(sols, -1, 0) {
		t.Errorf("solutions %v, want (±1, 0)", sols)
	}
}

func TestSolveSystemResultant(t *testing.T) {
	// Two unit circles with centers a unit apart.
	sols, err := solveSystem2(affineCircle(0, 0), affineCircle(1, 0), 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	h := math.Sqrt(3) / 2
	if !hasSolution(sols, 0.5, complex(h, 0)) || !hasSolution(sols, 0.5, complex(-h, 0)) {
		t.Errorf("solutions %v, want (1/2, ±√3/2)", sols)
	}
}

func TestSolveSystemUnivariateShortcut(t *testing.T) {
	// x^2 = 1 and y^2 = 4 decouple into four affine solutions.
	p := PolyVar(2, 0).Mul(PolyVar(2, 0)).Sub(PolyConst(2, 1))
	q := PolyVar(2, 1).Mul(PolyVar(2, 1)).Sub(PolyConst(2, 4))
	sols, err := solveSystem2(p, q, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(sols) != 4 {
		t.Fatalf("got %d solutions %v, want 4", len(sols), sols)
	}
	for _, x := range []complex128{1, -1} {
		for _, y := range []complex128{2, -2} {
			if !hasSolution(sols, x, y) {
				t.Errorf("solution (%v, %v) not found in %v", x, y, sols)
			}
		}
	}
}

func TestSolveSystemSharedComponent(t *testing.T) {
	p := affineCircle(0, 0)
	if _, err := solveSystem2(p, p.Scale(2), 0, 1); err != ErrNotSupported {
		t.Errorf("got %v, want ErrNotSupported", err)
	}
}

func TestSolveSystemConstant(t *testing.T) {
	sols, err := solveSystem2(PolyConst(2, 1), affineCircle(0, 0), 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(sols) != 0 {
		t.Errorf("non-zero constant equation has solutions %v", sols)
	}
}

func TestResultant(t *testing.T) {
	// res_y(x^2 + y^2 - 1, y - x) = 2x^2 - 1 up to a constant factor.
	p := affineCircle(0, 0)
	q := PolyVar(2, 1).Sub(PolyVar(2, 0))
	res, err := resultant(p, q, 1)
	if err != nil {
		t.Fatal(err)
	}
	u, err := res.Univariate(0)
	if err != nil {
		t.Fatal(err)
	}
	roots := Roots(u)
	s := math.Sqrt(0.5)
	if len(roots) != 2 {
		t.Fatalf("got %d roots %v, want 2", len(roots), roots)
	}
	for _, want := range []complex128{complex(s, 0), complex(-s, 0)} {
		found := false
		for _, r := range roots {
			if cmplx.Abs(r-want) < 1e-8 {
				found = true
			}
		}
		if !found {
			t.Errorf("root %v not found in %v", want, roots)
		}
	}
}

func TestPolyDet(t *testing.T) {
	x := PolyVar(1, 0)
	// det [[x, 1], [1, x]] = x^2 - 1
	m := [][]Poly{
		{x, PolyConst(1, 1)},
		{PolyConst(1, 1), x},
	}
	det := polyDet(m)
	diff(t, complex128(1), det.Coeff(2))
	diff(t, complex128(-1), det.Coeff(0))
}
