package projective

import (
	"math/cmplx"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestIsMultiple(t *testing.T) {
	a := []complex128{1, 2, 3}
	if !IsMultiple(a, []complex128{2, 4, 6}, 0) {
		t.Error("real multiple not detected")
	}
	if !IsMultiple(a, []complex128{-0.5, -1, -1.5}, 0) {
		t.Error("negative multiple not detected")
	}
	if !IsMultiple(a, []complex128{1i, 2i, 3i}, 0) {
		t.Error("imaginary multiple not detected")
	}
	if IsMultiple(a, []complex128{1, 2, 4}, 0) {
		t.Error("independent vectors reported as multiples")
	}
	if IsMultiple([]complex128{1, 0, 0}, []complex128{0, 1, 0}, 0) {
		t.Error("orthogonal vectors reported as multiples")
	}
}

func TestHatMatrixCross(t *testing.T) {
	m := HatMatrix([]complex128{1, 2, 3})
	want := [][]complex128{
		{0, 3, -2},
		{-3, 0, 1},
		{2, -1, 0},
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if m.At(i, j) != want[i][j] {
				t.Errorf("m[%d][%d] = %v, want %v", i, j, m.At(i, j), want[i][j])
			}
		}
	}
}

func TestHatMatrixGeneral(t *testing.T) {
	xs := []complex128{1, 2, 3, 4, 5, 6}
	m := HatMatrix(xs)
	// The scalars fill the upper triangle back to front.
	want := map[[2]int]complex128{
		{0, 1}: 6, {0, 2}: 5, {0, 3}: 4,
		{1, 2}: 3, {1, 3}: 2,
		{2, 3}: 1,
	}
	for ij, v := range want {
		i, j := ij[0], ij[1]
		if m.At(i, j) != v {
			t.Errorf("m[%d][%d] = %v, want %v", i, j, m.At(i, j), v)
		}
		if m.At(j, i) != -v {
			t.Errorf("m[%d][%d] = %v, want %v", j, i, m.At(j, i), -v)
		}
	}
	for i := 0; i < 4; i++ {
		if m.At(i, i) != 0 {
			t.Errorf("nonzero diagonal entry at %d", i)
		}
	}
}

func TestNullSpace(t *testing.T) {
	a := mat.NewDense(2, 3, []float64{
		1, 0, 0,
		0, 1, 0,
	})
	q := NullSpace(a)
	r, c := q.Dims()
	if r != 3 || c != 1 {
		t.Fatalf("null space has shape %dx%d, want 3x1", r, c)
	}
	// A q must vanish and the basis must have unit norm.
	for i := 0; i < 2; i++ {
		var s float64
		for j := 0; j < 3; j++ {
			s += a.At(i, j) * q.At(j, 0)
		}
		approx(t, 0, s, 1e-12)
	}
	var norm float64
	for j := 0; j < 3; j++ {
		norm += q.At(j, 0) * q.At(j, 0)
	}
	approx(t, 1, norm, 1e-12)
}

func TestNullSpaceRankDeficient(t *testing.T) {
	// Rank two: the third row is the sum of the first two.
	a := mat.NewDense(3, 3, []float64{
		1, 2, 3,
		4, 5, 6,
		5, 7, 9,
	})
	q := NullSpace(a)
	r, c := q.Dims()
	if r != 3 || c != 1 {
		t.Fatalf("null space has shape %dx%d, want 3x1", r, c)
	}
	for i := 0; i < 3; i++ {
		var s float64
		for j := 0; j < 3; j++ {
			s += a.At(i, j) * q.At(j, 0)
		}
		approx(t, 0, s, 1e-10)
	}
}

func TestCDet(t *testing.T) {
	m := cFromRows([][]float64{
		{2, 0, 0},
		{0, 3, 0},
		{0, 0, 4},
	})
	if d := cDet(m); cmplx.Abs(d-24) > 1e-12 {
		t.Errorf("det = %v, want 24", d)
	}

	m = cFromRows([][]float64{
		{1, 2},
		{2, 4},
	})
	if d := cDet(m); cmplx.Abs(d) > 1e-12 {
		t.Errorf("det = %v, want 0", d)
	}

	c := mat.NewCDense(2, 2, []complex128{1i, 0, 0, 1i})
	if d := cDet(c); cmplx.Abs(d+1) > 1e-12 {
		t.Errorf("det = %v, want -1", d)
	}
}

func TestCInv(t *testing.T) {
	m := mat.NewCDense(3, 3, []complex128{
		1, 2, 0,
		0, 1i, 0,
		3, 0, 1,
	})
	inv, err := cInv(m)
	if err != nil {
		t.Fatal(err)
	}
	id := cMul(m, inv)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := complex128(0)
			if i == j {
				want = 1
			}
			if cmplx.Abs(id.At(i, j)-want) > 1e-12 {
				t.Errorf("(m inv)[%d][%d] = %v, want %v", i, j, id.At(i, j), want)
			}
		}
	}

	if _, err := cInv(cFromRows([][]float64{{1, 2}, {2, 4}})); err != ErrDegenerate {
		t.Errorf("singular matrix: got %v, want ErrDegenerate", err)
	}
}

func TestNormalizedVec(t *testing.T) {
	v := normalizedVec([]complex128{2, 4, 2})
	diff(t, []complex128{1, 2, 1}, v)

	// Vectors at infinity are left untouched.
	v = normalizedVec([]complex128{1, 2, 0})
	diff(t, []complex128{1, 2, 0}, v)
}

func TestHatMatrixPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid scalar count")
		}
	}()
	HatMatrix(make([]complex128, 4))
}
