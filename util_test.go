package projective

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func approx(t *testing.T, want, got, tol float64) {
	t.Helper()
	if math.Abs(want-got) > tol {
		t.Errorf("got %v, want %v (tolerance %v)", got, want, tol)
	}
}

// hasPoint reports whether pts contains a point projectively equal to p.
func hasPoint(pts []Point, p Point) bool {
	for _, q := range pts {
		if q.Equal(p) {
			return true
		}
	}
	return false
}

func wantPoints(t *testing.T, pts []Point, want ...Point) {
	t.Helper()
	if len(pts) != len(want) {
		t.Fatalf("got %d points %v, want %d", len(pts), pts, len(want))
	}
	for _, w := range want {
		if !hasPoint(pts, w) {
			t.Errorf("points %v do not contain %v", pts, w)
		}
	}
}
