package projective

import (
	"github.com/ctessum/sparse"
	"gonum.org/v1/gonum/mat"
)

// LeviCivita returns the rank-n alternating tensor as a dense coefficient
// array of shape n^n. Entries are the signs of the index permutations and
// zero for repeated indices.
func LeviCivita(n int) *sparse.DenseArray {
	dims := make([]int, n)
	for i := range dims {
		dims[i] = n
	}
	arr := sparse.ZerosDense(dims...)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	permute(idx, 0, 1, func(perm []int, sign float64) {
		arr.Set(sign, perm...)
	})
	return arr
}

// permute visits all permutations of idx[k:], tracking the parity sign.
func permute(idx []int, k int, sign float64, visit func([]int, float64)) {
	if k == len(idx)-1 {
		visit(idx, sign)
		return
	}
	for i := k; i < len(idx); i++ {
		s := sign
		if i != k {
			s = -s
		}
		idx[k], idx[i] = idx[i], idx[k]
		permute(idx, k+1, s, visit)
		idx[k], idx[i] = idx[i], idx[k]
	}
}

// EpsilonContract contracts the rank-n alternating tensor against n-2
// vectors and returns the resulting matrix on the two free indices. With
// n = 3 and a line covector this is the hat matrix of the line; with n = 4
// and the two span points of a line it is the dual Plücker matrix, the
// coordinate tensor of the line in three-dimensional space.
func EpsilonContract(n int, vs ...[]complex128) *mat.CDense {
	if len(vs) != n-2 {
		panic("projective: EpsilonContract needs n-2 vectors")
	}
	for _, v := range vs {
		if len(v) != n {
			panic("projective: contraction vector has wrong length")
		}
	}
	eps := LeviCivita(n)
	m := mat.NewCDense(n, n, nil)
	for f, sign := range eps.Elements {
		if sign == 0 {
			continue
		}
		idx := eps.IndexNd(f)
		term := complex(sign, 0)
		for k, v := range vs {
			term *= v[idx[k+2]]
		}
		m.Set(idx[0], idx[1], m.At(idx[0], idx[1])+term)
	}
	return m
}

// EpsilonContractTensor contracts the rank-n alternating tensor against a
// rank-2 coordinate tensor, such as the Plücker matrix of a line in
// three-dimensional space. Contracting the alternating tensor twice against
// a line built by [EpsilonContract] recovers the line's primal Plücker
// matrix, the map used to restrict a quadric to the line.
func EpsilonContractTensor(n int, w *mat.CDense) *mat.CDense {
	if r, c := w.Dims(); r != n || c != n || n != 4 {
		panic("projective: EpsilonContractTensor requires a rank-2 line tensor in dimension four")
	}
	eps := LeviCivita(n)
	m := mat.NewCDense(n, n, nil)
	for f, sign := range eps.Elements {
		if sign == 0 {
			continue
		}
		idx := eps.IndexNd(f)
		term := complex(sign, 0) * w.At(idx[2], idx[3])
		m.Set(idx[0], idx[1], m.At(idx[0], idx[1])+term)
	}
	return m
}
