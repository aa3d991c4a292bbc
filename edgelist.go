package forcelayout

import (
	"errors"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrMatrixEmpty     = errors.New("matrix is empty")
	ErrMatrixNotSquare = errors.New("matrix not square")
	ErrKeyCount        = errors.New("key count does not match matrix size")
)

func isWeak(x, y float64) bool {
	return x > 0. || y > 0.
}

// MatrixKeys returns "0" .. "n-1", the keys used for matrix rows when no
// explicit keys are given.
func MatrixKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = strconv.Itoa(i)
	}
	return keys
}

// EdgesFromMatrix symmetrizes an adjacency matrix and returns one edge per
// connected pair, (i, j) with j < i. Row i is named keys[i]; nil keys means
// MatrixKeys.
func EdgesFromMatrix(m *mat.Dense, keys []string) ([]Edge, error) {
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return nil, ErrMatrixEmpty
	}
	if r != c {
		return nil, ErrMatrixNotSquare
	}
	if keys == nil {
		keys = MatrixKeys(r)
	}
	if len(keys) != r {
		return nil, ErrKeyCount
	}

	edges := make([]Edge, 0, r)
	for i := 0; i < r; i++ {
		for j := 0; j < i; j++ {
			// since we're symmetrizing, look at either (i,j) or (j,i)
			if !isWeak(m.At(i, j), m.At(j, i)) {
				continue
			}
			edges = append(edges, Edge{Source: keys[i], Target: keys[j]})
		}
	}
	return edges, nil
}

// Positions returns an n x 2 matrix of node coordinates, one row per node in
// order. Nil nodes yield a zero row.
func Positions(nodes []*Node) *mat.Dense {
	if len(nodes) == 0 {
		return &mat.Dense{}
	}
	out := mat.NewDense(len(nodes), 2, nil)
	for i, n := range nodes {
		if n == nil {
			continue
		}
		out.Set(i, 0, n.X)
		out.Set(i, 1, n.Y)
	}
	return out
}
