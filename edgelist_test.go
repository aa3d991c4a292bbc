package forcelayout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestEdgesFromMatrix(t *testing.T) {
	rawedges := []float64{0., 1., 1., 1., 0., 0., 0., 1., 1., 0., 0., 1., 0., 0., 1., 1., 1., 0., 0., 0., 1., 0., 1., 1., 0.}
	symedges := []Edge{
		{"1", "0"}, {"2", "0"}, {"2", "1"}, {"3", "0"},
		{"3", "1"}, {"4", "0"}, {"4", "2"}, {"4", "3"},
	}
	m := mat.NewDense(5, 5, rawedges)
	edges, err := EdgesFromMatrix(m, nil)
	require.NoError(t, err)
	assert.Equal(t, symedges, edges)

	named, err := EdgesFromMatrix(m, []string{"a", "b", "c", "d", "e"})
	require.NoError(t, err)
	assert.Equal(t, Edge{"b", "a"}, named[0])
	assert.Equal(t, Edge{"e", "d"}, named[7])
}

func TestEdgesFromMatrixErrors(t *testing.T) {
	_, err := EdgesFromMatrix(&mat.Dense{}, nil)
	assert.Equal(t, ErrMatrixEmpty, err)

	_, err = EdgesFromMatrix(mat.NewDense(5, 6, nil), nil)
	assert.Equal(t, ErrMatrixNotSquare, err)

	_, err = EdgesFromMatrix(mat.NewDense(3, 3, nil), []string{"a"})
	assert.Equal(t, ErrKeyCount, err)

	// no edges is a valid, repulsion-only graph
	edges, err := EdgesFromMatrix(mat.NewDense(3, 3, nil), nil)
	require.NoError(t, err)
	assert.Empty(t, edges)
}

func TestPositions(t *testing.T) {
	p := Positions([]*Node{{Key: "a", X: 1, Y: 2}, nil, {Key: "c", X: 5, Y: 6}})
	r, c := p.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 2, c)
	assert.Equal(t, []float64{1, 2}, p.RawRowView(0))
	assert.Equal(t, []float64{0, 0}, p.RawRowView(1))
	assert.Equal(t, []float64{5, 6}, p.RawRowView(2))

	r, c = Positions(nil).Dims()
	assert.Zero(t, r)
	assert.Zero(t, c)
}
