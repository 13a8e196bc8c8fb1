package geohash

import (
	"testing"

	"github.com/dhconnelly/rtreego"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBBoxRect(t *testing.T) {
	b, err := BBoxOf("ezs42")
	require.NoError(t, err)

	r, err := b.Rect()
	require.NoError(t, err)
	assert.Equal(t, b.West, r.PointCoord(0))
	assert.Equal(t, b.South, r.PointCoord(1))
	assert.InDelta(t, b.East-b.West, r.LengthsCoord(0), 1e-12)
	assert.InDelta(t, b.North-b.South, r.LengthsCoord(1), 1e-12)
}

func TestCellsInRTree(t *testing.T) {
	children, err := Children("9q8y")
	require.NoError(t, err)

	objs, err := Spatials(children...)
	require.NoError(t, err)
	require.Len(t, objs, 32)

	tree := rtreego.NewTree(2, 4, 8, objs...)
	assert.Equal(t, 32, tree.Size())

	hash, err := Encode(-122.4194, 37.7749, 5)
	require.NoError(t, err)
	cell, err := Decode(hash)
	require.NoError(t, err)

	// a small box around the cell center only touches that cell
	hits := tree.SearchIntersect(rtreego.Point{cell.Lon, cell.Lat}.ToRect(cell.LonErr / 4))
	require.Len(t, hits, 1)
	assert.Equal(t, hash, hits[0].(Cell).Hash)
}

func TestSpatialsInvalid(t *testing.T) {
	objs, err := Spatials("9q", "zz!")
	assert.Nil(t, objs)
	assert.Error(t, err)
}
