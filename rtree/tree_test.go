package rtree_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/platracer/geom"
	"github.com/katalvlaran/platracer/rtree"
)

type RTreeSuite struct {
	suite.Suite
}

func TestRTreeSuite(t *testing.T) {
	suite.Run(t, new(RTreeSuite))
}

func (s *RTreeSuite) newTree(maxEntries int) *rtree.Tree[string] {
	return rtree.New[string](maxEntries, 0, 10*time.Millisecond, 20*time.Millisecond)
}

func (s *RTreeSuite) TestInsertAndFind() {
	require := require.New(s.T())
	tree := s.newTree(5)

	r := geom.NewRect(0, 0, 1, 1)
	ok := tree.Insert(1, r, "platform-a", geom.Line{})
	require.True(ok)

	found := tree.Find(geom.NewRect(-1, -1, 2, 2))
	require.Len(found, 1)
	require.Equal("platform-a", found[0].Owner)
}

func (s *RTreeSuite) TestFindExcludesNonOverlapping() {
	require := require.New(s.T())
	tree := s.newTree(5)
	tree.Insert(1, geom.NewRect(0, 0, 1, 1), "a", geom.Line{})
	tree.Insert(2, geom.NewRect(100, 100, 101, 101), "b", geom.Line{})

	found := tree.Find(geom.NewRect(-1, -1, 2, 2))
	require.Len(found, 1)
	require.Equal("a", found[0].Owner)
}

func (s *RTreeSuite) TestClear() {
	require := require.New(s.T())
	tree := s.newTree(5)
	tree.Insert(1, geom.NewRect(0, 0, 1, 1), "a", geom.Line{})
	require.Equal(1, tree.Count())

	ok := tree.Clear()
	require.True(ok)
	require.Equal(0, tree.Count())
	require.Empty(tree.Find(geom.NewRect(-100, -100, 100, 100)))
}

// TestSplitAfterMaxEntries mirrors spec E5: six disjoint unit rectangles
// along x=0..5 with MaxEntries=5 force a split, after which all six
// items must still be counted and returned by a covering query.
func (s *RTreeSuite) TestSplitAfterMaxEntries() {
	require := require.New(s.T())
	tree := s.newTree(5)

	for i := 0; i < 6; i++ {
		x := float64(i)
		ok := tree.Insert(rtree.Key(i), geom.NewRect(x, 0, x+1, 1), "obj", geom.Line{})
		require.True(ok)
	}

	require.Equal(6, tree.Count())
	all := tree.Find(geom.NewRect(-1, -1, 10, 2))
	require.Len(all, 6)
}

func (s *RTreeSuite) TestManyInsertsRemainQueryable() {
	require := require.New(s.T())
	tree := s.newTree(5)

	const n = 200
	for i := 0; i < n; i++ {
		x := float64(i) * 2
		require.True(tree.Insert(rtree.Key(i), geom.NewRect(x, 0, x+1, 1), i, geom.Line{}))
	}
	require.Equal(n, tree.Count())

	found := tree.Find(geom.NewRect(198, -1, 201, 2))
	require.NotEmpty(found)
	for _, item := range found {
		require.True(item.Rect.IntersectsWith(geom.NewRect(198, -1, 201, 2)))
	}
}
