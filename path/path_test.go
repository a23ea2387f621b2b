package path_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/busroute/core"
	"github.com/katalvlaran/busroute/dijkstra"
	"github.com/katalvlaran/busroute/path"
)

var schoolBus = []core.EdgeSpec{
	{U: 0, V: 1, Weight: 24},
	{U: 1, V: 4, Weight: 19},
	{U: 1, V: 5, Weight: 32},
	{U: 3, V: 0, Weight: 16},
	{U: 3, V: 1, Weight: 14},
	{U: 3, V: 4, Weight: 11},
	{U: 4, V: 6, Weight: 21},
	{U: 4, V: 7, Weight: 23},
	{U: 5, V: 7, Weight: 7},
	{U: 6, V: 7, Weight: 10},
	{U: 2, V: 3, Weight: 17},
}

// fakeTable is a hand-written predecessor table; -1 means none.
type fakeTable []int

func (f fakeTable) VertexCount() int { return len(f) }

func (f fakeTable) Predecessor(v int) (int, bool) {
	if f[v] < 0 {
		return 0, false
	}
	return f[v], true
}

func mustRoute(t *testing.T, g *core.Graph, source, target int) *path.Route {
	t.Helper()

	res, err := dijkstra.Dijkstra(g, source)
	require.NoError(t, err)
	route, err := path.Build(g, res, target)
	require.NoError(t, err)

	return route
}

func TestBuild_ReferenceRoute(t *testing.T) {
	g, err := core.FromEdges(8, schoolBus)
	require.NoError(t, err)

	route := mustRoute(t, g, 0, 7)
	require.True(t, route.Reachable)
	require.Equal(t, []int{0, 3, 4, 7}, route.Vertices)
	require.Equal(t, []path.Segment{
		{From: 0, To: 3, Weight: 16},
		{From: 3, To: 4, Weight: 11},
		{From: 4, To: 7, Weight: 23},
	}, route.Segments)
	require.Equal(t, int64(50), route.Total)
	require.NoError(t, route.Err())
}

// TestBuild_SegmentSumEqualsDistance holds for every source/target pair.
func TestBuild_SegmentSumEqualsDistance(t *testing.T) {
	g, err := core.FromEdges(8, schoolBus)
	require.NoError(t, err)

	for s := 0; s < 8; s++ {
		res, err := dijkstra.Dijkstra(g, s)
		require.NoError(t, err)
		for tg := 0; tg < 8; tg++ {
			route, err := path.Build(g, res, tg)
			require.NoError(t, err)

			var sum int64
			for _, seg := range route.Segments {
				sum += seg.Weight
			}
			d, ok := res.Distance(tg)
			require.True(t, ok)
			require.Equal(t, d, sum, "%d→%d", s, tg)
			require.Equal(t, d, route.Total)
			require.Equal(t, s, route.Vertices[0])
			require.Equal(t, tg, route.Vertices[len(route.Vertices)-1])
			require.Len(t, route.Segments, len(route.Vertices)-1)
		}
	}
}

// TestBuild_ParallelRoads reports the road the search actually used.
func TestBuild_ParallelRoads(t *testing.T) {
	g, err := core.FromEdges(3, []core.EdgeSpec{
		{U: 0, V: 1, Weight: 9},
		{U: 0, V: 1, Weight: 2},
		{U: 1, V: 2, Weight: 4},
		{U: 2, V: 1, Weight: 1},
	})
	require.NoError(t, err)

	first, err := g.EdgeWeight(0, 1)
	require.NoError(t, err)
	require.Equal(t, int64(9), first)

	route := mustRoute(t, g, 0, 2)
	require.Equal(t, []path.Segment{
		{From: 0, To: 1, Weight: 2},
		{From: 1, To: 2, Weight: 1},
	}, route.Segments)
	require.Equal(t, int64(3), route.Total)
}

func TestBuild_SourceEqualsTarget(t *testing.T) {
	g, err := core.FromEdges(8, schoolBus)
	require.NoError(t, err)

	route := mustRoute(t, g, 0, 0)
	require.True(t, route.Reachable)
	require.False(t, route.Unreachable())
	require.Equal(t, []int{0}, route.Vertices)
	require.Empty(t, route.Segments)
	require.Zero(t, route.Total)
}

func TestBuild_Unreachable(t *testing.T) {
	g, err := core.FromEdges(4, []core.EdgeSpec{{U: 0, V: 1, Weight: 2}, {U: 2, V: 3, Weight: 2}})
	require.NoError(t, err)

	route := mustRoute(t, g, 0, 3)
	require.True(t, route.Unreachable())
	require.Equal(t, []int{3}, route.Vertices)
	require.Empty(t, route.Segments)
	require.Zero(t, route.Total)
	require.ErrorIs(t, route.Err(), path.ErrUnreachable)
}

func TestBuild_Validation(t *testing.T) {
	g, err := core.FromEdges(8, schoolBus)
	require.NoError(t, err)
	res, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)

	_, err = path.Build(nil, res, 7)
	require.ErrorIs(t, err, path.ErrNilResult)
	_, err = path.Build(g, nil, 7)
	require.ErrorIs(t, err, path.ErrNilResult)
	_, err = path.Build(g, res, 8)
	require.ErrorIs(t, err, core.ErrOutOfRange)
}

func TestReconstruct_Table(t *testing.T) {
	// 2 ← 1 ← 0, 3 unreached
	table := fakeTable{-1, 0, 1, -1}

	got, err := path.Reconstruct(table, 2)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, got)

	got, err = path.Reconstruct(table, 3)
	require.NoError(t, err)
	require.Equal(t, []int{3}, got)

	_, err = path.Reconstruct(table, -1)
	require.ErrorIs(t, err, core.ErrOutOfRange)
	_, err = path.Reconstruct(nil, 0)
	require.ErrorIs(t, err, path.ErrNilResult)
}

func TestReconstruct_CorruptTable(t *testing.T) {
	_, err := path.Reconstruct(fakeTable{1, 2, 0}, 0)
	require.ErrorIs(t, err, path.ErrCorruptTable)

	_, err = path.Reconstruct(fakeTable{-1, 7}, 1)
	require.ErrorIs(t, err, path.ErrCorruptTable)
}
