package dijkstra

import (
	"container/heap"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNodePQ_PopsInDistanceOrderWithDuplicates(t *testing.T) {
	pq := make(nodePQ, 0)
	heap.Init(&pq)
	for _, it := range []nodeItem{{3, 9}, {1, 4}, {3, 2}, {2, 4}, {0, 0}, {1, 7}} {
		it := it
		heap.Push(&pq, &it)
	}

	var got []nodeItem
	for pq.Len() > 0 {
		got = append(got, *heap.Pop(&pq).(*nodeItem))
	}

	require.Equal(t, []nodeItem{{0, 0}, {3, 2}, {1, 4}, {2, 4}, {1, 7}, {3, 9}}, got)
}

func TestSaturatingAdd(t *testing.T) {
	require.Equal(t, int64(7), saturatingAdd(3, 4))
	require.Equal(t, MaxDistance, saturatingAdd(MaxDistance, 1))
	require.Equal(t, MaxDistance, saturatingAdd(math.MaxInt64/2+1, math.MaxInt64/2+1))
	require.Equal(t, MaxDistance, saturatingAdd(0, math.MaxInt64))
}
