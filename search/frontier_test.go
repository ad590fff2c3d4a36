package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfinder/search"
)

// drain pops every entry and returns them in pop order.
func drain(t *testing.T, f search.Frontier) []int {
	t.Helper()
	var out []int
	for !f.IsEmpty() {
		id, err := f.Pop()
		require.NoError(t, err)
		out = append(out, id)
	}
	return out
}

func TestFrontier_Disciplines(t *testing.T) {
	cases := []struct {
		name string
		f    search.Frontier
		want []int
	}{
		{"Stack", search.NewStackFrontier(), []int{4, 3, 2, 1, 0}},
		{"Queue", search.NewQueueFrontier(), []int{0, 1, 2, 3, 4}},
		// priorities 3,1,2,1,0: lowest first, ties in insertion order
		{"Priority", search.NewPriorityFrontier(), []int{4, 1, 3, 2, 0}},
	}
	prio := []float64{3, 1, 2, 1, 0}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for id, p := range prio {
				tc.f.Add(id, p)
			}
			assert.Equal(t, len(prio), tc.f.Len())
			assert.Equal(t, tc.want, drain(t, tc.f))
			assert.True(t, tc.f.IsEmpty())
		})
	}
}

func TestFrontier_EmptyPop(t *testing.T) {
	for _, f := range []search.Frontier{
		search.NewStackFrontier(),
		search.NewQueueFrontier(),
		search.NewPriorityFrontier(),
	} {
		assert.True(t, f.IsEmpty())
		_, err := f.Pop()
		assert.ErrorIs(t, err, search.ErrEmptyFrontier)
	}
}

// TestQueueFrontier_Compaction interleaves pushes and pops past the
// compaction threshold and checks FIFO order survives.
func TestQueueFrontier_Compaction(t *testing.T) {
	f := search.NewQueueFrontier()
	next, want := 0, 0
	for round := 0; round < 50; round++ {
		for i := 0; i < 7; i++ {
			f.Add(next, 0)
			next++
		}
		for i := 0; i < 5; i++ {
			id, err := f.Pop()
			require.NoError(t, err)
			require.Equal(t, want, id)
			want++
		}
	}
	assert.Equal(t, next-want, f.Len())
	for _, id := range drain(t, f) {
		require.Equal(t, want, id)
		want++
	}
}

func TestPriorityFrontier_StableTies(t *testing.T) {
	f := search.NewPriorityFrontier()
	for id := 0; id < 100; id++ {
		f.Add(id, 7)
	}
	got := drain(t, f)
	for i, id := range got {
		require.Equal(t, i, id)
	}
}
