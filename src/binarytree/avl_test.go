package binarytree_test

import (
	"bytes"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/Nigel2392/avltree/src/binarytree"
	"github.com/Nigel2392/avltree/src/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shape lists every node as key:height, parent-first.
func shape(n *binarytree.AVLNode[int]) []string {
	if n == nil {
		return nil
	}
	var s = []string{fmt.Sprintf("%d:%d", n.Key, n.Height)}
	s = append(s, shape(n.Left)...)
	return append(s, shape(n.Right)...)
}

func TestAVLSingleAndDoubleRotations(t *testing.T) {
	var cases = []struct {
		name string
		keys []int
		want []int
	}{
		{"RR", []int{1, 2, 3}, []int{2, 1, 3}},
		{"LL", []int{3, 2, 1}, []int{2, 1, 3}},
		{"RL", []int{1, 3, 2}, []int{2, 1, 3}},
		{"LR", []int{3, 1, 2}, []int{2, 1, 3}},
		{"RR,RR", []int{10, 20, 30, 40, 50}, []int{20, 10, 40, 30, 50}},
		{"RR,RL", []int{10, 20, 30, 50, 40}, []int{20, 10, 40, 30, 50}},
		{"LL,LL", []int{30, 20, 10, 5, 1}, []int{20, 5, 1, 10, 30}},
		{"LL,LR", []int{30, 20, 10, 1, 5}, []int{20, 5, 1, 10, 30}},
		{"LL,RR", []int{5, 4, 6, 3, 7, 2, 8}, []int{5, 3, 2, 4, 7, 6, 8}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var tree = binarytree.NewAVL(c.keys...)
			assert.Equal(t, c.want, tree.PreOrder())
			require.NoError(t, tree.Validate())
			assert.Nil(t, tree.Root().Parent)
		})
	}
}

func TestAVLPreOrderString(t *testing.T) {
	assert.Equal(t, "AVL pre-order { 2, 1, 3 }", binarytree.NewAVL(1, 2, 3).PreOrderString())
	assert.Equal(t, "AVL pre-order { B, A, D, C, E }", binarytree.NewAVL("A", "B", "C", "D", "E").PreOrderString())
	assert.Equal(t, "AVL pre-order {  }", binarytree.NewAVL[int]().PreOrderString())
}

func TestAVLRemoveRotations(t *testing.T) {
	var cases = []struct {
		name   string
		keys   []int
		remove int
		want   []int
	}{
		{"RR", []int{50, 40, 60, 30, 70, 20, 80, 45}, 20, []int{50, 40, 30, 45, 70, 60, 80}},
		{"LL", []int{50, 40, 60, 30, 70, 20, 80, 15}, 40, []int{50, 20, 15, 30, 70, 60, 80}},
		{"RL", []int{50, 40, 60, 30, 70, 20, 80, 35}, 20, []int{50, 35, 30, 40, 70, 60, 80}},
		{"LR", []int{50, 40, 60, 30, 70, 20, 80, 25}, 40, []int{50, 25, 20, 30, 70, 60, 80}},
		{"root, right child successor", []int{1, 2, 3}, 2, []int{3, 1}},
		{"leaf", []int{1, 2, 3}, 1, []int{2, 3}},
		{"one child", []int{50, 40, 60, 30, 70, 20, 80, 45}, 40, []int{50, 30, 20, 45, 70, 60, 80}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var tree = binarytree.NewAVL(c.keys...)
			require.True(t, tree.Remove(c.remove))
			assert.Equal(t, c.want, tree.PreOrder())
			assert.False(t, tree.Contains(c.remove))
			assert.Equal(t, len(c.keys)-1, tree.Len())
			require.NoError(t, tree.Validate())
		})
	}
}

func TestAVLRemoveMissing(t *testing.T) {
	var tree = binarytree.NewAVL(50, 40, 60)
	var before = shape(tree.Root())

	assert.False(t, tree.Remove(0))
	assert.Equal(t, before, shape(tree.Root()))
	assert.Equal(t, 3, tree.Len())

	assert.False(t, binarytree.NewAVL[int]().Remove(1))
}

func TestAVLRemoveRootRepeatedly(t *testing.T) {
	var keys []int
	for k := 0; k < 34; k += 3 {
		keys = append(keys, k)
	}

	var tree = binarytree.NewAVL(keys...)
	for tree.Len() > 2 {
		var root = tree.Root().Key
		require.True(t, tree.Remove(root))
		require.NoError(t, tree.Validate(), "after removing root %d", root)
		require.False(t, tree.Contains(root))
	}
	assert.Equal(t, 2, len(tree.InOrder()))
}

func TestAVLRemoveAscending(t *testing.T) {
	var keys []int
	for k := -9; k < 16; k += 2 {
		keys = append(keys, k)
	}

	var tree = binarytree.NewAVL(keys...)
	for i, k := range keys {
		require.True(t, tree.Remove(k))
		require.NoError(t, tree.Validate())
		assert.Equal(t, keys[i+1:], tree.InOrder())
	}
	assert.True(t, tree.IsEmpty())
	assert.Nil(t, tree.Root())
}

func TestAVLDuplicateAddIsNoop(t *testing.T) {
	var keys = []int{50, 40, 60, 30, 70, 20, 80, 45}
	var once = binarytree.NewAVL(keys...)
	var twice = binarytree.NewAVL(keys...)
	for _, k := range keys {
		assert.False(t, twice.Add(k))
	}

	assert.Equal(t, shape(once.Root()), shape(twice.Root()))
	assert.Equal(t, once.Len(), twice.Len())

	var ones = binarytree.NewAVL(1, 1, 1, 1)
	assert.Equal(t, []int{1}, ones.PreOrder())
	assert.Equal(t, 1, ones.Len())
}

func TestAVLRoundTrip(t *testing.T) {
	var tree = binarytree.NewAVL[int]()
	for k := 0; k < 100; k++ {
		require.True(t, tree.Add(k*7%101))
		require.True(t, tree.Contains(k*7%101))
	}
	for k := 0; k < 100; k++ {
		require.True(t, tree.Remove(k*7%101))
		require.False(t, tree.Contains(k*7%101))
	}
	assert.True(t, tree.IsEmpty())
}

func TestAVLHeightBound(t *testing.T) {
	var tree = binarytree.NewAVL[int]()
	for n := 1; n <= 4096; n++ {
		tree.Add(n)
		if n&(n-1) == 0 {
			var bound = 1.44 * math.Log2(float64(n+2))
			assert.LessOrEqual(t, float64(tree.Height()), bound, "n=%d", n)
		}
	}
	require.NoError(t, tree.Validate())
}

func TestAVLRandomStress(t *testing.T) {
	var rng = rand.New(rand.NewSource(261))
	for round := 0; round < 50; round++ {
		var seen = make(map[int]bool)
		var keys []int
		for i := 0; i < 900; i++ {
			var k = rng.Intn(20000) + 1
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}

		var tree = binarytree.NewAVL(keys...)
		require.NoError(t, tree.Validate(), "round %d after add", round)
		require.Equal(t, len(keys), tree.Len())

		var remaining []int
		for i, k := range keys {
			if i%2 == 0 {
				require.True(t, tree.Remove(k))
			} else {
				remaining = append(remaining, k)
			}
		}
		require.NoError(t, tree.Validate(), "round %d after remove", round)

		sort.Ints(remaining)
		require.Equal(t, remaining, tree.InOrder())
	}
}

func TestAVLInterleavedAddRemove(t *testing.T) {
	var rng = rand.New(rand.NewSource(77))
	var tree = binarytree.NewAVL[int]()
	var present = make(map[int]bool)

	for i := 0; i < 5000; i++ {
		var k = rng.Intn(300)
		if rng.Intn(5) < 3 {
			require.Equal(t, !present[k], tree.Add(k), "step %d: add %d", i, k)
			present[k] = true
		} else {
			require.Equal(t, present[k], tree.Remove(k), "step %d: remove %d", i, k)
			delete(present, k)
		}
		require.NoError(t, tree.Validate(), "step %d", i)
		require.Equal(t, len(present), tree.Len(), "step %d", i)
		if root := tree.Root(); root != nil {
			require.Nil(t, root.Parent, "step %d", i)
		}
	}

	var want = make([]int, 0, len(present))
	for k := range present {
		want = append(want, k)
	}
	sort.Ints(want)
	assert.Equal(t, want, tree.InOrder())
}

func TestAVLQueries(t *testing.T) {
	var empty = binarytree.NewAVL[int]()
	var _, ok = empty.FindMin()
	assert.False(t, ok)
	_, ok = empty.FindMax()
	assert.False(t, ok)
	assert.False(t, empty.Contains(0))
	assert.Empty(t, empty.InOrder())
	assert.Equal(t, -1, empty.Height())
	assert.True(t, empty.IsEmpty())
	assert.True(t, empty.IsValid())

	var tree = binarytree.NewAVL(10, 20, 5, 15, 17, 7, 12)
	assert.Equal(t, []int{5, 7, 10, 12, 15, 17, 20}, tree.InOrder())

	lo, ok := tree.FindMin()
	assert.True(t, ok)
	assert.Equal(t, 5, lo)
	hi, ok := tree.FindMax()
	assert.True(t, ok)
	assert.Equal(t, 20, hi)

	assert.True(t, tree.Contains(15))
	assert.False(t, tree.Contains(-10))

	var visited []int
	tree.Traverse(func(k int) {
		visited = append(visited, k)
	})
	assert.Equal(t, tree.InOrder(), visited)

	tree.Clear()
	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Len())
	assert.Nil(t, tree.Root())
}

func TestAVLString(t *testing.T) {
	assert.Equal(t, " 2\n1 3\n", binarytree.NewAVL(1, 2, 3).String())
	assert.Equal(t, "", binarytree.NewAVL[int]().String())

	// multi-byte keys take one column each
	assert.Equal(t, " é\na ü\n", binarytree.NewAVL("a", "é", "ü").String())
}

func TestAVLLogsRotations(t *testing.T) {
	logger.DisableColor(true)

	var b bytes.Buffer
	var tree = binarytree.NewAVL[int]()
	tree.SetLogger(logger.Newlogger(logger.DEBUG, &b))

	tree.Add(1)
	tree.Add(2)
	assert.NotContains(t, b.String(), "rotating")

	tree.Add(3)
	assert.Contains(t, b.String(), "rotating 1 left (balance 2)")

	b.Reset()
	tree.Add(5)
	tree.Add(4)
	assert.Contains(t, b.String(), "rotating 5 right before left rotation at 3")
	require.NoError(t, tree.Validate())
}
