// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package balanced

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

var _ Tree[int] = (*Filtered[int])(nil)

func TestParseKind(t *testing.T) {
	cases := []struct {
		in   string
		want Kind
	}{
		{"avl", KindAVL},
		{"AVL", KindAVL},
		{"1", KindAVL},
		{"rb", KindRedBlack},
		{" red-black ", KindRedBlack},
		{"redblack", KindRedBlack},
		{"2", KindRedBlack},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseKind(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}

	_, err := ParseKind("splay")
	require.ErrorIs(t, err, ErrUnknownKind)
	require.ErrorContains(t, err, "splay")
}

func TestNewUnknownKind(t *testing.T) {
	tree, err := New[int](Kind(99))
	require.ErrorIs(t, err, ErrUnknownKind)
	require.Nil(t, tree)
}

func TestKindNames(t *testing.T) {
	require.Equal(t, "avl", KindAVL.String())
	require.Equal(t, "red-black", KindRedBlack.String())
	require.Equal(t, "Red-Black Tree", KindRedBlack.Title())
	for _, k := range Kinds() {
		parsed, err := ParseKind(k.String())
		require.NoError(t, err)
		require.Equal(t, k, parsed)
	}
}

// forEachKind runs fn against a fresh tree of every engine.
func forEachKind(t *testing.T, fn func(t *testing.T, tree Tree[int])) {
	for _, kind := range Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			tree, err := New[int](kind)
			require.NoError(t, err)
			fn(t, tree)
		})
	}
}

func TestContractReferenceScenario(t *testing.T) {
	forEachKind(t, func(t *testing.T, tree Tree[int]) {
		for _, key := range []int{50, 30, 70, 20, 40, 60, 80, 10, 25, 35} {
			tree.Insert(key)
		}
		require.Equal(t, []int{10, 20, 25, 30, 35, 40, 50, 60, 70, 80}, tree.InOrder())
		require.Equal(t, 10, tree.Size())

		require.True(t, tree.Remove(20))
		require.True(t, tree.Remove(30))
		require.True(t, tree.Remove(50))

		require.Equal(t, 7, tree.Size())
		require.Equal(t, []int{10, 25, 35, 40, 60, 70, 80}, tree.InOrder())
		require.False(t, tree.Search(20))
		require.NoError(t, tree.Validate())
	})
}

func TestContractSequentialInsert(t *testing.T) {
	forEachKind(t, func(t *testing.T, tree Tree[int]) {
		for i := 1; i <= 200; i++ {
			tree.Insert(i)
		}
		require.True(t, tree.Search(1))
		require.True(t, tree.Search(100))
		require.True(t, tree.Search(200))
		require.LessOrEqual(t, tree.Height(), 15)
		require.NoError(t, tree.Validate())
	})
}

func TestContractRoundTrip(t *testing.T) {
	forEachKind(t, func(t *testing.T, tree Tree[int]) {
		tree.Insert(7)
		require.True(t, tree.Search(7))
		require.True(t, tree.Remove(7))
		require.False(t, tree.Search(7))
		require.False(t, tree.Remove(7))
		require.True(t, tree.IsEmpty())
	})
}

func TestContractEmptyTree(t *testing.T) {
	forEachKind(t, func(t *testing.T, tree Tree[int]) {
		require.True(t, tree.IsEmpty())
		require.False(t, tree.Remove(1))
		require.False(t, tree.Search(1))
		require.Empty(t, tree.InOrder())
		require.NotPanics(t, func() { _ = tree.Visualize() })
		require.NoError(t, tree.Validate())
	})
}

func TestContractRandomised(t *testing.T) {
	forEachKind(t, func(t *testing.T, tree Tree[int]) {
		rng := rand.New(rand.NewSource(1))
		for i := 0; i < 2000; i++ {
			key := rng.Intn(300)
			if rng.Intn(3) == 0 {
				tree.Remove(key)
			} else {
				before := tree.Size()
				present := tree.Search(key)
				tree.Insert(key)
				if present {
					require.Equal(t, before, tree.Size(), "duplicate insert changed size")
				}
			}
			keys := tree.InOrder()
			require.Len(t, keys, tree.Size())
			require.True(t, slices.IsSorted(keys))
		}
		require.NoError(t, tree.Validate())
	})
}
