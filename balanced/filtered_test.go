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
	"testing"

	"github.com/cybrota/bbst/avl"
	"github.com/stretchr/testify/require"
)

func TestFilteredNeverHidesPresentKeys(t *testing.T) {
	forEachKind(t, func(t *testing.T, tree Tree[int]) {
		f := NewFiltered(tree, 1000, 0.01)
		for i := 0; i < 500; i += 2 {
			f.Insert(i)
		}
		for i := 0; i < 500; i += 2 {
			require.True(t, f.Search(i), "key %d", i)
		}
		for i := 1; i < 500; i += 2 {
			require.False(t, f.Search(i), "key %d", i)
		}
		// 250 absent lookups at a 1% rate: most of them never reach the tree
		require.Greater(t, f.Rejected(), 200)
	})
}

func TestFilteredRemoveFallsThrough(t *testing.T) {
	f := NewFiltered[int](avl.New[int](), 100, 0.01)
	f.Insert(42)
	require.True(t, f.Search(42))

	require.True(t, f.Remove(42))
	require.False(t, f.Search(42))
	require.Zero(t, f.Rejected(), "stale filter bits must defer to the tree")

	f.Reset()
	require.False(t, f.Search(42))
	require.Equal(t, 1, f.Rejected())
}

func TestFilteredSeedsFromExistingKeys(t *testing.T) {
	tree := avl.New[string]()
	tree.Insert("apple")
	tree.Insert("banana")

	f := NewFiltered[string](tree, 0, 0)
	require.True(t, f.Search("apple"))
	require.True(t, f.Search("banana"))
	require.Equal(t, 2, f.Size())
	require.NoError(t, f.Validate())
}

func TestFilterKeyNormalisesZero(t *testing.T) {
	negZero := 0.0
	negZero = -negZero
	require.Equal(t, filterKey(0.0), filterKey(negZero))

	f := NewFiltered[float64](avl.New[float64](), 10, 0.01)
	f.Insert(0.0)
	require.True(t, f.Search(negZero))
}
