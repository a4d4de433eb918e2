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
	"cmp"
	"fmt"

	"github.com/willf/bloom"
)

const (
	DefaultFilterCapacity = 10000
	DefaultFilterFPRate   = 0.01
)

// Filtered puts a Bloom filter in front of Search so that most lookups of
// absent keys finish without walking the tree.
//
// A Bloom filter cannot forget keys, so Remove leaves the bits in place and
// later lookups of that key fall through to the tree. Reset rebuilds the
// filter from the current keys.
type Filtered[K cmp.Ordered] struct {
	Tree[K]

	filter   *bloom.BloomFilter
	rejected int
}

// NewFiltered wraps tree with a filter sized for capacity keys at the given
// false positive rate. Keys already in tree are added to the filter.
func NewFiltered[K cmp.Ordered](tree Tree[K], capacity uint, fpRate float64) *Filtered[K] {
	if capacity == 0 {
		capacity = DefaultFilterCapacity
	}
	if fpRate <= 0 || fpRate >= 1 {
		fpRate = DefaultFilterFPRate
	}
	f := &Filtered[K]{
		Tree:   tree,
		filter: bloom.NewWithEstimates(capacity, fpRate),
	}
	f.Reset()
	return f
}

// Insert adds key to the tree and the filter.
func (f *Filtered[K]) Insert(key K) {
	f.Tree.Insert(key)
	f.filter.AddString(filterKey(key))
}

// Search consults the filter first and only descends the tree when the key
// may be present.
func (f *Filtered[K]) Search(key K) bool {
	if !f.filter.TestString(filterKey(key)) {
		f.rejected++
		return false
	}
	return f.Tree.Search(key)
}

// Rejected returns how many lookups the filter answered on its own.
func (f *Filtered[K]) Rejected() int {
	return f.rejected
}

// Reset clears the filter and refills it from the keys in the tree.
func (f *Filtered[K]) Reset() {
	f.filter.ClearAll()
	for _, key := range f.Tree.InOrder() {
		f.filter.AddString(filterKey(key))
	}
}

// filterKey maps keys that compare equal to the same text; -0.0 and 0.0
// print differently.
func filterKey[K cmp.Ordered](key K) string {
	var zero K
	if key == zero {
		key = zero
	}
	return fmt.Sprint(key)
}
