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

// Package balanced defines the operation set shared by the balanced tree
// engines and selects an engine at construction time.
package balanced

import (
	"cmp"
	"errors"
	"fmt"
	"strings"

	"github.com/cybrota/bbst/avl"
	"github.com/cybrota/bbst/rbtree"
)

// Tree is an ordered set of unique keys kept balanced by the engine behind it.
type Tree[K cmp.Ordered] interface {
	// Insert adds key. A key that is already present is ignored.
	Insert(key K)
	// Remove deletes key and reports whether it was present.
	Remove(key K) bool
	// Search reports whether key is present.
	Search(key K) bool
	// InOrder returns the keys in ascending order.
	InOrder() []K
	Size() int
	IsEmpty() bool
	Height() int
	// Visualize renders the node structure as text.
	Visualize() string
	// Validate returns the first broken structural invariant, if any.
	Validate() error
}

var (
	_ Tree[int] = (*avl.Tree[int])(nil)
	_ Tree[int] = (*rbtree.Tree[int])(nil)
)

// Kind selects a tree engine.
type Kind int

const (
	KindAVL Kind = iota + 1
	KindRedBlack
)

var ErrUnknownKind = errors.New("unknown tree kind")

// Kinds lists every available engine.
func Kinds() []Kind {
	return []Kind{KindAVL, KindRedBlack}
}

func (k Kind) String() string {
	switch k {
	case KindAVL:
		return "avl"
	case KindRedBlack:
		return "red-black"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Title is the human readable engine name.
func (k Kind) Title() string {
	switch k {
	case KindAVL:
		return "AVL Tree"
	case KindRedBlack:
		return "Red-Black Tree"
	}
	return "Unknown Tree"
}

// ParseKind accepts the engine names used on the command line and in the
// settings file, plus the menu numbers 1 and 2.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "avl", "1":
		return KindAVL, nil
	case "rb", "redblack", "red-black", "rbtree", "2":
		return KindRedBlack, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// New returns an empty tree backed by the engine kind selects.
func New[K cmp.Ordered](kind Kind) (Tree[K], error) {
	switch kind {
	case KindAVL:
		return avl.New[K](), nil
	case KindRedBlack:
		return rbtree.New[K](), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
}
