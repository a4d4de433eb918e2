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

// Package avl implements a height-balanced binary search tree over a set of
// unique ordered keys.
package avl

import (
	"cmp"
	"fmt"
)

// Tree is an AVL tree. For every node the heights of the two subtrees differ
// by at most one, so the tree height stays within 1.44*log2(n+2).
//
// Inserting a key that is already present is a no-op.
//
// This implementation is not safe for concurrent use by multiple goroutines. If
// multiple goroutines access a tree concurrently, and at least one of them
// modifies the tree, it must be synchronized externally.
type Tree[K cmp.Ordered] struct {
	root *Node[K]
	size int
}

// New returns an empty AVL tree. The zero value is ready to use as well.
func New[K cmp.Ordered]() *Tree[K] {
	return &Tree[K]{}
}

// Root returns the root node, nil for an empty tree. Callers must not modify
// the returned nodes.
func (tree *Tree[K]) Root() *Node[K] {
	return tree.root
}

// Insert adds key to the tree.
func (tree *Tree[K]) Insert(key K) {
	var inserted bool
	tree.root, inserted = insertRecursive(tree.root, key)
	if inserted {
		tree.size++
	}
}

func insertRecursive[K cmp.Ordered](node *Node[K], key K) (*Node[K], bool) {
	if node == nil {
		return &Node[K]{Key: key, Height: 1}, true
	}

	var inserted bool
	switch c := cmp.Compare(key, node.Key); {
	case c < 0:
		node.Left, inserted = insertRecursive(node.Left, key)
	case c > 0:
		node.Right, inserted = insertRecursive(node.Right, key)
	default:
		// duplicate
		return node, false
	}
	if !inserted {
		return node, false
	}

	updateHeight(node)

	// Only the lowest unbalanced ancestor rotates. The rotation gives the
	// subtree back its old height, so everything above sees no change.
	balance := balanceFactor(node)
	if balance > 1 {
		if cmp.Less(key, node.Left.Key) {
			return rotateRight(node), true
		}
		// Left-Right case
		node.Left = rotateLeft(node.Left)
		return rotateRight(node), true
	}
	if balance < -1 {
		if cmp.Less(node.Right.Key, key) {
			return rotateLeft(node), true
		}
		// Right-Left case
		node.Right = rotateRight(node.Right)
		return rotateLeft(node), true
	}

	return node, true
}

// Remove deletes key from the tree. It returns false when the key is absent,
// in which case the tree is left untouched.
func (tree *Tree[K]) Remove(key K) bool {
	var removed bool
	tree.root, removed = deleteRecursive(tree.root, key)
	if removed {
		tree.size--
	}
	return removed
}

func deleteRecursive[K cmp.Ordered](node *Node[K], key K) (*Node[K], bool) {
	if node == nil {
		return nil, false
	}

	var removed bool
	switch c := cmp.Compare(key, node.Key); {
	case c < 0:
		node.Left, removed = deleteRecursive(node.Left, key)
	case c > 0:
		node.Right, removed = deleteRecursive(node.Right, key)
	default:
		if node.Left == nil {
			return node.Right, true
		}
		if node.Right == nil {
			return node.Left, true
		}
		// Two children: pull the in-order successor up and delete it from
		// the right subtree, where it has no left child.
		successor := findMin(node.Right)
		node.Key = successor.Key
		node.Right, _ = deleteRecursive(node.Right, successor.Key)
		removed = true
	}
	if !removed {
		return node, false
	}

	// Unlike insertion every ancestor may need a rotation.
	updateHeight(node)
	return rebalance(node), true
}

// Search reports whether key is present.
func (tree *Tree[K]) Search(key K) bool {
	node := tree.root
	for node != nil {
		switch c := cmp.Compare(key, node.Key); {
		case c < 0:
			node = node.Left
		case c > 0:
			node = node.Right
		default:
			return true
		}
	}
	return false
}

// InOrder returns all keys in ascending order. The slice is freshly
// allocated on every call.
func (tree *Tree[K]) InOrder() []K {
	keys := make([]K, 0, tree.size)
	stack := make([]*Node[K], 0, height(tree.root))
	node := tree.root
	for node != nil || len(stack) > 0 {
		for node != nil {
			stack = append(stack, node)
			node = node.Left
		}
		node = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		keys = append(keys, node.Key)
		node = node.Right
	}
	return keys
}

// Size returns the number of keys in the tree.
func (tree *Tree[K]) Size() int {
	return tree.size
}

// IsEmpty reports whether the tree holds no keys.
func (tree *Tree[K]) IsEmpty() bool {
	return tree.root == nil
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (tree *Tree[K]) Height() int {
	return height(tree.root)
}

// Min returns the smallest key.
func (tree *Tree[K]) Min() (K, bool) {
	if tree.root == nil {
		var zero K
		return zero, false
	}
	return findMin(tree.root).Key, true
}

// Max returns the largest key.
func (tree *Tree[K]) Max() (K, bool) {
	if tree.root == nil {
		var zero K
		return zero, false
	}
	return findMax(tree.root).Key, true
}

// Validate walks the whole tree and returns an error describing the first
// broken invariant: key order, stored heights, balance factors or the size
// counter.
func (tree *Tree[K]) Validate() error {
	count, _, err := validate(tree.root, nil, nil)
	if err != nil {
		return err
	}
	if count != tree.size {
		return fmt.Errorf("size counter is %d, tree holds %d keys", tree.size, count)
	}
	return nil
}

func validate[K cmp.Ordered](node *Node[K], low, high *K) (count, h int, err error) {
	if node == nil {
		return 0, 0, nil
	}
	if low != nil && cmp.Compare(node.Key, *low) <= 0 {
		return 0, 0, fmt.Errorf("key %v is not greater than %v", node.Key, *low)
	}
	if high != nil && cmp.Compare(node.Key, *high) >= 0 {
		return 0, 0, fmt.Errorf("key %v is not less than %v", node.Key, *high)
	}

	key := node.Key
	leftCount, leftHeight, err := validate(node.Left, low, &key)
	if err != nil {
		return 0, 0, err
	}
	rightCount, rightHeight, err := validate(node.Right, &key, high)
	if err != nil {
		return 0, 0, err
	}

	h = max(leftHeight, rightHeight) + 1
	if node.Height != h {
		return 0, 0, fmt.Errorf("node %v stores height %d, actual %d", node.Key, node.Height, h)
	}
	if bf := leftHeight - rightHeight; bf < -1 || bf > 1 {
		return 0, 0, fmt.Errorf("node %v is out of balance (factor %d)", node.Key, bf)
	}
	return leftCount + rightCount + 1, h, nil
}
