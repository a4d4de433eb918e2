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

package avl

import "cmp"

// Node is a single entry of the tree. Height counts the nodes on the longest
// downward path, so a leaf has height 1.
type Node[K cmp.Ordered] struct {
	Key    K
	Height int
	Left   *Node[K]
	Right  *Node[K]
}

func height[K cmp.Ordered](node *Node[K]) int {
	if node == nil {
		return 0
	}
	return node.Height
}

func updateHeight[K cmp.Ordered](node *Node[K]) {
	node.Height = max(height(node.Left), height(node.Right)) + 1
}

func balanceFactor[K cmp.Ordered](node *Node[K]) int {
	if node == nil {
		return 0
	}
	return height(node.Left) - height(node.Right)
}

func rotateLeft[K cmp.Ordered](node *Node[K]) *Node[K] {
	// Nothing to rotate
	if node == nil || node.Right == nil {
		return node
	}

	pivot := node.Right
	node.Right = pivot.Left
	pivot.Left = node

	updateHeight(node)
	updateHeight(pivot)

	return pivot
}

func rotateRight[K cmp.Ordered](node *Node[K]) *Node[K] {
	// Nothing to rotate
	if node == nil || node.Left == nil {
		return node
	}

	pivot := node.Left
	node.Left = pivot.Right
	pivot.Right = node

	updateHeight(node)
	updateHeight(pivot)

	return pivot
}

// rebalance restores the balance factor of node after a deletion below it.
// The case is picked from the balance of the taller child.
func rebalance[K cmp.Ordered](node *Node[K]) *Node[K] {
	balance := balanceFactor(node)

	// Left-heavy
	if balance > 1 {
		if balanceFactor(node.Left) >= 0 {
			return rotateRight(node)
		}
		node.Left = rotateLeft(node.Left)
		return rotateRight(node)
	}

	// Right-heavy
	if balance < -1 {
		if balanceFactor(node.Right) <= 0 {
			return rotateLeft(node)
		}
		node.Right = rotateRight(node.Right)
		return rotateLeft(node)
	}

	return node
}

func findMin[K cmp.Ordered](node *Node[K]) *Node[K] {
	for node.Left != nil {
		node = node.Left
	}
	return node
}

func findMax[K cmp.Ordered](node *Node[K]) *Node[K] {
	for node.Right != nil {
		node = node.Right
	}
	return node
}
