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

package rbtree

import (
	"cmp"
	"math"
)

// Color of a node.
type Color uint8

const (
	// Black is the zero value so the sentinel slot is black from the start.
	Black Color = iota
	Red
)

func (c Color) String() string {
	if c == Red {
		return "RED"
	}
	return "BLACK"
}

// nodeID indexes the node arena. Slot 0 is the shared NIL sentinel: it stands
// for every absent child and for the parent of the root.
type nodeID uint32

const nilNode nodeID = 0

type node[K cmp.Ordered] struct {
	key                 K
	color               Color
	left, right, parent nodeID
}

// alloc stores a fresh red node for key and returns its slot. Released slots
// are reused before the arena grows.
func (tree *Tree[K]) alloc(key K) nodeID {
	if len(tree.nodes) == 0 {
		// zero is reserved
		tree.nodes = append(tree.nodes, node[K]{color: Black})
	}

	n := node[K]{key: key, color: Red}
	if last := len(tree.free) - 1; last >= 0 {
		id := tree.free[last]
		tree.free = tree.free[:last]
		tree.nodes[id] = n
		return id
	}

	if uint64(len(tree.nodes)) > math.MaxUint32 {
		panic("rbtree: node arena is full")
	}
	tree.nodes = append(tree.nodes, n)
	return nodeID(len(tree.nodes) - 1)
}

func (tree *Tree[K]) release(id nodeID) {
	if id == nilNode {
		panic("rbtree: the sentinel cannot be released")
	}
	tree.nodes[id] = node[K]{}
	tree.free = append(tree.free, id)
}

// rotateLeft moves x down to the left and its right child y into its place.
//
//	  X             Y
//	A   Y   =>    X   C
//	   B C       A B
func (tree *Tree[K]) rotateLeft(x nodeID) {
	nd := tree.nodes
	y := nd[x].right
	if x == nilNode || y == nilNode {
		return
	}

	nd[x].right = nd[y].left
	if nd[y].left != nilNode {
		nd[nd[y].left].parent = x
	}

	nd[y].parent = nd[x].parent
	switch p := nd[x].parent; {
	case p == nilNode:
		tree.root = y
	case x == nd[p].left:
		nd[p].left = y
	default:
		nd[p].right = y
	}

	nd[y].left = x
	nd[x].parent = y
}

// rotateRight is the mirror of rotateLeft.
//
//	    Y           X
//	  X   C  =>   A   Y
//	 A B             B C
func (tree *Tree[K]) rotateRight(y nodeID) {
	nd := tree.nodes
	x := nd[y].left
	if y == nilNode || x == nilNode {
		return
	}

	nd[y].left = nd[x].right
	if nd[x].right != nilNode {
		nd[nd[x].right].parent = y
	}

	nd[x].parent = nd[y].parent
	switch p := nd[y].parent; {
	case p == nilNode:
		tree.root = x
	case y == nd[p].right:
		nd[p].right = x
	default:
		nd[p].left = x
	}

	nd[x].right = y
	nd[y].parent = x
}

// transplant puts the subtree rooted at v where u used to hang. v may be the
// sentinel, whose parent link is then set so the delete fixup can climb.
func (tree *Tree[K]) transplant(u, v nodeID) {
	nd := tree.nodes
	switch p := nd[u].parent; {
	case p == nilNode:
		tree.root = v
	case u == nd[p].left:
		nd[p].left = v
	default:
		nd[p].right = v
	}
	nd[v].parent = nd[u].parent
}

func (tree *Tree[K]) minimum(x nodeID) nodeID {
	for tree.nodes[x].left != nilNode {
		x = tree.nodes[x].left
	}
	return x
}

func (tree *Tree[K]) maximum(x nodeID) nodeID {
	for tree.nodes[x].right != nilNode {
		x = tree.nodes[x].right
	}
	return x
}
