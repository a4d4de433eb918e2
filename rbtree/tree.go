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

// Package rbtree implements a red-black tree over a set of unique ordered
// keys.
//
// Nodes live in a slice and refer to each other by index, with index 0 acting
// as the black NIL sentinel. Parent links are plain indices, so the tree holds
// no pointer cycles.
package rbtree

import (
	"cmp"
)

// Tree is a red-black tree:
//
//  1. every node is red or black
//  2. the root is black
//  3. NIL leaves are black
//  4. a red node has only black children
//  5. every path from a node down to a NIL passes the same number of black nodes
//
// Inserting a key that is already present is a no-op.
//
// This implementation is not safe for concurrent use by multiple goroutines. If
// multiple goroutines access a tree concurrently, and at least one of them
// modifies the tree, it must be synchronized externally.
type Tree[K cmp.Ordered] struct {
	nodes []node[K]
	free  []nodeID
	root  nodeID
	size  int
}

// New returns an empty red-black tree. The zero value is ready to use as well.
func New[K cmp.Ordered]() *Tree[K] {
	return &Tree[K]{nodes: []node[K]{{color: Black}}}
}

// Insert adds key to the tree.
func (tree *Tree[K]) Insert(key K) {
	parent, cur := nilNode, tree.root
	c := 0
	for cur != nilNode {
		parent = cur
		c = cmp.Compare(key, tree.nodes[cur].key)
		switch {
		case c < 0:
			cur = tree.nodes[cur].left
		case c > 0:
			cur = tree.nodes[cur].right
		default:
			// duplicate
			return
		}
	}

	// alloc may grow the arena, so no slot is held across it.
	z := tree.alloc(key)
	nd := tree.nodes
	nd[z].parent = parent
	switch {
	case parent == nilNode:
		tree.root = z
	case c < 0:
		nd[parent].left = z
	default:
		nd[parent].right = z
	}
	tree.size++

	tree.insertFixup(z)
}

func (tree *Tree[K]) insertFixup(z nodeID) {
	nd := tree.nodes
	for nd[nd[z].parent].color == Red {
		p := nd[z].parent
		g := nd[p].parent
		if p == nd[g].left {
			uncle := nd[g].right
			if nd[uncle].color == Red {
				nd[p].color = Black
				nd[uncle].color = Black
				nd[g].color = Red
				z = g
				continue
			}
			if z == nd[p].right {
				// inner grandchild: turn it into the outer case
				z = p
				tree.rotateLeft(z)
				p = nd[z].parent
			}
			nd[p].color = Black
			nd[g].color = Red
			tree.rotateRight(g)
		} else {
			uncle := nd[g].left
			if nd[uncle].color == Red {
				nd[p].color = Black
				nd[uncle].color = Black
				nd[g].color = Red
				z = g
				continue
			}
			if z == nd[p].left {
				z = p
				tree.rotateRight(z)
				p = nd[z].parent
			}
			nd[p].color = Black
			nd[g].color = Red
			tree.rotateLeft(g)
		}
	}
	nd[tree.root].color = Black
}

// Remove deletes key from the tree. It returns false when the key is absent,
// in which case the tree is left untouched.
func (tree *Tree[K]) Remove(key K) bool {
	z := tree.find(key)
	if z == nilNode {
		return false
	}

	nd := tree.nodes
	if nd[z].left != nilNode && nd[z].right != nilNode {
		// Two children: take over the successor's key and unlink the
		// successor instead. It has no left child.
		y := tree.minimum(nd[z].right)
		nd[z].key = nd[y].key
		z = y
	}

	x := nd[z].left
	if x == nilNode {
		x = nd[z].right
	}
	tree.transplant(z, x)

	// Splicing out a black node leaves the paths through x one black short.
	if nd[z].color == Black {
		tree.removeFixup(x)
	}

	tree.release(z)
	tree.size--
	return true
}

func (tree *Tree[K]) removeFixup(x nodeID) {
	nd := tree.nodes
	for x != tree.root && nd[x].color == Black {
		p := nd[x].parent
		if x == nd[p].left {
			w := nd[p].right
			if nd[w].color == Red {
				nd[w].color = Black
				nd[p].color = Red
				tree.rotateLeft(p)
				w = nd[p].right
			}
			if nd[nd[w].left].color == Black && nd[nd[w].right].color == Black {
				nd[w].color = Red
				x = p
				continue
			}
			if nd[nd[w].right].color == Black {
				nd[nd[w].left].color = Black
				nd[w].color = Red
				tree.rotateRight(w)
				w = nd[p].right
			}
			nd[w].color = nd[p].color
			nd[p].color = Black
			nd[nd[w].right].color = Black
			tree.rotateLeft(p)
			x = tree.root
		} else {
			w := nd[p].left
			if nd[w].color == Red {
				nd[w].color = Black
				nd[p].color = Red
				tree.rotateRight(p)
				w = nd[p].left
			}
			if nd[nd[w].right].color == Black && nd[nd[w].left].color == Black {
				nd[w].color = Red
				x = p
				continue
			}
			if nd[nd[w].left].color == Black {
				nd[nd[w].right].color = Black
				nd[w].color = Red
				tree.rotateLeft(w)
				w = nd[p].left
			}
			nd[w].color = nd[p].color
			nd[p].color = Black
			nd[nd[w].left].color = Black
			tree.rotateRight(p)
			x = tree.root
		}
	}
	nd[x].color = Black
}

func (tree *Tree[K]) find(key K) nodeID {
	x := tree.root
	for x != nilNode {
		switch c := cmp.Compare(key, tree.nodes[x].key); {
		case c < 0:
			x = tree.nodes[x].left
		case c > 0:
			x = tree.nodes[x].right
		default:
			return x
		}
	}
	return nilNode
}

// Search reports whether key is present.
func (tree *Tree[K]) Search(key K) bool {
	return tree.find(key) != nilNode
}

// InOrder returns all keys in ascending order. The slice is freshly
// allocated on every call.
func (tree *Tree[K]) InOrder() []K {
	keys := make([]K, 0, tree.size)
	var stack []nodeID
	x := tree.root
	for x != nilNode || len(stack) > 0 {
		for x != nilNode {
			stack = append(stack, x)
			x = tree.nodes[x].left
		}
		x = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		keys = append(keys, tree.nodes[x].key)
		x = tree.nodes[x].right
	}
	return keys
}

// Size returns the number of keys in the tree.
func (tree *Tree[K]) Size() int {
	return tree.size
}

// IsEmpty reports whether the tree holds no keys.
func (tree *Tree[K]) IsEmpty() bool {
	return tree.root == nilNode
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (tree *Tree[K]) Height() int {
	return tree.height(tree.root)
}

func (tree *Tree[K]) height(x nodeID) int {
	if x == nilNode {
		return 0
	}
	return max(tree.height(tree.nodes[x].left), tree.height(tree.nodes[x].right)) + 1
}

// BlackHeight returns the number of black nodes on any path from the root
// down to a NIL leaf, not counting the leaf. An empty tree has black-height 0.
func (tree *Tree[K]) BlackHeight() int {
	bh := 0
	for x := tree.root; x != nilNode; x = tree.nodes[x].left {
		if tree.nodes[x].color == Black {
			bh++
		}
	}
	return bh
}

// Min returns the smallest key.
func (tree *Tree[K]) Min() (K, bool) {
	if tree.root == nilNode {
		var zero K
		return zero, false
	}
	return tree.nodes[tree.minimum(tree.root)].key, true
}

// Max returns the largest key.
func (tree *Tree[K]) Max() (K, bool) {
	if tree.root == nilNode {
		var zero K
		return zero, false
	}
	return tree.nodes[tree.maximum(tree.root)].key, true
}

// ColorOf returns the color of the node holding key.
func (tree *Tree[K]) ColorOf(key K) (Color, bool) {
	x := tree.find(key)
	if x == nilNode {
		return Black, false
	}
	return tree.nodes[x].color, true
}
