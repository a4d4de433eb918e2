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
	"errors"
	"fmt"
)

// Validate walks the whole tree and returns an error describing the first
// broken red-black property, ordering violation, stale parent link or size
// mismatch.
func (tree *Tree[K]) Validate() error {
	if len(tree.nodes) == 0 {
		if tree.root != nilNode || tree.size != 0 {
			return errors.New("tree without arena claims to hold keys")
		}
		return nil
	}

	nd := tree.nodes
	if nd[nilNode].color != Black {
		return errors.New("sentinel is red")
	}
	if nd[nilNode].left != nilNode || nd[nilNode].right != nilNode {
		return errors.New("sentinel has children")
	}
	if tree.root != nilNode {
		if nd[tree.root].color != Black {
			return fmt.Errorf("root %v is red", nd[tree.root].key)
		}
		if nd[tree.root].parent != nilNode {
			return fmt.Errorf("root %v has a parent", nd[tree.root].key)
		}
	}

	count, _, err := tree.validate(tree.root, nil, nil)
	if err != nil {
		return err
	}
	if count != tree.size {
		return fmt.Errorf("size counter is %d, tree holds %d keys", tree.size, count)
	}
	if live := len(nd) - 1 - len(tree.free); live != count {
		return fmt.Errorf("arena holds %d live slots for %d keys", live, count)
	}
	return nil
}

// validate returns the number of keys below x and the black-height of x,
// counting the NIL leaf.
func (tree *Tree[K]) validate(x nodeID, low, high *K) (count, blackHeight int, err error) {
	if x == nilNode {
		return 0, 1, nil
	}

	n := tree.nodes[x]
	if low != nil && cmp.Compare(n.key, *low) <= 0 {
		return 0, 0, fmt.Errorf("key %v is not greater than %v", n.key, *low)
	}
	if high != nil && cmp.Compare(n.key, *high) >= 0 {
		return 0, 0, fmt.Errorf("key %v is not less than %v", n.key, *high)
	}

	for _, child := range []nodeID{n.left, n.right} {
		if child == nilNode {
			continue
		}
		if tree.nodes[child].parent != x {
			return 0, 0, fmt.Errorf("child %v of %v points to another parent", tree.nodes[child].key, n.key)
		}
		if n.color == Red && tree.nodes[child].color == Red {
			return 0, 0, fmt.Errorf("red node %v has red child %v", n.key, tree.nodes[child].key)
		}
	}

	leftCount, leftBlack, err := tree.validate(n.left, low, &n.key)
	if err != nil {
		return 0, 0, err
	}
	rightCount, rightBlack, err := tree.validate(n.right, &n.key, high)
	if err != nil {
		return 0, 0, err
	}
	if leftBlack != rightBlack {
		return 0, 0, fmt.Errorf("node %v has black-height %d on the left and %d on the right", n.key, leftBlack, rightBlack)
	}

	blackHeight = leftBlack
	if n.color == Black {
		blackHeight++
	}
	return leftCount + rightCount + 1, blackHeight, nil
}
