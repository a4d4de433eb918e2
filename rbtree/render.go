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
	"fmt"

	"github.com/charmbracelet/lipgloss"
	ltree "github.com/charmbracelet/lipgloss/tree"
)

const (
	emptyTree   = "(empty)"
	absentChild = "∅"
)

var (
	redStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	blackStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)
	enumeratorTint = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginRight(1)
)

// Visualize renders the tree structure, one node per line, each node tagged
// with its color. Children are listed left before right; a missing sibling is
// shown as ∅.
func (tree *Tree[K]) Visualize() string {
	if tree.root == nilNode {
		return emptyTree
	}
	return tree.renderSubtree(tree.root).
		Enumerator(ltree.RoundedEnumerator).
		EnumeratorStyle(enumeratorTint).
		String()
}

func (tree *Tree[K]) renderSubtree(x nodeID) *ltree.Tree {
	t := ltree.Root(tree.label(x))
	n := tree.nodes[x]
	if n.left == nilNode && n.right == nilNode {
		return t
	}
	return t.Child(tree.renderChild(n.left), tree.renderChild(n.right))
}

func (tree *Tree[K]) renderChild(x nodeID) any {
	switch n := tree.nodes[x]; {
	case x == nilNode:
		return absentChild
	case n.left == nilNode && n.right == nilNode:
		return tree.label(x)
	default:
		return tree.renderSubtree(x)
	}
}

func (tree *Tree[K]) label(x nodeID) string {
	n := tree.nodes[x]
	style := blackStyle
	if n.color == Red {
		style = redStyle
	}
	return style.Render(fmt.Sprintf("%v (%s)", n.key, n.color))
}
