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

import (
	"cmp"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	ltree "github.com/charmbracelet/lipgloss/tree"
)

const (
	emptyTree   = "(empty)"
	absentChild = "∅"
)

var (
	keyStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	heightStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	enumeratorTint = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginRight(1)
)

// Visualize renders the tree structure, one node per line. Children are
// listed left before right; a missing sibling is shown as ∅ so the side of
// the remaining child stays visible.
func (tree *Tree[K]) Visualize() string {
	if tree.root == nil {
		return emptyTree
	}
	return renderSubtree(tree.root).
		Enumerator(ltree.RoundedEnumerator).
		EnumeratorStyle(enumeratorTint).
		String()
}

func renderSubtree[K cmp.Ordered](node *Node[K]) *ltree.Tree {
	t := ltree.Root(label(node))
	if node.Left == nil && node.Right == nil {
		return t
	}
	return t.Child(renderChild(node.Left), renderChild(node.Right))
}

func renderChild[K cmp.Ordered](node *Node[K]) any {
	switch {
	case node == nil:
		return absentChild
	case node.Left == nil && node.Right == nil:
		return label(node)
	default:
		return renderSubtree(node)
	}
}

func label[K cmp.Ordered](node *Node[K]) string {
	return keyStyle.Render(fmt.Sprint(node.Key)) + " " + heightStyle.Render(fmt.Sprintf("h=%d", node.Height))
}
