// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

// Node is a Huffman tree node. A leaf holds a block and how often it occurs.
// An internal node holds no block, owns both children, and its frequency is
// the sum of theirs.
type Node struct {
	Value Block
	Freq  uint64
	Left  *Node
	Right *Node
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Empty reports whether n is the root of a tree built from no blocks at all.
func (n *Node) Empty() bool {
	return n.IsLeaf() && n.Value == nil
}

// Leaves returns the number of leaves below and including n.
func (n *Node) Leaves() int {
	if n.IsLeaf() {
		if n.Value == nil {
			return 0
		}
		return 1
	}
	return n.Left.Leaves() + n.Right.Leaves()
}
