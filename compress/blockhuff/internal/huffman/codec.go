// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"github.com/pkg/errors"

	"github.com/intel/hfm/compress/blockhuff/internal/bitstream"
)

// ErrTreeDepth is returned when a serialized tree nests deeper than any
// tree GenerateCodes accepts.
var ErrTreeDepth = errors.New("huffman: serialized tree too deep")

// Tree layout, pre-order and self-delimiting:
//
//	leaf:     1 <blockSize bytes, MSB first>
//	internal: 0 <left subtree> <right subtree>
//
// The empty tree is written as a leaf of blockSize zero bytes.

// TreeBits returns the size of the serialized tree in bits.
func TreeBits(root *Node, blockSize int) int64 {
	leaves := int64(root.Leaves())
	if leaves == 0 {
		leaves = 1
	}
	return (2*leaves - 1) + leaves*8*int64(blockSize)
}

// WriteTree serializes the tree rooted at root into s.
func WriteTree(s *bitstream.Sink, root *Node, blockSize int) {
	if root.Empty() {
		s.WriteBit(true)
		s.WriteBytes(make([]byte, blockSize))
		return
	}
	writeNode(s, root)
}

func writeNode(s *bitstream.Sink, n *Node) {
	if n.IsLeaf() {
		s.WriteBit(true)
		s.WriteBytes(n.Value)
		return
	}
	s.WriteBit(false)
	writeNode(s, n.Left)
	writeNode(s, n.Right)
}

// ReadTree rebuilds a tree written by WriteTree. On return the source is
// positioned at the first bit after the tree.
func ReadTree(src *bitstream.Source, blockSize int) (*Node, error) {
	return readNode(src, blockSize, 0)
}

func readNode(src *bitstream.Source, blockSize int, depth int) (*Node, error) {
	if depth > MaxCodeLen {
		return nil, errors.WithStack(ErrTreeDepth)
	}
	leaf, err := src.ReadBit()
	if err != nil {
		return nil, err
	}
	if leaf {
		value := make(Block, blockSize)
		if err := src.ReadBytes(value); err != nil {
			return nil, err
		}
		return &Node{Value: value}, nil
	}
	left, err := readNode(src, blockSize, depth+1)
	if err != nil {
		return nil, err
	}
	right, err := readNode(src, blockSize, depth+1)
	if err != nil {
		return nil, err
	}
	return &Node{Left: left, Right: right}, nil
}
