// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package blockhuff

import (
	"github.com/pkg/errors"

	"github.com/intel/hfm/compress/blockhuff/internal/bitstream"
	"github.com/intel/hfm/compress/blockhuff/internal/huffman"
)

// largest output reserved up front; the rest grows as blocks are decoded
const maxPrealloc = 64 << 20

// Decode expands a container produced by Encode with the same blockSize.
// Running out of bits anywhere yields a CorruptInputError.
func Decode(src []byte, blockSize int) ([]byte, error) {
	if err := checkBlockSize(blockSize); err != nil {
		return nil, err
	}
	in := bitstream.NewSource(src)
	root, err := huffman.ReadTree(in, blockSize)
	if err != nil {
		return nil, corrupt(in, err)
	}
	blocks, err := in.ReadBits(countBits)
	if err != nil {
		return nil, corrupt(in, err)
	}
	out := make([]byte, 0, outputHint(root, blocks, in.Remaining(), blockSize))
	for i := uint64(0); i < blocks; i++ {
		node := root
		for !node.IsLeaf() {
			right, err := in.ReadBit()
			if err != nil {
				return nil, corrupt(in, err)
			}
			if right {
				node = node.Right
			} else {
				node = node.Left
			}
		}
		out = append(out, node.Value...)
	}
	return out, nil
}

// outputHint bounds the reservation by what the remaining bits can encode.
// A leaf root codes every block with zero bits so only the count limits it.
func outputHint(root *huffman.Node, blocks uint64, remaining int64, blockSize int) int {
	if !root.IsLeaf() && uint64(remaining) < blocks {
		blocks = uint64(remaining)
	}
	if blocks > maxPrealloc/uint64(blockSize) {
		return maxPrealloc
	}
	return int(blocks) * blockSize
}

func corrupt(in *bitstream.Source, err error) error {
	if errors.Is(err, bitstream.ErrUnderflow) || errors.Is(err, huffman.ErrTreeDepth) {
		return CorruptInputError(in.Offset())
	}
	return err
}
