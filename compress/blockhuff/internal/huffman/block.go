// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package huffman builds Huffman trees over fixed-size blocks of bytes,
// derives the prefix code of every block and serializes the tree itself.
package huffman

// Block is one group of blockSize consecutive input bytes.
type Block []byte

// Compare orders blocks numerically with the byte at the highest index as the
// most significant one. A missing byte in the shorter block compares as zero.
func Compare(a, b Block) int {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	for i := n - 1; i >= 0; i-- {
		var x, y byte
		if i < len(a) {
			x = a[i]
		}
		if i < len(b) {
			y = b[i]
		}
		if x != y {
			if x < y {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Pad returns data extended with zero bytes to a multiple of blockSize.
// data is returned as is when no padding is needed and is never modified.
func Pad(data []byte, blockSize int) []byte {
	rest := len(data) % blockSize
	if rest == 0 {
		return data
	}
	padded := make([]byte, len(data)+blockSize-rest)
	copy(padded, data)
	return padded
}
