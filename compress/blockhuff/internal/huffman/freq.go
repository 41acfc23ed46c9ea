// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

// Histogram splits data into blocks of blockSize bytes and returns one leaf
// per distinct block, ordered by first occurrence, each carrying its count.
// len(data) must be a multiple of blockSize. The leaves alias data.
func Histogram(data []byte, blockSize int) []*Node {
	index := make(map[string]int)
	var leaves []*Node
	for i := 0; i+blockSize <= len(data); i += blockSize {
		b := Block(data[i : i+blockSize : i+blockSize])
		if j, ok := index[string(b)]; ok {
			leaves[j].Freq++
			continue
		}
		index[string(b)] = len(leaves)
		leaves = append(leaves, &Node{Value: b, Freq: 1})
	}
	return leaves
}
