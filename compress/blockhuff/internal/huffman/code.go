// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"strings"

	"github.com/pkg/errors"
)

// MaxCodeLen is the longest code a tree may produce. A 32-bit block count
// keeps real trees well below it.
const MaxCodeLen = 64

// ErrCodeTooLong is returned when a leaf sits deeper than MaxCodeLen.
var ErrCodeTooLong = errors.New("huffman: code longer than 64 bits")

// Code is the path from the root to a leaf, stored in the Len low bits of
// Bits with the first step as the most significant bit. 0 is left, 1 is right.
type Code struct {
	Bits uint64
	Len  uint8
}

func (c Code) String() string {
	var sb strings.Builder
	for i := int(c.Len) - 1; i >= 0; i-- {
		if c.Bits>>uint(i)&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Entry pairs a block with its code.
type Entry struct {
	Block Block
	Code  Code
}

// Table holds one entry per leaf, sorted by Compare on the block.
type Table []Entry

// GenerateCodes walks the tree depth first and returns the code table along
// with the number of bits needed to code every occurrence of every leaf.
func GenerateCodes(root *Node) (Table, uint64, error) {
	table := make(Table, 0, root.Leaves())
	bodyBits, err := generate(root, Code{}, &table)
	if err != nil {
		return nil, 0, err
	}
	sortTable(table)
	return table, bodyBits, nil
}

func generate(n *Node, path Code, table *Table) (uint64, error) {
	if n.IsLeaf() {
		if n.Value == nil {
			return 0, nil
		}
		*table = append(*table, Entry{Block: n.Value, Code: path})
		return n.Freq * uint64(path.Len), nil
	}
	if path.Len == MaxCodeLen {
		return 0, errors.WithStack(ErrCodeTooLong)
	}
	left, err := generate(n.Left, Code{Bits: path.Bits << 1, Len: path.Len + 1}, table)
	if err != nil {
		return 0, err
	}
	right, err := generate(n.Right, Code{Bits: path.Bits<<1 | 1, Len: path.Len + 1}, table)
	if err != nil {
		return 0, err
	}
	return left + right, nil
}

// Lookup returns the code of b by binary search.
func (t Table) Lookup(b Block) (Code, bool) {
	lo, hi := 0, len(t)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		switch c := Compare(t[mid].Block, b); {
		case c < 0:
			lo = mid + 1
		case c > 0:
			hi = mid
		default:
			return t[mid].Code, true
		}
	}
	return Code{}, false
}
