// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package blockhuff implements a Huffman coder over fixed-size blocks of bytes.
//
// The input is zero padded to a multiple of the block size and every distinct
// block gets a prefix code. A container holds, bit packed and most significant
// bit first:
//
//	serialized tree | 32-bit block count | one code per block
//
// The block size is not recorded; Encode and Decode must be given the same one.
// Decoding returns the padded input, trailing zero bytes included.
package blockhuff

import "github.com/pkg/errors"

const (
	DefaultBlockSize = 1       // one byte per block
	MaxBlockSize     = 1 << 16 // largest block size accepted
)

const (
	countBits = 32
	maxBlocks = 1<<countBits - 1
)

func checkBlockSize(blockSize int) error {
	if blockSize < 1 || blockSize > MaxBlockSize {
		return errors.Wrapf(ErrBlockSize, "block size %d", blockSize)
	}
	return nil
}
