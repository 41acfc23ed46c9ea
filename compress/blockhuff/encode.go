// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package blockhuff

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/intel/hfm/compress/blockhuff/internal/bitstream"
	"github.com/intel/hfm/compress/blockhuff/internal/huffman"
)

// Encode compresses src with blocks of blockSize bytes. A trailing partial
// block is completed with zero bytes. src is not modified.
func Encode(src []byte, blockSize int) ([]byte, error) {
	out, _, err := encode(src, blockSize)
	return out, err
}

// bodyStats compares the body size derived from the code table with the
// number of body bits actually emitted.
type bodyStats struct {
	predicted uint64
	written   uint64
}

func encode(src []byte, blockSize int) ([]byte, bodyStats, error) {
	var st bodyStats
	if err := checkBlockSize(blockSize); err != nil {
		return nil, st, err
	}
	data := huffman.Pad(src, blockSize)
	blocks := uint64(len(data) / blockSize)
	if blocks > maxBlocks {
		return nil, st, errors.Wrapf(ErrTooManyBlocks, "%d blocks", blocks)
	}

	root := huffman.Build(huffman.Histogram(data, blockSize))
	table, bodyBits, err := huffman.GenerateCodes(root)
	if err != nil {
		return nil, st, &InternalError{Msg: err.Error()}
	}
	st.predicted = bodyBits

	headerBits := huffman.TreeBits(root, blockSize) + countBits
	sink := bitstream.NewSink(headerBits + int64(bodyBits))
	huffman.WriteTree(sink, root, blockSize)
	sink.WriteBits(blocks, countBits)
	if sink.Len() != headerBits {
		return nil, st, &InternalError{Msg: fmt.Sprintf("header is %d bits, expected %d", sink.Len(), headerBits)}
	}

	for i := 0; i < len(data); i += blockSize {
		block := huffman.Block(data[i : i+blockSize])
		code, ok := table.Lookup(block)
		if !ok {
			return nil, st, &InternalError{Msg: fmt.Sprintf("block %x at offset %d has no code", []byte(block), i)}
		}
		sink.WriteBits(code.Bits, code.Len)
	}
	st.written = uint64(sink.Len() - headerBits)
	if st.written != st.predicted {
		return nil, st, &InternalError{Msg: fmt.Sprintf("wrote %d body bits, expected %d", st.written, st.predicted)}
	}

	out, err := sink.Bytes()
	if err != nil {
		return nil, st, errors.Wrap(err, "blockhuff: pack container")
	}
	return out, st, nil
}
