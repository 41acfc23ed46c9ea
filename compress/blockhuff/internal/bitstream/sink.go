// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package bitstream provides the bit sink used to assemble a block Huffman
// container and the bit source used to take one apart. Bits are packed most
// significant bit first; the final byte is zero padded.
package bitstream

import (
	"bytes"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// Sink is an append-only sequence of bits.
type Sink struct {
	buf    bytes.Buffer
	w      *bitio.Writer
	bitLen int64
	closed bool
}

// NewSink creates a sink able to hold sizeHint bits without reallocation.
func NewSink(sizeHint int64) *Sink {
	s := &Sink{}
	if sizeHint > 0 {
		s.buf.Grow(int((sizeHint + 7) / 8))
	}
	s.w = bitio.NewWriter(&s.buf)
	return s
}

// WriteBit appends a single bit.
func (s *Sink) WriteBit(bit bool) {
	s.w.TryWriteBool(bit)
	s.bitLen++
}

// WriteBits appends the count low bits of code, most significant first.
func (s *Sink) WriteBits(code uint64, count uint8) {
	if count == 0 {
		return
	}
	if count < 64 {
		code &= 1<<count - 1
	}
	s.w.TryWriteBits(code, count)
	s.bitLen += int64(count)
}

// WriteBytes appends every byte of p as 8 bits.
func (s *Sink) WriteBytes(p []byte) {
	for _, b := range p {
		s.w.TryWriteByte(b)
	}
	s.bitLen += 8 * int64(len(p))
}

// Len returns the number of bits written so far.
func (s *Sink) Len() int64 {
	return s.bitLen
}

// Bytes pads the last byte with zero bits and returns the packed sequence.
// No bits may be written after Bytes has been called.
func (s *Sink) Bytes() ([]byte, error) {
	if !s.closed {
		s.closed = true
		if s.w.TryError != nil {
			return nil, errors.WithStack(s.w.TryError)
		}
		if err := s.w.Close(); err != nil {
			return nil, errors.WithStack(err)
		}
	}
	return s.buf.Bytes(), nil
}
