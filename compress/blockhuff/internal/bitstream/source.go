// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package bitstream

import (
	"bytes"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// ErrUnderflow is returned when a read needs more bits than the input holds.
var ErrUnderflow = errors.New("bitstream: read past end of input")

// Source reads bits from a packed byte slice. It tracks how many bits
// have been consumed and refuses any read that would cross the end.
type Source struct {
	r      *bitio.Reader
	offset int64
	size   int64
}

// NewSource returns a source positioned at bit 0 of p.
func NewSource(p []byte) *Source {
	return &Source{
		r:    bitio.NewReader(bytes.NewReader(p)),
		size: 8 * int64(len(p)),
	}
}

// Offset returns the index of the next bit to be read.
func (s *Source) Offset() int64 {
	return s.offset
}

// Remaining returns the number of bits left, padding included.
func (s *Source) Remaining() int64 {
	return s.size - s.offset
}

// ReadBit consumes one bit.
func (s *Source) ReadBit() (bool, error) {
	if s.offset >= s.size {
		return false, errors.WithStack(ErrUnderflow)
	}
	bit, err := s.r.ReadBool()
	if err != nil {
		return false, errors.Wrapf(err, "bitstream: read bit %d", s.offset)
	}
	s.offset++
	return bit, nil
}

// ReadBits consumes count bits and returns them in the low bits of the
// result, first bit read as the most significant.
func (s *Source) ReadBits(count uint8) (uint64, error) {
	if count == 0 {
		return 0, nil
	}
	if int64(count) > s.Remaining() {
		return 0, errors.WithStack(ErrUnderflow)
	}
	v, err := s.r.ReadBits(count)
	if err != nil {
		return 0, errors.Wrapf(err, "bitstream: read %d bits at %d", count, s.offset)
	}
	s.offset += int64(count)
	return v, nil
}

// ReadBytes fills p with the next 8*len(p) bits.
func (s *Source) ReadBytes(p []byte) error {
	if 8*int64(len(p)) > s.Remaining() {
		return errors.WithStack(ErrUnderflow)
	}
	for i := range p {
		b, err := s.r.ReadByte()
		if err != nil {
			return errors.Wrapf(err, "bitstream: read byte at %d", s.offset)
		}
		p[i] = b
		s.offset += 8
	}
	return nil
}
