// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package bitstream

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
)

func TestSinkPacksMSBFirst(t *testing.T) {
	s := NewSink(13)
	s.WriteBit(true)
	s.WriteBits(0b0101, 4)
	s.WriteBytes([]byte{0xff})
	if s.Len() != 13 {
		t.Fatalf("expected 13 bits, got %d", s.Len())
	}
	out, err := s.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0xaf, 0xf8}
	if !bytes.Equal(out, want) {
		t.Fatalf("expected %x got %x", want, out)
	}
}

func TestSinkIgnoresHighBits(t *testing.T) {
	s := NewSink(0)
	s.WriteBits(0xffff_fff0, 4)
	s.WriteBits(0xff, 0)
	out, err := s.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, []byte{0x00}) || s.Len() != 4 {
		t.Fatalf("got %x with %d bits", out, s.Len())
	}
}

func TestSinkEmpty(t *testing.T) {
	out, err := NewSink(0).Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 0 {
		t.Fatalf("expected no bytes, got %x", out)
	}
}

func TestSourceReadsBack(t *testing.T) {
	s := NewSource([]byte{0xaf, 0xf8})
	bit, err := s.ReadBit()
	if err != nil || !bit {
		t.Fatal("first bit", bit, err)
	}
	v, err := s.ReadBits(4)
	if err != nil || v != 0b0101 {
		t.Fatal("nibble", v, err)
	}
	p := make([]byte, 1)
	if err := s.ReadBytes(p); err != nil || p[0] != 0xff {
		t.Fatal("byte", p, err)
	}
	if s.Offset() != 13 || s.Remaining() != 3 {
		t.Fatalf("offset %d remaining %d", s.Offset(), s.Remaining())
	}
	if v, err = s.ReadBits(3); err != nil || v != 0 {
		t.Fatal("padding", v, err)
	}
	if _, err = s.ReadBit(); !errors.Is(err, ErrUnderflow) {
		t.Fatalf("expected underflow, got %v", err)
	}
	if s.Offset() != 16 {
		t.Fatalf("failed read moved the cursor to %d", s.Offset())
	}
}

func TestSourceBounds(t *testing.T) {
	s := NewSource([]byte{0x12, 0x34, 0x56})
	if _, err := s.ReadBits(25); !errors.Is(err, ErrUnderflow) {
		t.Fatalf("expected underflow, got %v", err)
	}
	if err := s.ReadBytes(make([]byte, 4)); !errors.Is(err, ErrUnderflow) {
		t.Fatalf("expected underflow, got %v", err)
	}
	v, err := s.ReadBits(24)
	if err != nil || v != 0x123456 {
		t.Fatalf("got %x, %v", v, err)
	}
	if v, err := s.ReadBits(0); err != nil || v != 0 {
		t.Fatalf("zero width read: %x, %v", v, err)
	}
}

func TestSinkSourceRoundTrip(t *testing.T) {
	s := NewSink(0)
	for i := 0; i < 1000; i++ {
		s.WriteBits(uint64(i), uint8(i%17))
	}
	out, err := s.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	src := NewSource(out)
	for i := 0; i < 1000; i++ {
		n := uint8(i % 17)
		v, err := src.ReadBits(n)
		if err != nil {
			t.Fatal(i, err)
		}
		if want := uint64(i) & (1<<n - 1); v != want {
			t.Fatalf("value %d: expected %x got %x", i, want, v)
		}
	}
	if src.Offset() != s.Len() {
		t.Fatalf("read %d bits, wrote %d", src.Offset(), s.Len())
	}
}
