// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package blockhuff

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
)

var errWriterClosed = errors.New("blockhuff: write to closed writer")

// Writer collects everything written to it and emits one container to the
// underlying writer on Close. Nothing reaches the underlying writer before.
type Writer struct {
	err       error        // Last error encountered
	under     io.Writer    // Destination of the container
	blockSize int          // Bytes per block
	buf       bytes.Buffer // Input accumulated so far
	closed    bool
}

// NewWriter creates a Writer that codes blocks of blockSize bytes.
func NewWriter(under io.Writer, blockSize int) (*Writer, error) {
	if err := checkBlockSize(blockSize); err != nil {
		return nil, err
	}
	return &Writer{under: under, blockSize: blockSize}, nil
}

// Write buffers data. It fails only after Close or a failed Close.
func (w *Writer) Write(data []byte) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	if w.closed {
		return 0, errors.WithStack(errWriterClosed)
	}
	return w.buf.Write(data)
}

// Reset discards buffered data and targets a new underlying writer, keeping
// the block size.
func (w *Writer) Reset(under io.Writer) {
	w.err = nil
	w.under = under
	w.buf.Reset()
	w.closed = false
}

// Close encodes the buffered input and writes the container.
// It does not close the underlying writer.
func (w *Writer) Close() (err error) {
	if w.err != nil {
		return w.err
	}
	if w.closed {
		return nil
	}
	w.closed = true
	out, err := Encode(w.buf.Bytes(), w.blockSize)
	if err != nil {
		w.err = err
		return err
	}
	if _, err = w.under.Write(out); err != nil {
		w.err = errors.Wrap(err, "blockhuff: write container")
		return w.err
	}
	w.buf.Reset()
	return nil
}
