// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package blockhuff

import (
	"io"

	"github.com/pkg/errors"
)

// Resetter resets a ReadCloser returned by NewReader to read a new container.
type Resetter interface {
	Reset(r io.Reader) error
}

// NewReader returns a ReadCloser that reads a whole container from r on the
// first Read and then serves the decoded bytes. The block size is checked on
// that first Read.
func NewReader(r io.Reader, blockSize int) io.ReadCloser {
	return &decompressor{r: r, blockSize: blockSize}
}

type decompressor struct {
	r         io.Reader
	blockSize int
	output    []byte
	readPos   int
	decoded   bool
	err       error
}

func (f *decompressor) Reset(under io.Reader) error {
	f.r = under
	f.output = nil
	f.readPos = 0
	f.decoded = false
	f.err = nil
	return nil
}

func (f *decompressor) Close() error {
	return nil
}

func (f *decompressor) Read(b []byte) (n int, err error) {
	if !f.decoded {
		f.decoded = true
		f.err = f.step()
	}
	if f.readPos < len(f.output) {
		n = copy(b, f.output[f.readPos:])
		f.readPos += n
		return n, nil
	}
	if f.err != nil {
		return 0, f.err
	}
	return 0, io.EOF
}

func (f *decompressor) step() (err error) {
	input, err := io.ReadAll(f.r)
	if err != nil {
		return errors.Wrap(err, "blockhuff: read container")
	}
	f.output, err = Decode(input, f.blockSize)
	return err
}
