// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package blockhuff

import (
	"strconv"

	"github.com/pkg/errors"
)

var (
	ErrBlockSize     = errors.New("blockhuff: block size out of range")
	ErrTooManyBlocks = errors.New("blockhuff: more blocks than a 32-bit count holds")
)

// CorruptInputError reports the bit offset at which a container turned out
// to be truncated or malformed. A block size differing from the one used to
// encode usually surfaces as this error too.
type CorruptInputError int64

func (e CorruptInputError) Error() string {
	return "blockhuff: corrupt input before bit offset " + strconv.FormatInt(int64(e), 10)
}

// InternalError reports a broken encoder invariant. It is a bug, never a
// property of the input, and the encode that hit it produces no output.
type InternalError struct {
	Msg string
}

func (e *InternalError) Error() string {
	return "blockhuff: internal error: " + e.Msg
}
