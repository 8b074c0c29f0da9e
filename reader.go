// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/explode

package explode

import "io"

// sliceByteReader reads a compressed sector from a byte slice.
type sliceByteReader struct {
	data []byte // Compressed input, including any bytes before the start offset.
	pos  int    // Next byte to read.
}

// countingByteReader wraps a stream and counts the bytes the decoder pulled from it.
type countingByteReader struct {
	base  io.ByteReader
	count int64
}

// ReadByte reads a byte from the slice.
func (r *sliceByteReader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}

	b := r.data[r.pos]
	r.pos++

	return b, nil
}

// ReadByte reads a byte from the underlying reader and increments the count.
func (r *countingByteReader) ReadByte() (byte, error) {
	b, err := r.base.ReadByte()
	if err != nil {
		return 0, err
	}

	r.count++

	return b, nil
}
