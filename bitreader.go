// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/explode

package explode

import (
	"errors"
	"io"
)

// bitReader exposes a byte source as an LSB-first bit stream.
// New bytes are appended above the bits already held in acc.
type bitReader struct {
	src io.ByteReader
	acc uint32 // Unconsumed bits, right-aligned.
	n   uint   // Number of valid bits in acc.
}

// fill pulls bytes until at least need bits are held.
// Running out of input is ErrIncompleteInput; other source errors are returned unchanged.
func (br *bitReader) fill(need uint) error {
	for br.n < need {
		b, err := br.src.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return ErrIncompleteInput
			}

			return err
		}

		br.acc |= uint32(b) << br.n
		br.n += 8
	}

	return nil
}

// peek returns the low k bits without consuming them.
func (br *bitReader) peek(k uint) uint32 {
	return br.acc & (1<<k - 1)
}

// consume drops k bits. The caller must have filled at least k bits.
func (br *bitReader) consume(k uint) {
	br.acc >>= k
	br.n -= k
}

// take returns and consumes the low k bits.
func (br *bitReader) take(k uint) uint32 {
	v := br.peek(k)
	br.consume(k)

	return v
}
