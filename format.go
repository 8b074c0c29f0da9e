// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/explode

package explode

import "fmt"

// PKWARE DCL explode format constants.
const (
	DictCapacity    = 4096 // Dictionary buffer size, independent of the header dictionary size.
	EndOfStream     = 519  // Copy length that marks the end of the compressed stream.
	HeaderSize      = 2    // Literal mode byte + dictionary size code byte.
	MinInputSize    = 4    // Header plus the first 16 bits of the token stream.
	MinDictSizeCode = 4    // 1024-byte dictionary.
	MaxDictSizeCode = 6    // 4096-byte dictionary.

	// CompressionImplode is the archive sector compression mask for PKWARE implode.
	CompressionImplode = 0x08
)

const (
	tokenLookahead  = 16 // Bits needed for flag + longest length code + extra bits, or flag + literal.
	offsetLookahead = 14 // Bits needed for the longest distance code + low distance bits.
	shortCopyLength = 2  // Copies of this length carry only shortCopyBits low distance bits.
	shortCopyBits   = 2
)

// LiteralMode selects how literal bytes are encoded in the token stream.
type LiteralMode uint8

// Literal mode constants (first header byte).
const (
	LiteralFixed LiteralMode = iota // Literals are raw 8-bit values.
	LiteralCoded                    // Literals are prefix-coded.
)

// String returns the PKWARE name of the mode.
func (m LiteralMode) String() string {
	switch m {
	case LiteralFixed:
		return "binary"
	case LiteralCoded:
		return "ascii"
	default:
		return fmt.Sprintf("LiteralMode(%d)", uint8(m))
	}
}

// Header is the two-byte prefix of an imploded stream.
type Header struct {
	Literal      LiteralMode
	DictSizeCode uint8 // log2(DictSize) - 6, in MinDictSizeCode..MaxDictSizeCode.
}

// DictSize returns the dictionary size in bytes (1024, 2048 or 4096).
func (h Header) DictSize() int {
	return 64 << h.DictSizeCode
}

// ParseHeader validates the two header bytes at the start of b.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, ErrIncompleteInput
	}

	h := Header{Literal: LiteralMode(b[0]), DictSizeCode: b[1]}
	if h.Literal != LiteralFixed && h.Literal != LiteralCoded {
		return Header{}, fmt.Errorf("%w: invalid literal mode %d", ErrBadData, b[0])
	}

	if h.DictSizeCode < MinDictSizeCode || h.DictSizeCode > MaxDictSizeCode {
		return Header{}, fmt.Errorf("%w: invalid dictionary size code %d", ErrBadData, b[1])
	}

	return h, nil
}
