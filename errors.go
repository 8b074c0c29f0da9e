// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/explode

package explode

import "errors"

// Package errors. Decode failures wrap one of these with positional context; match with errors.Is.
var (
	ErrIncompleteInput        = errors.New("incomplete input")
	ErrBadData                = errors.New("bad data")
	ErrBufferTooSmall         = errors.New("output buffer too small")
	ErrShortOutput            = errors.New("end of stream before output was filled")
	ErrInvalidOffset          = errors.New("input offset out of range")
	ErrNegativeOutLen         = errors.New("output length must be non-negative")
	ErrNilReader              = errors.New("reader is nil")
	ErrUnsupportedCompression = errors.New("unsupported sector compression")
)
