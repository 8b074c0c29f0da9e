// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/explode

package explode

import (
	"bufio"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Decode explodes the stream that starts at src[offset] into dst and returns the number of
// bytes written. Decoding stops when dst is full or the end-of-stream marker is read.
// On error the contents of dst are undefined and the returned count is 0.
// Options nil means DefaultOptions.
func Decode(src, dst []byte, offset int, opts *Options) (int, error) {
	n, _, err := decodeSlice(src, dst, offset, opts)
	return n, err
}

// Decompress explodes src into a new buffer of length outLen and returns the written prefix.
func Decompress(src []byte, outLen int, opts *Options) ([]byte, error) {
	out, _, err := DecompressBlock(src, outLen, opts)
	return out, err
}

// DecompressBlock explodes one stream from the beginning of src.
// It returns decompressed bytes and the number of input bytes the decoder pulled, header included.
// Unread trailing bytes after the end marker are ignored.
func DecompressBlock(src []byte, outLen int, opts *Options) ([]byte, int, error) {
	if outLen < 0 {
		return nil, 0, ErrNegativeOutLen
	}

	out := make([]byte, outLen)
	n, consumed, err := decodeSlice(src, out, 0, opts)
	if err != nil {
		return nil, consumed, err
	}

	return out[:n], consumed, nil
}

// DecompressFromReader explodes one stream from r and returns the number of bytes pulled from r.
// If r is not an io.ByteReader it is wrapped in a bufio.Reader, which may read ahead.
func DecompressFromReader(r io.Reader, outLen int, opts *Options) ([]byte, int64, error) {
	if r == nil {
		return nil, 0, ErrNilReader
	}

	if outLen < 0 {
		return nil, 0, ErrNegativeOutLen
	}

	var byteReader io.ByteReader
	if existing, ok := r.(io.ByteReader); ok {
		byteReader = existing
	} else {
		byteReader = bufio.NewReader(r)
	}

	countingReader := &countingByteReader{base: byteReader}
	out := make([]byte, outLen)
	n, err := decodeFromByteReader(countingReader, out, opts)
	if err != nil {
		return nil, countingReader.count, err
	}

	return out[:n], countingReader.count, nil
}

// decodeSlice decodes from src[offset:] and also returns the consumed input byte count.
func decodeSlice(src, dst []byte, offset int, opts *Options) (int, int, error) {
	if offset < 0 || offset > len(src) {
		return 0, 0, fmt.Errorf("%w: offset=%d input=%d", ErrInvalidOffset, offset, len(src))
	}

	if len(src)-offset < MinInputSize {
		return 0, 0, fmt.Errorf("%w: %d bytes, need at least %d", ErrIncompleteInput, len(src)-offset, MinInputSize)
	}

	reader := &sliceByteReader{data: src, pos: offset}
	n, err := decodeFromByteReader(reader, dst, opts)

	return n, reader.pos - offset, err
}

// decodeFromByteReader runs one decoder over r into dst.
func decodeFromByteReader(r io.ByteReader, dst []byte, opts *Options) (int, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	log := opts.logger()

	d, err := newDecoder(r, dst)
	if err != nil {
		log.WithError(err).Debug("sector header rejected")
		return 0, err
	}

	llog := log.WithFields(logrus.Fields{
		"literal":   d.hdr.Literal,
		"dict_size": d.hdr.DictSize(),
		"out_len":   len(dst),
	})
	llog.Debug("decoding sector")

	if err := d.run(); err != nil {
		err = fmt.Errorf("%w: output=%d/%d", err, d.pos, len(dst))
		llog.WithError(err).Debug("sector decode failed")
		return 0, err
	}

	if opts.RequireFullOutput && d.pos < len(dst) {
		return 0, fmt.Errorf("%w: produced=%d expected=%d", ErrShortOutput, d.pos, len(dst))
	}

	llog.WithFields(logrus.Fields{
		"produced":   d.pos,
		"end_marker": d.end,
	}).Debug("sector decoded")

	return d.pos, nil
}
