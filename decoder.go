// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/explode

package explode

import (
	"errors"
	"fmt"
	"io"
)

// decodeState is the state of the token loop.
type decodeState int

// Decode loop states. stateReadToken is initial; the other two are terminal.
const (
	stateReadToken decodeState = iota
	stateDone
	stateFailed
)

// decoder holds all mutable state of one sector decode. It is never shared.
type decoder struct {
	br   bitReader
	dict *dictionary
	hdr  Header
	out  []byte
	pos  int   // Next output index.
	end  bool  // End-of-stream marker was decoded.
	err  error // Set on transition to stateFailed.
}

// newDecoder reads the header and the first 16 stream bits from src.
// A short input fails with ErrIncompleteInput before the header is validated.
func newDecoder(src io.ByteReader, out []byte) (*decoder, error) {
	var raw [HeaderSize]byte
	for i := range raw {
		b, err := src.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, ErrIncompleteInput
			}

			return nil, err
		}
		raw[i] = b
	}

	br := bitReader{src: src}
	if err := br.fill(tokenLookahead); err != nil {
		return nil, err
	}

	hdr, err := ParseHeader(raw[:])
	if err != nil {
		return nil, err
	}

	return &decoder{
		br:   br,
		dict: newDictionary(hdr.DictSize()),
		hdr:  hdr,
		out:  out,
	}, nil
}

// run drives the token loop until the output is full, the end marker is read, or a failure.
func (d *decoder) run() error {
	state := stateReadToken
	for state == stateReadToken {
		state = d.step()
	}

	return d.err
}

func (d *decoder) step() decodeState {
	if d.pos >= len(d.out) {
		return stateDone
	}

	if err := d.br.fill(tokenLookahead); err != nil {
		return d.fail(err)
	}

	// Low bit 0 is a literal, 1 is a dictionary copy.
	flag := d.br.take(1)
	if flag == 0 {
		return d.literal()
	}

	return d.copyMatch()
}

func (d *decoder) literal() decodeState {
	if d.hdr.Literal == LiteralFixed {
		d.emit(byte(d.br.take(8)))
		return stateReadToken
	}

	i, width, ok := literalTable.scan(d.br.acc)
	if !ok {
		return d.fail(fmt.Errorf("%w: no literal code matches bits 0x%04x", ErrBadData, d.br.peek(16)))
	}
	d.br.consume(width)
	d.emit(byte(i))

	return stateReadToken
}

func (d *decoder) copyMatch() decodeState {
	i, width, ok := lengthTable.scan(d.br.acc)
	if !ok {
		return d.fail(fmt.Errorf("%w: no length code matches", ErrBadData))
	}
	d.br.consume(width)

	length := int(lenBase[i]) + int(d.br.take(uint(exLenBits[i])))
	if length == EndOfStream {
		d.end = true
		return stateDone
	}

	if err := d.br.fill(offsetLookahead); err != nil {
		return d.fail(err)
	}

	hi, width, ok := offsetTable.scan(d.br.acc)
	if !ok {
		return d.fail(fmt.Errorf("%w: no distance code matches", ErrBadData))
	}
	d.br.consume(width)

	lowBits := uint(d.hdr.DictSizeCode)
	if length == shortCopyLength {
		lowBits = shortCopyBits
	}
	distance := hi<<lowBits + int(d.br.take(lowBits))

	// Copy byte by byte: each written byte is visible to the next read (overlapping runs).
	cursor := d.dict.start(distance)
	for n := 0; n < length; n++ {
		if d.pos >= len(d.out) {
			return d.fail(fmt.Errorf("%w: copy of %d bytes at distance %d overruns output by %d",
				ErrBufferTooSmall, length, distance, length-n))
		}

		if d.dict.filled == 0 {
			return d.fail(fmt.Errorf("%w: copy before any output", ErrBadData))
		}

		var b byte
		b, cursor = d.dict.at(cursor)
		cursor++
		d.emit(b)
	}

	return stateReadToken
}

// emit writes b to the output and the dictionary at the same moment.
func (d *decoder) emit(b byte) {
	d.out[d.pos] = b
	d.pos++
	d.dict.write(b)
}

func (d *decoder) fail(err error) decodeState {
	d.err = err
	return stateFailed
}
