// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/explode

package explode

// dictionary is the sliding window over everything written to the output so far.
// Only the first size bytes of buf are used.
type dictionary struct {
	buf    [DictCapacity]byte
	size   int // Configured dictionary size from the header.
	pos    int // Next write offset, in [0, size).
	filled int // Valid bytes in buf, grows to size.
}

func newDictionary(size int) *dictionary {
	return &dictionary{size: size}
}

// write appends b, wrapping the write position at size.
func (d *dictionary) write(b byte) {
	d.buf[d.pos] = b
	d.pos++
	if d.pos >= d.size {
		d.pos = 0
	}

	if d.filled < d.size {
		d.filled++
	}
}

// start returns the unwrapped source cursor for a copy at the given backward distance.
// Distance 0 refers to the byte written last.
func (d *dictionary) start(distance int) int {
	return d.pos - 1 - distance
}

// at wraps cursor into [0, filled) and returns the byte there with the wrapped cursor.
// The wrap uses the current fill level, not the configured size; filled must be non-zero.
func (d *dictionary) at(cursor int) (byte, int) {
	cursor %= d.filled
	if cursor < 0 {
		cursor += d.filled
	}

	return d.buf[cursor], cursor
}
