// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/explode

package explode

import "fmt"

// ExplodeSector decodes one archive sector with a known decompressed size.
// Archives store a sector uncompressed when compression would not shrink it, so a sector
// whose length equals outLen is returned as a copy without decoding.
func ExplodeSector(sector []byte, outLen int, opts *Options) ([]byte, error) {
	if outLen < 0 {
		return nil, ErrNegativeOutLen
	}

	if len(sector) == outLen {
		return stored(sector), nil
	}

	return Decompress(sector, outLen, opts)
}

// DecompressMaskedSector decodes a sector prefixed with the archive compression mask byte.
// Only CompressionImplode is supported; the stream starts right after the mask.
func DecompressMaskedSector(sector []byte, outLen int, opts *Options) ([]byte, error) {
	if outLen < 0 {
		return nil, ErrNegativeOutLen
	}

	if len(sector) == outLen {
		return stored(sector), nil
	}

	if len(sector) == 0 {
		return nil, fmt.Errorf("%w: missing compression mask", ErrIncompleteInput)
	}

	if mask := sector[0]; mask != CompressionImplode {
		return nil, fmt.Errorf("%w: mask=0x%02x", ErrUnsupportedCompression, mask)
	}

	out := make([]byte, outLen)
	n, err := Decode(sector, out, 1, opts)
	if err != nil {
		return nil, err
	}

	return out[:n], nil
}

func stored(sector []byte) []byte {
	out := make([]byte, len(sector))
	copy(out, sector)

	return out
}
