/*
Package explode implements decompression of PKWARE Data Compression Library ("implode") data,
one sector at a time.

Format: two header bytes, then an LSB-first bit stream of tokens.
Header byte 0: literal mode, 0 = raw 8-bit literals, 1 = prefix-coded literals.
Header byte 1: dictionary size code 4..6; dictionary size = 64 << code (1024, 2048, 4096).
Token flag bit 0 = literal, 1 = copy. A copy carries a prefix-coded length (2..518) and a
distance whose upper 6 bits are prefix-coded and whose low bits are 2 raw bits for length 2,
otherwise dictionary-size-code raw bits. Copy length 519 marks the end of the stream.
Decoding stops when the output buffer is full or the end marker is read, whichever comes first.

Use Decode(src, dst, offset, opts) to explode into a caller-owned buffer.
Use Decompress(src, outLen, opts) with nil for default options to get a new buffer.
Use DecompressBlock(src, outLen, opts) to also get the number of consumed input bytes.
Use DecompressFromReader(r, outLen, opts) to decode one sector from a stream.
Use ExplodeSector and DecompressMaskedSector for archive sectors (stored passthrough, mask byte).
Set Options.RequireFullOutput (or use StrictOptions) to reject streams that end early.

Failures wrap ErrIncompleteInput, ErrBadData or ErrBufferTooSmall; check them with errors.Is.
A failed call leaves the output undefined.

# Examples

Decompress with default options:

	out, err := explode.Decompress(sector, sectorSize, nil)
	if err != nil {
		return err
	}

Decode into an existing buffer, skipping an archive compression mask byte:

	n, err := explode.Decode(sector, buf, 1, nil)
	if err != nil {
		return fmt.Errorf("sector decompression failed: %w", err)
	}
	buf = buf[:n]

Decode one sector from a stream and continue after it:

	out, consumed, err := explode.DecompressFromReader(r, sectorSize, explode.StrictOptions())
	if err != nil {
		return err
	}
	_ = consumed

Decoders share nothing but the constant code tables; sectors may be decoded concurrently.
*/
package explode
