package explode

import (
	"math/rand"
	"testing"
)

// tokenWriter emits explode token streams bit-exactly from explicit tokens and tracks
// the output a decoder must produce. It performs no match search.
type tokenWriter struct {
	hdr Header
	buf []byte
	acc uint32
	n   uint
	ref []byte
}

func newTokenWriter(lit LiteralMode, dictSizeCode uint8) *tokenWriter {
	return &tokenWriter{
		hdr: Header{Literal: lit, DictSizeCode: dictSizeCode},
		buf: []byte{byte(lit), dictSizeCode},
	}
}

func (w *tokenWriter) bits(v uint32, k uint) {
	w.acc |= v << w.n
	w.n += k
	for w.n >= 8 {
		w.buf = append(w.buf, byte(w.acc))
		w.acc >>= 8
		w.n -= 8
	}
}

func (w *tokenWriter) literal(b byte) {
	w.bits(0, 1)
	if w.hdr.Literal == LiteralFixed {
		w.bits(uint32(b), 8)
	} else {
		w.bits(uint32(chCode[b]), uint(chBits[b]))
	}
	w.ref = append(w.ref, b)
}

func (w *tokenWriter) literals(data []byte) {
	for _, b := range data {
		w.literal(b)
	}
}

// length writes the flag bit and the length code for n.
func (w *tokenWriter) length(n int) {
	w.bits(1, 1)
	for i := range lenBase {
		base := int(lenBase[i])
		if n >= base && n < base+1<<exLenBits[i] {
			w.bits(uint32(lenCode[i]), uint(lenBits[i]))
			w.bits(uint32(n-base), uint(exLenBits[i]))
			return
		}
	}
	panic("copy length out of range")
}

// copyMatch writes a copy token. The expected output is only tracked while
// distance points into bytes already produced.
func (w *tokenWriter) copyMatch(n, distance int) {
	w.length(n)
	low := uint(w.hdr.DictSizeCode)
	if n == shortCopyLength {
		low = shortCopyBits
	}
	hi := distance >> low
	w.bits(uint32(offsCode[hi]), uint(offsBits[hi]))
	w.bits(uint32(distance)&(1<<low-1), low)

	if distance < len(w.ref) {
		for k := 0; k < n; k++ {
			w.ref = append(w.ref, w.ref[len(w.ref)-1-distance])
		}
	}
}

func (w *tokenWriter) end() {
	w.length(EndOfStream)
}

func (w *tokenWriter) bytes() []byte {
	out := append([]byte(nil), w.buf...)
	if w.n > 0 {
		out = append(out, byte(w.acc))
	}

	return out
}

// randomStream builds a terminated stream of literals and valid copies.
func randomStream(t testing.TB, seed int64, lit LiteralMode, dictSizeCode uint8, tokens int) ([]byte, []byte) {
	t.Helper()

	rng := rand.New(rand.NewSource(seed))
	w := newTokenWriter(lit, dictSizeCode)
	dictSize := 64 << dictSizeCode
	for i := 0; i < tokens; i++ {
		if len(w.ref) == 0 || rng.Intn(10) < 6 {
			w.literal(byte(rng.Intn(256)))
			continue
		}

		n := 2 + rng.Intn(EndOfStream-2)
		limit := min(len(w.ref), dictSize)
		if n == shortCopyLength {
			limit = min(len(w.ref), 256)
		}
		w.copyMatch(n, rng.Intn(limit))
	}
	w.end()

	return w.bytes(), w.ref
}
