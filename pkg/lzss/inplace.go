package lzss

// CompressInPlace compresses buf[offset:] into the front of buf.
//
// If everything fits, the result is the compressed size n with partial == false
// and the stream is buf[:n]. When the output would get closer than MinGapSize
// to the input still to be read, it stops: buf[:n] then holds a complete
// stream for part of the input, partial is true, and the rest of the input is
// buf[rest:], untouched. The caller can move data around and continue.
//
// An offset below MinOffset returns (0, offset, true) without touching buf,
// an offset at or past the end returns (0, 0, false).
func (p Params) CompressInPlace(buf []byte, offset int) (n, rest int, partial bool) {
	if offset >= len(buf) {
		return 0, 0, false
	}
	if offset < p.MinOffset() {
		return 0, offset, true
	}

	n0, f := p.N(), p.F()
	for i := offset - (n0 - f); i < offset; i++ {
		buf[i] = p.c
	}

	out := &prefixWriter{buf: buf}
	bw := newBitsWriter(out)
	s, r := offset-(n0-f), offset
	// Window position of buf[i] is i+shift; r starts at N-F like the streaming window.
	shift := n0*(1+(offset+f)/n0) - (offset + f)
	gap := p.MinGapSize()

	for r < len(buf) {
		x, y := longestMatch(buf, s, r, min(f, len(buf)-r))
		bits, bitsLen, adv := p.encodeToken(buf[r], x+shift, y)
		_ = bw.writeBits(bits, bitsLen)
		r += adv
		s += adv
		// Complete bytes are written as soon as they exist, so out.n can be
		// one byte ahead of a writer that holds back a full byte. The check
		// may then stop one token earlier; the stream stays resumable.
		if out.n+gap > s {
			_ = bw.flush()
			return out.n, r, true
		}
	}
	_ = bw.flush()
	return out.n, 0, false
}

// prefixWriter writes into the front of the in-place buffer. It never fails,
// the gap check keeps it away from unread input.
type prefixWriter struct {
	buf []byte
	n   int
}

func (w *prefixWriter) WriteByte(b byte) error {
	w.buf[w.n] = b
	w.n++
	return nil
}
