package lzss

import (
	"errors"
	"io"
)

// window is the 2N byte compression buffer. Bytes in [s, r) are the history
// searched for matches, [r, end) is the lookahead still to be encoded.
type window[R io.ByteReader] struct {
	reader R
	eof    bool
	buf    []byte
	n      int
	f      int
	r      int
	s      int
	end    int
}

func newWindow[R io.ByteReader](p Params, r R, buf []byte) *window[R] {
	n, f := p.N(), p.F()
	buf = buf[:2*n]
	for i := range buf[:n-f] {
		buf[i] = p.c
	}
	return &window[R]{
		reader: r,
		buf:    buf,
		n:      n,
		f:      f,
		r:      n - f,
		end:    n - f,
	}
}

// fill reads from the source until the buffer is full or the source ends.
func (w *window[R]) fill() error {
	for !w.eof && w.end < len(w.buf) {
		b, err := w.reader.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				w.eof = true
				return nil
			}
			return &ReadError{Err: err}
		}
		w.buf[w.end] = b
		w.end++
	}
	return nil
}

func (w *window[R]) lookahead() int {
	return min(w.f, w.end-w.r)
}

// advance consumes n encoded bytes and slides the window down by N once
// the lookahead would run past the end of the buffer.
func (w *window[R]) advance(n int) error {
	w.r += n
	w.s += n
	if w.r < 2*w.n-w.f {
		return nil
	}
	copy(w.buf[:w.n], w.buf[w.n:])
	w.end -= w.n
	w.r -= w.n
	w.s -= w.n
	return w.fill()
}

// ring is the N byte circular dictionary of the decoder.
type ring struct {
	buf  []byte
	mask int
	r    int
}

func newRing(p Params, buf []byte) *ring {
	buf = buf[:p.N()]
	for i := range buf {
		buf[i] = p.c
	}
	return &ring{
		buf:  buf,
		mask: p.mask(),
		r:    p.N() - p.F(),
	}
}

// emit forwards b to the sink and records it as history.
func emit[W io.ByteWriter](d *ring, w W, b byte) error {
	if err := w.WriteByte(b); err != nil {
		return &WriteError{Err: err}
	}
	d.buf[d.r] = b
	d.r = (d.r + 1) & d.mask
	return nil
}
