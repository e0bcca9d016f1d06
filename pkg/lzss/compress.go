package lzss

import (
	"fmt"
	"io"
)

// Writer is a byte sink producing a final output of type T.
// Finish is called once, and only after every WriteByte succeeded.
type Writer[T any] interface {
	io.ByteWriter
	Finish() (T, error)
}

// Compress reads r until io.EOF and writes the compressed stream to w.
// A 2N byte window is allocated for the call.
func Compress[T any](p Params, r io.ByteReader, w Writer[T]) (T, error) {
	return CompressWithBuffer(p, r, w, make([]byte, 2*p.N()))
}

// CompressWithBuffer is like Compress but uses buf as the window.
// It panics if buf is shorter than 2N.
func CompressWithBuffer[T any](p Params, r io.ByteReader, w Writer[T], buf []byte) (T, error) {
	if len(buf) < 2*p.N() {
		panic(fmt.Sprintf("lzss: compress buffer is %d bytes, need %d", len(buf), 2*p.N()))
	}

	var err error
	// Same instantiation switch as DecompressWithBuffer.
	switch sink := any(w).(type) {
	case *VecWriter:
		err = compress(p, r, sink, buf)
	case *SliceWriter:
		err = compress(p, r, sink, buf)
	case *StreamWriter:
		err = compress(p, r, sink, buf)
	default:
		err = compress[io.ByteReader, io.ByteWriter](p, r, w, buf)
	}
	if err != nil {
		var zero T
		return zero, err
	}
	return finish(w)
}

func compress[R io.ByteReader, W io.ByteWriter](p Params, r R, w W, buf []byte) error {
	win := newWindow(p, r, buf)
	if err := win.fill(); err != nil {
		return err
	}

	bw := newBitsWriter(w)
	for win.r < win.end {
		x, y := longestMatch(win.buf, win.s, win.r, win.lookahead())
		bits, bitsLen, n := p.encodeToken(win.buf[win.r], x, y)
		if err := bw.writeBits(bits, bitsLen); err != nil {
			return err
		}
		if err := win.advance(n); err != nil {
			return err
		}
	}
	return bw.flush()
}

func finish[T any](w Writer[T]) (T, error) {
	out, err := w.Finish()
	if err != nil {
		return out, &WriteError{Err: err}
	}
	return out, nil
}

// CompressBytes compresses src into a new slice.
func (p Params) CompressBytes(src []byte) []byte {
	out, err := Compress(p, &sliceReader{data: src}, NewVecWriter(p.MaxCompressedLen(len(src))))
	mustNotFail(err)
	return out
}

// mustNotFail is used where neither the source nor the sink can fail.
func mustNotFail(err error) {
	if err != nil {
		panic("lzss: infallible reader or writer failed: " + err.Error())
	}
}
