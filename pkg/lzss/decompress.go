package lzss

import (
	"fmt"
	"io"
)

// Decompress decodes r into w until the compressed stream ends. A stream that
// ends inside a token is not an error, decoding just stops there.
func Decompress[T any](p Params, r io.ByteReader, w Writer[T]) (T, error) {
	return DecompressWithBuffer(p, r, w, make([]byte, p.N()))
}

// DecompressWithBuffer is like Decompress but uses buf as the dictionary.
// It panics if buf is shorter than N.
func DecompressWithBuffer[T any](p Params, r io.ByteReader, w Writer[T], buf []byte) (T, error) {
	if len(buf) < p.N() {
		panic(fmt.Sprintf("lzss: decompress buffer is %d bytes, need %d", len(buf), p.N()))
	}

	var err error
	// Every output byte goes through WriteByte, so the common sinks get
	// their own instantiation instead of a call through the interface.
	switch sink := any(w).(type) {
	case *VecWriter:
		err = decompress(p, r, sink, buf)
	case *SliceWriter:
		err = decompress(p, r, sink, buf)
	case *StreamWriter:
		err = decompress(p, r, sink, buf)
	default:
		err = decompress[io.ByteReader, io.ByteWriter](p, r, w, buf)
	}
	if err != nil {
		var zero T
		return zero, err
	}
	return finish(w)
}

func decompress[R io.ByteReader, W io.ByteWriter](p Params, r R, w W, buf []byte) error {
	dict := newRing(p, buf)
	br := newBitsReader(r)
	for {
		literal, offset, length, ok, err := readToken(p, &br)
		if !ok {
			return err
		}
		if length == 0 {
			if err := emit(dict, w, literal); err != nil {
				return err
			}
			continue
		}
		for k := 0; k < length; k++ {
			if err := emit(dict, w, dict.buf[(offset+k)&dict.mask]); err != nil {
				return err
			}
		}
	}
}

// DecompressBytes decompresses src into a new slice.
func (p Params) DecompressBytes(src []byte) []byte {
	out, err := Decompress(p, &sliceReader{data: src}, NewVecWriter(2*len(src)))
	mustNotFail(err)
	return out
}
