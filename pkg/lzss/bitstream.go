package lzss

import (
	"errors"
	"io"
)

// bitsReader unpacks MSB-first fields of up to 24 bits from a byte source.
type bitsReader[R io.ByteReader] struct {
	reader  R
	bits    uint32
	bitsLen uint8
}

func newBitsReader[R io.ByteReader](r R) bitsReader[R] {
	return bitsReader[R]{reader: r}
}

// readBits returns ok == false once the source ends before bitsLen bits are
// available. Other source errors are returned as *ReadError.
func (br *bitsReader[R]) readBits(bitsLen uint8) (uint32, bool, error) {
	if bitsLen > 24 {
		panic("Invalid bitsLen")
	}
	for br.bitsLen < bitsLen {
		b, err := br.reader.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, false, nil
			}
			return 0, false, &ReadError{Err: err}
		}
		br.bits = br.bits<<8 | uint32(b)
		br.bitsLen += 8
	}
	br.bitsLen -= bitsLen
	return (br.bits >> br.bitsLen) & (1<<bitsLen - 1), true, nil
}

// maxWriteBits is the widest token: a flag bit plus EI+EJ <= 24 bits.
// With at most 7 bits pending it still fits the 32 bit accumulator.
const maxWriteBits = 25

// bitsWriter packs MSB-first fields of up to maxWriteBits bits into a byte sink.
type bitsWriter[W io.ByteWriter] struct {
	writer  W
	bits    uint32
	bitsLen uint8
}

func newBitsWriter[W io.ByteWriter](w W) bitsWriter[W] {
	return bitsWriter[W]{writer: w}
}

func (bw *bitsWriter[W]) writeBits(bits uint32, bitsLen uint8) error {
	if bitsLen < 1 || bitsLen > maxWriteBits {
		panic("Invalid bitsLen")
	}
	bw.bits = bw.bits<<bitsLen | bits&(1<<bitsLen-1)
	bw.bitsLen += bitsLen
	for bw.bitsLen >= 8 {
		bw.bitsLen -= 8
		if err := bw.writer.WriteByte(byte(bw.bits >> bw.bitsLen)); err != nil {
			return &WriteError{Err: err}
		}
	}
	return nil
}

// flush writes the pending bits, left-justified and padded with zeros.
func (bw *bitsWriter[W]) flush() error {
	if bw.bitsLen == 0 {
		return nil
	}
	b := byte(bw.bits << (8 - bw.bitsLen))
	bw.bits = 0
	bw.bitsLen = 0
	if err := bw.writer.WriteByte(b); err != nil {
		return &WriteError{Err: err}
	}
	return nil
}
