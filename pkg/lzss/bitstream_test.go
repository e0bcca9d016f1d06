package lzss

import (
	"bytes"
	"errors"
	"testing"
)

func TestReaderEOF(t *testing.T) {
	tests := []struct {
		bitsLen  uint8
		dataSize int
		reads    int
	}{
		{2, 0, 0},
		{8, 1, 1},
		{9, 2, 1},
		{24, 2, 0},
		{24, 6, 2},
	}
	for _, test := range tests {
		br := newBitsReader(bytes.NewReader(make([]byte, test.dataSize)))
		reads := 0
		for {
			_, ok, err := br.readBits(test.bitsLen)
			if err != nil {
				t.Fatalf("For %d bits unexpected err '%v'", test.bitsLen, err)
			}
			if !ok {
				break
			}
			reads++
		}
		if reads != test.reads {
			t.Errorf("For %d bits over %d bytes got %d reads, expected %d",
				test.bitsLen, test.dataSize, reads, test.reads)
		}
	}
}

func TestBitsMax(t *testing.T) {
	vals := []uint32{0xFFFFFFFF, 0x81838587, 0xDEADBEEF, 0x12345678}
	var val1, valOfs1 uint32
	var buf bytes.Buffer
	for _, val := range vals {
		for bitsCount := uint8(1); bitsCount <= 24; bitsCount++ {
			for bitsOfs := uint8(0); bitsOfs <= 24; bitsOfs++ {
				buf.Reset()
				bw := newBitsWriter(&buf)
				if bitsOfs > 0 {
					valOfs1 = val & (1<<bitsOfs - 1)
					if err := bw.writeBits(valOfs1, bitsOfs); err != nil {
						t.Fatal(err)
					}
				}
				val1 = val & (1<<bitsCount - 1)
				if err := bw.writeBits(val1, bitsCount); err != nil {
					t.Fatal(err)
				}
				if err := bw.flush(); err != nil {
					t.Fatal(err)
				}
				if want := (int(bitsOfs) + int(bitsCount) + 7) / 8; buf.Len() != want {
					t.Fatalf("%d+%d bits flushed to %d bytes, expected %d", bitsOfs, bitsCount, buf.Len(), want)
				}

				br := newBitsReader(&buf)
				if bitsOfs > 0 {
					valOfs2, ok, err := br.readBits(bitsOfs)
					if !ok || err != nil || valOfs1 != valOfs2 {
						t.FailNow()
					}
				}
				val2, ok, err := br.readBits(bitsCount)
				if !ok || err != nil || val1 != val2 {
					t.FailNow()
				}
			}
		}
	}
}

func TestBitsWidestToken(t *testing.T) {
	for pending := uint8(0); pending < 8; pending++ {
		var buf bytes.Buffer
		bw := newBitsWriter(&buf)
		if pending > 0 {
			if err := bw.writeBits(1<<pending-1, pending); err != nil {
				t.Fatal(err)
			}
		}
		if err := bw.writeBits(0x1ABCDEF, maxWriteBits); err != nil {
			t.Fatal(err)
		}
		if err := bw.flush(); err != nil {
			t.Fatal(err)
		}

		br := newBitsReader(&buf)
		if pending > 0 {
			if v, ok, err := br.readBits(pending); !ok || err != nil || v != 1<<pending-1 {
				t.Fatalf("With %d pending bits got prefix %x, %v, %v", pending, v, ok, err)
			}
		}
		hi, ok1, _ := br.readBits(9)
		lo, ok2, _ := br.readBits(16)
		if !ok1 || !ok2 || hi<<16|lo != 0x1ABCDEF {
			t.Errorf("With %d pending bits read back %x", pending, hi<<16|lo)
		}
	}
}

func TestBitsMSBFirst(t *testing.T) {
	var buf bytes.Buffer
	bw := newBitsWriter(&buf)
	_ = bw.writeBits(1, 1)
	_ = bw.writeBits('A', 8)
	_ = bw.writeBits(0x5, 3)
	_ = bw.flush()
	// 1 01000001 101 + 0000 padding
	if !bytes.Equal(buf.Bytes(), []byte{0xA0, 0xD0}) {
		t.Errorf("Unexpected packing % X", buf.Bytes())
	}
}

func TestFlushEmpty(t *testing.T) {
	var buf bytes.Buffer
	bw := newBitsWriter(&buf)
	if err := bw.flush(); err != nil || buf.Len() != 0 {
		t.Errorf("Flush without bits wrote %d bytes, err %v", buf.Len(), err)
	}
}

type failingByteIO struct {
	err error
}

func (f failingByteIO) ReadByte() (byte, error) { return 0, f.err }
func (f failingByteIO) WriteByte(byte) error    { return f.err }

func TestBitsErrors(t *testing.T) {
	boom := errors.New("boom")

	br := newBitsReader(failingByteIO{boom})
	_, ok, err := br.readBits(8)
	var readErr *ReadError
	if ok || !errors.As(err, &readErr) || !errors.Is(err, boom) {
		t.Errorf("Unexpected read result ok=%v err=%v", ok, err)
	}

	bw := newBitsWriter(failingByteIO{boom})
	err = bw.writeBits(0xFF, 8)
	var writeErr *WriteError
	if !errors.As(err, &writeErr) || !errors.Is(err, boom) {
		t.Errorf("Unexpected write err %v", err)
	}
}
