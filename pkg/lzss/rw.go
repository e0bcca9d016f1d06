package lzss

import (
	"bufio"
	"io"
)

// sliceReader reads from a byte slice and keeps returning io.EOF at its end.
type sliceReader struct {
	data []byte
	pos  int
}

func (r *sliceReader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// CountingReader counts the bytes read from the underlying reader.
type CountingReader struct {
	R     io.ByteReader
	Count int64
}

func (r *CountingReader) ReadByte() (byte, error) {
	b, err := r.R.ReadByte()
	if err != nil {
		return 0, err
	}
	r.Count++
	return b, nil
}

// VecWriter collects the output in a growing slice. It never fails.
type VecWriter struct {
	buf []byte
}

// NewVecWriter returns a VecWriter with the given initial capacity.
func NewVecWriter(capacity int) *VecWriter {
	return &VecWriter{buf: make([]byte, 0, capacity)}
}

func (w *VecWriter) WriteByte(b byte) error {
	w.buf = append(w.buf, b)
	return nil
}

// Finish returns the collected bytes.
func (w *VecWriter) Finish() ([]byte, error) {
	return w.buf, nil
}

// SliceWriter writes into a fixed slice and fails once it is full.
type SliceWriter struct {
	buf []byte
	n   int
}

func NewSliceWriter(buf []byte) *SliceWriter {
	return &SliceWriter{buf: buf}
}

func (w *SliceWriter) WriteByte(b byte) error {
	if w.n == len(w.buf) {
		return ErrSliceOverflow
	}
	w.buf[w.n] = b
	w.n++
	return nil
}

// Finish returns the number of bytes written.
func (w *SliceWriter) Finish() (int, error) {
	return w.n, nil
}

// SliceWriterExact writes into a slice that must end up exactly full.
type SliceWriterExact struct {
	SliceWriter
}

func NewSliceWriterExact(buf []byte) *SliceWriterExact {
	return &SliceWriterExact{SliceWriter{buf: buf}}
}

// Finish fails with ErrSliceUnderflow unless the slice was filled completely.
func (w *SliceWriterExact) Finish() (struct{}, error) {
	if w.n != len(w.buf) {
		return struct{}{}, ErrSliceUnderflow
	}
	return struct{}{}, nil
}

// StreamWriter writes to an io.Writer through a buffer.
type StreamWriter struct {
	w     *bufio.Writer
	count int64
}

func NewStreamWriter(w io.Writer) *StreamWriter {
	return &StreamWriter{w: bufio.NewWriter(w)}
}

func (w *StreamWriter) WriteByte(b byte) error {
	if err := w.w.WriteByte(b); err != nil {
		return err
	}
	w.count++
	return nil
}

// Finish flushes the buffer and returns the number of bytes written.
func (w *StreamWriter) Finish() (int64, error) {
	if err := w.w.Flush(); err != nil {
		return w.count, err
	}
	return w.count, nil
}
