package lzss

import (
	"errors"
	"fmt"
)

// Parameter errors, returned by New in this order of priority.
var (
	ErrEJZero             = errors.New("lzss: invalid EJ, must be larger than 0")
	ErrEINotGreaterThanEJ = errors.New("lzss: invalid EI, must be larger than EJ")
	ErrSumTooSmall        = errors.New("lzss: invalid EI, EJ, both together must be 8 or more")
	ErrSumTooLarge        = errors.New("lzss: invalid EI, EJ, both together must be 24 or less")
)

// Errors of the slice writers.
var (
	ErrSliceOverflow  = errors.New("lzss: output slice is full")
	ErrSliceUnderflow = errors.New("lzss: output slice is not completely filled")
)

// ReadError is returned when the byte source fails.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("lzss: read failed: %v", e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// WriteError is returned when the byte sink fails, including in Finish.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("lzss: write failed: %v", e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
