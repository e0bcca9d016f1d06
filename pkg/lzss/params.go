package lzss

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// Params is a validated parameter set. The zero value is not usable, use New.
type Params struct {
	ei int
	ej int
	c  byte
}

// Default is the parameter set used by the tools when nothing else is configured.
var Default = MustNew(10, 4, 0x20)

// Okumura matches lzss.c by Haruhiko Okumura (with its P set to (1+EI+EJ)/9).
var Okumura = MustNew(12, 4, 0x20)

// New validates ei (offset bits), ej (length bits) and the fill byte c.
func New(ei, ej int, c byte) (Params, error) {
	switch {
	case ej <= 0:
		return Params{}, ErrEJZero
	case ej >= ei:
		return Params{}, ErrEINotGreaterThanEJ
	case ei+ej < 8:
		return Params{}, ErrSumTooSmall
	case ei+ej > 24 || ei+1 >= bits.UintSize:
		return Params{}, ErrSumTooLarge
	}
	return Params{ei: ei, ej: ej, c: c}, nil
}

// MustNew is like New but panics on invalid parameters.
func MustNew(ei, ej int, c byte) Params {
	p, err := New(ei, ej, c)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseParams parses "ei,ej,c". The fill byte may be decimal or 0x-prefixed hex.
func ParseParams(s string) (Params, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 3 {
		return Params{}, fmt.Errorf("lzss: %q: expected 3 comma separated parameters", s)
	}
	ei, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return Params{}, fmt.Errorf("lzss: can't read ei: %w", err)
	}
	ej, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return Params{}, fmt.Errorf("lzss: can't read ej: %w", err)
	}
	c, err := parseFill(strings.TrimSpace(fields[2]))
	if err != nil {
		return Params{}, fmt.Errorf("lzss: can't read c: %w", err)
	}
	return New(ei, ej, c)
}

func parseFill(s string) (byte, error) {
	base := 10
	if rest, ok := strings.CutPrefix(s, "0x"); ok {
		s, base = rest, 16
	}
	v, err := strconv.ParseUint(s, base, 8)
	return byte(v), err
}

func (p Params) EI() int { return p.ei }
func (p Params) EJ() int { return p.ej }
func (p Params) C() byte { return p.c }

// N is the window size.
func (p Params) N() int { return 1 << p.ei }

// P is the longest match that is still written as literals.
func (p Params) P() int { return (1 + p.ei + p.ej) / 9 }

// F is the lookahead size and the longest encodable match.
func (p Params) F() int { return 1<<p.ej + p.P() }

// MinGapSize is the distance CompressInPlace keeps between output and unread input.
func (p Params) MinGapSize() int { return p.P() + 4 }

// MinOffset is the smallest input offset CompressInPlace accepts.
// With MinOffset()+n/8 for an input of n bytes it always completes.
func (p Params) MinOffset() int { return p.N() - p.F() + p.MinGapSize() }

// MaxCompressedLen bounds the compressed size of n input bytes.
func (p Params) MaxCompressedLen(n int) int { return (9*n + 7) / 8 }

func (p Params) String() string {
	return fmt.Sprintf("%d,%d,0x%02x", p.ei, p.ej, p.c)
}

func (p Params) mask() int { return p.N() - 1 }
