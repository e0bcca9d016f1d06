package lzss

import "io"

const literalBits = 9

// encodeToken turns a search result into a token. pos is the match position
// in window coordinates (masked here), y its length. It returns the bits to
// write and how many input bytes the token covers.
func (p Params) encodeToken(c byte, pos, y int) (bits uint32, bitsLen uint8, n int) {
	if y <= p.P() {
		return 0x100 | uint32(c), literalBits, 1
	}
	bits = uint32(pos&p.mask())<<p.ej | uint32(y-p.P()-1)
	return bits, uint8(1 + p.ei + p.ej), y
}

// readToken decodes the next token. For a literal length is 0. ok is false
// when the stream ends inside the token.
func readToken[R io.ByteReader](p Params, br *bitsReader[R]) (literal byte, offset, length int, ok bool, err error) {
	v, ok, err := br.readBits(literalBits)
	if !ok {
		return 0, 0, 0, false, err
	}
	if v&0x100 != 0 {
		return byte(v), 0, 0, true, nil
	}
	rest := uint8(p.ei + p.ej + 1 - literalBits)
	v2, ok, err := br.readBits(rest)
	if !ok {
		return 0, 0, 0, false, err
	}
	v = v<<rest | v2
	offset = int(v >> p.ej)
	length = int(v&(1<<p.ej-1)) + p.P() + 1
	return 0, offset, length, true, nil
}
