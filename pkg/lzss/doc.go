/*
Package lzss implements Lempel–Ziv–Storer–Szymanski compression with the bit
layout of Haruhiko Okumura's lzss.c.

The stream has no header, no length and no checksum. Tokens are packed MSB
first: a literal is a 1 bit followed by the byte, a match is a 0 bit followed
by EI bits of window position and EJ bits of length-P-1. The last byte is
padded with zeros. Both sides have to agree on the parameter set (EI, EJ and
the fill byte C) out of band; a truncated stream decodes to a shorter output
without an error.

Compress and Decompress pull bytes from an io.ByteReader until io.EOF and push
them into a Writer. CompressBytes and DecompressBytes work on slices.
CompressInPlace compresses a buffer into its own front.

	packed := lzss.Default.CompressBytes(data)
	data = lzss.Default.DecompressBytes(packed)

	p, err := lzss.New(12, 4, ' ')
	if err != nil {
		return err
	}
	n, err := lzss.Compress(p, bufio.NewReader(in), lzss.NewStreamWriter(out))
*/
package lzss
