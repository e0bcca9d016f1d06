package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/ei-projects/lzss/pkg/lzss"
	"github.com/nuclio/errors"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func newCompressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "compress",
		Aliases: []string{"e"},
		Short:   "Compress input to output",
		Args:    cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			if inPlace, _ := cmd.Flags().GetBool("in-place"); inPlace {
				return runInPlace(cmd)
			}
			return runCodec(cmd, false)
		},
	}
	addCodecFlags(cmd)
	cmd.Flags().Bool("in-place", false, "Compress inside a single buffer holding the whole input")
	return cmd
}

func newDecompressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "decompress",
		Aliases: []string{"d"},
		Short:   "Decompress input to output",
		Args:    cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCodec(cmd, true)
		},
	}
	addCodecFlags(cmd)
	return cmd
}

func addCodecFlags(cmd *cobra.Command) {
	cmd.Flags().String("params", "", `Parameters as "ei,ej,c", e.g. 10,4,0x20`)
	cmd.Flags().StringP("input", "i", "-", "Input file, - for stdin")
	cmd.Flags().StringP("output", "o", "-", "Output file, - for stdout")
	cmd.Flags().Bool("progress", false, "Show progress bar on stderr")
	cmd.Flags().Bool("stats", false, "Print compression ratio on stderr")
}

func resolveParams(cmd *cobra.Command) (lzss.Params, error) {
	if raw, _ := cmd.Flags().GetString("params"); raw != "" {
		p, err := lzss.ParseParams(raw)
		if err != nil {
			return lzss.Params{}, errors.Wrap(err, "Invalid --params")
		}
		return p, nil
	}
	return cfg.Params()
}

func openInput(cmd *cobra.Command) (io.ReadCloser, int64, error) {
	path, _ := cmd.Flags().GetString("input")
	if path == "-" {
		return io.NopCloser(cmd.InOrStdin()), 0, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "Failed to open input %s", path)
	}
	var size int64
	if info, err := f.Stat(); err == nil && info.Mode().IsRegular() {
		size = info.Size()
	}
	return f, size, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func openOutput(cmd *cobra.Command) (io.WriteCloser, error) {
	path, _ := cmd.Flags().GetString("output")
	if path == "-" {
		return nopWriteCloser{cmd.OutOrStdout()}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to create output %s", path)
	}
	return f, nil
}

func runCodec(cmd *cobra.Command, decompress bool) error {
	p, err := resolveParams(cmd)
	if err != nil {
		return err
	}
	in, size, err := openInput(cmd)
	if err != nil {
		return err
	}
	defer in.Close() // nolint: errcheck
	out, err := openOutput(cmd)
	if err != nil {
		return err
	}

	var src io.Reader = in
	if progress, _ := cmd.Flags().GetBool("progress"); progress {
		bar := pb.New64(size)
		bar.Set(pb.Bytes, true)
		bar.SetWriter(cmd.ErrOrStderr())
		bar.Start()
		defer bar.Finish()
		src = bar.NewProxyReader(in)
	}

	head := &headRecorder{limit: 64}
	reader := &lzss.CountingReader{R: bufio.NewReader(src)}
	writer := lzss.NewStreamWriter(io.MultiWriter(out, head))

	log.Debugf("Running with params %s", p)
	var written int64
	if decompress {
		written, err = lzss.Decompress(p, reader, writer)
	} else {
		written, err = lzss.Compress(p, reader, writer)
	}
	if cerr := out.Close(); err == nil && cerr != nil {
		err = errors.Wrap(cerr, "Failed to close output")
	}
	if err != nil {
		return errors.Wrap(err, "Codec failed")
	}

	log.Debugf("Read %d bytes, wrote %d bytes, output starts with:\n%s",
		reader.Count, written, getHexDump(head.buf))
	if stats, _ := cmd.Flags().GetBool("stats"); stats {
		printStats(cmd.ErrOrStderr(), reader.Count, written, decompress)
	}
	return nil
}

// runInPlace loads the whole input at offset MinOffset+n/8 of one buffer,
// which is always enough room to finish.
func runInPlace(cmd *cobra.Command) error {
	p, err := resolveParams(cmd)
	if err != nil {
		return err
	}
	in, _, err := openInput(cmd)
	if err != nil {
		return err
	}
	defer in.Close() // nolint: errcheck

	data, err := io.ReadAll(in)
	if err != nil {
		return errors.Wrap(err, "Failed to read input")
	}
	offset := p.MinOffset() + len(data)/8
	buf := make([]byte, offset+len(data))
	copy(buf[offset:], data)

	n, rest, partial := p.CompressInPlace(buf, offset)
	if partial {
		return errors.Errorf("In-place compression stopped at %d with %d bytes written", rest, n)
	}
	log.Debugf("Compressed %d bytes in place into %d bytes:\n%s",
		len(data), n, getHexDump(buf[:min(n, 64)]))

	out, err := openOutput(cmd)
	if err != nil {
		return err
	}
	if _, err := out.Write(buf[:n]); err != nil {
		out.Close() // nolint: errcheck
		return errors.Wrap(err, "Failed to write output")
	}
	if err := out.Close(); err != nil {
		return errors.Wrap(err, "Failed to close output")
	}
	if stats, _ := cmd.Flags().GetBool("stats"); stats {
		printStats(cmd.ErrOrStderr(), int64(len(data)), int64(n), false)
	}
	return nil
}

func printStats(w io.Writer, read, written int64, decompress bool) {
	if read == 0 || written == 0 {
		return
	}
	ratio := float64(written) / float64(read)
	if decompress {
		ratio = 1 / ratio
	}
	printer := message.NewPrinter(language.English)
	printer.Fprintf(w, "read %d bytes, wrote %d bytes\n", read, written)
	fmt.Fprintf(w, "the data compression is %.2f%%\n", (1-ratio)*100)
}
