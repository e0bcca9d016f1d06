package main

import (
	"fmt"
	"strings"
)

func encodeASCII(src []byte) string {
	var sb strings.Builder
	for _, b := range src {
		if b < 32 || b > 126 {
			sb.WriteByte('.')
		} else {
			sb.WriteByte(b)
		}
	}
	return sb.String()
}

// getHexDump formats data the way hexdump -C does.
func getHexDump(data []byte) string {
	var sb strings.Builder
	offset := 0
	for offset < len(data) {
		chunkLen := min(len(data)-offset, 16)
		var chunk strings.Builder
		for i := 0; i < chunkLen; i++ {
			if i > 0 && i%8 == 0 {
				chunk.WriteByte(' ')
			}
			fmt.Fprintf(&chunk, "%02X ", data[offset+i])
		}
		fmt.Fprintf(&sb, "%08X  %-49s |%s|\n", offset,
			chunk.String(), encodeASCII(data[offset:offset+chunkLen]))
		offset += chunkLen
	}
	fmt.Fprintf(&sb, "%08X\n", offset)
	return sb.String()
}

// headRecorder keeps the first limit bytes written to it.
type headRecorder struct {
	buf   []byte
	limit int
}

func (h *headRecorder) Write(p []byte) (int, error) {
	if room := h.limit - len(h.buf); room > 0 {
		h.buf = append(h.buf, p[:min(room, len(p))]...)
	}
	return len(p), nil
}
