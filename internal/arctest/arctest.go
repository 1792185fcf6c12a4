// Package arctest has helpers for spelling out and comparing archive bytes
// in tests.
package arctest

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"testing"
)

// Logger returns a slog.Logger writing through t.Log.
func Logger(t testing.TB) *slog.Logger {
	return slog.New(slog.NewTextHandler(&logWriter{t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

type logWriter struct{ t testing.TB }

func (c *logWriter) Write(buf []byte) (int, error) {
	c.t.Log(strings.TrimSuffix(string(buf), "\n"))
	return len(buf), nil
}

// Expand turns a whitespace-separated byte pattern into bytes. Elements:
//
//	0a_ff     hex bytes (underscores and spaces separate bytes)
//	'alice    literal text
//	#-16      little-endian int32
//	00*3      repeat an element
//	01..      pad the element with zeros to 4 bytes; "..." pads to 8
//	xx/note   anything after a slash is a comment
func Expand(patterns ...string) []byte {
	var b []byte
	for _, pattern := range patterns {
		for _, elem := range strings.Fields(pattern) {
			base, _, _ := strings.Cut(elem, "/")
			if base == "" {
				continue
			}
			base, repStr, _ := strings.Cut(base, "*")
			rep := 1
			if repStr != "" {
				var err error
				rep, err = strconv.Atoi(repStr)
				if err != nil {
					panic(fmt.Sprintf("invalid repeat count %q in element %q", repStr, elem))
				}
			}

			padTo := 0
			if s, ok := strings.CutSuffix(base, "..."); ok {
				base, padTo = s, 8
			} else if s, ok := strings.CutSuffix(base, ".."); ok {
				base, padTo = s, 4
			}

			chunk, err := decodeElem(base)
			if err != nil {
				panic(fmt.Errorf("%w in element %q", err, elem))
			}
			for len(chunk) < padTo {
				chunk = append(chunk, 0)
			}
			for range rep {
				b = append(b, chunk...)
			}
		}
	}
	return b
}

func decodeElem(s string) ([]byte, error) {
	if num, ok := strings.CutPrefix(s, "#"); ok {
		v, err := strconv.ParseInt(num, 10, 32)
		if err != nil {
			return nil, err
		}
		return binary.LittleEndian.AppendUint32(nil, uint32(int32(v))), nil
	}
	if text, ok := strings.CutPrefix(s, "'"); ok {
		return []byte(text), nil
	}
	var data []byte
	for _, part := range strings.Split(s, "_") {
		if len(part)%2 != 0 {
			return nil, fmt.Errorf("odd number of hex digits in %q", part)
		}
		for i := 0; i < len(part); i += 2 {
			v, err := strconv.ParseUint(part[i:i+2], 16, 8)
			if err != nil {
				return nil, err
			}
			data = append(data, byte(v))
		}
	}
	return data, nil
}

// HexDump renders b eight bytes per line, marking the byte at highlightOff
// (pass -1 for none).
func HexDump(b []byte, highlightOff int) string {
	var buf strings.Builder
	for off := 0; off == 0 || off < len(b); off += 8 {
		fmt.Fprintf(&buf, "%08x", off)
		for i := off; i < off+8; i++ {
			switch {
			case i >= len(b):
				buf.WriteString("   ")
			case i == highlightOff:
				fmt.Fprintf(&buf, ">%02x", b[i])
			default:
				fmt.Fprintf(&buf, " %02x", b[i])
			}
		}
		buf.WriteString("  |")
		for i := off; i < off+8 && i < len(b); i++ {
			if c := b[i]; c >= 32 && c <= 126 {
				buf.WriteByte(c)
			} else {
				buf.WriteByte('.')
			}
		}
		buf.WriteString("|\n")
	}
	return buf.String()
}

// BytesEq reports a hex dump of both sides with the first difference marked
// when a and e differ.
func BytesEq(t testing.TB, a, e []byte) bool {
	if bytes.Equal(a, e) {
		return true
	}
	off := min(len(a), len(e))
	for i := range off {
		if a[i] != e[i] {
			off = i
			break
		}
	}
	t.Helper()
	t.Errorf("** got:\n%v\nwanted:\n%v\nfirst difference offset: 0x%x (%d)", HexDump(a, off), HexDump(e, off), off, off)
	return false
}
