package flatarc

import (
	"encoding/binary"
	"unsafe"
)

func ensureCapacity(buf []byte, minCap int) []byte {
	c := cap(buf)
	if minCap > c {
		if c < 64 {
			c = 64
		}
		for minCap > c {
			c <<= 1
		}
		old := buf
		buf = make([]byte, len(old), c)
		copy(buf, old)
	}
	return buf
}

// grow extends buf by n bytes and returns the offset of the new region. The
// new region is not guaranteed to be zeroed when buf is being reused.
func grow(buf []byte, n int) (int, []byte) {
	off := len(buf)
	newLen := off + n
	buf = ensureCapacity(buf, newLen)
	return off, buf[:newLen]
}

func appendRaw(buf []byte, chunk []byte) []byte {
	n := len(chunk)
	off, buf := grow(buf, n)
	copy(buf[off:], chunk)
	return buf
}

func appendZeros(buf []byte, n int) []byte {
	off, buf := grow(buf, n)
	clear(buf[off:])
	return buf
}

func alignUp(pos, align int) int {
	return (pos + align - 1) &^ (align - 1)
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func putRef(out []byte, off int32, n uint32) {
	binary.LittleEndian.PutUint32(out[0:], uint32(off))
	binary.LittleEndian.PutUint32(out[4:], n)
}

func getRef(b []byte) (int32, uint32) {
	return int32(binary.LittleEndian.Uint32(b[0:])), binary.LittleEndian.Uint32(b[4:])
}

func unsafeBytesFromString(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// unsafeStringFromBytes aliases b; b must never be modified afterwards.
func unsafeStringFromBytes(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}
