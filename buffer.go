package flatarc

import (
	"fmt"
	"math"
)

// maxArchiveSize keeps every relative offset representable as int32.
const maxArchiveSize = math.MaxInt32

// AlignedSerializer writes records into a growable, append-only byte buffer.
type AlignedSerializer struct {
	buf   []byte
	limit int
}

// NewAlignedSerializer returns a serializer that reuses buf's capacity. A
// positive limit caps the archive size.
func NewAlignedSerializer(buf []byte, limit int) *AlignedSerializer {
	if limit <= 0 || limit > maxArchiveSize {
		limit = maxArchiveSize
	}
	return &AlignedSerializer{buf: buf[:0], limit: limit}
}

func (s *AlignedSerializer) Pos() int {
	return len(s.buf)
}

func (s *AlignedSerializer) reserve(n int) error {
	if need := len(s.buf) + n; need > s.limit {
		return fmt.Errorf("%w: need %d bytes, limit is %d", ErrBufferFull, need, s.limit)
	}
	return nil
}

func (s *AlignedSerializer) Write(b []byte) error {
	if err := s.reserve(len(b)); err != nil {
		return err
	}
	s.buf = appendRaw(s.buf, b)
	return nil
}

func (s *AlignedSerializer) Pad(n int) error {
	if err := s.reserve(n); err != nil {
		return err
	}
	s.buf = appendZeros(s.buf, n)
	return nil
}

func (s *AlignedSerializer) Align(align int) (int, error) {
	if !isPowerOfTwo(align) {
		return 0, fmt.Errorf("%w: %d", ErrBadAlignment, align)
	}
	pos := len(s.buf)
	if pad := alignUp(pos, align) - pos; pad > 0 {
		if err := s.Pad(pad); err != nil {
			return 0, err
		}
	}
	return len(s.buf), nil
}

func (s *AlignedSerializer) ResolveAligned(layout Layout, resolve func(pos int, out []byte)) (int, error) {
	pos, err := s.Align(layout.Align)
	if err != nil {
		return 0, err
	}
	if err := s.reserve(layout.Size); err != nil {
		return 0, err
	}
	off, buf := grow(s.buf, layout.Size)
	s.buf = buf
	out := buf[off:]
	clear(out)
	resolve(pos, out)
	return pos, nil
}

// Bytes returns the archive written so far. The slice aliases the internal
// buffer until the next write.
func (s *AlignedSerializer) Bytes() []byte {
	return s.buf
}
