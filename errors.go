package flatarc

import (
	"errors"
	"fmt"

	"github.com/andreyvit/flatarc/intern"
)

var (
	ErrBufferFull        = errors.New("archive buffer limit exceeded")
	ErrBadAlignment      = errors.New("alignment must be a power of two")
	ErrScratchMismatch   = errors.New("scratch space popped out of order")
	ErrDuplicateShared   = errors.New("shared value registered twice")
	ErrSharedMismatch    = errors.New("shared value does not match archived record")
	ErrInternCapacity    = errors.New("intern registry capacity exceeded")
	ErrMissingCapability = errors.New("serializer lacks required capability")
	ErrUnsupported       = errors.New("unsupported type")
	ErrCorrupted         = errors.New("corrupted archive")
	ErrNotText           = intern.ErrNotText
)

// DataError reports a problem with archived bytes at a given offset.
type DataError struct {
	Data []byte
	Off  int
	Err  error
	Msg  string
}

func dataErrf(data []byte, off int, err error, format string, args ...any) error {
	if err == nil {
		err = ErrCorrupted
	}
	return &DataError{data, off, err, fmt.Sprintf(format, args...)}
}

func (e *DataError) Unwrap() error {
	return e.Err
}

func (e *DataError) Error() string {
	const prefixLen = 64
	const suffixLen = 32
	n := len(e.Data)
	if n <= prefixLen+suffixLen {
		return fmt.Sprintf("%s at %d: %v: (%d) %x", e.Msg, e.Off, e.Err, n, e.Data)
	} else {
		p, s := e.Data[:prefixLen], e.Data[n-suffixLen:]
		return fmt.Sprintf("%s at %d: %v: (%d) %x...%x", e.Msg, e.Off, e.Err, n, p, s)
	}
}
