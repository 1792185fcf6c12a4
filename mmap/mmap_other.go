//go:build !unix && !windows

package mmap

import (
	"fmt"
	"os"
	"runtime"
)

func mmap(f *os.File, size int, opt Options) ([]byte, error) {
	return nil, fmt.Errorf("%w on %s", ErrUnsupported, runtime.GOOS)
}

func munmap(b []byte) error {
	return fmt.Errorf("%w on %s", ErrUnsupported, runtime.GOOS)
}
