package mmap

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Access hints and Prefault have no Windows equivalent and are ignored.
func mmap(f *os.File, size int, opt Options) ([]byte, error) {
	prot, access := uint32(windows.PAGE_READONLY), uint32(windows.FILE_MAP_READ)
	var sizeHi, sizeLo uint32
	if opt.Has(Writable) {
		if err := f.Truncate(int64(size)); err != nil {
			return nil, fmt.Errorf("truncate: %w", err)
		}
		prot, access = windows.PAGE_READWRITE, windows.FILE_MAP_WRITE
		sizeHi, sizeLo = uint32(uint64(size)>>32), uint32(uint64(size))
	}

	h, err := windows.CreateFileMapping(windows.Handle(f.Fd()), nil, prot, sizeHi, sizeLo, nil)
	if err != nil {
		return nil, os.NewSyscallError("CreateFileMapping", err)
	}
	defer windows.CloseHandle(h)

	addr, err := windows.MapViewOfFile(h, access, 0, 0, uintptr(size))
	if err != nil {
		return nil, os.NewSyscallError("MapViewOfFile", err)
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), nil
}

func munmap(b []byte) error {
	if err := windows.UnmapViewOfFile(uintptr(unsafe.Pointer(&b[0]))); err != nil {
		return os.NewSyscallError("UnmapViewOfFile", err)
	}
	return nil
}
