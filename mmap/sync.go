package mmap

import "os"

// Fdatasync flushes the data written to f, and to mapping if it is a mapping
// of f, without necessarily flushing file metadata.
//
// A failed sync leaves the file contents unknown; the caller should treat the
// file as lost rather than retry.
func Fdatasync(f *os.File, mapping []byte) error {
	return fdatasync(f, mapping)
}
