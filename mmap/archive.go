package mmap

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
)

// MaxSize is the largest archive Open maps. Archive offsets are 32-bit.
const MaxSize = math.MaxInt32

// File is an archive file mapped read-only into memory.
type File struct {
	f    *os.File
	data []byte
}

// Open maps the whole file at path read-only. Writable is ignored.
func Open(path string, opt Options) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	size := st.Size()
	if size > MaxSize {
		f.Close()
		return nil, fmt.Errorf("mmap: %s is %d bytes, max is %d", path, size, int64(MaxSize))
	}
	if size == 0 {
		return &File{f: f}, nil
	}
	data, err := mmap(f, int(size), opt&^Writable)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}
	return &File{f: f, data: data}, nil
}

// Bytes returns the mapped contents. The slice is invalid after Close.
func (f *File) Bytes() []byte {
	return f.data
}

func (f *File) Len() int {
	return len(f.data)
}

func (f *File) Close() error {
	var err error
	if f.data != nil {
		err = munmap(f.data)
		f.data = nil
	}
	return errors.Join(err, f.f.Close())
}

// WriteFile atomically replaces path with data: it writes a temporary file in
// the same directory, syncs it and renames it into place.
func WriteFile(path string, data []byte) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	f, err := os.CreateTemp(dir, base+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()
	_, err = f.Write(data)
	if err == nil {
		err = Fdatasync(f, nil)
	}
	err = errors.Join(err, f.Close())
	if err == nil {
		err = os.Rename(tmp, path)
	}
	if err != nil {
		os.Remove(tmp)
		return fmt.Errorf("mmap: writing %s: %w", path, err)
	}
	return nil
}
