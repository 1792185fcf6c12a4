// Package arcstore keeps named archives in a key-value store and hands them
// out for zero-copy reading.
package arcstore

import (
	"context"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.etcd.io/bbolt"
	"go.trai.ch/zerr"

	"github.com/andreyvit/flatarc"
)

var (
	ErrNotFound = errors.New("archive not found")
	ErrChecksum = errors.New("archive checksum mismatch")
	ErrName     = errors.New("invalid archive name")
)

const (
	bucketName   = "archives"
	checksumSize = 8
)

type Options struct {
	Logger    *slog.Logger
	IsTesting bool
	MmapSize  int
}

// Store holds named archives. Each stored value is the archive followed by
// its little-endian xxhash64.
type Store struct {
	st     storage
	logger *slog.Logger
}

// OpenBolt opens (creating if needed) a Bolt database at path.
func OpenBolt(path string, opt Options) (*Store, error) {
	bopt := &bbolt.Options{}
	*bopt = *bbolt.DefaultOptions
	bopt.Timeout = 10 * time.Second
	if opt.IsTesting {
		bopt.NoSync = true
		bopt.NoFreelistSync = true
		bopt.InitialMmapSize = 1024 * 1024 * 5
	} else {
		bopt.FreelistType = bbolt.FreelistMapType
	}
	if opt.MmapSize != 0 {
		bopt.InitialMmapSize = opt.MmapSize
	}
	bdb, err := bbolt.Open(path, 0o666, bopt)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open archive store"), "path", path)
	}
	return newStore(&boltStorage{bdb: bdb}, opt), nil
}

// NewMemory returns a transient in-memory store.
func NewMemory(opt Options) *Store {
	return newStore(newMemStorage(), opt)
}

func newStore(st storage, opt Options) *Store {
	if opt.Logger == nil {
		opt.Logger = slog.Default()
	}
	return &Store{st: st, logger: opt.Logger}
}

func (s *Store) Close() error {
	return s.st.Close()
}

func checkName(name string) error {
	if name == "" {
		return zerr.Wrap(ErrName, "archive name is empty")
	}
	return nil
}

func (s *Store) update(f func(b storageBucket) error) error {
	tx, err := s.st.BeginTx(true)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	b, err := tx.CreateBucket(bucketName)
	if err != nil {
		return err
	}
	if err := f(b); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) view(f func(b storageBucket) error) error {
	tx, err := s.st.BeginTx(false)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	b := tx.Bucket(bucketName)
	if b == nil {
		return f(nil)
	}
	return f(b)
}

// Put stores archive under name, replacing any previous archive.
func (s *Store) Put(name string, archive []byte) error {
	if err := checkName(name); err != nil {
		return err
	}
	value := make([]byte, len(archive), len(archive)+checksumSize)
	copy(value, archive)
	value = binary.LittleEndian.AppendUint64(value, xxhash.Sum64(archive))
	err := s.update(func(b storageBucket) error {
		return b.Put([]byte(name), value)
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to store archive"), "name", name)
	}
	return nil
}

// View verifies the archive stored under name and passes it to f. The slice
// aliases storage memory and is only valid while f runs.
func (s *Store) View(name string, f func(archive []byte) error) error {
	if err := checkName(name); err != nil {
		return err
	}
	return s.view(func(b storageBucket) error {
		var value []byte
		if b != nil {
			value = b.Get([]byte(name))
		}
		if value == nil {
			return zerr.With(zerr.Wrap(ErrNotFound, "failed to view archive"), "name", name)
		}
		archive, err := s.verify(name, value)
		if err != nil {
			return err
		}
		return f(archive)
	})
}

func (s *Store) verify(name string, value []byte) ([]byte, error) {
	n := len(value) - checksumSize
	if n < 0 {
		s.logger.LogAttrs(context.Background(), slog.LevelWarn, "arcstore: truncated archive", slog.String("name", name), slog.Int("size", len(value)))
		return nil, zerr.With(zerr.Wrap(ErrChecksum, "archive is truncated"), "name", name)
	}
	archive := value[:n:n]
	want := binary.LittleEndian.Uint64(value[n:])
	if got := xxhash.Sum64(archive); got != want {
		s.logger.LogAttrs(context.Background(), slog.LevelWarn, "arcstore: checksum mismatch", slog.String("name", name), slog.Int("size", n), slog.Uint64("want", want), slog.Uint64("got", got))
		return nil, zerr.With(zerr.Wrap(ErrChecksum, "archive is corrupted"), "name", name)
	}
	return archive, nil
}

// Delete removes the archive stored under name. Deleting a missing archive
// is not an error.
func (s *Store) Delete(name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	err := s.update(func(b storageBucket) error {
		return b.Delete([]byte(name))
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to delete archive"), "name", name)
	}
	return nil
}

// Names lists stored archive names in byte order.
func (s *Store) Names() ([]string, error) {
	var names []string
	err := s.view(func(b storageBucket) error {
		if b == nil {
			return nil
		}
		c := b.Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			names = append(names, string(k))
		}
		return nil
	})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to list archives")
	}
	return names, nil
}

// Save marshals v and stores it under name.
func Save(s *Store, name string, v any, opt flatarc.Options) error {
	archive, err := flatarc.Marshal(v, opt)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to marshal archive"), "name", name)
	}
	return s.Put(name, archive)
}

// Load decodes the archive stored under name into out. Decoded values never
// borrow storage memory, which is released when Load returns.
func Load(s *Store, name string, out any, opt flatarc.Options) error {
	opt.Borrow = false
	return s.View(name, func(archive []byte) error {
		return flatarc.Unmarshal(archive, out, opt)
	})
}
