package flatarc

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// InternSerializeMap is the default InternSerializeRegistry. Content is
// keyed by its raw bytes, so every wrapper type that archives string-shaped
// content shares the same entries.
//
// MaxEntries and MaxBytes, when positive, bound the registry; AddInterned
// fails with ErrInternCapacity once a bound would be exceeded.
type InternSerializeMap struct {
	MaxEntries int
	MaxBytes   int

	first    map[uint64]internEntry
	overflow map[uint64][]internEntry
	stats    InternStats
}

type internEntry struct {
	content string
	pos     int
}

// InternStats describes registry usage during a session.
type InternStats struct {
	Entries    int // distinct contents stored
	Bytes      int // total size of distinct contents
	Lookups    int
	Hits       int
	SavedBytes int // bytes not written thanks to hits
}

func NewInternSerializeMap() *InternSerializeMap {
	return &InternSerializeMap{
		first: make(map[uint64]internEntry),
	}
}

func (m *InternSerializeMap) GetInterned(content string) (int, bool) {
	m.stats.Lookups++
	h := xxhash.Sum64String(content)
	e, ok := m.first[h]
	if !ok {
		return 0, false
	}
	if e.content != content {
		for _, e = range m.overflow[h] {
			if e.content == content {
				break
			}
		}
		if e.content != content {
			return 0, false
		}
	}
	m.stats.Hits++
	m.stats.SavedBytes += len(content)
	return e.pos, true
}

func (m *InternSerializeMap) AddInterned(content string, pos int) error {
	if m.MaxEntries > 0 && m.stats.Entries+1 > m.MaxEntries {
		return fmt.Errorf("%w: %d entries", ErrInternCapacity, m.MaxEntries)
	}
	if m.MaxBytes > 0 && m.stats.Bytes+len(content) > m.MaxBytes {
		return fmt.Errorf("%w: %d bytes", ErrInternCapacity, m.MaxBytes)
	}
	if m.first == nil {
		m.first = make(map[uint64]internEntry)
	}
	h := xxhash.Sum64String(content)
	e := internEntry{content, pos}
	if _, taken := m.first[h]; taken {
		if m.overflow == nil {
			m.overflow = make(map[uint64][]internEntry)
		}
		m.overflow[h] = append(m.overflow[h], e)
	} else {
		m.first[h] = e
	}
	m.stats.Entries++
	m.stats.Bytes += len(content)
	return nil
}

func (m *InternSerializeMap) Len() int {
	return m.stats.Entries
}

func (m *InternSerializeMap) Stats() InternStats {
	return m.stats
}

// SerializeInterned writes value's bytes unless equal content has already
// been written in this session, and returns the position of the single
// stored copy.
func SerializeInterned(s InternSerializer, value string) (int, error) {
	if pos, ok := s.GetInterned(value); ok {
		return pos, nil
	}
	pos := s.Pos()
	if err := s.Write(unsafeBytesFromString(value)); err != nil {
		return 0, err
	}
	if err := s.AddInterned(strings.Clone(value), pos); err != nil {
		return 0, err
	}
	return pos, nil
}

// SerializeInternedBytes is SerializeInterned for byte slices. Equal strings
// and byte slices share a stored copy.
func SerializeInternedBytes(s InternSerializer, value []byte) (int, error) {
	if pos, ok := s.GetInterned(unsafeStringFromBytes(value)); ok {
		return pos, nil
	}
	pos := s.Pos()
	if err := s.Write(value); err != nil {
		return 0, err
	}
	if err := s.AddInterned(string(value), pos); err != nil {
		return 0, err
	}
	return pos, nil
}
