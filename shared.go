package flatarc

import "fmt"

// SharedSerializeMap records the archive position of every shared value
// written during a session.
type SharedSerializeMap struct {
	positions map[SharedKey]int
}

func NewSharedSerializeMap() *SharedSerializeMap {
	return &SharedSerializeMap{positions: make(map[SharedKey]int)}
}

func (m *SharedSerializeMap) SharedPos(key SharedKey) (int, bool) {
	pos, ok := m.positions[key]
	return pos, ok
}

func (m *SharedSerializeMap) AddSharedPos(key SharedKey, pos int) error {
	if _, ok := m.positions[key]; ok {
		return fmt.Errorf("%w: %v at 0x%x/%d", ErrDuplicateShared, key.Type, key.Addr, key.Len)
	}
	m.positions[key] = pos
	return nil
}

func (m *SharedSerializeMap) Len() int {
	return len(m.positions)
}

// SharedDeserializeMap caches values materialized from shared archived
// records, keyed by record position.
type SharedDeserializeMap struct {
	values map[int]SharedPointer
}

func NewSharedDeserializeMap() *SharedDeserializeMap {
	return &SharedDeserializeMap{values: make(map[int]SharedPointer)}
}

func (m *SharedDeserializeMap) SharedValue(pos int) (SharedPointer, bool) {
	p, ok := m.values[pos]
	return p, ok
}

func (m *SharedDeserializeMap) AddSharedValue(pos int, p SharedPointer) error {
	if _, ok := m.values[pos]; ok {
		return fmt.Errorf("%w: archived position %d", ErrDuplicateShared, pos)
	}
	m.values[pos] = p
	return nil
}

func (m *SharedDeserializeMap) Len() int {
	return len(m.values)
}

type sharedBox struct {
	v any
}

func (b sharedBox) Data() any { return b.v }

// Share wraps a materialized value so that it can be handed to a
// SharedDeserializeRegistry.
func Share(v any) SharedPointer {
	return sharedBox{v}
}

// DeserializeShared returns the value materialized from the archived record
// at pos, running materialize only the first time pos is seen.
func DeserializeShared[T any](d SharedDeserializeRegistry, pos int, materialize func() (*T, error)) (*T, error) {
	if sp, ok := d.SharedValue(pos); ok {
		p, ok := sp.Data().(*T)
		if !ok {
			return nil, fmt.Errorf("%w: shared value at %d is %T, wanted %T", ErrSharedMismatch, pos, sp.Data(), p)
		}
		return p, nil
	}
	p, err := materialize()
	if err != nil {
		return nil, err
	}
	if err := d.AddSharedValue(pos, Share(p)); err != nil {
		return nil, err
	}
	return p, nil
}

// DeserializeSharedSlice is DeserializeShared for variable-length values. The
// element count n comes from the archived record; a cached slice is
// resliced to n, so the position together with n identifies the result.
func DeserializeSharedSlice[E any](d SharedDeserializeRegistry, pos, n int, materialize func(n int) ([]E, error)) ([]E, error) {
	if sp, ok := d.SharedValue(pos); ok {
		s, ok := sp.Data().([]E)
		if !ok {
			return nil, fmt.Errorf("%w: shared value at %d is %T, wanted %T", ErrSharedMismatch, pos, sp.Data(), s)
		}
		if n > len(s) {
			return nil, fmt.Errorf("%w: shared slice at %d has %d elements, record claims %d", ErrSharedMismatch, pos, len(s), n)
		}
		return s[:n:n], nil
	}
	s, err := materialize(n)
	if err != nil {
		return nil, err
	}
	if err := d.AddSharedValue(pos, Share(s)); err != nil {
		return nil, err
	}
	return s, nil
}
