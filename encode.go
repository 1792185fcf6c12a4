package flatarc

import (
	"fmt"
	"reflect"
)

// encoder carries the capabilities discovered on a serializer for the
// duration of one SerializeValue call.
type encoder struct {
	s        Serializer
	interner InternSerializer
	shared   SharedSerializeRegistry
	scratch  ScratchSpace
	visiting map[SharedKey]struct{}
}

func newEncoder(s Serializer) *encoder {
	e := &encoder{s: s}
	e.interner, _ = s.(InternSerializer)
	e.shared, _ = s.(SharedSerializeRegistry)
	e.scratch, _ = s.(ScratchSpace)
	return e
}

func (e *encoder) internSerializer() (InternSerializer, error) {
	if e.interner == nil {
		return nil, fmt.Errorf("%w: %T cannot intern", ErrMissingCapability, e.s)
	}
	return e.interner, nil
}

func (e *encoder) sharedRegistry() (SharedSerializeRegistry, error) {
	if e.shared == nil {
		return nil, fmt.Errorf("%w: %T has no shared registry", ErrMissingCapability, e.s)
	}
	return e.shared, nil
}

// writeRecord writes everything v points at, then v's own record.
func (e *encoder) writeRecord(p *plan, v reflect.Value) (int, error) {
	rs := make([]int, p.slots)
	if err := p.serialize(e, v, rs); err != nil {
		return 0, err
	}
	return e.s.ResolveAligned(p.layout, func(pos int, out []byte) {
		p.resolve(pos, v, rs, out)
	})
}

// writeVec writes the elements of slice v as one contiguous block and returns
// its position. An empty slice writes nothing.
func (e *encoder) writeVec(ep *plan, v reflect.Value) (int, error) {
	n := v.Len()
	if n == 0 {
		return e.s.Pos(), nil
	}
	es := ep.slots
	slots := getSlots(n * es)
	defer releaseSlots(slots)
	rs := *slots
	for i := 0; i < n; i++ {
		if err := ep.serialize(e, v.Index(i), rs[i*es:(i+1)*es]); err != nil {
			return 0, err
		}
	}

	stride := ep.layout.Padded().Size
	block := Layout{stride * n, ep.layout.Align}
	pos, err := e.s.Align(block.Align)
	if err != nil {
		return 0, err
	}
	var out []byte
	if e.scratch != nil {
		out, err = e.scratch.PushScratch(block)
		if err != nil {
			return 0, err
		}
	} else {
		out = make([]byte, block.Size)
	}
	clear(out)
	for i := 0; i < n; i++ {
		off := i * stride
		ep.resolve(pos+off, v.Index(i), rs[i*es:(i+1)*es], out[off:off+ep.layout.Size])
	}
	err = e.s.Write(out)
	if e.scratch != nil {
		if perr := e.scratch.PopScratch(out, block); err == nil {
			err = perr
		}
	}
	if err != nil {
		return 0, err
	}
	return pos, nil
}

// writeShared writes a shared value once per key and returns the position of
// its single archived copy.
func (e *encoder) writeShared(key SharedKey, write func() (int, error)) (int, error) {
	reg, err := e.sharedRegistry()
	if err != nil {
		return 0, err
	}
	if pos, ok := reg.SharedPos(key); ok {
		return pos, nil
	}
	if _, ok := e.visiting[key]; ok {
		return 0, fmt.Errorf("%w: cycle through shared value at 0x%x", ErrUnsupported, key.Addr)
	}
	if e.visiting == nil {
		e.visiting = make(map[SharedKey]struct{})
	}
	e.visiting[key] = struct{}{}
	pos, err := write()
	delete(e.visiting, key)
	if err != nil {
		return 0, err
	}
	if err := reg.AddSharedPos(key, pos); err != nil {
		return 0, err
	}
	return pos, nil
}

func rootValue(v any) (reflect.Value, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return rv, fmt.Errorf("%w: nil value", ErrUnsupported)
	}
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return rv, fmt.Errorf("%w: nil %v", ErrUnsupported, rv.Type())
		}
		rv = rv.Elem()
	}
	return rv, nil
}

// SerializeValue archives v (or *v, if v is a pointer) into s and returns the
// position of its root record. Fields tagged arc:"intern" need s to be an
// InternSerializer; fields tagged arc:"shared" need a SharedSerializeRegistry.
func SerializeValue(s Serializer, v any) (int, error) {
	rv, err := rootValue(v)
	if err != nil {
		return 0, err
	}
	p, err := planFor(rv.Type(), 0)
	if err != nil {
		return 0, err
	}
	return newEncoder(s).writeRecord(p, rv)
}

// LayoutOf returns the archived layout of the root record for values like v.
func LayoutOf(v any) (Layout, error) {
	typ := reflect.TypeOf(v)
	if typ == nil {
		return Layout{}, fmt.Errorf("%w: nil value", ErrUnsupported)
	}
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	p, err := planFor(typ, 0)
	if err != nil {
		return Layout{}, err
	}
	return p.layout, nil
}
