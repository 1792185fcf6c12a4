package flatarc

import (
	"bytes"
	"encoding"
	"encoding/binary"
	"fmt"
	"reflect"
	"unicode/utf8"
	"unique"
)

var stringType = reflect.TypeOf("")

// internKey identifies string-shaped content by where it lives in the
// archive and which Go type it decodes to.
type internKey struct {
	target int
	n      int
	typ    reflect.Type
}

type decoder struct {
	buf      []byte
	shared   SharedDeserializeRegistry
	opt      Options
	interned map[internKey]any
}

func newDecoder(buf []byte, shared SharedDeserializeRegistry, opt Options) *decoder {
	if shared == nil {
		shared = NewSharedDeserializeMap()
	}
	return &decoder{buf: buf, shared: shared, opt: opt}
}

func (d *decoder) record(pos, size int) ([]byte, error) {
	if pos < 0 || pos+size > len(d.buf) {
		return nil, dataErrf(d.buf, pos, nil, "record of %d bytes out of bounds", size)
	}
	return d.buf[pos : pos+size], nil
}

func (d *decoder) lookup(key internKey) (any, bool) {
	v, ok := d.interned[key]
	return v, ok
}

func (d *decoder) remember(key internKey, v any) {
	if d.interned == nil {
		d.interned = make(map[internKey]any)
	}
	d.interned[key] = v
}

func (d *decoder) newString(b []byte) string {
	switch {
	case d.opt.InternOnRead:
		return unique.Make(unsafeStringFromBytes(b)).Value()
	case d.opt.Borrow:
		return unsafeStringFromBytes(b)
	default:
		return string(b)
	}
}

// str decodes the string referenced by the record at pos. Interned content is
// materialized once per decoder.
func (d *decoder) str(pos, target, n int, intern bool) (string, error) {
	b := d.buf[target : target+n]
	if d.opt.StrictUTF8 && !utf8.Valid(b) {
		return "", dataErrf(d.buf, pos, ErrNotText, "string at %d+%d", target, n)
	}
	if n == 0 {
		return "", nil
	}
	if !intern {
		return d.newString(b), nil
	}
	key := internKey{target, n, stringType}
	if s, ok := d.lookup(key); ok {
		return s.(string), nil
	}
	s := d.newString(b)
	d.remember(key, s)
	return s, nil
}

func (d *decoder) bytes(target, n int, intern bool) []byte {
	b := d.buf[target : target+n : target+n]
	if d.opt.Borrow {
		return b
	}
	if !intern {
		return bytes.Clone(b)
	}
	key := internKey{target, n, nil}
	if c, ok := d.lookup(key); ok {
		return c.([]byte)
	}
	c := bytes.Clone(b)
	d.remember(key, c)
	return c
}

func (d *decoder) text(pos, target, n int, typ reflect.Type, intern bool) (reflect.Value, error) {
	key := internKey{target, n, typ}
	if intern {
		if v, ok := d.lookup(key); ok {
			return v.(reflect.Value), nil
		}
	}
	pv := reflect.New(typ)
	if err := pv.Interface().(encoding.TextUnmarshaler).UnmarshalText(d.buf[target : target+n]); err != nil {
		return reflect.Value{}, dataErrf(d.buf, pos, err, "cannot decode %v", typ)
	}
	v := pv.Elem()
	if intern {
		d.remember(key, v)
	}
	return v, nil
}

// readVec decodes a vector reference. Element data must end before the
// record itself, which keeps decoding of hostile input finite.
func (d *decoder) readVec(pos, stride int) (target, n int, err error) {
	b, err := d.record(pos, RefLayout.Size)
	if err != nil {
		return 0, 0, err
	}
	off, cnt := getRef(b)
	target, n = pos+int(off), int(cnt)
	if n == 0 {
		return target, 0, nil
	}
	if stride == 0 {
		if n > len(d.buf) || target < 0 || target > pos {
			return 0, 0, dataErrf(d.buf, pos, nil, "vector of %d empty elements at %d", n, target)
		}
		return target, n, nil
	}
	if target < 0 || n > (pos-target)/stride {
		return 0, 0, dataErrf(d.buf, pos, nil, "vector of %d×%d bytes at %d out of bounds", n, stride, target)
	}
	return target, n, nil
}

// readRelPtr decodes a shared pointer. ok is false for nil. The target record
// must end before the pointer.
func (d *decoder) readRelPtr(pos, size int) (target int, ok bool, err error) {
	b, err := d.record(pos, RelPtrLayout.Size)
	if err != nil {
		return 0, false, err
	}
	off := int32(binary.LittleEndian.Uint32(b))
	if off == 0 {
		return 0, false, nil
	}
	target = pos + int(off)
	if off > 0 || target < 0 || target+size > pos {
		return 0, false, dataErrf(d.buf, pos, nil, "shared pointer to %d out of bounds", target)
	}
	return target, true, nil
}

func (d *decoder) sharedValue(target int, typ reflect.Type, materialize func() (reflect.Value, error)) (reflect.Value, error) {
	if sp, ok := d.shared.SharedValue(target); ok {
		pv := reflect.ValueOf(sp.Data())
		if !pv.IsValid() || pv.Type() != typ {
			return reflect.Value{}, dataErrf(d.buf, target, ErrSharedMismatch, "shared value is %T, wanted %v", sp.Data(), typ)
		}
		return pv, nil
	}
	pv, err := materialize()
	if err != nil {
		return reflect.Value{}, err
	}
	if err := d.shared.AddSharedValue(target, Share(pv.Interface())); err != nil {
		return reflect.Value{}, dataErrf(d.buf, target, err, "cannot register shared %v", typ)
	}
	return pv, nil
}

func (d *decoder) sharedSlice(target, n int, typ reflect.Type, materialize func() (reflect.Value, error)) (reflect.Value, error) {
	if sp, ok := d.shared.SharedValue(target); ok {
		sv := reflect.ValueOf(sp.Data())
		if !sv.IsValid() || sv.Type() != typ {
			return reflect.Value{}, dataErrf(d.buf, target, ErrSharedMismatch, "shared value is %T, wanted %v", sp.Data(), typ)
		}
		if n > sv.Len() {
			return reflect.Value{}, dataErrf(d.buf, target, ErrSharedMismatch, "shared slice has %d elements, record claims %d", sv.Len(), n)
		}
		return sv.Slice3(0, n, n), nil
	}
	sv, err := materialize()
	if err != nil {
		return reflect.Value{}, err
	}
	if err := d.shared.AddSharedValue(target, Share(sv.Interface())); err != nil {
		return reflect.Value{}, dataErrf(d.buf, target, err, "cannot register shared %v", typ)
	}
	return sv, nil
}

// RootPos returns the position of the root record of the given layout, which
// serialization always leaves at the very end of the archive.
func RootPos(buf []byte, layout Layout) (int, error) {
	pos := len(buf) - layout.Size
	if pos < 0 {
		return 0, dataErrf(buf, 0, nil, "archive too short for %v root", layout)
	}
	if layout.Align > 0 && pos%layout.Align != 0 {
		return 0, dataErrf(buf, pos, nil, "root misaligned for %v", layout)
	}
	return pos, nil
}

func targetValue(out any) (reflect.Value, error) {
	pv := reflect.ValueOf(out)
	if pv.Kind() != reflect.Pointer || pv.IsNil() {
		return reflect.Value{}, fmt.Errorf("%w: decoding needs a non-nil pointer, got %T", ErrUnsupported, out)
	}
	return pv.Elem(), nil
}

// Deserialize decodes the root record of buf into out, which must be a
// non-nil pointer. Shared values are resolved through shared; a nil registry
// means a fresh one for this call.
func Deserialize(buf []byte, out any, shared SharedDeserializeRegistry, opt Options) error {
	v, err := targetValue(out)
	if err != nil {
		return err
	}
	p, err := planFor(v.Type(), 0)
	if err != nil {
		return err
	}
	pos, err := RootPos(buf, p.layout)
	if err != nil {
		return err
	}
	return p.decode(newDecoder(buf, shared, opt), pos, v)
}

// DeserializeAt decodes the record at pos into out. Use it for archives that
// hold more than one root, with SerializeValue's returned positions.
func DeserializeAt(buf []byte, pos int, out any, shared SharedDeserializeRegistry, opt Options) error {
	v, err := targetValue(out)
	if err != nil {
		return err
	}
	p, err := planFor(v.Type(), 0)
	if err != nil {
		return err
	}
	return p.decode(newDecoder(buf, shared, opt), pos, v)
}
