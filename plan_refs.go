package flatarc

import (
	"encoding"
	"encoding/binary"
	"fmt"
	"reflect"
)

func resolveRef(pos int, v reflect.Value, rs []int, out []byte) {
	ResolveString(pos, StringResolver{rs[0], rs[1]}, out)
}

func dumpRef(w *dumper, pos int, label string) error {
	target, n, err := ReadRef(w.d.buf, pos)
	if err != nil {
		return err
	}
	w.line(pos, "%s-> @%d+%d %q", label, target, n, w.d.buf[target:target+n])
	return nil
}

func fillString(p *plan) {
	intern := p.flags.Has(flagIntern)
	p.layout = RefLayout
	p.slots = 2
	p.serialize = func(e *encoder, v reflect.Value, rs []int) error {
		var r StringResolver
		var err error
		if intern {
			is, cerr := e.internSerializer()
			if cerr != nil {
				return cerr
			}
			r, err = InternString(is, v.String())
		} else {
			r, err = SerializeString(e.s, v.String())
		}
		if err != nil {
			return err
		}
		rs[0], rs[1] = r.Pos, r.Len
		return nil
	}
	p.resolve = resolveRef
	p.decode = func(d *decoder, pos int, v reflect.Value) error {
		target, n, err := ReadRef(d.buf, pos)
		if err != nil {
			return err
		}
		s, err := d.str(pos, target, n, intern)
		if err != nil {
			return err
		}
		v.SetString(s)
		return nil
	}
	p.dump = dumpRef
}

func fillBytes(p *plan) {
	intern := p.flags.Has(flagIntern)
	p.layout = RefLayout
	p.slots = 2
	p.serialize = func(e *encoder, v reflect.Value, rs []int) error {
		var r StringResolver
		var err error
		if intern {
			is, cerr := e.internSerializer()
			if cerr != nil {
				return cerr
			}
			r, err = InternBytes(is, v.Bytes())
		} else {
			r, err = SerializeBytes(e.s, v.Bytes())
		}
		if err != nil {
			return err
		}
		rs[0], rs[1] = r.Pos, r.Len
		return nil
	}
	p.resolve = resolveRef
	p.decode = func(d *decoder, pos int, v reflect.Value) error {
		target, n, err := ReadRef(d.buf, pos)
		if err != nil {
			return err
		}
		if n == 0 {
			v.SetZero()
			return nil
		}
		v.SetBytes(d.bytes(target, n, intern))
		return nil
	}
	p.dump = dumpRef
}

// fillText handles types archived through their text form, such as
// time.Time or intern.String.
func fillText(p *plan) {
	typ := p.typ
	intern := p.flags.Has(flagIntern)
	p.layout = RefLayout
	p.slots = 2
	p.serialize = func(e *encoder, v reflect.Value, rs []int) error {
		text, err := v.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return fmt.Errorf("%v: %w", typ, err)
		}
		var r StringResolver
		if intern {
			is, cerr := e.internSerializer()
			if cerr != nil {
				return cerr
			}
			r, err = InternBytes(is, text)
		} else {
			r, err = SerializeBytes(e.s, text)
		}
		if err != nil {
			return err
		}
		rs[0], rs[1] = r.Pos, r.Len
		return nil
	}
	p.resolve = resolveRef
	p.decode = func(d *decoder, pos int, v reflect.Value) error {
		target, n, err := ReadRef(d.buf, pos)
		if err != nil {
			return err
		}
		tv, err := d.text(pos, target, n, typ, intern)
		if err != nil {
			return err
		}
		v.Set(tv)
		return nil
	}
	p.dump = dumpRef
}

func (b *planBuilder) fillVec(p *plan) error {
	typ := p.typ
	shared := p.flags.Has(flagShared)
	ep, err := b.build(typ.Elem(), elemFlags(p.flags, typ.Elem()))
	if err != nil {
		return err
	}
	p.layout = RefLayout
	p.slots = 2
	p.serialize = func(e *encoder, v reflect.Value, rs []int) error {
		n := v.Len()
		var pos int
		var err error
		if shared && n > 0 {
			pos, err = e.writeShared(SharedKey{v.Pointer(), n, typ}, func() (int, error) {
				return e.writeVec(ep, v)
			})
		} else {
			pos, err = e.writeVec(ep, v)
		}
		if err != nil {
			return err
		}
		rs[0], rs[1] = pos, n
		return nil
	}
	p.resolve = resolveRef
	p.decode = func(d *decoder, pos int, v reflect.Value) error {
		stride := ep.layout.Padded().Size
		target, n, err := d.readVec(pos, stride)
		if err != nil {
			return err
		}
		if n == 0 {
			v.SetZero()
			return nil
		}
		materialize := func() (reflect.Value, error) {
			s := reflect.MakeSlice(typ, n, n)
			for i := 0; i < n; i++ {
				if err := ep.decode(d, target+i*stride, s.Index(i)); err != nil {
					return reflect.Value{}, err
				}
			}
			return s, nil
		}
		// zero-size elements occupy no archive bytes, so their position
		// identifies nothing
		var s reflect.Value
		if shared && stride > 0 {
			s, err = d.sharedSlice(target, n, typ, materialize)
		} else {
			s, err = materialize()
		}
		if err != nil {
			return err
		}
		v.Set(s)
		return nil
	}
	p.dump = func(w *dumper, pos int, label string) error {
		stride := ep.layout.Padded().Size
		target, n, err := w.d.readVec(pos, stride)
		if err != nil {
			return err
		}
		if shared && n > 0 && !w.visit(target) {
			w.line(pos, "%s[%d] -> @%d (seen)", label, n, target)
			return nil
		}
		w.line(pos, "%s[%d] -> @%d", label, n, target)
		w.depth++
		defer func() { w.depth-- }()
		for i := 0; i < n; i++ {
			if err := ep.dump(w, target+i*stride, fmt.Sprintf("[%d] ", i)); err != nil {
				return err
			}
		}
		return nil
	}
	return nil
}

func putRelPtr(out []byte, off int32) {
	binary.LittleEndian.PutUint32(out, uint32(off))
}

func (b *planBuilder) fillSharedPtr(p *plan) error {
	typ := p.typ
	et := typ.Elem()
	ep, err := b.build(et, elemFlags(p.flags, et))
	if err != nil {
		return err
	}
	p.layout = RelPtrLayout
	p.slots = 1
	p.serialize = func(e *encoder, v reflect.Value, rs []int) error {
		if v.IsNil() {
			rs[0] = -1
			return nil
		}
		pos, err := e.writeShared(SharedKey{v.Pointer(), -1, typ}, func() (int, error) {
			pos, err := e.writeRecord(ep, v.Elem())
			if err == nil && ep.layout.Size == 0 {
				// keep later records from landing on pos, where a zero
				// offset would read back as nil
				err = e.s.Pad(1)
			}
			return pos, err
		})
		if err != nil {
			return err
		}
		rs[0] = pos
		return nil
	}
	p.resolve = func(pos int, v reflect.Value, rs []int, out []byte) {
		if rs[0] < 0 {
			putRelPtr(out, 0)
			return
		}
		putRelPtr(out, int32(rs[0]-pos))
	}
	p.decode = func(d *decoder, pos int, v reflect.Value) error {
		target, ok, err := d.readRelPtr(pos, ep.layout.Size)
		if err != nil {
			return err
		}
		if !ok {
			v.SetZero()
			return nil
		}
		materialize := func() (reflect.Value, error) {
			pv := reflect.New(et)
			if err := ep.decode(d, target, pv.Elem()); err != nil {
				return reflect.Value{}, err
			}
			return pv, nil
		}
		var pv reflect.Value
		if ep.layout.Size == 0 {
			pv, err = materialize()
		} else {
			pv, err = d.sharedValue(target, typ, materialize)
		}
		if err != nil {
			return err
		}
		v.Set(pv)
		return nil
	}
	p.dump = func(w *dumper, pos int, label string) error {
		target, ok, err := w.d.readRelPtr(pos, ep.layout.Size)
		if err != nil {
			return err
		}
		switch {
		case !ok:
			w.line(pos, "%snil", label)
			return nil
		case !w.visit(target):
			w.line(pos, "%s-> @%d (seen)", label, target)
			return nil
		}
		w.line(pos, "%s-> @%d", label, target)
		w.depth++
		defer func() { w.depth-- }()
		return ep.dump(w, target, "")
	}
	return nil
}

// fillOption archives a non-shared pointer inline: a tag byte, then the
// pointee at its own alignment.
func (b *planBuilder) fillOption(p *plan) error {
	et := p.typ.Elem()
	ep, err := b.inline(et, elemFlags(p.flags, et))
	if err != nil {
		return err
	}
	layout, payload := OptionLayout(ep.layout)
	p.layout = layout
	p.slots = ep.slots
	p.serialize = func(e *encoder, v reflect.Value, rs []int) error {
		if v.IsNil() {
			return nil
		}
		return ep.serialize(e, v.Elem(), rs)
	}
	p.resolve = func(pos int, v reflect.Value, rs []int, out []byte) {
		if v.IsNil() {
			return
		}
		out[0] = 1
		ep.resolve(pos+payload, v.Elem(), rs, out[payload:payload+ep.layout.Size])
	}
	p.decode = func(d *decoder, pos int, v reflect.Value) error {
		b, err := d.record(pos, layout.Size)
		if err != nil {
			return err
		}
		switch b[0] {
		case 0:
			v.SetZero()
			return nil
		case 1:
			pv := reflect.New(et)
			if err := ep.decode(d, pos+payload, pv.Elem()); err != nil {
				return err
			}
			v.Set(pv)
			return nil
		default:
			return dataErrf(d.buf, pos, nil, "invalid option tag %d", b[0])
		}
	}
	p.dump = func(w *dumper, pos int, label string) error {
		b, err := w.d.record(pos, layout.Size)
		if err != nil {
			return err
		}
		if b[0] == 0 {
			w.line(pos, "%snone", label)
			return nil
		}
		return ep.dump(w, pos+payload, label+"some ")
	}
	return nil
}
