package flatarc

import (
	"encoding"
	"fmt"
	"reflect"
	"strings"
	"sync"
)

const tagName = "arc"

type fieldFlags uint8

const (
	flagIntern fieldFlags = 1 << iota
	flagShared
)

func (f fieldFlags) Has(v fieldFlags) bool {
	return f&v != 0
}

func parseFieldTag(tag string) (flags fieldFlags, skip bool, err error) {
	if tag == "" {
		return 0, false, nil
	}
	for _, opt := range strings.Split(tag, ",") {
		switch strings.TrimSpace(opt) {
		case "":
		case "-":
			skip = true
		case "intern":
			flags |= flagIntern
		case "shared":
			flags |= flagShared
		default:
			return 0, false, fmt.Errorf("%w: unknown %s tag option %q", ErrUnsupported, tagName, opt)
		}
	}
	return flags, skip, nil
}

// elemFlags derives the flags of a slice, array or pointer element. Interning
// applies to the leaves; sharing only carries over to nested pointers and
// slices.
func elemFlags(flags fieldFlags, elem reflect.Type) fieldFlags {
	f := flags &^ flagShared
	if flags.Has(flagShared) && (elem.Kind() == reflect.Pointer || elem.Kind() == reflect.Slice) {
		f |= flagShared
	}
	return f
}

// plan describes how values of one Go type (under one set of field flags)
// are archived.
//
// Writing is two-phase: serialize writes everything the record points at and
// leaves resolver values (positions, lengths) in rs[:slots]; resolve then
// stamps the fixed-size record at its final position.
type plan struct {
	typ    reflect.Type
	flags  fieldFlags
	layout Layout
	slots  int
	sized  bool // layout and slots are final, even while the plan is being built
	ready  bool

	serialize func(e *encoder, v reflect.Value, rs []int) error
	resolve   func(pos int, v reflect.Value, rs []int, out []byte)
	decode    func(d *decoder, pos int, v reflect.Value) error
	dump      func(w *dumper, pos int, label string) error
}

type planKey struct {
	typ   reflect.Type
	flags fieldFlags
}

var plans sync.Map

func planFor(typ reflect.Type, flags fieldFlags) (*plan, error) {
	key := planKey{typ, flags}
	if p, ok := plans.Load(key); ok {
		return p.(*plan), nil
	}
	b := planBuilder{building: make(map[planKey]*plan)}
	p, err := b.build(typ, flags)
	if err != nil {
		return nil, err
	}
	for k, bp := range b.building {
		plans.LoadOrStore(k, bp)
	}
	return p, nil
}

type planBuilder struct {
	building map[planKey]*plan
}

func (b *planBuilder) build(typ reflect.Type, flags fieldFlags) (*plan, error) {
	key := planKey{typ, flags}
	if p, ok := plans.Load(key); ok {
		return p.(*plan), nil
	}
	if p, ok := b.building[key]; ok {
		return p, nil
	}
	p := &plan{typ: typ, flags: flags}
	presize(p)
	b.building[key] = p
	if err := b.fill(p); err != nil {
		delete(b.building, key)
		return nil, err
	}
	p.sized = true
	p.ready = true
	return p, nil
}

// presize fixes the layout of references up front. Their records have the
// same shape whatever they point at, so a type can reach itself through them
// before its own plan is complete.
func presize(p *plan) {
	switch {
	case isText(p.typ):
		p.layout, p.slots = RefLayout, 2
	case p.typ.Kind() == reflect.String, p.typ.Kind() == reflect.Slice:
		p.layout, p.slots = RefLayout, 2
	case p.typ.Kind() == reflect.Pointer && p.flags.Has(flagShared):
		p.layout, p.slots = RelPtrLayout, 1
	default:
		return
	}
	p.sized = true
}

// inline builds a plan whose layout is needed right away.
func (b *planBuilder) inline(typ reflect.Type, flags fieldFlags) (*plan, error) {
	p, err := b.build(typ, flags)
	if err != nil {
		return nil, err
	}
	if !p.sized {
		return nil, fmt.Errorf("%w: %v contains itself by value, use %s:\"shared\"", ErrUnsupported, typ, tagName)
	}
	return p, nil
}

var (
	textMarshalerType   = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

func isText(typ reflect.Type) bool {
	return typ.Kind() != reflect.Pointer && typ.Implements(textMarshalerType) && reflect.PointerTo(typ).Implements(textUnmarshalerType)
}

func (b *planBuilder) fill(p *plan) error {
	typ, flags := p.typ, p.flags
	if isText(typ) {
		if flags.Has(flagShared) {
			return flagErr(typ, "shared")
		}
		fillText(p)
		return nil
	}
	switch typ.Kind() {
	case reflect.String:
		if flags.Has(flagShared) {
			return flagErr(typ, "shared")
		}
		fillString(p)
		return nil
	case reflect.Slice:
		if typ.Elem().Kind() == reflect.Uint8 && !flags.Has(flagShared) {
			fillBytes(p)
			return nil
		}
		if typ.Elem().Kind() == reflect.Uint8 && flags.Has(flagIntern) {
			return flagErr(typ, "intern,shared")
		}
		return b.fillVec(p)
	case reflect.Array:
		if flags.Has(flagShared) {
			return flagErr(typ, "shared")
		}
		return b.fillArray(p)
	case reflect.Pointer:
		if flags.Has(flagShared) {
			return b.fillSharedPtr(p)
		}
		return b.fillOption(p)
	case reflect.Struct:
		if flags != 0 {
			return flagErr(typ, "intern or shared")
		}
		return b.fillStruct(p)
	default:
		if scalarSize(typ.Kind()) == 0 {
			return fmt.Errorf("%w: %v", ErrUnsupported, typ)
		}
		if flags != 0 {
			return flagErr(typ, "intern or shared")
		}
		fillScalar(p)
		return nil
	}
}

func flagErr(typ reflect.Type, opt string) error {
	return fmt.Errorf("%w: %s:%q does not apply to %v", ErrUnsupported, tagName, opt, typ)
}

type structField struct {
	name   string
	index  int
	offset int
	slot   int
	plan   *plan
}

func (b *planBuilder) fillStruct(p *plan) error {
	typ := p.typ
	var fields []structField
	var layouts []Layout
	for i := 0; i < typ.NumField(); i++ {
		sf := typ.Field(i)
		if !sf.IsExported() {
			continue
		}
		flags, skip, err := parseFieldTag(sf.Tag.Get(tagName))
		if err != nil {
			return fmt.Errorf("%v.%s: %w", typ, sf.Name, err)
		}
		if skip {
			continue
		}
		fp, err := b.inline(sf.Type, flags)
		if err != nil {
			return fmt.Errorf("%v.%s: %w", typ, sf.Name, err)
		}
		fields = append(fields, structField{name: sf.Name, index: i, slot: p.slots, plan: fp})
		layouts = append(layouts, fp.layout)
		p.slots += fp.slots
	}
	layout, offsets := StructLayout(layouts...)
	for i := range fields {
		fields[i].offset = offsets[i]
	}
	p.layout = layout

	p.serialize = func(e *encoder, v reflect.Value, rs []int) error {
		for _, f := range fields {
			if err := f.plan.serialize(e, v.Field(f.index), rs[f.slot:f.slot+f.plan.slots]); err != nil {
				return fmt.Errorf("%v.%s: %w", typ, f.name, err)
			}
		}
		return nil
	}
	p.resolve = func(pos int, v reflect.Value, rs []int, out []byte) {
		for _, f := range fields {
			f.plan.resolve(pos+f.offset, v.Field(f.index), rs[f.slot:f.slot+f.plan.slots], out[f.offset:f.offset+f.plan.layout.Size])
		}
	}
	p.decode = func(d *decoder, pos int, v reflect.Value) error {
		if _, err := d.record(pos, layout.Size); err != nil {
			return err
		}
		for _, f := range fields {
			if err := f.plan.decode(d, pos+f.offset, v.Field(f.index)); err != nil {
				return fmt.Errorf("%v.%s: %w", typ, f.name, err)
			}
		}
		return nil
	}
	p.dump = func(w *dumper, pos int, label string) error {
		w.line(pos, "%s%v", label, typ)
		w.depth++
		defer func() { w.depth-- }()
		for _, f := range fields {
			if err := f.plan.dump(w, pos+f.offset, f.name+": "); err != nil {
				return err
			}
		}
		return nil
	}
	return nil
}

func (b *planBuilder) fillArray(p *plan) error {
	n := p.typ.Len()
	ep, err := b.inline(p.typ.Elem(), elemFlags(p.flags, p.typ.Elem()))
	if err != nil {
		return err
	}
	stride := ep.layout.Padded().Size
	p.layout = ep.layout.ArrayOf(n)
	p.slots = n * ep.slots
	es := ep.slots

	p.serialize = func(e *encoder, v reflect.Value, rs []int) error {
		for i := 0; i < n; i++ {
			if err := ep.serialize(e, v.Index(i), rs[i*es:(i+1)*es]); err != nil {
				return err
			}
		}
		return nil
	}
	p.resolve = func(pos int, v reflect.Value, rs []int, out []byte) {
		for i := 0; i < n; i++ {
			off := i * stride
			ep.resolve(pos+off, v.Index(i), rs[i*es:(i+1)*es], out[off:off+ep.layout.Size])
		}
	}
	p.decode = func(d *decoder, pos int, v reflect.Value) error {
		for i := 0; i < n; i++ {
			if err := ep.decode(d, pos+i*stride, v.Index(i)); err != nil {
				return err
			}
		}
		return nil
	}
	p.dump = func(w *dumper, pos int, label string) error {
		w.line(pos, "%s[%d]", label, n)
		w.depth++
		defer func() { w.depth-- }()
		for i := 0; i < n; i++ {
			if err := ep.dump(w, pos+i*stride, fmt.Sprintf("[%d] ", i)); err != nil {
				return err
			}
		}
		return nil
	}
	return nil
}
