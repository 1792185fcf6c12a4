package flatarc

import (
	"encoding/binary"
	"math"
	"reflect"
)

// scalarSize returns the archived size of a fixed-width kind, or 0 if the
// kind is not fixed-width. Platform-sized integers are archived as 64 bits.
func scalarSize(k reflect.Kind) int {
	switch k {
	case reflect.Bool, reflect.Int8, reflect.Uint8:
		return 1
	case reflect.Int16, reflect.Uint16:
		return 2
	case reflect.Int32, reflect.Uint32, reflect.Float32:
		return 4
	case reflect.Int, reflect.Int64, reflect.Uint, reflect.Uint64, reflect.Uintptr, reflect.Float64:
		return 8
	default:
		return 0
	}
}

func fillScalar(p *plan) {
	size := scalarSize(p.typ.Kind())
	p.layout = Layout{size, size}
	p.serialize = func(e *encoder, v reflect.Value, rs []int) error {
		return nil
	}
	p.resolve = func(pos int, v reflect.Value, rs []int, out []byte) {
		putScalar(out, v)
	}
	p.decode = func(d *decoder, pos int, v reflect.Value) error {
		b, err := d.record(pos, size)
		if err != nil {
			return err
		}
		return getScalar(d.buf, pos, b, v)
	}
	p.dump = func(w *dumper, pos int, label string) error {
		v := reflect.New(p.typ).Elem()
		if err := p.decode(w.d, pos, v); err != nil {
			return err
		}
		w.line(pos, "%s%v", label, v)
		return nil
	}
}

func putScalar(out []byte, v reflect.Value) {
	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			out[0] = 1
		}
	case reflect.Int8:
		out[0] = byte(v.Int())
	case reflect.Uint8:
		out[0] = byte(v.Uint())
	case reflect.Int16:
		binary.LittleEndian.PutUint16(out, uint16(v.Int()))
	case reflect.Uint16:
		binary.LittleEndian.PutUint16(out, uint16(v.Uint()))
	case reflect.Int32:
		binary.LittleEndian.PutUint32(out, uint32(v.Int()))
	case reflect.Uint32:
		binary.LittleEndian.PutUint32(out, uint32(v.Uint()))
	case reflect.Int, reflect.Int64:
		binary.LittleEndian.PutUint64(out, uint64(v.Int()))
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		binary.LittleEndian.PutUint64(out, v.Uint())
	case reflect.Float32:
		binary.LittleEndian.PutUint32(out, math.Float32bits(float32(v.Float())))
	case reflect.Float64:
		binary.LittleEndian.PutUint64(out, math.Float64bits(v.Float()))
	default:
		panic("unreachable")
	}
}

func getScalar(buf []byte, pos int, b []byte, v reflect.Value) error {
	switch v.Kind() {
	case reflect.Bool:
		if b[0] > 1 {
			return dataErrf(buf, pos, nil, "invalid bool %d", b[0])
		}
		v.SetBool(b[0] == 1)
	case reflect.Int8:
		v.SetInt(int64(int8(b[0])))
	case reflect.Uint8:
		v.SetUint(uint64(b[0]))
	case reflect.Int16:
		v.SetInt(int64(int16(binary.LittleEndian.Uint16(b))))
	case reflect.Uint16:
		v.SetUint(uint64(binary.LittleEndian.Uint16(b)))
	case reflect.Int32:
		v.SetInt(int64(int32(binary.LittleEndian.Uint32(b))))
	case reflect.Uint32:
		v.SetUint(uint64(binary.LittleEndian.Uint32(b)))
	case reflect.Int, reflect.Int64:
		n := int64(binary.LittleEndian.Uint64(b))
		if v.OverflowInt(n) {
			return dataErrf(buf, pos, nil, "%d overflows %v", n, v.Type())
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		n := binary.LittleEndian.Uint64(b)
		if v.OverflowUint(n) {
			return dataErrf(buf, pos, nil, "%d overflows %v", n, v.Type())
		}
		v.SetUint(n)
	case reflect.Float32:
		v.SetFloat(float64(math.Float32frombits(binary.LittleEndian.Uint32(b))))
	case reflect.Float64:
		v.SetFloat(math.Float64frombits(binary.LittleEndian.Uint64(b)))
	default:
		panic("unreachable")
	}
	return nil
}
