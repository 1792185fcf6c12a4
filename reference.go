package flatarc

import (
	"encoding"
	"unicode/utf8"
)

// StringResolver locates string-shaped bytes written earlier in the session.
// Interned and plain strings resolve to identically shaped records; only the
// way Pos was obtained differs.
type StringResolver struct {
	Pos int
	Len int
}

// ResolveString stamps a reference record for r into out, which must be the
// RefLayout-sized record at position pos.
func ResolveString(pos int, r StringResolver, out []byte) {
	putRef(out, int32(r.Pos-pos), uint32(r.Len))
}

// SerializeString writes v's bytes without interning.
func SerializeString(s Serializer, v string) (StringResolver, error) {
	pos := s.Pos()
	if err := s.Write(unsafeBytesFromString(v)); err != nil {
		return StringResolver{}, err
	}
	return StringResolver{pos, len(v)}, nil
}

// SerializeBytes writes b without interning.
func SerializeBytes(s Serializer, b []byte) (StringResolver, error) {
	pos := s.Pos()
	if err := s.Write(b); err != nil {
		return StringResolver{}, err
	}
	return StringResolver{pos, len(b)}, nil
}

// InternString writes v unless its content is already stored, and returns a
// resolver pointing at the stored copy.
func InternString(s InternSerializer, v string) (StringResolver, error) {
	pos, err := SerializeInterned(s, v)
	if err != nil {
		return StringResolver{}, err
	}
	return StringResolver{pos, len(v)}, nil
}

// InternBytes is InternString for byte slices.
func InternBytes(s InternSerializer, b []byte) (StringResolver, error) {
	pos, err := SerializeInternedBytes(s, b)
	if err != nil {
		return StringResolver{}, err
	}
	return StringResolver{pos, len(b)}, nil
}

// InternText interns the text form of v.
func InternText(s InternSerializer, v encoding.TextMarshaler) (StringResolver, error) {
	text, err := v.MarshalText()
	if err != nil {
		return StringResolver{}, err
	}
	return InternBytes(s, text)
}

// ReadRef decodes the reference record at pos and returns the absolute
// position and length of the bytes it points at.
func ReadRef(buf []byte, pos int) (target, n int, err error) {
	if pos < 0 || pos+RefLayout.Size > len(buf) {
		return 0, 0, dataErrf(buf, pos, nil, "reference record out of bounds")
	}
	off, size := getRef(buf[pos:])
	target, n = pos+int(off), int(size)
	if target < 0 || target+n > len(buf) {
		return 0, 0, dataErrf(buf, pos, nil, "reference to %d+%d out of bounds", target, n)
	}
	return target, n, nil
}

// ReadBytes returns the bytes referenced by the record at pos. The result
// aliases buf.
func ReadBytes(buf []byte, pos int) ([]byte, error) {
	target, n, err := ReadRef(buf, pos)
	if err != nil {
		return nil, err
	}
	return buf[target : target+n : target+n], nil
}

// ReadString returns the string referenced by the record at pos without
// copying. The result is only valid while buf is alive and unmodified.
func ReadString(buf []byte, pos int) (string, error) {
	b, err := ReadBytes(buf, pos)
	if err != nil {
		return "", err
	}
	return unsafeStringFromBytes(b), nil
}

// DeserializeInterned builds a value from the referenced bytes. Errors from
// parse are reported as a *DataError for the record at pos.
func DeserializeInterned[T any](buf []byte, pos int, parse func(b []byte) (T, error)) (T, error) {
	var zero T
	b, err := ReadBytes(buf, pos)
	if err != nil {
		return zero, err
	}
	v, err := parse(b)
	if err != nil {
		return zero, dataErrf(buf, pos, err, "cannot decode %T", zero)
	}
	return v, nil
}

// DeserializeText decodes the referenced bytes with T's UnmarshalText.
func DeserializeText[T any, PT interface {
	*T
	encoding.TextUnmarshaler
}](buf []byte, pos int) (T, error) {
	return DeserializeInterned(buf, pos, func(b []byte) (T, error) {
		var v T
		err := PT(&v).UnmarshalText(b)
		return v, err
	})
}

// CopyString is a DeserializeInterned parser producing an owned string.
func CopyString(b []byte) (string, error) {
	return string(b), nil
}

// CopyText is CopyString that rejects content that is not valid UTF-8.
func CopyText(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", ErrNotText
	}
	return string(b), nil
}
