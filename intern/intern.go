// Package intern provides a process-local interned string handle that can be
// archived as ordinary string content.
package intern

import (
	"errors"
	"fmt"
	"unicode/utf8"
	"unique"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"
)

var ErrNotText = errors.New("content is not valid UTF-8")

// String is a canonical string: equal contents made through Make share one
// allocation and compare in constant time. The zero value is the empty
// string.
type String struct {
	h unique.Handle[string]
}

func Make(s string) String {
	if s == "" {
		return String{}
	}
	return String{unique.Make(s)}
}

func (s String) String() string {
	if s.IsZero() {
		return ""
	}
	return s.h.Value()
}

// Handle returns the underlying handle; the zero String has a zero handle.
func (s String) Handle() unique.Handle[string] {
	return s.h
}

func (s String) IsZero() bool {
	return s.h == unique.Handle[string]{}
}

func (s String) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *String) UnmarshalText(text []byte) error {
	if !utf8.Valid(text) {
		return ErrNotText
	}
	*s = Make(string(text))
	return nil
}

func (s String) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(s.String())
}

func (s *String) DecodeMsgpack(dec *msgpack.Decoder) error {
	v, err := dec.DecodeString()
	if err != nil {
		return err
	}
	if !utf8.ValidString(v) {
		return ErrNotText
	}
	*s = Make(v)
	return nil
}

func (s String) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(s.String())
}

func (s *String) UnmarshalCBOR(data []byte) error {
	var v string
	if err := cbor.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("intern: %w", err)
	}
	*s = Make(v)
	return nil
}
