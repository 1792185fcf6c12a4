package flatarc

import "reflect"

//go:generate mockgen -source=capabilities.go -destination=internal/mocks/mock_capabilities.go -package=mocks

// Serializer is the producer interface of an archive buffer. Positions are
// byte offsets from the start of the buffer and only ever grow.
type Serializer interface {
	// Pos returns the position the next write will land at.
	Pos() int

	// Write appends b at the current position.
	Write(b []byte) error

	// Pad appends n zero bytes.
	Pad(n int) error

	// Align pads the buffer up to a multiple of align (a power of two) and
	// returns the resulting position.
	Align(align int) (int, error)

	// ResolveAligned reserves a zero-filled record of the given layout at the
	// next suitably aligned position and lets resolve fill it in. Returns the
	// position of the record.
	ResolveAligned(layout Layout, resolve func(pos int, out []byte)) (int, error)
}

// ScratchSpace hands out temporary memory in matched push/pop pairs.
type ScratchSpace interface {
	PushScratch(layout Layout) ([]byte, error)
	PopScratch(buf []byte, layout Layout) error
}

// SharedKey identifies a value reachable through a shared handle at write
// time: the address of its backing memory, its element count (-1 for sized
// values) and its type. A struct and its first field share an address, as do
// distinct zero-size values, so the type is part of the identity.
type SharedKey struct {
	Addr uintptr
	Len  int
	Type reflect.Type
}

// SharedSerializeRegistry remembers where shared values have been written.
type SharedSerializeRegistry interface {
	SharedPos(key SharedKey) (int, bool)
	AddSharedPos(key SharedKey, pos int) error
}

// SharedPointer is a value materialized from an archive and owned by a
// SharedDeserializeRegistry.
type SharedPointer interface {
	Data() any
}

// SharedDeserializeRegistry caches materialized values by the archived
// position they were read from.
type SharedDeserializeRegistry interface {
	SharedValue(pos int) (SharedPointer, bool)
	AddSharedValue(pos int, p SharedPointer) error
}

// InternSerializeRegistry maps string content to the position its bytes were
// first written at.
//
// AddInterned must only be called after GetInterned reported a miss for the
// same content; the registry does not check this, and a second insertion of
// equal content is never returned by later lookups.
type InternSerializeRegistry interface {
	GetInterned(content string) (int, bool)
	AddInterned(content string, pos int) error
}

// BaseSerializer is what an InternAdapter needs from the serializer it wraps.
type BaseSerializer interface {
	Serializer
	ScratchSpace
	SharedSerializeRegistry
}

// InternSerializer is a Serializer that can intern string content.
type InternSerializer interface {
	Serializer
	InternSerializeRegistry
}
