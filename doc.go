/*
Package flatarc implements a relocatable, zero-copy archive format for Go
values, with content-based interning of strings.

An archive is a single byte buffer. Values are written bottom-up: everything a
record points at is written first, then the record itself, so every reference
points backwards. The root record is written last and ends exactly at the end
of the buffer.

We implement:

1. A base format with a growable writer, scratch space and shared-pointer
registries (AllocSerializer).

2. Interning: equal string contents written through arc:"intern" fields are
stored once per serialization session and referenced from every occurrence
(InternSerializeMap, InternAdapter).

3. Reflection-based archiving of structs, slices, pointers and text types
(SerializeValue, Deserialize), plus Marshal/Unmarshal on top.

# Binary encoding

All scalars are little-endian. int and uint are archived as 64 bits.

**Reference** (string, []byte, text, slice, interned string): relative offset
(int32, from the record's own position), length (uint32). 8 bytes, align 4.
For slices the length counts elements. Interned references are
indistinguishable from plain ones; only the number of stored copies differs.

**Shared pointer**: relative offset (int32), 0 means nil. 4 bytes, align 4.

**Option** (non-shared pointer): tag byte (0 or 1), then the payload at its
own alignment.

**Struct**: fields in declaration order at natural alignment, padded to the
largest field alignment. Vectors store elements at the padded stride.

# Struct tags

	type Log struct {
		User string   `arc:"intern"`
		Tags []string `arc:"intern"`
		Prev *Log     `arc:"shared"`
		Temp int      `arc:"-"`
	}

intern applies to strings, byte slices and text types, element-wise through
slices and pointers. shared deduplicates pointers and slices by identity.
*/
package flatarc
