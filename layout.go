package flatarc

import "fmt"

// Layout is the size and alignment of an archived record.
type Layout struct {
	Size  int
	Align int
}

var (
	// RefLayout is the layout of string, byte slice, vector and interned
	// references: a 32-bit relative offset followed by a 32-bit length.
	RefLayout = Layout{Size: 8, Align: 4}

	// RelPtrLayout is the layout of a shared pointer.
	RelPtrLayout = Layout{Size: 4, Align: 4}
)

func (l Layout) String() string {
	return fmt.Sprintf("%d/%d", l.Size, l.Align)
}

// Padded returns the layout rounded up to its own alignment, which is the
// stride of consecutive records in a vector.
func (l Layout) Padded() Layout {
	return Layout{alignUp(l.Size, l.Align), l.Align}
}

// ArrayOf returns the layout of n consecutive records of layout l.
func (l Layout) ArrayOf(n int) Layout {
	return Layout{l.Padded().Size * n, l.Align}
}

// StructLayout lays out fields in declaration order, each at its natural
// alignment, and pads the total to the largest alignment. Returns the struct
// layout and the byte offset of every field.
func StructLayout(fields ...Layout) (Layout, []int) {
	offsets := make([]int, len(fields))
	size, align := 0, 1
	for i, f := range fields {
		size = alignUp(size, f.Align)
		offsets[i] = size
		size += f.Size
		align = max(align, f.Align)
	}
	return Layout{alignUp(size, align), align}, offsets
}

// OptionLayout returns the layout of an optional record: a tag byte followed
// by the payload at its own alignment.
func OptionLayout(payload Layout) (Layout, int) {
	l, offsets := StructLayout(Layout{1, 1}, payload)
	return l, offsets[1]
}
