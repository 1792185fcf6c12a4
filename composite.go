package flatarc

// CompositePart names a component of a CompositeSerializer.
type CompositePart int

const (
	PartWriter CompositePart = iota
	PartScratch
	PartShared
)

func (p CompositePart) String() string {
	switch p {
	case PartWriter:
		return "writer"
	case PartScratch:
		return "scratch space"
	case PartShared:
		return "shared registry"
	default:
		return "unknown part"
	}
}

// CompositeError tags an error with the CompositeSerializer part it came from.
type CompositeError struct {
	Part CompositePart
	Err  error
}

func (e *CompositeError) Error() string {
	return e.Part.String() + ": " + e.Err.Error()
}

func (e *CompositeError) Unwrap() error {
	return e.Err
}

func compositeErr(part CompositePart, err error) error {
	if err == nil {
		return nil
	}
	return &CompositeError{part, err}
}

// CompositeSerializer builds a BaseSerializer out of a writer, a scratch
// space and a shared registry.
type CompositeSerializer[S Serializer, C ScratchSpace, R SharedSerializeRegistry] struct {
	writer  S
	scratch C
	shared  R
}

func NewCompositeSerializer[S Serializer, C ScratchSpace, R SharedSerializeRegistry](writer S, scratch C, shared R) *CompositeSerializer[S, C, R] {
	return &CompositeSerializer[S, C, R]{writer, scratch, shared}
}

// AllocSerializer is the default heap-backed serializer.
type AllocSerializer = CompositeSerializer[*AlignedSerializer, *FallbackScratch, *SharedSerializeMap]

// DefaultScratchSize is the arena size NewAllocSerializer uses when given a
// non-positive size.
const DefaultScratchSize = 4096

func NewAllocSerializer(scratchSize, limit int) *AllocSerializer {
	if scratchSize <= 0 {
		scratchSize = DefaultScratchSize
	}
	return NewCompositeSerializer(NewAlignedSerializer(nil, limit), NewFallbackScratch(scratchSize), NewSharedSerializeMap())
}

func (c *CompositeSerializer[S, C, R]) Components() (S, C, R) {
	return c.writer, c.scratch, c.shared
}

func (c *CompositeSerializer[S, C, R]) Writer() S {
	return c.writer
}

func (c *CompositeSerializer[S, C, R]) Pos() int {
	return c.writer.Pos()
}

func (c *CompositeSerializer[S, C, R]) Write(b []byte) error {
	return compositeErr(PartWriter, c.writer.Write(b))
}

func (c *CompositeSerializer[S, C, R]) Pad(n int) error {
	return compositeErr(PartWriter, c.writer.Pad(n))
}

func (c *CompositeSerializer[S, C, R]) Align(align int) (int, error) {
	pos, err := c.writer.Align(align)
	return pos, compositeErr(PartWriter, err)
}

func (c *CompositeSerializer[S, C, R]) ResolveAligned(layout Layout, resolve func(pos int, out []byte)) (int, error) {
	pos, err := c.writer.ResolveAligned(layout, resolve)
	return pos, compositeErr(PartWriter, err)
}

func (c *CompositeSerializer[S, C, R]) PushScratch(layout Layout) ([]byte, error) {
	buf, err := c.scratch.PushScratch(layout)
	return buf, compositeErr(PartScratch, err)
}

func (c *CompositeSerializer[S, C, R]) PopScratch(buf []byte, layout Layout) error {
	return compositeErr(PartScratch, c.scratch.PopScratch(buf, layout))
}

func (c *CompositeSerializer[S, C, R]) SharedPos(key SharedKey) (int, bool) {
	return c.shared.SharedPos(key)
}

func (c *CompositeSerializer[S, C, R]) AddSharedPos(key SharedKey, pos int) error {
	return compositeErr(PartShared, c.shared.AddSharedPos(key, pos))
}
