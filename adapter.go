package flatarc

// Layer identifies which component of an InternAdapter produced an error.
type Layer int

const (
	LayerSerializer Layer = iota
	LayerDeserializer
	LayerIntern
)

func (l Layer) String() string {
	switch l {
	case LayerSerializer:
		return "serializer"
	case LayerDeserializer:
		return "deserializer"
	case LayerIntern:
		return "intern registry"
	default:
		return "unknown layer"
	}
}

// AdapterError is returned by every fallible InternAdapter method. Err is
// the unmodified error of the component named by Layer.
type AdapterError struct {
	Layer Layer
	Err   error
}

func (e *AdapterError) Error() string {
	return e.Layer.String() + ": " + e.Err.Error()
}

func (e *AdapterError) Unwrap() error {
	return e.Err
}

func adapterErr(layer Layer, err error) error {
	if err == nil {
		return nil
	}
	return &AdapterError{layer, err}
}

// InternAdapter adds interning to a serializer. Each capability is forwarded
// to exactly one of the three components; only errors are rewrapped.
//
// The deserializer is only used through SharedDeserializeRegistry, which lets
// one adapter value serve both directions of a round trip.
type InternAdapter[S BaseSerializer, D SharedDeserializeRegistry, T InternSerializeRegistry] struct {
	serializer     S
	deserializer   D
	internRegistry T
}

func NewInternAdapter[S BaseSerializer, D SharedDeserializeRegistry, T InternSerializeRegistry](serializer S, deserializer D, internRegistry T) *InternAdapter[S, D, T] {
	return &InternAdapter[S, D, T]{serializer, deserializer, internRegistry}
}

// DefaultAdapter is the adapter Marshal uses.
type DefaultAdapter = InternAdapter[*AllocSerializer, *SharedDeserializeMap, *InternSerializeMap]

func NewDefaultAdapter(opt Options) *DefaultAdapter {
	reg := NewInternSerializeMap()
	reg.MaxEntries = opt.MaxInternEntries
	reg.MaxBytes = opt.MaxInternBytes
	return NewInternAdapter(NewAllocSerializer(opt.ScratchSize, opt.BufferLimit), NewSharedDeserializeMap(), reg)
}

// Components returns the wrapped serializer, deserializer and intern registry.
func (a *InternAdapter[S, D, T]) Components() (S, D, T) {
	return a.serializer, a.deserializer, a.internRegistry
}

func (a *InternAdapter[S, D, T]) Serializer() S {
	return a.serializer
}

func (a *InternAdapter[S, D, T]) Deserializer() D {
	return a.deserializer
}

func (a *InternAdapter[S, D, T]) InternRegistry() T {
	return a.internRegistry
}

func (a *InternAdapter[S, D, T]) Pos() int {
	return a.serializer.Pos()
}

func (a *InternAdapter[S, D, T]) Write(b []byte) error {
	return adapterErr(LayerSerializer, a.serializer.Write(b))
}

func (a *InternAdapter[S, D, T]) Pad(n int) error {
	return adapterErr(LayerSerializer, a.serializer.Pad(n))
}

func (a *InternAdapter[S, D, T]) Align(align int) (int, error) {
	pos, err := a.serializer.Align(align)
	return pos, adapterErr(LayerSerializer, err)
}

func (a *InternAdapter[S, D, T]) ResolveAligned(layout Layout, resolve func(pos int, out []byte)) (int, error) {
	pos, err := a.serializer.ResolveAligned(layout, resolve)
	return pos, adapterErr(LayerSerializer, err)
}

func (a *InternAdapter[S, D, T]) PushScratch(layout Layout) ([]byte, error) {
	buf, err := a.serializer.PushScratch(layout)
	return buf, adapterErr(LayerSerializer, err)
}

func (a *InternAdapter[S, D, T]) PopScratch(buf []byte, layout Layout) error {
	return adapterErr(LayerSerializer, a.serializer.PopScratch(buf, layout))
}

func (a *InternAdapter[S, D, T]) SharedPos(key SharedKey) (int, bool) {
	return a.serializer.SharedPos(key)
}

func (a *InternAdapter[S, D, T]) AddSharedPos(key SharedKey, pos int) error {
	return adapterErr(LayerSerializer, a.serializer.AddSharedPos(key, pos))
}

func (a *InternAdapter[S, D, T]) SharedValue(pos int) (SharedPointer, bool) {
	return a.deserializer.SharedValue(pos)
}

func (a *InternAdapter[S, D, T]) AddSharedValue(pos int, p SharedPointer) error {
	return adapterErr(LayerDeserializer, a.deserializer.AddSharedValue(pos, p))
}

func (a *InternAdapter[S, D, T]) GetInterned(content string) (int, bool) {
	return a.internRegistry.GetInterned(content)
}

func (a *InternAdapter[S, D, T]) AddInterned(content string, pos int) error {
	return adapterErr(LayerIntern, a.internRegistry.AddInterned(content, pos))
}
