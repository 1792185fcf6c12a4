package flatarc

import (
	"context"
	"fmt"
	"log/slog"
)

// Options configure Marshal, Unmarshal and NewDefaultAdapter. The zero value
// is usable.
type Options struct {
	BufferLimit      int // max archive size in bytes; 0 means math.MaxInt32
	ScratchSize      int // scratch arena size; 0 means DefaultScratchSize
	MaxInternEntries int // 0 means unbounded
	MaxInternBytes   int // 0 means unbounded

	// Borrow makes decoded strings and byte slices alias the archive, which
	// must then outlive them and never change.
	Borrow bool

	// InternOnRead canonicalizes decoded strings process-wide with the
	// unique package. Takes precedence over Borrow for strings.
	InternOnRead bool

	// StrictUTF8 rejects archived strings that are not valid UTF-8.
	StrictUTF8 bool

	Logger  *slog.Logger
	Verbose bool
}

func (o *Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

// Marshal archives v with a fresh DefaultAdapter, so every arc:"intern"
// field content is stored once per call.
func Marshal(v any, opt Options) ([]byte, error) {
	a := NewDefaultAdapter(opt)
	pos, err := SerializeValue(a, v)
	if err != nil {
		return nil, err
	}
	buf := a.Serializer().Writer().Bytes()
	if opt.Verbose {
		st := a.InternRegistry().Stats()
		opt.logger().LogAttrs(context.Background(), slog.LevelDebug, "flatarc: marshaled",
			slog.String("type", fmt.Sprintf("%T", v)),
			slog.Int("size", len(buf)),
			slog.Int("root", pos),
			slog.Int("interned", st.Entries),
			slog.Int("intern_hits", st.Hits),
			slog.Int("intern_saved", st.SavedBytes),
			slog.Int("shared", a.Serializer().shared.Len()))
	}
	return buf, nil
}

// Unmarshal decodes an archive produced by Marshal into out, which must be a
// non-nil pointer to a value of the marshaled type.
func Unmarshal(data []byte, out any, opt Options) error {
	shared := NewSharedDeserializeMap()
	err := Deserialize(data, out, shared, opt)
	if opt.Verbose {
		opt.logger().LogAttrs(context.Background(), slog.LevelDebug, "flatarc: unmarshaled",
			slog.String("type", fmt.Sprintf("%T", out)),
			slog.Int("size", len(data)),
			slog.Int("shared", shared.Len()),
			slog.Any("err", err))
	}
	return err
}
