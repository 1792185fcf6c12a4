package flatarc

import (
	"fmt"
	"reflect"
	"strings"
)

const indentStep = "  "

type dumper struct {
	d     *decoder
	w     strings.Builder
	depth int
	seen  map[int]bool
}

func (w *dumper) line(pos int, format string, args ...any) {
	for range w.depth {
		w.w.WriteString(indentStep)
	}
	fmt.Fprintf(&w.w, "@%d ", pos)
	fmt.Fprintf(&w.w, format, args...)
	w.w.WriteByte('\n')
}

// visit reports whether target is seen for the first time.
func (w *dumper) visit(target int) bool {
	if w.seen[target] {
		return false
	}
	if w.seen == nil {
		w.seen = make(map[int]bool)
	}
	w.seen[target] = true
	return true
}

// Dump renders the records of an archive holding a value of sample's type,
// one record per line with its position. Shared records are expanded once.
func Dump(buf []byte, sample any) (string, error) {
	typ := reflect.TypeOf(sample)
	if typ == nil {
		return "", fmt.Errorf("%w: nil sample", ErrUnsupported)
	}
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	p, err := planFor(typ, 0)
	if err != nil {
		return "", err
	}
	pos, err := RootPos(buf, p.layout)
	if err != nil {
		return "", err
	}
	w := &dumper{d: newDecoder(buf, nil, Options{})}
	fmt.Fprintf(&w.w, "archive: %d bytes, root %v at %d\n", len(buf), p.layout, pos)
	if err := p.dump(w, pos, ""); err != nil {
		return w.w.String(), err
	}
	return w.w.String(), nil
}
