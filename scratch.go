package flatarc

import "fmt"

// FallbackScratch serves scratch requests from a fixed arena and falls back
// to heap allocations once the arena is exhausted. Requests must be released
// in reverse order.
type FallbackScratch struct {
	arena  []byte
	used   int
	frames []scratchFrame
}

type scratchFrame struct {
	layout   Layout
	prevUsed int
	heap     bool
}

func NewFallbackScratch(arenaSize int) *FallbackScratch {
	return &FallbackScratch{arena: make([]byte, arenaSize)}
}

func (sc *FallbackScratch) PushScratch(layout Layout) ([]byte, error) {
	if !isPowerOfTwo(layout.Align) {
		return nil, fmt.Errorf("%w: %d", ErrBadAlignment, layout.Align)
	}
	off := alignUp(sc.used, layout.Align)
	if end := off + layout.Size; end <= len(sc.arena) {
		sc.frames = append(sc.frames, scratchFrame{layout, sc.used, false})
		sc.used = end
		return sc.arena[off:end:end], nil
	}
	sc.frames = append(sc.frames, scratchFrame{layout, sc.used, true})
	return make([]byte, layout.Size), nil
}

func (sc *FallbackScratch) PopScratch(buf []byte, layout Layout) error {
	n := len(sc.frames)
	if n == 0 {
		return fmt.Errorf("%w: nothing pushed", ErrScratchMismatch)
	}
	top := sc.frames[n-1]
	if top.layout != layout || len(buf) != layout.Size {
		return fmt.Errorf("%w: popping %v (%d bytes), top is %v", ErrScratchMismatch, layout, len(buf), top.layout)
	}
	sc.frames = sc.frames[:n-1]
	sc.used = top.prevUsed
	return nil
}

// InUse returns the number of outstanding scratch frames.
func (sc *FallbackScratch) InUse() int {
	return len(sc.frames)
}
