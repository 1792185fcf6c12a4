package flatarc

import "sync"

// slotsPool holds resolver slot buffers for vector elements.
var slotsPool = &sync.Pool{
	New: func() any {
		s := make([]int, 0, 256)
		return &s
	},
}

func getSlots(n int) *[]int {
	p := slotsPool.Get().(*[]int)
	if cap(*p) < n {
		*p = make([]int, n)
	} else {
		*p = (*p)[:n]
		clear(*p)
	}
	return p
}

func releaseSlots(p *[]int) {
	if cap(*p) > 65536 {
		return
	}
	*p = (*p)[:0]
	slotsPool.Put(p)
}
