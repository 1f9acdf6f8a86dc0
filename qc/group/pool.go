package group

import "sync"

// statePool recycles scratch []complex128 buffers used as intermediate
// products during a multi-group Merge. A buffer taken from here is never
// exposed as a live group's State directly — Merge always copies its last
// intermediate into a freshly allocated slice before returning, so a pooled
// buffer is safe to recycle the instant the merge loop is done with it.
var statePool = sync.Pool{
	New: func() any {
		buf := make([]complex128, 0, 64)
		return &buf
	},
}

func getScratch(size int) []complex128 {
	p := statePool.Get().(*[]complex128)
	buf := *p
	if cap(buf) < size {
		buf = make([]complex128, size)
	} else {
		buf = buf[:size]
	}
	return buf
}

func putScratch(buf []complex128) {
	b := buf[:0]
	statePool.Put(&b)
}
