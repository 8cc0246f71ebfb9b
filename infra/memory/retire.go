package memory

import "sync/atomic"

// retired is one garbage entry: a type-erased object, the pool it
// returns to, and the epoch it was retired at.
type retired struct {
	obj   any
	pool  ReclaimablePool
	epoch uint64
	next  *retired
}

// retireList is a lock-free multi-producer list of retired objects.
// Retire happens on the pop fast path from any goroutine; draining is
// done by a single reclaimer swapping the whole list out.
type retireList struct {
	head atomic.Pointer[retired]
}

func (l *retireList) push(item *retired) {
	for {
		h := l.head.Load()
		item.next = h
		if l.head.CompareAndSwap(h, item) {
			return
		}
	}
}

// takeAll detaches and returns the current list in one swap. Entries
// the reclaimer cannot free yet are pushed back.
func (l *retireList) takeAll() *retired {
	return l.head.Swap(nil)
}

// Len counts pending garbage. Diagnostic only; racy by nature.
func (l *retireList) len() int {
	n := 0
	for item := l.head.Load(); item != nil; item = item.next {
		n++
	}
	return n
}
