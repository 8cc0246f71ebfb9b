// Package stack implements a lock-free last-in-first-out stack safe
// for any number of concurrent pushers and poppers.
//
// The structure is a singly-linked list hanging off one atomic head
// pointer; every mutation is a single compare-and-swap on that head.
// Nodes come from a per-stack pool and are recycled through an
// epoch-based reclamation Domain, which is what makes the CAS safe
// against ABA: a node unlinked by one goroutine is never reused while
// another goroutine pinned before the unlink could still compare
// against its address. (Use-after-free itself is ruled out by the Go
// garbage collector; the epochs exist purely to gate pool reuse.)
//
// Go's sync/atomic operations are sequentially consistent, which
// subsumes the acquire/release pairing a weaker memory model would
// need here: a value pushed before a head swap is fully visible to
// any goroutine that observes the new head.
package stack

import (
	"sync/atomic"

	"stackd/infra/memory"
)

// node owns one element and the link to the node below it. At any
// instant a node has exactly one owner: the head slot, another node's
// next slot, or - transiently during a pop - the popping goroutine,
// until it is retired.
type node[T any] struct {
	value T
	next  atomic.Pointer[node[T]]
}

// Stack is a lock-free LIFO stack of T.
//
// The size counter is approximate: it is adjusted after the
// structural CAS succeeds, so under concurrency it may momentarily
// lag or lead the list. It is exact whenever the stack is quiescent.
type Stack[T any] struct {
	head atomic.Pointer[node[T]]
	size atomic.Int64

	mem  *memory.Domain
	pool *memory.Pool[node[T]]
}

// New returns an empty stack whose nodes are reclaimed through dom.
// Several stacks may share one Domain.
func New[T any](dom *memory.Domain) *Stack[T] {
	return &Stack[T]{
		mem:  dom,
		pool: memory.NewPool(func() *node[T] { return new(node[T]) }),
	}
}

// recycler resets a retired node before it re-enters the pool, so a
// reused node never leaks the previous element or a stale link.
type recycler[T any] struct {
	pool *memory.Pool[node[T]]
}

func (r recycler[T]) PutAny(v any) {
	n := v.(*node[T])
	var zero T
	n.value = zero
	n.next.Store(nil)
	r.pool.Put(n)
}

// Push places v on top of the stack. It never blocks; a lost CAS race
// retries with the same node allocation.
func (s *Stack[T]) Push(v T) {
	n := s.pool.Get()
	n.value = v

	g := s.mem.Pin()
	defer g.Release()

	for {
		h := s.head.Load()
		n.next.Store(h)
		if s.head.CompareAndSwap(h, n) {
			s.size.Add(1)
			return
		}
	}
}

// Pop removes and returns the top element. The second return is false
// when the stack is empty; that is the normal empty result, not an
// error.
func (s *Stack[T]) Pop() (T, bool) {
	g := s.mem.Pin()
	defer g.Release()

	for {
		h := s.head.Load()
		if h == nil {
			var zero T
			return zero, false
		}
		next := h.next.Load()
		if s.head.CompareAndSwap(h, next) {
			s.size.Add(-1)
			v := h.value
			g.Retire(h, recycler[T]{pool: s.pool})
			return v, true
		}
	}
}

// Peek returns a copy of the top element without removing it. For
// element types with reference semantics the copy shares backing;
// callers needing isolation must duplicate it themselves.
func (s *Stack[T]) Peek() (T, bool) {
	g := s.mem.Pin()
	defer g.Release()

	h := s.head.Load()
	if h == nil {
		var zero T
		return zero, false
	}
	return h.value, true
}

// IsEmpty reports whether the stack had no elements at the moment of
// the head load.
func (s *Stack[T]) IsEmpty() bool {
	g := s.mem.Pin()
	defer g.Release()
	return s.head.Load() == nil
}

// Len returns a best-effort snapshot of the element count. It is not
// synchronized with concurrent pushes and pops; only sequential use
// sees an exact value.
func (s *Stack[T]) Len() int {
	return int(s.size.Load())
}

// Snapshot copies the stack contents top to bottom under a single
// guard. Concurrent mutation makes the result approximate: it is some
// suffix-consistent view of the list as of the head load.
func (s *Stack[T]) Snapshot() []T {
	g := s.mem.Pin()
	defer g.Release()

	var out []T
	for n := s.head.Load(); n != nil; n = n.next.Load() {
		out = append(out, n.value)
	}
	return out
}
