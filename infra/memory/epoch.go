package memory

import (
	"runtime"
	"sync/atomic"
)

// idle marks a reader slot with no pinned guard.
const idle = ^uint64(0)

// reclaimLag is how many epochs must pass after an object is retired
// before it may be recycled. Two epochs cover the window where a
// reader loads the global epoch, the epoch advances, and the reader
// only then publishes its slot.
const reclaimLag = 2

// DefaultSlots is the default number of concurrent guards a Domain
// supports before Pin starts spinning.
const DefaultSlots = 128

// Domain is an epoch-based reclamation context. It is explicitly
// constructed and explicitly shared: any number of stacks (or other
// lock-free structures) may hang off one Domain, and tests may build
// their own to control reclamation deterministically.
//
// The epoch only moves forward when every pinned guard entered at the
// current epoch, so an object retired at epoch e is unobservable once
// the epoch reaches e+2.
type Domain struct {
	epoch   atomic.Uint64
	slots   []slot
	garbage retireList
}

// slot holds one reader's entry epoch, padded to its own cache line.
type slot struct {
	state atomic.Uint64
	_pad  [56]byte
}

// NewDomain creates a reclamation domain with the default guard
// capacity.
func NewDomain() *Domain {
	return NewDomainSize(DefaultSlots)
}

// NewDomainSize creates a reclamation domain supporting up to n
// simultaneously pinned guards.
func NewDomainSize(n int) *Domain {
	if n <= 0 {
		n = DefaultSlots
	}
	d := &Domain{slots: make([]slot, n)}
	for i := range d.slots {
		d.slots[i].state.Store(idle)
	}
	return d
}

// Epoch returns the current global epoch.
func (d *Domain) Epoch() uint64 {
	return d.epoch.Load()
}

// Pin registers the caller as an active observer of the current epoch
// and returns a Guard. The Guard must be released when the caller is
// done dereferencing shared nodes; defer g.Release() is the usual
// shape. Pin never fails; if every slot is taken it yields and
// retries.
func (d *Domain) Pin() Guard {
	for {
		e := d.epoch.Load()
		for i := range d.slots {
			s := &d.slots[i]
			if s.state.Load() != idle {
				continue
			}
			if s.state.CompareAndSwap(idle, e) {
				return Guard{domain: d, slot: s}
			}
		}
		runtime.Gosched()
	}
}

// TryAdvance bumps the global epoch if every pinned guard entered at
// the current epoch. It returns false when a straggling guard blocks
// progress; garbage simply waits until that guard releases.
func (d *Domain) TryAdvance() bool {
	e := d.epoch.Load()
	for i := range d.slots {
		v := d.slots[i].state.Load()
		if v != idle && v != e {
			return false
		}
	}
	return d.epoch.CompareAndSwap(e, e+1)
}

// Reclaim hands retired objects that are provably unobservable back
// to their pools and returns how many were recycled. Objects that are
// still too young are kept for a later pass.
func (d *Domain) Reclaim() int {
	e := d.epoch.Load()
	recycled := 0
	for item := d.garbage.takeAll(); item != nil; {
		next := item.next
		if e >= item.epoch+reclaimLag {
			item.pool.PutAny(item.obj)
			recycled++
		} else {
			d.garbage.push(item)
		}
		item = next
	}
	return recycled
}

// AdvanceAndReclaim advances the epoch when possible and then runs a
// reclamation pass. Intended to be called periodically by a
// background job.
func (d *Domain) AdvanceAndReclaim() int {
	d.TryAdvance()
	return d.Reclaim()
}

// Pending reports how many retired objects are awaiting reclamation.
// Diagnostic only; the count is racy by nature.
func (d *Domain) Pending() int {
	return d.garbage.len()
}

// pinned reports how many guards are currently active. Test hook.
func (d *Domain) pinned() int {
	n := 0
	for i := range d.slots {
		if d.slots[i].state.Load() != idle {
			n++
		}
	}
	return n
}

// Guard is a scoped token marking its holder as an active observer of
// shared nodes. While a guard created at or before an object's
// retirement is live, that object is not recycled.
type Guard struct {
	domain *Domain
	slot   *slot
}

// Release ends the observation scope. The guard must not be used
// afterwards.
func (g Guard) Release() {
	g.slot.state.Store(idle)
}

// Retire marks obj as logically unlinked. The object is stamped with
// the current epoch and returned to pool once every guard that could
// have observed it is gone.
func (g Guard) Retire(obj any, pool ReclaimablePool) {
	g.domain.garbage.push(&retired{
		obj:   obj,
		pool:  pool,
		epoch: g.domain.epoch.Load(),
	})
}
