package memory

import (
	"sync"
	"testing"
)

// countingPool records what comes back from reclamation.
type countingPool struct {
	mu   sync.Mutex
	objs []any
}

func (p *countingPool) PutAny(v any) {
	p.mu.Lock()
	p.objs = append(p.objs, v)
	p.mu.Unlock()
}

func (p *countingPool) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.objs)
}

func TestPinRelease(t *testing.T) {
	d := NewDomainSize(4)

	g := d.Pin()
	if d.pinned() != 1 {
		t.Fatalf("expected 1 pinned guard, got %d", d.pinned())
	}
	g.Release()
	if d.pinned() != 0 {
		t.Fatalf("expected 0 pinned guards after release, got %d", d.pinned())
	}
}

func TestReclaimAfterLag(t *testing.T) {
	d := NewDomain()
	pool := &countingPool{}

	g := d.Pin()
	g.Retire(&struct{}{}, pool)
	g.Release()

	// First pass advances at most one epoch; the object is too young.
	d.AdvanceAndReclaim()
	if pool.count() != 0 {
		t.Fatal("object reclaimed before lag elapsed")
	}

	d.AdvanceAndReclaim()
	if pool.count() != 1 {
		t.Fatalf("expected 1 reclaimed object, got %d", pool.count())
	}
}

func TestGuardBlocksReclaim(t *testing.T) {
	d := NewDomain()
	pool := &countingPool{}

	observer := d.Pin() // long-lived reader

	g := d.Pin()
	g.Retire(&struct{}{}, pool)
	g.Release()

	// With the observer still pinned the epoch can advance at most
	// once, so the retired object never reaches the lag threshold.
	for i := 0; i < 10; i++ {
		d.AdvanceAndReclaim()
	}
	if pool.count() != 0 {
		t.Fatal("object reclaimed while an older guard was still active")
	}
	if d.Pending() != 1 {
		t.Fatalf("expected 1 pending object, got %d", d.Pending())
	}

	observer.Release()
	for i := 0; i < 3; i++ {
		d.AdvanceAndReclaim()
	}
	if pool.count() != 1 {
		t.Fatalf("expected 1 reclaimed object after release, got %d", pool.count())
	}
}

func TestTryAdvanceBlockedByStaleGuard(t *testing.T) {
	d := NewDomain()

	g := d.Pin()
	if !d.TryAdvance() {
		t.Fatal("advance should succeed while all guards are current")
	}
	// g is now one epoch behind and must block further advancement.
	if d.TryAdvance() {
		t.Fatal("advance should fail with a stale guard pinned")
	}
	g.Release()
	if !d.TryAdvance() {
		t.Fatal("advance should succeed once the stale guard releases")
	}
}

func TestConcurrentRetire(t *testing.T) {
	d := NewDomain()
	pool := &countingPool{}

	const workers = 8
	const perWorker = 1000

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				g := d.Pin()
				g.Retire(&struct{}{}, pool)
				g.Release()
			}
		}()
	}
	wg.Wait()

	for i := 0; i < 4; i++ {
		d.AdvanceAndReclaim()
	}
	if got := pool.count(); got != workers*perWorker {
		t.Fatalf("expected %d reclaimed objects, got %d", workers*perWorker, got)
	}
}

func TestPoolRoundTrip(t *testing.T) {
	type thing struct{ n int }

	p := NewPool(func() *thing { return &thing{} })
	v := p.Get()
	v.n = 42
	p.Put(v)

	var erased ReclaimablePool = p
	erased.PutAny(p.Get())

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on PutAny with wrong type")
		}
	}()
	erased.PutAny("not a *thing")
}
