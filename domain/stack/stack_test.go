package stack

import (
	"sync"
	"sync/atomic"
	"testing"

	"stackd/infra/memory"
)

func newTestStack(t *testing.T) (*Stack[int], *memory.Domain) {
	t.Helper()
	dom := memory.NewDomain()
	return New[int](dom), dom
}

func TestSequentialLIFO(t *testing.T) {
	s, _ := newTestStack(t)

	const n = 100
	for i := 1; i <= n; i++ {
		s.Push(i)
	}
	for i := n; i >= 1; i-- {
		v, ok := s.Pop()
		if !ok {
			t.Fatalf("pop %d: unexpected empty stack", i)
		}
		if v != i {
			t.Fatalf("pop: expected %d, got %d", i, v)
		}
	}
	if _, ok := s.Pop(); ok {
		t.Fatal("drained stack should pop nothing")
	}
}

func TestEmptyPop(t *testing.T) {
	s, _ := newTestStack(t)
	if v, ok := s.Pop(); ok {
		t.Fatalf("fresh stack popped %d", v)
	}
}

func TestExampleScenario(t *testing.T) {
	s, _ := newTestStack(t)

	s.Push(1)
	s.Push(2)
	s.Push(3)
	if s.Len() != 3 {
		t.Fatalf("expected len 3, got %d", s.Len())
	}
	for _, want := range []int{3, 2, 1} {
		v, ok := s.Pop()
		if !ok || v != want {
			t.Fatalf("expected %d, got %d (ok=%v)", want, v, ok)
		}
	}
	if _, ok := s.Pop(); ok {
		t.Fatal("expected absent result on empty stack")
	}
	if !s.IsEmpty() {
		t.Fatal("expected empty stack")
	}
}

func TestLenSequentialExactness(t *testing.T) {
	s, _ := newTestStack(t)

	for i := 0; i < 10; i++ {
		s.Push(i)
		if s.Len() != i+1 {
			t.Fatalf("after %d pushes len = %d", i+1, s.Len())
		}
	}
	for i := 0; i < 4; i++ {
		s.Pop()
	}
	if s.Len() != 6 {
		t.Fatalf("expected len 6, got %d", s.Len())
	}
}

func TestIsEmptyConsistency(t *testing.T) {
	s, _ := newTestStack(t)

	if !s.IsEmpty() {
		t.Fatal("fresh stack should be empty")
	}
	s.Push(7)
	if s.IsEmpty() {
		t.Fatal("stack with one element should not be empty")
	}
	empty := s.IsEmpty()
	_, ok := s.Pop()
	if empty == ok {
		t.Fatal("IsEmpty disagreed with the following pop")
	}
}

func TestPeek(t *testing.T) {
	s, _ := newTestStack(t)

	if _, ok := s.Peek(); ok {
		t.Fatal("peek on empty stack should report absence")
	}
	s.Push(10)
	s.Push(20)

	v, ok := s.Peek()
	if !ok || v != 20 {
		t.Fatalf("peek: expected 20, got %d (ok=%v)", v, ok)
	}
	if s.Len() != 2 {
		t.Fatal("peek must not remove elements")
	}
	if v, _ := s.Pop(); v != 20 {
		t.Fatal("peek must observe the same element pop retrieves")
	}
}

func TestSnapshot(t *testing.T) {
	s, _ := newTestStack(t)
	for i := 1; i <= 3; i++ {
		s.Push(i)
	}
	got := s.Snapshot()
	want := []int{3, 2, 1}
	if len(got) != len(want) {
		t.Fatalf("snapshot length %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("snapshot[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

// TestConcurrentConservation pushes k distinct values from k
// goroutines, then pops them all and checks the multiset survived
// with no duplicates and no omissions.
func TestConcurrentConservation(t *testing.T) {
	s, _ := newTestStack(t)

	const k = 64
	var wg sync.WaitGroup
	for i := 0; i < k; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			s.Push(v)
		}(i)
	}
	wg.Wait()

	seen := make(map[int]bool, k)
	var mu sync.Mutex
	for i := 0; i < k; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, ok := s.Pop()
			if !ok {
				t.Error("pop returned empty before all values were drained")
				return
			}
			mu.Lock()
			if seen[v] {
				t.Errorf("value %d popped twice", v)
			}
			seen[v] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	if len(seen) != k {
		t.Fatalf("expected %d distinct values, got %d", k, len(seen))
	}
	if !s.IsEmpty() {
		t.Fatal("stack should be empty after draining")
	}
}

// TestConcurrentStress mixes pushers, poppers, and a reclaim ticker.
// Run with -race to exercise the reclamation protocol.
func TestConcurrentStress(t *testing.T) {
	dom := memory.NewDomain()
	s := New[int](dom)

	const (
		pushers   = 4
		poppers   = 4
		perPusher = 2000
	)

	var wg sync.WaitGroup
	done := make(chan struct{})

	// Reclaimer runs concurrently with the workers, like the epoch
	// ticker in cmd/server.
	go func() {
		for {
			select {
			case <-done:
				return
			default:
				dom.AdvanceAndReclaim()
			}
		}
	}()

	var popped atomic.Int64
	for p := 0; p < pushers; p++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for i := 0; i < perPusher; i++ {
				s.Push(base*perPusher + i)
			}
		}(p)
	}
	for p := 0; p < poppers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for popped.Load() < pushers*perPusher {
				if _, ok := s.Pop(); ok {
					popped.Add(1)
				}
			}
		}()
	}
	wg.Wait()
	close(done)

	if got := popped.Load(); got != pushers*perPusher {
		t.Fatalf("popped %d values, pushed %d", got, pushers*perPusher)
	}
	if !s.IsEmpty() {
		t.Fatal("stack should be fully drained")
	}
	if s.Len() != 0 {
		t.Fatalf("quiescent len should be 0, got %d", s.Len())
	}
}

func TestNodeReuseAfterReclaim(t *testing.T) {
	dom := memory.NewDomain()
	s := New[string](dom)

	s.Push("a")
	s.Pop()
	for i := 0; i < 3; i++ {
		dom.AdvanceAndReclaim()
	}

	// The recycled node must come back zeroed.
	s.Push("b")
	v, ok := s.Pop()
	if !ok || v != "b" {
		t.Fatalf("expected %q, got %q (ok=%v)", "b", v, ok)
	}
}

func BenchmarkPushPop(b *testing.B) {
	dom := memory.NewDomain()
	s := New[int](dom)

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			s.Push(1)
			s.Pop()
		}
	})
}
