package exit

import (
	"bytes"
	"testing"
)

func openTestWAL(t *testing.T) *ExitWAL {
	t.Helper()
	w, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open exit wal: %v", err)
	}
	t.Cleanup(func() { _ = w.Close() })
	return w
}

func TestExitWAL_PutAndGet(t *testing.T) {
	w := openTestWAL(t)

	if err := w.PutNew(1, []byte("hello")); err != nil {
		t.Fatalf("put: %v", err)
	}

	rec, err := w.Get(1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.State != StateNew || !bytes.Equal(rec.Payload, []byte("hello")) {
		t.Fatalf("unexpected record: state=%v payload=%q", rec.State, rec.Payload)
	}
}

func TestExitWAL_StateTransitions(t *testing.T) {
	w := openTestWAL(t)

	_ = w.PutNew(7, []byte("v"))
	if err := w.MarkSent(7); err != nil {
		t.Fatalf("mark sent: %v", err)
	}
	rec, _ := w.Get(7)
	if rec.State != StateSent || rec.Retries != 1 {
		t.Fatalf("after MarkSent: state=%v retries=%d", rec.State, rec.Retries)
	}

	if err := w.MarkAcked(7); err != nil {
		t.Fatalf("mark acked: %v", err)
	}
	rec, _ = w.Get(7)
	if rec.State != StateAcked {
		t.Fatalf("after MarkAcked: state=%v", rec.State)
	}
}

func TestExitWAL_ScanPending(t *testing.T) {
	w := openTestWAL(t)

	_ = w.PutNew(1, []byte("a"))
	_ = w.PutNew(2, []byte("b"))
	_ = w.PutNew(3, []byte("c"))
	_ = w.MarkSent(2)
	_ = w.MarkAcked(3)

	var seen []uint64
	err := w.ScanPending(func(rec *ExitRecord) error {
		seen = append(seen, rec.Seq)
		return nil
	})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(seen) != 2 || seen[0] != 1 || seen[1] != 2 {
		t.Fatalf("expected pending [1 2], got %v", seen)
	}
}

func TestExitWAL_TruncateAcked(t *testing.T) {
	w := openTestWAL(t)

	for seq := uint64(1); seq <= 5; seq++ {
		_ = w.PutNew(seq, []byte("v"))
	}
	_ = w.MarkAcked(1)
	_ = w.MarkAcked(2)
	_ = w.MarkAcked(5)

	if err := w.TruncateAckedUpTo(4); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	if _, err := w.Get(1); err == nil {
		t.Fatal("acked record 1 should be gone")
	}
	if _, err := w.Get(2); err == nil {
		t.Fatal("acked record 2 should be gone")
	}
	if _, err := w.Get(3); err != nil {
		t.Fatal("pending record 3 should survive")
	}
	if _, err := w.Get(5); err != nil {
		t.Fatal("acked record above the cutoff should survive")
	}
}
