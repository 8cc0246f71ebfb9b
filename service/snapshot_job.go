package service

import (
	"log"
	"time"

	"stackd/snapshot"
)

// StartSnapshotJob periodically writes a snapshot of the stack and
// garbage-collects both WALs behind it.
func (s *StackService) StartSnapshotJob(
	dir string,
	interval time.Duration,
) {
	w := &snapshot.Writer{Dir: dir}

	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()

		for range t.C {
			seq := s.seqGen.Current()

			if err := w.Write(seq, s.Snapshot()); err != nil {
				log.Printf("[service] snapshot failed: %v", err)
				continue
			}

			// Truncate entry WAL after a durable snapshot
			_ = s.entryWAL.TruncateBefore(seq)

			// GC exit WAL (acked only)
			if s.exitWAL != nil {
				_ = s.exitWAL.TruncateAckedUpTo(seq)
			}
		}
	}()
}
