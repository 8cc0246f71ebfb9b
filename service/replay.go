package service

import (
	"log"

	"stackd/domain/stack"
	"stackd/infra/sequence"
	entrywal "stackd/infra/wal/entry"
)

/*
ReplayFromWAL rebuilds in-memory state from the entry WAL.

IMPORTANT:
- This MUST run before accepting traffic
- fromSeq is the restored snapshot's sequence number; records at or
  below it are already part of the snapshot and are skipped, because
  truncation never removes the active segment
- Exit WAL is NOT replayed; pending outbox records are drained by the
  broadcaster on its own schedule
*/

func ReplayFromWAL(
	walDir string,
	st *stack.Stack[[]byte],
	seqGen *sequence.Sequencer,
	fromSeq uint64,
) error {
	lastSeq, err := entrywal.Replay(walDir, func(rec *entrywal.Record) error {
		if rec.Seq <= fromSeq {
			return nil
		}
		switch rec.Type {
		case entrywal.RecordPush:
			value := make([]byte, len(rec.Data))
			copy(value, rec.Data)
			st.Push(value)
		case entrywal.RecordPop:
			st.Pop()
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Resume sequencing AFTER replay. The WAL may hold nothing newer
	// than the snapshot; the sequencer must never regress below it.
	if lastSeq < fromSeq {
		lastSeq = fromSeq
	}
	seqGen.Reset(lastSeq)

	log.Printf("[service] WAL replay completed (last seq = %d, stack len = %d)",
		lastSeq, st.Len())
	return nil
}
