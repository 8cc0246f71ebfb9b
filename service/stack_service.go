package service

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"time"

	"stackd/domain/stack"
	"stackd/infra/kafka"
	"stackd/infra/memory"
	"stackd/infra/sequence"
	entrywal "stackd/infra/wal/entry"
	exitwal "stackd/infra/wal/exit"
)

/*
StackService is the ONLY write entry point into the engine.

All coordination between:
- domain (stack)
- infra (memory, wal, kafka)
- snapshot
happens here.
*/

type StackService struct {
	stack  *stack.Stack[[]byte]
	mem    *memory.Domain
	seqGen *sequence.Sequencer

	entryWAL *entrywal.WAL
	exitWAL  *exitwal.ExitWAL // optional
	events   *kafka.Producer  // optional, best-effort
}

// NewStackService wires all dependencies.
// No globals. No magic.
func NewStackService(
	st *stack.Stack[[]byte],
	mem *memory.Domain,
	seqGen *sequence.Sequencer,
	entryWAL *entrywal.WAL,
	exitWAL *exitwal.ExitWAL,
	events *kafka.Producer,
) *StackService {
	return &StackService{
		stack:    st,
		mem:      mem,
		seqGen:   seqGen,
		entryWAL: entryWAL,
		exitWAL:  exitWAL,
		events:   events,
	}
}

// Stats is a point-in-time reading of the engine. Size is the stack's
// approximate counter.
type Stats struct {
	Size  int64
	Empty bool
	Epoch uint64
}

//
// ──────────────────────────────────────────────────────────
// Commands
// ──────────────────────────────────────────────────────────
//

// Push accepts a value, logs the intent, and installs it on the
// stack. It returns the assigned sequence number. The value is copied
// so the caller's buffer stays private.
func (s *StackService) Push(value []byte) (uint64, error) {
	seq := s.seqGen.Next()

	owned := make([]byte, len(value))
	copy(owned, value)

	// WAL intent before the structural change; replay re-applies it.
	if err := s.entryWAL.Append(
		entrywal.NewRecord(entrywal.RecordPush, seq, owned),
	); err != nil {
		return 0, err
	}

	s.stack.Push(owned)

	s.emitPushEvent(seq, owned)
	return seq, nil
}

// Pop removes the top value. ok is false on an empty stack — a normal
// result, not an error. A successful pop is logged and parked in the
// exit WAL for downstream publication.
func (s *StackService) Pop() (seq uint64, value []byte, ok bool, err error) {
	value, ok = s.stack.Pop()
	if !ok {
		return 0, nil, false, nil
	}

	seq = s.seqGen.Next()
	if err := s.entryWAL.Append(
		entrywal.NewRecord(entrywal.RecordPop, seq, nil),
	); err != nil {
		return seq, value, true, err
	}

	if s.exitWAL != nil {
		if err := s.exitWAL.PutNew(seq, value); err != nil {
			return seq, value, true, err
		}
	}
	return seq, value, true, nil
}

//
// ──────────────────────────────────────────────────────────
// Queries
// ──────────────────────────────────────────────────────────
//

// Peek returns a copy of the top value without removing it.
func (s *StackService) Peek() ([]byte, bool) {
	v, ok := s.stack.Peek()
	if !ok {
		return nil, false
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true
}

func (s *StackService) Stats() Stats {
	return Stats{
		Size:  int64(s.stack.Len()),
		Empty: s.stack.IsEmpty(),
		Epoch: s.mem.Epoch(),
	}
}

// Snapshot returns a consistent top-first view of the stack contents.
// Caller must treat returned slices as read-only.
func (s *StackService) Snapshot() [][]byte {
	return s.stack.Snapshot()
}

//
// ──────────────────────────────────────────────────────────
// Reclamation
// ──────────────────────────────────────────────────────────
//

// AdvanceEpoch performs safe reclamation.
// Intended to be called periodically by a background job.
func (s *StackService) AdvanceEpoch() int {
	return s.mem.AdvanceAndReclaim()
}

//
// ──────────────────────────────────────────────────────────
// Events
// ──────────────────────────────────────────────────────────
//

type pushEvent struct {
	V     int    `json:"v"`
	Type  string `json:"type"`
	Seq   uint64 `json:"seq"`
	Value []byte `json:"value"`
}

func (s *StackService) emitPushEvent(seq uint64, value []byte) {
	if s.events == nil {
		return
	}

	payload, err := json.Marshal(pushEvent{
		V:     1,
		Type:  "push",
		Seq:   seq,
		Value: value,
	})
	if err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	if err := s.events.Send(ctx, []byte(strconv.FormatUint(seq, 10)), payload); err != nil {
		log.Printf("[service] push event seq=%d dropped: %v", seq, err)
	}
}
