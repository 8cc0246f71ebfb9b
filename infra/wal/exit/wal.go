// Package exit implements the durable outbox for popped values.
// A successful pop is parked here before it is published downstream;
// the broadcaster walks pending records, publishes them, and marks
// them acknowledged. Storage is a pebble keyspace.
package exit

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/cockroachdb/pebble"
)

// -------------------- State --------------------

type ExitState uint8

const (
	StateNew ExitState = iota
	StateSent
	StateAcked
	StateFailed
)

func (s ExitState) String() string {
	switch s {
	case StateNew:
		return "NEW"
	case StateSent:
		return "SENT"
	case StateAcked:
		return "ACKED"
	case StateFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// -------------------- Record --------------------

type ExitRecord struct {
	Seq         uint64
	State       ExitState
	Retries     uint32
	LastAttempt int64
	Payload     []byte
}

// binary encoding: [state:1][retries:4][lastAttempt:8][payload]
func encodeRecord(r ExitRecord) []byte {
	buf := make([]byte, 1+4+8+len(r.Payload))
	buf[0] = byte(r.State)
	binary.BigEndian.PutUint32(buf[1:5], r.Retries)
	binary.BigEndian.PutUint64(buf[5:13], uint64(r.LastAttempt))
	copy(buf[13:], r.Payload)
	return buf
}

func decodeRecord(seq uint64, b []byte) (ExitRecord, error) {
	if len(b) < 13 {
		return ExitRecord{}, errors.New("invalid exit record length")
	}
	payload := make([]byte, len(b)-13)
	copy(payload, b[13:])
	return ExitRecord{
		Seq:         seq,
		State:       ExitState(b[0]),
		Retries:     binary.BigEndian.Uint32(b[1:5]),
		LastAttempt: int64(binary.BigEndian.Uint64(b[5:13])),
		Payload:     payload,
	}, nil
}

// -------------------- WAL --------------------

type ExitWAL struct {
	db *pebble.DB
}

func Open(dir string) (*ExitWAL, error) {
	db, err := pebble.Open(dir, &pebble.Options{
		DisableWAL: false, // we WANT durability
	})
	if err != nil {
		return nil, err
	}
	return &ExitWAL{db: db}, nil
}

func (w *ExitWAL) Close() error {
	return w.db.Close()
}

// -------------------- API --------------------

// PutNew inserts a fresh outbox entry for a popped value.
func (w *ExitWAL) PutNew(seq uint64, payload []byte) error {
	rec := ExitRecord{
		Seq:     seq,
		State:   StateNew,
		Payload: payload,
	}
	return w.db.Set(keyFor(seq), encodeRecord(rec), pebble.Sync)
}

// MarkSent flips a record to SENT before the publish attempt, so a
// crash mid-send is retried rather than lost.
func (w *ExitWAL) MarkSent(seq uint64) error {
	return w.updateState(seq, StateSent)
}

// MarkAcked records a confirmed publish.
func (w *ExitWAL) MarkAcked(seq uint64) error {
	return w.updateState(seq, StateAcked)
}

// MarkFailed records a publish that will not be retried.
func (w *ExitWAL) MarkFailed(seq uint64) error {
	return w.updateState(seq, StateFailed)
}

func (w *ExitWAL) updateState(seq uint64, state ExitState) error {
	rec, err := w.Get(seq)
	if err != nil {
		return err
	}
	rec.State = state
	if state == StateSent {
		rec.Retries++
	}
	rec.LastAttempt = time.Now().UnixNano()
	return w.db.Set(keyFor(seq), encodeRecord(rec), pebble.Sync)
}

// Delete removes a record (cleanup of acked entries).
func (w *ExitWAL) Delete(seq uint64) error {
	return w.db.Delete(keyFor(seq), pebble.Sync)
}

// Get returns the current record for a sequence number.
func (w *ExitWAL) Get(seq uint64) (ExitRecord, error) {
	val, closer, err := w.db.Get(keyFor(seq))
	if err != nil {
		return ExitRecord{}, err
	}
	defer closer.Close()

	return decodeRecord(seq, val)
}

// -------------------- Scan --------------------

// ScanPending iterates all records still awaiting acknowledgement
// (NEW or SENT). This is used by the broadcaster.
func (w *ExitWAL) ScanPending(fn func(rec *ExitRecord) error) error {
	iter, err := w.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte("pop/"),
		UpperBound: []byte("pop/~"),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		seq, err := parseKey(iter.Key())
		if err != nil {
			return err
		}

		rec, err := decodeRecord(seq, iter.Value())
		if err != nil {
			return err
		}

		if rec.State != StateNew && rec.State != StateSent {
			continue
		}

		if err := fn(&rec); err != nil {
			return err
		}
	}
	return iter.Error()
}

// TruncateAckedUpTo removes acked records with seq <= upTo. Called by
// the snapshot job as garbage collection.
func (w *ExitWAL) TruncateAckedUpTo(upTo uint64) error {
	iter, err := w.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte("pop/"),
		UpperBound: []byte("pop/~"),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	var doomed []uint64
	for iter.First(); iter.Valid(); iter.Next() {
		seq, err := parseKey(iter.Key())
		if err != nil {
			return err
		}
		if seq > upTo {
			break
		}
		rec, err := decodeRecord(seq, iter.Value())
		if err != nil {
			return err
		}
		if rec.State == StateAcked {
			doomed = append(doomed, seq)
		}
	}
	if err := iter.Error(); err != nil {
		return err
	}

	for _, seq := range doomed {
		if err := w.Delete(seq); err != nil {
			return err
		}
	}
	return nil
}

// -------------------- Helpers --------------------

func keyFor(seq uint64) []byte {
	return []byte(fmt.Sprintf("pop/%020d", seq))
}

func parseKey(b []byte) (uint64, error) {
	var seq uint64
	_, err := fmt.Sscanf(string(bytes.TrimPrefix(b, []byte("pop/"))), "%d", &seq)
	return seq, err
}
