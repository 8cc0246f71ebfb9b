// Package entry implements the segmented append-only log of stack
// operations. Every accepted push and pop is framed, checksummed, and
// written here before the engine acknowledges it, so the stack can be
// rebuilt after a restart.
package entry

import "time"

type RecordType uint8

const (
	// RecordPush logs an accepted push; the payload is the value.
	RecordPush RecordType = iota
	// RecordPop logs a successful pop; the payload is empty.
	RecordPop
)

type Record struct {
	Type RecordType
	Seq  uint64
	Time int64
	Data []byte
}

func NewRecord(t RecordType, seq uint64, data []byte) *Record {
	return &Record{
		Type: t,
		Seq:  seq,
		Time: time.Now().UnixNano(),
		Data: data,
	}
}
