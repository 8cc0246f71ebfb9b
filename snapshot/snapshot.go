// Package snapshot persists a point-in-time copy of the stack so the
// entry WAL can be truncated. A snapshot holds the values top to
// bottom as one guarded traversal observed them.
package snapshot

import "time"

type Snapshot struct {
	Seq     uint64
	Created time.Time
	// Values are stored top-first, exactly as the traversal saw them.
	Values [][]byte
}
