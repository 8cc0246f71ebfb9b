package snapshot

import (
	"encoding/gob"
	"os"

	"stackd/domain/stack"
)

// Load restores a snapshot into st and returns the snapshot's
// sequence number. A missing file is not an error; the engine just
// starts empty. Values are re-pushed bottom-up so the restored stack
// pops in the original order.
func Load(path string, st *stack.Stack[[]byte]) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, nil // snapshot optional
	}
	defer f.Close()

	var s Snapshot
	if err := gob.NewDecoder(f).Decode(&s); err != nil {
		return 0, err
	}

	for i := len(s.Values) - 1; i >= 0; i-- {
		st.Push(s.Values[i])
	}

	return s.Seq, nil
}
