package snapshot

import (
	"encoding/gob"
	"os"
	"path/filepath"
	"time"
)

type Writer struct {
	Dir string
}

// Write persists values (top-first) under dir/snapshot.bin. The write
// goes through a temp file and rename so a crash never leaves a torn
// snapshot behind.
func (w *Writer) Write(seq uint64, values [][]byte) error {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return err
	}

	s := Snapshot{
		Seq:     seq,
		Created: time.Now(),
		Values:  values,
	}

	tmp := filepath.Join(w.Dir, "snapshot.bin.tmp")
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	if err := gob.NewEncoder(f).Encode(&s); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, filepath.Join(w.Dir, "snapshot.bin"))
}
