package checkpoint

import (
	"path/filepath"
	"testing"
	"time"

	bolt "go.etcd.io/bbolt"
)

func openDB(tst *testing.T) *bolt.DB {
	tst.Helper()
	db, err := bolt.Open(filepath.Join(tst.TempDir(), "checkpoint.db"), 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		tst.Fatal("Error opening database:", err)
	}
	tst.Cleanup(func() { db.Close() })
	return db
}

type record struct {
	Name   string
	Output string
}

func TestCheckpointRun(tst *testing.T) {
	db := openDB(tst)
	cio := NewCheckpointIO(db, []byte("input.fst"), 10)

	data, err := cio.Load()
	if err != nil || data != nil {
		tst.Fatalf("Expected no checkpoint, got %v (%v)", data, err)
	}
	if !cio.Old() {
		tst.Error("Checkpoint which was never saved should be old")
	}

	if err := cio.Save(&CheckpointData{RunID: "run1", Records: 1}); err != nil {
		tst.Fatal(err)
	}
	if cio.Old() {
		tst.Error("Checkpoint was just saved")
	}

	// a new CheckpointIO as after a restart
	cio = NewCheckpointIO(db, []byte("input.fst"), 10)
	data, err = cio.Load()
	if err != nil || data == nil {
		tst.Fatalf("Expected a checkpoint (%v)", err)
	}
	if data.RunID != "run1" || data.Records != 1 || data.Final {
		tst.Errorf("Unexpected checkpoint data: %+v", data)
	}

	other := NewCheckpointIO(db, []byte("other.fst"), 10)
	if data, _ := other.Load(); data != nil {
		tst.Error("Checkpoints with different keys should be independent")
	}
}

func TestCheckpointRecords(tst *testing.T) {
	db := openDB(tst)
	cio := NewCheckpointIO(db, []byte("input.fst"), 10)

	in := record{"seq", "MPPV"}
	if err := cio.SaveRecord("run1", 0, "seq", in); err != nil {
		tst.Fatal(err)
	}

	var out record
	ok, err := cio.LoadRecord("run1", 0, "seq", &out)
	if err != nil || !ok {
		tst.Fatalf("Expected a record (%v)", err)
	}
	if out != in {
		tst.Errorf("Expected %v, got %v", in, out)
	}

	for _, t := range []struct {
		run  string
		i    int
		name string
	}{
		{"run1", 1, "seq"},
		{"run2", 0, "seq"},
		{"run1", 0, "other"},
	} {
		if ok, err := cio.LoadRecord(t.run, t.i, t.name, &out); ok || err != nil {
			tst.Errorf("Unexpected record %v: %v (%v)", t, ok, err)
		}
	}

	if err := cio.Drop("run1"); err != nil {
		tst.Fatal(err)
	}
	if ok, _ := cio.LoadRecord("run1", 0, "seq", &out); ok {
		tst.Error("Record should be dropped")
	}
	if err := cio.Drop("run1"); err != nil {
		tst.Error("Dropping a missing run:", err)
	}
}

func TestNoDatabase(tst *testing.T) {
	cio := NewCheckpointIO(nil, []byte("key"), 0)
	if err := cio.Save(&CheckpointData{RunID: "x"}); err != nil {
		tst.Error(err)
	}
	if data, err := cio.Load(); data != nil || err != nil {
		tst.Error("Expected no checkpoint without a database")
	}
}
