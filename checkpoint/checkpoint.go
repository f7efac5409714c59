// checkpoint creates CheckpointIO which stores progress of a run, so an
// interrupted run can be resumed.
package checkpoint

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/op/go-logging"

	bolt "go.etcd.io/bbolt"
)

// log is the global logging variable.
var log = logging.MustGetLogger("checkpoint")

// MAIN is the bucket name for run states.
var MAIN = []byte("main")

// CheckpointData stores checkpoint data.
type CheckpointData struct {
	// RunID identifies the run, processed records are stored in a
	// bucket with this name.
	RunID string
	// Records is the number of processed records.
	Records int
	Final   bool
}

// CheckpointIO saves and loads checkpoints.
type CheckpointIO struct {
	db      *bolt.DB
	key     []byte
	last    time.Time
	seconds float64
}

// NewCheckpointIO creates a new CheckpointIO. Run state is stored
// under key, seconds is the minimal time between saves, see Old.
func NewCheckpointIO(db *bolt.DB, key []byte, seconds float64) (s *CheckpointIO) {
	s = &CheckpointIO{
		db:      db,
		key:     key,
		seconds: seconds,
	}
	return
}

// Save saves the run state.
func (s *CheckpointIO) Save(data *CheckpointData) error {
	// Even if saving fails, we do not want to run this code too often.
	s.SetNow()
	dataB, err := json.Marshal(data)
	if err != nil {
		log.Error("Error serializing checkpoint", err)
		return err
	}
	err = SaveData(s.db, MAIN, s.key, dataB)
	if err != nil {
		log.Error("Error saving checkpoint", err)
	}
	return err
}

// Load returns the saved run state or nil if there is none.
func (s *CheckpointIO) Load() (*CheckpointData, error) {
	var data *CheckpointData

	b, err := LoadData(s.db, MAIN, s.key)

	if err != nil || b == nil {
		return nil, err
	}

	err = json.Unmarshal(b, &data)

	if err != nil {
		return nil, err
	}

	if data == nil || data.RunID == "" {
		return nil, nil
	}

	if data.Final {
		log.Noticef("Found finished checkpoint (run=%v, records=%v)", data.RunID, data.Records)
	} else {
		log.Noticef("Found unfinished checkpoint (run=%v, records=%v)", data.RunID, data.Records)
	}

	return data, nil
}

// recordKey keeps records in the input order and distinguishes
// records with equal names.
func recordKey(i int, name string) []byte {
	return []byte(fmt.Sprintf("%08d %s", i, name))
}

// SaveRecord stores the result of the i-th record of run.
func (s *CheckpointIO) SaveRecord(run string, i int, name string, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return SaveData(s.db, []byte(run), recordKey(i, name), b)
}

// LoadRecord loads the result of the i-th record of run into v. It
// returns false if the record wasn't saved.
func (s *CheckpointIO) LoadRecord(run string, i int, name string, v interface{}) (bool, error) {
	b, err := LoadData(s.db, []byte(run), recordKey(i, name))
	if err != nil || b == nil {
		return false, err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return false, err
	}
	log.Debugf("Record %d (%s) loaded from checkpoint", i, name)
	return true, nil
}

// Drop removes all the records of run.
func (s *CheckpointIO) Drop(run string) error {
	if s.db == nil {
		return nil
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket([]byte(run)) == nil {
			return nil
		}
		return tx.DeleteBucket([]byte(run))
	})
}

// Old returns true if last checkpoint save time too long ago.
func (s *CheckpointIO) Old() bool {
	return time.Since(s.last).Seconds() > s.seconds
}

// SetNow sets last checkpoint time to now.
func (s *CheckpointIO) SetNow() {
	s.last = time.Now()
}

// SaveData saves values in bolt database.
func SaveData(db *bolt.DB, bucket, key []byte, data []byte) error {
	if db == nil {
		return nil
	}
	err := db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucket)
		if err != nil {
			return err
		}

		err = b.Put(key, data)
		return err
	})
	return err
}

// LoadData loads data from bolt database.
func LoadData(db *bolt.DB, bucket, key []byte) ([]byte, error) {
	var data []byte
	if db == nil {
		return nil, nil
	}
	err := db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return nil
		}

		// v is only valid inside the transaction
		if v := b.Get(key); v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}
