// Package store persists the session state to a durable local slot and
// reconstructs it after an interruption
package store

import (
	"errors"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"
)

const (
	slotBucket = "hardmode"
	slotKey    = "session_state"
)

var errHardmodeRunning = errors.New(
	"is hardmode already running? Only one instance can be active at a time",
)

// Bolt is a BoltDB backed Repository.
type Bolt struct {
	db *bolt.DB
}

func (b *Bolt) Load() ([]byte, error) {
	var value []byte

	err := b.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(slotBucket)).Get([]byte(slotKey))
		if v == nil {
			return ErrNotFound
		}

		// v is only valid for the life of the transaction
		value = append([]byte(nil), v...)

		return nil
	})

	return value, err
}

func (b *Bolt) Save(value []byte) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(slotBucket)).Put([]byte(slotKey), value)
	})
}

func (b *Bolt) Clear() error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(slotBucket)).Delete([]byte(slotKey))
	})
}

func (b *Bolt) Close() error {
	return b.db.Close()
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string, timeout time.Duration) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: timeout},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errHardmodeRunning
		}

		return nil, err
	}

	return db, nil
}

// NewBolt opens the BoltDB file at dbPath and prepares the slot bucket.
func NewBolt(dbPath string) (*Bolt, error) {
	db, err := openDB(dbPath, 1*time.Second)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(slotBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Bolt{db}, nil
}

// IsLocked reports whether err means another instance holds the database.
func IsLocked(err error) bool {
	return errors.Is(err, errHardmodeRunning)
}
