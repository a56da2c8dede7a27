// Package database provides the boltdb-backed kv storage used by the page
// cache.
package database

import (
	"fmt"

	"go.etcd.io/bbolt"
)

// BoltStore provides simple kv store interface based on boltdb.
type BoltStore struct {
	db     *bbolt.DB
	bucket []byte
}

// NewBoltStore creates new BoltStore instance, creating the bucket when
// needed.
func NewBoltStore(dbPath string, bucket string) (*BoltStore, error) {
	db, err := bbolt.Open(dbPath, 0666, nil)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucket))
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating database bucket: %w", err)
	}

	return &BoltStore{
		db:     db,
		bucket: []byte(bucket),
	}, nil
}

// Get returns data saved for given key. Returns nil if there's no data
// stored. The returned slice is a copy, valid after the transaction ends.
func (s *BoltStore) Get(key []byte) ([]byte, error) {
	var data []byte
	if err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(s.bucket).Get(key)
		if v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("reading from db: %w", err)
	}

	return data, nil
}

// Put stores given data under given key, overwriting any previous value.
func (s *BoltStore) Put(key []byte, data []byte) error {
	if err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(s.bucket).Put(key, data)
	}); err != nil {
		return fmt.Errorf("writing to db: %w", err)
	}

	return nil
}

// Close closes database.
func (s *BoltStore) Close() error {
	return s.db.Close()
}
