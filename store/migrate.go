package store

import (
	"encoding/binary"

	bolt "go.etcd.io/bbolt"
)

const (
	metaBucket    = "meta"
	schemaKey     = "schema_version"
	schemaVersion = 1
)

// migrate stamps a fresh database with the current schema version and
// refuses databases written by a newer chrono.
func migrate(tx *bolt.Tx) error {
	meta, err := tx.CreateBucketIfNotExists([]byte(metaBucket))
	if err != nil {
		return err
	}

	var version uint64
	if v := meta.Get([]byte(schemaKey)); len(v) == 8 {
		version = binary.BigEndian.Uint64(v)
	}

	if version > schemaVersion {
		return errSchemaTooNew.Fmt(version, schemaVersion)
	}

	if version == schemaVersion {
		return nil
	}

	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, schemaVersion)

	return meta.Put([]byte(schemaKey), b)
}

// SchemaVersion returns the schema version recorded in the database.
func (c *Client) SchemaVersion() (uint64, error) {
	var version uint64

	err := c.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket([]byte(metaBucket)).Get([]byte(schemaKey)); len(v) == 8 {
			version = binary.BigEndian.Uint64(v)
		}

		return nil
	})

	return version, err
}
