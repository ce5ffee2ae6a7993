// Package store keeps sessions in a local BoltDB database so that chrono can
// track time without a server
package store

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"io/fs"
	"slices"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/chrono-hq/chrono/internal/models"
	"github.com/chrono-hq/chrono/internal/timeutil"
)

const sessionBucket = "sessions"

// Client is a BoltDB database client that implements the same contract as
// the Chrono API for a single user.
type Client struct {
	db     *bolt.DB
	now    func() time.Time
	userID int64
}

// Option configures a Client.
type Option func(*Client)

// WithNow overrides the time source.
func WithNow(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// NewClient opens (creating if needed) the database at dbPath on behalf of
// userID.
func NewClient(dbPath string, userID int64, opts ...Option) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(sessionBucket)); err != nil {
			return err
		}

		return migrate(tx)
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	c := &Client{
		db:     db,
		userID: userID,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Close releases the database lock.
func (c *Client) Close() error {
	return c.db.Close()
}

// Start opens a new session. Only one session per user may be open.
func (c *Client) Start(_ context.Context) (models.Session, error) {
	s := models.Session{
		UserID:    c.userID,
		StartTime: c.now().UTC().Truncate(time.Second),
	}

	err := c.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(sessionBucket))

		open, err := c.findOpen(b)
		if err != nil {
			return err
		}

		if open != nil {
			return errSessionOpen.Fmt(open.ID)
		}

		seq, err := b.NextSequence()
		if err != nil {
			return err
		}

		s.ID = int64(seq)

		return put(b, &s)
	})

	return s, err
}

// Stop closes the session with the given id.
func (c *Client) Stop(_ context.Context, id int64) (models.Session, error) {
	var s models.Session

	err := c.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(sessionBucket))

		found, err := c.get(b, id)
		if err != nil {
			return err
		}

		if !found.Open() {
			return errSessionClosed.Fmt(id)
		}

		end := c.now().UTC().Truncate(time.Second)
		if end.Before(found.StartTime) {
			end = found.StartTime
		}

		found.EndTime = &end
		s = found

		return put(b, &s)
	})

	return s, err
}

// Latest returns the most recently started session.
func (c *Client) Latest(_ context.Context) (models.Session, error) {
	var latest models.Session

	err := c.db.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(sessionBucket)).Cursor()

		for k, v := cur.Last(); k != nil; k, v = cur.Prev() {
			var s models.Session
			if err := json.Unmarshal(v, &s); err != nil {
				return err
			}

			if s.UserID == c.userID {
				latest = s
				return nil
			}
		}

		return errNoSessions
	})

	return latest, err
}

// Today returns the sessions started today in the local timezone.
func (c *Client) Today(ctx context.Context) ([]models.Session, error) {
	now := c.now()

	return c.InRange(ctx, timeutil.RoundToStart(now), timeutil.RoundToEnd(now))
}

// InRange returns the sessions started between start and end inclusive,
// ordered by start time.
func (c *Client) InRange(_ context.Context, start, end time.Time) ([]models.Session, error) {
	var sessions []models.Session

	err := c.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(sessionBucket)).ForEach(func(_, v []byte) error {
			var s models.Session
			if err := json.Unmarshal(v, &s); err != nil {
				return err
			}

			if s.UserID != c.userID ||
				s.StartTime.Before(start) || s.StartTime.After(end) {
				return nil
			}

			sessions = append(sessions, s)

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(sessions, func(a, b models.Session) int {
		return a.StartTime.Compare(b.StartTime)
	})

	return sessions, nil
}

// Update overwrites the bounds of an existing session.
func (c *Client) Update(_ context.Context, s models.Session) (models.Session, error) {
	if s.EndTime != nil && s.EndTime.Before(s.StartTime) {
		return s, errInvalidBounds
	}

	err := c.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(sessionBucket))

		existing, err := c.get(b, s.ID)
		if err != nil {
			return err
		}

		if s.EndTime == nil && existing.EndTime != nil {
			open, err := c.findOpen(b)
			if err != nil {
				return err
			}

			if open != nil && open.ID != s.ID {
				return errSessionOpen.Fmt(open.ID)
			}
		}

		s.UserID = existing.UserID

		return put(b, &s)
	})

	return s, err
}

func (c *Client) get(b *bolt.Bucket, id int64) (models.Session, error) {
	var s models.Session

	v := b.Get(key(id))
	if v == nil {
		return s, errSessionNotFound.Fmt(id)
	}

	if err := json.Unmarshal(v, &s); err != nil {
		return s, err
	}

	if s.UserID != c.userID {
		return s, errSessionNotFound.Fmt(id)
	}

	return s, nil
}

func (c *Client) findOpen(b *bolt.Bucket) (*models.Session, error) {
	var open *models.Session

	err := b.ForEach(func(_, v []byte) error {
		var s models.Session
		if err := json.Unmarshal(v, &s); err != nil {
			return err
		}

		if s.UserID == c.userID && s.Open() {
			open = &s
		}

		return nil
	})

	return open, err
}

func put(b *bolt.Bucket, s *models.Session) error {
	value, err := json.Marshal(s)
	if err != nil {
		return err
	}

	return b.Put(key(s.ID), value)
}

// key encodes ids big-endian so that cursor order is id order.
func key(id int64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, uint64(id))

	return k
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errChronoRunning
		}

		return nil, err
	}

	return db, nil
}
