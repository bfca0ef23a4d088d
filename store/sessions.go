package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/boltdb/bolt"

	"github.com/Bios-Marcel/bookadoctor/data"
)

var sessionsBucket = []byte("Sessions")

var ErrSessionNotFound = errors.New("session not found")

// Sessions is the durable record of logged in sessions, one serialized
// payload per session token.
type Sessions struct {
	db *bolt.DB
}

// OpenSessions opens the bolt file at path. It will be created if it doesn't
// exist.
func OpenSessions(path string) (*Sessions, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("cant open %s: %w", path, err)
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(sessionsBucket)
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("cant create sessions bucket: %w", err)
	}

	return &Sessions{db: db}, nil
}

func (sessions *Sessions) Close() error {
	return sessions.db.Close()
}

func (sessions *Sessions) Put(session data.Session) error {
	rawSession, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("cant serialize session: %w", err)
	}

	return sessions.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(sessionsBucket).Put([]byte(session.Token), rawSession)
	})
}

func (sessions *Sessions) Get(token string) (*data.Session, error) {
	var session *data.Session
	err := sessions.db.View(func(tx *bolt.Tx) error {
		rawSession := tx.Bucket(sessionsBucket).Get([]byte(token))
		if rawSession == nil {
			return ErrSessionNotFound
		}

		var tmpSession data.Session
		if errParse := json.Unmarshal(rawSession, &tmpSession); errParse != nil {
			return fmt.Errorf("cant parse session: %w", errParse)
		}

		session = &tmpSession
		return nil
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

// Delete removes the session. Deleting an unknown token is not an error.
func (sessions *Sessions) Delete(token string) error {
	return sessions.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(sessionsBucket).Delete([]byte(token))
	})
}
