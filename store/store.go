// Package store keeps the session payload the backend hands out on login,
// both in the shared state container and durably in bolt.
package store

import (
	"context"
	"errors"
	"fmt"
	"log"

	"golang.org/x/sync/singleflight"

	"github.com/Bios-Marcel/bookadoctor/data"
)

type Store struct {
	state   State
	durable *Sessions
	group   singleflight.Group
}

func New(state State, durable *Sessions) *Store {
	return &Store{state: state, durable: durable}
}

// Save writes the session durably first, then publishes it to the state
// container.
func (store *Store) Save(ctx context.Context, session data.Session) error {
	if err := store.durable.Put(session); err != nil {
		return fmt.Errorf("cant persist session: %w", err)
	}
	if err := store.state.Set(ctx, session); err != nil {
		return fmt.Errorf("cant publish session: %w", err)
	}
	return nil
}

// Load looks the session up in the state container and falls back to the
// durable record, putting it back into the container. Concurrent misses for
// the same token share a single lookup.
func (store *Store) Load(ctx context.Context, token string) (*data.Session, error) {
	session, err := store.state.Get(ctx, token)
	if err == nil {
		return session, nil
	}
	if !errors.Is(err, ErrSessionNotFound) {
		log.Printf("session state lookup failed, falling back to storage: %v", err)
	}

	result, err, _ := store.group.Do(token, func() (interface{}, error) {
		session, err := store.durable.Get(token)
		if err != nil {
			return nil, err
		}
		if errSet := store.state.Set(ctx, *session); errSet != nil {
			log.Printf("cant repopulate session state: %v", errSet)
		}
		return session, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*data.Session), nil
}

func (store *Store) Remove(ctx context.Context, token string) error {
	return errors.Join(
		store.state.Delete(ctx, token),
		store.durable.Delete(token),
	)
}
